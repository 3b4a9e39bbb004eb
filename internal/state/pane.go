package state

// Pane is one column of the browser: an ordered entry list and an optional
// selection. A selection, when present, always indexes into entries.
type Pane struct {
	entries  []FileEntry
	selected int
}

// NewPane returns a pane holding entries with nothing selected.
func NewPane(entries []FileEntry) Pane {
	p := Pane{selected: -1}
	p.SetEntries(entries)
	return p
}

// SetEntries replaces the entries and clears the selection.
func (p *Pane) SetEntries(entries []FileEntry) {
	p.entries = entries
	p.selected = -1
}

// Clear empties the pane.
func (p *Pane) Clear() {
	p.SetEntries(nil)
}

// Entries returns the pane's entries. Callers must not modify the slice.
func (p *Pane) Entries() []FileEntry {
	return p.entries
}

// Len returns the number of entries.
func (p *Pane) Len() int {
	return len(p.entries)
}

// SelectedIndex returns the selection and whether there is one.
func (p *Pane) SelectedIndex() (int, bool) {
	if p.selected < 0 || p.selected >= len(p.entries) {
		return -1, false
	}
	return p.selected, true
}

// Selected returns the selected entry.
func (p *Pane) Selected() (FileEntry, bool) {
	idx, ok := p.SelectedIndex()
	if !ok {
		return FileEntry{}, false
	}
	return p.entries[idx], true
}

// SelectedPath returns the selected entry's path, or "".
func (p *Pane) SelectedPath() string {
	entry, ok := p.Selected()
	if !ok {
		return ""
	}
	return entry.Path
}

// SelectIndex selects i. Out-of-range indexes are ignored.
func (p *Pane) SelectIndex(i int) bool {
	if i < 0 || i >= len(p.entries) {
		return false
	}
	p.selected = i
	return true
}

// SelectMatching selects the first entry satisfying match and reports
// whether one was found. The selection is untouched when nothing matches.
func (p *Pane) SelectMatching(match func(FileEntry) bool) bool {
	for i, entry := range p.entries {
		if match(entry) {
			p.selected = i
			return true
		}
	}
	return false
}

// SelectPath selects the entry whose path equals path.
func (p *Pane) SelectPath(path string) bool {
	if path == "" {
		return false
	}
	return p.SelectMatching(func(e FileEntry) bool { return e.Path == path })
}

// MoveSelection moves the selection by delta, clamped to the entry range.
// Without a selection, moving down starts at the first entry and moving up
// at the last one.
func (p *Pane) MoveSelection(delta int) bool {
	n := len(p.entries)
	if n == 0 || delta == 0 {
		return false
	}

	idx, ok := p.SelectedIndex()
	var target int
	switch {
	case !ok && delta > 0:
		target = 0
	case !ok:
		target = n - 1
	default:
		target = idx + delta
	}
	if target < 0 {
		target = 0
	}
	if target > n-1 {
		target = n - 1
	}
	if ok && target == idx {
		return false
	}
	p.selected = target
	return true
}

// SelectFirst selects the first entry.
func (p *Pane) SelectFirst() bool {
	return p.SelectIndex(0)
}

// SelectLast selects the last entry.
func (p *Pane) SelectLast() bool {
	return p.SelectIndex(len(p.entries) - 1)
}

// Names returns the entry names in order.
func (p *Pane) Names() []string {
	names := make([]string, len(p.entries))
	for i, entry := range p.entries {
		names[i] = entry.Name
	}
	return names
}
