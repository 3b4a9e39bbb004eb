package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// load populates all three panes for the working directory.
func (r *StateReducer) load(state *BrowserState) error {
	if err := state.checkInvariants(); err != nil {
		return err
	}
	state.Current.SetEntries(state.list(state.WorkingDir))
	state.Current.SelectFirst()
	state.pendingCurrent = ""
	r.populatePrevious(state)
	r.refreshNext(state)
	return nil
}

// enterChild descends into the selected directory. Files, unreadable
// entries and directories that cannot be listed leave the state untouched.
func (r *StateReducer) enterChild(state *BrowserState) error {
	entry, ok := state.Current.Selected()
	if !ok || !entry.IsDir() {
		return nil
	}
	entries, err := state.lister().ReadDir(entry.Path, state.ShowHidden)
	if err != nil {
		return nil
	}

	state.WorkingDir = entry.Path
	state.Current.SetEntries(entries)
	state.Current.SelectFirst()
	state.pendingCurrent = ""
	r.populatePrevious(state)
	r.refreshNext(state)
	return state.checkInvariants()
}

// goToParent ascends one level and reselects the directory we came from.
// When that directory is no longer listed the selection stays empty.
func (r *StateReducer) goToParent(state *BrowserState) error {
	parent, ok := state.ParentDir()
	if !ok {
		return nil
	}
	origin := state.WorkingDir

	state.WorkingDir = parent
	state.Current.SetEntries(state.list(parent))
	state.Current.SelectPath(origin)
	state.pendingCurrent = ""
	r.populatePrevious(state)
	r.refreshNext(state)
	return state.checkInvariants()
}

// populatePrevious lists the parent of the working directory with the
// working directory selected. At the root the pane is empty.
func (r *StateReducer) populatePrevious(state *BrowserState) {
	parent, ok := state.ParentDir()
	if !ok {
		state.Previous.Clear()
		return
	}
	state.Previous.SetEntries(state.list(parent))
	state.Previous.SelectPath(state.WorkingDir)
}

func (r *StateReducer) toggleHidden(state *BrowserState) {
	state.ShowHidden = !state.ShowHidden
	r.relistPreserving(state)
}

// relistPreserving re-reads all panes for their unchanged directories and
// reselects by path.
func (r *StateReducer) relistPreserving(state *BrowserState) {
	want := state.Current.SelectedPath()
	if want == "" {
		want = state.pendingCurrent
	}

	state.Current.SetEntries(state.list(state.WorkingDir))
	state.pendingCurrent = ""
	if want != "" && !state.Current.SelectPath(want) {
		state.pendingCurrent = want
	}

	r.populatePrevious(state)
	r.refreshNext(state)
}

// refresh relists after a filesystem change. If the working directory has
// gone away the browser climbs to the nearest ancestor that still exists.
func (r *StateReducer) refresh(state *BrowserState) error {
	if dirExists(state.WorkingDir) {
		r.relistPreserving(state)
		return nil
	}

	origin := state.WorkingDir
	dir := origin
	for {
		parent, ok := parentOf(dir)
		if !ok {
			return fmt.Errorf("%w: no existing ancestor of %s", ErrInvariant, origin)
		}
		dir = parent
		if dirExists(dir) {
			break
		}
	}

	state.WorkingDir = dir
	state.Current.SetEntries(state.list(dir))
	state.Current.SelectMatching(func(e FileEntry) bool {
		return isWithin(origin, e.Path)
	})
	state.pendingCurrent = ""
	r.populatePrevious(state)
	r.refreshNext(state)
	return state.checkInvariants()
}

// selectionChanged re-derives Next after the Current selection moved.
func (r *StateReducer) selectionChanged(state *BrowserState) {
	state.pendingCurrent = ""
	r.refreshNext(state)
}

func (r *StateReducer) moveSelection(state *BrowserState, delta int) {
	if state.Current.MoveSelection(delta) {
		r.selectionChanged(state)
	}
}

func (r *StateReducer) selectIndex(state *BrowserState, idx int) {
	if cur, ok := state.Current.SelectedIndex(); ok && cur == idx {
		return
	}
	if state.Current.SelectIndex(idx) {
		r.selectionChanged(state)
	}
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// isWithin reports whether path is dir or lies below it.
func isWithin(path, dir string) bool {
	if path == dir {
		return true
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
