package fs

import (
	"fmt"
	"os"
	"sort"
)

// Lister reads a directory into an ordered entry list.
type Lister interface {
	ReadDir(path string, showHidden bool) ([]Entry, error)
}

// DirLister is the Lister backed by the local filesystem.
type DirLister struct{}

// ReadDir implements Lister.
func (DirLister) ReadDir(path string, showHidden bool) ([]Entry, error) {
	return ReadDir(path, showHidden)
}

// ReadDir lists path with symlinks removed, hidden entries filtered unless
// showHidden is set, directories first and names in byte order. Children whose
// metadata cannot be read are dropped.
func ReadDir(path string, showHidden bool) ([]Entry, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		info, err := de.Info()
		if err != nil {
			continue
		}

		entry := NewEntry(path, de.Name(), info.Mode())
		if entry.Kind == KindUnreadable {
			continue
		}
		if !showHidden && entry.IsHidden() {
			continue
		}
		entries = append(entries, entry)
	}

	SortEntries(entries)
	return entries, nil
}

// List reads path through l for pane population: an unreadable directory is
// an empty listing, not an error.
func List(l Lister, path string, showHidden bool) []Entry {
	entries, err := l.ReadDir(path, showHidden)
	if err != nil {
		return nil
	}
	return entries
}

// SortEntries orders directories before files, then by name.
func SortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return entries[i].Name < entries[j].Name
	})
}
