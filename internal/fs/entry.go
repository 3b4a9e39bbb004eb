package fs

import (
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

// Kind classifies a directory child at listing time.
type Kind int

const (
	KindUnreadable Kind = iota
	KindDirectory
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindFile:
		return "file"
	default:
		return "unreadable"
	}
}

// Entry represents a single child of a listed directory. Entries are never
// mutated after creation; a refresh produces a new slice of entries.
type Entry struct {
	Name string
	Path string
	Kind Kind
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// IsHidden reports whether the entry should be treated as hidden.
func (e Entry) IsHidden() bool {
	return IsHidden(e.Path, e.Name)
}

// ClassifyMode maps entry metadata to a Kind. Symlinks are Unreadable so
// listings never follow them.
func ClassifyMode(mode os.FileMode) Kind {
	switch {
	case mode&os.ModeSymlink != 0:
		return KindUnreadable
	case mode.IsDir():
		return KindDirectory
	default:
		return KindFile
	}
}

// NewEntry builds an entry for name inside dir.
func NewEntry(dir, name string, mode os.FileMode) Entry {
	return Entry{
		Name: norm.NFC.String(name),
		Path: filepath.Join(dir, name),
		Kind: ClassifyMode(mode),
	}
}
