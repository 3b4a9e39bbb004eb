package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	fsutil "github.com/Fabian1409/seldir/internal/fs"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// ErrInvariant marks programming errors such as an invalid working directory.
// Everything else the browser encounters degrades to a no-op or empty pane.
var ErrInvariant = errors.New("browser invariant violated")

// SelectionInfo is the metadata shown for the Current selection.
type SelectionInfo struct {
	Path     string
	Mode     os.FileMode
	Modified time.Time
}

// BrowserState is the single source of truth for the browser.
type BrowserState struct {
	// Navigation & filesystem
	WorkingDir string
	Previous   Pane
	Current    Pane
	Next       Pane
	ShowHidden bool

	// Interaction
	Mode        Mode
	SearchQuery string

	// Preview of a non-directory selection
	Preview       *PreviewRequest
	PreviewData   *PreviewData
	PreviewLoader PreviewLoader
	previewToken  int

	// Status line
	Selection *SelectionInfo

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	// Lister reads directories; nil means the local filesystem.
	Lister fsutil.Lister

	// Path of a Current selection hidden by a filter toggle; restored if it
	// becomes visible again before the selection moves.
	pendingCurrent string

	dispatchAction func(Action)
}

// NewBrowserState validates start and returns a state rooted at its canonical
// absolute path. Panes are empty until the reducer loads them.
func NewBrowserState(start string, showHidden bool) (*BrowserState, error) {
	dir, err := CanonicalDir(start)
	if err != nil {
		return nil, err
	}
	return &BrowserState{
		WorkingDir: dir,
		ShowHidden: showHidden,
		Previous:   NewPane(nil),
		Current:    NewPane(nil),
		Next:       NewPane(nil),
	}, nil
}

// CanonicalDir resolves path to an absolute, symlink-free directory path.
func CanonicalDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("cannot resolve %s: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("cannot resolve %s: %w", path, err)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("cannot stat %s: %w", resolved, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", resolved)
	}
	return filepath.Clean(resolved), nil
}

// SetDispatch exposes the reducer dispatch hook to other packages.
func (s *BrowserState) SetDispatch(fn func(Action)) {
	s.dispatchAction = fn
}

func (s *BrowserState) getDispatch() func(Action) {
	return s.dispatchAction
}

func (s *BrowserState) lister() fsutil.Lister {
	if s.Lister == nil {
		return fsutil.DirLister{}
	}
	return s.Lister
}

// list reads path for a pane; an unreadable directory is an empty pane.
func (s *BrowserState) list(path string) []FileEntry {
	return fsutil.List(s.lister(), path, s.ShowHidden)
}

// ParentDir returns the parent of the working directory, or false at the
// filesystem root.
func (s *BrowserState) ParentDir() (string, bool) {
	return parentOf(s.WorkingDir)
}

func parentOf(dir string) (string, bool) {
	parent := filepath.Dir(dir)
	if parent == "" || parent == dir {
		return "", false
	}
	return parent, true
}

// ResultPath is the directory handed to the shell on exit: the Current
// selection when it is a directory, otherwise the working directory.
func (s *BrowserState) ResultPath() string {
	if entry, ok := s.Current.Selected(); ok && entry.IsDir() {
		return entry.Path
	}
	return s.WorkingDir
}

// VisibleLines is the number of pane rows on screen.
func (s *BrowserState) VisibleLines() int {
	lines := s.ScreenHeight - 2
	if lines < 1 {
		return 1
	}
	return lines
}

func (s *BrowserState) checkInvariants() error {
	if s.WorkingDir == "" || !filepath.IsAbs(s.WorkingDir) {
		return fmt.Errorf("%w: working directory %q is not absolute", ErrInvariant, s.WorkingDir)
	}
	if s.WorkingDir != filepath.Clean(s.WorkingDir) {
		return fmt.Errorf("%w: working directory %q is not clean", ErrInvariant, s.WorkingDir)
	}
	return nil
}
