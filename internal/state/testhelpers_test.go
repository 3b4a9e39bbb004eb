package state

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// newScenarioTree builds <tmp>/a with subdirectories b, c and file z.txt and
// returns the canonical path of a.
func newScenarioTree(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "a")
	mustMkdir(t, filepath.Join(root, "b"))
	mustMkdir(t, filepath.Join(root, "c"))
	mustWriteFile(t, filepath.Join(root, "z.txt"), "zzz\n")
	dir, err := CanonicalDir(root)
	if err != nil {
		t.Fatalf("CanonicalDir: %v", err)
	}
	return dir
}

func loadedState(t *testing.T, dir string, showHidden bool) (*BrowserState, *StateReducer) {
	t.Helper()
	state, err := NewBrowserState(dir, showHidden)
	if err != nil {
		t.Fatalf("NewBrowserState(%s): %v", dir, err)
	}
	state.ScreenWidth = 80
	state.ScreenHeight = 24
	reducer := NewStateReducer()
	mustReduce(t, reducer, state, LoadAction{})
	return state, reducer
}

func mustReduce(t *testing.T, reducer *StateReducer, state *BrowserState, action Action) {
	t.Helper()
	if _, err := reducer.Reduce(state, action); err != nil {
		t.Fatalf("Reduce(%T): %v", action, err)
	}
}

func joinedNames(p *Pane) string {
	return strings.Join(p.Names(), ",")
}

func selectByName(t *testing.T, reducer *StateReducer, state *BrowserState, name string) {
	t.Helper()
	for i, n := range state.Current.Names() {
		if n == name {
			reducer.selectIndex(state, i)
			return
		}
	}
	t.Fatalf("entry %q not in Current pane [%s]", name, joinedNames(&state.Current))
}
