package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

func mustWriteFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func entryNames(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

func TestListOrdersDirectoriesBeforeFiles(t *testing.T) {
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "c"))
	mustMkdir(t, filepath.Join(root, "b"))
	mustWriteFile(t, filepath.Join(root, "z.txt"))
	mustWriteFile(t, filepath.Join(root, "a.txt"))

	got := strings.Join(entryNames(List(DirLister{}, root, false)), ",")
	if got != "b,c,a.txt,z.txt" {
		t.Fatalf("List order = %s, want b,c,a.txt,z.txt", got)
	}
}

func TestListScenarioFromParentDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "a")
	mustMkdir(t, filepath.Join(root, "b"))
	mustMkdir(t, filepath.Join(root, "c"))
	mustWriteFile(t, filepath.Join(root, "z.txt"))

	entries := List(DirLister{}, root, false)
	if got := strings.Join(entryNames(entries), ","); got != "b,c,z.txt" {
		t.Fatalf("List = %s, want b,c,z.txt", got)
	}
	if entries[0].Kind != KindDirectory || entries[2].Kind != KindFile {
		t.Fatalf("unexpected kinds: %v %v", entries[0].Kind, entries[2].Kind)
	}
	if entries[0].Path != filepath.Join(root, "b") {
		t.Fatalf("entry path = %s, want %s", entries[0].Path, filepath.Join(root, "b"))
	}
}

func TestListUsesByteOrderWithinKind(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"beta", "Zeta", "alpha", "_x"} {
		mustWriteFile(t, filepath.Join(root, name))
	}

	got := strings.Join(entryNames(List(DirLister{}, root, false)), ",")
	if got != "Zeta,_x,alpha,beta" {
		t.Fatalf("List order = %s, want Zeta,_x,alpha,beta", got)
	}
}

func TestListHidesDotEntriesUnlessRequested(t *testing.T) {
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, ".git"))
	mustMkdir(t, filepath.Join(root, "src"))
	mustWriteFile(t, filepath.Join(root, ".env"))
	mustWriteFile(t, filepath.Join(root, "main.go"))

	hidden := List(DirLister{}, root, false)
	for _, e := range hidden {
		if strings.HasPrefix(e.Name, ".") {
			t.Fatalf("hidden entry %q listed with showHidden=false", e.Name)
		}
	}

	all := List(DirLister{}, root, true)
	if got := strings.Join(entryNames(all), ","); got != ".git,src,.env,main.go" {
		t.Fatalf("List(showHidden) = %s", got)
	}

	var visible []string
	for _, e := range all {
		if !strings.HasPrefix(e.Name, ".") {
			visible = append(visible, e.Name)
		}
	}
	if strings.Join(visible, ",") != strings.Join(entryNames(hidden), ",") {
		t.Fatalf("showHidden listing restricted to visible names %v differs from %v", visible, entryNames(hidden))
	}
}

func TestListExcludesSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require elevated privileges on windows")
	}
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "real"))
	mustWriteFile(t, filepath.Join(root, "file.txt"))
	if err := os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "loop")); err != nil {
		t.Fatalf("symlink: %v", err)
	}
	if err := os.Symlink(filepath.Join(root, "file.txt"), filepath.Join(root, "alias.txt")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	got := strings.Join(entryNames(List(DirLister{}, root, true)), ",")
	if got != "real,file.txt" {
		t.Fatalf("List = %s, want real,file.txt", got)
	}
}

func TestListMissingDirectoryIsEmpty(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone")
	if entries := List(DirLister{}, missing, false); len(entries) != 0 {
		t.Fatalf("expected empty listing, got %v", entries)
	}
	if _, err := ReadDir(missing, false); err == nil {
		t.Fatal("expected ReadDir to report an error for a missing directory")
	}
}

func TestListUnreadableDirectoryIsEmpty(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}
	root := t.TempDir()
	locked := filepath.Join(root, "locked")
	mustMkdir(t, locked)
	mustWriteFile(t, filepath.Join(locked, "secret"))
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	if entries := List(DirLister{}, locked, true); len(entries) != 0 {
		t.Fatalf("expected empty listing for unreadable dir, got %v", entries)
	}
}

func TestClassifyMode(t *testing.T) {
	tests := []struct {
		mode os.FileMode
		want Kind
	}{
		{os.ModeDir | 0o755, KindDirectory},
		{0o644, KindFile},
		{os.ModeSymlink | 0o777, KindUnreadable},
		{os.ModeNamedPipe, KindFile},
	}
	for _, tt := range tests {
		if got := ClassifyMode(tt.mode); got != tt.want {
			t.Errorf("ClassifyMode(%v) = %v, want %v", tt.mode, got, tt.want)
		}
	}
}
