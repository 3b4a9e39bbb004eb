package render

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	statepkg "github.com/Fabian1409/seldir/internal/state"
	"github.com/gdamore/tcell/v2"
)

func TestTruncateTextToWidth(t *testing.T) {
	r := NewRenderer(nil, GetColorTheme())

	tests := []struct {
		name   string
		text   string
		width  int
		expect string
	}{
		{"fits without truncation", "file.txt", 20, "file.txt"},
		{"adds ellipsis when needed", "verylongname", 6, "veryl…"},
		{"only ellipsis when width too small", "example", 1, "…"},
		{"multi-byte characters respected", "你好世界", 5, "你好…"},
		{"returns empty when width is zero", "anything", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := r.truncateTextToWidth(tt.text, tt.width)
			if actual != tt.expect {
				t.Fatalf("expected %q, got %q (width %d)", tt.expect, actual, tt.width)
			}
		})
	}
}

func TestTruncateLeftKeepsPathTail(t *testing.T) {
	r := NewRenderer(nil, GetColorTheme())
	if got := r.truncateLeft("/home/user/projects", 9); got != "…projects" {
		t.Fatalf("got %q", got)
	}
	if got := r.truncateLeft("/tmp", 10); got != "/tmp" {
		t.Fatalf("got %q", got)
	}
}

func TestMeasureTextWidth(t *testing.T) {
	r := NewRenderer(nil, GetColorTheme())

	if got := r.measureTextWidth("abc"); got != 3 {
		t.Fatalf("expected ASCII width 3, got %d", got)
	}
	if got := r.measureTextWidth("你好"); got != 4 {
		t.Fatalf("expected wide rune width 4, got %d", got)
	}
}

func TestComputeLayout(t *testing.T) {
	m := computeLayout(100)
	if m.previous.width != 20 || m.previous.start != 0 {
		t.Fatalf("previous = %+v", m.previous)
	}
	if m.current.start != 21 || m.next.start != m.current.start+m.current.width+1 {
		t.Fatalf("current = %+v next = %+v", m.current, m.next)
	}
	if m.next.start+m.next.width != 100 {
		t.Fatalf("columns do not cover the screen: %+v", m)
	}

	narrow := computeLayout(30)
	if narrow.previous.width != 0 {
		t.Fatalf("narrow layout should drop Previous: %+v", narrow)
	}
	if narrow.current.width == 0 || narrow.next.width == 0 {
		t.Fatalf("narrow layout should keep Current and Next: %+v", narrow)
	}
}

func TestScrollWindow(t *testing.T) {
	tests := []struct {
		selected, total, rows, want int
	}{
		{0, 5, 10, 0},
		{50, 100, 10, 45},
		{2, 100, 10, 0},
		{99, 100, 10, 90},
		{-1, 100, 10, 0},
	}
	for _, tt := range tests {
		if got := scrollWindow(tt.selected, tt.total, tt.rows); got != tt.want {
			t.Errorf("scrollWindow(%d,%d,%d) = %d, want %d", tt.selected, tt.total, tt.rows, got, tt.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	if c, err := ParseColor("Red"); err != nil || c != tcell.ColorRed {
		t.Fatalf("ParseColor(Red) = %v, %v", c, err)
	}
	if c, err := ParseColor("#ff8800"); err != nil || c != tcell.NewHexColor(0xff8800) {
		t.Fatalf("ParseColor(#ff8800) = %v, %v", c, err)
	}
	if _, err := ParseColor("no-such-color"); err == nil {
		t.Fatalf("expected error for unknown color")
	}
	if _, err := ParseColor(""); err == nil {
		t.Fatalf("expected error for empty color")
	}
}

func TestFormatStatus(t *testing.T) {
	state := &statepkg.BrowserState{
		Current: statepkg.NewPane([]statepkg.FileEntry{{Name: "a"}, {Name: "b"}, {Name: "c"}}),
		Selection: &statepkg.SelectionInfo{
			Path:     "/tmp/b",
			Mode:     os.ModeDir | 0o755,
			Modified: time.Date(2024, 3, 5, 14, 7, 0, 0, time.Local),
		},
	}
	state.Current.SelectIndex(1)

	left, right := formatStatus(state)
	if left != "drwxr-xr-x 05-03-2024 14:07 /tmp/b" {
		t.Fatalf("left = %q", left)
	}
	if right != "2/3" {
		t.Fatalf("right = %q", right)
	}

	state.Mode = statepkg.ModePendingGoTo
	state.ShowHidden = true
	left, right = formatStatus(state)
	if left != "drwxr-xr-x 05-03-2024 14:07 /tmp/b" || right != "g  hidden  2/3" {
		t.Fatalf("left = %q right = %q", left, right)
	}
}

func TestPreviewPlaceholder(t *testing.T) {
	tests := []struct {
		name    string
		preview statepkg.PreviewData
		want    string
	}{
		{"pdf", statepkg.PreviewData{Kind: statepkg.PreviewPDF}, "PDF document"},
		{"image", statepkg.PreviewData{Kind: statepkg.PreviewImage}, "image"},
		{"binary", statepkg.PreviewData{Binary: true}, "binary file"},
		{"error", statepkg.PreviewData{Err: errors.New("denied")}, "cannot read file"},
		{"empty", statepkg.PreviewData{}, "empty file"},
		{"text", statepkg.PreviewData{Lines: []string{"hi"}}, ""},
	}
	for _, tt := range tests {
		if got := previewPlaceholder(&tt.preview); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func screenRow(screen tcell.SimulationScreen, y int) string {
	cells, w, _ := screen.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		cell := cells[y*w+x]
		if len(cell.Runes) == 0 {
			b.WriteByte(' ')
			continue
		}
		b.WriteString(string(cell.Runes))
	}
	return b.String()
}

func TestRenderDrawsThreeColumns(t *testing.T) {
	root := filepath.Join(t.TempDir(), "a")
	for _, dir := range []string{"b", "c"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, "b", "inner.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	state, err := statepkg.NewBrowserState(root, false)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := statepkg.NewStateReducer().Reduce(state, statepkg.LoadAction{}); err != nil {
		t.Fatal(err)
	}

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(100, 10)

	NewRenderer(screen, GetColorTheme()).Render(state)

	header := screenRow(screen, 0)
	if !strings.Contains(header, "a") {
		t.Fatalf("header %q should show the working directory", header)
	}
	first := screenRow(screen, 1)
	layout := computeLayout(100)
	if got := strings.TrimSpace(first[layout.previous.start : layout.previous.start+layout.previous.width]); got != "a/" {
		t.Fatalf("Previous column = %q, want a/", got)
	}
	if got := strings.TrimSpace(first[layout.current.start : layout.current.start+layout.current.width]); got != "b/" {
		t.Fatalf("Current column = %q, want b/", got)
	}
	if got := strings.TrimSpace(first[layout.next.start:]); got != "inner.txt" {
		t.Fatalf("Next column = %q, want inner.txt", got)
	}
	if status := screenRow(screen, 9); !strings.Contains(status, "1/2") {
		t.Fatalf("status line %q should show 1/2", status)
	}
}
