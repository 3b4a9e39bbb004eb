package render

import (
	statepkg "github.com/Fabian1409/seldir/internal/state"
	textutil "github.com/Fabian1409/seldir/internal/textutil"
	"github.com/gdamore/tcell/v2"
)

// drawNext renders the Next column: the selected directory's listing or a
// preview of the selected file.
func (r *Renderer) drawNext(state *statepkg.BrowserState, col column, top, rows int) {
	if state.Next.Len() > 0 {
		r.drawPane(&state.Next, col, top, rows, false)
		return
	}

	entry, ok := state.Current.Selected()
	if !ok {
		return
	}
	if entry.IsDir() {
		r.drawPlaceholder(col, top, "empty")
		return
	}

	preview := state.PreviewData
	if preview == nil || preview.Path != entry.Path {
		r.drawPlaceholder(col, top, "loading…")
		return
	}

	if label := previewPlaceholder(preview); label != "" {
		r.drawPlaceholder(col, top, label)
		return
	}

	style := tcell.StyleDefault.Foreground(r.theme.Foreground)
	for row := 0; row < rows && row < len(preview.Lines); row++ {
		line := textutil.ExpandTabs(preview.Lines[row], textutil.DefaultTabWidth)
		line = textutil.SanitizeTerminalText(line)
		r.drawTextLine(col.start+1, top+row, col.width-1, line, style)
	}
}

// previewPlaceholder returns the label shown instead of file content, or ""
// when the text lines should be drawn.
func previewPlaceholder(preview *statepkg.PreviewData) string {
	switch {
	case preview.Err != nil:
		return "cannot read file"
	case preview.Kind == statepkg.PreviewPDF:
		return "PDF document"
	case preview.Kind == statepkg.PreviewImage:
		return "image"
	case preview.Binary:
		return "binary file"
	case len(preview.Lines) == 0:
		return "empty file"
	}
	return ""
}
