package render

import (
	"sync"

	statepkg "github.com/Fabian1409/seldir/internal/state"
	textutil "github.com/Fabian1409/seldir/internal/textutil"
	"github.com/gdamore/tcell/v2"
)

// Renderer handles all UI rendering
type Renderer struct {
	screen           tcell.Screen
	theme            ColorTheme
	runeWidthCache   [128]int // ASCII cache (0-127)
	runeWidthCacheMu sync.RWMutex
	runeWidthWide    sync.Map // For non-ASCII runes
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen, theme ColorTheme) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  theme,
	}
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.BrowserState) {
	r.screen.Clear()

	w, h := r.screen.Size()
	if w <= 0 || h <= 0 || state == nil {
		r.screen.Show()
		return
	}

	r.drawHeader(state, w)

	layout := computeLayout(w)
	top, rows := 1, h-2
	if rows > 0 {
		if layout.previous.width > 0 {
			r.drawPane(&state.Previous, layout.previous, top, rows, false)
		}
		r.drawPane(&state.Current, layout.current, top, rows, true)
		if layout.next.width > 0 {
			r.drawNext(state, layout.next, top, rows)
		}
	}

	r.drawStatusLine(state, w, h-1)
	r.screen.Show()
}

// drawHeader renders the working directory on the top row.
func (r *Renderer) drawHeader(state *statepkg.BrowserState, w int) {
	style := tcell.StyleDefault.Foreground(r.theme.Accent).Bold(true)
	path := r.truncateLeft(textutil.SanitizeTerminalText(state.WorkingDir), w)
	endX := r.drawTextLine(0, 0, w, path, style)
	r.fill(endX, w, 0, tcell.StyleDefault)
}

// drawPane renders one directory column. The active pane draws its
// selection with the accent background; side panes only mark it.
func (r *Renderer) drawPane(pane *statepkg.Pane, col column, top, rows int, active bool) {
	entries := pane.Entries()
	selected, hasSelection := pane.SelectedIndex()
	if !hasSelection {
		selected = -1
	}

	if len(entries) == 0 {
		if active {
			r.drawPlaceholder(col, top, "empty")
		}
		return
	}

	start := scrollWindow(selected, len(entries), rows)
	for row := 0; row < rows && start+row < len(entries); row++ {
		idx := start + row
		entry := entries[idx]
		style := r.entryStyle(entry, idx == selected, active)

		name := textutil.SanitizeTerminalText(entry.Name)
		if entry.IsDir() {
			name += "/"
		}
		text := " " + r.truncateTextToWidth(name, col.width-1)
		y := top + row
		endX := r.drawTextLine(col.start, y, col.width, text, style)
		if idx == selected {
			r.fill(endX, col.start+col.width, y, style)
		}
	}
}

func (r *Renderer) entryStyle(entry statepkg.FileEntry, selected, active bool) tcell.Style {
	style := tcell.StyleDefault.Foreground(r.theme.FileFg)
	if entry.IsDir() {
		style = style.Foreground(r.theme.DirectoryFg).Bold(true)
	}
	if entry.IsHidden() {
		style = style.Foreground(r.theme.HiddenFg)
	}
	if !selected {
		return style
	}
	if active {
		return tcell.StyleDefault.Background(r.theme.Accent).Foreground(r.theme.SelectionFg).Bold(true)
	}
	return style.Reverse(true)
}

func (r *Renderer) drawPlaceholder(col column, y int, text string) {
	style := tcell.StyleDefault.Foreground(r.theme.DimFg).Italic(true)
	r.drawTextLine(col.start, y, col.width, " "+r.truncateTextToWidth(text, col.width-1), style)
}

// drawStatusLine renders selection metadata, or the search prompt while
// searching.
func (r *Renderer) drawStatusLine(state *statepkg.BrowserState, w, y int) {
	if y < 1 {
		return
	}
	base := tcell.StyleDefault

	if state.Mode == statepkg.ModeSearchActive {
		prompt := textutil.SanitizeTerminalText(formatSearchPrompt(state.SearchQuery))
		endX := r.drawTextLine(0, y, w, r.truncateLeft(prompt, w-1), base.Foreground(r.theme.Accent))
		if endX < w {
			r.screen.SetContent(endX, y, '█', nil, base.Foreground(r.theme.Accent))
		}
		return
	}

	left, right := formatStatus(state)
	right = textutil.SanitizeTerminalText(right)
	rightWidth := r.measureTextWidth(right)
	leftWidth := w - rightWidth - 1
	leftStyle := base.Foreground(r.theme.DimFg)
	if leftWidth > 0 {
		left = r.truncateTextToWidth(textutil.SanitizeTerminalText(left), leftWidth)
		r.drawTextLine(0, y, leftWidth, left, leftStyle)
	}
	if rightWidth <= w {
		r.drawTextLine(w-rightWidth, y, rightWidth, right, base.Foreground(r.theme.Accent))
	}
}
