package render

import (
	"fmt"
	"strings"

	fsutil "github.com/Fabian1409/seldir/internal/fs"
	statepkg "github.com/Fabian1409/seldir/internal/state"
)

const modifiedLayout = "02-01-2006 15:04"

// formatStatus builds the left and right halves of the status bar.
func formatStatus(state *statepkg.BrowserState) (string, string) {
	var left []string
	if sel := state.Selection; sel != nil {
		left = append(left, fsutil.SymbolicPermissions(sel.Mode))
		left = append(left, sel.Modified.Format(modifiedLayout))
		left = append(left, sel.Path)
	}

	var right []string
	if state.Mode == statepkg.ModePendingGoTo {
		right = append(right, "g")
	}
	if state.ShowHidden {
		right = append(right, "hidden")
	}
	right = append(right, formatPosition(&state.Current))

	return strings.Join(left, " "), strings.Join(right, "  ")
}

// formatPosition renders the 1-based selection index and entry count.
func formatPosition(p *statepkg.Pane) string {
	idx, ok := p.SelectedIndex()
	if !ok {
		return fmt.Sprintf("0/%d", p.Len())
	}
	return fmt.Sprintf("%d/%d", idx+1, p.Len())
}

func formatSearchPrompt(query string) string {
	return "/" + query
}
