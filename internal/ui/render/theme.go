package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// DefaultAccent is the accent color used when none is configured.
const DefaultAccent = "red"

// ColorTheme defines application colors.
type ColorTheme struct {
	Accent      tcell.Color
	Foreground  tcell.Color
	DirectoryFg tcell.Color
	FileFg      tcell.Color
	HiddenFg    tcell.Color
	SelectionFg tcell.Color
	DimFg       tcell.Color
}

// NewColorTheme returns the color scheme built around accent.
func NewColorTheme(accent tcell.Color) ColorTheme {
	return ColorTheme{
		Accent:      accent,
		Foreground:  tcell.ColorDefault,
		DirectoryFg: accent,
		FileFg:      tcell.ColorDefault,
		HiddenFg:    tcell.ColorLightSlateGray,
		SelectionFg: tcell.ColorWhite,
		DimFg:       tcell.ColorGray,
	}
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	accent, _ := ParseColor(DefaultAccent)
	return NewColorTheme(accent)
}

// ParseColor accepts tcell color names ("red", "darkcyan") and "#rrggbb".
func ParseColor(name string) (tcell.Color, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return tcell.ColorDefault, fmt.Errorf("empty color")
	}
	color := tcell.GetColor(normalized)
	if color == tcell.ColorDefault && normalized != "default" {
		return tcell.ColorDefault, fmt.Errorf("unknown color %q", name)
	}
	return color, nil
}
