package textutil

import (
	"fmt"
	"strings"
	"unicode"
)

// SanitizeTerminalText replaces control and formatting characters so file
// names and file contents cannot inject escape sequences or reorder text
// when drawn. Format runes (bidi overrides, zero-width joiners) are shown
// as <U+XXXX>.
func SanitizeTerminalText(text string) string {
	if !strings.ContainsFunc(text, needsSanitizing) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		case r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0):
			b.WriteByte('?')
		case unicode.Is(unicode.Cf, r):
			fmt.Fprintf(&b, "<U+%04X>", r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsSanitizing(r rune) bool {
	if r == '\t' {
		return false
	}
	return r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0) || unicode.Is(unicode.Cf, r)
}
