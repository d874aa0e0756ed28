package markup

import (
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

// VisibleWidth returns the number of characters s occupies once its escape
// sequences are removed. Every remaining rune counts as one column.
func VisibleWidth(s string) int {
	return utf8.RuneCountInString(ansi.Strip(s))
}

// PadRight pads s with spaces up to width visible columns. Strings already
// at or beyond width are returned unchanged.
func PadRight(s string, width int) string {
	n := width - VisibleWidth(s)
	if n <= 0 {
		return s
	}
	buf := make([]byte, 0, len(s)+n)
	buf = append(buf, s...)
	for ; n > 0; n-- {
		buf = append(buf, ' ')
	}
	return string(buf)
}
