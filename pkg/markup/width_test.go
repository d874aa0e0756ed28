package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"empty", "", 0},
		{"plain", "Header 1", 8},
		{"styled", "\x1b[1mHeader 1\x1b[0m", 8},
		{"truecolor", "\x1b[38;2;255;128;0mx\x1b[0m", 1},
		{"multiple codes", "\x1b[1m\x1b[31ma\x1b[0m\x1b[1mb\x1b[0m", 2},
		{"non ascii counts once per rune", "héllo", 5},
		{"rendered markup", Apply("[b]Row 1 Col 1[/b]"), 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, VisibleWidth(tt.input))
		})
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "\x1b[1mab\x1b[0m ", PadRight("\x1b[1mab\x1b[0m", 3))
	assert.Equal(t, "abcdef", PadRight("abcdef", 3))
	assert.Equal(t, "", PadRight("", 0))
}
