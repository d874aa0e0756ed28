package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "plain text",
			input:    "hello world",
			expected: []Token{{Literal, "hello world"}},
		},
		{
			name:  "open and close",
			input: "[b]Hi[/b]",
			expected: []Token{
				{Open, "b"},
				{Literal, "Hi"},
				{Close, "b"},
			},
		},
		{
			name:  "compound tag keeps interior verbatim",
			input: "x[bold  red]y",
			expected: []Token{
				{Literal, "x"},
				{Open, "bold  red"},
				{Literal, "y"},
			},
		},
		{
			name:  "hex tag",
			input: "[#ff8000]x[/#ff8000]",
			expected: []Token{
				{Open, "#ff8000"},
				{Literal, "x"},
				{Close, "#ff8000"},
			},
		},
		{
			name:     "bracket followed by digit is literal",
			input:    "items[0] and [1]",
			expected: []Token{{Literal, "items[0] and [1]"}},
		},
		{
			name:     "escape sequence is literal",
			input:    "\x1b[1mbold]",
			expected: []Token{{Literal, "\x1b[1mbold]"}},
		},
		{
			name:  "unterminated bracket becomes literal suffix",
			input: "a [b]c [red never closed",
			expected: []Token{
				{Literal, "a "},
				{Open, "b"},
				{Literal, "c [red never closed"},
			},
		},
		{
			name:     "trailing bracket",
			input:    "end[",
			expected: []Token{{Literal, "end["}},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:  "empty close",
			input: "[/]",
			expected: []Token{
				{Close, ""},
			},
		},
		{
			name:  "unicode letter starts tag",
			input: "[é]",
			expected: []Token{
				{Open, "é"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestTokenRaw(t *testing.T) {
	for _, input := range []string{"[b]Hi[/b]", "a[x y]b[/x y]c", "[/]", "tail ["} {
		var raw string
		for _, tok := range Tokenize(input) {
			raw += tok.Raw()
		}
		assert.Equal(t, input, raw, "tokens must reassemble their source")
	}
}

func TestTokenSpec(t *testing.T) {
	assert.Equal(t, []string{"bold", "red"}, Token{Open, " bold\tred "}.Spec())
	assert.Nil(t, Token{Literal, "bold"}.Spec())
	assert.Equal(t, "close", Close.String())
}
