package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bold", "[b]Hi[/b]", "\x1b[1mHi\x1b[0m"},
		{"256 color", "[color(208)]x[/color(208)]", "\x1b[38;5;208mx\x1b[0m"},
		{"hex", "[#ff8000]x[/#ff8000]", "\x1b[38;2;255;128;0mx\x1b[0m"},
		{
			"nested reapplies enclosing style",
			"[b]bold [u]underline[/u][/b]",
			"\x1b[1mbold \x1b[4munderline\x1b[0m\x1b[1m\x1b[0m",
		},
		{"unknown tag is literal", "[xyz]Unknown[/xyz]", "[xyz]Unknown[/xyz]"},
		{
			"compound tag emits codes in order",
			"[bold red]x[/bold red]",
			"\x1b[1m\x1b[31mx\x1b[0m",
		},
		{
			"compound with unknown token is literal",
			"[bold nope]x[/bold nope]",
			"[bold nope]x[/bold nope]",
		},
		{
			"out of range rgb is literal",
			"[rgb(300,0,0)]x[/rgb(300,0,0)]",
			"[rgb(300,0,0)]x[/rgb(300,0,0)]",
		},
		{
			"close pops regardless of name",
			"[red]a[b]b[/red]c[/b]",
			"\x1b[31ma\x1b[1mb\x1b[0m\x1b[31mc\x1b[0m",
		},
		{
			"unclosed styles are closed at end",
			"[b][u]x",
			"\x1b[1m\x1b[4mx\x1b[0m\x1b[1m\x1b[0m",
		},
		{"stray close is literal", "a[/b]c", "a[/b]c"},
		{"empty tag is literal", "[/]", "[/]"},
		{"plain text", "no tags here", "no tags here"},
		{"unterminated bracket", "[b]x [red", "\x1b[1mx [red\x1b[0m"},
		{"literal brackets", "list[0]", "list[0]"},
		{
			"background and bright",
			"[on_grey bright_white]x[/]",
			"\x1b[100m\x1b[97mx[/]\x1b[0m",
		},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Apply(tt.input))
		})
	}
}

func TestApplyIdentityWithoutBrackets(t *testing.T) {
	for _, s := range []string{"", "abc", "a]b", "tab\tnewline\n", "ünïcode ✓"} {
		assert.Equal(t, s, Apply(s))
	}
	assert.Equal(t, "\x1b[1m already styled", Apply("\x1b[1m already styled"))
}

func TestApplyIsStableWhenReapplied(t *testing.T) {
	inputs := []string{
		"[b]Hi[/b]",
		"[b]bold [u]underline[/u][/b] tail]",
		"[red on_blue]x[/]y]",
		"[#ff8000]x[/#ff8000]",
	}
	for _, in := range inputs {
		once := Apply(in)
		assert.Equal(t, once, Apply(once), "rendered output must not be reinterpreted: %q", in)
	}
}

func TestApplyResetCountMatchesCloses(t *testing.T) {
	tests := []struct {
		input  string
		closes int
	}{
		{"[b]x[/b]", 1},
		{"[b]a[u]b[/u]c[/b]", 2},
		{"[b][i][u]deep[/u][/i][/b]", 3},
		{"[b][i]open at end", 2},
		{"[xyz]x[/xyz]", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.closes, strings.Count(Apply(tt.input), Reset), tt.input)
	}
}

func TestUnresolvedTagIsByteIdentical(t *testing.T) {
	in := "before [bold wat]middle[/bold wat] after"
	assert.Equal(t, in, Apply(in))

	in = "[b]x [red #12]y[/red #12][/b]"
	assert.Equal(t, "\x1b[1mx [red #12]y[/red #12]\x1b[0m", Apply(in))
}

func TestStrip(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"[b]Hi[/b]", "Hi"},
		{"[b]bold [u]underline[/u][/b]", "bold underline"},
		{"[xyz]Unknown[/xyz]", "[xyz]Unknown[/xyz]"},
		{"[b]open", "open"},
		{"a[/b]c", "a[/b]c"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out := Strip(tt.input)
			assert.Equal(t, tt.expected, out)
			assert.NotContains(t, out, "\x1b")
		})
	}
}

func TestStylerTheme(t *testing.T) {
	s := NewStyler(Theme{
		"title":  "bold cyan",
		"broken": "bold nope",
		"red":    "blue",
	})

	assert.Equal(t, "\x1b[1m\x1b[36mReport\x1b[0m", s.Apply("[title]Report[/title]"))
	assert.Equal(t, "\x1b[1m\x1b[36m\x1b[4mx\x1b[0m", s.Apply("[title u]x[/title u]"))
	assert.Equal(t, "[broken]x[/broken]", s.Apply("[broken]x[/broken]"))
	assert.Equal(t, "\x1b[31mx\x1b[0m", s.Apply("[red]x[/red]"), "built-in tokens win over aliases")
	assert.Equal(t, "Report", s.Strip("[title]Report[/title]"))

	// aliases do not leak into the package-level renderer
	assert.Equal(t, "[title]x[/title]", Apply("[title]x[/title]"))
}

func TestStylerThemeIsCopied(t *testing.T) {
	theme := Theme{"title": "bold"}
	s := NewStyler(theme)
	theme["title"] = "red"
	theme["extra"] = "blue"

	assert.Equal(t, Theme{"title": "bold"}, s.Theme())
	assert.Equal(t, "\x1b[1mx\x1b[0m", s.Apply("[title]x[/title]"))
}

func TestZeroStyler(t *testing.T) {
	var s Styler
	assert.Equal(t, "\x1b[1mx\x1b[0m", s.Apply("[b]x[/b]"))
}
