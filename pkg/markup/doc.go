/*
Package markup renders bracket-tag markup into ANSI styled text.

Markup uses rich-style tags:

	[bold red]error:[/bold red] file not found
	[#ff8000]orange[/] [on_color(236)]dark background[/on_color(236)]

A tag holds one or more whitespace-separated style tokens. Recognized tokens
are text attributes (bold/b, dim, italic/i, underline/u, blink,
inverse/reverse, hidden, strike/strikethrough/s, overline), the eight
standard colors and their bright_ variants, on_ backgrounds, 256-color
indexes via color(N)/on_color(N), truecolor via rgb(r,g,b)/on_rgb(r,g,b) and
hex #RRGGBB/on_#RRGGBB.

# Rendering protocol

Open tags push their escape codes on a stack. A closing tag pops the most
recent entry regardless of its text, emits a full reset (ESC[0m) and then
re-emits every style still open, bottom to top. Styles left open at the end
of the input are closed the same way, so the output never leaks styling.

# Failure policy

Nothing in this package returns an error. A tag with any unknown token, a
malformed argument or an out-of-range value is copied to the output
unchanged, as is a closing tag with nothing left to close.

# Themes

A Theme adds named aliases on top of the built-in tokens:

	s := markup.NewStyler(markup.Theme{"title": "bold cyan"})
	s.Apply("[title]Report[/title]")

Strip renders the same markup without escape codes, for output that cannot
display color.
*/
package markup
