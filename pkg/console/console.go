// Package console prints markup to a writer, styled when the destination
// can show color and plain otherwise.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/turboterm/pkg/config"
	"github.com/arthur-debert/turboterm/pkg/logging"
	"github.com/arthur-debert/turboterm/pkg/markup"
	"github.com/arthur-debert/turboterm/pkg/table"
)

// Options configures a Console.
type Options struct {
	// Mode is one of config.ColorAuto, config.ColorAlways, config.ColorNever.
	// Empty means auto.
	Mode string

	// Styler renders markup; nil uses the built-in tokens only.
	Styler *markup.Styler
}

// Console writes rendered markup and tables to an output.
type Console struct {
	out    io.Writer
	styler *markup.Styler
	color  bool
}

// New creates a Console writing to w.
func New(w io.Writer, opts Options) *Console {
	styler := opts.Styler
	if styler == nil {
		styler = &markup.Styler{}
	}
	c := &Console{
		out:    w,
		styler: styler,
		color:  ColorEnabled(w, opts.Mode),
	}
	logger := logging.GetLogger("console")
	logger.Trace().
		Str("mode", opts.Mode).
		Bool("color", c.color).
		Msg("Console created")
	return c
}

// ColorEnabled decides whether output to w should carry escape codes.
// In auto mode NO_COLOR disables color and only terminals get it.
func ColorEnabled(w io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if termenv.EnvNoColor() {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Colored reports whether the console emits escape codes.
func (c *Console) Colored() bool {
	return c.color
}

// Styler returns the styler used for rendering.
func (c *Console) Styler() *markup.Styler {
	return c.styler
}

// Render renders markup for this console's output.
func (c *Console) Render(text string) string {
	if c.color {
		return c.styler.Apply(text)
	}
	return c.styler.Strip(text)
}

// Print writes rendered text followed by a newline.
func (c *Console) Print(text string) error {
	_, err := io.WriteString(c.out, c.Render(text)+"\n")
	return err
}

// Printf renders the markup in format, then formats and prints. The
// arguments are written as they are, so brackets in them are never styled.
func (c *Console) Printf(format string, args ...interface{}) error {
	_, err := io.WriteString(c.out, fmt.Sprintf(c.Render(format), args...)+"\n")
	return err
}

// BuildTable lays out rows for this console. Cells are rendered once, the
// way Print renders them. Without color, escape codes already in the cells
// are removed too.
func (c *Console) BuildTable(rows [][]string) *table.Table {
	t := table.NewStyled(c.styler)
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = c.Render(cell)
			if !c.color {
				cells[i] = ansi.Strip(cells[i])
			}
		}
		t.AddRenderedRow(cells...)
	}
	return t
}

// Table writes rows as a box-drawing table followed by a newline.
func (c *Console) Table(rows [][]string) error {
	var b strings.Builder
	b.WriteString(c.BuildTable(rows).String())
	b.WriteByte('\n')
	_, err := io.WriteString(c.out, b.String())
	return err
}
