package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/turboterm/pkg/markup"
)

// literalMark stands in for text that must not be read as markup. It is
// swapped back in after rendering.
const literalMark = "\x00"

// helpText accumulates help markup. Values added through literal are kept
// out of rendering, so brackets in defaults or flag usages are never styled.
type helpText struct {
	strings.Builder
	literals []string
}

func (h *helpText) literal(s string) string {
	h.literals = append(h.literals, s)
	return literalMark
}

func (h *helpText) render(render func(string) string) string {
	parts := strings.Split(render(h.String()), literalMark)
	var b strings.Builder
	for i, part := range parts {
		b.WriteString(part)
		if i < len(parts)-1 && i < len(h.literals) {
			b.WriteString(h.literals[i])
		}
	}
	return b.String()
}

func firstLine(doc string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(doc), "\n")
	return strings.TrimSpace(line)
}

// writeHelp renders help for cmd, which is the root, a registered command
// or a cobra command added through Configure.
func (a *App) writeHelp(w io.Writer, cmd *cobra.Command) {
	c := a.Console(w)

	var text string
	switch {
	case !cmd.HasParent():
		text = a.rootHelp(cmd).render(c.Render)
	case a.Registry != nil && a.Registry.commands.Has(cmd.Name()):
		registered, _ := a.Registry.Get(cmd.Name())
		text = a.CommandHelp(registered, c.Render)
	default:
		text = strings.TrimSpace(cmd.Long) + "\n\n" + cmd.UsageString()
	}
	fmt.Fprint(w, strings.TrimLeft(text, "\n"))
}

// rootHelp lists every visible command, registered or not.
func (a *App) rootHelp(root *cobra.Command) *helpText {
	var b helpText
	if doc := strings.TrimSpace(a.Doc); doc != "" {
		b.WriteString(doc + "\n\n")
	}
	fmt.Fprintf(&b, "[bold]Usage:[/bold] %s <command> [options]\n", a.Name)

	var rows [][2]string
	for _, sub := range root.Commands() {
		if sub.Hidden || !sub.IsAvailableCommand() && sub.Name() != "help" {
			continue
		}
		summary := sub.Short
		if a.Registry != nil {
			if registered, err := a.Registry.Get(sub.Name()); err == nil {
				summary = registered.Summary()
			}
		}
		rows = append(rows, [2]string{sub.Name(), summary})
	}
	if len(rows) > 0 {
		b.WriteString("\n[bold]Commands:[/bold]\n")
		writeColumns(&b.Builder, rows)
	}

	if usages := root.LocalFlags().FlagUsages(); usages != "" {
		b.WriteString("\n[bold]Options:[/bold]\n")
		b.WriteString(b.literal(usages))
	}
	fmt.Fprintf(&b, "\nRun '%s <command> --help' for details on a command.\n", a.Name)
	return &b
}

// CommandHelp builds the help text of a registered command. The command's
// markup goes through render (a Console's Render, markup.Apply or
// markup.Strip); parameter defaults are written as they are.
func (a *App) CommandHelp(cmd *Command, render func(string) string) string {
	var b helpText

	if doc := strings.TrimSpace(cmd.Doc); doc != "" {
		b.WriteString(doc + "\n\n")
	}

	usage := []string{a.Name, cmd.Name}
	if len(cmd.options()) > 0 {
		usage = append(usage, "[options]")
	}
	for _, p := range cmd.positionals() {
		if p.Required {
			usage = append(usage, "<"+p.Name+">")
		} else {
			usage = append(usage, "[<"+p.Name+">]")
		}
	}
	fmt.Fprintf(&b, "[bold]Usage:[/bold] %s\n", strings.Join(usage, " "))

	if positionals := cmd.positionals(); len(positionals) > 0 {
		rows := make([][2]string, 0, len(positionals))
		for _, p := range positionals {
			rows = append(rows, [2]string{p.Name, b.describe(p)})
		}
		b.WriteString("\n[bold]Arguments:[/bold]\n")
		writeColumns(&b.Builder, rows)
	}

	rows := make([][2]string, 0, len(cmd.options())+1)
	for _, p := range cmd.options() {
		rows = append(rows, [2]string{flagSpelling(p), b.describe(p)})
	}
	rows = append(rows, [2]string{"-h, --help", "Show this message and exit"})
	b.WriteString("\n[bold]Options:[/bold]\n")
	writeColumns(&b.Builder, rows)

	if after := strings.TrimSpace(cmd.AfterHelp); after != "" {
		b.WriteString("\n" + after + "\n")
	}
	return b.render(render)
}

func flagSpelling(p Param) string {
	s := "    "
	if short := p.shortFlag(); short != "" {
		s = "-" + short + ", "
	}
	s += "--" + p.longFlag()
	if p.Type != Bool {
		s += " <" + p.Type.String() + ">"
	}
	return s
}

func (h *helpText) describe(p Param) string {
	parts := []string{}
	if p.Help != "" {
		parts = append(parts, p.Help)
	}
	switch {
	case p.Required:
		parts = append(parts, "[dim](required)[/dim]")
	case p.Default != nil:
		parts = append(parts, "[dim](default: "+h.literal(fmt.Sprint(p.defaultValue()))+")[/dim]")
	}
	return strings.Join(parts, " ")
}

// writeColumns writes two aligned columns; the left one is padded on its
// visible width so markup does not break alignment.
func writeColumns(b *strings.Builder, rows [][2]string) {
	width := 0
	for _, row := range rows {
		width = max(width, markup.VisibleWidth(markup.Strip(row[0])))
	}
	for _, row := range rows {
		left := row[0] + strings.Repeat(" ", width-markup.VisibleWidth(markup.Strip(row[0])))
		line := "  " + left
		if row[1] != "" {
			line += "  " + row[1]
		}
		b.WriteString(strings.TrimRight(line, " ") + "\n")
	}
}
