package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/arthur-debert/turboterm/internal/version"
	"github.com/arthur-debert/turboterm/pkg/cli"
	"github.com/arthur-debert/turboterm/pkg/config"
	"github.com/arthur-debert/turboterm/pkg/errors"
	"github.com/arthur-debert/turboterm/pkg/logging"
	"github.com/arthur-debert/turboterm/pkg/markup"
	"github.com/arthur-debert/turboterm/pkg/rows"
)

// textArg returns the named positional, or standard input without its
// trailing newline when it was omitted.
func textArg(ctx *cli.Context, name string) (string, error) {
	if ctx.IsSet(name) {
		return ctx.String(name), nil
	}
	data, err := io.ReadAll(ctx.In)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileAccess, MsgErrReadInput)
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

func newStyleCmd() *cli.Command {
	return &cli.Command{
		Name: "style",
		Doc:  MsgStyleLong,
		AfterHelp: `[bold]Examples:[/bold]
  turboterm style --color always < banner.txt
  turboterm style --plain "$(cat notes.txt)"`,
		Params: []cli.Param{
			{Name: "text", Kind: cli.Positional, Help: MsgArgText},
			{Name: "plain", Kind: cli.Option, Type: cli.Bool, Flags: []string{"--plain", "-p"}, Help: MsgFlagPlain},
		},
		Run: func(ctx *cli.Context) error {
			text, err := textArg(ctx, "text")
			if err != nil {
				return err
			}
			if ctx.Bool("plain") {
				_, err = fmt.Fprintln(ctx.Out, ctx.Console.Styler().Strip(text))
				return err
			}
			return ctx.Console.Print(text)
		},
	}
}

func newStripCmd() *cli.Command {
	return &cli.Command{
		Name: "strip",
		Doc:  MsgStripShort + ".\n\nUnknown tags are kept since they are not markup.",
		Params: []cli.Param{
			{Name: "text", Kind: cli.Positional, Help: MsgArgText},
		},
		Run: func(ctx *cli.Context) error {
			text, err := textArg(ctx, "text")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(ctx.Out, ctx.Console.Styler().Strip(text))
			return err
		},
	}
}

func newWidthCmd() *cli.Command {
	return &cli.Command{
		Name: "width",
		Doc:  MsgWidthShort + ".\n\nEscape codes take no columns; every other character takes one.",
		Params: []cli.Param{
			{Name: "text", Kind: cli.Positional, Required: true, Help: "Markup text"},
		},
		Run: func(ctx *cli.Context) error {
			rendered := ctx.Console.Styler().Apply(ctx.String("text"))
			_, err := fmt.Fprintln(ctx.Out, markup.VisibleWidth(rendered))
			return err
		},
	}
}

func newTableCmd() *cli.Command {
	return &cli.Command{
		Name: "table",
		Doc:  MsgTableLong,
		Params: []cli.Param{
			{Name: "file", Kind: cli.Positional, Help: MsgArgFile},
			{Name: "format", Kind: cli.Option, Flags: []string{"--format", "-f"}, Help: MsgFlagFormat},
		},
		Run: func(ctx *cli.Context) error {
			logger := logging.GetLogger("cli.table")

			input := ctx.In
			format := rows.CSV
			if path := ctx.String("file"); ctx.IsSet("file") {
				f, err := os.Open(path)
				if err != nil {
					return errors.Wrapf(err, errors.ErrFileAccess, MsgErrOpenFile, path).
						WithDetail("path", path)
				}
				defer func() { _ = f.Close() }()
				input = f
				format = rows.FormatFromPath(path)
			}
			if ctx.IsSet("format") {
				f, err := rows.ParseFormat(ctx.String("format"))
				if err != nil {
					return err
				}
				format = f
			}

			data, err := rows.Decode(input, format)
			if err != nil {
				return err
			}
			logger.Debug().Str("format", string(format)).Int("rows", len(data)).Msg("Rows decoded")
			return ctx.Console.Table(data)
		},
	}
}

func newThemesCmd() *cli.Command {
	return &cli.Command{
		Name: "themes",
		Doc:  MsgThemesShort + ".",
		Run: func(ctx *cli.Context) error {
			theme := ctx.Console.Styler().Theme()
			if len(theme) == 0 {
				return ctx.Console.Print(MsgNoThemes)
			}

			names := make([]string, 0, len(theme))
			for name := range theme {
				names = append(names, name)
			}
			sort.Strings(names)

			data := [][]string{{"[bold]alias[/bold]", "[bold]styles[/bold]", "[bold]sample[/bold]"}}
			for _, name := range names {
				sample := fmt.Sprintf("[%s]%s[/%s]", name, MsgThemeSample, name)
				data = append(data, []string{name, theme[name], sample})
			}
			return ctx.Console.Table(data)
		},
	}
}

func newConfigCmd(s *session) *cli.Command {
	return &cli.Command{
		Name: "config",
		Doc:  MsgConfigShort + ".\n\nThe output merges defaults, the config file, the environment and flags.",
		Params: []cli.Param{
			{Name: "template", Kind: cli.Option, Type: cli.Bool, Flags: []string{"--template", "-t"}, Help: MsgFlagTemplate},
			{Name: "init", Kind: cli.Option, Type: cli.Bool, Flags: []string{"--init"}, Help: MsgFlagInit},
		},
		Run: func(ctx *cli.Context) error {
			switch {
			case ctx.Bool("init"):
				path := config.UserConfigPath()
				written, err := config.WriteTemplate(path)
				if err != nil {
					return err
				}
				if !written {
					return ctx.Console.Printf(MsgConfigExists, path)
				}
				return ctx.Console.Printf(MsgConfigWritten, path)
			case ctx.Bool("template"):
				_, err := io.WriteString(ctx.Out, config.Template())
				return err
			}

			if s.cfg == nil {
				return errors.New(errors.ErrInternal, "configuration not loaded")
			}
			dump, err := s.cfg.Dump()
			if err != nil {
				return err
			}
			_, err = io.WriteString(ctx.Out, dump)
			return err
		},
	}
}

func newVersionCmd() *cli.Command {
	return &cli.Command{
		Name: "version",
		Doc:  MsgVersionShort + ".\n\nIncludes the commit hash and build date.",
		Run: func(ctx *cli.Context) error {
			fmt.Fprintf(ctx.Out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(ctx.Out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(ctx.Out, MsgBuiltFormat, version.Date)
			}
			return nil
		},
	}
}
