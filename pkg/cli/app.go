package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/turboterm/pkg/console"
	"github.com/arthur-debert/turboterm/pkg/errors"
	"github.com/arthur-debert/turboterm/pkg/logging"
	"github.com/arthur-debert/turboterm/pkg/markup"
)

// App binds a command registry to a program name and its I/O.
type App struct {
	Name    string
	Doc     string
	Version string

	Registry *Registry

	// In, Out and Err default to the process streams.
	In  io.Reader
	Out io.Writer
	Err io.Writer

	// Styler and ColorMode control how help, diagnostics and command output
	// are rendered. Before may change them.
	Styler    *markup.Styler
	ColorMode string

	// Configure is called once with the built root command, e.g. to add
	// persistent flags or extra cobra commands.
	Configure func(root *cobra.Command)

	// Before runs after flag parsing, ahead of any command or help output.
	Before func(cmd *cobra.Command) error
}

// Run dispatches args (without the program name) and returns the process
// exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	root := a.Build()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err != nil {
		a.report(root, err)
	}
	return errors.ExitCode(err)
}

// Build creates the cobra command tree.
func (a *App) Build() *cobra.Command {
	root := &cobra.Command{
		Use:           a.Name,
		Short:         markup.Strip(firstLine(a.Doc)),
		Long:          markup.Strip(a.Doc),
		Version:       a.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag:          true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.Before != nil {
				return a.Before(cmd)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				a.writeHelp(cmd.OutOrStdout(), cmd)
				return errors.New(errors.ErrUsage, "no command given")
			}
			err := errors.Newf(errors.ErrUnknownCommand, "unknown command %q", args[0]).
				WithDetail("command", args[0])
			if suggestions := cmd.SuggestionsFor(args[0]); len(suggestions) > 0 {
				err.WithDetail("suggestions", suggestions)
			}
			return err
		},
	}
	root.SetIn(a.in())
	root.SetOut(a.out())
	root.SetErr(a.err())
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(err, errors.ErrUsage, "invalid flags")
	})
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if a.Before != nil {
			_ = a.Before(cmd)
		}
		a.writeHelp(cmd.OutOrStdout(), cmd)
	})

	if a.Registry != nil {
		for _, cmd := range a.Registry.Commands() {
			root.AddCommand(a.subcommand(cmd))
		}
	}

	if a.Configure != nil {
		a.Configure(root)
	}
	return root
}

func (a *App) subcommand(cmd *Command) *cobra.Command {
	c := &cobra.Command{
		Use:   cmd.Name,
		Short: markup.Strip(cmd.Summary()),
		Long:  markup.Strip(cmd.Doc),
		Args:  cobra.ArbitraryArgs,
		RunE: func(cc *cobra.Command, args []string) error {
			return a.dispatch(cc, cmd, args)
		},
	}

	fs := c.Flags()
	for _, p := range cmd.options() {
		if p.Type == Bool {
			fs.BoolP(p.longFlag(), p.shortFlag(), false, p.Help)
		} else {
			fs.StringP(p.longFlag(), p.shortFlag(), "", p.Help)
		}
	}
	return c
}

// Console returns a console for w using the app's rendering settings.
func (a *App) Console(w io.Writer) *console.Console {
	return console.New(w, console.Options{Mode: a.ColorMode, Styler: a.Styler})
}

func (a *App) dispatch(cc *cobra.Command, cmd *Command, args []string) error {
	logger := logging.GetLogger("cli")
	logging.LogCommand(cmd.Name, args)

	values, set, err := bind(cc, cmd, args)
	if err != nil {
		logger.Debug().Err(err).Str("command", cmd.Name).Msg("Argument binding failed")
		return err
	}

	ctx := &Context{
		Ctx:     cc.Context(),
		Command: cmd,
		Console: a.Console(cc.OutOrStdout()),
		In:      cc.InOrStdin(),
		Out:     cc.OutOrStdout(),
		Err:     cc.ErrOrStderr(),
		values:  values,
		set:     set,
		args:    args,
	}
	if ctx.Ctx == nil {
		ctx.Ctx = context.Background()
	}

	done := logging.LogOperationStart(logger, cmd.Name)
	defer done()

	if err := cmd.Run(ctx); err != nil {
		if errors.GetErrorCode(err) == errors.ErrUnknown {
			return errors.Wrapf(err, errors.ErrCommandExecution, "%s failed", cmd.Name)
		}
		return err
	}
	return nil
}

// bind coerces positional arguments and flags into parameter values.
func bind(cc *cobra.Command, cmd *Command, args []string) (map[string]interface{}, map[string]bool, error) {
	values := make(map[string]interface{}, len(cmd.Params))
	set := make(map[string]bool, len(cmd.Params))

	positionals := cmd.positionals()
	if len(args) > len(positionals) {
		return nil, nil, errors.Newf(errors.ErrUsage, "too many arguments: expected at most %d, got %d",
			len(positionals), len(args))
	}
	for i, p := range positionals {
		if i < len(args) {
			v, err := p.coerce(args[i])
			if err != nil {
				return nil, nil, err
			}
			values[p.Name] = v
			set[p.Name] = true
			continue
		}
		if p.Required {
			return nil, nil, errors.Newf(errors.ErrMissingArgument, "missing required argument <%s>", p.Name).
				WithDetail("param", p.Name)
		}
		values[p.Name] = p.defaultValue()
	}

	fs := cc.Flags()
	for _, p := range cmd.options() {
		flag := fs.Lookup(p.longFlag())
		if flag == nil || !flag.Changed {
			if p.Required {
				return nil, nil, errors.Newf(errors.ErrMissingArgument, "missing required option --%s", p.longFlag()).
					WithDetail("param", p.Name)
			}
			values[p.Name] = p.defaultValue()
			continue
		}
		v, err := p.coerce(flag.Value.String())
		if err != nil {
			return nil, nil, err
		}
		values[p.Name] = v
		set[p.Name] = true
	}
	return values, set, nil
}

// report prints a diagnostic for err to the error stream. The error text
// itself is written verbatim so brackets in user input are never styled.
func (a *App) report(root *cobra.Command, err error) {
	w := root.ErrOrStderr()
	c := a.Console(w)

	fmt.Fprintf(w, "%s %s\n", c.Render("[bold red]Error:[/bold red]"), message(err))

	details := errors.GetErrorDetails(err)
	if suggestions, ok := details["suggestions"].([]string); ok && len(suggestions) > 0 {
		fmt.Fprintf(w, "Did you mean %q?\n", suggestions[0])
	}
	if errors.ExitCode(err) == errors.ExitUsage {
		fmt.Fprintf(w, "Run '%s --help' for usage.\n", a.Name)
	}
}

// message flattens an error chain into a user-facing sentence.
func message(err error) string {
	ttErr, ok := err.(*errors.TurbotermError)
	if !ok {
		return err.Error()
	}
	if ttErr.Wrapped != nil {
		return ttErr.Message + ": " + message(ttErr.Wrapped)
	}
	return ttErr.Message
}

func (a *App) in() io.Reader {
	if a.In != nil {
		return a.In
	}
	return os.Stdin
}

func (a *App) out() io.Writer {
	if a.Out != nil {
		return a.Out
	}
	return os.Stdout
}

func (a *App) err() io.Writer {
	if a.Err != nil {
		return a.Err
	}
	return os.Stderr
}
