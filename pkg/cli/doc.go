/*
Package cli declares and dispatches command-line commands.

A Command lists its parameters as Param descriptors instead of relying on
reflection. Commands live in an explicit Registry value, and an App turns a
registry into a cobra command tree and runs it against an argument vector:

	reg := cli.NewRegistry()
	reg.MustRegister(&cli.Command{
		Name: "greet",
		Doc:  "Say hello.\n\nGreets [bold]name[/bold] count times.",
		Params: []cli.Param{
			{Name: "name", Kind: cli.Positional, Required: true, Help: "who to greet"},
			{Name: "count", Kind: cli.Option, Type: cli.Int, Default: 1, Flags: []string{"--count", "-c"}},
			{Name: "shout", Kind: cli.Option, Type: cli.Bool, Flags: []string{"--shout"}},
		},
		Run: func(ctx *cli.Context) error {
			for i := 0; i < ctx.Int("count"); i++ {
				ctx.Console.Printf("Hello [green]%s[/green]", ctx.String("name"))
			}
			return nil
		},
	})
	app := &cli.App{Name: "demo", Registry: reg}
	os.Exit(app.Run(context.Background(), os.Args[1:]))

Dispatch binds positionals in declaration order, matches options by their
long and short flags, treats absent bool options as false, coerces values to
int, float or string and substitutes defaults for omitted parameters.

Help text is generated from the command doc and parameter help strings and
rendered through the markup engine, stripped when color is off.

Exit codes: 0 on success and for --help, 2 for usage errors (missing
argument, invalid value, unknown command or flag), 1 when a command fails.
Nothing is global: several apps can run in one process.
*/
package cli
