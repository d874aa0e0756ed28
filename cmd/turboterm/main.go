package main

import (
	"context"
	"os"

	"github.com/arthur-debert/turboterm/internal/cli"
)

func main() {
	app := cli.NewApp(os.Stdin, os.Stdout, os.Stderr)
	os.Exit(app.Run(context.Background(), os.Args[1:]))
}
