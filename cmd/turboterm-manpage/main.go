package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/turboterm/internal/cli"
	"github.com/arthur-debert/turboterm/internal/version"
)

func main() {
	rootCmd := cli.NewApp(os.Stdin, os.Stdout, os.Stderr).Build()

	header := &doc.GenManHeader{
		Title:   "TURBOTERM",
		Section: "1",
		Source:  "turboterm " + version.Version,
		Manual:  "turboterm manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
