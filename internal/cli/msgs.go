package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgStripShort   = "Print markup text with every recognized tag removed"
	MsgWidthShort   = "Print the visible width of rendered markup"
	MsgThemesShort  = "Preview the theme aliases in effect"
	MsgConfigShort  = "Print the effective configuration as TOML"
	MsgVersionShort = "Print version information"

	// Parameter help
	MsgArgText      = "Markup text (read from standard input when omitted)"
	MsgArgFile      = "CSV, YAML or JSON file (standard input when omitted)"
	MsgFlagPlain    = "Strip markup instead of rendering it"
	MsgFlagFormat   = "Row format: csv, yaml or json"
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagColor    = "Color output: auto, always or never"
	MsgFlagConfig   = "Read configuration from this file"
	MsgFlagTemplate = "Print a commented config file template instead"
	MsgFlagInit     = "Write the template to the user config file"

	// Output
	MsgVersionFormat = "turboterm version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"
	MsgNoThemes      = "No theme aliases configured."
	MsgThemeSample   = "The quick brown fox"
	MsgConfigWritten = "[success]Wrote[/success] %s"
	MsgConfigExists  = "[warning]Config file already exists:[/warning] %s"

	// Errors
	MsgErrReadInput = "failed to read standard input"
	MsgErrOpenFile  = "failed to open %s"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/style-long.txt
	msgStyleLongRaw string
	MsgStyleLong    = strings.TrimSpace(msgStyleLongRaw)

	//go:embed msgs/table-long.txt
	msgTableLongRaw string
	MsgTableLong    = strings.TrimSpace(msgTableLongRaw)
)
