package cli

import (
	"embed"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/turboterm/internal/version"
	"github.com/arthur-debert/turboterm/pkg/cli"
	"github.com/arthur-debert/turboterm/pkg/cobrax/topics"
	"github.com/arthur-debert/turboterm/pkg/config"
	"github.com/arthur-debert/turboterm/pkg/logging"
)

//go:embed help/*.txt
var helpFiles embed.FS

// session holds the global flag values and the configuration loaded for
// one invocation.
type session struct {
	app *cli.App

	verbosity  int
	color      string
	configPath string

	cfg *config.Config
}

// NewApp builds the turboterm application. Nil streams default to the
// process streams.
func NewApp(in io.Reader, out, errOut io.Writer) *cli.App {
	if errOut == nil {
		errOut = os.Stderr
	}

	s := &session{}
	s.app = &cli.App{
		Name:     "turboterm",
		Doc:      MsgRootLong,
		Version:  version.Version,
		Registry: newRegistry(s),
		In:       in,
		Out:      out,
		Err:      errOut,
		Configure: func(root *cobra.Command) {
			s.configure(root)
		},
		Before: func(cmd *cobra.Command) error {
			return s.load(errOut)
		},
	}
	return s.app
}

// newRegistry declares every turboterm command.
func newRegistry(s *session) *cli.Registry {
	reg := cli.NewRegistry()
	reg.MustRegister(newStyleCmd())
	reg.MustRegister(newStripCmd())
	reg.MustRegister(newWidthCmd())
	reg.MustRegister(newTableCmd())
	reg.MustRegister(newThemesCmd())
	reg.MustRegister(newConfigCmd(s))
	reg.MustRegister(newVersionCmd())
	return reg
}

func (s *session) configure(root *cobra.Command) {
	pf := root.PersistentFlags()
	pf.CountVarP(&s.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVar(&s.color, "color", "", MsgFlagColor)
	pf.StringVar(&s.configPath, "config", "", MsgFlagConfig)

	topicFiles, err := fs.Sub(helpFiles, "help")
	if err != nil {
		return
	}
	// Initialize topics without logging (logging not set up yet)
	_ = topics.InitializeWithOptions(root, topicFiles, topics.Options{
		Extensions: []string{".txt"},
		Renderer: &topics.MarkupRenderer{RenderFunc: func(text string) string {
			return s.app.Console(root.OutOrStdout()).Render(text)
		}},
	})
}

// load sets up logging and configuration once flags are parsed. Help output
// may call it a second time; the first result is kept.
func (s *session) load(logOut io.Writer) error {
	if s.cfg != nil {
		return nil
	}

	logging.SetupLoggerWithWriter(s.verbosity, logOut)
	logger := logging.GetLogger("cli")

	overrides := map[string]interface{}{}
	if s.color != "" {
		overrides["color"] = s.color
	}
	cfg, err := config.Load(config.Options{Path: s.configPath, Overrides: overrides})
	if err != nil {
		logger.Debug().Err(err).Msg("Configuration failed to load")
		return err
	}

	s.cfg = cfg
	s.app.Styler = cfg.Styler()
	s.app.ColorMode = cfg.Color
	logger.Debug().Str("color", cfg.Color).Int("themes", len(cfg.Theme)).Msg("Configuration loaded")
	return nil
}
