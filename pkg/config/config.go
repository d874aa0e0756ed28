package config

import (
	"slices"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/turboterm/pkg/errors"
	"github.com/arthur-debert/turboterm/pkg/markup"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var colorModes = []string{ColorAuto, ColorAlways, ColorNever}

// Config is the effective turboterm configuration.
type Config struct {
	Color string            `toml:"color" koanf:"color"`
	Theme map[string]string `toml:"theme" koanf:"theme"`
}

// Load reads and validates the layered configuration.
func Load(opts Options) (*Config, error) {
	k, err := NewKoanf(opts)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Color: k.String("color"),
		Theme: k.StringMap("theme"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the color mode and that every theme alias resolves.
func (c *Config) Validate() error {
	if !slices.Contains(colorModes, c.Color) {
		return errors.Newf(errors.ErrConfigValid, "invalid color mode %q (want auto, always or never)", c.Color).
			WithDetail("color", c.Color)
	}
	styler := markup.NewStyler(markup.Theme(c.Theme))
	for name := range c.Theme {
		if _, ok := styler.Resolve([]string{name}); !ok {
			return errors.Newf(errors.ErrConfigValid, "theme alias %q does not resolve: %q", name, c.Theme[name]).
				WithDetail("alias", name)
		}
	}
	return nil
}

// Styler returns a markup styler carrying the configured theme.
func (c *Config) Styler() *markup.Styler {
	return markup.NewStyler(markup.Theme(c.Theme))
}

// Dump renders the configuration as TOML.
func (c *Config) Dump() (string, error) {
	out, err := gotoml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode config")
	}
	return string(out), nil
}
