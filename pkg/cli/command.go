package cli

import (
	"strings"

	"github.com/arthur-debert/turboterm/pkg/errors"
	"github.com/arthur-debert/turboterm/pkg/registry"
)

// Command is one dispatchable subcommand.
type Command struct {
	Name string
	// Doc is the help text; its first line is the one-line summary. Markup
	// is allowed.
	Doc string
	// AfterHelp is appended after the generated help.
	AfterHelp string
	Params    []Param
	Run       func(ctx *Context) error
}

// Summary returns the first line of Doc.
func (c *Command) Summary() string {
	summary, _, _ := strings.Cut(strings.TrimSpace(c.Doc), "\n")
	return strings.TrimSpace(summary)
}

// Param returns the parameter called name.
func (c *Command) Param(name string) (Param, bool) {
	for _, p := range c.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

func (c *Command) positionals() []Param {
	var out []Param
	for _, p := range c.Params {
		if p.Kind == Positional {
			out = append(out, p)
		}
	}
	return out
}

func (c *Command) options() []Param {
	var out []Param
	for _, p := range c.Params {
		if p.Kind == Option {
			out = append(out, p)
		}
	}
	return out
}

func (c *Command) validate() error {
	if c.Name == "" || strings.ContainsAny(c.Name, " \t\n") {
		return errors.Newf(errors.ErrCommandInvalid, "invalid command name %q", c.Name)
	}
	if c.Run == nil {
		return errors.Newf(errors.ErrCommandInvalid, "command %q has no Run function", c.Name)
	}

	seen := map[string]bool{}
	flags := map[string]bool{}
	optional := false
	for _, p := range c.Params {
		if err := p.validate(); err != nil {
			return errors.Wrapf(err, errors.ErrCommandInvalid, "command %q", c.Name)
		}
		if seen[p.Name] {
			return errors.Newf(errors.ErrCommandInvalid, "command %q declares %q twice", c.Name, p.Name)
		}
		seen[p.Name] = true

		if p.Kind == Positional {
			if p.Required && optional {
				return errors.Newf(errors.ErrCommandInvalid,
					"command %q: required positional %q follows an optional one", c.Name, p.Name)
			}
			optional = optional || !p.Required
			continue
		}
		for _, f := range []string{"--" + p.longFlag(), "-" + p.shortFlag()} {
			if f == "-" {
				continue
			}
			if flags[f] {
				return errors.Newf(errors.ErrCommandInvalid, "command %q uses flag %s twice", c.Name, f)
			}
			flags[f] = true
		}
	}
	return nil
}

// Registry holds the commands of one application. It is an ordinary value:
// create one per app (or per test) with NewRegistry.
type Registry struct {
	commands registry.Registry[*Command]
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{commands: registry.New[*Command]()}
}

// Register validates cmd and adds it.
func (r *Registry) Register(cmd *Command) error {
	if cmd == nil {
		return errors.New(errors.ErrCommandInvalid, "command cannot be nil")
	}
	if err := cmd.validate(); err != nil {
		return err
	}
	return r.commands.Register(cmd.Name, cmd)
}

// MustRegister is Register for static command tables; it panics on error.
func (r *Registry) MustRegister(cmd *Command) {
	if err := r.Register(cmd); err != nil {
		panic(err)
	}
}

// Get returns the command called name.
func (r *Registry) Get(name string) (*Command, error) {
	cmd, err := r.commands.Get(name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrUnknownCommand, "unknown command %q", name).
			WithDetail("command", name)
	}
	return cmd, nil
}

// Commands returns the registered commands in registration order.
func (r *Registry) Commands() []*Command {
	names := r.commands.Ordered()
	out := make([]*Command, 0, len(names))
	for _, name := range names {
		if cmd, err := r.commands.Get(name); err == nil {
			out = append(out, cmd)
		}
	}
	return out
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return r.commands.Count()
}
