package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/turboterm/pkg/errors"
)

// Kind says how a parameter is passed on the command line.
type Kind int

const (
	// Positional parameters are bound from bare arguments in declaration order.
	Positional Kind = iota
	// Option parameters are passed with flags such as --name or -n.
	Option
)

func (k Kind) String() string {
	if k == Option {
		return "option"
	}
	return "positional"
}

// Type is the value type a parameter is coerced to.
type Type int

const (
	String Type = iota
	Int
	Float
	Bool
)

func (t Type) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	default:
		return "string"
	}
}

// Param describes one command parameter.
type Param struct {
	Name     string
	Kind     Kind
	Help     string
	Type     Type
	Required bool
	// Default is used when the parameter is omitted. It must match Type
	// (ints are accepted for Float). Nil means the zero value.
	Default interface{}
	// Flags lists option spellings: at most one long ("--name") and one
	// short ("-n"). Without a long flag the parameter name is used.
	Flags []string
}

// longFlag returns the long flag name without dashes.
func (p Param) longFlag() string {
	for _, f := range p.Flags {
		if name, ok := strings.CutPrefix(f, "--"); ok {
			return name
		}
	}
	return p.Name
}

// shortFlag returns the one-letter flag without its dash, or "".
func (p Param) shortFlag() string {
	for _, f := range p.Flags {
		if !strings.HasPrefix(f, "--") && strings.HasPrefix(f, "-") {
			return f[1:]
		}
	}
	return ""
}

func (p Param) validate() error {
	fail := func(format string, args ...interface{}) error {
		return errors.Newf(errors.ErrCommandInvalid, "parameter %q: "+format, append([]interface{}{p.Name}, args...)...).
			WithDetail("param", p.Name)
	}

	if p.Name == "" {
		return errors.New(errors.ErrCommandInvalid, "parameter name cannot be empty")
	}

	switch p.Kind {
	case Positional:
		if p.Type == Bool {
			return fail("bool parameters must be options")
		}
		if len(p.Flags) > 0 {
			return fail("positional parameters take no flags")
		}
	case Option:
		if len(p.Flags) == 0 {
			return fail("options need at least one flag")
		}
		longs, shorts := 0, 0
		for _, f := range p.Flags {
			switch {
			case f == "--help" || f == "-h":
				return fail("%s is reserved", f)
			case strings.HasPrefix(f, "--") && len(f) > 2:
				longs++
			case strings.HasPrefix(f, "-") && len(f) == 2 && f[1] != '-':
				shorts++
			default:
				return fail("malformed flag %q", f)
			}
		}
		if longs > 1 || shorts > 1 {
			return fail("at most one long and one short flag")
		}
		if p.Type == Bool && p.Required {
			return fail("bool options cannot be required")
		}
	default:
		return fail("unknown kind %d", p.Kind)
	}

	if p.Default != nil {
		if _, err := normalize(p.Type, p.Default); err != nil {
			return fail("%v", err)
		}
	}
	return nil
}

// defaultValue returns the value used when the parameter is omitted.
func (p Param) defaultValue() interface{} {
	if p.Default != nil {
		v, _ := normalize(p.Type, p.Default)
		return v
	}
	switch p.Type {
	case Int:
		return 0
	case Float:
		return 0.0
	case Bool:
		return false
	default:
		return ""
	}
}

// coerce converts a raw command-line value.
func (p Param) coerce(raw string) (interface{}, error) {
	var (
		v   interface{}
		err error
	)
	switch p.Type {
	case Int:
		v, err = strconv.Atoi(raw)
	case Float:
		v, err = strconv.ParseFloat(raw, 64)
	case Bool:
		v, err = strconv.ParseBool(raw)
	default:
		v = raw
	}
	if err != nil {
		return nil, errors.Newf(errors.ErrInvalidType, "invalid value %q for %s: expected %s", raw, p.Name, p.Type).
			WithDetail("param", p.Name).
			WithDetail("value", raw)
	}
	return v, nil
}

func normalize(t Type, v interface{}) (interface{}, error) {
	switch t {
	case Int:
		switch n := v.(type) {
		case int:
			return n, nil
		case int64:
			return int(n), nil
		}
	case Float:
		switch n := v.(type) {
		case float64:
			return n, nil
		case float32:
			return float64(n), nil
		case int:
			return float64(n), nil
		}
	case Bool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	default:
		if s, ok := v.(string); ok {
			return s, nil
		}
	}
	return nil, fmt.Errorf("default %v (%T) is not a %s", v, v, t)
}
