package cli

import (
	"context"
	"io"

	"github.com/arthur-debert/turboterm/pkg/console"
)

// Context carries the bound parameter values of one invocation.
type Context struct {
	Ctx     context.Context
	Command *Command
	Console *console.Console
	In      io.Reader
	Out     io.Writer
	Err     io.Writer

	values map[string]interface{}
	set    map[string]bool
	args   []string
}

// Get returns the bound value of a parameter.
func (c *Context) Get(name string) (interface{}, bool) {
	v, ok := c.values[name]
	return v, ok
}

// String returns a string parameter, or "" when unknown.
func (c *Context) String(name string) string {
	s, _ := c.values[name].(string)
	return s
}

// Int returns an int parameter, or 0 when unknown.
func (c *Context) Int(name string) int {
	n, _ := c.values[name].(int)
	return n
}

// Float returns a float parameter, or 0 when unknown.
func (c *Context) Float(name string) float64 {
	f, _ := c.values[name].(float64)
	return f
}

// Bool returns a bool parameter, or false when unknown.
func (c *Context) Bool(name string) bool {
	b, _ := c.values[name].(bool)
	return b
}

// IsSet reports whether the parameter was given on the command line rather
// than defaulted.
func (c *Context) IsSet(name string) bool {
	return c.set[name]
}

// Args returns the raw positional arguments.
func (c *Context) Args() []string {
	return append([]string(nil), c.args...)
}
