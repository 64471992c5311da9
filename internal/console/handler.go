// Package console is the interactive terminal front-end of the calculator.
// Each command (dept, sem, grade, calc, ...) implements the Handler
// interface and is dispatched by verb through a Registry.
package console

import (
	"context"
	"slices"
)

// Handler defines the interface that all console commands must implement
type Handler interface {
	// Name is the primary verb, also used as the metrics label.
	Name() string

	// Usage is the one-line invocation shown by help, e.g. "sem <n>".
	Usage() string

	// Summary describes the command in a few words.
	Summary() string

	// CanHandle reports whether the lower-cased verb selects this command.
	CanHandle(verb string) bool

	// Handle runs the command and returns the lines to print.
	// A returned error is rendered after any lines.
	Handle(ctx context.Context, args []string) ([]string, error)
}

// RunFunc is the body of a Command.
type RunFunc func(ctx context.Context, args []string) ([]string, error)

// Command is a Handler built from a verb, optional aliases and a RunFunc.
type Command struct {
	name    string
	aliases []string
	usage   string
	summary string
	run     RunFunc
}

// NewCommand creates a command. Aliases are matched like the name.
func NewCommand(name, usage, summary string, run RunFunc, aliases ...string) *Command {
	return &Command{
		name:    name,
		aliases: aliases,
		usage:   usage,
		summary: summary,
		run:     run,
	}
}

func (c *Command) Name() string    { return c.name }
func (c *Command) Usage() string   { return c.usage }
func (c *Command) Summary() string { return c.summary }

// CanHandle matches the verb against the name and aliases
func (c *Command) CanHandle(verb string) bool {
	return verb == c.name || slices.Contains(c.aliases, verb)
}

// Handle runs the command body
func (c *Command) Handle(ctx context.Context, args []string) ([]string, error) {
	return c.run(ctx, args)
}
