package commandline

import (
	"context"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// CommandFunc is a prototype of a function that handles the execution of a
// Command parsed from command line arguments.
//
// By the time it is invoked all Options of the Command and of its parent
// Commands have been written to their bound Go values.
type CommandFunc = func(ctx context.Context) error

// Command is a command definition.
//
// A Command can have its own Commands so a Command hierarchy can be defined.
// It can have zero or more Options. Options of a Command are only matched
// from arguments following the Command.
type Command struct {
	names
	// help is the Command help text.
	help string
	// required specifies if this Command must be present in arguments.
	required bool
	// autoExecute specifies if the Parser executes this Command after a
	// successful parse.
	autoExecute bool
	// f is the function to invoke when this Command is executed.
	f CommandFunc
	// parent is the owning Command, nil for the root Command.
	parent *Command
	// scope indexes names of Options and Commands defined on this Command.
	scope *scopeIndex
	cfg   *config

	Options  // Options are this Command's Options.
	Commands // Commands are this Command's Commands.
}

// newCommand returns a new *Command instance.
func newCommand(n names, help string, required bool, f CommandFunc, cfg *config) *Command {
	c := &Command{
		names:       n,
		help:        help,
		required:    required,
		autoExecute: true,
		f:           f,
		scope:       orderedmap.New[string, scopeEntry](),
		cfg:         cfg,
	}
	c.Options = Options{owner: c}
	c.Commands = Commands{owner: c}
	return c
}

func (c *Command) argument() {}

// Help returns the Command help text.
func (c *Command) Help() string { return c.help }

// Required reports if the Command must be specified in arguments.
func (c *Command) Required() bool { return c.required }

// HasDefault always returns false; Commands have no default.
func (c *Command) HasDefault() bool { return false }

// Parent returns the Command that owns c or nil if c is a root Command.
func (c *Command) Parent() *Command { return c.parent }

// Path returns names of Commands from the root to c.
func (c *Command) Path() (path []string) {
	for cmd := c; cmd != nil && cmd.parent != nil; cmd = cmd.parent {
		path = append([]string{cmd.Name()}, path...)
	}
	return
}

// AutoExecute reports if the Command is executed by the Parser after a
// successful parse.
func (c *Command) AutoExecute() bool { return c.autoExecute }

// SetAutoExecute sets if the Command is executed by the Parser after a
// successful parse. Commands are auto executed by default.
func (c *Command) SetAutoExecute(auto bool) *Command {
	c.autoExecute = auto
	return c
}

// OnExecute sets the function invoked when the Command is executed.
func (c *Command) OnExecute(f CommandFunc) *Command {
	c.f = f
	return c
}

// Execute invokes the Command's CommandFunc, if any.
func (c *Command) Execute(ctx context.Context) error {
	if c.f == nil {
		return nil
	}
	c.cfg.log.Debug("executing command", "command", c.Name())
	return c.f(ctx)
}

// Print returns the Command's Options and Commands tree as tab separated
// lines.
func (c *Command) Print() string {
	var sb strings.Builder
	printScope(&sb, c, 0)
	return sb.String()
}

// Parse parses the Command from m. See ParseContext.
func (c *Command) Parse(m *ArgumentManager) *CommandResult {
	return c.ParseContext(context.Background(), m)
}

// ParseContext parses the Command from m and returns its result node.
//
// If the Command was not found in arguments the result is not Found and
// carries no errors; whether absence is an error is decided by the owner.
// Otherwise Options are parsed in order of registration, collecting all
// errors, followed by sub-Commands. Parsing of remaining Options and
// sub-Commands stops if help was requested.
func (c *Command) ParseContext(ctx context.Context, m *ArgumentManager) *CommandResult {
	r := newCommandResult(c)
	if _, found := m.TryGetValue(c); !found {
		return r
	}
	r.Found = true
	c.cfg.log.Debug("command matched", "command", c.Name())
	r.MergeErrors(c.parseOptions(m, r)...)
	c.parseCommands(ctx, m, r)
	return r
}

// parseOptions parses the Options of c from m and returns their errors.
// If an Option requests help r is marked and remaining Options are skipped.
func (c *Command) parseOptions(m *ArgumentManager, r *CommandResult) (errs []error) {
	for _, opt := range c.Options.list {
		help, err := opt.parse(m)
		if help {
			r.setHelp(opt)
			break
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return
}

// parseCommands parses sub-Commands of c from m and merges them into r.
//
// A required sub-Command that was not found adds a CommandNotFoundError to r,
// a sub-Command that failed adds a CommandParseError to r.
func (c *Command) parseCommands(ctx context.Context, m *ArgumentManager, r *CommandResult) {
	for _, cmd := range c.Commands.list {
		if r.HelpRequested() {
			return
		}
		if err := ctx.Err(); err != nil {
			r.MergeErrors(err)
			return
		}
		sub := cmd.ParseContext(ctx, m)
		r.MergeResult(sub)
		switch {
		case !sub.Found && cmd.required:
			r.MergeErrors(&CommandNotFoundError{Command: cmd})
		case len(sub.errors) > 0:
			r.MergeErrors(&CommandParseError{Command: cmd, Errs: sub.Errors()})
		}
	}
}
