package commandline

import (
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// config is the parser configuration shared by all Commands and Options of
// a Parser.
type config struct {
	shortPrefix string
	longPrefix  string
	// help holds the prefixed help names, empty if help is disabled.
	help names
	log  *slog.Logger
}

// scopeEntry is a registered name in a scope index.
type scopeEntry struct {
	name string
	arg  Argument
}

// scopeIndex maps case folded names of a Command's child Commands and
// Options to their Arguments, in order of registration.
type scopeIndex = orderedmap.OrderedMap[string, scopeEntry]

func foldName(name string) string { return strings.ToLower(name) }

// register adds all names of arg to the owner's scope index.
// Returns ErrDuplicateName if any of the names is taken in the scope or is
// reserved for help.
func (c *Command) register(n names, arg Argument) error {
	var err error
	n.each(func(name string) {
		if _, exists := c.scope.Get(foldName(name)); exists || c.cfg.help.matches(name) {
			err = ErrDuplicateName
		}
	})
	if n.short != "" && n.long != "" && strings.EqualFold(n.short, n.long) {
		err = ErrDuplicateName
	}
	if err != nil {
		return err
	}
	n.each(func(name string) {
		c.scope.Set(foldName(name), scopeEntry{name: name, arg: arg})
	})
	return nil
}

// scopeNames returns all names registered in the Command scope in order of
// registration, followed by help names if help is enabled.
func (c *Command) scopeNames() []string {
	out := make([]string, 0, c.scope.Len()+2)
	for pair := c.scope.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value.name)
	}
	c.cfg.help.each(func(name string) { out = append(out, name) })
	return out
}

// lookup returns the Argument registered in the Command scope under name.
func (c *Command) lookup(name string) (Argument, bool) {
	e, ok := c.scope.Get(foldName(name))
	if !ok {
		return nil, false
	}
	return e.arg, true
}

// Commands holds the ordered set of Commands of an owner Command.
type Commands struct {
	// owner is the Command that owns these Commands.
	owner *Command
	// list holds Commands in order as they were defined.
	list []*Command
}

// AddCommand registers a new Command under specified names and help text
// that invokes f when executed, if f is not nil.
//
// Names are either a single name or a "short|long" pair. Command names are
// matched without a prefix. If required is true a parse error is reported if
// the Command is not found in arguments.
//
// If a registration error occurs it is returned with a nil *Command.
func (c *Commands) AddCommand(name, help string, required bool, f CommandFunc) (*Command, error) {
	n, err := parseNames(name, "", "")
	if err != nil {
		return nil, fmt.Errorf("%w: '%s'", err, name)
	}
	cmd := newCommand(n, help, required, f, c.owner.cfg)
	cmd.parent = c.owner
	if err := c.owner.register(n, cmd); err != nil {
		return nil, fmt.Errorf("%w: '%s'", err, name)
	}
	c.list = append(c.list, cmd)
	c.owner.cfg.log.Debug("command added", "command", cmd.Name(), "parent", c.owner.Name())
	return cmd, nil
}

// GetCommand returns a *Command by any of its names and truth if found.
func (c *Commands) GetCommand(name string) (*Command, bool) {
	arg, ok := c.owner.lookup(name)
	if !ok {
		return nil, false
	}
	cmd, ok := arg.(*Command)
	return cmd, ok
}

// CommandList returns Commands in order of registration.
func (c *Commands) CommandList() []*Command { return append([]*Command(nil), c.list...) }

// Options holds the ordered set of Options of an owner Command.
type Options struct {
	// owner is the Command that owns these Options.
	owner *Command
	// list holds Options in order as they were defined.
	list []*Option
}

// AddOption registers a new Option bound to target under specified names
// and help text.
//
// Names are either a single name or a "short|long" pair, given without
// prefix. A single name one character long is a short name. Configured short
// and long prefixes are prepended, so "v|verbose" matches "-v" and
// "--verbose" with default prefixes.
//
// Target must be a non-nil pointer to a Go value. The value is written when
// the Option is parsed, using the Option's Resolver, or from its default.
//
// If required is true and the Option has no default a parse error is
// reported if the Option is not found in arguments.
//
// If a registration error occurs it is returned with a nil *Option.
func (o *Options) AddOption(name, help string, required bool, target any) (*Option, error) {
	cfg := o.owner.cfg
	n, err := parseNames(name, cfg.shortPrefix, cfg.longPrefix)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s'", err, name)
	}
	v := reflect.ValueOf(target)
	if !v.IsValid() || v.Kind() != reflect.Pointer || v.IsNil() {
		return nil, fmt.Errorf("%w: %T for option '%s'", ErrInvalidValue, target, name)
	}
	opt := newOption(n, help, required, v, cfg)
	if err := o.owner.register(n, opt); err != nil {
		return nil, fmt.Errorf("%w: '%s'", err, name)
	}
	o.list = append(o.list, opt)
	cfg.log.Debug("option added", "option", opt.Name(), "command", o.owner.Name(), "type", opt.Type().String())
	return opt, nil
}

// GetOption returns an *Option by any of its names, prefix included, and
// truth if found.
func (o *Options) GetOption(name string) (*Option, bool) {
	arg, ok := o.owner.lookup(name)
	if !ok {
		return nil, false
	}
	opt, ok := arg.(*Option)
	return opt, ok
}

// OptionList returns Options in order of registration.
func (o *Options) OptionList() []*Option { return append([]*Option(nil), o.list...) }

// printScope is a recursive printer of registered Options and Commands.
// Tab separated lines are written to w from c with the indent depth.
func printScope(w io.Writer, c *Command, indent int) {
	indentstr := strings.Repeat("  ", indent)
	for _, opt := range c.Options.list {
		fmt.Fprintf(w, "%s%s\t%s\t%s\n", indentstr, opt.names, optionType(opt), optionHelp(opt))
	}
	for _, cmd := range c.Commands.list {
		fmt.Fprintf(w, "%s%s\t\t%s\n", indentstr, cmd.names, commandHelp(cmd))
		if len(cmd.Options.list) > 0 || len(cmd.Commands.list) > 0 {
			printScope(w, cmd, indent+1)
		}
	}
}

// optionType returns the bound value type of opt for display.
func optionType(opt *Option) string {
	if opt.Type().Kind() == reflect.Bool {
		return ""
	}
	return "<" + opt.Type().String() + ">"
}

// optionHelp returns opt help text decorated with its traits.
func optionHelp(opt *Option) string {
	s := opt.help
	if def, ok := opt.Default(); ok {
		s += fmt.Sprintf(" (default: %v)", def)
	} else if opt.required {
		s += " (required)"
	}
	return strings.TrimSpace(s)
}

// commandHelp returns cmd help text decorated with its traits.
func commandHelp(cmd *Command) string {
	if cmd.required {
		return strings.TrimSpace(cmd.help + " (required)")
	}
	return cmd.help
}
