package commandline

import (
	"strings"
	"unicode"
)

// Argument is anything matchable on the command line.
// It is implemented by *Command and *Option only.
type Argument interface {
	// ShortName returns the short name including any prefix, e.g. "-v".
	// Empty if not set.
	ShortName() string
	// LongName returns the long name including any prefix, e.g. "--verbose".
	// Empty if not set.
	LongName() string
	// Name returns the display name: LongName if set, ShortName otherwise.
	Name() string
	// Help returns the help text.
	Help() string
	// Required reports if the Argument must be present in arguments.
	Required() bool
	// HasDefault reports if the Argument falls back to a default value.
	HasDefault() bool

	argument()
}

// names holds the short and long name of an Argument.
type names struct {
	short string
	long  string
}

func (n names) ShortName() string { return n.short }

func (n names) LongName() string { return n.long }

func (n names) Name() string {
	if n.long != "" {
		return n.long
	}
	return n.short
}

// String returns names formatted for display, e.g. "-v, --verbose".
func (n names) String() string {
	switch {
	case n.short != "" && n.long != "":
		return n.short + ", " + n.long
	case n.long != "":
		return n.long
	}
	return n.short
}

// matches reports if token case-insensitively equals either name.
func (n names) matches(token string) bool {
	return (n.short != "" && strings.EqualFold(n.short, token)) ||
		(n.long != "" && strings.EqualFold(n.long, token))
}

// each calls f for each set name.
func (n names) each(f func(string)) {
	if n.short != "" {
		f(n.short)
	}
	if n.long != "" {
		f(n.long)
	}
}

// parseNames parses a name definition into names and prefixes them.
//
// A definition is either "short|long" or a single name. A single name one
// rune long is a short name, longer ones are long names.
func parseNames(def, shortPrefix, longPrefix string) (n names, err error) {
	short, long, split := strings.Cut(def, "|")
	if !split {
		if len([]rune(def)) == 1 {
			short, long = def, ""
		} else {
			short, long = "", def
		}
	}
	if short == "" && long == "" {
		return n, ErrInvalidName
	}
	for _, name := range []string{short, long} {
		if !validName(name, shortPrefix) {
			return n, ErrInvalidName
		}
	}
	if short != "" {
		n.short = shortPrefix + short
	}
	if long != "" {
		n.long = longPrefix + long
	}
	return n, nil
}

// validName reports if name is usable. Empty names are valid and mean "not
// set". Names may not contain whitespace or start with the option prefix.
func validName(name, prefix string) bool {
	if name == "" {
		return true
	}
	if prefix != "" && strings.HasPrefix(name, prefix) {
		return false
	}
	return strings.IndexFunc(name, unicode.IsSpace) < 0
}
