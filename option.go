package commandline

import (
	"fmt"
	"reflect"
)

// Option is a named leaf Argument bound to a Go value. The value is written
// once per parse, either from the resolved argument value or from a default.
type Option struct {
	names
	help     string
	required bool
	// target is a pointer to the bound Go value.
	target reflect.Value
	// def is the default value. Valid only if set.
	def      reflect.Value
	resolver Resolver
	cfg      *config
}

// newOption returns a new *Option bound to target.
func newOption(n names, help string, required bool, target reflect.Value, cfg *config) *Option {
	return &Option{
		names:    n,
		help:     help,
		required: required,
		target:   target,
		resolver: newValueResolver(target.Type().Elem()),
		cfg:      cfg,
	}
}

func (o *Option) argument() {}

// Help returns the Option help text.
func (o *Option) Help() string { return o.help }

// Required reports if the Option must be specified in arguments.
func (o *Option) Required() bool { return o.required }

// HasDefault reports if the Option has a default value.
func (o *Option) HasDefault() bool { return o.def.IsValid() }

// Default returns the default value and true if one is set.
func (o *Option) Default() (any, bool) {
	if !o.def.IsValid() {
		return nil, false
	}
	return o.def.Interface(), true
}

// Target returns the pointer to the bound Go value.
func (o *Option) Target() any { return o.target.Interface() }

// Type returns the type of the bound Go value.
func (o *Option) Type() reflect.Type { return o.target.Type().Elem() }

// Resolver returns the Resolver used to convert the Option value.
func (o *Option) Resolver() Resolver { return o.resolver }

// SetDefault sets the default value of the Option. Value must be assignable
// to the bound Go value or ErrInvalidDefault is returned.
func (o *Option) SetDefault(value any) error {
	v := reflect.ValueOf(value)
	if !v.IsValid() || !v.Type().AssignableTo(o.Type()) {
		return fmt.Errorf("%w: %T for option '%s' of type %s", ErrInvalidDefault, value, o.Name(), o.Type())
	}
	o.def = v
	return nil
}

// SetResolver sets the Resolver that converts the Option value.
// A nil r restores the default Resolver for the Option type.
func (o *Option) SetResolver(r Resolver) *Option {
	if r == nil {
		r = newValueResolver(o.Type())
	}
	o.resolver = r
	return o
}

// useDefault assigns the default value to the bound Go value.
func (o *Option) useDefault() {
	o.target.Elem().Set(o.def)
	o.cfg.log.Debug("option default applied", "option", o.Name())
}

// assign assigns a resolved value to the bound Go value.
func (o *Option) assign(value any) error {
	v := reflect.ValueOf(value)
	if !v.IsValid() {
		o.target.Elem().SetZero()
		return nil
	}
	if !v.Type().AssignableTo(o.Type()) {
		return fmt.Errorf("resolved %s is not assignable to %s", v.Type(), o.Type())
	}
	o.target.Elem().Set(v)
	return nil
}

// parse resolves the Option from m into its bound Go value.
//
// If the value following the Option is a help name, help is true and nothing
// is assigned. Errors are returned as values for the caller to collect.
func (o *Option) parse(m *ArgumentManager) (help bool, err error) {
	model, found := m.TryGetValue(o)
	switch {
	case found && model.HasValue && m.IsHelp(model.Value):
		return true, nil
	case !model.HasValue && o.HasDefault():
		o.useDefault()
	case !found && o.required:
		return false, &OptionNotFoundError{Option: o}
	case !found:
	case !o.resolver.CanResolve(model) && o.HasDefault():
		o.useDefault()
	case !o.resolver.CanResolve(model):
		_, rerr := o.resolver.Resolve(model)
		return false, &OptionParseError{Option: o, Model: model, Err: rerr}
	default:
		v, rerr := o.resolver.Resolve(model)
		if rerr == nil {
			rerr = o.assign(v)
		}
		if rerr != nil {
			return false, &OptionParseError{Option: o, Model: model, Err: rerr}
		}
		o.cfg.log.Debug("option resolved", "option", o.Name(), "model", model.String())
	}
	return false, nil
}
