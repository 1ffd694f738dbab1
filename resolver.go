package commandline

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/vedranvuk/strconvex"
)

// Resolver converts an ArgumentModel into a Go value for an Option.
type Resolver interface {
	// CanResolve reports if Resolve would succeed for model.
	CanResolve(model ArgumentModel) bool
	// Resolve converts model to a value assignable to the Option target.
	// It returns an error if CanResolve would return false.
	Resolve(model ArgumentModel) (any, error)
}

// errNoValue is returned by resolvers that need a value but got none.
var errNoValue = errors.New("value required")

// NewResolver returns a Resolver that resolves model values using parse.
// Models without a value cannot be resolved.
func NewResolver[V any](parse func(string) (V, error)) Resolver {
	return funcResolver[V](parse)
}

// funcResolver resolves values using a parse function.
type funcResolver[V any] func(string) (V, error)

func (fr funcResolver[V]) CanResolve(model ArgumentModel) bool {
	_, err := fr.Resolve(model)
	return err == nil
}

func (fr funcResolver[V]) Resolve(model ArgumentModel) (any, error) {
	if !model.HasValue {
		return nil, errNoValue
	}
	v, err := fr(model.Value)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// valueResolver is the default Resolver for an Option target type.
//
// Bools resolve to true when no value follows the option. Types implementing
// encoding.TextUnmarshaler unmarshal themselves, strings are taken verbatim,
// anything else is converted by strconvex.
type valueResolver struct {
	typ reflect.Type
}

// newValueResolver returns a valueResolver for values of type typ.
func newValueResolver(typ reflect.Type) *valueResolver {
	return &valueResolver{typ: typ}
}

func (vr *valueResolver) CanResolve(model ArgumentModel) bool {
	_, err := vr.Resolve(model)
	return err == nil
}

func (vr *valueResolver) Resolve(model ArgumentModel) (any, error) {
	out := reflect.New(vr.typ)
	if !model.HasValue {
		if vr.typ.Kind() != reflect.Bool {
			return nil, errNoValue
		}
		out.Elem().SetBool(true)
		return out.Elem().Interface(), nil
	}
	if tu, ok := out.Interface().(encoding.TextUnmarshaler); ok {
		if err := tu.UnmarshalText([]byte(model.Value)); err != nil {
			return nil, err
		}
		return out.Elem().Interface(), nil
	}
	switch vr.typ.Kind() {
	case reflect.String:
		out.Elem().SetString(model.Value)
	case reflect.Bool:
		b, err := strconv.ParseBool(model.Value)
		if err != nil {
			return nil, err
		}
		out.Elem().SetBool(b)
	default:
		if err := strconvex.StringToInterface(model.Value, out.Interface()); err != nil {
			return nil, fmt.Errorf("convert to %s: %w", vr.typ, err)
		}
	}
	return out.Elem().Interface(), nil
}
