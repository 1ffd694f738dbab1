package commandline

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidName is returned by Add* methods when an invalid Command or
	// Option name is specified.
	ErrInvalidName = errors.New("commandline: invalid name")
	// ErrDuplicateName is returned by Add* methods when a name already
	// registered in the same scope, or reserved for help, is specified.
	ErrDuplicateName = errors.New("commandline: duplicate name")
	// ErrInvalidValue is returned by AddOption when the target is not a
	// non-nil pointer to a Go value.
	ErrInvalidValue = errors.New("commandline: invalid value")
	// ErrInvalidDefault is returned by Option.SetDefault when the default
	// value is not assignable to the Option target.
	ErrInvalidDefault = errors.New("commandline: invalid default value")
	// ErrParseFailed is returned by ExecuteCommands if the parse result has
	// errors and commands might be in an inconsistent state, or if help was
	// requested.
	ErrParseFailed = errors.New("commandline: parsing failed, commands not executed")
)

// ArgumentError is an error bound to a declared Argument.
type ArgumentError interface {
	error
	// Argument returns the Argument the error is about.
	// Nil if the error is not about a specific Argument.
	Argument() Argument
}

// OptionNotFoundError is a required Option without a default that was not
// found in arguments.
type OptionNotFoundError struct {
	Option *Option
}

func (e *OptionNotFoundError) Error() string {
	return fmt.Sprintf("required option '%s' not specified", e.Option.Name())
}

func (e *OptionNotFoundError) Argument() Argument { return e.Option }

// OptionParseError is an Option whose value could not be resolved.
type OptionParseError struct {
	Option *Option
	Model  ArgumentModel
	Err    error // resolver error, if any
}

func (e *OptionParseError) Error() string {
	var msg string
	if e.Model.HasValue {
		msg = fmt.Sprintf("invalid value '%s' for option '%s'", e.Model.Value, e.Option.Name())
	} else {
		msg = fmt.Sprintf("option '%s' requires a value", e.Option.Name())
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *OptionParseError) Unwrap() error { return e.Err }

func (e *OptionParseError) Argument() Argument { return e.Option }

// CommandNotFoundError is a required Command not found in arguments.
type CommandNotFoundError struct {
	Command *Command
}

func (e *CommandNotFoundError) Error() string {
	return fmt.Sprintf("required command '%s' not specified", e.Command.Name())
}

func (e *CommandNotFoundError) Argument() Argument { return e.Command }

// CommandParseError aggregates the errors of a Command's options and
// sub-commands.
type CommandParseError struct {
	Command *Command
	Errs    []error
}

func (e *CommandParseError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "command '%s' failed to parse", e.Command.Name())
	for i, err := range e.Errs {
		if i == 0 {
			sb.WriteString(": ")
		} else {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

func (e *CommandParseError) Unwrap() []error { return e.Errs }

func (e *CommandParseError) Argument() Argument { return e.Command }

// CommandExecutionError wraps an error returned by a Command's CommandFunc.
type CommandExecutionError struct {
	Command *Command
	Err     error
}

func (e *CommandExecutionError) Error() string {
	return fmt.Sprintf("command '%s' failed: %v", e.Command.Name(), e.Err)
}

func (e *CommandExecutionError) Unwrap() error { return e.Err }

func (e *CommandExecutionError) Argument() Argument { return e.Command }

// ValidationError wraps an error reported by a Validator.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return "validation failed: " + e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Argument() Argument { return nil }
