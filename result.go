package commandline

import (
	"context"
	"errors"
)

// CommandResult is a node of the parse result tree. Its children mirror the
// Command tree in order of registration.
type CommandResult struct {
	// Command is the Command this node is for. For the root node it is the
	// Parser's root Command.
	Command *Command
	// Found reports if the Command was found in arguments.
	Found bool
	// HelpRequestedFor is the Argument help was requested for in this
	// subtree, nil if none. The first Argument to request help is kept.
	HelpRequestedFor Argument

	children []*CommandResult
	errors   []error
}

// newCommandResult returns a new *CommandResult for c.
func newCommandResult(c *Command) *CommandResult {
	return &CommandResult{Command: c}
}

// Children returns child nodes in order of Command registration.
func (r *CommandResult) Children() []*CommandResult { return r.children }

// Errors returns errors recorded on this node.
func (r *CommandResult) Errors() []error { return r.errors }

// HasErrors reports if this node or any of its descendants has errors.
func (r *CommandResult) HasErrors() bool {
	if len(r.errors) > 0 {
		return true
	}
	for _, child := range r.children {
		if child.HasErrors() {
			return true
		}
	}
	return false
}

// HelpRequested reports if help was requested in this subtree.
func (r *CommandResult) HelpRequested() bool { return r.HelpRequestedFor != nil }

// MergeResult appends child to children and adopts its help request if
// none was recorded yet.
func (r *CommandResult) MergeResult(child *CommandResult) {
	r.children = append(r.children, child)
	if child.HelpRequestedFor != nil {
		r.setHelp(child.HelpRequestedFor)
	}
}

// MergeErrors appends non-nil errs to this node's errors.
func (r *CommandResult) MergeErrors(errs ...error) {
	for _, err := range errs {
		if err != nil {
			r.errors = append(r.errors, err)
		}
	}
}

// setHelp records a help request for arg unless one is already recorded.
func (r *CommandResult) setHelp(arg Argument) {
	if r.HelpRequestedFor == nil {
		r.HelpRequestedFor = arg
	}
}

// Find returns the node for c in this subtree and truth if found.
func (r *CommandResult) Find(c *Command) (result *CommandResult, found bool) {
	r.Walk(func(node *CommandResult) bool {
		if node.Command == c {
			result, found = node, true
		}
		return !found
	})
	return
}

// Walk calls f for each node in this subtree, depth first, parents before
// children. Walking stops when f returns false.
func (r *CommandResult) Walk(f func(*CommandResult) bool) bool {
	if !f(r) {
		return false
	}
	for _, child := range r.children {
		if !child.Walk(f) {
			return false
		}
	}
	return true
}

// firstFailure returns the deepest node of the first failing branch.
func (r *CommandResult) firstFailure() *CommandResult {
	for _, child := range r.children {
		if child.HasErrors() {
			return child.firstFailure()
		}
	}
	return r
}

// ParseResult is the root of the parse result tree.
type ParseResult[T any] struct {
	CommandResult
	// Result is the options model of the Parser.
	Result *T
	// Unused are arguments that matched no Command or Option.
	Unused []UnusedToken
	// Trailing are arguments following the stop parsing sentinel, excluded
	// from matching.
	Trailing []string
}

// newParseResult returns a new *ParseResult for root.
func newParseResult[T any](root *Command) *ParseResult[T] {
	return &ParseResult[T]{CommandResult: CommandResult{Command: root, Found: true}}
}

// MergeValue sets the options model.
func (r *ParseResult[T]) MergeValue(value *T) { r.Result = value }

// ExecuteCommands executes all Commands found in arguments regardless of
// their auto execute setting. See executeCommands.
//
// Returns ErrParseFailed without executing anything if the result has
// errors or help was requested.
func (r *ParseResult[T]) ExecuteCommands(ctx context.Context) error {
	if r.HasErrors() || r.HelpRequested() {
		return ErrParseFailed
	}
	return r.executeCommands(ctx, func(*Command) bool { return true })
}

// executeCommands executes found Commands selected by filter.
//
// Siblings are executed in order of registration, all before any of their
// sub-Commands; sub-Commands of a Command that was not executed are not
// executed. Errors returned by CommandFuncs are wrapped in
// CommandExecutionError, merged into the root and do not stop execution.
// ctx is checked before each Command; if it is done execution stops and the
// context error is merged. Returns all errors merged by this call.
func (r *ParseResult[T]) executeCommands(ctx context.Context, filter func(*Command) bool) error {
	var errs []error
	var exec func(nodes []*CommandResult) bool
	exec = func(nodes []*CommandResult) bool {
		var executed []*CommandResult
		for _, node := range nodes {
			if !node.Found || !filter(node.Command) {
				continue
			}
			if err := ctx.Err(); err != nil {
				errs = append(errs, err)
				return false
			}
			if err := node.Command.Execute(ctx); err != nil {
				errs = append(errs, &CommandExecutionError{Command: node.Command, Err: err})
			}
			executed = append(executed, node)
		}
		for _, node := range executed {
			if !exec(node.children) {
				return false
			}
		}
		return true
	}
	exec(r.children)
	r.MergeErrors(errs...)
	return errors.Join(errs...)
}
