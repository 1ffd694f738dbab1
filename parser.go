// Package commandline implements a command line parser that resolves
// arguments into a tree of declared Commands and Options.
//
// Commands are named nodes that can have Options and sub-Commands and an
// optional CommandFunc executed after a successful parse. Options are named
// leaves bound to Go values. Arguments are matched by name, case
// insensitively, and each argument is consumed at most once. Options of a
// Command are only matched from arguments that follow the Command, Options
// of the Parser are matched anywhere. The argument following an Option, if
// it is not itself a Command or Option name, is its value.
//
// For example:
//
//	type Options struct{ Verbose bool }
//
//	p := commandline.New(&Options{}, commandline.ParserOptions{})
//	p.AddOption("v|verbose", "Verbose output.", false, &p.Model().Verbose)
//	list, _ := p.AddCommand("list", "List items.", true, listItems)
//	list.AddOption("a|all", "List all items.", false, &all)
//	result := p.Parse(os.Args[1:])
//	if result.HasErrors() {
//		os.Exit(1)
//	}
//
// Parsing never stops at the first error. Parse errors are collected into a
// result tree that mirrors the Command tree; Commands are executed only if
// the whole tree parsed without errors.
package commandline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/shlex"
)

// ParserOptions configures a Parser. The zero value is usable.
type ParserOptions struct {
	// AppName is the program name used in usage output.
	// Defaults to the base name of os.Args[0].
	AppName string
	// ShortPrefix is prepended to short Option names. Defaults to "-".
	ShortPrefix string
	// LongPrefix is prepended to long Option names. Defaults to "--".
	LongPrefix string
	// HelpOptionName are the help names, given as "short|long" without
	// prefix. Defaults to "h|help".
	HelpOptionName string
	// DisableHelpOption disables help requests.
	DisableHelpOption bool
	// DisableAutoPrint disables printing of usage, errors and suggestions
	// after a parse.
	DisableAutoPrint bool
	// StopParsingAfter is a sentinel argument. It and all arguments after it
	// are excluded from matching and returned as trailing arguments.
	// Disabled if empty.
	StopParsingAfter string
	// SuggestionThreshold is the minimum suggestion score.
	// Defaults to DefaultSuggestionThreshold.
	SuggestionThreshold float64
	// Color selects when usage output is colored.
	Color ColorMode
	// Output is where usage is printed. Defaults to os.Stdout.
	Output io.Writer
	// Logger receives debug records of parsing. Defaults to discarding.
	Logger *slog.Logger
}

// withDefaults returns opts with unset fields set to defaults.
func (opts ParserOptions) withDefaults() ParserOptions {
	if opts.AppName == "" {
		opts.AppName = filepath.Base(os.Args[0])
	}
	if opts.ShortPrefix == "" {
		opts.ShortPrefix = "-"
	}
	if opts.LongPrefix == "" {
		opts.LongPrefix = "--"
	}
	if opts.HelpOptionName == "" {
		opts.HelpOptionName = "h|help"
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return opts
}

// Parser is a command line parser that parses arguments into an options
// model of type T and a tree of Commands.
//
// Options defined directly on the Parser are bound to fields of the model,
// or any other Go value. Commands defined on the Parser are root Commands.
//
// A Parser is not safe for concurrent use; Parse writes to bound values.
type Parser[T any] struct {
	opts       ParserOptions
	root       *Command
	model      *T
	validators []Validator[T]
	printer    UsagePrinter
	suggest    *SuggestionProvider

	*Commands // Commands are root Commands.
	*Options  // Options are root Options.
}

// New returns a new *Parser for model configured by opts.
// If model is nil a new T is allocated.
//
// It panics if opts.HelpOptionName is not a valid name definition.
func New[T any](model *T, opts ParserOptions) *Parser[T] {
	opts = opts.withDefaults()
	if model == nil {
		model = new(T)
	}
	cfg := &config{
		shortPrefix: opts.ShortPrefix,
		longPrefix:  opts.LongPrefix,
		log:         opts.Logger,
	}
	if !opts.DisableHelpOption {
		help, err := parseNames(opts.HelpOptionName, opts.ShortPrefix, opts.LongPrefix)
		if err != nil {
			panic(fmt.Sprintf("commandline: invalid help option name '%s'", opts.HelpOptionName))
		}
		cfg.help = help
	}
	root := newCommand(names{}, "", false, nil, cfg)
	p := &Parser[T]{
		opts:    opts,
		root:    root,
		model:   model,
		suggest: NewSuggestionProvider(opts.SuggestionThreshold),
	}
	p.Commands = &root.Commands
	p.Options = &root.Options
	p.printer = NewConsolePrinter(opts.Output, root, opts.AppName, opts.Color)
	return p
}

// Model returns the options model.
func (p *Parser[T]) Model() *T { return p.model }

// Root returns the root Command that holds Parser Commands and Options.
func (p *Parser[T]) Root() *Command { return p.root }

// Printer returns the UsagePrinter used by the Parser.
func (p *Parser[T]) Printer() UsagePrinter { return p.printer }

// SetPrinter sets the UsagePrinter used by the Parser.
func (p *Parser[T]) SetPrinter(printer UsagePrinter) { p.printer = printer }

// AddValidator registers a Validator run on the model after parsing.
func (p *Parser[T]) AddValidator(v Validator[T]) { p.validators = append(p.validators, v) }

// Print returns the Parser's Options and Commands tree.
func (p *Parser[T]) Print() string { return p.root.Print() }

// Suggestions returns names an unused token might have meant.
func (p *Parser[T]) Suggestions(token UnusedToken) []string {
	return p.suggest.GetSuggestions(token.Text, token.Scope)
}

// Parse parses args. See ParseContext.
func (p *Parser[T]) Parse(args []string) *ParseResult[T] {
	return p.ParseContext(context.Background(), args)
}

// ParseLine splits line into arguments using shell quoting rules and
// parses them. See ParseContext.
func (p *Parser[T]) ParseLine(ctx context.Context, line string) (*ParseResult[T], error) {
	args, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("commandline: split line: %w", err)
	}
	return p.ParseContext(ctx, args), nil
}

// ParseContext parses args, usually invoked as "ParseContext(ctx, os.Args[1:])".
//
// Root Commands are parsed first, in order of registration, then root
// Options. An unused help argument requests help for the Command it follows.
// Validators run if help was not requested. If the result has no errors and
// no help was requested Commands with auto execute set are executed.
// Finally usage, errors and suggestions are printed unless disabled.
//
// Parse errors are not returned but recorded in the result.
func (p *Parser[T]) ParseContext(ctx context.Context, args []string) *ParseResult[T] {
	tokens, trailing := p.splitTrailing(args)
	m := NewArgumentManager(tokens, p.root)
	p.opts.Logger.Debug("arguments matched", "args", len(tokens), "matched", m.Len(), "trailing", len(trailing))

	r := newParseResult[T](p.root)
	r.Trailing = trailing
	p.root.parseCommands(ctx, m, &r.CommandResult)
	r.MergeErrors(p.root.parseOptions(m, &r.CommandResult)...)
	r.MergeValue(p.model)
	r.Unused = m.Unused()
	for _, u := range r.Unused {
		if m.IsHelp(u.Text) {
			r.setHelp(u.Scope)
			break
		}
	}

	if !r.HelpRequested() {
		r.MergeErrors(validate(ctx, p.model, p.validators)...)
	}
	if !r.HasErrors() && !r.HelpRequested() {
		r.executeCommands(ctx, (*Command).AutoExecute)
	}
	p.printResult(r, m, len(args) == 0)
	return r
}

// splitTrailing splits args at the stop parsing sentinel.
func (p *Parser[T]) splitTrailing(args []string) (tokens, trailing []string) {
	if p.opts.StopParsingAfter == "" {
		return args, nil
	}
	for i, arg := range args {
		if arg == p.opts.StopParsingAfter {
			return args[:i], append([]string(nil), args[i+1:]...)
		}
	}
	return args, nil
}

// needsArgs reports if parsing without arguments cannot succeed.
func (p *Parser[T]) needsArgs() bool {
	for _, opt := range p.root.Options.list {
		if !opt.HasDefault() {
			return true
		}
	}
	for _, cmd := range p.root.Commands.list {
		if cmd.required {
			return true
		}
	}
	return false
}

// printResult prints usage, errors and suggestions for r.
func (p *Parser[T]) printResult(r *ParseResult[T], m *ArgumentManager, noArgs bool) {
	if p.opts.DisableAutoPrint {
		return
	}
	switch {
	case noArgs && p.needsArgs():
		p.printer.PrintUsage()
	case r.HelpRequested():
		p.printUsageFor(r.HelpRequestedFor)
	case r.HasErrors():
		p.printer.PrintErrors(r.Errors())
		p.printUsageFor(r.firstFailure().Command)
	}
	for _, u := range r.Unused {
		if m.IsHelp(u.Text) {
			continue
		}
		if s := p.Suggestions(u); len(s) > 0 {
			p.printer.PrintSuggestion(u, s)
		}
	}
}

// printUsageFor prints usage of arg.
func (p *Parser[T]) printUsageFor(arg Argument) {
	switch a := arg.(type) {
	case *Option:
		p.printer.PrintOptionUsage(a)
	case *Command:
		if a == p.root {
			p.printer.PrintUsage()
			return
		}
		p.printer.PrintCommandUsage(a)
	default:
		p.printer.PrintUsage()
	}
}
