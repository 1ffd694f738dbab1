package commandline

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// ColorMode selects when usage output is colored.
type ColorMode int

const (
	// ColorAuto colors output if it is a terminal and NO_COLOR is not set.
	ColorAuto ColorMode = iota
	// ColorAlways always colors output.
	ColorAlways
	// ColorNever never colors output.
	ColorNever
)

// UsagePrinter renders usage, errors and suggestions after a parse.
type UsagePrinter interface {
	// PrintUsage prints usage of the whole Parser.
	PrintUsage()
	// PrintCommandUsage prints usage of a Command.
	PrintCommandUsage(cmd *Command)
	// PrintOptionUsage prints usage of an Option.
	PrintOptionUsage(opt *Option)
	// PrintErrors prints parse errors.
	PrintErrors(errs []error)
	// PrintSuggestion prints names an unrecognized token might have meant.
	PrintSuggestion(token UnusedToken, suggestions []string)
}

// ConsolePrinter is a UsagePrinter that writes text to a writer.
type ConsolePrinter struct {
	w       io.Writer
	root    *Command
	appName string
	errc    *color.Color
	headc   *color.Color
}

// NewConsolePrinter returns a new *ConsolePrinter that prints usage of
// Commands and Options defined on root to w.
func NewConsolePrinter(w io.Writer, root *Command, appName string, mode ColorMode) *ConsolePrinter {
	p := &ConsolePrinter{
		w:       w,
		root:    root,
		appName: appName,
		errc:    color.New(color.FgRed),
		headc:   color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.errc, p.headc} {
		switch mode {
		case ColorAlways:
			c.EnableColor()
		case ColorNever:
			c.DisableColor()
		}
	}
	return p
}

// PrintUsage implements UsagePrinter.
func (p *ConsolePrinter) PrintUsage() { p.printScope(p.root) }

// PrintCommandUsage implements UsagePrinter.
func (p *ConsolePrinter) PrintCommandUsage(cmd *Command) {
	p.printScope(cmd)
	if cmd.help != "" {
		fmt.Fprintf(p.w, "\n%s\n", cmd.help)
	}
}

// PrintOptionUsage implements UsagePrinter.
func (p *ConsolePrinter) PrintOptionUsage(opt *Option) {
	p.headc.Fprint(p.w, "Usage: ")
	fmt.Fprintf(p.w, "%s %s", p.appName, opt.names)
	if t := optionType(opt); t != "" {
		fmt.Fprintf(p.w, " %s", t)
	}
	fmt.Fprintln(p.w)
	if h := optionHelp(opt); h != "" {
		fmt.Fprintf(p.w, "\n  %s\n", h)
	}
}

// PrintErrors implements UsagePrinter.
func (p *ConsolePrinter) PrintErrors(errs []error) {
	for _, err := range errs {
		p.errc.Fprintf(p.w, "Error: %v\n", err)
	}
	fmt.Fprintln(p.w)
}

// PrintSuggestion implements UsagePrinter.
func (p *ConsolePrinter) PrintSuggestion(token UnusedToken, suggestions []string) {
	fmt.Fprintf(p.w, "'%s' is not recognized as a valid command or option.\n\n", token.Text)
	p.headc.Fprintln(p.w, "Did you mean:")
	for _, s := range suggestions {
		fmt.Fprintf(p.w, "\t%s\n", s)
	}
}

// printScope prints the usage line of cmd followed by its Options and
// Commands.
func (p *ConsolePrinter) printScope(cmd *Command) {
	line := append([]string{p.appName}, cmd.Path()...)
	if len(cmd.Options.list) > 0 {
		line = append(line, "[options]")
	}
	if len(cmd.Commands.list) > 0 {
		line = append(line, "[commands]")
	}
	p.headc.Fprint(p.w, "Usage: ")
	fmt.Fprintln(p.w, strings.Join(line, " "))
	if len(cmd.Options.list) == 0 && len(cmd.Commands.list) == 0 {
		return
	}
	fmt.Fprintln(p.w)
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	printScope(tw, cmd, 1)
	tw.Flush()
}
