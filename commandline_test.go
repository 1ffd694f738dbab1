package commandline

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

// quietOptions returns ParserOptions that print nothing.
func quietOptions() ParserOptions {
	return ParserOptions{AppName: "test", DisableAutoPrint: true, Output: io.Discard}
}

func TestHandler(t *testing.T) {

	type Globals struct {
		Verbose bool
	}

	var (
		deleted  bool
		listed   bool
		path     string
		all      bool
		color    bool
		username string
	)

	cl := New(&Globals{}, quietOptions())
	if _, err := cl.AddOption("v|verbose", "Enable verbose output.", false, &cl.Model().Verbose); err != nil {
		t.Fatal(err)
	}

	cmd, err := cl.AddCommand("delete", "Delete all files at specified path.", false, func(context.Context) error {
		deleted = true
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cmd.AddOption("p|path", "Path to target.", true, &path); err != nil {
		t.Fatal(err)
	}

	cmd, err = cl.AddCommand("list", "List items.", false, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cmd.AddOption("a|all", "List all items.", false, &all); err != nil {
		t.Fatal(err)
	}
	if _, err := cmd.AddOption("c|color", "Use color when listing.", false, &color); err != nil {
		t.Fatal(err)
	}
	if _, err := cmd.AddOption("u|username", "Specify username.", false, &username); err != nil {
		t.Fatal(err)
	}
	if _, err := cmd.AddCommand("names", "List names.", false, func(context.Context) error {
		listed = true
		return nil
	}); err != nil {
		t.Fatal(err)
	}

	result := cl.Parse([]string{"--verbose", "list", "-a", "-c", "--username", "foo bar", "names"})
	if result.HasErrors() {
		t.Fatal(result.Errors())
	}
	if !cl.Model().Verbose || !all || !color || username != "foo bar" {
		t.Fatalf("values not set: verbose=%v all=%v color=%v username=%q", cl.Model().Verbose, all, color, username)
	}
	if !listed {
		t.Fatal("names command not executed")
	}
	if deleted {
		t.Fatal("delete command executed but not specified")
	}
}

func TestAddNames(t *testing.T) {
	p := New[struct{}](nil, quietOptions())
	var s string

	tests := []struct {
		name      string
		wantShort string
		wantLong  string
		wantErr   error
	}{
		{"o", "-o", "", nil},
		{"output", "", "--output", nil},
		{"x|extra", "-x", "--extra", nil},
		{"|long", "", "--long", nil},
		{"", "", "", ErrInvalidName},
		{"|", "", "", ErrInvalidName},
		{"has space", "", "", ErrInvalidName},
		{"-dashed", "", "", ErrInvalidName},
		{"O", "", "", ErrDuplicateName},
		{"h", "", "", ErrDuplicateName},
		{"HELP", "", "", ErrDuplicateName},
		{"e|extra", "", "", ErrDuplicateName},
	}
	for _, test := range tests {
		opt, err := p.AddOption(test.name, "", false, &s)
		if !errors.Is(err, test.wantErr) {
			t.Errorf("AddOption(%q): got error %v, want %v", test.name, err, test.wantErr)
			continue
		}
		if err != nil {
			if opt != nil {
				t.Errorf("AddOption(%q): returned option with error", test.name)
			}
			continue
		}
		if opt.ShortName() != test.wantShort || opt.LongName() != test.wantLong {
			t.Errorf("AddOption(%q): got %q/%q, want %q/%q", test.name, opt.ShortName(), opt.LongName(), test.wantShort, test.wantLong)
		}
	}
}

func TestAddOptionInvalidValue(t *testing.T) {
	p := New[struct{}](nil, quietOptions())
	var nilptr *int
	for _, target := range []any{nil, 42, nilptr} {
		if _, err := p.AddOption("value", "", false, target); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("AddOption with %#v: got %v, want ErrInvalidValue", target, err)
		}
	}
}

func TestAddCommandDuplicate(t *testing.T) {
	p := New[struct{}](nil, quietOptions())
	cmd, err := p.AddCommand("r|run", "", false, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.AddCommand("RUN", "", false, nil); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("got %v, want ErrDuplicateName", err)
	}
	// Same name in a different scope is allowed.
	if _, err := cmd.AddCommand("run", "", false, nil); err != nil {
		t.Fatal(err)
	}
	if got, ok := p.GetCommand("r"); !ok || got != cmd {
		t.Fatal("GetCommand by short name failed")
	}
	if _, ok := p.GetOption("run"); ok {
		t.Fatal("GetOption returned a command")
	}
}

func TestDisabledHelpFreesNames(t *testing.T) {
	opts := quietOptions()
	opts.DisableHelpOption = true
	p := New[struct{}](nil, opts)
	var b bool
	if _, err := p.AddOption("h|help", "", false, &b); err != nil {
		t.Fatal(err)
	}
}

func TestSetDefault(t *testing.T) {
	p := New[struct{}](nil, quietOptions())
	var n int
	opt, err := p.AddOption("n", "", false, &n)
	if err != nil {
		t.Fatal(err)
	}
	if err := opt.SetDefault("five"); !errors.Is(err, ErrInvalidDefault) {
		t.Fatalf("got %v, want ErrInvalidDefault", err)
	}
	if err := opt.SetDefault(nil); !errors.Is(err, ErrInvalidDefault) {
		t.Fatalf("got %v, want ErrInvalidDefault", err)
	}
	if err := opt.SetDefault(5); err != nil {
		t.Fatal(err)
	}
	if def, ok := opt.Default(); !ok || def != 5 {
		t.Fatalf("got default %v, %v", def, ok)
	}
}

func TestPrint(t *testing.T) {
	p := New[struct{}](nil, quietOptions())
	var (
		verbose bool
		name    string
	)
	if _, err := p.AddOption("v|verbose", "Verbose.", false, &verbose); err != nil {
		t.Fatal(err)
	}
	cmd, err := p.AddCommand("greet", "Greet someone.", true, nil)
	if err != nil {
		t.Fatal(err)
	}
	opt, err := cmd.AddOption("name", "Who to greet.", false, &name)
	if err != nil {
		t.Fatal(err)
	}
	if err := opt.SetDefault("world"); err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"-v, --verbose\t\tVerbose.",
		"greet\t\tGreet someone. (required)",
		"  --name\t<string>\tWho to greet. (default: world)",
		"",
	}, "\n")
	if got := p.Print(); got != want {
		t.Fatalf("Print() =\n%s\nwant\n%s", got, want)
	}
}
