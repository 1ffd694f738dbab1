package commandline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// unusedTexts returns texts of unused tokens in m.
func unusedTexts(m *ArgumentManager) (out []string) {
	for _, u := range m.Unused() {
		out = append(out, u.Text)
	}
	return
}

// newScopedParser returns a parser with a root option "-o|--option" and a
// command "cmd" with an option "-x".
func newScopedParser(t *testing.T) (p *Parser[struct{}], o, x *Option, cmd *Command) {
	t.Helper()
	var ov, xv string
	p = New[struct{}](nil, quietOptions())
	o, err := p.AddOption("o|option", "", false, &ov)
	if err != nil {
		t.Fatal(err)
	}
	if cmd, err = p.AddCommand("cmd", "", false, nil); err != nil {
		t.Fatal(err)
	}
	if x, err = cmd.AddOption("x", "", false, &xv); err != nil {
		t.Fatal(err)
	}
	return
}

func TestManagerValueBinding(t *testing.T) {
	p, o, x, cmd := newScopedParser(t)
	m := NewArgumentManager([]string{"-o", "bla", "cmd", "-x", "v"}, p.Root())

	if m.Len() != 3 {
		t.Fatalf("got %d matches, want 3", m.Len())
	}
	for _, test := range []struct {
		arg  Argument
		want ArgumentModel
	}{
		{o, NewArgumentModel("-o", "bla")},
		{cmd, NewFlagModel("cmd")},
		{x, NewArgumentModel("-x", "v")},
	} {
		got, ok := m.TryGetValue(test.arg)
		if !ok {
			t.Fatalf("%s not found", test.arg.Name())
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Fatalf("%s model mismatch (-want +got):\n%s", test.arg.Name(), diff)
		}
	}
	if u := unusedTexts(m); len(u) != 0 {
		t.Fatalf("unexpected unused tokens %v", u)
	}
	tokens := m.Tokens()
	if tokens[1].ValueOf != o || tokens[4].ValueOf != x {
		t.Fatal("values not bound to their options")
	}
}

func TestManagerScoping(t *testing.T) {
	p, _, x, cmd := newScopedParser(t)
	// Command options are only matched after the command.
	m := NewArgumentManager([]string{"-x", "v", "cmd"}, p.Root())
	if _, ok := m.TryGetValue(x); ok {
		t.Fatal("option matched before its command")
	}
	if _, ok := m.TryGetValue(cmd); !ok {
		t.Fatal("command not matched")
	}
	if diff := cmp.Diff([]string{"-x", "v"}, unusedTexts(m)); diff != "" {
		t.Fatalf("unused mismatch (-want +got):\n%s", diff)
	}
	for _, u := range m.Unused() {
		if u.Scope != p.Root() {
			t.Fatalf("token %q scoped to %q, want root", u.Text, u.Scope.Name())
		}
	}
}

func TestManagerFirstOccurrenceWins(t *testing.T) {
	p, o, _, _ := newScopedParser(t)
	m := NewArgumentManager([]string{"-o", "a", "--option", "b"}, p.Root())
	got, _ := m.TryGetValue(o)
	if got.Value != "a" {
		t.Fatalf("got value %q, want first occurrence", got.Value)
	}
	if diff := cmp.Diff([]string{"--option", "b"}, unusedTexts(m)); diff != "" {
		t.Fatalf("unused mismatch (-want +got):\n%s", diff)
	}
}

func TestManagerCaseInsensitive(t *testing.T) {
	p, _, x, cmd := newScopedParser(t)
	m := NewArgumentManager([]string{"CMD", "-X", "V"}, p.Root())
	if _, ok := m.TryGetValue(cmd); !ok {
		t.Fatal("command not matched")
	}
	got, ok := m.TryGetValue(x)
	if !ok {
		t.Fatal("option not matched")
	}
	if diff := cmp.Diff(NewArgumentModel("-X", "V"), got); diff != "" {
		t.Fatalf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestManagerCommandValueUnused(t *testing.T) {
	p, _, _, cmd := newScopedParser(t)
	m := NewArgumentManager([]string{"cmd", "extra"}, p.Root())
	model, _ := m.TryGetValue(cmd)
	if !model.HasValue || model.Value != "extra" {
		t.Fatalf("got model %v", model)
	}
	unused := m.Unused()
	if len(unused) != 1 || unused[0].Text != "extra" || unused[0].Index != 1 || unused[0].Scope != cmd {
		t.Fatalf("got unused %+v", unused)
	}
}

func TestManagerSingleConsumption(t *testing.T) {
	p := New[struct{}](nil, quietOptions())
	build, err := p.AddCommand("build", "", false, nil)
	if err != nil {
		t.Fatal(err)
	}
	nested, err := build.AddCommand("run", "", false, nil)
	if err != nil {
		t.Fatal(err)
	}
	run, err := p.AddCommand("run", "", false, nil)
	if err != nil {
		t.Fatal(err)
	}

	m := NewArgumentManager([]string{"build", "run"}, p.Root())
	if _, ok := m.TryGetValue(nested); !ok {
		t.Fatal("nested command not matched")
	}
	if _, ok := m.TryGetValue(run); ok {
		t.Fatal("token consumed twice")
	}
	for _, tok := range m.Tokens() {
		if !tok.Consumed() {
			t.Fatalf("token %q not consumed", tok.Text)
		}
	}
}

func TestManagerHelp(t *testing.T) {
	p, _, _, _ := newScopedParser(t)
	m := NewArgumentManager(nil, p.Root())
	if !m.IsHelp("-h") || !m.IsHelp("--HELP") || m.IsHelp("help") {
		t.Fatal("help names not recognized")
	}

	opts := quietOptions()
	opts.DisableHelpOption = true
	p2 := New[struct{}](nil, opts)
	if NewArgumentManager(nil, p2.Root()).IsHelp("--help") {
		t.Fatal("help recognized while disabled")
	}
}
