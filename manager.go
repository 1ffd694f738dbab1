package commandline

// Token is a command line argument at a fixed position in arguments.
type Token struct {
	// Text is the argument text.
	Text string
	// Index is the position of the token in arguments.
	Index int
	// Owner is the Argument whose name this token matched.
	// Nil if the token was not consumed.
	Owner Argument
	// ValueOf is the Option this token was bound to as a value.
	// Nil if the token is not an Option value.
	ValueOf Argument
}

// Consumed reports if the token matched a declared Argument.
func (t Token) Consumed() bool { return t.Owner != nil }

// UnusedToken is a token that was neither consumed as an Argument name nor
// bound as an Option value.
type UnusedToken struct {
	// Text is the argument text.
	Text string
	// Index is the position of the token in arguments.
	Index int
	// Scope is the nearest Command matched before the token, or the root
	// Command if there is none.
	Scope *Command
}

// ArgumentManager matches command line arguments to declared Commands and
// Options.
//
// Each argument is consumed by at most one Argument. Commands are matched in
// order of registration, each followed by its own Options and sub-Commands
// which are only matched from arguments after the Command. Options of the
// root Command are matched last, over all arguments. Names are matched case
// insensitively.
//
// An ArgumentManager is built for a single parse and is not modified after
// construction.
type ArgumentManager struct {
	// tokens holds the arguments being matched, indexed by position.
	tokens []Token
	// index maps matched Arguments to their models.
	index map[Argument]ArgumentModel
	// unused are tokens not consumed or bound as values.
	unused []UnusedToken
	// help holds help names, empty if help is disabled.
	help names
}

// NewArgumentManager returns a new *ArgumentManager that matched args
// against the Commands and Options defined on root.
func NewArgumentManager(args []string, root *Command) *ArgumentManager {
	m := &ArgumentManager{
		tokens: make([]Token, len(args)),
		index:  make(map[Argument]ArgumentModel),
		help:   root.cfg.help,
	}
	for i, arg := range args {
		m.tokens[i] = Token{Text: arg, Index: i}
	}
	m.matchCommands(root.Commands.list, 0)
	m.matchOptions(root.Options.list, 0)
	m.bindValues()
	m.collectUnused(root)
	return m
}

// find returns the index of the first unconsumed token at or after offset
// that matches n, or -1 if none.
func (m *ArgumentManager) find(n names, offset int) int {
	for i := offset; i < len(m.tokens); i++ {
		if m.tokens[i].Owner == nil && n.matches(m.tokens[i].Text) {
			return i
		}
	}
	return -1
}

// matchCommands matches cmds from offset then recurses into Options and
// sub-Commands of each matched Command, from the Command's index onwards.
func (m *ArgumentManager) matchCommands(cmds []*Command, offset int) {
	for _, cmd := range cmds {
		idx := m.find(cmd.names, offset)
		if idx == -1 {
			continue
		}
		m.tokens[idx].Owner = cmd
		m.matchOptions(cmd.Options.list, idx+1)
		m.matchCommands(cmd.Commands.list, idx+1)
	}
}

// matchOptions matches opts from offset.
func (m *ArgumentManager) matchOptions(opts []*Option, offset int) {
	for _, opt := range opts {
		if idx := m.find(opt.names, offset); idx != -1 {
			m.tokens[idx].Owner = opt
		}
	}
}

// bindValues builds the match index. The value of a consumed token is the
// following token, unless that token was itself consumed.
//
// A value following an Option is bound to it and is not reported unused.
// Commands take no values so tokens following them remain unused.
func (m *ArgumentManager) bindValues() {
	for i := range m.tokens {
		t := m.tokens[i]
		if t.Owner == nil {
			continue
		}
		model := NewFlagModel(t.Text)
		if next := i + 1; next < len(m.tokens) && m.tokens[next].Owner == nil {
			model = NewArgumentModel(t.Text, m.tokens[next].Text)
			if _, isOption := t.Owner.(*Option); isOption {
				m.tokens[next].ValueOf = t.Owner
			}
		}
		m.index[t.Owner] = model
	}
}

// collectUnused collects tokens that are neither consumed nor bound as
// values, scoped to the last Command matched before them.
func (m *ArgumentManager) collectUnused(root *Command) {
	scope := root
	for _, t := range m.tokens {
		if cmd, ok := t.Owner.(*Command); ok {
			scope = cmd
			continue
		}
		if t.Owner != nil || t.ValueOf != nil {
			continue
		}
		m.unused = append(m.unused, UnusedToken{Text: t.Text, Index: t.Index, Scope: scope})
	}
}

// TryGetValue returns the model matched for argument and truth if argument
// was found in arguments.
func (m *ArgumentManager) TryGetValue(argument Argument) (ArgumentModel, bool) {
	model, ok := m.index[argument]
	return model, ok
}

// IsHelp reports if s is a help name. Always false if help is disabled.
func (m *ArgumentManager) IsHelp(s string) bool { return m.help.matches(s) }

// Unused returns tokens that were neither consumed nor bound as values, in
// order of appearance.
func (m *ArgumentManager) Unused() []UnusedToken {
	return append([]UnusedToken(nil), m.unused...)
}

// Tokens returns a copy of all tokens with their match state.
func (m *ArgumentManager) Tokens() []Token {
	return append([]Token(nil), m.tokens...)
}

// Len returns the number of Arguments found in arguments.
func (m *ArgumentManager) Len() int { return len(m.index) }
