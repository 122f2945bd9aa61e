package interpreter

import (
	"fmt"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"regexnfa/internal/automaton"
)

type Script struct {
	Statements []*Statement `parser:"@@*"`
}

type Statement struct {
	Pos lexer.Position

	Regex  *string `parser:"(  'regex' @String"`
	State  *string `parser:" | 'state' @Ident"`
	Start  *string `parser:" | 'start' @Ident"`
	Accept *string `parser:" | 'accept' @Ident"`
	Edge   *Edge   `parser:" | @@"`
	Check  *string `parser:" | 'check' @String"`
	Expect *Expect `parser:" | @@"`
	Show   bool    `parser:" | @'show'"`
	Dot    bool    `parser:" | @'dot'"`
	Reset  bool    `parser:" | @'reset' ) ';'"`
}

type Edge struct {
	From    string  `parser:"'edge' @Ident '->'"`
	To      string  `parser:"@Ident"`
	Symbol  *string `parser:"( @String"`
	Epsilon bool    `parser:"| @'eps' )"`
}

type Expect struct {
	Input   string `parser:"'expect' @String"`
	Verdict string `parser:"@('accept' | 'reject')"`
}

var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `;`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[Script](
	participle.Lexer(scriptLexer),
	participle.Unquote("String"),
	participle.Elide("Comment", "Whitespace"),
)

func Parse(data string) (*Script, error) {
	return parser.ParseString("", data)
}

// ParseFile parses a script read from filename; positions in errors carry the name.
func ParseFile(filename, data string) (*Script, error) {
	return parser.ParseString(filename, data)
}

// Exec runs the statements in order and stops at the first failure.
func (sc *Script) Exec(s *Session) error {
	for _, stmt := range sc.Statements {
		if err := stmt.Exec(s); err != nil {
			return fmt.Errorf("%s: %w", stmt.Pos, err)
		}
	}
	return nil
}

func (st *Statement) Exec(s *Session) error {
	switch {
	case st.Regex != nil:
		return s.Compile(*st.Regex)
	case st.State != nil:
		s.Draft().Declare(*st.State)
	case st.Start != nil:
		s.Draft().SetStart(*st.Start)
	case st.Accept != nil:
		s.Draft().AddAccept(*st.Accept)
	case st.Edge != nil:
		sym, err := st.Edge.symbol()
		if err != nil {
			return err
		}
		s.Draft().AddEdge(st.Edge.From, st.Edge.To, sym)
	case st.Check != nil:
		ok, err := s.Accepts(*st.Check)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.Out, "%q: %s\n", *st.Check, verdict(ok))
	case st.Expect != nil:
		ok, err := s.Accepts(st.Expect.Input)
		if err != nil {
			return err
		}
		want := st.Expect.Verdict == "accept"
		if ok != want {
			return fmt.Errorf("%q: expected %s, got %s", st.Expect.Input, verdict(want), verdict(ok))
		}
		fmt.Fprintf(s.Out, "%q: %s as expected\n", st.Expect.Input, verdict(ok))
	case st.Show:
		return s.Show()
	case st.Dot:
		return s.Dot()
	case st.Reset:
		s.Reset()
	}
	return nil
}

func (e *Edge) symbol() (automaton.Symbol, error) {
	if e.Epsilon {
		return automaton.Epsilon, nil
	}
	if utf8.RuneCountInString(*e.Symbol) != 1 {
		return automaton.Symbol{}, fmt.Errorf("edge %s -> %s: symbol must be a single character, got %q", e.From, e.To, *e.Symbol)
	}
	r, _ := utf8.DecodeRuneInString(*e.Symbol)
	return automaton.On(r), nil
}

func verdict(ok bool) string {
	if ok {
		return "accepted"
	}
	return "rejected"
}
