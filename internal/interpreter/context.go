package interpreter

import (
	"errors"
	"io"

	"regexnfa/internal/automaton"
	"regexnfa/internal/regex"
)

var ErrNoAutomaton = errors.New("no automaton defined")

// Session stores the current automaton of a running script. It is either
// compiled from a regex or a hand-built draft, never both.
type Session struct {
	Out io.Writer

	Pattern string
	AST     *regex.Node
	NFA     *automaton.NFA

	draft *Environment
}

func NewSession(out io.Writer) *Session {
	return &Session{Out: out}
}

// Compile makes pattern the current automaton and drops any draft. On error
// the session is left unchanged.
func (s *Session) Compile(pattern string) error {
	ast, err := regex.Parse(pattern)
	if err != nil {
		return err
	}
	s.Pattern, s.AST, s.NFA = pattern, ast, automaton.Compile(ast)
	s.draft = nil
	return nil
}

// Draft returns the hand-built draft, starting an empty one and dropping the
// compiled regex if the session does not have one yet.
func (s *Session) Draft() *Environment {
	if s.draft == nil {
		s.Pattern, s.AST, s.NFA = "", nil, nil
		s.draft = NewEnvironment()
	}
	return s.draft
}

// Automaton returns the current automaton, assembling the draft if needed.
func (s *Session) Automaton() (*automaton.NFA, error) {
	switch {
	case s.draft != nil:
		return s.draft.Assemble()
	case s.NFA != nil:
		return s.NFA, nil
	}
	return nil, ErrNoAutomaton
}

func (s *Session) Accepts(input string) (bool, error) {
	n, err := s.Automaton()
	if err != nil {
		return false, err
	}
	return n.Accepts(input), nil
}

func (s *Session) Reset() {
	s.Pattern, s.AST, s.NFA = "", nil, nil
	s.draft = nil
}
