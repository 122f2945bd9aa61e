package interpreter

import (
	"fmt"

	"regexnfa/internal/automaton"
)

// Show prints the current regex, its syntax tree and the automaton.
func (s *Session) Show() error {
	n, err := s.Automaton()
	if err != nil {
		return err
	}
	name := automaton.State.String
	if s.draft != nil {
		name = s.draft.Name
	} else {
		fmt.Fprintf(s.Out, "regex: %s\n", s.Pattern)
		fmt.Fprintf(s.Out, "ast: %s\n", s.AST)
	}
	fmt.Fprintf(s.Out, "start: %s\n", name(n.Start()))
	fmt.Fprint(s.Out, "accept:")
	for _, st := range n.AcceptStates() {
		fmt.Fprintf(s.Out, " %s", name(st))
	}
	fmt.Fprintln(s.Out)
	for _, t := range n.Transitions() {
		fmt.Fprintf(s.Out, "  %s --%s--> %s\n", name(t.From), t.Symbol, name(t.To))
	}
	return nil
}

// Dot prints the Graphviz rendering of the current automaton.
func (s *Session) Dot() error {
	n, err := s.Automaton()
	if err != nil {
		return err
	}
	return automaton.WriteDOT(s.Out, n)
}
