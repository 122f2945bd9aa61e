package automaton

import (
	"errors"
	"fmt"
)

var (
	ErrNoStart      = errors.New("automaton has no start state")
	ErrUnknownState = errors.New("unknown state")
)

// Definition describes an automaton by hand. Unlike Compile, it may declare
// several accept states, none at all, or states nothing reaches.
type Definition struct {
	States      []State
	Start       *State
	Accept      []State
	Transitions []Transition
}

// Assemble validates def and builds the automaton it describes. Start, every
// accept state and both ends of every transition must be listed in States.
func Assemble(def Definition) (*NFA, error) {
	if def.Start == nil {
		return nil, ErrNoStart
	}
	n := newNFA()
	for _, s := range def.States {
		n.states.Add(s)
	}
	if !n.states.Has(*def.Start) {
		return nil, fmt.Errorf("start %s: %w", *def.Start, ErrUnknownState)
	}
	n.start = *def.Start
	for _, s := range def.Accept {
		if !n.states.Has(s) {
			return nil, fmt.Errorf("accept %s: %w", s, ErrUnknownState)
		}
		n.accept.Add(s)
	}
	for _, t := range def.Transitions {
		if !n.states.Has(t.From) || !n.states.Has(t.To) {
			return nil, fmt.Errorf("transition %s: %w", t, ErrUnknownState)
		}
		n.addTransition(t.From, t.Symbol, t.To)
	}
	return n, nil
}
