package interpreter

import (
	"fmt"

	"regexnfa/internal/automaton"
)

// Environment holds a hand-built automaton draft with named states.
type Environment struct {
	ids    map[string]automaton.State
	names  []string
	start  string
	accept []string
	edges  []namedEdge
}

type namedEdge struct {
	from, to string
	sym      automaton.Symbol
}

func NewEnvironment() *Environment {
	return &Environment{ids: make(map[string]automaton.State)}
}

func (e *Environment) Get(name string) (automaton.State, bool) {
	s, ok := e.ids[name]
	return s, ok
}

// Declare adds a state named name and returns its id. Declaring a name twice
// returns the first id.
func (e *Environment) Declare(name string) automaton.State {
	if s, ok := e.ids[name]; ok {
		return s
	}
	s := automaton.State(len(e.names))
	e.ids[name] = s
	e.names = append(e.names, name)
	return s
}

func (e *Environment) Name(s automaton.State) string {
	if int(s) >= 0 && int(s) < len(e.names) {
		return e.names[s]
	}
	return s.String()
}

// SetStart declares name and makes it the start state.
func (e *Environment) SetStart(name string) {
	e.Declare(name)
	e.start = name
}

// AddAccept declares name and marks it accepting.
func (e *Environment) AddAccept(name string) {
	e.Declare(name)
	e.accept = append(e.accept, name)
}

// AddEdge records a transition. Its endpoints are resolved at Assemble time,
// so they may be declared later.
func (e *Environment) AddEdge(from, to string, sym automaton.Symbol) {
	e.edges = append(e.edges, namedEdge{from: from, to: to, sym: sym})
}

// Assemble builds the automaton described so far.
func (e *Environment) Assemble() (*automaton.NFA, error) {
	def := automaton.Definition{}
	for i := range e.names {
		def.States = append(def.States, automaton.State(i))
	}
	if e.start != "" {
		s := e.ids[e.start]
		def.Start = &s
	}
	for _, name := range e.accept {
		def.Accept = append(def.Accept, e.ids[name])
	}
	for _, edge := range e.edges {
		from, ok := e.ids[edge.from]
		if !ok {
			return nil, fmt.Errorf("edge %s -> %s: state %s: %w", edge.from, edge.to, edge.from, automaton.ErrUnknownState)
		}
		to, ok := e.ids[edge.to]
		if !ok {
			return nil, fmt.Errorf("edge %s -> %s: state %s: %w", edge.from, edge.to, edge.to, automaton.ErrUnknownState)
		}
		def.Transitions = append(def.Transitions, automaton.Transition{From: from, Symbol: edge.sym, To: to})
	}
	return automaton.Assemble(def)
}
