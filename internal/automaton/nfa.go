package automaton

import (
	"fmt"
	"sort"
)

// State identifies a state within one NFA.
type State int

func (s State) String() string { return fmt.Sprintf("q%d", int(s)) }

// Symbol labels a transition. The zero value is epsilon.
type Symbol struct {
	char rune
	set  bool
}

// Epsilon is the label of a transition that consumes no input.
var Epsilon = Symbol{}

// On returns the symbol matching exactly c.
func On(c rune) Symbol { return Symbol{char: c, set: true} }

func (s Symbol) IsEpsilon() bool { return !s.set }

// Char returns the matched character, or 0 for epsilon.
func (s Symbol) Char() rune { return s.char }

func (s Symbol) String() string {
	if !s.set {
		return "ε"
	}
	return string(s.char)
}

func (s Symbol) less(o Symbol) bool {
	if s.set != o.set {
		return !s.set
	}
	return s.char < o.char
}

type Transition struct {
	From   State
	Symbol Symbol
	To     State
}

func (t Transition) String() string {
	return fmt.Sprintf("%s --%s--> %s", t.From, t.Symbol, t.To)
}

// StateSet is an unordered set of states.
type StateSet map[State]struct{}

func NewStateSet(states ...State) StateSet {
	set := make(StateSet, len(states))
	for _, s := range states {
		set[s] = struct{}{}
	}
	return set
}

// Add inserts s and reports whether it was not already present.
func (set StateSet) Add(s State) bool {
	if _, ok := set[s]; ok {
		return false
	}
	set[s] = struct{}{}
	return true
}

func (set StateSet) Has(s State) bool {
	_, ok := set[s]
	return ok
}

func (set StateSet) Equal(o StateSet) bool {
	if len(set) != len(o) {
		return false
	}
	for s := range set {
		if !o.Has(s) {
			return false
		}
	}
	return true
}

func (set StateSet) Intersects(o StateSet) bool {
	if len(o) < len(set) {
		set, o = o, set
	}
	for s := range set {
		if o.Has(s) {
			return true
		}
	}
	return false
}

// Sorted returns the members in ascending order.
func (set StateSet) Sorted() []State {
	out := make([]State, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

type edgeKey struct {
	from State
	sym  Symbol
}

// NFA is a nondeterministic finite automaton with epsilon moves and any
// number of accept states. It is never modified after Compile or Assemble
// returns it, so one NFA may be simulated from several goroutines.
type NFA struct {
	states StateSet
	start  State
	accept StateSet
	delta  map[edgeKey]StateSet
	edges  int
}

func newNFA() *NFA {
	return &NFA{
		states: StateSet{},
		accept: StateSet{},
		delta:  map[edgeKey]StateSet{},
	}
}

func (n *NFA) addTransition(from State, sym Symbol, to State) {
	key := edgeKey{from, sym}
	targets, ok := n.delta[key]
	if !ok {
		targets = StateSet{}
		n.delta[key] = targets
	}
	if targets.Add(to) {
		n.edges++
	}
}

func (n *NFA) Start() State { return n.start }

// States returns every state in ascending order.
func (n *NFA) States() []State { return n.states.Sorted() }

// AcceptStates returns the accept states in ascending order.
func (n *NFA) AcceptStates() []State { return n.accept.Sorted() }

func (n *NFA) IsAccept(s State) bool { return n.accept.Has(s) }

// Targets returns the states reachable from s by one transition labelled sym.
func (n *NFA) Targets(s State, sym Symbol) []State { return n.delta[edgeKey{s, sym}].Sorted() }

func (n *NFA) NumTransitions() int { return n.edges }

// Transitions lists every transition ordered by source, label and target.
func (n *NFA) Transitions() []Transition {
	out := make([]Transition, 0, n.edges)
	for key, targets := range n.delta {
		for to := range targets {
			out = append(out, Transition{From: key.from, Symbol: key.sym, To: to})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.From != b.From {
			return a.From < b.From
		}
		if a.Symbol != b.Symbol {
			return a.Symbol.less(b.Symbol)
		}
		return a.To < b.To
	})
	return out
}

func (n *NFA) String() string {
	return fmt.Sprintf("NFA{start: %s, accept: %v, states: %d, transitions: %d}",
		n.start, n.AcceptStates(), len(n.states), n.edges)
}
