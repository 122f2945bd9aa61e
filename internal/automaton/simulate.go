package automaton

// EpsilonClosure returns set plus every state reachable from it through
// epsilon transitions alone. set is not modified.
func EpsilonClosure(n *NFA, set StateSet) StateSet {
	closure := make(StateSet, len(set))
	work := make([]State, 0, len(set))
	for s := range set {
		closure.Add(s)
		work = append(work, s)
	}
	for len(work) > 0 {
		s := work[len(work)-1]
		work = work[:len(work)-1]
		for t := range n.delta[edgeKey{s, Epsilon}] {
			if closure.Add(t) {
				work = append(work, t)
			}
		}
	}
	return closure
}

// Move returns the states reached from set by one transition on c.
func Move(n *NFA, set StateSet, c rune) StateSet {
	next := StateSet{}
	sym := On(c)
	for s := range set {
		for t := range n.delta[edgeKey{s, sym}] {
			next.Add(t)
		}
	}
	return next
}

// Accepts reports whether n accepts input. The empty input takes the same
// path as any other: it is accepted when an accept state is in the epsilon
// closure of the start state.
func Accepts(n *NFA, input string) bool {
	current := EpsilonClosure(n, NewStateSet(n.start))
	for _, c := range input {
		if len(current) == 0 {
			return false
		}
		current = EpsilonClosure(n, Move(n, current, c))
	}
	return current.Intersects(n.accept)
}

func (n *NFA) Accepts(input string) bool { return Accepts(n, input) }
