package automaton

import (
	"fmt"

	"regexnfa/internal/regex"
)

// fragment is the part of the automaton built for one subtree. It has a
// single entry and a single exit.
type fragment struct {
	start, accept State
}

// builder owns the automaton under construction and the state counter.
// Every fragment draws its states from the same counter, so fragments never
// share a state and merging them needs no renaming.
type builder struct {
	nfa  *NFA
	next State
}

// Compile builds the Thompson automaton for node. The result has exactly
// one accept state. Compile panics on a tree the parser cannot produce.
func Compile(node *regex.Node) *NFA {
	b := &builder{nfa: newNFA()}
	f := b.build(node)
	b.nfa.start = f.start
	b.nfa.accept.Add(f.accept)
	return b.nfa
}

// CompileRegex parses pattern and compiles it.
func CompileRegex(pattern string) (*NFA, error) {
	node, err := regex.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return Compile(node), nil
}

func MustCompileRegex(pattern string) *NFA {
	n, err := CompileRegex(pattern)
	if err != nil {
		panic(err)
	}
	return n
}

func (b *builder) fresh() State {
	s := b.next
	b.next++
	b.nfa.states.Add(s)
	return s
}

func (b *builder) epsilon(from, to State) { b.nfa.addTransition(from, Epsilon, to) }

func (b *builder) build(node *regex.Node) fragment {
	if node == nil {
		panic("automaton: nil syntax tree")
	}
	switch node.Kind {
	case regex.LiteralNode:
		s := b.fresh()
		a := b.fresh()
		b.nfa.addTransition(s, On(node.Char), a)
		return fragment{start: s, accept: a}
	case regex.ConcatNode:
		left := b.build(node.Left)
		right := b.build(node.Right)
		b.epsilon(left.accept, right.start)
		return fragment{start: left.start, accept: right.accept}
	case regex.UnionNode:
		s := b.fresh()
		left := b.build(node.Left)
		right := b.build(node.Right)
		a := b.fresh()
		b.epsilon(s, left.start)
		b.epsilon(s, right.start)
		b.epsilon(left.accept, a)
		b.epsilon(right.accept, a)
		return fragment{start: s, accept: a}
	case regex.StarNode:
		s := b.fresh()
		inner := b.build(node.Left)
		a := b.fresh()
		b.epsilon(s, inner.start)
		b.epsilon(s, a)
		b.epsilon(inner.accept, inner.start)
		b.epsilon(inner.accept, a)
		return fragment{start: s, accept: a}
	default:
		panic(fmt.Sprintf("automaton: unknown node kind %d", node.Kind))
	}
}
