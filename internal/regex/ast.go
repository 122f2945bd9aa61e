package regex

import "fmt"

type NodeKind int

const (
	LiteralNode NodeKind = iota
	ConcatNode
	UnionNode
	StarNode // child in Left
)

// Node is a regular expression syntax tree. Nodes are never mutated once the
// parser returns them.
type Node struct {
	Kind  NodeKind
	Char  rune // LiteralNode only
	Left  *Node
	Right *Node
}

func Literal(c rune) *Node           { return &Node{Kind: LiteralNode, Char: c} }
func Concat(left, right *Node) *Node { return &Node{Kind: ConcatNode, Left: left, Right: right} }
func Union(left, right *Node) *Node  { return &Node{Kind: UnionNode, Left: left, Right: right} }
func Star(child *Node) *Node         { return &Node{Kind: StarNode, Left: child} }

// String renders the debug form, e.g. union('a', star('b')). It is meant for
// display and structural comparison only and is not valid regex syntax.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.Kind {
	case LiteralNode:
		return fmt.Sprintf("'%c'", n.Char)
	case ConcatNode:
		return fmt.Sprintf("concat(%s, %s)", n.Left, n.Right)
	case UnionNode:
		return fmt.Sprintf("union(%s, %s)", n.Left, n.Right)
	case StarNode:
		return fmt.Sprintf("star(%s)", n.Left)
	}
	return fmt.Sprintf("node(%d)", int(n.Kind))
}

// Equal reports whether two trees have the same shape and literals.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Kind != o.Kind || n.Char != o.Char {
		return false
	}
	return n.Left.Equal(o.Left) && n.Right.Equal(o.Right)
}

// Walk calls fn for n and its descendants in pre-order.
func Walk(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	Walk(n.Left, fn)
	Walk(n.Right, fn)
}

// CountStates is the number of automaton states Thompson construction
// produces for n: two per literal, union and star, none per concatenation.
func (n *Node) CountStates() int {
	count := 0
	Walk(n, func(n *Node) {
		if n.Kind != ConcatNode {
			count += 2
		}
	})
	return count
}
