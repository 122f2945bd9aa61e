package automaton

import (
	"bytes"
	"fmt"
	"io"
)

// WriteDOT writes the Graphviz representation of n to w.
func WriteDOT(w io.Writer, n *NFA) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "digraph NFA {")
	fmt.Fprintln(&buf, "    rankdir=LR;")
	for _, s := range n.States() {
		shape := "circle"
		if n.IsAccept(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(&buf, "    %s [shape=%s];\n", s, shape)
	}
	for _, t := range n.Transitions() {
		fmt.Fprintf(&buf, "    %s -> %s [label=%q];\n", t.From, t.To, t.Symbol.String())
	}
	fmt.Fprintln(&buf, "    _start [shape=point];")
	fmt.Fprintf(&buf, "    _start -> %s;\n", n.start)
	fmt.Fprintln(&buf, "}")
	_, err := w.Write(buf.Bytes())
	return err
}
