package tst

import (
	"bufio"
	"fmt"
	"io"
)

var linkNames = [3]string{"lo", "eq", "hi"}

// Dump writes an indented view of the tree, one node per line.
func (t *Index) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if t.root == nilRef {
		fmt.Fprintln(bw, "EMPTY")
	} else {
		t.dump(bw, t.root, "root", "")
	}
	return bw.Flush()
}

func (t *Index) dump(w io.Writer, ref int, tag, indent string) {
	n := t.pool.Nodes[ref]

	mark := ""
	if n.end {
		mark = " END"
	}
	fmt.Fprintf(w, "%s%s: %q%s\n", indent, tag, n.char, mark)

	for i, child := range n.child {
		if child != nilRef {
			t.dump(w, child, linkNames[i], indent+"  ")
		}
	}
}
