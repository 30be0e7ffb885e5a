package avl

import (
	"fmt"
	"strings"

	"go.lepak.sg/avl/tree"
)

// String returns a string representation of the tree, with each
// node's balance in brackets. The {10,20,30} tree looks like this:
//
//	20 [+0]
//	├─L─10 [+0]
//	└─R─30 [+0]
//
// The format is for humans and may change.
func (t *Tree) String() string {
	if t.root == nil {
		return ""
	}

	var sb strings.Builder
	writeNode(&sb, t.root)
	writeChildren(&sb, t.root, "")

	return sb.String()
}

func writeNode(sb *strings.Builder, n *tree.Node) {
	fmt.Fprintf(sb, "%d [%+d]\n", n.Key, n.Balance)
}

type edge struct {
	child *tree.Node
	label string
}

// writeChildren draws the subtrees below n, every line starting with indent.
func writeChildren(sb *strings.Builder, n *tree.Node, indent string) {
	edges := make([]edge, 0, 2)
	if n.Left != nil {
		edges = append(edges, edge{n.Left, "L─"})
	}
	if n.Right != nil {
		edges = append(edges, edge{n.Right, "R─"})
	}

	for i, e := range edges {
		branch, cont := "├─", "│   "
		if i == len(edges)-1 {
			branch, cont = "└─", "    "
		}

		sb.WriteString(indent)
		sb.WriteString(branch)
		sb.WriteString(e.label)
		writeNode(sb, e.child)
		writeChildren(sb, e.child, indent+cont)
	}
}
