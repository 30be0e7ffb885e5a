package avl

import (
	"fmt"

	"go.lepak.sg/avl/tree"
)

// rebalance walks from n up to the root and rotates every node whose
// Balance reached +2 or -2. The walk goes on past each rotation: a
// removal can leave several unbalanced ancestors, and on an already
// balanced path the walk changes nothing.
func (t *Tree) rebalance(n *tree.Node) {
	for n != nil {
		switch n.Balance {
		case -1, 0, 1:
		case 2:
			n = t.rotated(fixLeftHeavy(n))
		case -2:
			n = t.rotated(fixRightHeavy(n))
		default:
			tree.Fail(tree.ErrRebalance, fmt.Sprintf("node %d has balance %d", n.Key, n.Balance))
		}

		n = n.Parent
	}
}

// rotated adopts r as the tree root when a rotation left it parentless.
func (t *Tree) rotated(r *tree.Node) *tree.Node {
	if r.Parent == nil {
		t.root = r
	}
	return r
}

func fixLeftHeavy(n *tree.Node) *tree.Node {
	l := n.Left
	if l == nil {
		tree.Fail(tree.ErrRebalance, "left heavy node without a left child")
	}

	switch l.Balance {
	case 1, 0:
		// a level left child only happens after a removal
	case -1:
		l.RotateLeft()
	default:
		tree.Fail(tree.ErrRebalance, fmt.Sprintf("invalid balance %d under a left heavy node", l.Balance))
	}

	return n.RotateRight()
}

func fixRightHeavy(n *tree.Node) *tree.Node {
	r := n.Right
	if r == nil {
		tree.Fail(tree.ErrRebalance, "right heavy node without a right child")
	}

	switch r.Balance {
	case -1, 0:
	case 1:
		r.RotateRight()
	default:
		tree.Fail(tree.ErrRebalance, fmt.Sprintf("invalid balance %d under a right heavy node", r.Balance))
	}

	return n.RotateLeft()
}
