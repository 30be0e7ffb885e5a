package avl

import (
	"go.lepak.sg/avl/tree"
)

type propagation int8

const (
	// a subtree gained one level
	grow propagation = iota
	// a subtree lost one level
	shrink
)

// propagate records that the subtree hanging from side of n changed
// height by one level, and carries the change up to the root.
//
// Every ancestor on the way is visited. The carried delta becomes zero
// at the first ancestor whose own height does not change, and from then
// on the remaining ancestors receive nothing. Ancestors are credited with
// the height they will have once rebalance has run, so a node pushed to
// +2 or -2 here is left for rebalance to rotate.
func propagate(n *tree.Node, side tree.Role, mode propagation) {
	delta := 1
	if mode == shrink {
		delta = -1
	}

	for n != nil {
		n.Balance += delta * side.Weight()
		if delta != 0 {
			delta = carry(n, mode)
		}
		side, n = n.Role, n.Parent
	}
}

// carry is the height change of n's subtree after one of its children
// changed height and n.Balance was adjusted for it.
func carry(n *tree.Node, mode propagation) int {
	switch mode {
	case grow:
		switch n.Balance {
		case 1, -1:
			return 1
		default:
			// 0 absorbed it; +2 and -2 rotate back to the old height
			return 0
		}
	case shrink:
		switch n.Balance {
		case 0:
			return -1
		case 2:
			return rotatedLoss(n.Left)
		case -2:
			return rotatedLoss(n.Right)
		default:
			return 0
		}
	default:
		panic("unreachable")
	}
}

// rotatedLoss is the height change of a node at +2 or -2 after deletion
// once it is rotated about its heavy child: only a level heavy child
// keeps the height.
func rotatedLoss(heavy *tree.Node) int {
	if heavy == nil {
		tree.Fail(tree.ErrRebalance, "unbalanced node without a heavy child")
	}

	if heavy.Balance == 0 {
		return 0
	}
	return -1
}
