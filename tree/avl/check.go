package avl

import (
	"fmt"

	"go.lepak.sg/avl/tree"
	"golang.org/x/exp/slices"
)

// Check verifies the tree from scratch, without trusting any stored
// Balance, and returns an error describing the first problem found:
//   - every child points back at its parent and carries the right Role
//   - the root has no parent and the Root role
//   - keys come out of an in-order walk in non-decreasing order
//   - every Balance equals the real height difference and is -1, 0 or 1
//   - Len matches the number of reachable nodes
func (t *Tree) Check() error {
	if t.root != nil {
		if t.root.Parent != nil {
			return fmt.Errorf("root %d has a parent", t.root.Key)
		}
		if t.root.Role != tree.Root {
			return fmt.Errorf("root %d has role %v", t.root.Key, t.root.Role)
		}
	}

	nodes := 0
	if _, err := checkNode(t.root, &nodes); err != nil {
		return err
	}

	if nodes != t.count {
		return fmt.Errorf("counted %d nodes, Len is %d", nodes, t.count)
	}

	if keys := t.Keys(); !slices.IsSorted(keys) {
		return fmt.Errorf("in-order keys are not sorted: %v", keys)
	}

	return nil
}

// checkNode returns the height of the subtree rooted at n.
func checkNode(n *tree.Node, nodes *int) (int, error) {
	if n == nil {
		return 0, nil
	}
	*nodes++

	for _, side := range []tree.Role{tree.LeftChild, tree.RightChild} {
		c := n.Child(side)
		if c == nil {
			continue
		}
		if c.Parent != n {
			return 0, fmt.Errorf("node %d: %v child %d does not point back", n.Key, side, c.Key)
		}
		if c.Role != side {
			return 0, fmt.Errorf("node %d: %v child %d has role %v", n.Key, side, c.Key, c.Role)
		}
	}

	lh, err := checkNode(n.Left, nodes)
	if err != nil {
		return 0, err
	}
	rh, err := checkNode(n.Right, nodes)
	if err != nil {
		return 0, err
	}

	if n.Balance != lh-rh {
		return 0, fmt.Errorf("node %d: balance %d, heights say %d", n.Key, n.Balance, lh-rh)
	}
	if n.Balance < -1 || n.Balance > 1 {
		return 0, fmt.Errorf("node %d: out of balance (%d)", n.Key, n.Balance)
	}

	if lh > rh {
		return lh + 1, nil
	}
	return rh + 1, nil
}
