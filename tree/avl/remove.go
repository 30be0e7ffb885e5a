package avl

import (
	"go.lepak.sg/avl/tree"
)

// Remove deletes n, a node previously returned by Insert or Find on this
// tree. Other nodes are relinked, never copied, so their handles stay
// valid. n is left fully detached.
//
// Remove panics with a *tree.Fault if n does not belong to t.
func (t *Tree) Remove(n *tree.Node) {
	t.mustOwn(n)

	switch {
	case n.IsLeaf():
		t.removeLeaf(n)
	case n.Left == nil:
		t.removeWithRightChild(n)
	default:
		t.removeWithPredecessor(n)
	}

	t.count--
	n.Clear()
}

// mustOwn checks that n hangs off t.root through consistent links.
func (t *Tree) mustOwn(n *tree.Node) {
	if n == nil {
		tree.Fail(tree.ErrRemove, "nil node")
	}

	top := n
	for top.Parent != nil {
		if top.Parent.Child(top.Role) != top {
			tree.Fail(tree.ErrRemove, "node is not linked from its parent")
		}
		top = top.Parent
	}

	if top != t.root {
		tree.Fail(tree.ErrRemove, "node does not belong to this tree")
	}
}

func (t *Tree) removeLeaf(n *tree.Node) {
	if n.Parent == nil {
		t.root = nil
		return
	}

	p := n.Parent
	propagate(p, n.Role, shrink)
	tree.Unlink(p, n)
	t.rebalance(p)
}

// removeWithRightChild promotes the only child of n into its slot.
func (t *Tree) removeWithRightChild(n *tree.Node) {
	c := n.Right

	if n.Parent != nil {
		propagate(n.Parent, n.Role, shrink)
	}
	t.replace(n, c)
	t.rebalance(c)
}

// removeWithPredecessor moves the largest node of n's left subtree
// into n's slot.
func (t *Tree) removeWithPredecessor(n *tree.Node) {
	pred := n.Left.Max()

	if pred == n.Left {
		// pred has no right child; its left subtree stays where it is
		pred.Balance = n.Balance
		t.replace(n, pred)
		tree.Link(pred, n.Right, tree.RightChild)

		propagate(pred, tree.LeftChild, shrink)
		t.rebalance(pred)
		return
	}

	oldParent := pred.Parent
	tree.Link(oldParent, pred.Left, tree.RightChild)

	pred.Balance = n.Balance
	tree.Link(pred, n.Left, tree.LeftChild)
	tree.Link(pred, n.Right, tree.RightChild)
	t.replace(n, pred)

	propagate(oldParent, tree.RightChild, shrink)
	t.rebalance(oldParent)
}

// replace hangs r where old hangs now: under old's parent on the same
// side, or as the tree root.
func (t *Tree) replace(old, r *tree.Node) {
	if old.Parent == nil {
		t.root = r
		r.Parent = nil
		r.Role = tree.Root
		return
	}

	tree.Link(old.Parent, r, old.Role)
}
