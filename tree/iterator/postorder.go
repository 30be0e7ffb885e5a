package iterator

import (
	"go.lepak.sg/avl/tree"
)

var _ Iterator = (*PostOrder)(nil)

// PostOrder yields every node after both of its subtrees.
//
// It keeps its own stack instead of following Parent pointers,
// and once a node has been yielded it never looks at that node's
// links again. The caller may therefore unlink or clear the current
// node before calling Next, which is what tree teardown does.
type PostOrder struct {
	root    *tree.Node
	stack   []postFrame
	started bool
}

type postFrame struct {
	n *tree.Node
	// the right subtree has been entered (or was skipped)
	right bool
}

// NewPostOrder creates a new post-order iterator.
// If the tree's height is known, pass it as heightHint.
// Otherwise it's safe to leave it as 0.
func NewPostOrder(root *tree.Node, heightHint int) *PostOrder {
	return &PostOrder{
		root:  root,
		stack: make([]postFrame, 0, heightHint+1),
	}
}

// Recursive post-order iteration looks like this:
//
//	func visit(n *Node, f func(*Node)) {
//		if n == nil {
//			return
//		}
//		visit(n.Left, f)
//		visit(n.Right, f)	--(1)
//		f(n)
//	}
//
// descend replays the calls down to the first node with no children,
// preferring the left side. When a frame finishes its left child it
// resumes at (1) by descending into its right child.
func (i *PostOrder) descend(n *tree.Node) {
	for n != nil {
		f := postFrame{n: n}
		next := n.Left
		if next == nil {
			f.right = true
			next = n.Right
		}
		i.stack = append(i.stack, f)
		n = next
	}
}

func (i *PostOrder) Next() bool {
	if i == nil {
		return false
	}

	if !i.started {
		i.started = true
		i.descend(i.root)
		return len(i.stack) > 0
	}

	if len(i.stack) == 0 {
		return false
	}

	i.stack = i.stack[:len(i.stack)-1]

	if len(i.stack) == 0 {
		return false
	}

	top := &i.stack[len(i.stack)-1]
	if !top.right {
		top.right = true
		i.descend(top.n.Right)
	}

	return true
}

func (i *PostOrder) Item() int {
	return i.stack[len(i.stack)-1].n.Key
}

func (i *PostOrder) Node() *tree.Node {
	return i.stack[len(i.stack)-1].n
}
