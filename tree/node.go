package tree

import (
	"golang.org/x/exp/constraints"
)

// Role records the side of its parent that a node hangs from.
type Role int8

const (
	Root Role = iota
	LeftChild
	RightChild
)

func (r Role) String() string {
	switch r {
	case Root:
		return "Root"
	case LeftChild:
		return "LeftChild"
	case RightChild:
		return "RightChild"
	default:
		return "<invalid tree.Role>"
	}
}

// Weight is the sign a height change on this side contributes to the
// parent's Balance: +1 for the left side, -1 for the right side.
func (r Role) Weight() int {
	switch r {
	case LeftChild:
		return 1
	case RightChild:
		return -1
	default:
		Fail(ErrRole, "a "+r.String()+" node has no side")
		panic("unreachable")
	}
}

// Node is a node of a parent-linked binary tree.
//
// Left and Right own their subtrees. Parent is only a back reference.
// Balance is height(Left) - height(Right), kept up to date incrementally
// by whatever tree owns the node; Role must always agree with which
// child pointer of Parent refers to this node.
type Node struct {
	Key                 int
	Left, Right, Parent *Node
	Balance             int
	Role                Role
}

func NodeOf(k int) *Node {
	return &Node{
		Key: k,
	}
}

// IsLeaf is true for a node without children.
func (n *Node) IsLeaf() bool {
	return n != nil && n.Left == nil && n.Right == nil
}

// IsRoot is true for a node without a parent.
func (n *Node) IsRoot() bool {
	return n != nil && n.Parent == nil
}

// Child returns the child on side r.
func (n *Node) Child(r Role) *Node {
	switch r {
	case LeftChild:
		return n.Left
	case RightChild:
		return n.Right
	default:
		Fail(ErrRole, "a node has no "+r.String()+" child")
		panic("unreachable")
	}
}

// Max returns the rightmost node of the subtree rooted at n.
func (n *Node) Max() *Node {
	if n == nil {
		Fail(ErrMax, "no maximum in an empty subtree")
	}

	for n.Right != nil {
		n = n.Right
	}
	return n
}

// Min returns the leftmost node of the subtree rooted at n.
func (n *Node) Min() *Node {
	if n == nil {
		Fail(ErrMax, "no minimum in an empty subtree")
	}

	for n.Left != nil {
		n = n.Left
	}
	return n
}

// Height counts the nodes on the longest downward path from n.
// It walks the whole subtree; trees keep Balance instead.
func (n *Node) Height() int {
	if n == nil {
		return 0
	}

	l, r := n.Left.Height(), n.Right.Height()
	if l > r {
		return l + 1
	}
	return r + 1
}

// Link makes child the r-side child of parent, fixing up child's Parent
// and Role. A nil child empties the slot.
func Link(parent, child *Node, r Role) {
	if parent == nil {
		Fail(ErrLink, "nil parent")
	}

	switch r {
	case LeftChild:
		parent.Left = child
	case RightChild:
		parent.Right = child
	default:
		Fail(ErrLink, "cannot link as "+r.String())
	}

	if child != nil {
		child.Parent = parent
		child.Role = r
	}
}

// Unlink detaches child from parent. child keeps its own subtrees.
func Unlink(parent, child *Node) {
	if parent == nil || child == nil {
		Fail(ErrUnlink, "nil node")
	}

	if child.Parent != parent {
		Fail(ErrUnlink, "parent node is not the parent of child node")
	}

	switch child.Role {
	case LeftChild:
		if parent.Left != child {
			Fail(ErrUnlink, "child node is not the left child of the parent node")
		}
		parent.Left = nil
	case RightChild:
		if parent.Right != child {
			Fail(ErrUnlink, "child node is not the right child of the parent node")
		}
		parent.Right = nil
	default:
		Fail(ErrUnlink, "child node has role "+child.Role.String())
	}

	child.Parent = nil
	child.Role = Root
}

// Clear drops every link of n, leaving a detached root-like node.
func (n *Node) Clear() {
	n.Left, n.Right, n.Parent = nil, nil, nil
	n.Balance = 0
	n.Role = Root
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}
