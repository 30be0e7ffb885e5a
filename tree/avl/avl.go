package avl

import (
	"go.lepak.sg/avl/tree"
)

// Tree is an AVL tree of int keys. Duplicate keys are allowed.
//
// The zero Tree may be used immediately. Tree should not be passed
// around as a value (ie. just use New or &Tree{} when creating one).
type Tree struct {
	// the tree is rooted here.
	// nodes handed out are handles: clients must not write to them.
	root  *tree.Node
	count int
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{}
}

// IsEmpty is true if the tree has no nodes.
func (t *Tree) IsEmpty() bool {
	return t.root == nil
}

// Len is the number of nodes in the tree.
func (t *Tree) Len() int {
	return t.count
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree) Root() *tree.Node {
	return t.root
}

// Height counts the levels of the tree. It walks every node.
func (t *Tree) Height() int {
	return t.root.Height()
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree) Contains(k int) bool {
	return t.Find(k) != nil
}

// Find returns a node with key k, or nil. With duplicate keys, any one of
// the matching nodes may be returned. The result may be passed to Remove.
func (t *Tree) Find(k int) *tree.Node {
	n := t.root

	for n != nil {
		switch tree.Compare(k, n.Key) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			return n
		default:
			panic("unreachable")
		}
	}

	return nil
}

// Min returns the node with the smallest key, or nil.
func (t *Tree) Min() *tree.Node {
	if t.root == nil {
		return nil
	}
	return t.root.Min()
}

// Max returns the node with the largest key, or nil.
func (t *Tree) Max() *tree.Node {
	if t.root == nil {
		return nil
	}
	return t.root.Max()
}

// Insert adds k to the tree and returns the new node. Keep the node to
// remove this entry later.
func (t *Tree) Insert(k int) *tree.Node {
	newnode := tree.NodeOf(k)
	t.count++

	if t.root == nil {
		t.root = newnode
		return newnode
	}

	p, side := t.attachPoint(k)
	tree.Link(p, newnode, side)

	propagate(p, side, grow)
	t.rebalance(newnode)

	return newnode
}

// attachPoint walks down to the empty slot where k belongs.
// Keys equal to a node's key go to its right.
func (t *Tree) attachPoint(k int) (*tree.Node, tree.Role) {
	n, p := t.root, (*tree.Node)(nil)
	side := tree.Root

	for n != nil {
		p = n
		if tree.Compare(k, n.Key) == tree.Less {
			n, side = n.Left, tree.LeftChild
		} else {
			n, side = n.Right, tree.RightChild
		}
	}

	return p, side
}

// Destroy unlinks every node, children before parents, and empties
// the tree. Handles obtained earlier are left detached and must not be
// passed to Remove.
func (t *Tree) Destroy() {
	i := t.PostOrderIterator()
	for i.Next() {
		n := i.Node()
		n.Clear()
	}

	t.root = nil
	t.count = 0
}
