package iterator

import (
	"go.lepak.sg/avl/tree"
)

var _ Iterator = (*InOrderReverse)(nil)

// InOrderReverse is an iterator object over a binary tree.
// Iteration starts from the *largest* key and runs to
// the *smallest* key.
// The result of mutating the tree while iterating over it is undefined.
type InOrderReverse struct {
	root, at *tree.Node
}

// NewInOrderReverse returns a new InOrderReverse iterator over the tree
// rooted at root.
func NewInOrderReverse(root *tree.Node) *InOrderReverse {
	return &InOrderReverse{
		root: root,
	}
}

// Next returns true if there is a next node to yield with Item.
func (i *InOrderReverse) Next() bool {
	// Basically InOrder.Next but left and right are flipped.
	if i == nil {
		return false
	}

	if i.at == nil {
		i.at = i.root
		if i.at == nil {
			return false
		}

		i.at = i.at.Max()
		return true
	}

	if i.at.Left != nil {
		i.at = i.at.Left.Max()
		return true
	}

	var child *tree.Node

	for i.at != nil {
		i.at, child = i.at.Parent, i.at
		if i.at != nil && i.at.Right == child {
			return true
		}
	}

	return false
}

// Item returns the current key of the iterator.
func (i *InOrderReverse) Item() int {
	return i.at.Key
}

// Node returns the current node of the iterator.
func (i *InOrderReverse) Node() *tree.Node {
	return i.at
}
