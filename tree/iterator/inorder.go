package iterator

import (
	"go.lepak.sg/avl/tree"
)

var _ Iterator = (*InOrder)(nil)

// InOrder is an iterator object over a binary tree.
// The usage should be pretty familiar:
//
//	i := someTree.InOrderIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
//
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrder struct {
	root, at *tree.Node
}

// NewInOrder returns a new InOrder iterator over the tree rooted at root.
func NewInOrder(root *tree.Node) *InOrder {
	return &InOrder{
		root: root,
	}
}

// Next returns true if there is a next node to yield with Item.
func (i *InOrder) Next() bool {
	// https://www.cs.odu.edu/~zeil/cs361/latest/Public/treetraversal/index.html
	if i == nil {
		return false
	}

	if i.at == nil {
		// after a false Next, calling Next again starts over
		i.at = i.root
		if i.at == nil {
			return false
		}

		i.at = i.at.Min()
		return true
	}

	if i.at.Right != nil {
		i.at = i.at.Right.Min()
		return true
	}

	var child *tree.Node

	for i.at != nil {
		i.at, child = i.at.Parent, i.at
		if i.at != nil && i.at.Left == child {
			return true
		}
	}

	return false
}

// Item returns the current key of the iterator.
func (i *InOrder) Item() int {
	return i.at.Key
}

// Node returns the current node of the iterator.
func (i *InOrder) Node() *tree.Node {
	return i.at
}
