// Package iterator provides iterators over parent-linked
// tree.Node trees, for use by tree implementations.
package iterator

import (
	"go.lepak.sg/avl/chops"
	"go.lepak.sg/avl/tree"
)

// Iterator describes the common interface for all
// iterators in this package.
// Next must always be called before Item or Node, even for
// the first round of iteration.
// If Next returns false, Item and Node must not be called.
// The iterator may be abandoned at any time.
//
// The usual usage of an Iterator is like this:
//
//	i := someTree.InOrderIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k, or break ...
//	}
type Iterator interface {
	Next() bool
	Item() int
	Node() *tree.Node
}

// Make sure this Iterator is kept in sync with the one in chops.
var _ chops.Iterator[int] = (Iterator)(nil)
