package avl

import (
	"context"

	"go.lepak.sg/avl/chops"
	"go.lepak.sg/avl/tree"
	"go.lepak.sg/avl/tree/iterator"
)

// InOrder applies f to each key in the tree in-order.
// If f returns false, the iteration is stopped early.
func (t *Tree) InOrder(f func(k int) bool) {
	visitInOrder(t.root, f)
}

func visitInOrder(n *tree.Node, f func(k int) bool) bool {
	// Classic recursive in-order iteration.
	// Compare this to iterator.InOrder which is not recursive
	if n == nil {
		return true
	}

	if !visitInOrder(n.Left, f) {
		return false
	}

	if !f(n.Key) {
		return false
	}

	return visitInOrder(n.Right, f)
}

// Keys returns every key in ascending order.
func (t *Tree) Keys() []int {
	keys := make([]int, 0, t.count)
	t.InOrder(func(k int) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// InOrderIterator returns an iterator object that yields
// keys from the tree in-order.
func (t *Tree) InOrderIterator() *iterator.InOrder {
	return iterator.NewInOrder(t.root)
}

// InOrderReverseIterator returns an iterator object that yields
// keys from the tree from largest to smallest.
func (t *Tree) InOrderReverseIterator() *iterator.InOrderReverse {
	return iterator.NewInOrderReverse(t.root)
}

// PostOrderIterator returns an iterator object that yields every node
// after its children.
func (t *Tree) PostOrderIterator() *iterator.PostOrder {
	// an AVL tree of n nodes is at most 1.44*log2(n) tall; 64 levels
	// is beyond any tree that fits in memory
	return iterator.NewPostOrder(t.root, 64)
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := t.InOrderCoroutine(ctx)
//	defer co.Stop()
//	for k := range co.Items() {
//		... do stuff with k ...
//	}
//
// The tree must not be modified until the Items channel is closed.
func (t *Tree) InOrderCoroutine(ctx context.Context) chops.CoIterator[int] {
	return chops.CoIterate[int](ctx, t.InOrderIterator())
}
