package avl

import (
	"math/rand"

	"go.lepak.sg/avl/tree"
)

// BuildRandom builds a tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
// The returned handles are indexed by key.
func BuildRandom(num int, seed int64) (*Tree, []*tree.Node) {
	rd := rand.New(rand.NewSource(seed))

	keys := make([]int, num)
	for i := 0; i < num; i++ {
		keys[i] = i
	}

	rd.Shuffle(num, func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})

	tr := New()
	handles := make([]*tree.Node, num)
	for _, k := range keys {
		handles[k] = tr.Insert(k)
	}

	return tr, handles
}

// BuildFrom inserts keys in the given order and returns the tree
// together with the handles, in the same order as keys.
func BuildFrom(keys ...int) (*Tree, []*tree.Node) {
	tr := New()
	handles := make([]*tree.Node, len(keys))
	for i, k := range keys {
		handles[i] = tr.Insert(k)
	}
	return tr, handles
}
