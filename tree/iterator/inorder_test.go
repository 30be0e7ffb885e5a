package iterator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/avl/tree"
)

func join(l *tree.Node, k int, r *tree.Node) *tree.Node {
	n := tree.NodeOf(k)
	if l != nil {
		tree.Link(n, l, tree.LeftChild)
	}
	if r != nil {
		tree.Link(n, r, tree.RightChild)
	}
	return n
}

func newCompleteTree_2Tall() *tree.Node {
	return join(
		join(tree.NodeOf(1), 2, tree.NodeOf(3)),
		4,
		join(tree.NodeOf(5), 6, tree.NodeOf(7)),
	)
}

func newLopsidedTree() *tree.Node {
	return join(
		join(nil, 2, tree.NodeOf(3)),
		4,
		join(tree.NodeOf(5), 6, nil),
	)
}

func drain(i Iterator) []int {
	var out []int
	for i.Next() {
		out = append(out, i.Item())
	}
	return out
}

func TestInOrder(t *testing.T) {
	tests := []struct {
		name   string
		create func() *tree.Node
		post   func(t *testing.T, i *InOrder)
	}{
		{
			name: "empty",
			create: func() *tree.Node {
				return nil
			},
			post: func(t *testing.T, i *InOrder) {
				assert.False(t, i.Next(), "first")
			},
		},
		{
			name: "one",
			create: func() *tree.Node {
				return tree.NodeOf(1)
			},
			post: func(t *testing.T, i *InOrder) {
				assert.True(t, i.Next(), "first")
				assert.Equal(t, 1, i.Item())
				assert.Equal(t, 1, i.Node().Key)
				assert.False(t, i.Next(), "second")
			},
		},
		{
			name:   "height=2",
			create: newCompleteTree_2Tall,
			post: func(t *testing.T, i *InOrder) {
				assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, drain(i))
			},
		},
		{
			name:   "lopsided",
			create: newLopsidedTree,
			post: func(t *testing.T, i *InOrder) {
				assert.Equal(t, []int{2, 3, 4, 5, 6}, drain(i))
			},
		},
		{
			name:   "restart",
			create: newCompleteTree_2Tall,
			post: func(t *testing.T, i *InOrder) {
				drain(i)
				assert.True(t, i.Next())
				assert.Equal(t, 1, i.Item())
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.post(t, NewInOrder(tt.create()))
		})
	}
}
