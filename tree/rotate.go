package tree

// Direction selects which way Rotate turns a subtree.
type Direction int8

const (
	TurnLeft Direction = iota
	TurnRight
)

// RotateLeft rotates a Node to the left and returns
// the Node that now occupies its old position.
// For example, this is the result of calling n.RotateLeft:
//
//	  -> n            p
//	    / \          / \
//	   m   p   ->   n   q
//	      / \      / \
//	     o   q    m   o
//
// The right child p is returned from n.RotateLeft.
// The ordering invariant m < n < o < p < q is always preserved,
// and so are the Balance values of n and p.
func (n *Node) RotateLeft() *Node {
	return n.Rotate(TurnLeft)
}

// RotateRight rotates a Node to the right and returns
// the Node that now occupies its old position.
// For example, this is the result of calling n.RotateRight:
//
//	  -> n            l
//	    / \          / \
//	   l   o   ->   k   n
//	  / \              / \
//	 k   m            m   o
//
// The left child l is returned from n.RotateRight.
// The ordering invariant k < l < m < n < o is always preserved,
// and so are the Balance values of n and l.
func (n *Node) RotateRight() *Node {
	return n.Rotate(TurnRight)
}

// Rotate turns the subtree rooted at n in direction d. The child on the
// opposite side (the pivot) takes n's place under n's parent, or becomes
// a parentless root; the pivot's inner child moves under n.
//
// The pivot's outer child may be missing only when n is not a root: an
// unbalanced tree root always has one, so its absence there means the
// tree is corrupt.
func (n *Node) Rotate(d Direction) *Node {
	if n == nil {
		Fail(ErrRotate, "cannot rotate nil")
	}

	var pivot, inner, outer *Node
	switch d {
	case TurnLeft:
		pivot = n.Right
		if pivot != nil {
			inner, outer = pivot.Left, pivot.Right
		}
	case TurnRight:
		pivot = n.Left
		if pivot != nil {
			inner, outer = pivot.Right, pivot.Left
		}
	default:
		Fail(ErrRotate, "unknown rotation direction")
	}

	if pivot == nil {
		Fail(ErrRotate, "null pivot child")
	}

	if outer == nil && n.Parent == nil {
		Fail(ErrRotate, "root node cannot rotate in this configuration")
	}

	parent, role := n.Parent, n.Role
	nb, pb := n.Balance, pivot.Balance

	switch d {
	case TurnLeft:
		Link(n, inner, RightChild)
		Link(pivot, n, LeftChild)
		n.Balance = nb + 1 - min(pb, 0)
		pivot.Balance = pb + 1 + max(n.Balance, 0)
	case TurnRight:
		Link(n, inner, LeftChild)
		Link(pivot, n, RightChild)
		n.Balance = nb - 1 - max(pb, 0)
		pivot.Balance = pb - 1 + min(n.Balance, 0)
	}

	if parent == nil {
		pivot.Parent = nil
		pivot.Role = Root
	} else {
		Link(parent, pivot, role)
	}

	return pivot
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
