package avl

import "fmt"

// Height returns 0 for an absent node, else the stored height field.
// O(1) by construction: heights are maintained incrementally and never
// recomputed by a subtree walk.
func Height(n *Node) int {
	if n == nil {
		return 0
	}
	return n.height
}

// BalanceFactor returns height(left) − height(right), or 0 for an
// absent node. Positive means left-heavy, negative right-heavy.
func BalanceFactor(n *Node) int {
	if n == nil {
		return 0
	}
	return Height(n.left) - Height(n.right)
}

// rotateRight performs the standard AVL right rotation around y.
// Requires y.left non-nil (guaranteed by the insertion case analysis).
// Heights are recomputed child-before-parent: y first, then x.
//
//	    y             x
//	   / \           / \
//	  x  t3   →    t1   y
//	 / \               / \
//	t1 t2            t2  t3
func rotateRight(y *Node) *Node {
	x := y.left
	t2 := x.right
	x.right = y
	y.left = t2
	y.height = 1 + max(Height(y.left), Height(y.right))
	x.height = 1 + max(Height(x.left), Height(x.right))
	return x
}

// rotateLeft is the mirror image of rotateRight, around x.
// Requires x.right non-nil.
func rotateLeft(x *Node) *Node {
	y := x.right
	t2 := y.left
	y.left = x
	x.right = t2
	x.height = 1 + max(Height(x.left), Height(x.right))
	y.height = 1 + max(Height(y.left), Height(y.right))
	return y
}

// Insert adds key to the tree rooted at root and returns the new root.
// A nil root denotes the empty tree. Duplicates are permitted and route
// right. On ErrAllocFail no partial rotation is left applied anywhere;
// the caller's pre-call root is still the valid, unchanged tree.
//
// The returned subtree satisfies BST ordering, correct stored heights,
// and |BalanceFactor| ≤ 1 at every node.
func Insert(root *Node, key int64, opts ...Option) (*Node, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return insert(root, key, o.Alloc)
}

// insert is the recursive core: descend, attach a leaf, then rebalance
// post-order as the recursion unwinds. At most one node is out of
// balance at a time, by at most 2, so a single LL/RR/LR/RL resolution
// per frame restores the invariant.
func insert(n *Node, key int64, alloc Allocator) (*Node, error) {
	if n == nil {
		leaf, err := alloc.NewNode(key)
		if err != nil {
			return nil, fmt.Errorf("%w: creating node for key %d: %v", ErrAllocFail, key, err)
		}
		return leaf, nil
	}

	// Strictly-less goes left, anything else (>=) goes right.
	if key < n.key {
		child, err := insert(n.left, key, alloc)
		if err != nil {
			return nil, err
		}
		n.left = child
	} else {
		child, err := insert(n.right, key, alloc)
		if err != nil {
			return nil, err
		}
		n.right = child
	}

	// Children are already correct here (post-order), so one max suffices.
	n.height = 1 + max(Height(n.left), Height(n.right))

	// Case analysis keyed on the inserted key relative to the heavy
	// child, not merely the sign of the imbalance. The four cases are
	// mutually exclusive and exhaustive for |balance| == 2.
	switch balance := BalanceFactor(n); {
	case balance > 1 && key < n.left.key: // Left-Left
		return rotateRight(n), nil
	case balance < -1 && key > n.right.key: // Right-Right
		return rotateLeft(n), nil
	case balance > 1: // Left-Right: key >= n.left.key
		n.left = rotateLeft(n.left)
		return rotateRight(n), nil
	case balance < -1: // Right-Left: key <= n.right.key
		n.right = rotateRight(n.right)
		return rotateLeft(n), nil
	}

	return n, nil
}

// Destroy releases every node reachable from root exactly once, in
// child-before-parent order, through the configured Allocator. Safe to
// call on an empty (nil) tree. The root handle must not be reused
// afterwards.
func Destroy(root *Node, opts ...Option) error {
	o, err := applyOptions(opts)
	if err != nil {
		return err
	}
	destroy(root, o.Alloc)
	return nil
}

func destroy(n *Node, alloc Allocator) {
	if n == nil {
		return
	}
	destroy(n.left, alloc)
	destroy(n.right, alloc)
	alloc.Release(n)
}
