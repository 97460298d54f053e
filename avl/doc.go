// Package avl provides a self-balancing binary search tree (AVL tree)
// over int64 keys, storing an ordered multiset with duplicates permitted.
//
// What
//
//   - Insert keys one at a time; after every insertion the tree satisfies:
//   - BST ordering: keys strictly smaller than a node live in its left
//     subtree, keys greater than or equal to it live in its right subtree
//     (duplicates route right; a deliberate policy, not a bug).
//   - Height bookkeeping: every node stores 1 + max(child heights),
//     so Height is O(1) and never recomputed by a subtree walk.
//   - Balance: |BalanceFactor(n)| ≤ 1 at every node n, which bounds the
//     tree height by ≈1.44·log2(n+1).
//   - Rebalancing is purely local: the four canonical LL/RR/LR/RL cases are
//     resolved by at most two O(1) rotations per insertion, applied
//     bottom-up as the recursion unwinds.
//   - Walk visits (key, depth) pairs in reversed in-order (right, self,
//     left), so larger keys come first: the natural order for rendering a
//     tree sideways. WriteSideways does exactly that rendering.
//   - Destroy releases every node exactly once through the configured
//     Allocator, child-before-parent.
//
// Why
//
//   - Guaranteed O(log n) insertion and height regardless of key order,
//     where a plain BST (see package bst) degenerates to a list.
//   - The Allocator seam makes node lifetime observable: bounded or
//     counting allocators turn "allocation failed" and "every node was
//     released" into testable behavior.
//
// Concurrency
//
//	None. A tree is owned by a single caller; all operations run to
//	completion on the calling goroutine. Concurrent mutation requires an
//	external lock around the whole tree, since rotations touch non-local
//	structure.
//
// Complexity (n = number of keys)
//
//   - Insert:  O(log n) time, O(log n) stack
//   - Walk:    O(n) time, O(log n) stack
//   - Destroy: O(n) time, O(log n) stack
//   - Height, BalanceFactor, rotations: O(1)
//
// Usage
//
//	var root *avl.Node
//	var err error
//	for _, k := range []int64{3, 10, 2, 1, -100} {
//	    if root, err = avl.Insert(root, k); err != nil {
//	        // ErrAllocFail: root is still the pre-call tree
//	    }
//	}
//	_ = avl.Walk(root, func(key int64, depth int) error {
//	    fmt.Println(key, depth)
//	    return nil
//	})
//
// Errors
//
//   - ErrAllocFail      if the Allocator cannot create a node; the tree
//     below the failed Insert call is left exactly as it was.
//   - ErrOptionViolation if an invalid Option is supplied (e.g. nil
//     Allocator).
//   - ErrNilVisit       if Walk is given a nil callback.
//   - Wrapped user-supplied callback errors from Walk.
package avl
