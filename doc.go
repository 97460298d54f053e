// Package godsa is a small collection of classic data structures and
// sorting algorithms over int64 values — search trees first.
//
// What's inside?
//
//	A pure-Go library with no hidden dependencies, organized as one
//	package per algorithm family:
//		• avl/     — self-balancing (AVL) search tree: O(log n) insertion,
//		  height bookkeeping, the four canonical rotations, sideways
//		  rendering, and an allocator seam for observable node lifetime
//		• bst/     — plain unbalanced search tree with deletion and both
//		  recursive and stack-driven in-order traversal
//		• sorting/ — merge sort and tree sort (recursive & iterative)
//
// Why godsa?
//
//   - Minimal API, explicit errors, no global state — every tree is an
//     independent value passed explicitly
//   - The interesting invariants (BST ordering, height correctness,
//     balance ≤ 1) are pinned by property tests, not just examples
//   - Pure Go, single-threaded by design: you own the tree, you lock it
//
// Quick taste — balanced vs. not:
//
//	    2                1
//	   / \                \
//	  1   3                2        (same keys, no balancing)
//	                        \
//	                         3
//
// Start with package avl; its doc comment walks through the invariants
// and the rebalancing case analysis.
package godsa
