// Package bst provides a plain, unbalanced binary search tree over
// int64 values, with insertion, deletion by value, membership tests,
// and in-order traversal (recursive and stack-based).
//
// Unlike package avl, no balancing is performed: adversarial insertion
// order degenerates the tree to a list and all guarantees drop from
// O(log n) to O(n). In exchange the tree supports deletion, which the
// AVL core deliberately does not.
//
// Duplicates are permitted and route LEFT (value <= node goes left),
// the opposite tie rule from package avl. Both rules are deliberate and
// pinned by tests; they determine the final shape for duplicate-heavy
// input.
//
// Errors
//
//   - ErrNotFound if Pop is asked to delete a value not in the tree.
//   - ErrNilVisit if a traversal is given a nil callback.
//   - Wrapped user-supplied callback errors from Ascend and friends.
package bst
