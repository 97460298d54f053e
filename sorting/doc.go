// Package sorting provides in-place array sorts built on the module's
// tree primitives plus a classic top-down merge sort, all over []int64.
//
// What
//
//   - MergeSort          — top-down merge sort with a single shared
//     buffer. O(n log n) time, O(n) extra memory, not stable (ties are
//     taken from the right run first).
//   - TreeSort           — build a bst.Tree, then write values back in
//     ascending order via recursive in-order traversal.
//   - TreeSortIterative  — the same, but the traversal runs on an
//     explicit work stack instead of the call stack.
//
// Why
//
//	Tree sort is the textbook bridge between search trees and sorting:
//	insertion cost dominates, O(n log n) on random input but O(n²) when
//	the input is already ordered, since package bst does not rebalance.
//	MergeSort is the predictable O(n log n) baseline to compare against.
//
// All three are no-ops for fewer than two elements.
package sorting

// TODO: back TreeSort with the avl package once it grows a bulk-load
// path, removing the O(n²) sorted-input worst case.
