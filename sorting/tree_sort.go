package sorting

import "github.com/hnthap/godsa/bst"

// TreeSort sorts arr in place by loading it into an unbalanced binary
// search tree and reading it back in order. O(n log n) on random
// input, O(n²) on already-sorted input (see the package TODO).
func TreeSort(arr []int64) {
	treeSort(arr, func(t *bst.Tree, fn func(int64) error) error {
		return t.Ascend(fn)
	})
}

// TreeSortIterative is TreeSort with the write-back traversal driven
// by an explicit stack instead of recursion, so a degenerate
// list-shaped tree cannot exhaust the call stack.
func TreeSortIterative(arr []int64) {
	treeSort(arr, func(t *bst.Tree, fn func(int64) error) error {
		return t.AscendIterative(fn)
	})
}

func treeSort(arr []int64, ascend func(*bst.Tree, func(int64) error) error) {
	if len(arr) < 2 {
		return
	}
	tree := bst.New()
	for _, v := range arr {
		tree.Push(v)
	}
	i := 0
	// The callback never fails, so neither can the traversal.
	_ = ascend(tree, func(v int64) error {
		arr[i] = v
		i++
		return nil
	})
	tree.Clear()
}
