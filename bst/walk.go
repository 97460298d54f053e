package bst

import (
	"fmt"
	"io"
	"strings"
)

// Ascend visits every value in ascending order (in-order traversal),
// smallest first. Returning an error from fn aborts the walk.
func (t *Tree) Ascend(fn func(value int64) error) error {
	if fn == nil {
		return ErrNilVisit
	}
	return ascend(t.root, fn)
}

func ascend(n *node, fn func(int64) error) error {
	if n == nil {
		return nil
	}
	if err := ascend(n.left, fn); err != nil {
		return err
	}
	if err := fn(n.value); err != nil {
		return fmt.Errorf("bst: visit error at value %d: %w", n.value, err)
	}
	return ascend(n.right, fn)
}

// AscendIterative is Ascend without recursion: an explicit work stack
// drives the in-order traversal, for callers on very small call stacks
// or with degenerate (list-shaped) trees deeper than they can recurse.
func (t *Tree) AscendIterative(fn func(value int64) error) error {
	if fn == nil {
		return ErrNilVisit
	}
	var stack []*node
	current := t.root
	for current != nil || len(stack) > 0 {
		for current != nil {
			stack = append(stack, current)
			current = current.left
		}
		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := fn(current.value); err != nil {
			return fmt.Errorf("bst: visit error at value %d: %w", current.value, err)
		}
		current = current.right
	}
	return nil
}

// WriteSideways renders the tree sideways to w, one value per line,
// four spaces per depth, largest value first: the same presentation
// contract as avl.WriteSideways.
func (t *Tree) WriteSideways(w io.Writer) error {
	return writeSideways(w, t.root, 0)
}

func writeSideways(w io.Writer, n *node, depth int) error {
	if n == nil {
		return nil
	}
	if err := writeSideways(w, n.right, depth+1); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s%d\n", strings.Repeat("    ", depth), n.value); err != nil {
		return err
	}
	return writeSideways(w, n.left, depth+1)
}
