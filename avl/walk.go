package avl

import (
	"fmt"
	"io"
	"strings"
)

// VisitFunc receives each key with its depth from the root (root = 0).
// Returning an error aborts the walk and propagates wrapped.
type VisitFunc func(key int64, depth int) error

// Walk visits every node in reversed in-order (right subtree, self,
// left subtree), so larger keys come first. Single pass, lazy (visit is
// called as nodes are reached), not restartable mid-walk. A nil root is
// an empty walk.
func Walk(root *Node, visit VisitFunc) error {
	if visit == nil {
		return ErrNilVisit
	}
	return walk(root, 0, visit)
}

func walk(n *Node, depth int, visit VisitFunc) error {
	if n == nil {
		return nil
	}
	if err := walk(n.right, depth+1, visit); err != nil {
		return err
	}
	if err := visit(n.key, depth); err != nil {
		return fmt.Errorf("avl: visit error at key %d: %w", n.key, err)
	}
	return walk(n.left, depth+1, visit)
}

// indent is the per-depth indentation used by WriteSideways.
const indent = "    "

// WriteSideways renders the tree sideways to w: one key per line,
// indented by four spaces per depth, largest key first. Rotate the
// output a quarter turn clockwise to see the usual tree diagram.
func WriteSideways(w io.Writer, root *Node) error {
	return Walk(root, func(key int64, depth int) error {
		_, err := fmt.Fprintf(w, "%s%d\n", strings.Repeat(indent, depth), key)
		return err
	})
}
