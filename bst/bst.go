package bst

import "errors"

// Sentinel errors for BST operations.
var (
	// ErrNotFound is returned by Pop when the value is absent.
	ErrNotFound = errors.New("bst: value not found")

	// ErrNilVisit is returned when a traversal callback is nil.
	ErrNilVisit = errors.New("bst: visit callback is nil")
)

// node carries a value and two optional children. No height or color
// bookkeeping: this tree does not rebalance.
type node struct {
	value int64
	left  *node
	right *node
}

// Tree is an unbalanced binary search tree. The zero value is ready to
// use; New is provided for symmetry with the rest of the module.
type Tree struct {
	root *node
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// Push inserts value into the tree. Duplicates route left: a value
// equal to an existing node descends into that node's left subtree.
func (t *Tree) Push(value int64) {
	current := &t.root
	for *current != nil {
		if value <= (*current).value {
			current = &(*current).left
		} else {
			current = &(*current).right
		}
	}
	*current = &node{value: value}
}

// Contains reports whether value is present.
func (t *Tree) Contains(value int64) bool {
	n := t.root
	for n != nil {
		if n.value == value {
			return true
		}
		if value < n.value {
			n = n.left
		} else {
			n = n.right
		}
	}
	return false
}

// Pop deletes one node holding value, or returns ErrNotFound. A node
// with two children is replaced by its in-order predecessor (the
// maximum of its left subtree), so ordering is preserved.
func (t *Tree) Pop(value int64) error {
	n, parent, isRight := t.root, (*node)(nil), false
	for n != nil && n.value != value {
		parent = n
		if value < n.value {
			n = n.left
			isRight = false
		} else {
			n = n.right
			isRight = true
		}
	}
	if n == nil {
		return ErrNotFound
	}

	switch {
	case n.left == nil && n.right == nil: // leaf
		t.replaceChild(parent, isRight, nil)
	case n.left == nil || n.right == nil: // one child
		child := n.left
		if child == nil {
			child = n.right
		}
		t.replaceChild(parent, isRight, child)
	default: // two children: splice in the in-order predecessor
		predParent, pred := n, n.left
		for pred.right != nil {
			predParent = pred
			pred = pred.right
		}
		n.value = pred.value
		if predParent.right == pred {
			predParent.right = pred.left
		} else {
			predParent.left = pred.left
		}
	}
	return nil
}

// replaceChild rewires the link that owned the removed node. A nil
// parent means the root link.
func (t *Tree) replaceChild(parent *node, isRight bool, repl *node) {
	switch {
	case parent == nil:
		t.root = repl
	case isRight:
		parent.right = repl
	default:
		parent.left = repl
	}
}

// Clear unlinks every node, child-before-parent, leaving an empty but
// usable tree.
func (t *Tree) Clear() {
	unlink(t.root)
	t.root = nil
}

func unlink(n *node) {
	if n == nil {
		return
	}
	unlink(n.left)
	unlink(n.right)
	n.left, n.right = nil, nil
}
