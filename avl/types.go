// Package avl defines the node entity, allocator seam, tunable options
// and error definitions for the AVL tree.
package avl

import (
	"errors"
	"fmt"
)

// Sentinel errors for AVL operations.
var (
	// ErrAllocFail is returned when the Allocator cannot create a node.
	// The subtree position where the failure occurred is left exactly as
	// it was before the failed Insert call.
	ErrAllocFail = errors.New("avl: node allocation failed")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("avl: invalid option supplied")

	// ErrNilVisit is returned when Walk is given a nil callback.
	ErrNilVisit = errors.New("avl: visit callback is nil")
)

// Node is the sole entity of the tree: a key, a stored height, and
// exclusive ownership of two optional children. A nil *Node denotes the
// empty tree; no wrapper type exists beyond the root handle.
//
// Fields are unexported so that rotations remain the only way links and
// heights change; read access goes through the accessors below.
type Node struct {
	key    int64
	height int
	left   *Node
	right  *Node
}

// NewLeaf returns a height-1 leaf holding key, with no children. It is
// the building block Allocator implementations hand back from NewNode;
// a leaf only becomes part of a tree through Insert.
func NewLeaf(key int64) *Node {
	return &Node{key: key, height: 1}
}

// Key returns the node's key.
func (n *Node) Key() int64 { return n.key }

// Left returns the left child, or nil.
func (n *Node) Left() *Node {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child, or nil.
func (n *Node) Right() *Node {
	if n == nil {
		return nil
	}
	return n.right
}

// Allocator creates and releases nodes. The default allocator never
// fails; a bounded or counting implementation makes resource exhaustion
// and destruction completeness observable in tests.
type Allocator interface {
	// NewNode returns a fresh height-1 leaf holding key, or an error
	// under resource exhaustion. On error no existing structure may have
	// been mutated.
	NewNode(key int64) (*Node, error)

	// Release reclaims a node whose children have already been released.
	// Called exactly once per node during Destroy.
	Release(n *Node)
}

// heapAlloc is the default Allocator: plain Go allocation, no failure
// mode, Release only severs links so the collector can reclaim subtrees
// independently.
type heapAlloc struct{}

func (heapAlloc) NewNode(key int64) (*Node, error) {
	return NewLeaf(key), nil
}

func (heapAlloc) Release(n *Node) {
	n.left, n.right = nil, nil
}

// Option configures Insert and Destroy via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the operation is invoked.
type Option func(*Options)

// Options holds parameters customizing tree operations.
type Options struct {
	// Alloc creates and releases nodes. Defaults to plain heap
	// allocation, which cannot fail.
	Alloc Allocator

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the never-failing heap allocator.
func DefaultOptions() Options {
	return Options{Alloc: heapAlloc{}}
}

// WithAllocator installs a custom Allocator for node creation and
// release. Passing nil is an option violation.
func WithAllocator(a Allocator) Option {
	return func(o *Options) {
		if a == nil {
			o.err = fmt.Errorf("%w: allocator cannot be nil", ErrOptionViolation)
			return
		}
		o.Alloc = a
	}
}

// applyOptions folds opts over DefaultOptions and reports the first
// violation recorded.
func applyOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	return o, nil
}
