package bst

import (
	"errors"
)

// Sentinel errors returned by the tree.
var (
	// ErrTypeMismatch indicates that two keys could not be compared,
	// e.g. a string and an integer in the same dynamic tree.
	ErrTypeMismatch = errors.New("bst: incomparable key types")

	// ErrUnknownOrder indicates an unsupported traversal order.
	ErrUnknownOrder = errors.New("bst: unknown traversal order")
)

// Order selects a depth-first traversal order.
type Order int

const (
	// InOrder visits left subtree, node, right subtree (ascending keys).
	InOrder Order = iota

	// PreOrder visits node, left subtree, right subtree.
	PreOrder

	// PostOrder visits left subtree, right subtree, node.
	PostOrder
)

// String returns the lower-case name of the order.
func (o Order) String() string {
	switch o {
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	default:
		return "unknown"
	}
}

// CompareFunc orders two keys. It returns a negative number when a < b,
// zero when a == b and a positive number when a > b. A non-nil error means
// the keys cannot be ordered and must wrap ErrTypeMismatch.
type CompareFunc[K any] func(a, b K) (int, error)

// Node is a single tree node. Each child is owned exclusively by its parent.
type Node[K any] struct {
	Key   K
	left  *Node[K]
	right *Node[K]
}

// Left returns the left child, or nil.
func (n *Node[K]) Left() *Node[K] { return n.left }

// Right returns the right child, or nil.
func (n *Node[K]) Right() *Node[K] { return n.right }

// Tree is a binary search tree. Use New, NewWithComparator or NewDynamic to create one.
type Tree[K any] struct {
	root    *Node[K]
	size    int
	ops     uint64
	compare CompareFunc[K]
}

// Stats is a point-in-time summary of a tree.
// Min and Max are only meaningful when HasMinMax is true (the tree is non-empty).
type Stats[K any] struct {
	Size           int
	Height         int
	OperationCount uint64
	IsBalanced     bool
	Min            K
	Max            K
	HasMinMax      bool
}
