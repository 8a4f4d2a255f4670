package bst

import (
	"cmp"
)

// New returns an empty tree over an ordered key type.
// Comparisons on such a tree never fail.
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{compare: orderedCompare[K]}
}

// NewWithComparator returns an empty tree ordered by fn.
// fn must define a strict total order over the keys it accepts.
func NewWithComparator[K any](fn CompareFunc[K]) *Tree[K] {
	if fn == nil {
		panic("bst: nil comparator")
	}

	return &Tree[K]{compare: fn}
}

// NewDynamic returns an empty tree of dynamically typed keys ordered by CompareValues.
// Inserting a key whose type cannot be compared with the stored keys fails with ErrTypeMismatch.
func NewDynamic() *Tree[any] {
	return &Tree[any]{compare: CompareValues}
}

// Size returns the number of keys stored.
func (t *Tree[K]) Size() int { return t.size }

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool { return t.root == nil }

// OperationCount returns how many Insert, Search, Delete and Clear calls
// have been made on the tree. It never decreases.
func (t *Tree[K]) OperationCount() uint64 { return t.ops }

// Root returns the root node, or nil for an empty tree.
func (t *Tree[K]) Root() *Node[K] { return t.root }

// Insert adds key to the tree.
// It returns true if the key was new, false if an equal key is already present.
// On error the tree is left unchanged.
//
// Complexity: O(h).
func (t *Tree[K]) Insert(key K) (bool, error) {
	t.ops++

	if t.root == nil {
		t.root = &Node[K]{Key: key}
		t.size++

		return true, nil
	}

	// Walk down to the attach point; nothing is linked until the walk succeeds.
	cur := t.root
	for {
		c, err := t.compare(key, cur.Key)
		if err != nil {
			return false, err
		}

		switch {
		case c == 0:
			return false, nil
		case c < 0:
			if cur.left == nil {
				cur.left = &Node[K]{Key: key}
				t.size++

				return true, nil
			}
			cur = cur.left
		default:
			if cur.right == nil {
				cur.right = &Node[K]{Key: key}
				t.size++

				return true, nil
			}
			cur = cur.right
		}
	}
}

// Search reports whether a key equal to key is stored.
//
// Complexity: O(h).
func (t *Tree[K]) Search(key K) (bool, error) {
	t.ops++

	n, err := t.find(key)
	if err != nil {
		return false, err
	}

	return n != nil, nil
}

// find returns the node holding key, or nil.
func (t *Tree[K]) find(key K) (*Node[K], error) {
	cur := t.root
	for cur != nil {
		c, err := t.compare(key, cur.Key)
		if err != nil {
			return nil, err
		}
		switch {
		case c == 0:
			return cur, nil
		case c < 0:
			cur = cur.left
		default:
			cur = cur.right
		}
	}

	return nil, nil
}

// Delete removes key from the tree and reports whether it was present.
//
// Cases:
//  1. Leaf: the node is unlinked.
//  2. One child: the child takes the node's place in its parent.
//  3. Two children: the node takes its in-order successor's key and the
//     successor (the minimum of the right subtree) is unlinked instead.
//
// Size drops by exactly one per successful call. On error the tree is unchanged.
//
// Complexity: O(h).
func (t *Tree[K]) Delete(key K) (bool, error) {
	t.ops++

	root, removed, err := t.remove(t.root, key)
	if err != nil {
		return false, err
	}
	t.root = root
	if removed {
		t.size--
	}

	return removed, nil
}

// remove deletes key from the subtree rooted at n and returns the new subtree root.
// Links are only rewritten while unwinding, so an error on the way down
// leaves the subtree untouched.
func (t *Tree[K]) remove(n *Node[K], key K) (*Node[K], bool, error) {
	if n == nil {
		return nil, false, nil
	}

	c, err := t.compare(key, n.Key)
	if err != nil {
		return n, false, err
	}

	if c < 0 {
		left, removed, err := t.remove(n.left, key)
		if err != nil {
			return n, false, err
		}
		n.left = left

		return n, removed, nil
	}
	if c > 0 {
		right, removed, err := t.remove(n.right, key)
		if err != nil {
			return n, false, err
		}
		n.right = right

		return n, removed, nil
	}

	// n holds key.
	switch {
	case n.left == nil:
		return n.right, true, nil
	case n.right == nil:
		return n.left, true, nil
	}

	succ := minNode(n.right)
	n.Key = succ.Key
	n.right = removeMin(n.right)

	return n, true, nil
}

// removeMin unlinks the leftmost node of the subtree rooted at n
// and returns the new subtree root.
func removeMin[K any](n *Node[K]) *Node[K] {
	if n.left == nil {
		return n.right
	}
	n.left = removeMin(n.left)

	return n
}

// minNode returns the leftmost node of a non-nil subtree.
func minNode[K any](n *Node[K]) *Node[K] {
	for n.left != nil {
		n = n.left
	}

	return n
}

// maxNode returns the rightmost node of a non-nil subtree.
func maxNode[K any](n *Node[K]) *Node[K] {
	for n.right != nil {
		n = n.right
	}

	return n
}

// Min returns the smallest key, or false if the tree is empty.
func (t *Tree[K]) Min() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}

	return minNode(t.root).Key, true
}

// Max returns the largest key, or false if the tree is empty.
func (t *Tree[K]) Max() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}

	return maxNode(t.root).Key, true
}

// Clear drops every node. The operation counter keeps counting.
func (t *Tree[K]) Clear() {
	t.ops++
	t.root = nil
	t.size = 0
}
