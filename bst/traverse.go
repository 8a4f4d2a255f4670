package bst

import (
	"fmt"
)

// Traverse returns every key in the requested order as a new slice.
// Repeated calls without mutation return identical slices.
//
// Complexity: O(n) time, O(n) extra space for the result plus O(h) stack.
func (t *Tree[K]) Traverse(order Order) ([]K, error) {
	out := make([]K, 0, t.size)
	switch order {
	case InOrder:
		inOrder(t.root, &out)
	case PreOrder:
		preOrder(t.root, &out)
	case PostOrder:
		postOrder(t.root, &out)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownOrder, int(order))
	}

	return out, nil
}

// InOrder returns the keys in ascending order.
func (t *Tree[K]) InOrder() []K {
	out := make([]K, 0, t.size)
	inOrder(t.root, &out)

	return out
}

// PreOrder returns the keys in root, left, right order.
func (t *Tree[K]) PreOrder() []K {
	out := make([]K, 0, t.size)
	preOrder(t.root, &out)

	return out
}

// PostOrder returns the keys in left, right, root order.
func (t *Tree[K]) PostOrder() []K {
	out := make([]K, 0, t.size)
	postOrder(t.root, &out)

	return out
}

func inOrder[K any](n *Node[K], out *[]K) {
	if n == nil {
		return
	}
	inOrder(n.left, out)
	*out = append(*out, n.Key)
	inOrder(n.right, out)
}

func preOrder[K any](n *Node[K], out *[]K) {
	if n == nil {
		return
	}
	*out = append(*out, n.Key)
	preOrder(n.left, out)
	preOrder(n.right, out)
}

func postOrder[K any](n *Node[K], out *[]K) {
	if n == nil {
		return
	}
	postOrder(n.left, out)
	postOrder(n.right, out)
	*out = append(*out, n.Key)
}

// FindRange returns, in ascending order, every key k with low <= k <= high.
// Subtrees that cannot hold a qualifying key are never visited: the walk only
// descends left when low < key and only descends right when key < high.
// An inverted range (low > high) yields an empty slice.
//
// Complexity: O(h + m) where m is the number of keys reported.
func (t *Tree[K]) FindRange(low, high K) ([]K, error) {
	c, err := t.compare(low, high)
	if err != nil {
		return nil, err
	}
	out := make([]K, 0)
	if c > 0 {
		return out, nil
	}
	if err = t.collectRange(t.root, low, high, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (t *Tree[K]) collectRange(n *Node[K], low, high K, out *[]K) error {
	if n == nil {
		return nil
	}

	lowVsKey, err := t.compare(low, n.Key)
	if err != nil {
		return err
	}
	keyVsHigh, err := t.compare(n.Key, high)
	if err != nil {
		return err
	}

	if lowVsKey < 0 {
		if err = t.collectRange(n.left, low, high, out); err != nil {
			return err
		}
	}
	if lowVsKey <= 0 && keyVsHigh <= 0 {
		*out = append(*out, n.Key)
	}
	if keyVsHigh < 0 {
		if err = t.collectRange(n.right, low, high, out); err != nil {
			return err
		}
	}

	return nil
}

// Height returns the number of nodes on the longest root-to-leaf path (0 when empty).
func (t *Tree[K]) Height() int { return height(t.root) }

func height[K any](n *Node[K]) int {
	if n == nil {
		return 0
	}

	return 1 + max(height(n.left), height(n.right))
}

// IsBalanced reports whether, at every node, the heights of the two subtrees
// differ by at most one. The tree never rebalances itself; this only reports.
//
// Complexity: O(n), each node is visited once.
func (t *Tree[K]) IsBalanced() bool { return balancedHeight(t.root) >= 0 }

// balancedHeight returns the subtree height, or -1 as soon as an unbalanced node is found.
func balancedHeight[K any](n *Node[K]) int {
	if n == nil {
		return 0
	}
	lh := balancedHeight(n.left)
	if lh < 0 {
		return -1
	}
	rh := balancedHeight(n.right)
	if rh < 0 {
		return -1
	}
	if lh-rh > 1 || rh-lh > 1 {
		return -1
	}

	return 1 + max(lh, rh)
}

// Statistics returns a snapshot of size, height, operation count, balance and extremes.
func (t *Tree[K]) Statistics() Stats[K] {
	s := Stats[K]{
		Size:           t.size,
		Height:         t.Height(),
		OperationCount: t.ops,
		IsBalanced:     t.IsBalanced(),
	}
	if t.root != nil {
		s.Min = minNode(t.root).Key
		s.Max = maxNode(t.root).Key
		s.HasMinMax = true
	}

	return s
}
