// Package bst implements a plain (unbalanced) binary search tree over
// totally ordered keys, with traversal, range queries, statistics and an
// ASCII rendering.
//
// 🌳 What:
//
//   - Insert, Search, Delete: the textbook recursive algorithms. Deleting a node
//     with two children copies its in-order successor (minimum of the right
//     subtree) into place and removes the successor from the right subtree.
//   - Traversals: in-order (ascending), pre-order (root, left, right) and
//     post-order (left, right, root), each returned as a materialized slice.
//   - FindRange: all keys in [low, high], pruning subtrees that cannot qualify.
//   - Height, IsBalanced (AVL-style check, reported and never enforced),
//     Min, Max and a Statistics snapshot.
//   - Visualize: an ASCII branch diagram derived only from the tree shape.
//
// Keys:
//
//	New[K cmp.Ordered]()      — any ordered Go type; comparisons never fail.
//	NewWithComparator(fn)     — custom CompareFunc.
//	NewDynamic()              — a Tree[any] for parsed user input. Integers and floats
//	                            compare numerically, strings compare with strings, and any
//	                            other pairing reports ErrTypeMismatch.
//
// Invariants:
//
//   - Every key in a node's left subtree is strictly less than the node's key, every
//     key in its right subtree strictly greater. Duplicates are never stored.
//   - Size equals the number of live nodes. It changes by exactly one on each
//     successful Insert or Delete.
//   - OperationCount increases by one on every Insert, Search, Delete and Clear call.
//
// Errors:
//
//   - ErrTypeMismatch: the comparator could not order two keys. The operation is a no-op.
//   - ErrUnknownOrder: Traverse was given an order it does not know.
//
// Complexity: O(h) for Insert/Search/Delete where h is the height (O(n) when the
// tree degenerates into a list), O(n) for traversals, Height and IsBalanced.
//
// A Tree is not safe for concurrent use.
package bst
