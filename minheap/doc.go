// Package minheap provides an array-backed binary min-heap of
// (priority, payload) pairs.
//
// What:
//
//   - Push appends an item and sifts it up while its parent has a larger priority.
//   - Pop swaps the root with the last item, truncates, and sifts the new root down
//     toward its smaller child.
//   - There is no decrease-key. Callers that need to lower a priority push a fresh
//     entry and discard the stale one when it surfaces (the "lazy decrease-key" pattern
//     used by package dijkstra).
//
// Ordering only looks at the priority. Payloads with equal priorities come out in an
// unspecified order.
//
// Complexity:
//
//   - Push, Pop: O(log N)
//   - Peek, Len: O(1)
//   - Items:     O(N) (copy)
//
// Errors:
//
//   - ErrEmptyHeap: Pop or Peek on a heap with no items.
//
// The heap is not safe for concurrent use.
package minheap
