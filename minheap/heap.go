package minheap

import (
	"cmp"
	"errors"
)

// ErrEmptyHeap is returned by Pop and Peek when the heap holds no items.
var ErrEmptyHeap = errors.New("minheap: pop from empty heap")

// Item is a single (priority, payload) entry stored in the heap.
type Item[P cmp.Ordered, V any] struct {
	Priority P
	Value    V
}

// Heap is a binary min-heap keyed on Item.Priority.
// The zero value is an empty heap ready to use.
type Heap[P cmp.Ordered, V any] struct {
	data []Item[P, V]
}

// New returns an empty heap with room for capacity items before it grows.
func New[P cmp.Ordered, V any](capacity int) *Heap[P, V] {
	if capacity < 0 {
		capacity = 0
	}

	return &Heap[P, V]{data: make([]Item[P, V], 0, capacity)}
}

// Len returns the number of items currently stored.
func (h *Heap[P, V]) Len() int { return len(h.data) }

// Push inserts value with the given priority.
func (h *Heap[P, V]) Push(priority P, value V) {
	h.data = append(h.data, Item[P, V]{Priority: priority, Value: value})
	h.siftUp(len(h.data) - 1)
}

// Pop removes and returns the item with the smallest priority.
func (h *Heap[P, V]) Pop() (P, V, error) {
	n := len(h.data)
	if n == 0 {
		var p P
		var v V

		return p, v, ErrEmptyHeap
	}

	h.swap(0, n-1)
	top := h.data[n-1]
	h.data[n-1] = Item[P, V]{} // drop the payload reference
	h.data = h.data[:n-1]
	h.siftDown(0)

	return top.Priority, top.Value, nil
}

// Peek returns the item with the smallest priority without removing it.
func (h *Heap[P, V]) Peek() (P, V, error) {
	if len(h.data) == 0 {
		var p P
		var v V

		return p, v, ErrEmptyHeap
	}

	return h.data[0].Priority, h.data[0].Value, nil
}

// Items returns a copy of the backing array in heap (array) order.
// Only Items()[0] is guaranteed to be the minimum.
func (h *Heap[P, V]) Items() []Item[P, V] {
	out := make([]Item[P, V], len(h.data))
	copy(out, h.data)

	return out
}

// Reset removes all items, keeping the allocated capacity.
func (h *Heap[P, V]) Reset() {
	clear(h.data)
	h.data = h.data[:0]
}

// siftUp moves the item at idx toward the root while its parent is larger.
func (h *Heap[P, V]) siftUp(idx int) {
	for idx > 0 {
		parent := (idx - 1) / 2
		if h.data[parent].Priority <= h.data[idx].Priority {
			return
		}
		h.swap(parent, idx)
		idx = parent
	}
}

// siftDown moves the item at idx toward the leaves, always swapping with
// the smaller child, until neither child is strictly smaller.
func (h *Heap[P, V]) siftDown(idx int) {
	n := len(h.data)
	for {
		left := 2*idx + 1
		right := left + 1
		smallest := idx

		if left < n && h.data[left].Priority < h.data[smallest].Priority {
			smallest = left
		}
		if right < n && h.data[right].Priority < h.data[smallest].Priority {
			smallest = right
		}
		if smallest == idx {
			return
		}

		h.swap(idx, smallest)
		idx = smallest
	}
}

func (h *Heap[P, V]) swap(i, j int) { h.data[i], h.data[j] = h.data[j], h.data[i] }
