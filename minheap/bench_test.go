package minheap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dsakit/minheap"
)

// BenchmarkHeap_PushPop10000 pushes 10,000 random priorities and drains the heap.
// Complexity: O(N log N) per iteration.
func BenchmarkHeap_PushPop10000(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	prios := make([]int, 10000)
	for i := range prios {
		prios[i] = rng.Int()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := minheap.New[int, int](len(prios))
		for j, p := range prios {
			h.Push(p, j)
		}
		for h.Len() > 0 {
			_, _, _ = h.Pop()
		}
	}
}
