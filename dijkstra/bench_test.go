package dijkstra_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/dsakit/dijkstra"
)

// BenchmarkDijkstra_Random1000 runs Dijkstra on a random directed graph with
// 1,000 nodes and ~10,000 edges. The graph is built once, outside the timer.
//
// Complexity: O((V + E) log V) per run.
func BenchmarkDijkstra_Random1000(b *testing.B) {
	const V, degree = 1000, 10
	rng := rand.New(rand.NewSource(1))
	g := dijkstra.NewGraph()
	for u := 0; u < V; u++ {
		for k := 0; k < degree; k++ {
			v := rng.Intn(V)
			_ = g.AddEdge(fmt.Sprintf("N%d", u), fmt.Sprintf("N%d", v), int64(rng.Intn(100)))
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Dijkstra(g, dijkstra.Source("N0")); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDijkstra_Chain10000 runs on a linear chain N0 → N1 → … → N9999,
// the worst case for path length.
func BenchmarkDijkstra_Chain10000(b *testing.B) {
	g := dijkstra.NewGraph()
	for i := 0; i < 9999; i++ {
		_ = g.AddEdge(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", i+1), 1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.ShortestPath(g, "N0", "N9999"); err != nil {
			b.Fatal(err)
		}
	}
}
