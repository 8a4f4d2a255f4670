// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dsakit/dijkstra"
)

// ExampleDijkstra computes distances on a small directed graph and rebuilds one path.
// Complexity: O((V+E) log V).
func ExampleDijkstra() {
	// 1) Build the graph A→B(10), A→C(5), B→C(1), B→D(4), C→D(1), D→E(3).
	g := dijkstra.NewGraph()
	for _, e := range []dijkstra.Edge{
		{From: "A", To: "B", Weight: 10},
		{From: "A", To: "C", Weight: 5},
		{From: "B", To: "C", Weight: 1},
		{From: "B", To: "D", Weight: 4},
		{From: "C", To: "D", Weight: 1},
		{From: "D", To: "E", Weight: 3},
	} {
		_ = g.AddEdge(e.From, e.To, e.Weight)
	}

	// 2) Run from A.
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Print the distance table in node order, then the path to E.
	for _, v := range g.Nodes() {
		fmt.Printf("%s=%d ", v, res.Dist[v])
	}
	fmt.Println()
	p, _ := res.PathTo("E")
	fmt.Println(p, "total", p.Distance)
	// Output:
	// A=0 B=10 C=5 D=6 E=9
	// A -> C -> D -> E total 9
}

// ExampleWithOnStep prints which node is finalized at each step.
func ExampleWithOnStep() {
	g, _ := dijkstra.LoadCSV(strings.NewReader("source,destination,weight\nS,T,4\nS,U,1\nU,T,2\n"))

	_, _ = dijkstra.Dijkstra(g, dijkstra.Source("S"), dijkstra.WithOnStep(func(s dijkstra.Step) error {
		fmt.Printf("step %d: %s at %d, improved %d\n", s.Index, s.Node, s.Distance, len(s.Updated))
		return nil
	}))
	// Output:
	// step 1: S at 0, improved 2
	// step 2: U at 1, improved 1
	// step 3: T at 3, improved 0
}

// ExampleShortestPath shows the self-path short-circuit and an unknown node.
func ExampleShortestPath() {
	g := dijkstra.NewGraph()
	_ = g.AddEdge("A", "B", 2)

	p, _ := dijkstra.ShortestPath(g, "A", "A")
	fmt.Println(p.Nodes, p.Distance)

	_, err := dijkstra.ShortestPath(g, "A", "Z")
	fmt.Println(err)
	// Output:
	// [A] 0
	// dijkstra: unknown node: "Z"
}
