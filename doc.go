// Package dsakit is a small playground of three textbook algorithms, each in its
// own package and each driven by the dsakit command.
//
//	bst/         — unbalanced binary search tree with traversals, range queries,
//	               statistics and an ASCII diagram; generic or dynamically typed keys
//	minheap/     — array-backed binary min-heap of (priority, value) pairs
//	dijkstra/    — directed weighted graph, CSV edge-list loader and Dijkstra's
//	               algorithm with a per-step tracing hook and path reconstruction
//	coinchange/  — bottom-up minimum-coin change with solution reconstruction
//
// The core packages are pure computation: no logging, no globals, no goroutines.
// Configuration (viper), logging (zerolog) and the command tree (cobra) live under
// internal/ and cmd/dsakit.
//
// Quick start:
//
//	t := bst.New[int]()
//	for _, k := range []int{50, 30, 70} {
//		t.Insert(k)
//	}
//	keys := t.InOrder() // [30 50 70]
//
//	g := dijkstra.NewGraph()
//	_ = g.AddEdge("A", "B", 4)
//	p, _ := dijkstra.ShortestPath(g, "A", "B") // A -> B, distance 4
//
//	n, _ := coinchange.MinCoins([]int{1, 2, 5}, 11) // 3
package dsakit
