// Package dijkstra provides Dijkstra's shortest-path algorithm over a directed
// graph with non-negative integer edge weights, driven by the hand-rolled
// binary heap from package minheap.
//
// Overview:
//
//   - Graph stores node → (neighbor → weight). Every edge endpoint is a node, even
//     when it has no outgoing edges. LoadCSV builds a Graph from a
//     "source,destination,weight" edge list.
//   - Dijkstra computes the distance from a source to every node, together with a
//     predecessor map and the order in which nodes were finalized.
//   - ReconstructPath, Result.PathTo and ShortestPath turn predecessors into paths.
//
// Node lifecycle during a run:
//
//	Unvisited ──first relaxation──▶ Frontier (finite distance, in heap)
//	Frontier  ──popped, not stale──▶ Visited (distance final)
//
// A popped entry is stale when its priority exceeds the recorded distance, or when
// the node is already Visited. Stale entries are discarded; there is no decrease-key.
//
// Key features:
//
//   - WithOnStep: observe every finalized node, the relaxations it caused and the heap
//     contents (useful for step-by-step teaching output).
//   - WithMaxDistance: stop once the closest frontier node is farther than a cap.
//   - WithInfEdgeThreshold: treat edges with weight ≥ threshold as impassable.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), up to one heap entry per successful relaxation.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource, ErrNilGraph: invalid call.
//   - ErrUnknownNode: a source, target or queried node is absent from the graph.
//   - ErrNegativeWeight, ErrEmptyNodeID: rejected while building the graph.
//   - ErrNoPath: the target is unreachable.
//   - ErrBadCSV: malformed edge list.
//
// Correctness requires non-negative weights; Graph enforces it on AddEdge.
//
// Thread safety:
//
//   - Neither Graph nor Dijkstra is safe for concurrent mutation. Read-only
//     concurrent runs on an unchanging Graph are fine.
package dijkstra
