// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Directed weighted adjacency map consumed by Dijkstra.
// Policy:
//   - Every endpoint of every edge is a node key, even with no outgoing edges.
//   - Weights are non-negative; AddEdge rejects anything else.
//   - Iteration order exposed to callers is always sorted (deterministic runs).

package dijkstra

import (
	"fmt"
	"sort"
)

// Edge is one directed, weighted connection From→To.
type Edge struct {
	From   string
	To     string
	Weight int64
}

// Graph is a directed graph stored as node → (neighbor → weight).
//
// A repeated AddEdge between the same pair overwrites the earlier weight,
// so there is at most one edge per ordered pair.
type Graph struct {
	adj   map[string]map[string]int64
	edges int
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{adj: make(map[string]map[string]int64)}
}

// FromMap builds a graph from a node → (neighbor → weight) mapping.
// Neighbors that are not keys of m are registered as nodes with no outgoing edges.
func FromMap(m map[string]map[string]int64) (*Graph, error) {
	g := NewGraph()
	// Sorted insertion keeps error reporting deterministic.
	from := make([]string, 0, len(m))
	for u := range m {
		from = append(from, u)
	}
	sort.Strings(from)

	for _, u := range from {
		if err := g.AddNode(u); err != nil {
			return nil, err
		}
		to := make([]string, 0, len(m[u]))
		for v := range m[u] {
			to = append(to, v)
		}
		sort.Strings(to)
		for _, v := range to {
			if err := g.AddEdge(u, v, m[u][v]); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// AddNode registers id with no outgoing edges. Adding an existing node is a no-op.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.ensureNode(id)

	return nil
}

// ensureNode adds a non-empty id if it is missing.
func (g *Graph) ensureNode(id string) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]int64)
	}
}

// AddEdge adds the directed edge from→to with weight w, registering both endpoints.
// Self-loops are allowed; they never improve a distance.
func (g *Graph) AddEdge(from, to string, w int64) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if w < 0 {
		return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, from, to, w)
	}

	g.ensureNode(from)
	g.ensureNode(to)
	if _, exists := g.adj[from][to]; !exists {
		g.edges++
	}
	g.adj[from][to] = w

	return nil
}

// HasNode reports whether id is a node of g.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.adj[id]

	return ok
}

// Nodes returns all node IDs in ascending order.
func (g *Graph) Nodes() []string {
	out := make([]string, 0, len(g.adj))
	for id := range g.adj {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Neighbors returns the outgoing edges of id sorted by target.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	out := make([]Edge, 0, len(nbrs))
	for v, w := range nbrs {
		out = append(out, Edge{From: id, To: v, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// Weight returns the weight of from→to and whether that edge exists.
func (g *Graph) Weight(from, to string) (int64, bool) {
	w, ok := g.adj[from][to]

	return w, ok
}

// Edges returns every edge, sorted by (From, To).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for _, u := range g.Nodes() {
		nbrs, _ := g.Neighbors(u)
		out = append(out, nbrs...)
	}

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.adj) }

// EdgeCount returns the number of distinct directed edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Stats summarizes the shape of a graph.
type Stats struct {
	Nodes int
	Edges int

	// AvgOutDegree is Edges / Nodes, 0 for an empty graph.
	AvgOutDegree float64

	// Density is Edges / (Nodes·(Nodes−1)), 0 with fewer than two nodes.
	Density float64

	// OutDegree maps every node to its number of outgoing edges.
	OutDegree map[string]int
}

// Stats returns node and edge counts, average out-degree, density and per-node out-degree.
func (g *Graph) Stats() Stats {
	st := Stats{
		Nodes:     len(g.adj),
		Edges:     g.edges,
		OutDegree: make(map[string]int, len(g.adj)),
	}
	for id, nbrs := range g.adj {
		st.OutDegree[id] = len(nbrs)
	}
	if st.Nodes > 0 {
		st.AvgOutDegree = float64(st.Edges) / float64(st.Nodes)
	}
	if st.Nodes > 1 {
		st.Density = float64(st.Edges) / float64(st.Nodes*(st.Nodes-1))
	}

	return st
}
