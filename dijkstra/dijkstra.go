// Package dijkstra implements Dijkstra's shortest-path algorithm on directed weighted graphs.
//
// Notes on implementation choices:
//
//   - The priority queue is minheap.Heap without decrease-key. An improved distance pushes
//     a fresh entry; entries whose priority exceeds the recorded distance are stale and are
//     dropped when popped, as are entries for nodes that are already finalized.
//   - Neighbors are relaxed in sorted order, so ties resolve the same way on every run.
//   - Weights are validated when edges are added (Graph.AddEdge), not re-scanned here.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/dsakit/minheap"
)

// Dijkstra computes shortest distances from the source node (Options.Source)
// to every node of g.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrUnknownNode).
//
// Every node reachable from Source (within MaxDistance) is finalized exactly once;
// unreachable nodes keep Infinity and an empty predecessor.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap may hold one entry per relaxation.
func Dijkstra(g *Graph, opts ...Option) (*Result, error) {
	// 1) Build Options.
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, cfg.Source)
	}

	// 3) Prepare state and run.
	V := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
		order:   make([]string, 0, V),
		pq:      minheap.New[int64, string](V),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{
		Source: cfg.Source,
		Dist:   r.dist,
		Prev:   r.prev,
		Order:  r.order,
	}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *Graph                       // read-only input
	options Options                      // validated configuration
	dist    map[string]int64             // node → best known distance
	prev    map[string]string            // node → predecessor ("" = none)
	visited map[string]bool              // finalized nodes
	order   []string                     // finalization order
	pq      *minheap.Heap[int64, string] // (tentative distance, node)
	steps   int
}

// init sets every distance to Infinity, the source to 0, and seeds the heap with (0, source).
func (r *runner) init() {
	for _, v := range r.g.Nodes() {
		r.dist[v] = Infinity
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0
	r.pq.Push(0, r.options.Source)
}

// process repeatedly finalizes the closest frontier node until the heap is empty
// or the closest entry lies beyond MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest entry. The loop guard makes ErrEmptyHeap impossible here.
		d, u, err := r.pq.Pop()
		if err != nil {
			panic(fmt.Sprintf("dijkstra: heap invariant broken: %v", err))
		}

		// 2) Stale entry: a shorter distance was recorded after this one was pushed.
		if d > r.dist[u] {
			continue
		}

		// 3) Duplicate entry with an equal distance for an already finalized node.
		if r.visited[u] {
			continue
		}

		// 4) Heap order means nothing left is within the cap either.
		if d > r.options.MaxDistance {
			break
		}

		// 5) Finalize u and relax its outgoing edges.
		r.visited[u] = true
		r.order = append(r.order, u)
		updated, err := r.relax(u, d)
		if err != nil {
			return err
		}

		if r.options.OnStep != nil {
			r.steps++
			step := Step{
				Index:    r.steps,
				Node:     u,
				Distance: d,
				Updated:  updated,
				Frontier: r.pq.Items(),
			}
			if err = r.options.OnStep(step); err != nil {
				return fmt.Errorf("dijkstra: step %d (%s): %w", step.Index, u, err)
			}
		}
	}

	return nil
}

// relax tries every outgoing edge u→v with alt = d + w and records strict improvements.
// It returns the improvements in neighbor order.
func (r *runner) relax(u string, d int64) ([]Relaxation, error) {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	var updated []Relaxation
	for _, e := range neighbors {
		// Impassable edge.
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		// Saturate instead of wrapping around on huge weights.
		alt := Infinity
		if e.Weight < Infinity-d {
			alt = d + e.Weight
		}
		if alt > r.options.MaxDistance {
			continue
		}

		// Only strictly shorter paths are recorded; equal ones would just add duplicates.
		if alt >= r.dist[e.To] {
			continue
		}

		updated = append(updated, Relaxation{Node: e.To, Old: r.dist[e.To], New: alt})
		r.dist[e.To] = alt
		r.prev[e.To] = u
		r.pq.Push(alt, e.To)
	}

	return updated, nil
}
