package dijkstra

import (
	"fmt"
)

// ReconstructPath follows prev back from end and returns the node sequence
// start → … → end. It returns nil when the walk does not arrive at start,
// which is the case for unreachable targets and for ends missing from prev.
//
// Complexity: O(path length).
func ReconstructPath(prev map[string]string, start, end string) []string {
	if _, ok := prev[end]; !ok {
		return nil
	}

	var path []string
	for node := end; node != ""; node = prev[node] {
		path = append(path, node)
		// A predecessor chain longer than the map itself can only be a cycle.
		if len(path) > len(prev) {
			return nil
		}
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	if path[0] != start {
		return nil
	}

	return path
}

// PathTo returns the shortest path from the run's source to id.
// It fails with ErrUnknownNode if id is not in the graph and ErrNoPath if it was not reached.
func (r *Result) PathTo(id string) (Path, error) {
	d, ok := r.Dist[id]
	if !ok {
		return Path{}, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	if d == Infinity {
		return Path{}, fmt.Errorf("%w: %s to %s", ErrNoPath, r.Source, id)
	}

	nodes := ReconstructPath(r.Prev, r.Source, id)
	if nodes == nil {
		// A finite distance always has a predecessor chain back to the source.
		panic(fmt.Sprintf("dijkstra: broken predecessor chain for %q", id))
	}

	return Path{Nodes: nodes, Distance: d}, nil
}

// ShortestPath returns one shortest path from → to in g.
//
// Both endpoints must exist (ErrUnknownNode). When from == to the single-node
// path with distance 0 is returned without running the algorithm.
// An unreachable target yields ErrNoPath.
func ShortestPath(g *Graph, from, to string, opts ...Option) (Path, error) {
	if g == nil {
		return Path{}, ErrNilGraph
	}
	for _, id := range []string{from, to} {
		if !g.HasNode(id) {
			return Path{}, fmt.Errorf("%w: %q", ErrUnknownNode, id)
		}
	}
	if from == to {
		return Path{Nodes: []string{from}, Distance: 0}, nil
	}

	all := append(append(make([]Option, 0, len(opts)+1), opts...), Source(from))
	res, err := Dijkstra(g, all...)
	if err != nil {
		return Path{}, err
	}

	return res.PathTo(to)
}
