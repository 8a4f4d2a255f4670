// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on directed weighted graphs.
//
// Options:
//
//	– Source:           ID of the starting node (must be non-empty and present in the graph).
//	– MaxDistance:      optional cap on distances to explore; nodes beyond this are left unvisited.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//	– OnStep:           hook called after each node is finalized (step-by-step tracing).
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrUnknownNode     if a queried node does not exist in the graph.
//	– ErrNegativeWeight  if an edge with a negative weight is added.
//	– ErrEmptyNodeID     if a node or edge endpoint ID is empty.
//	– ErrNoPath          if the target cannot be reached from the source.
//	– ErrBadCSV          if an edge list cannot be parsed.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"math"
	"strings"

	"github.com/katalvlaran/dsakit/minheap"
)

// Infinity is the distance reported for nodes the source cannot reach.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source node ID is empty.
	ErrEmptySource = errors.New("dijkstra: source node ID is empty")

	// ErrNilGraph indicates that a nil *Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownNode indicates that a node ID does not exist in the graph.
	ErrUnknownNode = errors.New("dijkstra: unknown node")

	// ErrNegativeWeight indicates an attempt to add an edge with a negative weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight")

	// ErrEmptyNodeID indicates an empty node or edge endpoint ID.
	ErrEmptyNodeID = errors.New("dijkstra: node ID is empty")

	// ErrNoPath indicates that the target node is unreachable from the source.
	ErrNoPath = errors.New("dijkstra: no path")

	// ErrBadCSV indicates a malformed edge-list file.
	ErrBadCSV = errors.New("dijkstra: malformed edge list")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Relaxation records one successful edge relaxation: the tentative distance
// of Node dropped from Old to New.
type Relaxation struct {
	Node string
	Old  int64
	New  int64
}

// Step describes the state right after a node has been finalized and its
// outgoing edges relaxed.
type Step struct {
	// Index is 1 for the source and increases by one per finalized node.
	Index int

	// Node is the node that was just finalized, and Distance its final distance.
	Node     string
	Distance int64

	// Updated lists the neighbors whose distance improved, in neighbor order.
	Updated []Relaxation

	// Frontier is a snapshot of the heap after relaxation, stale entries included.
	Frontier []minheap.Item[int64, string]
}

// StepFunc observes a Step. Returning an error aborts the run.
type StepFunc func(Step) error

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting node ID (must be non-empty and present in the graph).
// MaxDistance      – nodes whose shortest distance exceeds this value are not finalized.
//
//	Must be ≥ 0. Default is Infinity (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable.
//
//	Must be > 0. Default is Infinity (no obstacles).
//
// OnStep           – optional tracing hook, nil by default.
type Options struct {
	Source           string
	MaxDistance      int64
	InfEdgeThreshold int64
	OnStep           StepFunc
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node ID. It must be provided.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored
// and keep Infinity as their distance.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight at or above which edges are skipped.
// Zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithOnStep installs fn as a per-step tracing hook.
func WithOnStep(fn StepFunc) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// DefaultOptions returns Options for the given source with no distance cap,
// no impassable edges and no hook.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}

// Result holds the outcome of one Dijkstra run.
type Result struct {
	// Source is the node the run started from.
	Source string

	// Dist maps every node of the graph to its shortest distance from Source,
	// or Infinity if it was not reached.
	Dist map[string]int64

	// Prev maps every node to its predecessor on one shortest path.
	// It is "" for Source and for unreached nodes.
	Prev map[string]string

	// Order lists nodes in the order they were finalized (Source first).
	Order []string
}

// Reachable reports whether id received a finite distance.
func (r *Result) Reachable(id string) bool {
	d, ok := r.Dist[id]

	return ok && d != Infinity
}

// Path is a node sequence together with its total weight.
type Path struct {
	Nodes    []string
	Distance int64
}

// String renders the path as "A -> B -> C".
func (p Path) String() string {
	return strings.Join(p.Nodes, " -> ")
}
