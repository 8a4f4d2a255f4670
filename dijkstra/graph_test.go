package dijkstra_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsakit/dijkstra"
)

func TestGraph_AddEdgeRegistersEndpoints(t *testing.T) {
	g := dijkstra.NewGraph()
	require.NoError(t, g.AddEdge("B", "A", 3))

	assert.True(t, g.HasNode("A"), "destination must exist even without outgoing edges")
	assert.True(t, g.HasNode("B"))
	assert.Equal(t, []string{"A", "B"}, g.Nodes())
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())

	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Empty(t, nbrs)
}

func TestGraph_Validation(t *testing.T) {
	g := dijkstra.NewGraph()
	assert.ErrorIs(t, g.AddNode(""), dijkstra.ErrEmptyNodeID)
	assert.ErrorIs(t, g.AddEdge("", "B", 1), dijkstra.ErrEmptyNodeID)
	assert.ErrorIs(t, g.AddEdge("A", "B", -5), dijkstra.ErrNegativeWeight)
	assert.Equal(t, 0, g.NodeCount(), "rejected edges add no nodes")

	_, err := g.Neighbors("A")
	assert.ErrorIs(t, err, dijkstra.ErrUnknownNode)
}

func TestGraph_OverwriteEdge(t *testing.T) {
	g := dijkstra.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 7))
	require.NoError(t, g.AddEdge("A", "B", 2))

	w, ok := g.Weight("A", "B")
	assert.True(t, ok)
	assert.Equal(t, int64(2), w, "last weight wins")
	assert.Equal(t, 1, g.EdgeCount())

	_, ok = g.Weight("B", "A")
	assert.False(t, ok, "edges are directed")
}

func TestGraph_NeighborsAndEdgesSorted(t *testing.T) {
	g := dijkstra.NewGraph()
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("A", "B", 2))
	require.NoError(t, g.AddEdge("B", "C", 3))

	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []dijkstra.Edge{{From: "A", To: "B", Weight: 2}, {From: "A", To: "C", Weight: 1}}, nbrs)

	assert.Equal(t, []dijkstra.Edge{
		{From: "A", To: "B", Weight: 2},
		{From: "A", To: "C", Weight: 1},
		{From: "B", To: "C", Weight: 3},
	}, g.Edges())
}

func TestGraph_Stats(t *testing.T) {
	g := dijkstra.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 2))
	require.NoError(t, g.AddEdge("B", "C", 3))
	require.NoError(t, g.AddNode("D"))

	st := g.Stats()
	assert.Equal(t, 4, st.Nodes)
	assert.Equal(t, 3, st.Edges)
	assert.InDelta(t, 0.75, st.AvgOutDegree, 1e-9)
	assert.InDelta(t, 0.25, st.Density, 1e-9)
	assert.Equal(t, map[string]int{"A": 2, "B": 1, "C": 0, "D": 0}, st.OutDegree)

	empty := dijkstra.NewGraph().Stats()
	assert.Zero(t, empty.AvgOutDegree)
	assert.Zero(t, empty.Density)
	assert.Empty(t, empty.OutDegree)

	single := dijkstra.NewGraph()
	require.NoError(t, single.AddEdge("A", "A", 1))
	assert.Zero(t, single.Stats().Density, "density needs two nodes")
}

func TestFromMap(t *testing.T) {
	g, err := dijkstra.FromMap(map[string]map[string]int64{
		"A": {"B": 1},
		"C": {},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Nodes())

	_, err = dijkstra.FromMap(map[string]map[string]int64{"A": {"B": -1}})
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestLoadCSV(t *testing.T) {
	const data = `source,destination,weight
A,B,10
A,C,5
B,C,1
B,D,4
C,D,1
D,E,3
`
	g, err := dijkstra.LoadCSV(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, g.Nodes())
	assert.Equal(t, 6, g.EdgeCount())

	nbrs, err := g.Neighbors("E")
	require.NoError(t, err)
	assert.Empty(t, nbrs, "E only appears as a destination")

	p, err := dijkstra.ShortestPath(g, "A", "E")
	require.NoError(t, err)
	assert.Equal(t, int64(9), p.Distance)
}

func TestLoadCSV_HeaderOrderAndSpaces(t *testing.T) {
	const data = "Weight, Destination, Source, note\n 4, Y, X, scenic\n"
	g, err := dijkstra.LoadCSV(strings.NewReader(data))
	require.NoError(t, err)

	w, ok := g.Weight("X", "Y")
	require.True(t, ok)
	assert.Equal(t, int64(4), w)
}

func TestLoadCSV_Errors(t *testing.T) {
	cases := []struct {
		name string
		data string
		want error
	}{
		{"empty input", "", dijkstra.ErrBadCSV},
		{"missing column", "source,destination\nA,B\n", dijkstra.ErrBadCSV},
		{"bad weight", "source,destination,weight\nA,B,ten\n", dijkstra.ErrBadCSV},
		{"ragged row", "source,destination,weight\nA,B\n", dijkstra.ErrBadCSV},
		{"empty node", "source,destination,weight\n,B,1\n", dijkstra.ErrBadCSV},
		{"negative weight", "source,destination,weight\nA,B,-1\n", dijkstra.ErrNegativeWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dijkstra.LoadCSV(strings.NewReader(tc.data))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoadCSV_LineNumberInError(t *testing.T) {
	const data = "source,destination,weight\nA,B,1\nB,C,x\n"
	_, err := dijkstra.LoadCSV(strings.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}
