package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/core"
)

// exampleEdges is the five-vertex worked example.
var exampleEdges = []core.EdgeSpec{
	{From: "A", To: "B", Weight: 4},
	{From: "A", To: "C", Weight: 2},
	{From: "B", To: "C", Weight: 1},
	{From: "B", To: "D", Weight: 5},
	{From: "C", To: "D", Weight: 8},
	{From: "C", To: "E", Weight: 10},
	{From: "D", To: "E", Weight: 2},
}

// newGraph registers names in order and inserts specs as one batch.
// With symmetric set, every spec is inserted in both directions.
func newGraph(t testing.TB, names []string, specs []core.EdgeSpec, symmetric bool) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for _, name := range names {
		_, err := g.AddVertex(name)
		require.NoError(t, err)
	}
	batch := specs
	if symmetric {
		batch = make([]core.EdgeSpec, 0, 2*len(specs))
		for _, s := range specs {
			batch = append(batch, s, core.EdgeSpec{From: s.To, To: s.From, Weight: s.Weight})
		}
	}
	require.NoError(t, g.AddEdges(batch))

	return g
}

// newExample returns the worked example, directed or symmetric.
func newExample(t testing.TB, symmetric bool) *core.Graph {
	t.Helper()

	return newGraph(t, []string{"A", "B", "C", "D", "E"}, exampleEdges, symmetric)
}

// id resolves a name or fails the test.
func id(t testing.TB, g *core.Graph, name string) core.VertexID {
	t.Helper()

	v, err := g.Vertex(name)
	require.NoError(t, err)

	return v
}
