// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in vertex/edge lifecycle rules and their sentinel errors.
//   - Anchor ordering guarantees (insertion order everywhere).

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/core"
)

// TestGraph_AddVertex verifies handle assignment, idempotency and lookups.
func TestGraph_AddVertex(t *testing.T) {
	// Stage 1: empty name is rejected.
	g := core.NewGraph()
	id, err := g.AddVertex(VertexEmpty)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
	assert.Equal(t, core.NoVertex, id)

	// Stage 2: handles are dense and follow insertion order.
	ids := mustAddVertices(t, g, VertexA, VertexB, VertexC)
	assert.Equal(t, []core.VertexID{0, 1, 2}, ids)
	assert.Equal(t, []core.VertexID{0, 1, 2}, g.Vertices())
	assert.Equal(t, []string{VertexA, VertexB, VertexC}, g.VertexNames())

	// Stage 3: re-adding returns the same handle and does not grow the arena.
	again, err := g.AddVertex(VertexB)
	require.NoError(t, err)
	assert.Equal(t, ids[1], again)
	assert.Equal(t, 3, g.VertexCount())

	// Stage 4: name ↔ handle lookups.
	got, err := g.Vertex(VertexC)
	require.NoError(t, err)
	assert.Equal(t, ids[2], got)
	name, err := g.Name(ids[0])
	require.NoError(t, err)
	assert.Equal(t, VertexA, name)

	_, err = g.Vertex(VertexX)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Name(core.VertexID(42))
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Name(core.NoVertex)
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	assert.True(t, g.HasVertex(VertexA))
	assert.False(t, g.HasVertex(VertexX))
	assert.False(t, g.HasVertex(VertexEmpty))
	assert.True(t, g.Contains(ids[2]))
	assert.False(t, g.Contains(core.VertexID(3)))
}

// TestGraph_AddVertexKeepsAdjacency checks that re-registration does not
// reset the outgoing edges of an existing vertex.
func TestGraph_AddVertexKeepsAdjacency(t *testing.T) {
	g := core.NewGraph()
	ids := mustAddVertices(t, g, VertexA, VertexB)
	require.NoError(t, g.AddEdge(ids[0], ids[1], Weight2))

	_, err := g.AddVertex(VertexA)
	require.NoError(t, err)

	nbs, err := g.Neighbors(ids[0])
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{ids[1]}, nbs)
}

// TestGraph_StrictVertices verifies ErrDuplicateVertex in strict mode.
func TestGraph_StrictVertices(t *testing.T) {
	g := core.NewGraph(core.WithStrictVertices())
	assert.True(t, g.StrictVertices())
	first, err := g.AddVertex(VertexA)
	require.NoError(t, err)

	second, err := g.AddVertex(VertexA)
	require.ErrorIs(t, err, core.ErrDuplicateVertex)
	assert.Equal(t, first, second, "the existing handle is still reported")
	assert.Equal(t, 1, g.VertexCount())
}

// TestGraph_AddEdge verifies endpoint and weight preconditions.
func TestGraph_AddEdge(t *testing.T) {
	g := core.NewGraph()
	ids := mustAddVertices(t, g, VertexA, VertexB)
	a, b := ids[0], ids[1]

	// Stage 1: happy path.
	require.NoError(t, g.AddEdge(a, b, Weight4))
	w, err := g.WeightOf(a, b)
	require.NoError(t, err)
	assert.Equal(t, Weight4, w)
	assert.True(t, g.HasEdge(a, b))
	assert.False(t, g.HasEdge(b, a), "edges are directed")

	// Stage 2: unknown endpoints.
	require.ErrorIs(t, g.AddEdge(a, core.VertexID(7), Weight1), core.ErrVertexNotFound)
	require.ErrorIs(t, g.AddEdge(core.NoVertex, b, Weight1), core.ErrVertexNotFound)

	// Stage 3: zero weight and self-loops are fine.
	require.NoError(t, g.AddEdge(b, a, Weight0))
	require.NoError(t, g.AddEdge(a, a, Weight1))
	assert.Equal(t, 3, g.EdgeCount())
}

// TestGraph_AddEdgeBadWeightLeavesGraphUnchanged covers InvalidWeight.
func TestGraph_AddEdgeBadWeightLeavesGraphUnchanged(t *testing.T) {
	g := core.NewGraph()
	ids := mustAddVertices(t, g, VertexA, VertexB)
	require.NoError(t, g.AddEdge(ids[0], ids[1], Weight2))
	before := g.Edges()

	for _, w := range []float64{-1, -0.5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := g.AddEdge(ids[0], ids[1], w)
		require.ErrorIs(t, err, core.ErrBadWeight, "weight %v", w)
		err = g.AddEdge(ids[1], ids[0], w)
		require.ErrorIs(t, err, core.ErrBadWeight, "weight %v", w)
	}

	assert.Equal(t, before, g.Edges())
	assert.Equal(t, 1, g.EdgeCount())
}

// TestGraph_DuplicateEdgePolicies covers overwrite, keep-min and reject.
func TestGraph_DuplicateEdgePolicies(t *testing.T) {
	cases := []struct {
		name    string
		policy  core.DuplicatePolicy
		want    float64
		wantErr error
	}{
		{name: "overwrite", policy: core.DuplicateOverwrite, want: Weight7},
		{name: "keep-min", policy: core.DuplicateKeepMin, want: Weight2},
		{name: "reject", policy: core.DuplicateReject, want: Weight2, wantErr: core.ErrDuplicateEdge},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph(core.WithDuplicateEdges(tc.policy))
			assert.Equal(t, tc.policy, g.DuplicateEdges())
			ids := mustAddVertices(t, g, VertexA, VertexB, VertexC)
			a, b, c := ids[0], ids[1], ids[2]

			require.NoError(t, g.AddEdge(a, b, Weight2))
			require.NoError(t, g.AddEdge(a, c, Weight5))
			err := g.AddEdge(a, b, Weight7)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}

			w, err := g.WeightOf(a, b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, w)

			// The pair keeps its first adjacency position and is listed once.
			nbs, err := g.Neighbors(a)
			require.NoError(t, err)
			assert.Equal(t, []core.VertexID{b, c}, nbs)
			assert.Equal(t, 2, g.EdgeCount())
		})
	}
}

// TestGraph_UnknownPolicyFallsBack checks WithDuplicateEdges input sanitation.
func TestGraph_UnknownPolicyFallsBack(t *testing.T) {
	g := core.NewGraph(core.WithDuplicateEdges(core.DuplicatePolicy(99)))
	assert.Equal(t, core.DuplicateOverwrite, g.DuplicateEdges())
	assert.Equal(t, "unknown(99)", core.DuplicatePolicy(99).String())
}

// TestGraph_Connect verifies the name-based edge insertion.
func TestGraph_Connect(t *testing.T) {
	g := core.NewGraph()
	ids := mustAddVertices(t, g, VertexA, VertexB)

	require.NoError(t, g.Connect(VertexA, VertexB, Weight5))
	w, err := g.WeightOf(ids[0], ids[1])
	require.NoError(t, err)
	assert.Equal(t, Weight5, w)

	require.ErrorIs(t, g.Connect(VertexA, VertexX, Weight1), core.ErrVertexNotFound)
	require.ErrorIs(t, g.Connect(VertexX, VertexA, Weight1), core.ErrVertexNotFound)
	require.ErrorIs(t, g.Connect(VertexEmpty, VertexA, Weight1), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.Connect(VertexA, VertexB, -Weight1), core.ErrBadWeight)
	assert.False(t, g.HasVertex(VertexX), "Connect never creates vertices")
	assert.Equal(t, 1, g.EdgeCount())
}

// TestGraph_NeighborsAndWeightOf verifies neighborhood queries and EdgeNotFound.
func TestGraph_NeighborsAndWeightOf(t *testing.T) {
	g := newExampleGraph(t)
	a, _ := g.Vertex(VertexA)
	b, _ := g.Vertex(VertexB)
	c, _ := g.Vertex(VertexC)
	d, _ := g.Vertex(VertexD)
	e, _ := g.Vertex(VertexE)

	nbs, err := g.Neighbors(c)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{d, e}, nbs)

	nbs, err = g.Neighbors(e)
	require.NoError(t, err)
	assert.Empty(t, nbs)

	_, err = g.Neighbors(core.VertexID(99))
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	out, err := g.OutEdges(a)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: a, To: b, Weight: 4}, {From: a, To: c, Weight: 2}}, out)

	deg, err := g.OutDegree(b)
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	_, err = g.WeightOf(c, b)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	_, err = g.WeightOf(c, core.VertexID(99))
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestGraph_EdgesOrder anchors Edges() enumeration order.
func TestGraph_EdgesOrder(t *testing.T) {
	g := core.NewGraph()
	ids := mustAddVertices(t, g, VertexA, VertexB, VertexC)
	require.NoError(t, g.AddEdge(ids[2], ids[0], Weight1))
	require.NoError(t, g.AddEdge(ids[0], ids[2], Weight2))
	require.NoError(t, g.AddEdge(ids[0], ids[1], Weight4))

	assert.Equal(t, []core.Edge{
		{From: ids[0], To: ids[2], Weight: Weight2},
		{From: ids[0], To: ids[1], Weight: Weight4},
		{From: ids[2], To: ids[0], Weight: Weight1},
	}, g.Edges())
}

// TestGraph_CloneAndClear verifies deep copies and reset.
func TestGraph_CloneAndClear(t *testing.T) {
	g := newExampleGraph(t, core.WithDuplicateEdges(core.DuplicateKeepMin))
	clone := g.Clone()

	assert.Equal(t, g.Edges(), clone.Edges())
	assert.Equal(t, g.VertexNames(), clone.VertexNames())
	assert.Equal(t, core.DuplicateKeepMin, clone.DuplicateEdges())

	// Mutating the clone leaves the original untouched.
	x, err := clone.AddVertex(VertexX)
	require.NoError(t, err)
	a, _ := clone.Vertex(VertexA)
	require.NoError(t, clone.AddEdge(a, x, Weight1))
	assert.False(t, g.HasVertex(VertexX))
	assert.Equal(t, 7, g.EdgeCount())
	assert.Equal(t, 8, clone.EdgeCount())

	g.Clear()
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.Equal(t, core.DuplicateKeepMin, g.DuplicateEdges())
	_, err = g.AddVertex(VertexA)
	require.NoError(t, err)
}

// TestGraph_Stats verifies the summary snapshot.
func TestGraph_Stats(t *testing.T) {
	g := newExampleGraph(t)
	_, err := g.AddVertex(VertexX)
	require.NoError(t, err)

	stats := g.Stats()
	assert.Equal(t, core.GraphStats{
		VertexCount:     6,
		EdgeCount:       7,
		MaxOutDegree:    2,
		SinkCount:       2,
		DuplicatePolicy: core.DuplicateOverwrite,
	}, stats)
}
