// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for shortpath/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the core tests.
//   - Keep assertion style uniform (testify require).

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/core"
)

// Common vertex names used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexE = "E"

	VertexX = "X"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0 = 0.0
	Weight1 = 1.0
	Weight2 = 2.0
	Weight4 = 4.0
	Weight5 = 5.0
	Weight7 = 7.0
)

// Common concurrency sizes.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// mustAddVertices registers names in order and returns their handles.
func mustAddVertices(t *testing.T, g *core.Graph, names ...string) []core.VertexID {
	t.Helper()

	ids := make([]core.VertexID, len(names))
	for i, name := range names {
		id, err := g.AddVertex(name)
		require.NoError(t, err, "AddVertex(%q)", name)
		ids[i] = id
	}

	return ids
}

// newExampleGraph builds the five-vertex worked example:
// A→B(4), A→C(2), B→C(1), B→D(5), C→D(8), C→E(10), D→E(2).
func newExampleGraph(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()

	g := core.NewGraph(opts...)
	mustAddVertices(t, g, VertexA, VertexB, VertexC, VertexD, VertexE)
	require.NoError(t, g.AddEdges([]core.EdgeSpec{
		{From: VertexA, To: VertexB, Weight: 4},
		{From: VertexA, To: VertexC, Weight: 2},
		{From: VertexB, To: VertexC, Weight: 1},
		{From: VertexB, To: VertexD, Weight: 5},
		{From: VertexC, To: VertexD, Weight: 8},
		{From: VertexC, To: VertexE, Weight: 10},
		{From: VertexD, To: VertexE, Weight: 2},
	}))

	return g
}
