// SPDX-License-Identifier: MIT
// Package core_test verifies all-or-nothing batch insertion.

package core_test

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/core"
)

// TestAddEdges_AllOrNothing checks that one bad spec blocks the whole batch
// and that every failure is reported.
func TestAddEdges_AllOrNothing(t *testing.T) {
	g := core.NewGraph()
	mustAddVertices(t, g, VertexA, VertexB, VertexC)

	err := g.AddEdges([]core.EdgeSpec{
		{From: VertexA, To: VertexB, Weight: Weight1},
		{From: VertexA, To: VertexX, Weight: Weight1},
		{From: VertexB, To: VertexC, Weight: -Weight1},
		{From: VertexEmpty, To: VertexC, Weight: Weight1},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.ErrorIs(t, err, core.ErrBadWeight)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 3)

	assert.Zero(t, g.EdgeCount(), "no spec may be applied when one fails")
}

// TestAddEdges_Applied checks order and policy for a valid batch.
func TestAddEdges_Applied(t *testing.T) {
	g := core.NewGraph(core.WithDuplicateEdges(core.DuplicateKeepMin))
	ids := mustAddVertices(t, g, VertexA, VertexB, VertexC)

	require.NoError(t, g.AddEdges([]core.EdgeSpec{
		{From: VertexA, To: VertexC, Weight: Weight5},
		{From: VertexA, To: VertexB, Weight: Weight4},
		{From: VertexA, To: VertexC, Weight: Weight2},
	}))

	nbs, err := g.Neighbors(ids[0])
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{ids[2], ids[1]}, nbs)

	w, err := g.WeightOf(ids[0], ids[2])
	require.NoError(t, err)
	assert.Equal(t, Weight2, w)
}

// TestAddEdges_RejectWithinBatch checks DuplicateReject across the batch itself.
func TestAddEdges_RejectWithinBatch(t *testing.T) {
	g := core.NewGraph(core.WithDuplicateEdges(core.DuplicateReject))
	mustAddVertices(t, g, VertexA, VertexB)

	err := g.AddEdges([]core.EdgeSpec{
		{From: VertexA, To: VertexB, Weight: Weight1},
		{From: VertexA, To: VertexB, Weight: Weight2},
	})
	require.ErrorIs(t, err, core.ErrDuplicateEdge)
	assert.Zero(t, g.EdgeCount())

	require.NoError(t, g.AddEdges([]core.EdgeSpec{{From: VertexA, To: VertexB, Weight: Weight1}}))
	err = g.AddEdges([]core.EdgeSpec{{From: VertexA, To: VertexB, Weight: Weight2}})
	require.ErrorIs(t, err, core.ErrDuplicateEdge)
}

// TestAddEdges_Empty accepts an empty batch.
func TestAddEdges_Empty(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdges(nil))
}
