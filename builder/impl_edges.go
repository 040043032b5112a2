// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_edges.go - implementation of Vertices(names...) and Edges(specs...) constructors.
//
// Contract (Vertices):
//   - Registers names in the given order; names already present are skipped,
//     so the constructor composes with others even on strict graphs.
//
// Contract (Edges):
//   - Every endpoint name is registered in first-appearance order
//     (From before To, spec by spec). Empty names fail with core.ErrEmptyVertexID.
//   - Edges go in as one core.Graph.AddEdges batch: either all of them or none.
//     The batch error aggregates every bad spec.
//   - Weights come from the specs; cfg.weightFn is not consulted.
//   - WithBidirectional appends the mirrored spec of each edge to the batch.
//
// Complexity:
//   - Time: O(len(specs)).

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const (
	methodVertices = "Vertices"
	methodEdges    = "Edges"
)

// Vertices returns a Constructor that registers isolated, named vertices.
func Vertices(names ...string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, name := range names {
			if name != "" && g.HasVertex(name) {
				continue
			}
			if _, err := addNamed(g, methodVertices, name); err != nil {
				return err
			}
		}

		return nil
	}
}

// Edges returns a Constructor that inserts an explicit edge list.
func Edges(specs ...core.EdgeSpec) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for _, s := range specs {
			for _, name := range [2]string{s.From, s.To} {
				if name != "" && g.HasVertex(name) {
					continue
				}
				if _, err := addNamed(g, methodEdges, name); err != nil {
					return err
				}
			}
		}

		batch := specs
		if cfg.bidirectional {
			batch = make([]core.EdgeSpec, 0, 2*len(specs))
			for _, s := range specs {
				batch = append(batch, s, core.EdgeSpec{From: s.To, To: s.From, Weight: s.Weight})
			}
		}

		if err := g.AddEdges(batch); err != nil {
			return fmt.Errorf("%s: %w", methodEdges, err)
		}

		return nil
	}
}
