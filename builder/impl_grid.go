// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid; each cell points to its right and bottom neighbors.
//   • Vertex IDs use a fixed, documented scheme "r,c" (row-major order).
//     This is a deliberate exception to cfg.idFn to keep coordinates explicit.
//   • WithBidirectional turns it into the usual 4-neighborhood grid.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//
// Complexity:
//   • Time: O(rows*cols) vertices + O(rows*cols) edges.
//   • Space: O(rows*cols) handles.
//
// Determinism:
//   • Stable vertex order: row-major (r asc, then c asc).
//   • Stable edge order: for each (r,c) emit Right then Bottom if present.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		ids := make([]core.VertexID, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id, err := addNamed(g, methodGrid, gridVertexID(r, c))
				if err != nil {
					return err
				}
				ids[r*cols+c] = id
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if c+1 < cols {
					if err := emit(g, cfg, methodGrid, u, ids[r*cols+c+1], cfg.weightFn()); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := emit(g, cfg, methodGrid, u, ids[(r+1)*cols+c], cfg.weightFn()); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
