// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_path.go - implementation of Path(n) and Cycle(n) constructors.
//
// Contract:
//   - Path: n ≥ 2, Cycle: n ≥ 3 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1) → i for i=1..n-1 in stable increasing order;
//     Cycle closes the ring with (n-1) → 0.
//   - One cfg.weightFn draw per emitted edge (mirrors share it).
//
// Complexity:
//   - Time: O(n) vertices + O(n) edges.
//   - Space: O(n) for the handle slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// File-local constants for method tagging and parameter minima.
const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds a directed path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		ids, err := addVertices(g, cfg, methodPath, n)
		if err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			if err = emit(g, cfg, methodPath, ids[i-1], ids[i], cfg.weightFn()); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds a directed ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		ids, err := addVertices(g, cfg, methodCycle, n)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			if err = emit(g, cfg, methodCycle, ids[i], ids[(i+1)%n], cfg.weightFn()); err != nil {
				return err
			}
		}

		return nil
	}
}
