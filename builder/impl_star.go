// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_star.go - implementation of Star(n) and Wheel(n) constructors.
//
// Contract:
//   - Star: n ≥ 2; center "Center" plus leaves cfg.idFn(1..n-1).
//   - Wheel: n ≥ 4; Cycle(n-1) over cfg.idFn(0..n-2), then "Center" with
//     spokes to every rim vertex.
//   - Spokes point outward from the center; WithBidirectional mirrors them.
//
// Complexity:
//   - Time: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4 // outer cycle has size n-1 ≥ 3
)

// Star returns a Constructor that builds a star with n-1 spokes.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		center, err := addNamed(g, methodStar, CenterVertexID)
		if err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			leaf, err := addNamed(g, methodStar, cfg.idFn(i))
			if err != nil {
				return err
			}
			if err = emit(g, cfg, methodStar, center, leaf, cfg.weightFn()); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that builds W_n = C_{n-1} + center.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}

		center, err := addNamed(g, methodWheel, CenterVertexID)
		if err != nil {
			return err
		}

		for i := 0; i < n-1; i++ {
			// Rim vertices already exist; Vertex resolves their handles.
			rim, err := g.Vertex(cfg.idFn(i))
			if err != nil {
				return fmt.Errorf("%s: rim %d: %w", methodWheel, i, err)
			}
			if err = emit(g, cfg, methodWheel, center, rim, cfg.weightFn()); err != nil {
				return err
			}
		}

		return nil
	}
}
