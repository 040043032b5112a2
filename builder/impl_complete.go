// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). K_1 has no edges.
//   - For every pair i<j (i asc, then j asc) draw one weight and emit both
//     i→j and j→i with it. The graph is symmetric with or without
//     WithBidirectional.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		ids, err := addVertices(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}

		// Mirroring is done here explicitly, so the flag must not double it.
		pair := cfg
		pair.bidirectional = true
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = emit(g, pair, methodComplete, ids[i], ids[j], cfg.weightFn()); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
