// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like directed generator: include each ordered pair (i,j),
//     i≠j, independently with probability p. No self-loops.
//   - With WithBidirectional the trials run over unordered pairs {i<j}
//     and an accepted pair yields both directions with one weight.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - Bernoulli trials draw from gofakeit, seeded by BuildGraph.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable trial order: i asc, then j asc; weights are drawn right after
//     an accepted trial, so a fixed seed fixes the whole graph.

package builder

import (
	"fmt"
	"math"

	"github.com/brianvoe/gofakeit"

	"github.com/katalvlaran/shortpath/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1

	// trialScale is the resolution of a Bernoulli trial: p is compared
	// against an integer drawn from [0, trialScale).
	trialScale = 1_000_000
)

// RandomSparse returns a Constructor that samples a random sparse digraph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if math.IsNaN(p) || p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}

		ids, err := addVertices(g, cfg, methodRandomSparse, n)
		if err != nil {
			return err
		}

		threshold := int(math.Round(p * trialScale))
		for i := 0; i < n; i++ {
			start := 0
			if cfg.bidirectional {
				start = i + 1
			}
			for j := start; j < n; j++ {
				if i == j {
					continue
				}
				if gofakeit.Number(0, trialScale-1) >= threshold {
					continue
				}
				if err = emit(g, cfg, methodRandomSparse, ids[i], ids[j], cfg.weightFn()); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
