// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go (single place to read docs).
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at build time; return sentinel errors from constructors.

package builder

import (
	"fmt"
	"sync"

	"github.com/brianvoe/gofakeit"

	"github.com/katalvlaran/shortpath/core"
)

// fakeLock guards gofakeit's process-wide generator for the whole duration
// of one BuildGraph call, so seeded builds never interleave their draws.
var fakeLock sync.Mutex

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Register vertices before emitting edges.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, seeds the generator and applies all
// constructors in order. Any constructor error is wrapped with the context
// "BuildGraph: %w" and returned immediately; the partial graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Concurrency:
//   - Safe for concurrent use; builds are serialized on the shared generator.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...)
//     or core sentinels surfaced by the graph.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	fakeLock.Lock()
	defer fakeLock.Unlock()
	gofakeit.Seed(cfg.seed)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Add vertices via cfg.idFn (except documented fixed IDs like "Center" and "r,c").
//   - Emit edges in a stable, documented order.
//   - Mirror every emitted edge when cfg.bidirectional is set.
//   - Return only wrapped sentinel errors; NEVER panic at runtime.

// Path builds a directed path 0→1→…→n-1 (n ≥ 2).
// Complexity: O(n) vertices + O(n-1) edges.
//func Path(n int) Constructor

// Cycle builds a directed ring 0→1→…→n-1→0 (n ≥ 3).
// Complexity: O(n) vertices + O(n) edges.
//func Cycle(n int) Constructor

// Star builds center "Center" with spokes to n-1 leaves (n ≥ 2).
// Complexity: O(n) vertices + O(n-1) edges.
//func Star(n int) Constructor

// Wheel builds Cycle(n-1) plus spokes from "Center" (n ≥ 4).
// Complexity: O(n) vertices + O(2n-2) edges.
//func Wheel(n int) Constructor

// Grid builds an R×C grid with IDs "r,c" and edges to right and bottom neighbors.
// Complexity: O(R*C) vertices + O(R*C) edges.
//func Grid(rows, cols int) Constructor

// Complete builds K_n with both directions of every pair sharing a weight (n ≥ 1).
// Complexity: O(n) vertices + O(n^2) edges.
//func Complete(n int) Constructor

// RandomSparse includes every ordered pair (i≠j) independently with probability p.
// Complexity: O(n^2) Bernoulli trials. Deterministic for a fixed seed.
//func RandomSparse(n int, p float64) Constructor

// Vertices registers named vertices without edges, skipping names already present.
// Complexity: O(len(names)).
//func Vertices(names ...string) Constructor

// Edges registers the named endpoints in first-appearance order and inserts
// the given edges as one all-or-nothing batch.
// Complexity: O(len(specs)).
//func Edges(specs ...core.EdgeSpec) Constructor
