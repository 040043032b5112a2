// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • idFn          = DefaultIDFn          ("0","1","2",...)
//   • seed          = DefaultSeed          (fixed; builds are reproducible by default)
//   • weightFn      = DefaultWeightFn      (constant DefaultEdgeWeight)
//   • bidirectional = false                (edges point the way they are emitted)

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// Seed handed to gofakeit at the start of BuildGraph.
	seed int64
	// Weight generator; called once per emitted edge pair.
	weightFn WeightFn
	// Mirror every emitted edge u→v with v→u of the same weight.
	bidirectional bool
}

// DefaultSeed is the generator seed used when WithSeed is not given.
const DefaultSeed int64 = 1

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		seed:     DefaultSeed,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
