// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed.

package builder

import "math"

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil to surface programmer error early.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithSeed fixes the generator seed. A zero seed lets gofakeit pick a
// time-based one, so the build is no longer reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.seed = seed
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
// Panics on a negative, NaN or infinite w.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithWeightRange draws integer weights uniformly from [min, max].
// Panics unless 0 ≤ min ≤ max.
func WithWeightRange(min, max int) BuilderOption {
	return WithWeightFn(UniformIntWeightFn(min, max))
}

// WithBidirectional mirrors every emitted edge u→v with v→u of the same weight.
func WithBidirectional() BuilderOption {
	return func(c *builderConfig) {
		c.bidirectional = true
	}
}

// validWeight reports whether w is acceptable for core.Graph.
func validWeight(w float64) bool {
	return w >= 0 && !math.IsInf(w, 1) && !math.IsNaN(w)
}
