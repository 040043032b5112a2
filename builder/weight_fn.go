// Package builder provides internal helper functions and types
// for configuring edge-weight distributions in graph constructors.
package builder

import (
	"fmt"

	"github.com/brianvoe/gofakeit"
)

// DefaultEdgeWeight is the default weight assigned to each edge when no
// custom WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces the weight of the next emitted edge. Random generators
// draw from gofakeit and are only invoked by constructors running inside
// BuildGraph, which holds the generator lock and has seeded it.
type WeightFn func() float64

// DefaultWeightFn always returns the constant DefaultEdgeWeight.
// Complexity: O(1). Never panics.
func DefaultWeightFn() float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value is negative, NaN or infinite.
func ConstantWeightFn(value float64) WeightFn {
	if !validWeight(value) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite and ≥ 0, got %g", value))
	}

	return func() float64 {
		return value
	}
}

// UniformIntWeightFn returns a WeightFn sampling integers uniformly in
// [min, max] inclusive. Integer weights keep path sums exact, which makes
// distance comparisons in tests reliable.
// Panics if min < 0 or max < min.
func UniformIntWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformIntWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func() float64 {
		return float64(gofakeit.Number(min, max))
	}
}
