// Package builder provides deterministic, composable topology constructors
// for core.Graph: fixtures for tests and benchmarks, and the demo graphs of
// the sssp command.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): new graph, resolved options, constructors in order.
//     – Constructor: a closure that mutates a graph under a resolved builderConfig.
//   - Topologies:
//     – Path, Cycle, Star, Wheel, Grid, Complete: fixed shapes.
//     – RandomSparse: seeded Erdős–Rényi-like digraph.
//     – Edges: an explicit name-based edge list, inserted all-or-nothing.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – SymbolNumberIDFn:  prefix + decimal ("v0","v1",…).
//   - Edge-weight policies (WeightFn implementations):
//     – DefaultWeightFn:    constant DefaultEdgeWeight.
//     – ConstantWeightFn:   fixed user-provided value.
//     – UniformIntWeightFn: integers ∼U[min,max].
//
// Randomness comes from gofakeit. BuildGraph seeds it (DefaultSeed unless
// WithSeed is given) and holds a package lock for the whole build, so the
// same seed and constructor list always yield the same graph.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return wrapped sentinel errors (errors.Is against
//     ErrTooFewVertices, ErrInvalidProbability, ErrConstructFailed or core sentinels).
//   - Documented algorithmic complexity per constructor.
package builder
