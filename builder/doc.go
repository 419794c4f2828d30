// Package builder generates deterministic lattice edge sets for tests,
// benchmarks and the `gridsssp gen` command.
//
// The package offers the following key components:
//
//   - Constructors:
//     – Lattice:  every in-bounds axis neighbour of every coordinate
//     (±x, ±y, and ±z in 3D), each as a directed edge.
//     – Chain:    a straight path along the x axis (handy for fixtures).
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds RNG, weight function and rounding.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:  constant weight DefaultEdgeWeight.
//     – ConstantWeightFn: fixed user-provided value.
//     – UniformWeightFn:  uniform ∼U[min,max].
//     – NormalWeightFn:   Gaussian ∼N(mean,stddev), clipped at 0.
//
// Guarantees:
//
//   - Determinism: same space, options and seed ⇒ identical edge slices.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors and never panic at runtime.
package builder
