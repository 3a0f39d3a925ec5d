// Package builder provides reusable “functional-options”-style graph
// constructors for fixtures, demos and property tests.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID scheme and weight function.
//   - Vertex-ID schemes (IDFn implementations):
//     – PoolIDFn:          the graph's NamePool ("A","B",…); the default.
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A".."Z").
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – SymbolNumberIDFn:  prefix plus index ("v0","v1",…).
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max).
//     – IntegerWeightFn:   integers uniform in [min,max].
//     – ExponentialWeightFn: exponential ∼Exp(rate), rounded.
//   - Topologies: Path, Cycle, Star, Wheel, Complete, Grid, RandomSparse,
//     and Preset for name-based selection from the command line.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors validate before mutating the graph and return sentinel
//     errors wrapped with the method name.
//   - Deterministic vertex order, edge order and weights for a fixed seed.
//
// Example:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithIntegerWeight(1, 9)},
//	    builder.RandomSparse(8, 0.4),
//	)
package builder
