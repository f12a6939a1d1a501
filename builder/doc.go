// SPDX-License-Identifier: MIT

// Package builder generates graphs for tests, examples and benchmarks:
// random connected graphs of a requested size plus small deterministic
// topologies with a known minimum spanning forest.
//
// Constructors are composable closures applied by BuildGraph in order. Each
// one appends its own fresh vertices, so building several constructors into
// one graph yields their disjoint union:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.RandomConnected(100, 400),
//		builder.Path(5),
//	)
//
// The package offers:
//
//   - Topologies: Path, Cycle, Star, Complete, Grid, RandomConnected.
//   - Weight policies (BuilderOption): WithWeightFn, WithConstWeight,
//     WithMaxWeight; WeightFn helpers ConstantWeightFn, UniformWeightFn.
//   - Randomness: WithSeed or WithRand; RandomConnected requires one.
//   - DisjointUnion of already built graphs.
//
// Guarantees:
//
//   - Deterministic output for a fixed seed and option list.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors wrapped with their method name and never panic.
package builder
