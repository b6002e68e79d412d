// Package builder provides deterministic, composable constructors for
// core.Graph fixtures used by community-quality tests, examples and benchmarks.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGraph(gopts, bopts, cons...): probes the graph mode, runs each
//     Constructor on a draft and hands the result to core.NewGraph.
//   - Topology constructors (each appends a fresh block of vertices):
//     – Cycle, Path, Star, Wheel, Complete, CompleteBipartite, Grid,
//     Isolated, RandomSparse.
//   - Connectors over vertices that already exist:
//     – Bridge(u, v), Loop(v).
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn, ExponentialWeightFn.
//   - Configuration primitives:
//     – BuilderOption: WithSeed, WithRand, WithWeightFn, WithConstantWeight,
//     WithUniformWeight, WithExponentialWeight.
//
// Guarantees:
//
//   - Composition is a disjoint union: Cycle(4) followed by Cycle(4) yields
//     vertices 0..3 and 4..7 with no edge between the blocks until a Bridge.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime parameter errors are sentinel-wrapped ("Cycle: n=2 < min=3: ...").
//   - Same options, seed and constructor order produce identical graphs.
//
// Example: two triangles joined by one bridge, the classic two-community fixture.
//
//	g, err := builder.BuildGraph(nil, nil,
//		builder.Complete(3), builder.Complete(3), builder.Bridge(2, 3))
package builder
