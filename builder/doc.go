// Package builder assembles core graphs from point sets: explicit point
// lists, seeded random layouts, and plain-text point files.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g,
//     resolves cfg, runs constructors in order.
//   - Functional options (BuildOption) resolve into an immutable
//     buildConfig; no global state.
//   - Determinism: same inputs/options/seed and constructor order yield
//     identical graphs.
//   - Safety: never panic on runtime input; return sentinel errors from
//     constructors. Option constructors panic on programmer error only.
//
// Constructors connect every pair of points in both directions, which is
// the topology the aco solver expects: ants can then step from any stop to
// any other, and the pheromone field covers the full pair set. Sparser
// topologies are composed by calling core.Graph.AddEdge directly.
//
// Quick start:
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithEvaporation(0.5)},
//	    []builder.BuildOption{builder.WithSeed(42)},
//	    builder.RandomPoints(20),
//	)
package builder
