// Package antour is an ant colony optimization engine for searching
// low-cost tours over weighted spatial graphs.
//
// 🐜 What is antour?
//
//	A deterministic, library-first implementation of population-based tour
//	search, organized as:
//		• Core primitives: nodes with coordinates and demand weight, paired
//		  directed edges carrying mutable pheromone, insertion-ordered graphs
//		• Agents: stochastic ants building full tours via roulette-wheel
//		  edge selection biased by pheromone and Manhattan distance
//		• Pheromone dynamics: population-wide reinforcement plus global
//		  evaporation between generations
//		• Orchestration: a generation loop with parallel traversal workers
//		  and an explicit barrier before every pheromone write phase
//
// ✨ Why choose antour?
//
//   - Reproducible – fixed seeds produce identical incumbents regardless of
//     worker count, thanks to per-ant derived RNG streams
//   - Lock-free hot path – traversal only reads pheromone; all writes happen
//     single-threaded between generations
//   - Strict error contract – sentinel errors, no panics on user input,
//     no silent partial results
//
// The module is organized under three subpackages:
//
//	core/    — Node, Edge, Vertex and Graph types; distance and energy model
//	aco/     — Ant traversal policy, pheromone update rule, Colony runner
//	builder/ — deterministic graph constructors and coordinate loaders
//
// Quick ASCII example:
//
//	    (0,1)───(1,1)
//	      │   ╳   │
//	    (0,0)───(1,0)
//
//	a complete 4-node square; ants learn to prefer the unit-length sides
//	over the diagonals.
//
// See each subpackage's doc.go for contracts, invariants and complexity.
//
//	go get github.com/antour/antour
package antour
