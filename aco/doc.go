// Package aco implements population-based tour search over a core.Graph:
// stochastic agents (ants), the pheromone update rule, and the generation
// orchestrator (Colony).
//
// Algorithm outline, per generation:
//
//  1. A fresh population of Ants is created, each seeded with an independent
//     deterministic RNG stream and a random start node.
//  2. The population is partitioned into contiguous balanced slices, one per
//     worker; each worker runs its ants to completion sequentially. Ants only
//     read the graph during this phase.
//  3. The orchestrator joins all workers (mandatory barrier), selects the
//     generation's cheapest tour, and replaces the incumbent on strict
//     improvement only.
//  4. The single-threaded pheromone update reinforces every edge walked by
//     the population proportionally to tour quality and evaporates all
//     untouched edges.
//
// The engine is a heuristic: it produces an incumbent that improves
// probabilistically across generations and carries no optimality guarantee.
//
// Design principles (shared with the rest of the module):
//   - Deterministic: seed==0 maps to a fixed default; per-ant SplitMix64
//     streams make results independent of worker count and scheduling.
//   - No logging, no panics on user input - only sentinel errors.
//   - Lock-free hot path: the traversal/update phase separation replaces
//     per-access synchronization (see core package doc).
//   - No cancellation or timeout semantics: generations run to completion.
package aco
