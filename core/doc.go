// Package core defines the central Node, Edge, Vertex and Graph types of the
// antour engine, together with the distance and energy model that every
// traversal policy shares.
//
// A Graph is built once during an import phase and is topologically immutable
// afterwards: only the per-edge pheromone value may change. The package is
// deliberately lock-free; safe concurrent use relies on a phase-based access
// contract instead of per-access locking:
//
//   - Traversal phase: any number of goroutines may read topology and
//     pheromone values concurrently. Nothing is mutated.
//   - Update phase: exactly one goroutine mutates pheromone values. No
//     traversal may be in flight.
//
// The aco package enforces the phase boundary with an explicit join barrier
// between generations; see aco/colony.go.
//
// Iteration order is deterministic everywhere: vertices are exposed in
// insertion order, and each Vertex iterates its outgoing edges in the order
// they were added. Go map ordering never leaks into results.
//
// Errors:
//
//	ErrDuplicateVertex - a node with the same ID is already registered.
//	ErrVertexNotFound  - an operation referenced an unregistered node.
//	ErrDuplicateEdge   - a directed edge between the pair already exists.
//	ErrParameter       - a construction parameter is out of range.
package core
