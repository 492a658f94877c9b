// Package core - type declarations, sentinel errors and graph options.
//
// This file declares Node, Edge, Vertex, Graph, GraphOption, the sentinel
// errors, and the NewGraph constructor. Behavior lives in graph.go and
// distance.go.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateVertex indicates AddVertex was called twice for the same node ID.
	// Registration never silently overwrites.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrVertexNotFound indicates an operation referenced a node that was
	// never registered with the graph. Since all nodes handed to agents
	// originate from the graph itself, callers should treat this as a
	// programming error, not a recoverable condition.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicateEdge indicates a second directed edge between the same
	// ordered node pair. The model keeps exactly one edge per direction.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrParameter indicates a construction parameter outside its domain
	// (evaporation rate ∉ [0,1], negative initial pheromone).
	ErrParameter = errors.New("core: parameter out of range")
)

// Default construction parameters applied by NewGraph before options run.
const (
	// DefaultEvaporation is the fraction of pheromone lost per generation on
	// edges that received no reinforcement.
	DefaultEvaporation = 0.5

	// DefaultAlpha is the pheromone exponent in edge-selection weights.
	DefaultAlpha = 1.0

	// DefaultBeta is the heuristic (inverse distance) exponent.
	DefaultBeta = 2.0

	// DefaultInitialPheromone seeds every new edge with a uniform positive
	// trail so first-generation selection is purely distance-driven.
	DefaultInitialPheromone = 1.0
)

// Node is an identity with 2D coordinates and a demand weight.
// Immutable after creation; equality is by ID, never by coordinates, so two
// nodes at the same point remain distinct.
//
// A Node belongs to at most one Graph: AddVertex binds it to a dense
// insertion ordinal used for O(1) visited bitmaps.
type Node struct {
	id     string
	x, y   float64
	weight int64
	ord    int // dense insertion index, assigned by Graph.AddVertex
}

// NewNode constructs an unbound Node. The ID must be unique within the graph
// it is later registered with; uniqueness is enforced by AddVertex.
func NewNode(id string, x, y float64, weight int64) *Node {
	return &Node{id: id, x: x, y: y, weight: weight, ord: -1}
}

// ID returns the node's identity.
func (n *Node) ID() string { return n.id }

// X returns the node's x coordinate.
func (n *Node) X() float64 { return n.x }

// Y returns the node's y coordinate.
func (n *Node) Y() float64 { return n.y }

// Weight returns the demand weight carried once the node is visited.
func (n *Node) Weight() int64 { return n.weight }

// Ordinal returns the dense insertion index assigned by AddVertex,
// or -1 for a node not yet registered with a graph.
func (n *Node) Ordinal() int { return n.ord }

// Edge is a directed link carrying a mutable pheromone value.
// Topology (from/to) is immutable; only the pheromone changes, and only
// during the exclusive update phase (see package doc).
type Edge struct {
	from, to  *Node
	pheromone float64
}

// From returns the source node.
func (e *Edge) From() *Node { return e.from }

// To returns the destination node.
func (e *Edge) To() *Node { return e.to }

// Pheromone returns the current trail value. Safe for concurrent reads
// during the traversal phase.
func (e *Edge) Pheromone() float64 { return e.pheromone }

// SetPheromone stores a new trail value. Must only be called during the
// exclusive update phase; the update rule keeps values non-negative.
func (e *Edge) SetPheromone(p float64) { e.pheromone = p }

// Vertex wraps a Node and owns its outgoing edges. Edges are stored both in
// an ordinal-keyed map for O(1) lookup between two known nodes and in an
// insertion-ordered slice for deterministic iteration.
type Vertex struct {
	node  *Node
	edges map[int]*Edge // destination ordinal → edge
	order []*Edge       // insertion order
}

// Node returns the wrapped node.
func (v *Vertex) Node() *Node { return v.node }

// Edge returns the outgoing edge to the given destination node, or false
// when no such edge exists.
//
// Complexity: O(1).
func (v *Vertex) Edge(to *Node) (*Edge, bool) {
	e, ok := v.edges[to.ord]
	return e, ok
}

// Edges returns the outgoing edges in insertion order. The returned slice is
// the vertex's own storage: callers must treat it as read-only. Used on the
// hot selection path, where a defensive copy per step would dominate cost.
func (v *Vertex) Edges() []*Edge { return v.order }

// Degree returns the number of outgoing edges.
func (v *Vertex) Degree() int { return len(v.order) }

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithEvaporation sets the per-generation evaporation rate, valid in [0,1].
func WithEvaporation(rate float64) GraphOption {
	return func(g *Graph) { g.evaporation = rate }
}

// WithAlpha sets the pheromone exponent used in edge-selection weights.
func WithAlpha(alpha float64) GraphOption {
	return func(g *Graph) { g.alpha = alpha }
}

// WithBeta sets the heuristic (inverse distance) exponent.
func WithBeta(beta float64) GraphOption {
	return func(g *Graph) { g.beta = beta }
}

// WithInitialPheromone sets the trail value assigned to every new edge.
// Must be non-negative.
func WithInitialPheromone(p float64) GraphOption {
	return func(g *Graph) { g.initialPheromone = p }
}

// Graph owns the full vertex set, exposed both as an O(1) lookup and as an
// insertion-ordered sequence, plus the tuning parameters fixed at
// construction. See the package doc for the concurrent access contract.
type Graph struct {
	vertices map[string]*Vertex // node ID → vertex
	order    []*Vertex          // insertion order; index == node ordinal

	directedEdges int   // raw directed edge count (undirected pairs count twice)
	totalWeight   int64 // sum of node weights

	evaporation      float64
	alpha, beta      float64
	initialPheromone float64
}

// NewGraph creates an empty Graph with the given options.
// Defaults: evaporation 0.5, alpha 1, beta 2, initial pheromone 1.
// Returns ErrParameter when evaporation ∉ [0,1] or initial pheromone < 0.
//
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) (*Graph, error) {
	g := &Graph{
		vertices:         make(map[string]*Vertex),
		evaporation:      DefaultEvaporation,
		alpha:            DefaultAlpha,
		beta:             DefaultBeta,
		initialPheromone: DefaultInitialPheromone,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.evaporation < 0 || g.evaporation > 1 {
		return nil, ErrParameter
	}
	if g.initialPheromone < 0 {
		return nil, ErrParameter
	}

	return g, nil
}
