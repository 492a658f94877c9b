// Package core - graph mutation and query methods.
//
// Topology mutation (AddVertex/AddEdge) happens in the single-threaded import
// phase; every query here is safe for concurrent use once import is done.
package core

// AddVertex registers a node and returns its new Vertex. The node's weight is
// accumulated into the graph total and the node is bound to the next dense
// insertion ordinal.
//
// Returns ErrDuplicateVertex when a vertex for this node ID already exists;
// registration never silently overwrites.
//
// Complexity: O(1).
func (g *Graph) AddVertex(n *Node) (*Vertex, error) {
	if _, exists := g.vertices[n.id]; exists {
		return nil, ErrDuplicateVertex
	}

	n.ord = len(g.order)
	v := &Vertex{
		node:  n,
		edges: make(map[int]*Edge),
	}
	g.vertices[n.id] = v
	g.order = append(g.order, v)
	g.totalWeight += n.weight

	return v, nil
}

// AddEdge appends a directed edge from → to, seeded with the graph's initial
// pheromone, and increments the directed-edge counter. The graph does not
// infer the reverse edge: callers wanting an undirected topology register
// both directions (builder.FromPoints does exactly that).
//
// Returns ErrVertexNotFound when either endpoint is unregistered and
// ErrDuplicateEdge when a from → to edge already exists.
//
// Complexity: O(1).
func (g *Graph) AddEdge(from, to *Node) (*Edge, error) {
	src, ok := g.vertices[from.id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	dst, ok := g.vertices[to.id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	// Canonicalize through the registered nodes so an equal-ID clone passed
	// by the caller cannot smuggle in a stale ordinal.
	from, to = src.node, dst.node
	if _, ok = src.edges[to.ord]; ok {
		return nil, ErrDuplicateEdge
	}

	e := &Edge{from: from, to: to, pheromone: g.initialPheromone}
	src.edges[to.ord] = e
	src.order = append(src.order, e)
	g.directedEdges++

	return e, nil
}

// VertexOf returns the Vertex wrapping the given node.
// Returns ErrVertexNotFound for nodes never registered.
//
// Complexity: O(1).
func (g *Graph) VertexOf(n *Node) (*Vertex, error) {
	v, ok := g.vertices[n.id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// VertexAt returns the vertex with the given insertion ordinal.
// The ordinal must be in [0, VertexCount). Used by hot paths that index the
// vertex set without allocating.
func (g *Graph) VertexAt(ord int) *Vertex { return g.order[ord] }

// Nodes returns all nodes as a freshly allocated slice in insertion order.
// Used for seeding export and for selecting agent start positions.
//
// Complexity: O(V).
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.order))
	for i, v := range g.order {
		out[i] = v.node
	}

	return out
}

// Vertices returns all vertices as a freshly allocated slice in insertion
// order.
//
// Complexity: O(V).
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of registered vertices.
func (g *Graph) VertexCount() int { return len(g.order) }

// EdgeCount returns the number of undirected edges, i.e. the directed edge
// count divided by two. With a one-directional topology the division still
// reports logical pair count, matching the paired-edge invariant.
func (g *Graph) EdgeCount() int { return g.directedEdges / 2 }

// DirectedEdgeCount returns the raw number of directed Edge records.
func (g *Graph) DirectedEdgeCount() int { return g.directedEdges }

// TotalWeight returns the accumulated demand weight across all nodes.
func (g *Graph) TotalWeight() int64 { return g.totalWeight }

// Evaporation returns the per-generation evaporation rate in [0,1].
func (g *Graph) Evaporation() float64 { return g.evaporation }

// Alpha returns the pheromone exponent.
func (g *Graph) Alpha() float64 { return g.alpha }

// Beta returns the heuristic exponent.
func (g *Graph) Beta() float64 { return g.beta }

// InitialPheromone returns the trail value assigned to new edges.
func (g *Graph) InitialPheromone() float64 { return g.initialPheromone }
