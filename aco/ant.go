// Package aco - the agent traversal policy.
//
// An Ant is a transient per-generation tour builder. It walks the graph one
// step at a time, choosing the next node by roulette-wheel sampling over
//
//	weight(e) = pheromone(e)^alpha × (1 / (distance(e)+1))^beta
//
// across all outgoing edges to unvisited nodes. Sampling - not argmax - is
// what lets the population escape local optima across generations.
//
// Dead ends (every neighbor visited, tour not complete) fall back to a
// heuristic-only draw over unvisited nodes already adjacent to the visited
// set. On a connected graph that set is never empty until the tour is done;
// on a disconnected one it runs dry and the ant reports ErrIncompleteTour.
//
// Contracts:
//   - Ants hold a non-owning reference to a Graph owned by the Colony; they
//     never mutate it and are discarded before the next update phase.
//   - One ant per RNG stream; an Ant is not safe for concurrent use.
package aco

import (
	"math"
	"math/rand"

	"github.com/antour/antour/core"
)

// Ant builds one tour and evaluates its load-penalized cost.
// Lifecycle: created seated on a random start node (traveling), finished once
// every node has been visited exactly once, then consumed by the update rule.
type Ant struct {
	graph       *core.Graph
	rng         *rand.Rand
	alpha, beta float64

	visited  []bool // by node ordinal
	adjacent []bool // unvisited frontier reachable via edges from the visited set
	tour     []*core.Node
	cur      *core.Vertex
	cost     float64
	carried  int64

	// Scratch buffers for roulette draws, sized once to the vertex count so
	// the selection loop never allocates.
	candEdges []*core.Edge
	candNodes []*core.Node
	weights   []float64
}

// NewAnt creates an ant seated on a start node drawn from rng.
// The graph must contain at least one vertex.
func NewAnt(g *core.Graph, rng *rand.Rand) *Ant {
	n := g.VertexCount()
	a := &Ant{
		graph:     g,
		rng:       rng,
		alpha:     g.Alpha(),
		beta:      g.Beta(),
		visited:   make([]bool, n),
		adjacent:  make([]bool, n),
		tour:      make([]*core.Node, 0, n),
		candEdges: make([]*core.Edge, n),
		candNodes: make([]*core.Node, n),
		weights:   make([]float64, n),
	}
	a.seat(g.VertexAt(rng.Intn(n)))

	return a
}

// Finished reports whether the tour covers every node.
func (a *Ant) Finished() bool { return len(a.tour) == a.graph.VertexCount() }

// Step advances the tour by one node. A no-op on a finished ant.
// Returns ErrIncompleteTour when no unvisited node is reachable.
func (a *Ant) Step() error {
	if a.Finished() {
		return nil
	}

	if next, ok := a.nextByEdge(); ok {
		a.move(next)
		return nil
	}

	// Dead end: every neighbor of the current node is visited.
	next, ok := a.nextByFallback()
	if !ok {
		return ErrIncompleteTour
	}
	a.move(next)

	return nil
}

// Run drives the ant to completion.
func (a *Ant) Run() error {
	for !a.Finished() {
		if err := a.Step(); err != nil {
			return err
		}
	}

	return nil
}

// Cost returns the accumulated load-penalized cost of the tour so far.
// For a finished ant this is the full open-path evaluation: the sum of
// RequiredEnergy over consecutive steps, with no forced return edge.
func (a *Ant) Cost() float64 { return a.cost }

// Tour returns a copy of the visitation sequence built so far.
func (a *Ant) Tour() []*core.Node {
	out := make([]*core.Node, len(a.tour))
	copy(out, a.tour)

	return out
}

// Carried returns the demand weight accumulated along the tour so far,
// including the start node's weight.
func (a *Ant) Carried() int64 { return a.carried }

// nextByEdge draws the next node among outgoing edges to unvisited nodes,
// weighted by pheromone^alpha × (1/(distance+1))^beta. The +1 in the
// heuristic guards against coincident coordinates (distance 0).
func (a *Ant) nextByEdge() (*core.Node, bool) {
	from := a.cur.Node()

	k := 0
	total := 0.0
	for _, e := range a.cur.Edges() {
		to := e.To()
		if a.visited[to.Ordinal()] {
			continue
		}
		w := fastPow(e.Pheromone(), a.alpha) * fastPow(1.0/(core.Distance(from, to)+1.0), a.beta)
		a.candEdges[k] = e
		a.weights[k] = w
		total += w
		k++
	}
	if k == 0 {
		return nil, false
	}

	return a.candEdges[a.roulette(k, total)].To(), true
}

// nextByFallback draws among unvisited nodes on the visited set's edge
// frontier, using the heuristic term only (no edge, hence no pheromone).
func (a *Ant) nextByFallback() (*core.Node, bool) {
	from := a.cur.Node()

	k := 0
	total := 0.0
	for ord := range a.adjacent {
		if !a.adjacent[ord] || a.visited[ord] {
			continue
		}
		to := a.graph.VertexAt(ord).Node()
		w := fastPow(1.0/(core.Distance(from, to)+1.0), a.beta)
		a.candNodes[k] = to
		a.weights[k] = w
		total += w
		k++
	}
	if k == 0 {
		return nil, false
	}

	return a.candNodes[a.roulette(k, total)], true
}

// roulette samples an index in [0,k) proportionally to a.weights[:k].
// A degenerate all-zero wheel (e.g. zero pheromone with alpha > 0) falls back
// to a uniform draw so the tour still progresses deterministically under the
// ant's stream.
func (a *Ant) roulette(k int, total float64) int {
	if total <= 0 || math.IsInf(total, 0) || math.IsNaN(total) {
		return a.rng.Intn(k)
	}

	r := a.rng.Float64() * total
	acc := 0.0
	for i := 0; i < k; i++ {
		acc += a.weights[i]
		if r < acc {
			return i
		}
	}

	// FP residue can leave r marginally above the final accumulator.
	return k - 1
}

// move advances the accumulators and seats the ant on next.
// Cost uses the load carried *before* picking up next's weight.
func (a *Ant) move(next *core.Node) {
	a.cost += core.RequiredEnergy(a.cur.Node(), next, a.carried)
	a.seat(a.graph.VertexAt(next.Ordinal()))
}

// seat marks v visited, records it in the tour, absorbs its weight and
// extends the reachable frontier with its neighbors.
func (a *Ant) seat(v *core.Vertex) {
	n := v.Node()
	a.visited[n.Ordinal()] = true
	a.tour = append(a.tour, n)
	a.carried += n.Weight()
	a.cur = v

	for _, e := range v.Edges() {
		a.adjacent[e.To().Ordinal()] = true
	}
}

// fastPow shortcuts the small integer exponents that dominate alpha/beta
// usage; anything else goes through math.Pow. Selection weights are computed
// once per candidate edge per step, so this sits on the hottest loop.
func fastPow(base, exp float64) float64 {
	switch exp {
	case 0:
		return 1
	case 0.5:
		return math.Sqrt(base)
	case 1:
		return base
	case 2:
		return base * base
	case 3:
		return base * base * base
	case 4:
		return base * base * base * base
	default:
		return math.Pow(base, exp)
	}
}
