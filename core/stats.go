// Package core - aggregate graph statistics.
package core

import "math"

// GraphStats is a deterministic read-only snapshot of graph shape and
// pheromone distribution, suitable for diagnostics and tests.
type GraphStats struct {
	VertexCount       int
	EdgeCount         int // undirected pairs
	DirectedEdgeCount int
	TotalWeight       int64

	// Pheromone distribution over all directed edges.
	// Min/Max are 0 for an edgeless graph.
	PheromoneMin float64
	PheromoneMax float64
	PheromoneSum float64
}

// Stats scans the edge set once and returns a snapshot. Call it only outside
// the traversal phase (it reads pheromone values).
//
// Complexity: O(V+E).
func (g *Graph) Stats() GraphStats {
	s := GraphStats{
		VertexCount:       len(g.order),
		EdgeCount:         g.directedEdges / 2,
		DirectedEdgeCount: g.directedEdges,
		TotalWeight:       g.totalWeight,
	}
	if g.directedEdges == 0 {
		return s
	}

	s.PheromoneMin = math.Inf(1)
	s.PheromoneMax = math.Inf(-1)
	for _, v := range g.order {
		for _, e := range v.order {
			p := e.pheromone
			if p < s.PheromoneMin {
				s.PheromoneMin = p
			}
			if p > s.PheromoneMax {
				s.PheromoneMax = p
			}
			s.PheromoneSum += p
		}
	}

	return s
}
