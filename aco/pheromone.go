// Package aco - the pheromone update rule.
package aco

import (
	"github.com/antour/antour/core"
)

// UpdatePheromones applies one generation's pheromone transition for the
// given ant population. It must run single-threaded, strictly after every
// ant has finished - the Colony's join barrier guarantees that ordering.
//
// Two-pass rule with evaporation rate r = g.Evaporation():
//
//	crossed edge:   p' = (1-r)·p + 1/cost      (per crossing, in place)
//	untouched edge: p' = (1-r)·p
//
// Both directions of an undirected pair receive the deposit, so the pair
// stays synchronized. When several ants cross the same edge, each crossing
// applies the full formula to the value left by the previous one: a later
// ant re-evaporates the pheromone an earlier ant just deposited. The
// touched set only decides which edges pass 2 still has to evaporate.
//
// Tour legs produced by the dead-end fallback have no physical edge and
// contribute nothing. Ants with a non-positive cost (single-node graphs)
// deposit nothing.
func UpdatePheromones(g *core.Graph, ants []*Ant) {
	decay := 1.0 - g.Evaporation()
	touched := make(map[*core.Edge]struct{}, g.DirectedEdgeCount())

	deposit := func(e *core.Edge, amount float64) {
		e.SetPheromone(e.Pheromone()*decay + amount)
		touched[e] = struct{}{}
	}

	for _, a := range ants {
		if !a.Finished() || a.Cost() <= 0 {
			continue
		}
		amount := 1.0 / a.Cost()

		tour := a.Tour()
		for i := 1; i < len(tour); i++ {
			fwd, ok := g.VertexAt(tour[i-1].Ordinal()).Edge(tour[i])
			if !ok {
				// Fallback jump: no edge was crossed.
				continue
			}
			deposit(fwd, amount)
			if rev, ok := g.VertexAt(tour[i].Ordinal()).Edge(tour[i-1]); ok {
				deposit(rev, amount)
			}
		}
	}

	// Evaporate everything the population never crossed.
	for _, v := range g.Vertices() {
		for _, e := range v.Edges() {
			if _, seen := touched[e]; seen {
				continue
			}
			e.SetPheromone(e.Pheromone() * decay)
		}
	}
}
