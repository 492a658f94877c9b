// Package aco - the generation orchestrator.
package aco

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/antour/antour/core"
)

// Colony runs the full optimization loop over a prepared graph.
// Construct with New, then call Run once; a Colony is single-use because
// Run mutates the graph's pheromone state generation by generation.
type Colony struct {
	graph  *core.Graph
	opts   Options
	seed   int64
	stream uint64 // next RNG stream ordinal, monotone across generations
}

// New validates the configuration and binds a Colony to g.
// Returns ErrInvalidConfiguration when the options cannot run.
func New(g *core.Graph, opts Options) (*Colony, error) {
	if err := validateOptions(g, opts); err != nil {
		return nil, err
	}

	return &Colony{
		graph: g,
		opts:  opts,
		seed:  effectiveSeed(opts.Seed),
	}, nil
}

// Run executes opts.Generations generations of opts.Ants ants each and
// returns the best tour ever observed together with its cost.
//
// Per generation:
//  1. spawn the population, each ant on its own derived RNG stream;
//  2. fan the population out over opts.Workers goroutines in contiguous
//     slices and walk every ant to completion - the graph is read-only
//     during this phase, so no locking is needed;
//  3. join: wait for every worker before touching any shared state;
//  4. reduce the generation best in ant-index order, fold it into the
//     incumbent on strict improvement only;
//  5. apply the pheromone update single-threaded.
//
// Ant-to-stream assignment depends only on (seed, generation, ant index),
// never on worker scheduling, so a fixed seed reproduces the exact same
// Result for any worker count.
//
// Returns ErrIncompleteTour when the graph is empty or some ant strands on
// an unreachable component; pheromone state is left as of the last completed
// generation.
func (c *Colony) Run() (Result, error) {
	if c.graph.VertexCount() == 0 {
		return Result{}, ErrIncompleteTour
	}

	res := Result{
		BestCost:         math.Inf(1),
		BestAtGeneration: -1,
		GenerationBest:   make([]float64, c.opts.Generations),
	}

	ants := make([]*Ant, c.opts.Ants)
	for gen := 0; gen < c.opts.Generations; gen++ {
		for i := range ants {
			ants[i] = NewAnt(c.graph, streamRNG(c.seed, c.stream))
			c.stream++
		}

		// Traversal phase: lock-free fan-out, mandatory join.
		var grp errgroup.Group
		for w := 0; w < c.opts.Workers; w++ {
			lo, hi := chunkBounds(len(ants), c.opts.Workers, w)
			if lo == hi {
				continue
			}
			part := ants[lo:hi]
			grp.Go(func() error {
				for _, a := range part {
					if err := a.Run(); err != nil {
						return err
					}
				}
				return nil
			})
		}
		if err := grp.Wait(); err != nil {
			return Result{}, err
		}

		// Update phase: single goroutine owns the graph again.
		best := ants[0]
		for _, a := range ants[1:] {
			if a.Cost() < best.Cost() {
				best = a
			}
		}
		res.GenerationBest[gen] = best.Cost()
		if best.Cost() < res.BestCost {
			res.BestCost = best.Cost()
			res.BestTour = best.Tour()
			res.BestAtGeneration = gen
		}

		UpdatePheromones(c.graph, ants)

		if c.opts.OnGeneration != nil {
			c.opts.OnGeneration(gen, res.BestTour, res.BestCost)
		}
	}

	return res, nil
}

// chunkBounds returns the half-open slice [lo, hi) of part i when total
// items are split over parts contiguous chunks, sizes differing by at most
// one. Parts beyond total come back empty.
func chunkBounds(total, parts, i int) (lo, hi int) {
	base := total / parts
	rem := total % parts

	lo = i*base + min(i, rem)
	hi = lo + base
	if i < rem {
		hi++
	}

	return lo, hi
}
