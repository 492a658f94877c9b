// Package aco - options, results and sentinel errors.
package aco

import (
	"errors"

	"github.com/antour/antour/core"
)

// Sentinel errors surfaced by the engine. All are fatal to the current run:
// nothing is retried internally and no degraded result is substituted.
var (
	// ErrInvalidConfiguration indicates non-positive ants/generations/workers
	// or a nil graph. Returned by New before any work starts.
	ErrInvalidConfiguration = errors.New("aco: invalid configuration")

	// ErrIncompleteTour indicates an ant could not visit every node: the
	// graph is empty, or disconnected so that no unvisited node is reachable
	// from the visited set. A failed generation invalidates the whole run's
	// incumbent rather than being skipped.
	ErrIncompleteTour = errors.New("aco: tour cannot cover every node")
)

// Default configuration applied by DefaultOptions.
const (
	DefaultAnts        = 20
	DefaultGenerations = 100
	DefaultWorkers     = 4
)

// Options configures a Colony run. The pheromone parameters (evaporation,
// alpha, beta) belong to the Graph and are fixed at its construction.
type Options struct {
	// Ants is the population size per generation. Must be positive.
	Ants int

	// Generations is the number of iterations to run. Must be positive.
	Generations int

	// Workers is the traversal parallelism degree, independent of the
	// population size. Must be positive; 1 yields fully sequential traversal.
	Workers int

	// Seed drives all randomness. 0 selects a fixed default seed, so the
	// zero value is still fully reproducible.
	Seed int64

	// OnGeneration, when non-nil, is invoked after each generation's barrier
	// and pheromone update with the generation index, the incumbent tour and
	// its cost. The slice is owned by the engine: treat it as read-only.
	OnGeneration func(generation int, incumbent []*core.Node, cost float64)
}

// DefaultOptions returns a reproducible baseline configuration.
func DefaultOptions() Options {
	return Options{
		Ants:        DefaultAnts,
		Generations: DefaultGenerations,
		Workers:     DefaultWorkers,
	}
}

// Result holds the outcome of a completed run.
type Result struct {
	// BestTour is the incumbent: the cheapest complete tour seen across all
	// generations, as an ordered node sequence (open path, no return edge).
	BestTour []*core.Node

	// BestCost is the incumbent's load-penalized cost.
	BestCost float64

	// BestAtGeneration is the generation index that produced the incumbent.
	BestAtGeneration int

	// GenerationBest records each generation's cheapest tour cost, useful
	// for convergence inspection and reporting.
	GenerationBest []float64
}
