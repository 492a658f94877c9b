package builder

import (
	"math/rand"
	"strconv"
)

// Deterministic defaults.
const (
	defaultSpan      = 100.0 // random layouts draw coordinates from [0, span)
	defaultMaxWeight = int64(0)
)

// buildConfig aggregates all constructor knobs. It is passed by value to
// constructors, so callers cannot mutate it mid-build.
type buildConfig struct {
	// Vertex ID strategy for generated points: index -> ID.
	idFn func(int) string
	// RNG for stochastic layouts; nil means no randomness available.
	rng *rand.Rand
	// Node demand generator for random layouts. Receives cfg.rng.
	weightFn func(*rand.Rand) int64

	// Coordinate span for random layouts: x,y drawn from [0, span).
	span float64
	// Upper bound for generated demand weights; 0 means all demands are 0.
	maxWeight int64
}

// newBuildConfig applies opts in order over deterministic defaults;
// later options override earlier ones.
func newBuildConfig(opts ...BuildOption) buildConfig {
	cfg := buildConfig{
		idFn:      decimalID,
		rng:       nil,
		span:      defaultSpan,
		maxWeight: defaultMaxWeight,
	}
	cfg.weightFn = func(r *rand.Rand) int64 {
		if cfg.maxWeight <= 0 || r == nil {
			return 0
		}
		return r.Int63n(cfg.maxWeight + 1)
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
func decimalID(i int) string {
	return strconv.Itoa(i)
}
