package builder

import (
	"math/rand"
)

// BuildOption customizes a buildConfig before construction begins.
// Option constructors validate and panic on meaningless inputs; the
// constructors themselves never panic.
type BuildOption func(*buildConfig)

// WithIDScheme sets the vertex ID generator for generated points: idx -> ID.
// Panics on nil.
func WithIDScheme(fn func(int) string) BuildOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *buildConfig) {
		c.idFn = fn
	}
}

// WithSeed equips the config with a rand.Rand seeded deterministically.
// Required by RandomPoints; locks layouts for tests and examples.
func WithSeed(seed int64) BuildOption {
	return func(c *buildConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) BuildOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *buildConfig) {
		c.rng = r
	}
}

// WithSpan sets the half-open coordinate range [0, span) for random
// layouts. Panics if span <= 0.
func WithSpan(span float64) BuildOption {
	if span <= 0 {
		panic("builder: WithSpan(span<=0)")
	}
	return func(c *buildConfig) {
		c.span = span
	}
}

// WithMaxWeight bounds the demand weights generated for random layouts:
// each node draws uniformly from [0, max]. Panics if max < 0.
func WithMaxWeight(max int64) BuildOption {
	if max < 0 {
		panic("builder: WithMaxWeight(max<0)")
	}
	return func(c *buildConfig) {
		c.maxWeight = max
	}
}

// WithWeightFn overrides the demand generator entirely. The function
// receives the config's RNG (possibly nil). Panics on nil fn.
func WithWeightFn(fn func(*rand.Rand) int64) BuildOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *buildConfig) {
		c.weightFn = fn
	}
}
