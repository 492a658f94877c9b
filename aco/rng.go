// Package aco - deterministic RNG utilities.
//
// All randomness in the engine flows through per-ant streams derived here.
// Goals:
//   - Same seed ⇒ identical runs across platforms AND across worker counts
//     (each ant owns its stream, so scheduling cannot reorder draws).
//   - math/rand.Rand is not goroutine-safe; one Rand per ant removes sharing.
//   - No time-based sources anywhere.
package aco

import "math/rand"

// defaultSeed replaces a caller-provided seed of 0. Arbitrary but stable.
const defaultSeed int64 = 1

// effectiveSeed applies the seed==0 policy.
func effectiveSeed(seed int64) int64 {
	if seed == 0 {
		return defaultSeed
	}

	return seed
}

// mixSeed folds a parent seed and a stream identifier into a new 64-bit seed
// using the SplitMix64 finalizer (Vigna 2014). The avalanche mix guarantees
// that consecutive stream ids yield uncorrelated substreams.
func mixSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// streamRNG returns the deterministic RNG for the given stream id under the
// given caller seed. Called once per ant at population build time, never in
// hot loops.
func streamRNG(seed int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(mixSeed(effectiveSeed(seed), stream)))
}
