package aco

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEffectiveSeed(t *testing.T) {
	require.Equal(t, defaultSeed, effectiveSeed(0))
	require.Equal(t, int64(7), effectiveSeed(7))
	require.Equal(t, int64(-3), effectiveSeed(-3))
}

func TestMixSeed_DistinctStreams(t *testing.T) {
	seen := make(map[int64]uint64)
	for stream := uint64(0); stream < 4096; stream++ {
		s := mixSeed(1, stream)
		prev, dup := seen[s]
		require.False(t, dup, "streams %d and %d collide", prev, stream)
		seen[s] = stream
	}
}

func TestStreamRNG_Reproducible(t *testing.T) {
	a := streamRNG(42, 3)
	b := streamRNG(42, 3)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Int63(), b.Int63())
	}
}

func TestChunkBounds(t *testing.T) {
	cases := []struct {
		total, parts int
	}{
		{20, 4}, {21, 4}, {3, 16}, {1, 1}, {7, 3}, {0, 5},
	}
	for _, tc := range cases {
		covered := 0
		prevHi := 0
		for i := 0; i < tc.parts; i++ {
			lo, hi := chunkBounds(tc.total, tc.parts, i)
			require.Equal(t, prevHi, lo, "total=%d parts=%d i=%d", tc.total, tc.parts, i)
			require.GreaterOrEqual(t, hi, lo)
			require.LessOrEqual(t, hi-lo-tc.total/tc.parts, 1, "chunk sizes differ by more than one")
			covered += hi - lo
			prevHi = hi
		}
		require.Equal(t, tc.total, covered)
	}
}

func TestFastPow_AgreesWithMathPow(t *testing.T) {
	for _, base := range []float64{0.25, 1, 1.7, 9} {
		for _, exp := range []float64{0, 0.5, 1, 2, 3, 4, 2.5} {
			require.InDelta(t, math.Pow(base, exp), fastPow(base, exp), 1e-12,
				"base=%v exp=%v", base, exp)
		}
	}
	require.Equal(t, 1.0, fastPow(0, 0))
	require.Zero(t, fastPow(0, 2))
}
