package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/antour/antour/core"
)

func TestDistance_Manhattan(t *testing.T) {
	cases := []struct {
		name string
		a, b *core.Node
		want float64
	}{
		{"axis aligned", core.NewNode("a", 0, 0, 0), core.NewNode("b", 3, 0, 0), 3},
		{"diagonal", core.NewNode("a", 0, 0, 0), core.NewNode("b", 1, 1, 0), 2},
		{"negative quadrant", core.NewNode("a", -2, -3, 0), core.NewNode("b", 1, 1, 0), 7},
		{"coincident", core.NewNode("a", 5, 5, 0), core.NewNode("b", 5, 5, 0), 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, core.Distance(tc.a, tc.b))
			require.Equal(t, tc.want, core.Distance(tc.b, tc.a), "Manhattan distance is symmetric")
		})
	}
}

func TestRequiredEnergy_LoadPenalty(t *testing.T) {
	a := core.NewNode("a", 0, 0, 0)
	b := core.NewNode("b", 2, 1, 0) // distance 3

	// Unloaded traversal still costs (0+1)*distance.
	require.Equal(t, 3.0, core.RequiredEnergy(a, b, 0))

	// Accumulated load scales the same edge linearly.
	require.Equal(t, 12.0, core.RequiredEnergy(a, b, 3))
	require.Equal(t, 33.0, core.RequiredEnergy(a, b, 10))
}
