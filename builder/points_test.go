package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/antour/antour/builder"
	"github.com/antour/antour/core"
)

func TestBuildGraph_FromPoints(t *testing.T) {
	pts := []builder.Point{
		{ID: "depot", X: 0, Y: 0, Weight: 0},
		{ID: "north", X: 0, Y: 5, Weight: 2},
		{ID: "east", X: 7, Y: 0, Weight: 3},
	}

	g, err := builder.BuildGraph(nil, nil, builder.FromPoints(pts))
	require.NoError(t, err)

	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount()) // complete K_3: 3 undirected pairs
	require.Equal(t, 6, g.DirectedEdgeCount())
	require.Equal(t, int64(5), g.TotalWeight())

	// Vertex order follows slice order.
	nodes := g.Nodes()
	require.Equal(t, "depot", nodes[0].ID())
	require.Equal(t, "north", nodes[1].ID())
	require.Equal(t, "east", nodes[2].ID())
	require.Equal(t, 5.0, core.Distance(nodes[0], nodes[1]))
}

func TestBuildGraph_FromPointsValidation(t *testing.T) {
	t.Run("empty slice", func(t *testing.T) {
		_, err := builder.BuildGraph(nil, nil, builder.FromPoints(nil))
		require.ErrorIs(t, err, builder.ErrTooFewPoints)
	})

	t.Run("duplicate id", func(t *testing.T) {
		pts := []builder.Point{
			{ID: "a", X: 0, Y: 0},
			{ID: "a", X: 1, Y: 1},
		}
		_, err := builder.BuildGraph(nil, nil, builder.FromPoints(pts))
		require.ErrorIs(t, err, builder.ErrDuplicatePointID)
		require.ErrorIs(t, err, core.ErrDuplicateVertex)
	})
}

func TestBuildGraph_RandomPoints(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(
			nil,
			[]builder.BuildOption{
				builder.WithSeed(7),
				builder.WithSpan(50),
				builder.WithMaxWeight(9),
			},
			builder.RandomPoints(12),
		)
		require.NoError(t, err)

		return g
	}

	g := build()
	require.Equal(t, 12, g.VertexCount())
	require.Equal(t, 12*11, g.DirectedEdgeCount())
	for _, n := range g.Nodes() {
		require.GreaterOrEqual(t, n.X(), 0.0)
		require.Less(t, n.X(), 50.0)
		require.GreaterOrEqual(t, n.Y(), 0.0)
		require.Less(t, n.Y(), 50.0)
		require.GreaterOrEqual(t, n.Weight(), int64(0))
		require.LessOrEqual(t, n.Weight(), int64(9))
	}

	// Same seed, same layout.
	other := build()
	want, got := g.Nodes(), other.Nodes()
	for i := range want {
		require.Equal(t, want[i].ID(), got[i].ID())
		require.Equal(t, want[i].X(), got[i].X())
		require.Equal(t, want[i].Y(), got[i].Y())
		require.Equal(t, want[i].Weight(), got[i].Weight())
	}
}

func TestBuildGraph_RandomPointsValidation(t *testing.T) {
	t.Run("missing rng", func(t *testing.T) {
		_, err := builder.BuildGraph(nil, nil, builder.RandomPoints(5))
		require.ErrorIs(t, err, builder.ErrNeedRandSource)
	})

	t.Run("too few points", func(t *testing.T) {
		_, err := builder.BuildGraph(nil,
			[]builder.BuildOption{builder.WithSeed(1)},
			builder.RandomPoints(0),
		)
		require.ErrorIs(t, err, builder.ErrTooFewPoints)
	})
}

func TestBuildGraph_Orchestrator(t *testing.T) {
	t.Run("nil constructor", func(t *testing.T) {
		_, err := builder.BuildGraph(nil, nil, nil)
		require.ErrorIs(t, err, builder.ErrConstructFailed)
	})

	t.Run("graph options propagate", func(t *testing.T) {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithEvaporation(0.3), core.WithBeta(4)},
			nil,
			builder.FromPoints([]builder.Point{{ID: "solo"}}),
		)
		require.NoError(t, err)
		require.Equal(t, 0.3, g.Evaporation())
		require.Equal(t, 4.0, g.Beta())
	})

	t.Run("invalid graph option surfaces", func(t *testing.T) {
		_, err := builder.BuildGraph(
			[]core.GraphOption{core.WithEvaporation(1.5)},
			nil,
			builder.FromPoints([]builder.Point{{ID: "solo"}}),
		)
		require.ErrorIs(t, err, core.ErrParameter)
	})

	t.Run("constructors compose in order", func(t *testing.T) {
		g, err := builder.BuildGraph(nil, nil,
			builder.FromPoints([]builder.Point{{ID: "a", X: 0, Y: 0}}),
			builder.FromPoints([]builder.Point{{ID: "b", X: 1, Y: 1}}),
		)
		require.NoError(t, err)
		require.Equal(t, 2, g.VertexCount())
		// Constructors connect only their own points; the two singletons
		// stay mutually unreachable.
		require.Equal(t, 0, g.DirectedEdgeCount())
	})
}

func TestBuildGraph_Ring(t *testing.T) {
	pts := []builder.Point{
		{ID: "a", X: 0, Y: 0},
		{ID: "b", X: 2, Y: 0},
		{ID: "c", X: 2, Y: 2},
		{ID: "d", X: 0, Y: 2},
	}

	g, err := builder.BuildGraph(nil, nil, builder.Ring(pts))
	require.NoError(t, err)

	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 4, g.EdgeCount()) // one undirected pair per ring segment
	for _, v := range g.Vertices() {
		require.Equal(t, 2, v.Degree())
	}

	_, err = builder.BuildGraph(nil, nil, builder.Ring(pts[:2]))
	require.ErrorIs(t, err, builder.ErrTooFewPoints)
}

func TestBuildOptions_PanicOnProgrammerError(t *testing.T) {
	require.Panics(t, func() { builder.WithIDScheme(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithSpan(0) })
	require.Panics(t, func() { builder.WithMaxWeight(-1) })
	require.Panics(t, func() { builder.WithWeightFn(nil) })
}

func TestBuildGraph_CustomIDScheme(t *testing.T) {
	g, err := builder.BuildGraph(
		nil,
		[]builder.BuildOption{
			builder.WithSeed(3),
			builder.WithIDScheme(func(i int) string { return "stop-" + string(rune('a'+i)) }),
		},
		builder.RandomPoints(3),
	)
	require.NoError(t, err)

	nodes := g.Nodes()
	require.Equal(t, "stop-a", nodes[0].ID())
	require.Equal(t, "stop-b", nodes[1].ID())
	require.Equal(t, "stop-c", nodes[2].ID())
}
