package builder_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/antour/antour/builder"
)

const pointFile = `
# courier stops, one per line: id x y [weight]
depot   0   0   0
north   0   12  4

east    9.5 0   2
light   3   3
`

func TestLoadPoints(t *testing.T) {
	pts, err := builder.LoadPoints(strings.NewReader(pointFile))
	require.NoError(t, err)
	require.Len(t, pts, 4)

	require.Equal(t, builder.Point{ID: "depot", X: 0, Y: 0, Weight: 0}, pts[0])
	require.Equal(t, builder.Point{ID: "north", X: 0, Y: 12, Weight: 4}, pts[1])
	require.Equal(t, builder.Point{ID: "east", X: 9.5, Y: 0, Weight: 2}, pts[2])
	// Bare three-field record: weight defaults to 0.
	require.Equal(t, builder.Point{ID: "light", X: 3, Y: 3, Weight: 0}, pts[3])
}

func TestLoadPoints_BadRecords(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"too few fields", "a 1\n"},
		{"too many fields", "a 1 2 3 4\n"},
		{"bad x", "a one 2 3\n"},
		{"bad y", "a 1 two 3\n"},
		{"bad weight", "a 1 2 heavy\n"},
		{"negative weight", "a 1 2 -3\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.LoadPoints(strings.NewReader(tc.in))
			require.ErrorIs(t, err, builder.ErrBadRecord)
		})
	}
}

func TestLoadPoints_Empty(t *testing.T) {
	pts, err := builder.LoadPoints(strings.NewReader("# only comments\n\n"))
	require.NoError(t, err)
	require.Empty(t, pts)
}

func TestFromReader(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.FromReader(strings.NewReader(pointFile)))
	require.NoError(t, err)

	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 4*3, g.DirectedEdgeCount())
	require.Equal(t, int64(6), g.TotalWeight())
}

func TestFromReader_ParseErrorSurfaces(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.FromReader(strings.NewReader("broken line\n")))
	require.ErrorIs(t, err, builder.ErrBadRecord)
}

func TestFromReader_EmptyFileIsTooFew(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.FromReader(strings.NewReader("")))
	require.ErrorIs(t, err, builder.ErrTooFewPoints)
}
