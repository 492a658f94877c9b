// points.go - constructors over explicit and generated point sets.
package builder

import (
	"fmt"

	"github.com/antour/antour/core"
)

const (
	methodFromPoints   = "FromPoints"
	methodRandomPoints = "RandomPoints"
	methodRing         = "Ring"

	minPoints     = 1
	minRingPoints = 3
)

// Point is one stop on the plane: an identity, Manhattan-metric
// coordinates, and a non-negative demand weight.
type Point struct {
	ID     string
	X, Y   float64
	Weight int64
}

// FromPoints returns a Constructor that registers every point as a vertex
// in slice order and connects each ordered pair with an edge.
//
// Contract:
//   - len(pts) >= 1 (else ErrTooFewPoints).
//   - Point IDs must be unique in pts and unused in g
//     (else ErrDuplicatePointID).
//
// Complexity: O(n) vertices + O(n²) edges.
func FromPoints(pts []Point) Constructor {
	return func(g *core.Graph, _ buildConfig) error {
		if len(pts) < minPoints {
			return fmt.Errorf("%s: %d points < min=%d: %w",
				methodFromPoints, len(pts), minPoints, ErrTooFewPoints)
		}

		nodes := make([]*core.Node, len(pts))
		for i, p := range pts {
			nodes[i] = core.NewNode(p.ID, p.X, p.Y, p.Weight)
			if _, err := g.AddVertex(nodes[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w: %w",
					methodFromPoints, p.ID, ErrDuplicatePointID, err)
			}
		}

		return connectAll(g, nodes, methodFromPoints)
	}
}

// RandomPoints returns a Constructor that generates n points with
// coordinates drawn uniformly from [0, cfg.span) and demands from
// cfg.weightFn, then connects every ordered pair.
//
// Contract:
//   - n >= 1 (else ErrTooFewPoints).
//   - cfg.rng != nil (else ErrNeedRandSource); seed via WithSeed.
//   - IDs come from cfg.idFn in ascending index order, so layouts are
//     reproducible per (n, seed, options).
//
// Complexity: O(n) vertices + O(n²) edges.
func RandomPoints(n int) Constructor {
	return func(g *core.Graph, cfg buildConfig) error {
		if n < minPoints {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomPoints, n, minPoints, ErrTooFewPoints)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomPoints, ErrNeedRandSource)
		}

		nodes := make([]*core.Node, n)
		for i := range nodes {
			nodes[i] = core.NewNode(
				cfg.idFn(i),
				cfg.rng.Float64()*cfg.span,
				cfg.rng.Float64()*cfg.span,
				cfg.weightFn(cfg.rng),
			)
			if _, err := g.AddVertex(nodes[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w: %w",
					methodRandomPoints, nodes[i].ID(), ErrDuplicatePointID, err)
			}
		}

		return connectAll(g, nodes, methodRandomPoints)
	}
}

// Ring returns a Constructor that registers the points in slice order and
// connects only consecutive pairs, both directions, closing last->first.
// Useful as a sparse fixture: ants on a ring have at most two ways out of
// any stop, which exercises dead-end handling.
//
// Contract:
//   - len(pts) >= 3 (else ErrTooFewPoints).
//   - Point IDs must be unique (else ErrDuplicatePointID).
//
// Complexity: O(n) vertices + O(2n) edges.
func Ring(pts []Point) Constructor {
	return func(g *core.Graph, _ buildConfig) error {
		if len(pts) < minRingPoints {
			return fmt.Errorf("%s: %d points < min=%d: %w",
				methodRing, len(pts), minRingPoints, ErrTooFewPoints)
		}

		nodes := make([]*core.Node, len(pts))
		for i, p := range pts {
			nodes[i] = core.NewNode(p.ID, p.X, p.Y, p.Weight)
			if _, err := g.AddVertex(nodes[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w: %w",
					methodRing, p.ID, ErrDuplicatePointID, err)
			}
		}

		for i := range nodes {
			from, to := nodes[i], nodes[(i+1)%len(nodes)]
			if _, err := g.AddEdge(from, to); err != nil {
				return fmt.Errorf("%s: AddEdge(%s->%s): %w", methodRing, from.ID(), to.ID(), err)
			}
			if _, err := g.AddEdge(to, from); err != nil {
				return fmt.Errorf("%s: AddEdge(%s->%s): %w", methodRing, to.ID(), from.ID(), err)
			}
		}

		return nil
	}
}

// connectAll wires every ordered pair of nodes, stable order: for each i
// asc, j asc, skipping i==j.
func connectAll(g *core.Graph, nodes []*core.Node, method string) error {
	for i, from := range nodes {
		for j, to := range nodes {
			if i == j {
				continue
			}
			if _, err := g.AddEdge(from, to); err != nil {
				return fmt.Errorf("%s: AddEdge(%s->%s): %w", method, from.ID(), to.ID(), err)
			}
		}
	}

	return nil
}
