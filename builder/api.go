// api.go - the single public entry-point plus the Constructor contract.
package builder

import (
	"fmt"

	"github.com/antour/antour/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// buildConfig. Constructors must validate parameters early, return only
// sentinel errors, and preserve determinism for the same config and call
// order.
type Constructor func(g *core.Graph, cfg buildConfig) error

// BuildGraph creates a core.Graph with gopts, resolves the build
// configuration from bopts, and applies all constructors in order.
// The first constructor error is wrapped with "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity: O(len(bopts)) resolution plus the sum of constructor costs.
func BuildGraph(gopts []core.GraphOption, bopts []BuildOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuildConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
