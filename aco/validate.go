package aco

import (
	"fmt"

	"github.com/antour/antour/core"
)

// validateOptions rejects solver configurations that cannot run.
// Every failure wraps ErrInvalidConfiguration for errors.Is matching.
func validateOptions(g *core.Graph, opts Options) error {
	switch {
	case g == nil:
		return fmt.Errorf("%w: graph must not be nil", ErrInvalidConfiguration)
	case opts.Ants <= 0:
		return fmt.Errorf("%w: ants must be positive, got %d", ErrInvalidConfiguration, opts.Ants)
	case opts.Generations <= 0:
		return fmt.Errorf("%w: generations must be positive, got %d", ErrInvalidConfiguration, opts.Generations)
	case opts.Workers <= 0:
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfiguration, opts.Workers)
	}

	return nil
}
