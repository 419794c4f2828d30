package sssp

import (
	"fmt"

	"github.com/katalvlaran/gridsssp/lattice"
)

// Solve validates the inputs and dispatches to the selected solver.
//
// Validation (in order):
//  1. algo must be AlgoDijkstra or AlgoBellmanFord (ErrUnknownAlgorithm).
//  2. Options.Source must lie inside space (ErrOutOfBounds).
//  3. Every edge endpoint must lie inside space (ErrOutOfBounds).
//  4. With WithWeightCheck and AlgoDijkstra, no weight may be negative
//     (ErrNegativeWeight, wrapped with the offending edge).
//
// Solver errors are returned unchanged.
func Solve(space lattice.Space, edges []Edge, algo Algorithm, opts ...Option) (*Result, error) {
	if algo != AlgoDijkstra && algo != AlgoBellmanFord {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
	cfg := resolveOptions(opts)
	if _, err := sourceIndex(space, cfg.Source); err != nil {
		return nil, err
	}
	if err := ValidateEdges(space, edges); err != nil {
		return nil, err
	}
	if algo == AlgoDijkstra && cfg.WeightCheck {
		for i, e := range edges {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge #%d %s→%s weight=%g",
					ErrNegativeWeight, i, space.Format(e.From), space.Format(e.To), e.Weight)
			}
		}
	}

	if algo == AlgoBellmanFord {
		return BellmanFord(space, edges, opts...)
	}

	return Dijkstra(space, edges, opts...)
}
