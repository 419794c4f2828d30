package sssp

import (
	"fmt"

	"github.com/katalvlaran/gridsssp/lattice"
)

// Edge is a directed weighted edge between two lattice coordinates.
// Parallel edges are allowed and all of them are considered.
type Edge struct {
	From, To lattice.Coord
	Weight   float64
}

// E2 is shorthand for a 2D edge (x1,y1)→(x2,y2).
func E2(x1, y1, x2, y2 int, w float64) Edge {
	return Edge{From: lattice.C2(x1, y1), To: lattice.C2(x2, y2), Weight: w}
}

// E3 is shorthand for a 3D edge (x1,y1,z1)→(x2,y2,z2).
func E3(x1, y1, z1, x2, y2, z2 int, w float64) Edge {
	return Edge{From: lattice.C3(x1, y1, z1), To: lattice.C3(x2, y2, z2), Weight: w}
}

// denseEdge is an Edge with both endpoints resolved to table indices.
type denseEdge struct {
	from, to int
	w        float64
}

// compileEdges resolves every endpoint once so the hot loops never hash
// or bounds-check coordinates. Edge order is preserved.
func compileEdges(space lattice.Space, edges []Edge) ([]denseEdge, error) {
	out := make([]denseEdge, len(edges))
	for i, e := range edges {
		u, ok := space.Index(e.From)
		if !ok {
			return nil, fmt.Errorf("%w: edge #%d from %s in %s", ErrOutOfBounds, i, space.Format(e.From), space)
		}
		v, ok := space.Index(e.To)
		if !ok {
			return nil, fmt.Errorf("%w: edge #%d to %s in %s", ErrOutOfBounds, i, space.Format(e.To), space)
		}
		out[i] = denseEdge{from: u, to: v, w: e.Weight}
	}

	return out, nil
}

// ValidateEdges checks that every edge endpoint lies inside space.
// Complexity: O(E).
func ValidateEdges(space lattice.Space, edges []Edge) error {
	for i, e := range edges {
		if !space.Contains(e.From) {
			return fmt.Errorf("%w: edge #%d from %s in %s", ErrOutOfBounds, i, space.Format(e.From), space)
		}
		if !space.Contains(e.To) {
			return fmt.Errorf("%w: edge #%d to %s in %s", ErrOutOfBounds, i, space.Format(e.To), space)
		}
	}

	return nil
}

// sourceIndex resolves the configured source or reports ErrOutOfBounds.
func sourceIndex(space lattice.Space, src lattice.Coord) (int, error) {
	idx, ok := space.Index(src)
	if !ok {
		return -1, fmt.Errorf("%w: source %s in %s", ErrOutOfBounds, space.Format(src), space)
	}

	return idx, nil
}
