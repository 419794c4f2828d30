// SPDX-License-Identifier: MIT
// Package: gridsssp/builder
//
// impl_lattice.go — Lattice(space) and Chain(space, n) edge generators.
//
// Canonical model:
//   • Axis neighbourhood: 4 neighbours in 2D, 6 in 3D. No diagonals.
//   • Every neighbour relation is emitted as its own directed edge, so each
//     undirected lattice link appears twice with independently drawn weights.
//
// Determinism:
//   • Coordinates visited in lattice.Space.All order (x, then y, then z).
//   • Per coordinate, neighbours in the order +x, −x, +y, −y, +z, −z.
//   • Weights drawn in emission order from cfg.rng.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridsssp/lattice"
	"github.com/katalvlaran/gridsssp/sssp"
)

const (
	methodLattice = "Lattice"
	methodChain   = "Chain"
	minChainLen   = 2
)

// axisOffsets lists neighbour offsets in emission order; the last two
// are used only in 3D.
var axisOffsets = [6][3]int{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// Lattice returns the directed axis-neighbour edges of every coordinate
// of space. The result has 2·(links) edges, where links is the number of
// adjacent coordinate pairs.
// Complexity: O(V) time, O(E) space.
func Lattice(space lattice.Space, opts ...BuilderOption) ([]sssp.Edge, error) {
	if space.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", methodLattice, ErrEmptySpace)
	}
	cfg := newBuilderConfig(opts...)

	offsets := axisOffsets[:4]
	if space.Is3D() {
		offsets = axisOffsets[:]
	}
	x, y, z := space.Dims()
	// Each axis contributes 2·(n−1)·(other dims) directed edges.
	capacity := 2 * ((x-1)*y*z + x*(y-1)*z + x*y*(z-1))
	edges := make([]sssp.Edge, 0, capacity)

	for c := range space.All() {
		for _, d := range offsets {
			n := lattice.Coord{X: c.X + d[0], Y: c.Y + d[1], Z: c.Z + d[2]}
			if !space.Contains(n) {
				continue
			}
			edges = append(edges, sssp.Edge{From: c, To: n, Weight: cfg.weight()})
		}
	}

	return edges, nil
}

// Chain returns the directed path (0,0,0)→(1,0,0)→…→(n−1,0,0).
// n must be at least 2 and at most the X dimension of space.
// Complexity: O(n).
func Chain(space lattice.Space, n int, opts ...BuilderOption) ([]sssp.Edge, error) {
	if space.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", methodChain, ErrEmptySpace)
	}
	x, _, _ := space.Dims()
	if n < minChainLen || n > x {
		return nil, fmt.Errorf("%s: n=%d (must be in [%d, %d]): %w",
			methodChain, n, minChainLen, x, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)

	edges := make([]sssp.Edge, 0, n-1)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, sssp.Edge{
			From:   lattice.Coord{X: i},
			To:     lattice.Coord{X: i + 1},
			Weight: cfg.weight(),
		})
	}

	return edges, nil
}
