package sssp

import (
	"iter"
	"math"

	"github.com/katalvlaran/gridsssp/lattice"
)

// Result is the final distance table of one solve.
//
// Relaxations counts successful distance updates across the run.
// Passes is the number of full edge passes Bellman-Ford performed
// (always 0 for Dijkstra).
type Result struct {
	Algorithm   Algorithm
	Source      lattice.Coord
	Relaxations int64
	Passes      int

	space lattice.Space
	dist  []float64
}

func newResult(algo Algorithm, src lattice.Coord, t *Table, relaxations int64, passes int) *Result {
	return &Result{
		Algorithm:   algo,
		Source:      src,
		Relaxations: relaxations,
		Passes:      passes,
		space:       t.space,
		dist:        t.Snapshot(),
	}
}

// Space returns the lattice the result covers.
func (r *Result) Space() lattice.Space { return r.space }

// Distance returns the shortest distance to c. The boolean is false if c
// is unreachable or outside the space.
func (r *Result) Distance(c lattice.Coord) (float64, bool) {
	i, ok := r.space.Index(c)
	if !ok || math.IsInf(r.dist[i], 1) {
		return Unreachable, false
	}

	return r.dist[i], true
}

// Reachable yields every reachable coordinate with its distance in
// ascending index order. Unreachable coordinates are skipped.
func (r *Result) Reachable() iter.Seq2[lattice.Coord, float64] {
	return func(yield func(lattice.Coord, float64) bool) {
		for i, d := range r.dist {
			if math.IsInf(d, 1) {
				continue
			}
			if !yield(r.space.CoordAt(i), d) {
				return
			}
		}
	}
}

// Len returns the number of reachable coordinates.
func (r *Result) Len() int {
	n := 0
	for _, d := range r.dist {
		if !math.IsInf(d, 1) {
			n++
		}
	}

	return n
}

// Map returns the reachable coordinates and their distances.
func (r *Result) Map() map[lattice.Coord]float64 {
	m := make(map[lattice.Coord]float64, r.Len())
	for c, d := range r.Reachable() {
		m[c] = d
	}

	return m
}

// Distances returns a copy of the raw table, Unreachable included,
// indexed by lattice.Space.Index.
func (r *Result) Distances() []float64 {
	out := make([]float64, len(r.dist))
	copy(out, r.dist)

	return out
}
