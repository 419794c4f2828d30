package sssp

import (
	"github.com/katalvlaran/gridsssp/lattice"
)

// Arc is one outgoing (neighbor, weight) entry of an adjacency list.
type Arc struct {
	To     lattice.Coord
	Weight float64
}

// arc is the index-resolved form of Arc kept by Adjacency.
type arc struct {
	to int
	w  float64
}

// Adjacency maps every coordinate to its ordered outgoing arcs.
// It is built once from an edge list and is read-only afterwards.
type Adjacency struct {
	space  lattice.Space
	lists  [][]arc
	arcs   int
	legacy bool
}

// NewAdjacency indexes edges by source coordinate, keeping edge order.
//
// With legacy set, every edge u→v additionally appends the arc (u, w),
// i.e. a self-loop on u carrying the edge's weight. The historical solver
// did this, most likely by mistake (it inserted the source where a second
// real arc was meant). Self-loops cannot improve a distance, so legacy mode
// changes the work done and the contents of Arcs, never the distances.
//
// Returns ErrOutOfBounds if an endpoint lies outside space.
// Complexity: O(V + E).
func NewAdjacency(space lattice.Space, edges []Edge, legacy bool) (*Adjacency, error) {
	dense, err := compileEdges(space, edges)
	if err != nil {
		return nil, err
	}
	a := &Adjacency{
		space:  space,
		lists:  make([][]arc, space.Len()),
		legacy: legacy,
	}
	for _, e := range dense {
		a.lists[e.from] = append(a.lists[e.from], arc{to: e.to, w: e.w})
		if legacy {
			a.lists[e.from] = append(a.lists[e.from], arc{to: e.from, w: e.w})
		}
	}
	a.arcs = len(dense)
	if legacy {
		a.arcs *= 2
	}

	return a, nil
}

// Space returns the lattice the index was built for.
func (a *Adjacency) Space() lattice.Space { return a.space }

// Legacy reports whether self-loop arcs were recorded.
func (a *Adjacency) Legacy() bool { return a.legacy }

// NumArcs returns the total number of stored arcs.
func (a *Adjacency) NumArcs() int { return a.arcs }

// Degree returns the number of arcs leaving c (0 if c is outside the space).
func (a *Adjacency) Degree(c lattice.Coord) int {
	i, ok := a.space.Index(c)
	if !ok {
		return 0
	}

	return len(a.lists[i])
}

// Arcs returns a copy of the arcs leaving c in insertion order,
// or nil if c has none or lies outside the space.
func (a *Adjacency) Arcs(c lattice.Coord) []Arc {
	i, ok := a.space.Index(c)
	if !ok || len(a.lists[i]) == 0 {
		return nil
	}
	out := make([]Arc, len(a.lists[i]))
	for k, x := range a.lists[i] {
		out[k] = Arc{To: a.space.CoordAt(x.to), Weight: x.w}
	}

	return out
}
