package sssp

import (
	"math"
	"sync/atomic"

	"github.com/katalvlaran/gridsssp/lattice"
)

// Table holds the best-known distance of every coordinate of a space.
//
// Distances are stored as float64 bit patterns in a flat array indexed by
// lattice.Space.Index, so concurrent relaxations of the same destination
// resolve through a compare-and-swap loop instead of a lock. Stored values
// only ever decrease.
type Table struct {
	space lattice.Space
	bits  []atomic.Uint64
}

// NewTable returns a table with every coordinate set to Unreachable and
// the coordinate at index src set to 0.
// Complexity: O(V).
func NewTable(space lattice.Space, src int) *Table {
	t := &Table{
		space: space,
		bits:  make([]atomic.Uint64, space.Len()),
	}
	inf := math.Float64bits(Unreachable)
	for c := range space.All() {
		i, _ := space.Index(c)
		t.bits[i].Store(inf)
	}
	t.bits[src].Store(math.Float64bits(0))

	return t
}

// Space returns the lattice the table is indexed by.
func (t *Table) Space() lattice.Space { return t.space }

// Len returns the number of entries (V).
func (t *Table) Len() int { return len(t.bits) }

// Load returns the current distance at index i.
func (t *Table) Load(i int) float64 {
	return math.Float64frombits(t.bits[i].Load())
}

// Relax lowers the distance at index i to cand if cand is strictly smaller
// than the current value. The compare and the write form one atomic step
// with respect to every other Relax on the same index.
// It returns the value that was replaced and whether the update happened.
func (t *Table) Relax(i int, cand float64) (prev float64, ok bool) {
	p := &t.bits[i]
	for {
		old := p.Load()
		prev = math.Float64frombits(old)
		if !(cand < prev) {
			return prev, false
		}
		if p.CompareAndSwap(old, math.Float64bits(cand)) {
			return prev, true
		}
	}
}

// Snapshot copies the table into a plain slice.
func (t *Table) Snapshot() []float64 {
	out := make([]float64, len(t.bits))
	for i := range t.bits {
		out[i] = math.Float64frombits(t.bits[i].Load())
	}

	return out
}
