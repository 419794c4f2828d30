package sssp

import (
	"container/heap"
	"time"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/gridsssp/lattice"
)

// ctxCheckInterval is how many heap pops Dijkstra performs between
// context checks.
const ctxCheckInterval = 1024

// Dijkstra computes shortest distances from Options.Source to every
// coordinate of space over the given edges. It builds an Adjacency
// (honouring WithLegacySelfLoops) and runs DijkstraAdjacency on it.
//
// Precondition: every weight is ≥ 0. This is not checked here; negative
// weights give unspecified results. Use Solve with WithWeightCheck to
// reject them up front.
//
// Returns ErrOutOfBounds for a source or edge endpoint outside space, or
// the context error if Options.Ctx is cancelled mid-run.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
func Dijkstra(space lattice.Space, edges []Edge, opts ...Option) (*Result, error) {
	cfg := resolveOptions(opts)
	adj, err := NewAdjacency(space, edges, cfg.LegacySelfLoops)
	if err != nil {
		return nil, err
	}

	return dijkstraAdjacency(adj, cfg)
}

// DijkstraAdjacency runs Dijkstra over a prebuilt adjacency index.
// Options.LegacySelfLoops is ignored; the index already fixes that choice.
func DijkstraAdjacency(adj *Adjacency, opts ...Option) (*Result, error) {
	return dijkstraAdjacency(adj, resolveOptions(opts))
}

func dijkstraAdjacency(adj *Adjacency, cfg Options) (*Result, error) {
	src, err := sourceIndex(adj.space, cfg.Source)
	if err != nil {
		return nil, err
	}

	r := &runner{
		adj:   adj,
		cfg:   cfg,
		table: NewTable(adj.space, src),
		pq:    make(entryPQ, 0, adj.space.Len()),
	}
	start := time.Now()
	r.init(src)
	if err = r.process(); err != nil {
		return nil, err
	}
	cfg.Logger.Debug("dijkstra finished",
		slog.String("space", adj.space.String()),
		slog.Int("arcs", adj.arcs),
		slog.Int64("relaxations", r.relaxations),
		slog.Int("stale", r.stale),
		slog.Duration("elapsed", time.Since(start)),
	)

	return newResult(AlgoDijkstra, cfg.Source, r.table, r.relaxations, 0), nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	adj         *Adjacency // read-only
	cfg         Options
	table       *Table
	pq          entryPQ
	relaxations int64
	pops        int
	stale       int
}

// init pushes (source, 0) onto an empty heap.
func (r *runner) init(src int) {
	heap.Init(&r.pq)
	heap.Push(&r.pq, entry{idx: src, dist: 0})
}

// process extracts the closest entry until the heap is empty. An entry whose
// distance exceeds the table value is stale and is dropped; this replaces
// decrease-key.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		r.pops++
		if r.pops%ctxCheckInterval == 0 {
			if err := r.cfg.Ctx.Err(); err != nil {
				return err
			}
		}

		item := heap.Pop(&r.pq).(entry)
		if item.dist > r.table.Load(item.idx) {
			r.stale++
			continue
		}
		r.relax(item)
	}

	return nil
}

// relax tries every arc leaving item.idx with candidate item.dist + w and
// pushes each neighbour whose distance strictly improves.
func (r *runner) relax(item entry) {
	for _, a := range r.adj.lists[item.idx] {
		cand := item.dist + a.w
		prev, ok := r.table.Relax(a.to, cand)
		if !ok {
			continue
		}
		r.relaxations++
		if r.cfg.OnRelax != nil {
			r.cfg.OnRelax(r.adj.space.CoordAt(a.to), prev, cand)
		}
		heap.Push(&r.pq, entry{idx: a.to, dist: cand})
	}
}

// entry is a (coordinate index, tentative distance) pair in the heap.
type entry struct {
	idx  int
	dist float64
}

// entryPQ is a min-heap of entries ordered by dist. Entries are never
// updated in place; outdated ones are skipped when popped.
type entryPQ []entry

func (pq entryPQ) Len() int            { return len(pq) }
func (pq entryPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq entryPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
