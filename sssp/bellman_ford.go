package sssp

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/tevino/abool"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridsssp/lattice"
)

// chunkCtxInterval is how many edges a worker relaxes between context checks.
const chunkCtxInterval = 4096

// BellmanFord computes shortest distances from Options.Source by repeated
// parallel relaxation of every edge.
//
// Each pass splits the edge list into Options.Workers contiguous chunks,
// relaxes them concurrently against the shared Table and waits for every
// worker before the next pass starts. A pass that changes nothing ends the
// run. At most V−1 passes are made (or Options.MaxPasses, if lower).
//
// Negative weights are allowed. If all V−1 passes run and the last one
// still made progress, a read-only check pass looks for an edge that can
// still be relaxed and reports it wrapped in ErrNegativeCycle. Disable this
// with WithoutCycleCheck to receive the unfinished table instead. A run
// stopped early by a lower Options.MaxPasses proves nothing about cycles:
// it returns the unfinished table without checking.
//
// Returns ErrOutOfBounds for a source or edge endpoint outside space, or
// the context error if Options.Ctx is cancelled.
//
// Complexity:
//
//   - Time:  O(V·E / W) with W workers, O(E) per pass.
//   - Space: O(V + E)
func BellmanFord(space lattice.Space, edges []Edge, opts ...Option) (*Result, error) {
	cfg := resolveOptions(opts)
	src, err := sourceIndex(space, cfg.Source)
	if err != nil {
		return nil, err
	}
	dense, err := compileEdges(space, edges)
	if err != nil {
		return nil, err
	}

	w := &relaxer{
		space:   space,
		cfg:     cfg,
		edges:   dense,
		table:   NewTable(space, src),
		changed: abool.New(),
	}
	start := time.Now()
	converged, err := w.run()
	if err != nil {
		return nil, err
	}
	if !converged && cfg.CycleCheck && w.passes == space.Len()-1 {
		if err = w.detectCycle(); err != nil {
			return nil, err
		}
	}
	cfg.Logger.Debug("bellman-ford finished",
		slog.String("space", space.String()),
		slog.Int("edges", len(dense)),
		slog.Int("workers", cfg.Workers),
		slog.Int("passes", w.passes),
		slog.Bool("converged", converged),
		slog.Int64("relaxations", w.relaxations.Load()),
		slog.Duration("elapsed", time.Since(start)),
	)

	return newResult(AlgoBellmanFord, cfg.Source, w.table, w.relaxations.Load(), w.passes), nil
}

// relaxer holds the shared state of one Bellman-Ford run.
type relaxer struct {
	space lattice.Space
	cfg   Options
	edges []denseEdge // read-only
	table *Table

	// changed is reset before every pass and set by any worker that
	// relaxed at least one edge during it.
	changed     *abool.AtomicBool
	relaxations atomic.Int64
	passes      int
}

// run performs passes until one changes nothing or the budget is spent.
// It reports whether the table converged.
func (w *relaxer) run() (bool, error) {
	budget := w.space.Len() - 1
	if w.cfg.MaxPasses > 0 && w.cfg.MaxPasses < budget {
		budget = w.cfg.MaxPasses
	}

	for pass := 0; pass < budget; pass++ {
		if err := w.cfg.Ctx.Err(); err != nil {
			return false, err
		}
		w.changed.UnSet()
		before := w.relaxations.Load()
		if err := w.pass(w.cfg.Ctx); err != nil {
			return false, err
		}
		w.passes++
		w.cfg.Logger.Debug("bellman-ford pass",
			slog.Int("pass", w.passes),
			slog.Int64("relaxed", w.relaxations.Load()-before),
		)
		if !w.changed.IsSet() {
			return true, nil
		}
	}

	return false, nil
}

// pass relaxes every edge once, fanning chunks out to the workers.
// It returns only after every worker has finished.
func (w *relaxer) pass(ctx context.Context) error {
	n := w.cfg.Workers
	if n > len(w.edges) {
		n = len(w.edges)
	}
	if n <= 1 {
		return w.relaxChunk(ctx, 0, len(w.edges))
	}

	size := (len(w.edges) + n - 1) / n
	g, gctx := errgroup.WithContext(ctx)
	for lo := 0; lo < len(w.edges); lo += size {
		hi := min(lo+size, len(w.edges))
		g.Go(func() error {
			return w.relaxChunk(gctx, lo, hi)
		})
	}

	return g.Wait()
}

// relaxChunk relaxes edges[lo:hi]. Counts are accumulated locally and
// published once, so the flag and counter see one write per worker.
func (w *relaxer) relaxChunk(ctx context.Context, lo, hi int) error {
	var relaxed int64
	defer func() {
		if relaxed > 0 {
			w.changed.Set()
			w.relaxations.Add(relaxed)
		}
	}()

	for i := lo; i < hi; i++ {
		if (i-lo)%chunkCtxInterval == chunkCtxInterval-1 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		e := w.edges[i]
		du := w.table.Load(e.from)
		if math.IsInf(du, 1) {
			continue
		}
		cand := du + e.w
		prev, ok := w.table.Relax(e.to, cand)
		if !ok {
			continue
		}
		relaxed++
		if w.cfg.OnRelax != nil {
			w.cfg.OnRelax(w.space.CoordAt(e.to), prev, cand)
		}
	}

	return nil
}

// detectCycle scans every edge once without writing. Any edge that could
// still shorten its destination proves a reachable negative cycle.
func (w *relaxer) detectCycle() error {
	for _, e := range w.edges {
		du := w.table.Load(e.from)
		if math.IsInf(du, 1) {
			continue
		}
		if du+e.w < w.table.Load(e.to) {
			return fmt.Errorf("%w: edge %s→%s weight=%g still relaxes after %d passes",
				ErrNegativeCycle, w.space.Format(w.space.CoordAt(e.from)),
				w.space.Format(w.space.CoordAt(e.to)), e.w, w.passes)
		}
	}

	return nil
}
