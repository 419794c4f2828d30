// Package sssp defines core types, sentinel errors and configuration
// options for single-source shortest paths over lattice graphs.
package sssp

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"strings"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/gridsssp/lattice"
)

// Unreachable is the sentinel distance of a coordinate with no known path
// from the source. It is never surfaced through Result.Reachable or Map.
var Unreachable = math.Inf(1)

// Sentinel errors returned by the solvers.
var (
	// ErrOutOfBounds indicates a source or edge endpoint outside the space.
	ErrOutOfBounds = errors.New("sssp: coordinate outside the lattice")

	// ErrNegativeWeight indicates a negative edge weight was found while
	// the weight pre-scan was enabled (see WithWeightCheck).
	ErrNegativeWeight = errors.New("sssp: negative edge weight encountered")

	// ErrNegativeCycle indicates an edge could still be relaxed after the
	// full pass budget of Bellman-Ford, i.e. a reachable negative cycle.
	ErrNegativeCycle = errors.New("sssp: negative-weight cycle reachable from source")

	// ErrUnknownAlgorithm indicates an unrecognised algorithm name or value.
	ErrUnknownAlgorithm = errors.New("sssp: unknown algorithm")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("sssp: worker count must be positive")

	// ErrBadMaxPasses indicates a negative pass budget.
	ErrBadMaxPasses = errors.New("sssp: MaxPasses must be non-negative")
)

// Algorithm selects a solver.
type Algorithm int

const (
	// AlgoDijkstra is the sequential priority-queue solver.
	AlgoDijkstra Algorithm = iota
	// AlgoBellmanFord is the parallel relaxation solver.
	AlgoBellmanFord
)

// String returns the canonical command-line name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgoDijkstra:
		return "dijkstra"
	case AlgoBellmanFord:
		return "bellmanford"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a name to an Algorithm. Accepted names are
// "dijkstra" and "bellmanford" (also "bellman-ford", "bellman_ford", "bf").
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dijkstra", "":
		return AlgoDijkstra, nil
	case "bellmanford", "bellman-ford", "bellman_ford", "bf":
		return AlgoBellmanFord, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Options configures both solvers. Fields irrelevant to a solver are ignored.
//
// Source          – starting coordinate (default: origin).
// Workers         – Bellman-Ford goroutines per pass (default: runtime.NumCPU()).
// MaxPasses       – Bellman-Ford pass cap; 0 means V−1.
// LegacySelfLoops – Dijkstra adjacency also records (from, weight) per edge.
// CycleCheck      – Bellman-Ford reports ErrNegativeCycle when V−1 passes do not converge.
// WeightCheck     – Solve pre-scans edges and rejects negative weights for Dijkstra.
// Ctx             – cancellation, checked between passes and periodically in Dijkstra.
// Logger          – receives debug records; discarded by default.
// OnRelax         – called after every successful relaxation.
type Options struct {
	Source          lattice.Coord
	Workers         int
	MaxPasses       int
	LegacySelfLoops bool
	CycleCheck      bool
	WeightCheck     bool
	Ctx             context.Context
	Logger          *slog.Logger

	// OnRelax receives the coordinate, its previous distance and the new,
	// strictly smaller one. Under Bellman-Ford it is called from several
	// goroutines at once and must be safe for concurrent use.
	OnRelax func(c lattice.Coord, prev, next float64)
}

// Option represents a functional option for configuring the solvers.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with defaults:
//   - Source:          (0,0,0).
//   - Workers:         runtime.NumCPU().
//   - MaxPasses:       0 (V−1 passes).
//   - LegacySelfLoops: false.
//   - CycleCheck:      true.
//   - WeightCheck:     false.
//   - Ctx:             context.Background().
//   - Logger:          a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Workers:    runtime.NumCPU(),
		CycleCheck: true,
		Ctx:        context.Background(),
		Logger:     slog.New(discardHandler{}),
	}
}

func resolveOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Source sets the starting coordinate.
func Source(c lattice.Coord) Option {
	return func(o *Options) {
		o.Source = c
	}
}

// WithWorkers sets the number of Bellman-Ford workers per pass.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(ErrBadWorkers.Error())
	}
	return func(o *Options) {
		o.Workers = n
	}
}

// WithMaxPasses caps the number of Bellman-Ford passes. Zero restores
// the default of V−1. A cap below V−1 that stops the run before it
// converges yields the unfinished table; the negative-cycle check only
// runs after a full V−1 passes. Panics if n < 0.
func WithMaxPasses(n int) Option {
	if n < 0 {
		panic(ErrBadMaxPasses.Error())
	}
	return func(o *Options) {
		o.MaxPasses = n
	}
}

// WithLegacySelfLoops makes the adjacency index append a (from, weight)
// self-loop for every edge, reproducing the output of the historical
// solver. Self-loops never shorten a distance; they only cost work.
func WithLegacySelfLoops() Option {
	return func(o *Options) {
		o.LegacySelfLoops = true
	}
}

// WithoutCycleCheck disables negative-cycle detection. Bellman-Ford then
// returns whatever table it holds once the pass budget is exhausted.
func WithoutCycleCheck() Option {
	return func(o *Options) {
		o.CycleCheck = false
	}
}

// WithWeightCheck enables the negative-weight pre-scan performed by Solve
// before running Dijkstra.
func WithWeightCheck() Option {
	return func(o *Options) {
		o.WeightCheck = true
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes debug records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnRelax registers a relaxation hook.
func WithOnRelax(fn func(c lattice.Coord, prev, next float64)) Option {
	return func(o *Options) {
		o.OnRelax = fn
	}
}

// discardHandler drops every record.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
