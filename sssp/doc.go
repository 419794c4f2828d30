// Package sssp computes single-source shortest-path distances over graphs
// whose vertices are the points of a 2D or 3D integer lattice and whose
// edges are supplied explicitly as directed weighted pairs of coordinates.
//
// Two interchangeable solvers share one distance table layout:
//
//   - Dijkstra: sequential, driven by a binary min-heap. Requires
//     non-negative weights. Improved entries are pushed again instead of
//     decreasing a key in place; stale entries are dropped when popped.
//   - BellmanFord: iterative relaxation of the whole edge list, spread over
//     several goroutines per pass. Stops as soon as a pass changes nothing.
//     Tolerates negative weights and, by default, reports negative cycles.
//
// Both return a *Result from which unreachable coordinates are absent.
//
// Distance table:
//
//   - One float64 per lattice point, stored in a flat array indexed by
//     lattice.Space.Index (x·Y·Z + y·Z + z).
//   - Every entry starts at Unreachable (+Inf) except the source (0).
//   - Entries only decrease, and only on a strictly smaller candidate.
//   - Updates are compare-and-swap loops, so concurrent workers relaxing
//     into the same coordinate never lose an improvement.
//
// Concurrency (BellmanFord):
//
//   - Fork-join per pass via golang.org/x/sync/errgroup; the join is the
//     barrier between passes.
//   - The "something changed" signal is a github.com/tevino/abool flag,
//     reset before each pass. Relaxations are counted in an atomic counter
//     and reported as Result.Relaxations.
//
// Adjacency quirk:
//
// The historical solver appended a self-loop (u, w) next to every edge
// u→v when building Dijkstra's adjacency lists. WithLegacySelfLoops keeps
// that behaviour for parity; by default the self-loops are omitted.
// Distances are identical either way.
//
// Errors (sentinel):
//
//   - ErrOutOfBounds      source or edge endpoint outside the lattice.
//   - ErrNegativeWeight   negative weight with WithWeightCheck (Solve only).
//   - ErrNegativeCycle    BellmanFord budget exhausted while still relaxing.
//   - ErrUnknownAlgorithm unknown Algorithm value or name.
//
// Example:
//
//	space, _ := lattice.NewSpace(3, 1, 1, lattice.Mode2D)
//	edges := []sssp.Edge{sssp.E2(0, 0, 1, 0, 2), sssp.E2(1, 0, 2, 0, 3)}
//	res, err := sssp.Solve(space, edges, sssp.AlgoBellmanFord, sssp.WithWorkers(4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, _ := res.Distance(lattice.C2(2, 0)) // 5
package sssp
