// Package sssp_test contains unit tests for the Dijkstra solver and the
// adjacency index it runs over.
package sssp_test

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/gridsssp/builder"
	"github.com/katalvlaran/gridsssp/lattice"
	"github.com/katalvlaran/gridsssp/sssp"
)

// ------------------------------------------------------------------------
// 1. Scenarios
// ------------------------------------------------------------------------

func TestDijkstra_TwoNodes(t *testing.T) {
	// X=2, Y=1, source (0,0), single edge (0,0)→(1,0) weight 5.
	space := lattice.MustSpace(2, 1, 1, lattice.Mode2D)
	res, err := sssp.Dijkstra(space, []sssp.Edge{sssp.E2(0, 0, 1, 0, 5)})
	if err != nil {
		t.Fatal(err)
	}
	if d, ok := res.Distance(lattice.C2(0, 0)); !ok || d != 0 {
		t.Errorf("dist(0,0) = %g,%v; want 0", d, ok)
	}
	if d, ok := res.Distance(lattice.C2(1, 0)); !ok || d != 5 {
		t.Errorf("dist(1,0) = %g,%v; want 5", d, ok)
	}
}

func TestDijkstra_ChainOmitsUnreached(t *testing.T) {
	// Chain (0,0)→(1,0)→(2,0) inside a 4x2 grid; the rest is unreachable.
	space := lattice.MustSpace(4, 2, 1, lattice.Mode2D)
	edges := []sssp.Edge{sssp.E2(0, 0, 1, 0, 2), sssp.E2(1, 0, 2, 0, 3)}
	res, err := sssp.Dijkstra(space, edges)
	if err != nil {
		t.Fatal(err)
	}

	want := map[lattice.Coord]float64{
		lattice.C2(0, 0): 0,
		lattice.C2(1, 0): 2,
		lattice.C2(2, 0): 5,
	}
	got := res.Map()
	if len(got) != len(want) {
		t.Fatalf("reachable = %v; want %v", got, want)
	}
	for c, d := range want {
		if got[c] != d {
			t.Errorf("dist%v = %g; want %g", c, got[c], d)
		}
	}
	if _, ok := res.Distance(lattice.C2(3, 0)); ok {
		t.Error("(3,0) reported reachable")
	}
}

func TestDijkstra_PrefersCheaperDetour(t *testing.T) {
	// Direct (0,0)→(2,0) costs 10; the detour via (1,0) and (1,1) costs 3.
	space := lattice.MustSpace(3, 2, 1, lattice.Mode2D)
	edges := []sssp.Edge{
		sssp.E2(0, 0, 2, 0, 10),
		sssp.E2(0, 0, 1, 0, 1),
		sssp.E2(1, 0, 1, 1, 1),
		sssp.E2(1, 1, 2, 0, 1),
	}
	res, err := sssp.Dijkstra(space, edges)
	if err != nil {
		t.Fatal(err)
	}
	if d, _ := res.Distance(lattice.C2(2, 0)); d != 3 {
		t.Errorf("dist(2,0) = %g; want 3", d)
	}
}

func TestDijkstra_ParallelEdgesAllConsidered(t *testing.T) {
	space := lattice.MustSpace(2, 1, 1, lattice.Mode2D)
	edges := []sssp.Edge{sssp.E2(0, 0, 1, 0, 7), sssp.E2(0, 0, 1, 0, 4), sssp.E2(0, 0, 1, 0, 9)}
	res, err := sssp.Dijkstra(space, edges)
	if err != nil {
		t.Fatal(err)
	}
	if d, _ := res.Distance(lattice.C2(1, 0)); d != 4 {
		t.Errorf("dist(1,0) = %g; want 4", d)
	}
}

func TestDijkstra_NonOriginSource3D(t *testing.T) {
	space := lattice.MustSpace(2, 2, 2, lattice.Mode3D)
	edges := []sssp.Edge{
		sssp.E3(1, 1, 1, 0, 1, 1, 1.5),
		sssp.E3(0, 1, 1, 0, 0, 1, 2),
		sssp.E3(0, 0, 1, 0, 0, 0, 0.25),
	}
	res, err := sssp.Dijkstra(space, edges, sssp.Source(lattice.C3(1, 1, 1)))
	if err != nil {
		t.Fatal(err)
	}
	if d, _ := res.Distance(lattice.C3(0, 0, 0)); d != 3.75 {
		t.Errorf("dist(0,0,0) = %g; want 3.75", d)
	}
	if res.Len() != 4 {
		t.Errorf("reachable = %d; want 4", res.Len())
	}
}

// ------------------------------------------------------------------------
// 2. Adjacency and the legacy self-loop arcs
// ------------------------------------------------------------------------

func TestAdjacency_LegacySelfLoop(t *testing.T) {
	// Single edge (0,0)→(1,0) weight 4 must also record (0,0)→(0,0) weight 4.
	space := lattice.MustSpace(2, 1, 1, lattice.Mode2D)
	edges := []sssp.Edge{sssp.E2(0, 0, 1, 0, 4)}

	adj, err := sssp.NewAdjacency(space, edges, true)
	if err != nil {
		t.Fatal(err)
	}
	arcs := adj.Arcs(lattice.C2(0, 0))
	want := []sssp.Arc{
		{To: lattice.C2(1, 0), Weight: 4},
		{To: lattice.C2(0, 0), Weight: 4},
	}
	if len(arcs) != len(want) {
		t.Fatalf("Arcs(0,0) = %v; want %v", arcs, want)
	}
	for i := range want {
		if arcs[i] != want[i] {
			t.Errorf("Arcs(0,0)[%d] = %v; want %v", i, arcs[i], want[i])
		}
	}
	if adj.NumArcs() != 2 || !adj.Legacy() {
		t.Errorf("NumArcs=%d Legacy=%v; want 2,true", adj.NumArcs(), adj.Legacy())
	}
}

func TestAdjacency_DefaultOmitsSelfLoop(t *testing.T) {
	space := lattice.MustSpace(2, 1, 1, lattice.Mode2D)
	adj, err := sssp.NewAdjacency(space, []sssp.Edge{sssp.E2(0, 0, 1, 0, 4)}, false)
	if err != nil {
		t.Fatal(err)
	}
	if got := adj.Degree(lattice.C2(0, 0)); got != 1 {
		t.Errorf("Degree(0,0) = %d; want 1", got)
	}
	if arcs := adj.Arcs(lattice.C2(1, 0)); arcs != nil {
		t.Errorf("Arcs(1,0) = %v; want nil", arcs)
	}
}

func TestDijkstra_LegacySelfLoopsSameDistances(t *testing.T) {
	space := lattice.MustSpace(6, 5, 1, lattice.Mode2D)
	edges, err := builder.Lattice(space, builder.WithSeed(3), builder.WithUniformWeight(0, 20))
	if err != nil {
		t.Fatal(err)
	}
	plain, err := sssp.Dijkstra(space, edges)
	if err != nil {
		t.Fatal(err)
	}
	legacy, err := sssp.Dijkstra(space, edges, sssp.WithLegacySelfLoops())
	if err != nil {
		t.Fatal(err)
	}
	a, b := plain.Distances(), legacy.Distances()
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("index %d: plain=%g legacy=%g", i, a[i], b[i])
		}
	}
}

// ------------------------------------------------------------------------
// 3. Validation and cancellation
// ------------------------------------------------------------------------

func TestDijkstra_OutOfBounds(t *testing.T) {
	space := lattice.MustSpace(2, 2, 1, lattice.Mode2D)
	if _, err := sssp.Dijkstra(space, []sssp.Edge{sssp.E2(0, 0, 2, 0, 1)}); !errors.Is(err, sssp.ErrOutOfBounds) {
		t.Errorf("edge outside: got %v; want ErrOutOfBounds", err)
	}
	if _, err := sssp.Dijkstra(space, nil, sssp.Source(lattice.C2(5, 5))); !errors.Is(err, sssp.ErrOutOfBounds) {
		t.Errorf("source outside: got %v; want ErrOutOfBounds", err)
	}
}

// Out-of-bounds errors name coordinates the way the space renders them.
func TestOutOfBounds_Message(t *testing.T) {
	s2 := lattice.MustSpace(2, 2, 1, lattice.Mode2D)
	s3 := lattice.MustSpace(2, 2, 2, lattice.Mode3D)
	tests := []struct {
		name string
		err  error
		want string
		not  string
	}{
		{
			name: "EdgeTo2D",
			err:  func() error { _, err := sssp.Dijkstra(s2, []sssp.Edge{sssp.E2(0, 0, 2, 0, 1)}); return err }(),
			want: "edge #0 to 2,0 in 2d 2x2",
			not:  "2,0,0",
		},
		{
			name: "Source2D",
			err:  func() error { _, err := sssp.BellmanFord(s2, nil, sssp.Source(lattice.C2(5, 5))); return err }(),
			want: "source 5,5 in",
			not:  "5,5,0",
		},
		{
			name: "StrayZIn2D",
			err:  sssp.ValidateEdges(s2, []sssp.Edge{sssp.E3(0, 0, 1, 1, 0, 0, 1)}),
			want: "edge #0 from 0,0,1 in",
		},
		{
			name: "EdgeFrom3D",
			err:  sssp.ValidateEdges(s3, []sssp.Edge{sssp.E3(0, 0, 2, 1, 0, 0, 1)}),
			want: "from 0,0,2 in 3d 2x2x2",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, sssp.ErrOutOfBounds) {
				t.Fatalf("got %v; want ErrOutOfBounds", tc.err)
			}
			msg := tc.err.Error()
			if !strings.Contains(msg, tc.want) {
				t.Errorf("message %q lacks %q", msg, tc.want)
			}
			if tc.not != "" && strings.Contains(msg, tc.not) {
				t.Errorf("message %q contains %q", msg, tc.not)
			}
		})
	}
}

func TestDijkstra_Cancelled(t *testing.T) {
	space := lattice.MustSpace(60, 60, 1, lattice.Mode2D)
	edges, err := builder.Lattice(space)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sssp.Dijkstra(space, edges, sssp.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v; want context.Canceled", err)
	}
}

// ------------------------------------------------------------------------
// 4. Invariants
// ------------------------------------------------------------------------

func TestDijkstra_Monotone(t *testing.T) {
	space := lattice.MustSpace(8, 8, 1, lattice.Mode2D)
	edges, err := builder.Lattice(space, builder.WithSeed(11), builder.WithUniformWeight(1, 9))
	if err != nil {
		t.Fatal(err)
	}
	calls := 0
	_, err = sssp.Dijkstra(space, edges, sssp.WithOnRelax(func(c lattice.Coord, prev, next float64) {
		calls++
		if !(next < prev) {
			t.Errorf("relax %v: %g → %g is not a strict decrease", c, prev, next)
		}
	}))
	if err != nil {
		t.Fatal(err)
	}
	if calls < space.Len()-1 {
		t.Errorf("OnRelax called %d times; want at least %d", calls, space.Len()-1)
	}
}

func TestDijkstra_NeverSurfacesSentinel(t *testing.T) {
	space := lattice.MustSpace(3, 3, 1, lattice.Mode2D)
	res, err := sssp.Dijkstra(space, []sssp.Edge{sssp.E2(0, 0, 0, 1, 1)})
	if err != nil {
		t.Fatal(err)
	}
	for c, d := range res.Reachable() {
		if math.IsInf(d, 1) {
			t.Errorf("%v surfaced with the unreachable sentinel", c)
		}
	}
	if res.Len() != 2 {
		t.Errorf("reachable = %d; want 2", res.Len())
	}
}
