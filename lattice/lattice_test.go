package lattice_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gridsssp/lattice"
)

//----------------------------------------------------------------------------//
// NewSpace Tests
//----------------------------------------------------------------------------//

// TestNewSpace_Errors verifies that NewSpace rejects non-positive dimensions and unknown modes.
func TestNewSpace_Errors(t *testing.T) {
	cases := []struct {
		name    string
		x, y, z int
		mode    lattice.Mode
		err     error
	}{
		{"ZeroX", 0, 3, 1, lattice.Mode2D, lattice.ErrBadDimension},
		{"NegativeY", 2, -1, 1, lattice.Mode2D, lattice.ErrBadDimension},
		{"ZeroZ3D", 2, 2, 0, lattice.Mode3D, lattice.ErrBadDimension},
		{"UnknownMode", 2, 2, 2, lattice.Mode(7), lattice.ErrBadMode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lattice.NewSpace(tc.x, tc.y, tc.z, tc.mode)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewSpace(%d,%d,%d,%v) error = %v; want %v", tc.x, tc.y, tc.z, tc.mode, err, tc.err)
			}
		})
	}
}

// TestNewSpace_2DIgnoresZ checks that 2D mode forces Z=1 regardless of the argument.
func TestNewSpace_2DIgnoresZ(t *testing.T) {
	s, err := lattice.NewSpace(4, 3, 0, lattice.Mode2D)
	if err != nil {
		t.Fatalf("NewSpace error: %v", err)
	}
	x, y, z := s.Dims()
	if x != 4 || y != 3 || z != 1 {
		t.Errorf("Dims() = %d,%d,%d; want 4,3,1", x, y, z)
	}
	if s.Len() != 12 {
		t.Errorf("Len() = %d; want 12", s.Len())
	}
}

//----------------------------------------------------------------------------//
// Index / CoordAt / Contains Tests
//----------------------------------------------------------------------------//

// TestIndexRoundTrip checks Index and CoordAt are inverse on every coordinate.
func TestIndexRoundTrip(t *testing.T) {
	s := lattice.MustSpace(3, 4, 5, lattice.Mode3D)
	want := 0
	for c := range s.All() {
		idx, ok := s.Index(c)
		if !ok {
			t.Fatalf("Index(%v) reported out of bounds", c)
		}
		if idx != want {
			t.Errorf("Index(%v) = %d; want %d (enumeration order)", c, idx, want)
		}
		if back := s.CoordAt(idx); back != c {
			t.Errorf("CoordAt(%d) = %v; want %v", idx, back, c)
		}
		want++
	}
	if want != s.Len() {
		t.Errorf("All() yielded %d coordinates; want %d", want, s.Len())
	}
}

// TestContains checks in- and out-of-bounds coordinates, including z≠0 in 2D.
func TestContains(t *testing.T) {
	s := lattice.MustSpace(3, 2, 1, lattice.Mode2D)

	valid := []lattice.Coord{lattice.C2(0, 0), lattice.C2(2, 1), lattice.C2(1, 1)}
	for _, c := range valid {
		if !s.Contains(c) {
			t.Errorf("Contains(%v)=false; want true", c)
		}
	}
	invalid := []lattice.Coord{lattice.C2(-1, 0), lattice.C2(3, 0), lattice.C2(1, 2), lattice.C3(0, 0, 1)}
	for _, c := range invalid {
		if s.Contains(c) {
			t.Errorf("Contains(%v)=true; want false", c)
		}
		if _, ok := s.Index(c); ok {
			t.Errorf("Index(%v) ok=true; want false", c)
		}
	}
}

// TestZ1CollapsesTo2D checks that a 3D space with Z=1 indexes exactly like the 2D space.
func TestZ1CollapsesTo2D(t *testing.T) {
	s2 := lattice.MustSpace(5, 4, 1, lattice.Mode2D)
	s3 := lattice.MustSpace(5, 4, 1, lattice.Mode3D)
	if s2.Len() != s3.Len() {
		t.Fatalf("Len mismatch: %d vs %d", s2.Len(), s3.Len())
	}
	for c := range s2.All() {
		i2, _ := s2.Index(c)
		i3, ok := s3.Index(c)
		if !ok || i2 != i3 {
			t.Errorf("Index(%v): 2d=%d 3d=%d ok=%v", c, i2, i3, ok)
		}
	}
}

// TestAll_EarlyStop verifies the sequence honours a false return from yield.
func TestAll_EarlyStop(t *testing.T) {
	s := lattice.MustSpace(10, 10, 1, lattice.Mode2D)
	n := 0
	for range s.All() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iterated %d times; want 3", n)
	}
}

//----------------------------------------------------------------------------//
// Parsing and formatting
//----------------------------------------------------------------------------//

func TestParseCoord(t *testing.T) {
	c, err := lattice.ParseCoord("1, 2", lattice.Mode2D)
	if err != nil || c != lattice.C2(1, 2) {
		t.Errorf("ParseCoord 2d = %v, %v", c, err)
	}
	c, err = lattice.ParseCoord("1,2,3", lattice.Mode3D)
	if err != nil || c != lattice.C3(1, 2, 3) {
		t.Errorf("ParseCoord 3d = %v, %v", c, err)
	}
	if _, err = lattice.ParseCoord("1,2,3", lattice.Mode2D); !errors.Is(err, lattice.ErrBadCoord) {
		t.Errorf("ParseCoord arity error = %v; want ErrBadCoord", err)
	}
	if _, err = lattice.ParseCoord("a,2", lattice.Mode2D); !errors.Is(err, lattice.ErrBadCoord) {
		t.Errorf("ParseCoord syntax error = %v; want ErrBadCoord", err)
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]lattice.Mode{"0": lattice.Mode2D, "1": lattice.Mode3D, "3D": lattice.Mode3D, "2d": lattice.Mode2D} {
		got, err := lattice.ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := lattice.ParseMode("4d"); !errors.Is(err, lattice.ErrBadMode) {
		t.Errorf("ParseMode(4d) error = %v; want ErrBadMode", err)
	}
}

func TestFormat(t *testing.T) {
	s2 := lattice.MustSpace(2, 2, 1, lattice.Mode2D)
	s3 := lattice.MustSpace(2, 2, 2, lattice.Mode3D)
	if got := s2.Format(lattice.C2(1, 0)); got != "1,0" {
		t.Errorf("2d Format = %q", got)
	}
	if got := s2.Format(lattice.C3(1, 0, 2)); got != "1,0,2" {
		t.Errorf("2d Format with stray z = %q", got)
	}
	if got := s3.Format(lattice.C3(1, 0, 1)); got != "1,0,1" {
		t.Errorf("3d Format = %q", got)
	}
	if got := s3.String(); got != "3d 2x2x2" {
		t.Errorf("String = %q", got)
	}
}
