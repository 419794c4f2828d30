package lattice

import (
	"fmt"
	"iter"
)

// NewSpace constructs a Space of the given dimensions.
// In Mode2D the z argument is ignored and treated as 1.
// Returns ErrBadMode for an unknown mode and ErrBadDimension if any
// used dimension is not positive.
// Complexity: O(1).
func NewSpace(x, y, z int, mode Mode) (Space, error) {
	switch mode {
	case Mode2D:
		z = 1
	case Mode3D:
	default:
		return Space{}, fmt.Errorf("%w: %d", ErrBadMode, int(mode))
	}
	if x < 1 || y < 1 || z < 1 {
		return Space{}, fmt.Errorf("%w: got %dx%dx%d", ErrBadDimension, x, y, z)
	}

	return Space{x: x, y: y, z: z, mode: mode}, nil
}

// MustSpace is NewSpace that panics on error. Intended for tests and
// fixed literals.
func MustSpace(x, y, z int, mode Mode) Space {
	s, err := NewSpace(x, y, z, mode)
	if err != nil {
		panic(err)
	}

	return s
}

// Dims returns X, Y and Z (Z is 1 in 2D mode).
func (s Space) Dims() (x, y, z int) { return s.x, s.y, s.z }

// Mode returns the dimensionality of the space.
func (s Space) Mode() Mode { return s.mode }

// Is3D reports whether the space is in 3D mode.
func (s Space) Is3D() bool { return s.mode == Mode3D }

// Len returns the number of coordinates: X·Y·Z.
func (s Space) Len() int { return s.x * s.y * s.z }

// Contains reports whether c lies inside the space.
// In 2D mode only z == 0 is inside.
// Complexity: O(1).
func (s Space) Contains(c Coord) bool {
	return c.X >= 0 && c.X < s.x &&
		c.Y >= 0 && c.Y < s.y &&
		c.Z >= 0 && c.Z < s.z
}

// Index maps c to its dense index x·Y·Z + y·Z + z.
// The second result is false if c is outside the space.
// Complexity: O(1).
func (s Space) Index(c Coord) (int, bool) {
	if !s.Contains(c) {
		return -1, false
	}

	return (c.X*s.y+c.Y)*s.z + c.Z, true
}

// CoordAt converts a dense index back into a coordinate.
// The index must be in [0, Len()).
// Complexity: O(1).
func (s Space) CoordAt(idx int) Coord {
	z := idx % s.z
	idx /= s.z

	return Coord{X: idx / s.y, Y: idx % s.y, Z: z}
}

// All yields every coordinate in ascending index order: x outermost,
// then y, then z. The sequence is lazy and may be stopped early.
func (s Space) All() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for x := 0; x < s.x; x++ {
			for y := 0; y < s.y; y++ {
				for z := 0; z < s.z; z++ {
					if !yield(Coord{X: x, Y: y, Z: z}) {
						return
					}
				}
			}
		}
	}
}

// Format renders c with as many components as the space's mode:
// "x,y" in 2D and "x,y,z" in 3D. A 2D coordinate with a nonzero Z keeps
// its third component so an out-of-range Z stays visible.
func (s Space) Format(c Coord) string {
	if s.mode == Mode3D || c.Z != 0 {
		return fmt.Sprintf("%d,%d,%d", c.X, c.Y, c.Z)
	}

	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// String describes the space, e.g. "2d 4x3" or "3d 4x3x2".
func (s Space) String() string {
	if s.mode == Mode3D {
		return fmt.Sprintf("3d %dx%dx%d", s.x, s.y, s.z)
	}

	return fmt.Sprintf("2d %dx%d", s.x, s.y)
}
