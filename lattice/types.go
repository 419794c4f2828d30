// Package lattice defines core types, modes, and sentinel errors
// for lattice coordinate spaces.
package lattice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for lattice operations.
var (
	// ErrBadDimension indicates a dimension that is zero or negative.
	ErrBadDimension = errors.New("lattice: dimensions must be positive")
	// ErrBadMode indicates an unknown Mode value.
	ErrBadMode = errors.New("lattice: unknown mode")
	// ErrBadCoord indicates a coordinate string that cannot be parsed.
	ErrBadCoord = errors.New("lattice: malformed coordinate")
)

// Mode selects the dimensionality of a Space.
type Mode int

const (
	// Mode2D uses X×Y coordinates; Z is always 0.
	Mode2D Mode = iota
	// Mode3D uses X×Y×Z coordinates.
	Mode3D
)

// String returns "2d" or "3d".
func (m Mode) String() string {
	switch m {
	case Mode2D:
		return "2d"
	case Mode3D:
		return "3d"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Components returns the number of coordinate components written
// externally for this mode: 2 or 3.
func (m Mode) Components() int {
	if m == Mode3D {
		return 3
	}

	return 2
}

// ParseMode accepts "2d", "3d", "2", "3", "0" (2D) and "1" (3D).
// The last two match the integer --flag3d switch of the command line.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "2d", "2", "0", "":
		return Mode2D, nil
	case "3d", "3", "1":
		return Mode3D, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrBadMode, s)
}

// Coord is an integer lattice point. In 2D spaces Z is 0.
// Two coordinates are equal iff all components match, so Coord is
// usable directly as a map key.
type Coord struct {
	X, Y, Z int
}

// C2 returns the 2D coordinate (x, y, 0).
func C2(x, y int) Coord { return Coord{X: x, Y: y} }

// C3 returns the 3D coordinate (x, y, z).
func C3(x, y, z int) Coord { return Coord{X: x, Y: y, Z: z} }

// String renders all three components as "x,y,z".
// Use Space.Format for mode-aware rendering.
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d,%d", c.X, c.Y, c.Z)
}

// ParseCoord parses "x,y" (2D) or "x,y,z" (3D) according to mode.
func ParseCoord(s string, mode Mode) (Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != mode.Components() {
		return Coord{}, fmt.Errorf("%w: %q needs %d components", ErrBadCoord, s, mode.Components())
	}
	var vals [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Coord{}, fmt.Errorf("%w: %q: %v", ErrBadCoord, s, err)
		}
		vals[i] = v
	}

	return Coord{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}

// Space is an immutable X×Y×Z box of lattice coordinates.
// In 2D mode Z is 1. The zero value is an empty space.
type Space struct {
	x, y, z int
	mode    Mode
}
