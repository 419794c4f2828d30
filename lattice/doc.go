// Package lattice defines the vertex domain of a grid graph: the set of
// integer lattice points of an X×Y (2D) or X×Y×Z (3D) box.
//
// What:
//
//   - Coord is a comparable (x, y, z) triple used as vertex identity.
//   - Space enumerates every coordinate lazily and maps coordinates to
//     dense row-major indices (x·Y·Z + y·Z + z) and back.
//   - In 2D mode Z is fixed at 1, so every coordinate carries z = 0 and
//     the z component is omitted from external representation.
//
// Why:
//
//   - Dense indices let shortest-path solvers keep distances in flat
//     arrays instead of hashing composite keys.
//   - A single Space type keeps 2D and 3D semantics identical: a 3D space
//     with Z=1 indexes exactly like the 2D space with the same X and Y.
//
// Complexity:
//
//   - NewSpace, Index, CoordAt, Contains: O(1).
//   - All: O(X·Y·Z) over the full iteration, O(1) memory.
//
// Errors:
//
//   - ErrBadDimension: a dimension is not a positive integer.
//   - ErrBadMode:      the Mode value is neither Mode2D nor Mode3D.
package lattice
