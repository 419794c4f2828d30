// Package gridio reads and writes lattice shortest-path problems and their
// results in a plain whitespace-separated text format.
//
// Problem format (2D shown, 3D adds a Z component to every coordinate):
//
//	X Y
//	Sx Sy
//	x1 y1 x2 y2 w
//	x1 y1 x2 y2 w
//	...
//
// Edge records continue until end of input. Line breaks carry no meaning;
// any whitespace separates tokens. Whether coordinates have two or three
// components is decided by the caller (see lattice.Mode), not by the file.
//
// Result format: one line "x y [z] d" per reachable coordinate in ascending
// index order, the distance printed with six significant digits. A
// relaxation log holds a single integer line.
//
// WriteDOT renders a solved instance as a Graphviz digraph via
// github.com/awalterschulze/gographviz.
package gridio
