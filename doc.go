// Package gridsssp computes single-source shortest paths over graphs whose
// vertices are the points of a 2D or 3D integer lattice.
//
// What is in the box?
//
//	• Lattice spaces: X×Y or X×Y×Z boxes, lazy enumeration, dense indexing
//	• Two solvers over one distance table layout:
//	    – Dijkstra, sequential, binary heap with stale-entry discard
//	    – Bellman-Ford, parallel passes with early exit on convergence
//	• A text format for problems and results, plus Graphviz export
//	• Deterministic generators for lattice edge sets
//	• YAML / TOML run configuration and a command-line tool
//
// Packages:
//
//	lattice/      — Space, Coord, Mode; index ↔ coordinate mapping
//	sssp/         — Edge, Adjacency, Table, Dijkstra, BellmanFord, Solve
//	builder/      — Lattice and Chain edge generators with WeightFn options
//	gridio/       — ReadProblem, WriteProblem, WriteDistances, WriteDOT
//	config/       — Config, Load (YAML/TOML), SolveOptions
//	cmd/gridsssp/ — "solve" and "gen" commands
//	examples/     — a runnable terrain walk-through
//
// Quick ASCII example (2D, source S, every arrow weight 1):
//
//	S → · → ·
//	↓       ↓
//	· → · → ·
//
// gives distance 3 to the bottom-right corner along either route.
//
//	go install github.com/katalvlaran/gridsssp/cmd/gridsssp@latest
package gridsssp
