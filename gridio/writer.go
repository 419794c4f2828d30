package gridio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/gridsssp/lattice"
	"github.com/katalvlaran/gridsssp/sssp"
)

// distancePrecision is the number of significant digits printed for a
// distance, the default precision of a C++ output stream.
const distancePrecision = 6

// WriteDistances writes one line "x y [z] d" per reachable coordinate of
// res in ascending index order. Unreachable coordinates are not written.
func WriteDistances(w io.Writer, res *sssp.Result) error {
	bw := bufio.NewWriter(w)
	mode := res.Space().Mode()
	buf := make([]byte, 0, 64)
	for c, d := range res.Reachable() {
		buf = appendCoord(buf[:0], c, mode)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, d, 'g', distancePrecision, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteRelaxations writes the relaxation counter as a single line.
func WriteRelaxations(w io.Writer, n int64) error {
	_, err := io.WriteString(w, strconv.FormatInt(n, 10)+"\n")

	return err
}

// WriteProblem writes p in the format ReadProblem accepts. Weights are
// written in the shortest form that parses back to the same value.
func WriteProblem(w io.Writer, p *Problem) error {
	bw := bufio.NewWriter(w)
	mode := p.Space.Mode()
	x, y, z := p.Space.Dims()

	buf := make([]byte, 0, 64)
	buf = appendCoord(buf, lattice.Coord{X: x, Y: y, Z: z}, mode)
	buf = append(buf, '\n')
	buf = appendCoord(buf, p.Source, mode)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}
	for _, e := range p.Edges {
		buf = appendCoord(buf[:0], e.From, mode)
		buf = append(buf, ' ')
		buf = appendCoord(buf, e.To, mode)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, e.Weight, 'f', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// appendCoord appends "x y" or "x y z" depending on mode.
func appendCoord(buf []byte, c lattice.Coord, mode lattice.Mode) []byte {
	buf = strconv.AppendInt(buf, int64(c.X), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(c.Y), 10)
	if mode == lattice.Mode3D {
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(c.Z), 10)
	}

	return buf
}
