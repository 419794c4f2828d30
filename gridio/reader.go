package gridio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/gridsssp/lattice"
	"github.com/katalvlaran/gridsssp/sssp"
)

// Problem is one parsed shortest-path instance.
type Problem struct {
	Space  lattice.Space
	Source lattice.Coord
	Edges  []sssp.Edge
}

// ReadProblem parses a problem from r. The number of coordinate components
// (2 or 3) is taken from mode.
//
// The source and edge endpoints are not bounds-checked here; sssp.Solve
// does that and reports sssp.ErrOutOfBounds.
//
// Returns ErrMalformedInput (with the 1-based token position) for a missing
// or non-numeric header token, a non-numeric edge token or non-positive
// dimensions, and ErrTruncatedEdge if input ends inside an edge record.
// Complexity: O(size of input).
func ReadProblem(r io.Reader, mode lattice.Mode) (*Problem, error) {
	tr := newTokenReader(r)
	k := mode.Components()

	var dims [3]int
	dims[2] = 1
	for i := 0; i < k; i++ {
		v, err := tr.int("dimension")
		if err != nil {
			return nil, tr.header(err, "dimension")
		}
		dims[i] = v
	}
	space, err := lattice.NewSpace(dims[0], dims[1], dims[2], mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	src, err := tr.coord(k, "source")
	if err != nil {
		return nil, tr.header(err, "source")
	}

	p := &Problem{Space: space, Source: src}
	for {
		// A record may only end cleanly before its first token.
		if !tr.more() {
			if tr.err != nil {
				return nil, tr.err
			}
			break
		}
		e, err := tr.edge(k)
		if err != nil {
			return nil, fmt.Errorf("edge #%d: %w", len(p.Edges), err)
		}
		p.Edges = append(p.Edges, e)
	}

	return p, nil
}

// tokenReader yields whitespace-separated tokens and counts them.
type tokenReader struct {
	sc  *bufio.Scanner
	pos int
	err error

	peeked bool
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokenReader{sc: sc}
}

// more reports whether another token is available without consuming it.
func (t *tokenReader) more() bool {
	if t.peeked {
		return true
	}
	if !t.sc.Scan() {
		t.err = t.sc.Err()
		return false
	}
	t.peeked = true

	return true
}

// next returns the next token; io.EOF at end of input.
func (t *tokenReader) next() (string, error) {
	if !t.more() {
		if t.err != nil {
			return "", t.err
		}
		return "", io.EOF
	}
	t.peeked = false
	t.pos++

	return t.sc.Text(), nil
}

// header turns end of input inside the header into ErrMalformedInput.
func (t *tokenReader) header(err error, what string) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: missing %s at token %d", ErrMalformedInput, what, t.pos+1)
	}

	return err
}

func (t *tokenReader) int(what string) (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q at token %d is not an integer", ErrMalformedInput, what, tok, t.pos)
	}

	return v, nil
}

func (t *tokenReader) float(what string) (float64, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q at token %d is not a number", ErrMalformedInput, what, tok, t.pos)
	}

	return v, nil
}

func (t *tokenReader) coord(k int, what string) (lattice.Coord, error) {
	var v [3]int
	for i := 0; i < k; i++ {
		n, err := t.int(what)
		if err != nil {
			return lattice.Coord{}, err
		}
		v[i] = n
	}

	return lattice.Coord{X: v[0], Y: v[1], Z: v[2]}, nil
}

// edge reads one record of 2k+1 tokens. End of input anywhere inside the
// record is ErrTruncatedEdge.
func (t *tokenReader) edge(k int) (sssp.Edge, error) {
	var v [6]int
	for i := 0; i < 2*k; i++ {
		n, err := t.int("endpoint")
		if errors.Is(err, io.EOF) {
			return sssp.Edge{}, fmt.Errorf("%w: input ended after %d of %d tokens", ErrTruncatedEdge, i, 2*k+1)
		}
		if err != nil {
			return sssp.Edge{}, err
		}
		v[i] = n
	}
	w, err := t.float("weight")
	if errors.Is(err, io.EOF) {
		return sssp.Edge{}, fmt.Errorf("%w: input ended before the weight", ErrTruncatedEdge)
	}
	if err != nil {
		return sssp.Edge{}, err
	}

	e := sssp.Edge{Weight: w}
	e.From = lattice.Coord{X: v[0], Y: v[1]}
	e.To = lattice.Coord{X: v[k], Y: v[k+1]}
	if k == 3 {
		e.From.Z, e.To.Z = v[2], v[5]
	}

	return e, nil
}
