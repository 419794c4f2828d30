package gridio

import "errors"

// Sentinel errors for problem parsing.
var (
	// ErrMalformedInput indicates a missing or non-numeric token in the
	// header or an edge record, or header dimensions that are not positive.
	ErrMalformedInput = errors.New("gridio: malformed input")

	// ErrTruncatedEdge indicates input ended in the middle of an edge record.
	ErrTruncatedEdge = errors.New("gridio: truncated edge record")
)
