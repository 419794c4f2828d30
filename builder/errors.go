// SPDX-License-Identifier: MIT
// Package: gridsssp/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context using %w.

package builder

import "errors"

// ErrEmptySpace indicates a zero-value or otherwise empty lattice.Space.
var ErrEmptySpace = errors.New("builder: lattice space is empty")

// ErrTooFewVertices indicates a size parameter below the allowed minimum
// (e.g. Chain with fewer than two vertices).
var ErrTooFewVertices = errors.New("builder: parameter too small")
