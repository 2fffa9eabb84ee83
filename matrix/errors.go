// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (possibly wrapped with call-site
// context via %w); tests match them with errors.Is. No function panics on
// user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the given epsilon.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrLabelMismatch indicates that the label count differs from the matrix size.
	ErrLabelMismatch = errors.New("matrix: label count does not match size")

	// ErrUnknownLabel indicates that a referenced label is not present.
	ErrUnknownLabel = errors.New("matrix: unknown label")

	// ErrNilMatrix indicates that a nil matrix was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
