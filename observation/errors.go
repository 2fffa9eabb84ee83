// SPDX-License-Identifier: MIT
// Package observation: sentinel error set.
// Every message is prefixed with "observation: ..." so it can be grepped in
// logs. Call sites wrap with fmt.Errorf("<op>: %w", ErrX); callers match
// with errors.Is.

package observation

import "errors"

var (
	// ErrEmptyInput is returned when a matrix has zero rows or zero columns
	// before any filtering took place.
	ErrEmptyInput = errors.New("observation: empty input")

	// ErrInvalidValue is returned when a raw value cannot be decoded into
	// Present, Absent or Missing.
	ErrInvalidValue = errors.New("observation: invalid value")

	// ErrInsufficientData signals that too few cells or features survived
	// filtering to compute a distance.
	ErrInsufficientData = errors.New("observation: insufficient data")

	// ErrShape indicates that label lists and data rows disagree in size.
	ErrShape = errors.New("observation: shape mismatch")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("observation: index out of range")

	// ErrDuplicateLabel indicates that a cell or feature label appears twice.
	ErrDuplicateLabel = errors.New("observation: duplicate label")
)
