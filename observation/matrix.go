// SPDX-License-Identifier: MIT

// Package observation - labeled cell × feature storage (row-major).
//
// Purpose:
//   - Hold the tri-state readouts of every cell (row) for every feature (column).
//   - Preserve caller label order on both axes; filtering never reorders.
//   - Stay immutable after construction: sub-matrices are new copies (Induced),
//     row accessors return copies (Row).
//
// Complexity quicksheet:
//   - NewMatrix: O(r*c) validation + copy; At: O(1); Row: O(c); Induced: O(r'*c').

package observation

import "fmt"

const (
	ctxNew     = "NewMatrix"
	ctxAt      = "At"
	ctxRow     = "Row"
	ctxInduced = "Induced"
)

// Matrix is an immutable labeled table of States.
//   - cells label rows, features label columns (order significant).
//   - data holds r*c States in row-major order (offset = i*c + j).
type Matrix struct {
	cells    []string
	features []string
	data     []State
}

// NewMatrix builds a Matrix from labels and rows of States.
// Implementation:
//   - Stage 1: reject empty label lists (ErrEmptyInput) and duplicate labels.
//   - Stage 2: check len(rows)==len(cells) and every row has len(features).
//   - Stage 3: validate each State and copy into a flat buffer.
//
// Errors:
//   - ErrEmptyInput, ErrShape, ErrDuplicateLabel, ErrInvalidValue.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewMatrix(cells, features []string, rows [][]State) (*Matrix, error) {
	if len(cells) == 0 || len(features) == 0 {
		return nil, fmt.Errorf("%s(%d×%d): %w", ctxNew, len(cells), len(features), ErrEmptyInput)
	}
	if err := checkUnique(cells); err != nil {
		return nil, fmt.Errorf("%s: cells: %w", ctxNew, err)
	}
	if err := checkUnique(features); err != nil {
		return nil, fmt.Errorf("%s: features: %w", ctxNew, err)
	}
	if len(rows) != len(cells) {
		return nil, fmt.Errorf("%s: %d rows for %d cells: %w", ctxNew, len(rows), len(cells), ErrShape)
	}

	c := len(features)
	data := make([]State, len(cells)*c)
	var i, j int
	for i = range rows {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxNew, i, len(rows[i]), c, ErrShape)
		}
		for j = 0; j < c; j++ {
			s := rows[i][j]
			if !s.Valid() {
				return nil, fmt.Errorf("%s(%d,%d): %v: %w", ctxNew, i, j, s, ErrInvalidValue)
			}
			data[i*c+j] = s
		}
	}

	return &Matrix{
		cells:    append([]string(nil), cells...),
		features: append([]string(nil), features...),
		data:     data,
	}, nil
}

// FromFloats decodes rows in the 1 / 0 / NaN convention and builds a Matrix.
func FromFloats(cells, features []string, rows [][]float64) (*Matrix, error) {
	states := make([][]State, len(rows))
	var err error
	for i, row := range rows {
		states[i] = make([]State, len(row))
		for j, v := range row {
			if states[i][j], err = StateFromFloat(v); err != nil {
				return nil, fmt.Errorf("FromFloats(%d,%d): %w", i, j, err)
			}
		}
	}

	return NewMatrix(cells, features, states)
}

// FromInts decodes rows in the 1 / 0 / -1 convention and builds a Matrix.
func FromInts(cells, features []string, rows [][]int) (*Matrix, error) {
	states := make([][]State, len(rows))
	var err error
	for i, row := range rows {
		states[i] = make([]State, len(row))
		for j, v := range row {
			if states[i][j], err = StateFromInt(v); err != nil {
				return nil, fmt.Errorf("FromInts(%d,%d): %w", i, j, err)
			}
		}
	}

	return NewMatrix(cells, features, states)
}

// Rows returns the number of cells.
func (m *Matrix) Rows() int { return len(m.cells) }

// Cols returns the number of features.
func (m *Matrix) Cols() int { return len(m.features) }

// Shape returns (Rows, Cols).
func (m *Matrix) Shape() (rows, cols int) { return len(m.cells), len(m.features) }

// Cells returns a copy of the cell labels in row order.
func (m *Matrix) Cells() []string { return append([]string(nil), m.cells...) }

// Features returns a copy of the feature labels in column order.
func (m *Matrix) Features() []string { return append([]string(nil), m.features...) }

// At returns the State at (row, col) or ErrOutOfRange.
func (m *Matrix) At(row, col int) (State, error) {
	if row < 0 || row >= len(m.cells) || col < 0 || col >= len(m.features) {
		return Missing, fmt.Errorf("Matrix.%s(%d,%d): %w", ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[row*len(m.features)+col], nil
}

// Row returns a copy of the feature vector of cell i.
func (m *Matrix) Row(i int) ([]State, error) {
	if i < 0 || i >= len(m.cells) {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}
	c := len(m.features)
	out := make([]State, c)
	copy(out, m.data[i*c:(i+1)*c])

	return out, nil
}

// Defined returns the number of non-missing entries in row i.
func (m *Matrix) Defined(i int) (int, error) {
	row, err := m.Row(i)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, s := range row {
		if s.Defined() {
			n++
		}
	}

	return n, nil
}

// Induced materializes the sub-matrix at the given row and column indices.
// Implementation:
//   - Stage 1: bounds-check every index (ErrOutOfRange).
//   - Stage 2: copy labels and States in the order given.
//
// Behavior highlights:
//   - Index order is preserved, so increasing index lists keep the original
//     label order.
//   - An empty index list yields a legal 0×k or k×0 result; only the public
//     constructors forbid empty shapes.
//
// Complexity:
//   - Time O(r'*c'), Space O(r'*c').
func (m *Matrix) Induced(rowsIdx, colsIdx []int) (*Matrix, error) {
	r, c := len(m.cells), len(m.features)
	for _, i := range rowsIdx {
		if i < 0 || i >= r {
			return nil, fmt.Errorf("Matrix.%s: row %d: %w", ctxInduced, i, ErrOutOfRange)
		}
	}
	for _, j := range colsIdx {
		if j < 0 || j >= c {
			return nil, fmt.Errorf("Matrix.%s: col %d: %w", ctxInduced, j, ErrOutOfRange)
		}
	}

	out := &Matrix{
		cells:    make([]string, len(rowsIdx)),
		features: make([]string, len(colsIdx)),
		data:     make([]State, len(rowsIdx)*len(colsIdx)),
	}
	for jj, j := range colsIdx {
		out.features[jj] = m.features[j]
	}
	w := len(colsIdx)
	for ii, i := range rowsIdx {
		out.cells[ii] = m.cells[i]
		base := i * c
		for jj, j := range colsIdx {
			out.data[ii*w+jj] = m.data[base+j]
		}
	}

	return out, nil
}

func checkUnique(labels []string) error {
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			return fmt.Errorf("%q: %w", l, ErrDuplicateLabel)
		}
		seen[l] = struct{}{}
	}

	return nil
}
