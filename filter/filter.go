// SPDX-License-Identifier: MIT

package filter

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sparsedist/observation"
)

// ErrBadThreshold is returned when a threshold is below 1.
var ErrBadThreshold = errors.New("filter: thresholds must be >= 1")

const opApply = "filter.Apply"

// Result is the fixed point of the pruning loop.
type Result struct {
	// Matrix is the retained sub-matrix; label order matches the input.
	Matrix *observation.Matrix

	// Rows and Cols are the retained indices into the input matrix, ascending.
	Rows []int
	Cols []int

	// DroppedCells and DroppedFeatures list removed labels in input order.
	DroppedCells    []string
	DroppedFeatures []string

	// Iterations counts passes, including the final confirming pass.
	Iterations int
}

// Apply runs the pruning loop on m.
// Implementation:
//   - Stage 1: validate thresholds and non-empty input.
//   - Stage 2: decode rows once, then iterate on index selections.
//   - Stage 3: reject fixed points with < 2 cells or 0 features, then
//     materialize the sub-matrix with Induced.
//
// Errors:
//   - ErrBadThreshold, observation.ErrEmptyInput,
//     observation.ErrInsufficientData ("not enough data" / "no features retained").
//
// Complexity:
//   - Time O(k·r·c) for k iterations, Space O(r·c).
func Apply(m *observation.Matrix, minPresence, minMeasurementsPerCell int) (*Result, error) {
	if minPresence < 1 || minMeasurementsPerCell < 1 {
		return nil, fmt.Errorf("%s(minPresence=%d, minMeasurementsPerCell=%d): %w",
			opApply, minPresence, minMeasurementsPerCell, ErrBadThreshold)
	}
	if m == nil || m.Rows() == 0 || m.Cols() == 0 {
		return nil, fmt.Errorf("%s: %w", opApply, observation.ErrEmptyInput)
	}

	r, c := m.Shape()
	data := make([][]observation.State, r)
	var err error
	for i := 0; i < r; i++ {
		if data[i], err = m.Row(i); err != nil {
			return nil, fmt.Errorf("%s: %w", opApply, err)
		}
	}

	rows := seq(r)
	cols := seq(c)
	iterations := 0
	for {
		iterations++
		// Invariant: selRows ⊆ rows and selCols ⊆ cols, so sizes never grow.
		selRows := selectRows(data, rows, cols, minMeasurementsPerCell)
		selCols := selectCols(data, selRows, cols, minPresence)
		stable := len(selRows) == len(rows) && len(selCols) == len(cols)
		rows, cols = selRows, selCols
		if stable {
			break
		}
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: not enough data (%d cells kept): %w", opApply, len(rows), observation.ErrInsufficientData)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("%s: no features retained: %w", opApply, observation.ErrInsufficientData)
	}

	kept, err := m.Induced(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opApply, err)
	}

	return &Result{
		Matrix:          kept,
		Rows:            rows,
		Cols:            cols,
		DroppedCells:    dropped(m.Cells(), rows),
		DroppedFeatures: dropped(m.Features(), cols),
		Iterations:      iterations,
	}, nil
}

// selectRows keeps rows with at least minDefined non-missing entries over cols.
func selectRows(data [][]observation.State, rows, cols []int, minDefined int) []int {
	out := make([]int, 0, len(rows))
	for _, i := range rows {
		n := 0
		for _, j := range cols {
			if data[i][j].Defined() {
				n++
			}
		}
		if n >= minDefined {
			out = append(out, i)
		}
	}

	return out
}

// selectCols keeps columns with >= minPresence Present and >= 1 Absent over rows.
func selectCols(data [][]observation.State, rows, cols []int, minPresence int) []int {
	out := make([]int, 0, len(cols))
	for _, j := range cols {
		present, absent := 0, 0
		for _, i := range rows {
			switch data[i][j] {
			case observation.Present:
				present++
			case observation.Absent:
				absent++
			}
		}
		if present >= minPresence && absent >= 1 {
			out = append(out, j)
		}
	}

	return out
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// dropped returns labels whose index is not in kept (kept is ascending).
func dropped(labels []string, kept []int) []string {
	var out []string
	k := 0
	for i, l := range labels {
		if k < len(kept) && kept[k] == i {
			k++
			continue
		}
		out = append(out, l)
	}

	return out
}
