// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Triangular stores the lower triangle of an n×n symmetric matrix,
// diagonal included, packed row by row: (i,j) with j<=i lives at
// i*(i+1)/2 + j. Accesses with j>i are answered from (j,i).
//
// Concurrent Set calls on distinct cells are safe; the buffer is never
// resized after construction.
type Triangular struct {
	n    int
	data []float64
}

// NewTriangular allocates packed storage for an n×n symmetric matrix.
// Errors: ErrInvalidDimensions when n <= 0.
// Complexity: O(n²/2) space.
func NewTriangular(n int) (*Triangular, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Triangular{n: n, data: make([]float64, n*(n+1)/2)}, nil
}

// Size returns n.
func (t *Triangular) Size() int { return t.n }

func (t *Triangular) offset(i, j int) (int, error) {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		return 0, ErrOutOfRange
	}
	if j > i {
		i, j = j, i
	}

	return i*(i+1)/2 + j, nil
}

// At returns the value at (i, j) = (j, i).
func (t *Triangular) At(i, j int) (float64, error) {
	off, err := t.offset(i, j)
	if err != nil {
		return 0, fmt.Errorf("Triangular.At(%d,%d): %w", i, j, err)
	}

	return t.data[off], nil
}

// Set stores v at (i, j), which is also (j, i). Non-finite v is rejected.
func (t *Triangular) Set(i, j int, v float64) error {
	off, err := t.offset(i, j)
	if err != nil {
		return fmt.Errorf("Triangular.Set(%d,%d): %w", i, j, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("Triangular.Set(%d,%d): %w", i, j, ErrNaNInf)
	}
	t.data[off] = v

	return nil
}
