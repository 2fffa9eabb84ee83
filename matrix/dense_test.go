// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsedist/matrix"
)

func TestNewDense_BadShape(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(2, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSetBounds(t *testing.T) {
	d, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	r, c := d.Shape()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)

	require.NoError(t, d.Set(1, 2, 4.5))
	v, err := d.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = d.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, d.Set(0, 3, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, d.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, d.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	row, err := d.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 4.5}, row)
	_, err = d.Row(5)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	d, _ := matrix.NewDense(2, 2)
	require.NoError(t, d.Set(0, 1, 1))
	cp := d.Clone()
	require.NoError(t, cp.Set(0, 1, 7))

	v, _ := d.At(0, 1)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, "[0, 1]\n[0, 0]\n", d.String())
}

func TestDense_IsSymmetric(t *testing.T) {
	d, _ := matrix.NewDense(2, 2)
	require.NoError(t, d.Set(0, 1, 1))
	assert.False(t, d.IsSymmetric(0))
	require.NoError(t, d.Set(1, 0, 1+1e-12))
	assert.True(t, d.IsSymmetric(1e-9))

	rect, _ := matrix.NewDense(2, 3)
	assert.False(t, rect.IsSymmetric(1))
}
