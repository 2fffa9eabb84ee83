// SPDX-License-Identifier: MIT

package celldist_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsedist/celldist"
	"github.com/katalvlaran/sparsedist/filter"
	"github.com/katalvlaran/sparsedist/matrix"
	"github.com/katalvlaran/sparsedist/observation"
	"github.com/katalvlaran/sparsedist/weights"
)

var nan = math.NaN()

// fourCells: f3 is never Present and gets pruned; c1 and c3 are identical.
func fourCells(t *testing.T) *observation.Matrix {
	t.Helper()
	m, err := observation.FromFloats(
		[]string{"c1", "c2", "c3", "c4"},
		[]string{"f1", "f2", "f3", "f4", "f5"},
		[][]float64{
			{1, 0, 0, 1, 0},
			{0, 1, 0, 0, 1},
			{1, 0, 0, 1, 0},
			{0, 1, nan, 1, 1},
		})
	require.NoError(t, err)

	return m
}

func assertSymmetricZeroDiagonal(t *testing.T, l *matrix.Labeled, zeroDiag bool) {
	t.Helper()
	n := l.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a, err := l.At(i, j)
			require.NoError(t, err)
			b, err := l.At(j, i)
			require.NoError(t, err)
			assert.Equal(t, a, b, "(%d,%d)", i, j)
		}
		if zeroDiag {
			d, _ := l.At(i, i)
			assert.Equal(t, 0.0, d, "diag %d", i)
		}
	}
}

func TestCompute_EndToEnd(t *testing.T) {
	res, err := celldist.Compute(fourCells(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"f1", "f2", "f4", "f5"}, res.Filtered.Features())
	assert.Equal(t, []string{"f3"}, res.DroppedFeatures)
	assert.Equal(t, []string{"f1", "f2", "f4", "f5"}, res.Weights.Features())
	assert.Equal(t, 2, res.Iterations)

	for _, l := range []*matrix.Labeled{res.Distance, res.Similarity, res.Joint} {
		assert.Equal(t, []string{"c1", "c2", "c3", "c4"}, l.Labels())
	}
	assertSymmetricZeroDiagonal(t, res.Distance, true)
	assertSymmetricZeroDiagonal(t, res.Joint, true)
	assertSymmetricZeroDiagonal(t, res.Similarity, false)

	// Identical cells.
	d, err := res.Distance.AtLabel("c1", "c3")
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
	s, err := res.Similarity.AtLabel("c1", "c3")
	require.NoError(t, err)
	assert.Equal(t, 1.0, s)

	// Joint = distance + 1 - similarity everywhere.
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			dv, _ := res.Distance.At(i, j)
			sv, _ := res.Similarity.At(i, j)
			jv, _ := res.Joint.At(i, j)
			assert.InDelta(t, dv+1-sv, jv, 1e-12)
		}
	}

	// Last-pair normalization: twice the defined weight of the last cell.
	last, err := res.Filtered.Row(res.Filtered.Rows() - 1)
	require.NoError(t, err)
	want := 0.0
	for f, st := range last {
		want += 2 * res.Weights.At(f).Of(st)
	}
	assert.InDelta(t, want, res.LastPairNormalization, 1e-12)
}

// TestCompute_Uniform: with weighting off, c1 vs c2 mismatch on all four
// kept features, so distance = 16 / 16 = 1 and similarity 0.
func TestCompute_Uniform(t *testing.T) {
	res, err := celldist.Compute(fourCells(t), celldist.WithWeighted(false))
	require.NoError(t, err)
	for _, p := range res.Weights.Pairs() {
		assert.Equal(t, weights.Pair{Present: 2, Absent: 2}, p)
	}

	d, _ := res.Distance.AtLabel("c1", "c2")
	s, _ := res.Similarity.AtLabel("c1", "c2")
	j, _ := res.Joint.AtLabel("c1", "c2")
	assert.InDelta(t, 1.0, d, 1e-12)
	assert.InDelta(t, 0.0, s, 1e-12)
	assert.InDelta(t, 2.0, j, 1e-12)

	// c1 = 1 0 1 0, c4 = 0 1 1 1: three mismatches out of 4+4 defined.
	d, _ = res.Distance.AtLabel("c1", "c4")
	assert.InDelta(t, 12.0/16.0, d, 1e-12)
}

func TestCompute_WorkersDoNotChangeResult(t *testing.T) {
	seq, err := celldist.Compute(fourCells(t))
	require.NoError(t, err)
	par, err := celldist.Compute(fourCells(t), celldist.WithWorkers(3))
	require.NoError(t, err)
	assert.Equal(t, seq, par)
}

// TestCompute_FilterIdempotent: feeding the filtered matrix back in gives
// the same matrices and a single filter pass.
func TestCompute_FilterIdempotent(t *testing.T) {
	first, err := celldist.Compute(fourCells(t))
	require.NoError(t, err)
	second, err := celldist.Compute(first.Filtered)
	require.NoError(t, err)

	assert.Equal(t, first.Filtered, second.Filtered)
	assert.Equal(t, first.Joint, second.Joint)
	assert.Equal(t, 1, second.Iterations)
}

func TestCompute_Errors(t *testing.T) {
	allMissing, err := observation.FromFloats(
		[]string{"a", "b", "c"}, []string{"x", "y"},
		[][]float64{{nan, nan}, {nan, nan}, {nan, nan}})
	require.NoError(t, err)

	_, err = celldist.Compute(allMissing)
	assert.ErrorIs(t, err, observation.ErrInsufficientData)

	_, err = celldist.Compute(nil)
	assert.ErrorIs(t, err, observation.ErrEmptyInput)

	assert.Panics(t, func() { celldist.WithMinPresence(0) })
	assert.Panics(t, func() { celldist.WithMinMeasurementsPerCell(0) })
	assert.Panics(t, func() { celldist.WithWorkers(0) })
	assert.Panics(t, func() { celldist.WithMetrics(nil) })
}

func TestCompute_HighThresholdsPruneEverything(t *testing.T) {
	_, err := celldist.Compute(fourCells(t), celldist.WithMinPresence(4))
	assert.ErrorIs(t, err, observation.ErrInsufficientData)

	_, err = celldist.Compute(fourCells(t), celldist.WithMinMeasurementsPerCell(6))
	assert.ErrorIs(t, err, observation.ErrInsufficientData)
	assert.NotErrorIs(t, err, filter.ErrBadThreshold)
}

func TestCompute_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := celldist.Compute(fourCells(t), celldist.WithLogger(logger))
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `"message":"filter reached fixed point"`)
	assert.Contains(t, out, `"features_dropped":1`)
	assert.Contains(t, out, `"message":"distance computation finished"`)

	buf.Reset()
	_, err = celldist.Compute(nil, celldist.WithLogger(logger))
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}
