// SPDX-License-Identifier: MIT

package celldist

import (
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsedist/observation"
)

func TestMetrics_RecordRuns(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	nan := math.NaN()
	ok, err := observation.FromFloats(
		[]string{"a", "b", "c"}, []string{"x", "y"},
		[][]float64{{1, 0}, {0, 1}, {1, nan}})
	require.NoError(t, err)
	empty, err := observation.FromFloats(
		[]string{"a", "b"}, []string{"x"},
		[][]float64{{nan}, {nan}})
	require.NoError(t, err)

	_, err = Compute(ok, WithMetrics(m))
	require.NoError(t, err)
	_, err = Compute(empty, WithMetrics(m))
	require.Error(t, err)
	_, err = Compute(nil, WithMetrics(m))
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues(OutcomeInsufficientData)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues(OutcomeInvalidInput)))
	assert.Equal(t, 6.0, testutil.ToFloat64(m.pairs))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.cellsRetained))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.featuresRetained))

	n, err := testutil.GatherAndCount(reg, "sparsedist_runs_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// Registering a second set on the same registry collides.
	_, err = NewMetrics(reg)
	assert.Error(t, err)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeOK, outcome(nil))
	assert.Equal(t, OutcomeInvalidInput, outcome(observation.ErrInvalidValue))
	assert.Equal(t, OutcomeError, outcome(assert.AnError))
}
