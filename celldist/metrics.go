// SPDX-License-Identifier: MIT

package celldist

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/sparsedist/filter"
	"github.com/katalvlaran/sparsedist/observation"
)

const metricsNamespace = "sparsedist"

// Run outcomes used as the "outcome" label of runs_total.
const (
	OutcomeOK               = "ok"
	OutcomeInsufficientData = "insufficient_data"
	OutcomeInvalidInput     = "invalid_input"
	OutcomeError            = "error"
)

// Metrics holds the Prometheus collectors updated by Compute.
type Metrics struct {
	runs             *prometheus.CounterVec
	filterIterations prometheus.Histogram
	cellsRetained    prometheus.Gauge
	featuresRetained prometheus.Gauge
	pairs            prometheus.Counter
	duration         prometheus.Histogram
}

// NewMetrics builds the collectors and registers them with reg.
// A nil reg leaves them unregistered, which is handy in tests.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "runs_total",
			Help:      "Distance computations by outcome.",
		}, []string{"outcome"}),
		filterIterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "filter_iterations",
			Help:      "Passes needed by the filter to reach its fixed point.",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21},
		}),
		cellsRetained: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "cells_retained",
			Help:      "Cells kept by the last successful filter run.",
		}),
		featuresRetained: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "features_retained",
			Help:      "Features kept by the last successful filter run.",
		}),
		pairs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "pairs_computed_total",
			Help:      "Cell pairs evaluated, diagonal included.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "compute_seconds",
			Help:      "Wall time of a full Compute call.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{
		m.runs, m.filterIterations, m.cellsRetained, m.featuresRetained, m.pairs, m.duration,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observeFilter(res *filter.Result) {
	m.filterIterations.Observe(float64(res.Iterations))
	r, c := res.Matrix.Shape()
	m.cellsRetained.Set(float64(r))
	m.featuresRetained.Set(float64(c))
}

func (m *Metrics) observeRun(pairs int, elapsed time.Duration, err error) {
	m.runs.WithLabelValues(outcome(err)).Inc()
	m.duration.Observe(elapsed.Seconds())
	if err == nil {
		m.pairs.Add(float64(pairs))
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, observation.ErrInsufficientData):
		return OutcomeInsufficientData
	case errors.Is(err, observation.ErrEmptyInput),
		errors.Is(err, observation.ErrInvalidValue),
		errors.Is(err, filter.ErrBadThreshold):
		return OutcomeInvalidInput
	default:
		return OutcomeError
	}
}
