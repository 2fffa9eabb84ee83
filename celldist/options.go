// SPDX-License-Identifier: MIT

// Package celldist: functional configuration of the pipeline.
// This file defines:
//   - documented defaults (constants),
//   - Option / options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//     Values coming from untrusted sources go through Config.Validate first.
package celldist

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/sparsedist/pairwise"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMinPresence is the minimum Present count for a feature to be kept.
	DefaultMinPresence = 1

	// DefaultMinMeasurementsPerCell is the minimum non-missing count for a cell to be kept.
	DefaultMinMeasurementsPerCell = 1

	// DefaultWeighted enables information weighting; false gives every state weight 2.
	DefaultWeighted = true

	// DefaultWorkers keeps the pairwise loop on the calling goroutine.
	DefaultWorkers = pairwise.DefaultWorkers
)

// ---------- Internal panic messages ----------

const (
	panicMinPresenceInvalid  = "celldist: WithMinPresence: value must be >= 1"
	panicMinMeasuredInvalid  = "celldist: WithMinMeasurementsPerCell: value must be >= 1"
	panicWorkersInvalid      = "celldist: WithWorkers: value must be >= 1"
	panicMetricsNilCollector = "celldist: WithMetrics: metrics must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*options)

type options struct {
	minPresence            int
	minMeasurementsPerCell int
	weighted               bool
	workers                int

	logger  zerolog.Logger
	metrics *Metrics
}

func defaultOptions() options {
	return options{
		minPresence:            DefaultMinPresence,
		minMeasurementsPerCell: DefaultMinMeasurementsPerCell,
		weighted:               DefaultWeighted,
		workers:                DefaultWorkers,
		logger:                 zerolog.Nop(),
	}
}

func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithMinPresence sets the minimum number of Present entries a feature
// needs among retained cells. Panics if n < 1.
func WithMinPresence(n int) Option {
	if n < 1 {
		panic(panicMinPresenceInvalid)
	}

	return func(o *options) { o.minPresence = n }
}

// WithMinMeasurementsPerCell sets the minimum number of non-missing entries
// a cell needs among retained features. Panics if n < 1.
func WithMinMeasurementsPerCell(n int) Option {
	if n < 1 {
		panic(panicMinMeasuredInvalid)
	}

	return func(o *options) { o.minMeasurementsPerCell = n }
}

// WithWeighted toggles information weighting.
func WithWeighted(weighted bool) Option {
	return func(o *options) { o.weighted = weighted }
}

// WithWorkers bounds concurrent rows in the pairwise loop. Panics if k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = k }
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics records run statistics into m. Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic(panicMetricsNilCollector)
	}

	return func(o *options) { o.metrics = m }
}
