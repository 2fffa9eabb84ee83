// SPDX-License-Identifier: MIT

package celldist

import (
	"fmt"
	"time"

	"github.com/katalvlaran/sparsedist/filter"
	"github.com/katalvlaran/sparsedist/matrix"
	"github.com/katalvlaran/sparsedist/observation"
	"github.com/katalvlaran/sparsedist/pairwise"
	"github.com/katalvlaran/sparsedist/weights"
)

const opCompute = "celldist.Compute"

// Result is everything one Compute call produces. All fields are read-only
// views or copies; nothing is shared with the input matrix.
type Result struct {
	// Filtered is the input restricted to retained cells and features.
	Filtered *observation.Matrix

	// Joint, Similarity and Distance are symmetric n×n matrices labeled by
	// the retained cells in Filtered row order.
	Joint      *matrix.Labeled
	Similarity *matrix.Labeled
	Distance   *matrix.Labeled

	// Weights is the per-feature weight table used for every pair.
	Weights *weights.Table

	// LastPairNormalization is the normalization of the last pair visited,
	// (n-1, n-1). Kept for parity with earlier outputs of this computation;
	// prefer Weights for anything per-feature.
	LastPairNormalization float64

	// Iterations is the number of filter passes.
	Iterations int

	// DroppedCells and DroppedFeatures are the labels pruned by the filter.
	DroppedCells    []string
	DroppedFeatures []string
}

// Compute runs filter → weights → pairwise → assemble on m.
// Implementation:
//   - Stage 1: filter.Apply to the fixed point.
//   - Stage 2: weights.Compute over the retained matrix.
//   - Stage 3: pairwise.Compute over the lower triangle.
//   - Stage 4: matrix.Assemble each triangle with the retained cell labels.
//
// Errors (all fatal for the call, matched with errors.Is):
//   - observation.ErrEmptyInput, observation.ErrInsufficientData,
//     filter.ErrBadThreshold, weights.ErrDegenerateWeight,
//     pairwise.ErrZeroNormalization.
//
// Complexity:
//   - Time O(k·n·m + n²·m), Space O(n·m + n²).
func Compute(m *observation.Matrix, opts ...Option) (res *Result, err error) {
	o := gatherOptions(opts...)
	log := o.logger.With().Str("op", opCompute).Logger()
	start := time.Now()
	pairs := 0

	defer func() {
		elapsed := time.Since(start)
		if o.metrics != nil {
			o.metrics.observeRun(pairs, elapsed, err)
		}
		if err != nil {
			log.Warn().Err(err).Dur("elapsed", elapsed).Msg("distance computation failed")
			return
		}
		log.Info().
			Int("cells", res.Distance.Size()).
			Int("features", res.Weights.Len()).
			Int("pairs", pairs).
			Dur("elapsed", elapsed).
			Msg("distance computation finished")
	}()

	if m != nil {
		r, c := m.Shape()
		log.Debug().Int("rows", r).Int("cols", c).
			Int("min_presence", o.minPresence).
			Int("min_measurements_per_cell", o.minMeasurementsPerCell).
			Bool("weighted", o.weighted).
			Int("workers", o.workers).
			Msg("starting distance computation")
	}

	filtered, err := filter.Apply(m, o.minPresence, o.minMeasurementsPerCell)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}
	if o.metrics != nil {
		o.metrics.observeFilter(filtered)
	}
	kr, kc := filtered.Matrix.Shape()
	log.Debug().
		Int("iterations", filtered.Iterations).
		Int("cells_kept", kr).
		Int("features_kept", kc).
		Int("cells_dropped", len(filtered.DroppedCells)).
		Int("features_dropped", len(filtered.DroppedFeatures)).
		Msg("filter reached fixed point")

	table, err := weights.Compute(filtered.Matrix, o.weighted)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}

	tri, err := pairwise.Compute(filtered.Matrix, table, pairwise.WithWorkers(o.workers))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}
	pairs = tri.Pairs

	labels := filtered.Matrix.Cells()
	out := &Result{
		Filtered:              filtered.Matrix,
		Weights:               table,
		LastPairNormalization: tri.LastNormalization,
		Iterations:            filtered.Iterations,
		DroppedCells:          filtered.DroppedCells,
		DroppedFeatures:       filtered.DroppedFeatures,
	}
	if out.Distance, err = matrix.Assemble(labels, tri.Distance); err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}
	if out.Similarity, err = matrix.Assemble(labels, tri.Similarity); err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}
	if out.Joint, err = matrix.Assemble(labels, tri.Joint); err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}

	return out, nil
}
