// SPDX-License-Identifier: MIT

package pairwise

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sparsedist/matrix"
	"github.com/katalvlaran/sparsedist/observation"
	"github.com/katalvlaran/sparsedist/weights"
)

const opCompute = "pairwise.Compute"

// DefaultWorkers keeps the row loop on the calling goroutine.
const DefaultWorkers = 1

const panicWorkersInvalid = "pairwise: WithWorkers: workers must be >= 1"

// Option configures Compute.
type Option func(*options)

type options struct {
	workers int
	onRow   func(i int)
}

// WithWorkers bounds the number of rows computed concurrently.
// Panics if k < 1 (programmer error).
func WithWorkers(k int) Option {
	if k < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = k }
}

// WithOnRow registers a hook called once per finished row i (all pairs
// (i, j≤i) written). With more than one worker the hook runs on worker
// goroutines and must be safe for concurrent use.
func WithOnRow(fn func(i int)) Option {
	return func(o *options) { o.onRow = fn }
}

// Result holds the lower triangles of the three pairwise matrices.
type Result struct {
	Distance   *matrix.Triangular
	Similarity *matrix.Triangular
	Joint      *matrix.Triangular

	// LastNormalization is the normalization of the last pair visited by the
	// sequential row loop, (n-1, n-1). It is independent of worker count.
	LastNormalization float64

	// Pairs is the number of statistics computed, n(n+1)/2.
	Pairs int
}

// Compute evaluates Pair for every (i, j) with j <= i over the rows of m.
// Implementation:
//   - Stage 1: validate shape against w and copy each row once.
//   - Stage 2: run computeRow for i in [0, n), sequentially or on an
//     errgroup bounded to the configured worker count. Each row i owns the
//     cells (i, 0..i) of every triangle, so writes never overlap.
//   - Stage 3: return triangles; the upper halves are implied by symmetry.
//
// Errors:
//   - observation.ErrEmptyInput, ErrLengthMismatch, ErrZeroNormalization,
//     matrix.ErrNaNInf.
//
// Complexity:
//   - Time O(n²·m), Space O(n·m + n²).
func Compute(m *observation.Matrix, w *weights.Table, opts ...Option) (*Result, error) {
	cfg := options{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&cfg)
	}

	if m == nil || m.Rows() == 0 {
		return nil, fmt.Errorf("%s: %w", opCompute, observation.ErrEmptyInput)
	}
	if w == nil || m.Cols() != w.Len() {
		return nil, fmt.Errorf("%s: matrix has %d features, table %d: %w", opCompute, m.Cols(), tableLen(w), ErrLengthMismatch)
	}

	n := m.Rows()
	rows := make([][]observation.State, n)
	var err error
	for i := 0; i < n; i++ {
		if rows[i], err = m.Row(i); err != nil {
			return nil, fmt.Errorf("%s: %w", opCompute, err)
		}
	}

	res := &Result{Pairs: n * (n + 1) / 2}
	if res.Distance, err = matrix.NewTriangular(n); err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}
	res.Similarity, _ = matrix.NewTriangular(n)
	res.Joint, _ = matrix.NewTriangular(n)

	computeRow := func(i int) error {
		var st Stat
		var err error
		for j := 0; j <= i; j++ {
			if st, err = Pair(rows[i], rows[j], w); err != nil {
				return fmt.Errorf("%s: pair (%d,%d): %w", opCompute, i, j, err)
			}
			if err = res.Distance.Set(i, j, st.Distance); err != nil {
				return fmt.Errorf("%s: %w", opCompute, err)
			}
			if err = res.Similarity.Set(i, j, st.Similarity); err != nil {
				return fmt.Errorf("%s: %w", opCompute, err)
			}
			if err = res.Joint.Set(i, j, st.Joint); err != nil {
				return fmt.Errorf("%s: %w", opCompute, err)
			}
		}
		if i == n-1 {
			res.LastNormalization = st.Normalization
		}
		if cfg.onRow != nil {
			cfg.onRow(i)
		}

		return nil
	}

	if cfg.workers == 1 {
		for i := 0; i < n; i++ {
			if err = computeRow(i); err != nil {
				return nil, err
			}
		}

		return res, nil
	}

	var g errgroup.Group
	g.SetLimit(cfg.workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error { return computeRow(i) })
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return res, nil
}

func tableLen(w *weights.Table) int {
	if w == nil {
		return 0
	}

	return w.Len()
}
