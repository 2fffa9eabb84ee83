// SPDX-License-Identifier: MIT

package pairwise

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sparsedist/observation"
	"github.com/katalvlaran/sparsedist/weights"
)

var (
	// ErrLengthMismatch indicates two feature vectors (or a vector and the
	// weight table) of different lengths.
	ErrLengthMismatch = errors.New("pairwise: vector length mismatch")

	// ErrZeroNormalization indicates a pair with no weighted defined entry
	// on either side, for which no ratio exists.
	ErrZeroNormalization = errors.New("pairwise: zero normalization")
)

// Stat is the full statistic of one cell pair.
type Stat struct {
	// Raw is the unnormalized distance: Σ (Present+Absent) over mismatches.
	Raw float64

	// Normalization is Σ over both sides of the weight of each defined state.
	Normalization float64

	// Distance is Raw / Normalization.
	Distance float64

	// Similarity is (Σ 2·Present on shared Present + Σ 2·Absent on shared Absent) / Normalization.
	Similarity float64

	// Joint is Distance + (1 - Similarity).
	Joint float64
}

// Pair computes the Stat of feature vectors a and b under weight table w.
// Implementation:
//   - Stage 1: check len(a) == len(b) == w.Len().
//   - Stage 2: single pass over features accumulating raw, norm and shared.
//     Missing contributes nothing on its side.
//   - Stage 3: normalize; a zero normalization is an error.
//
// Behavior highlights:
//   - Symmetric: Pair(a,b) == Pair(b,a) field by field.
//   - Pair(a,a) has Distance 0 and Similarity 1.
//
// Complexity:
//   - Time O(m), Space O(1).
func Pair(a, b []observation.State, w *weights.Table) (Stat, error) {
	if len(a) != len(b) || len(a) != w.Len() {
		return Stat{}, fmt.Errorf("pairwise.Pair: len(a)=%d len(b)=%d weights=%d: %w",
			len(a), len(b), w.Len(), ErrLengthMismatch)
	}

	var raw, norm, shared float64
	var p weights.Pair
	for f := range a {
		p = w.At(f)
		norm += p.Of(a[f]) + p.Of(b[f])
		switch {
		case a[f] == observation.Present && b[f] == observation.Present:
			shared += 2 * p.Present
		case a[f] == observation.Absent && b[f] == observation.Absent:
			shared += 2 * p.Absent
		case a[f].Defined() && b[f].Defined():
			// Mismatch: costs both weights whichever side is Present.
			raw += p.Present + p.Absent
		}
	}
	if norm == 0 {
		return Stat{}, fmt.Errorf("pairwise.Pair: %w", ErrZeroNormalization)
	}

	dist := raw / norm
	sim := shared / norm

	return Stat{
		Raw:           raw,
		Normalization: norm,
		Distance:      dist,
		Similarity:    sim,
		Joint:         dist + (1 - sim),
	}, nil
}
