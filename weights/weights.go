// SPDX-License-Identifier: MIT

// Package weights derives, per feature, the self-information cost of the
// feature being Present and of it being Absent.
//
// Weighted mode:
//
//	p1 = #Present / rows      p0 = #Absent / rows   (missing stays in rows)
//	Present = -log2(p1²)      Absent = -log2(p0²)
//
// Rare states weigh more. Uniform mode gives every feature (2, 2), the value
// of -log2(0.5²), which turns the pairwise distance into a matching distance.
package weights

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/sparsedist/observation"
)

// UniformWeight is -log2(0.5²), the weight of every state in uniform mode.
const UniformWeight = 2.0

// ErrDegenerateWeight is returned when a state frequency is zero or the
// resulting weight is not finite.
var ErrDegenerateWeight = errors.New("weights: degenerate state frequency")

const opCompute = "weights.Compute"

// Pair is the weight of one feature's two defined states.
type Pair struct {
	Present float64
	Absent  float64
}

// Of returns the weight of s; Missing weighs nothing.
func (p Pair) Of(s observation.State) float64 {
	switch s {
	case observation.Present:
		return p.Present
	case observation.Absent:
		return p.Absent
	default:
		return 0
	}
}

// Table holds one Pair per feature, in the column order of the matrix it
// was computed from.
type Table struct {
	features []string
	pairs    []Pair
	index    map[string]int
}

// NewTable builds a Table from parallel feature and pair slices.
func NewTable(features []string, pairs []Pair) (*Table, error) {
	if len(features) != len(pairs) {
		return nil, fmt.Errorf("weights.NewTable: %d features, %d pairs: %w", len(features), len(pairs), observation.ErrShape)
	}
	t := &Table{
		features: append([]string(nil), features...),
		pairs:    append([]Pair(nil), pairs...),
		index:    make(map[string]int, len(features)),
	}
	for j, f := range features {
		if _, dup := t.index[f]; dup {
			return nil, fmt.Errorf("weights.NewTable: %q: %w", f, observation.ErrDuplicateLabel)
		}
		t.index[f] = j
	}

	return t, nil
}

// Len returns the number of features.
func (t *Table) Len() int { return len(t.pairs) }

// At returns the pair of the j-th feature. j must be in [0, Len()).
func (t *Table) At(j int) Pair { return t.pairs[j] }

// Lookup returns the pair of a feature by label.
func (t *Table) Lookup(feature string) (Pair, bool) {
	j, ok := t.index[feature]
	if !ok {
		return Pair{}, false
	}

	return t.pairs[j], true
}

// Features returns a copy of the feature labels in table order.
func (t *Table) Features() []string { return append([]string(nil), t.features...) }

// Pairs returns a copy of the weight pairs in table order.
func (t *Table) Pairs() []Pair { return append([]Pair(nil), t.pairs...) }

// Compute derives the weight table for every column of m.
// Implementation:
//   - Stage 1: uniform mode short-circuits to (2, 2) everywhere.
//   - Stage 2: count Present/Absent per column over all rows.
//   - Stage 3: convert frequencies to -log2(p²) and reject p == 0 or non-finite results.
//
// Errors:
//   - observation.ErrEmptyInput for a nil or empty matrix.
//   - ErrDegenerateWeight when a column has no Present or no Absent entry.
//
// Complexity:
//   - Time O(r·c), Space O(c).
func Compute(m *observation.Matrix, weighted bool) (*Table, error) {
	if m == nil || m.Rows() == 0 || m.Cols() == 0 {
		return nil, fmt.Errorf("%s: %w", opCompute, observation.ErrEmptyInput)
	}
	r, c := m.Shape()
	features := m.Features()
	pairs := make([]Pair, c)

	if !weighted {
		for j := range pairs {
			pairs[j] = Pair{Present: UniformWeight, Absent: UniformWeight}
		}

		return NewTable(features, pairs)
	}

	present := make([]int, c)
	absent := make([]int, c)
	for i := 0; i < r; i++ {
		row, err := m.Row(i)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opCompute, err)
		}
		for j, s := range row {
			switch s {
			case observation.Present:
				present[j]++
			case observation.Absent:
				absent[j]++
			}
		}
	}

	n := float64(r)
	var err error
	for j := 0; j < c; j++ {
		if pairs[j].Present, err = selfInformation(float64(present[j]) / n); err != nil {
			return nil, fmt.Errorf("%s: feature %q present: %w", opCompute, features[j], err)
		}
		if pairs[j].Absent, err = selfInformation(float64(absent[j]) / n); err != nil {
			return nil, fmt.Errorf("%s: feature %q absent: %w", opCompute, features[j], err)
		}
	}

	return NewTable(features, pairs)
}

// selfInformation returns -log2(p²), the information of two independent
// draws both landing on a state of frequency p.
func selfInformation(p float64) (float64, error) {
	if !(p > 0) {
		return 0, fmt.Errorf("p=%g: %w", p, ErrDegenerateWeight)
	}
	w := -2 * math.Log2(p)
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, fmt.Errorf("p=%g: %w", p, ErrDegenerateWeight)
	}

	return w, nil
}
