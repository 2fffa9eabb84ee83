// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// Labeled is a read-only square matrix whose rows and columns share one
// label list (the retained cell identifiers, in filtered row order).
type Labeled struct {
	d      *Dense
	labels []string
	index  map[string]int
}

// Size returns the number of labels (rows = cols).
func (l *Labeled) Size() int { return len(l.labels) }

// Labels returns a copy of the axis labels.
func (l *Labeled) Labels() []string { return append([]string(nil), l.labels...) }

// Index returns the position of label, or false if unknown.
func (l *Labeled) Index(label string) (int, bool) {
	i, ok := l.index[label]

	return i, ok
}

// At returns the value at (i, j) or ErrOutOfRange.
func (l *Labeled) At(i, j int) (float64, error) { return l.d.At(i, j) }

// AtLabel returns the value for the pair of labels (a, b).
func (l *Labeled) AtLabel(a, b string) (float64, error) {
	i, ok := l.index[a]
	if !ok {
		return 0, fmt.Errorf("Labeled.AtLabel(%q): %w", a, ErrUnknownLabel)
	}
	j, ok := l.index[b]
	if !ok {
		return 0, fmt.Errorf("Labeled.AtLabel(%q): %w", b, ErrUnknownLabel)
	}

	return l.d.At(i, j)
}

// Row returns a copy of row i.
func (l *Labeled) Row(i int) ([]float64, error) { return l.d.Row(i) }

// Dense returns an independent copy of the underlying values.
func (l *Labeled) Dense() *Dense { return l.d.Clone() }

// ValidateSymmetric returns ErrAsymmetry if any mirrored pair differs by more than eps.
func (l *Labeled) ValidateSymmetric(eps float64) error {
	if !l.d.IsSymmetric(eps) {
		return fmt.Errorf("Labeled.ValidateSymmetric(eps=%g): %w", eps, ErrAsymmetry)
	}

	return nil
}

// String renders a header line of labels followed by the rows.
func (l *Labeled) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(l.labels, "\t"))
	b.WriteString("\n")
	b.WriteString(l.d.String())

	return b.String()
}
