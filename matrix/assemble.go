// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const opAssemble = "Assemble"

// Assemble mirrors a lower-triangular result into a full symmetric matrix
// and attaches labels to both axes.
// Implementation:
//   - Stage 1: validate tri and labels (count, uniqueness).
//   - Stage 2: copy each packed (i,j), j<=i, into [i,j] and [j,i].
//   - Stage 3: build the label index.
//
// Behavior highlights:
//   - Pure relabeling/mirroring; no value is recomputed.
//   - Label order becomes row and column order.
//
// Errors:
//   - ErrNilMatrix, ErrLabelMismatch (count or duplicate label).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Assemble(labels []string, tri *Triangular) (*Labeled, error) {
	if tri == nil {
		return nil, fmt.Errorf("%s: %w", opAssemble, ErrNilMatrix)
	}
	n := tri.Size()
	if len(labels) != n {
		return nil, fmt.Errorf("%s: %d labels for size %d: %w", opAssemble, len(labels), n, ErrLabelMismatch)
	}

	d, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAssemble, err)
	}
	var i, j, off int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			v = tri.data[off]
			d.data[i*n+j] = v
			d.data[j*n+i] = v
			off++
		}
	}

	index := make(map[string]int, n)
	for i, l := range labels {
		if _, dup := index[l]; dup {
			return nil, fmt.Errorf("%s: duplicate label %q: %w", opAssemble, l, ErrLabelMismatch)
		}
		index[l] = i
	}

	return &Labeled{d: d, labels: append([]string(nil), labels...), index: index}, nil
}
