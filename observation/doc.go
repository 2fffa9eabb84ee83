// Package observation holds the input of the distance pipeline: a labeled
// cell × feature table whose entries are Present, Absent or Missing.
//
// Cells are rows (one observation each), features are columns (one boolean
// readout each). Label order on both axes is significant and preserved by
// every operation in this module, including filtering.
//
// Construction:
//
//	m, err := observation.NewMatrix(cells, features, [][]observation.State{...})
//	m, err := observation.FromFloats(cells, features, [][]float64{{1, 0, math.NaN()}})
//	m, err := observation.FromInts(cells, features, [][]int{{1, 0, -1}})
//
// A Matrix is never mutated after construction; Induced returns a copy.
package observation
