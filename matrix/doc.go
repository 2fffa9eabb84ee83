// Package matrix offers the float storage used for pairwise results.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set.
//   - Triangular: packed lower-triangle storage (diagonal included) that
//     pairwise kernels fill one cell at a time.
//   - Assemble: mirrors a Triangular into a full symmetric Dense and attaches
//     cell labels, producing a read-only Labeled matrix.
//
// Labeled matrices are what the pipeline hands back to callers; they expose
// reads only.
package matrix
