// Package pairwise computes information-weighted distance and similarity
// between every pair of cells of an observation.Matrix.
//
// For cells a, b and per-feature weights (P, A):
//
//	raw   = Σ (P + A)                 over features where one is Present and the other Absent
//	norm  = Σ w(a[f]) + Σ w(b[f])     w(Present)=P, w(Absent)=A, w(Missing)=0
//	dist  = raw / norm
//	sim   = (Σ 2P over shared Present + Σ 2A over shared Absent) / norm
//	joint = dist + (1 - sim)
//
// Pair is a pure function of two vectors and the weight table. Compute runs
// it over the lower triangle (diagonal included) of the cell × cell space,
// optionally spreading rows over a bounded worker pool:
//
//	res, err := pairwise.Compute(m, table, pairwise.WithWorkers(runtime.NumCPU()))
//
// Performance:
//
//   - Time:   O(n²·m) for n cells and m features
//   - Memory: O(n·m) row copies + 3 packed triangles of n(n+1)/2 floats
package pairwise
