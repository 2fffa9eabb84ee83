// Package celldist computes information-weighted pairwise distance,
// similarity and joint score between cells described by sparse,
// partially-missing binary features.
//
// 🚀 Pipeline
//
//	observation.Matrix ─► filter ─► weights ─► pairwise ─► matrix.Assemble ─► Result
//
//   - filter   prunes cells and features to a fixed point;
//   - weights  turns each feature's state frequencies into -log2(p²) costs;
//   - pairwise evaluates every cell pair on the lower triangle;
//   - matrix   mirrors the triangles into labeled symmetric matrices.
//
// ⚙️ Usage:
//
//	m, _ := observation.FromFloats(cells, features, values) // 1 / 0 / NaN
//	res, err := celldist.Compute(m,
//	  celldist.WithMinPresence(2),
//	  celldist.WithWorkers(runtime.NumCPU()),
//	  celldist.WithLogger(zerolog.New(os.Stderr)),
//	)
//	d, _ := res.Joint.AtLabel("cellA", "cellB")
//
// Configuration can also come from YAML via ParseConfig and Config.Options.
// Metrics are opt-in through NewMetrics + WithMetrics.
//
// Performance:
//
//   - Time:   O(n²·m) for n retained cells and m retained features
//   - Memory: O(n·m + n²)
package celldist
