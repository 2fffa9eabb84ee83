// Package sparsedist computes information-weighted distances between
// cells described by sparse, partially-missing binary features.
//
// 🚀 What is sparsedist?
//
//	A small, deterministic library that turns a cell × feature table of
//	Present / Absent / Missing readouts into three symmetric cell × cell
//	matrices (distance, similarity, joint score), ready for clustering.
//
// Under the hood, everything is organized under these subpackages:
//
//	observation/ — tri-state State, labeled input Matrix, decoders
//	filter/      — iterative fixed-point pruning of cells and features
//	weights/     — per-feature -log2(p²) weights for each state
//	pairwise/    — pure per-pair statistic + lower-triangle engine
//	matrix/      — Dense/Triangular storage and the labeled assembler
//	celldist/    — the full pipeline with options, YAML config, logging, metrics
//
// Quick example:
//
//	m, _ := observation.FromFloats(cells, features, values)
//	res, err := celldist.Compute(m)
//	d, _ := res.Distance.AtLabel("cellA", "cellB")
//
//	go get github.com/katalvlaran/sparsedist
package sparsedist
