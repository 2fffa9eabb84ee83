// Package filter prunes cells and features of an observation.Matrix until
// nothing more can be removed.
//
// Each iteration:
//  1. keeps cells with at least minMeasurementsPerCell non-missing entries
//     over the current feature set;
//  2. keeps features that, over the kept cells, are Present at least
//     minPresence times and Absent at least once;
//  3. restricts the working selection to kept cells × kept features.
//
// The loop stops as soon as an iteration keeps everything it was given.
// Selections only shrink, so it finishes in at most rows+cols+1 iterations.
//
// Usage:
//
//	res, err := filter.Apply(m, 1, 1)
//	if errors.Is(err, observation.ErrInsufficientData) { ... }
//	kept := res.Matrix
package filter
