// SPDX-License-Identifier: MIT

// Package labeling extracts connected components (regions of non-zero
// samples) from a raster.Grid and assigns each a compact integer label,
// computing per-region area and bounding box under a caller-chosen limit
// policy.
//
// What:
//
//   - The raster is run-length encoded: every maximal horizontal span of
//     non-zero samples becomes one Run.
//   - Runs are the nodes of a union-find forest stored in an index-based
//     arena. Runs on vertically adjacent rows whose column ranges overlap
//     are merged into one tree.
//   - Each tree root accumulates the pixel area of its members; roots are
//     ranked by area (descending, stable) and labelled 1..K.
//   - The label image is rendered run by run.
//
// Pipeline:
//
//  1. extractRuns   – row-major scan, one Run per maximal foreground span.
//  2. buildForest   – two-cursor sweep over consecutive rows, makeEdge per overlap.
//  3. totalize      – area of each run added to its root.
//  4. assignLabels  – stable sort of roots, limit policy, Region aggregation.
//  5. render        – write labels into the destination grid.
//
// Limit policies:
//
//   - AreaThreshold: keep every region whose area >= limit.
//   - RegionCount:   keep at most limit largest regions.
//
// Connectivity is 4-neighbour: a run touches runs in the row directly above
// or below whose column ranges intersect. Diagonal contact does not merge.
//
// Complexity:
//
//   - Time:   O(W×H) for the scan, plus O(R·α(R) + K log K) for the forest
//     and ranking, where R is the number of runs and K the number of roots.
//   - Memory: O(R); the run arena is reused across calls on the same Labeler.
//
// Errors:
//
//   - ErrInvalidInput family: ErrNilRaster, ErrEmptyRaster, ErrShapeMismatch,
//     ErrLabelOverflow.
//   - ErrInvalidConfiguration family: ErrUnknownLimitMode, ErrNonPositiveLimit.
//
// All errors are reported before the destination grid is touched. A broken
// forest invariant panics: it signals a bug, not bad input.
//
// A Labeler is not safe for concurrent use; run one Labeler per goroutine.
package labeling
