// SPDX-License-Identifier: MIT

// Package raster provides the 2-D sample container consumed and produced by
// the labeling pipeline.
//
// What:
//
//   - Grid[T] is a dense row-major buffer of numeric samples (offset = r*cols + c).
//   - Sample covers every integer and floating kind; Label covers integer kinds only.
//   - Interop with image.Image (FromGray, FromImage, ToGray16) and with
//     gonum matrices (FromMatrix). OpenCV Mats live in the gocvmat subpackage.
//
// Why:
//
//   - Labeling needs fast row access (Row returns a view, no copy) and a
//     same-shape output container it can overwrite.
//   - Decoupling the algorithm from image.Image keeps it usable for float
//     probability maps, masks coming from matrices, and 16-bit scans alike.
//
// Errors:
//
//   - ErrInvalidDimensions: rows <= 0 or cols <= 0.
//   - ErrEmptyGrid: a [][]T or image with no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrDataLength: Wrap received a buffer whose length is not rows*cols.
//   - ErrOutOfRange: At/Set coordinates outside the grid.
//
// Complexity:
//
//   - NewGrid, FromRows, Clone, Fill: O(rows*cols).
//   - Row, At, Set, Wrap: O(1).
package raster
