// Package gridgraph treats a raster.Grid as a graph of cells and finds its
// connected components by breadth-first flood fill.
//
// What:
//
//   - GridGraph wraps a raster.Grid; a cell is "land" when its sample is non-zero.
//   - ConnectedComponents returns every island with its cells, area and bounding box.
//   - Labels renders the components into a label grid (component i gets label i+1).
//
// Why:
//
//   - A cell-by-cell BFS is slow but obviously correct; it is the reference the
//     run-length labeler in package labeling is cross-checked against.
//   - Conn8 answers the "do diagonal neighbours touch?" question the
//     run-length labeler deliberately does not.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - Labels:              O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid is nil or has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths (From2D only).
//   - ErrComponentIndex: requested component index out of range.
package gridgraph
