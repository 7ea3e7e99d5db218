// Package gridgraph provides utilities to treat a 2D grid of samples as a
// graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Identification of connected components of non-zero cells
//   - Rendering those components into a label grid
package gridgraph

import (
	"errors"

	"github.com/katalvlaran/runlabel/raster"
)

// NewGridGraph constructs a GridGraph over a copy of g.
// Returns ErrEmptyGrid if g is nil or has no rows or no columns.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph[S raster.Sample](g *raster.Grid[S], opts GridOptions) (*GridGraph[S], error) {
	if g == nil || g.Rows() == 0 || g.Cols() == 0 {
		return nil, ErrEmptyGrid
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph[S]{
		Width:           g.Cols(),
		Height:          g.Rows(),
		Conn:            opts.Conn,
		cells:           g.Clone(),
		neighborOffsets: offsets,
	}, nil
}

// From2D builds a GridGraph from a rectangular [][]S.
// Returns ErrEmptyGrid or ErrNonRectangular for malformed input.
func From2D[S raster.Sample](values [][]S, conn Connectivity) (*GridGraph[S], error) {
	g, err := raster.FromRows(values)
	switch {
	case errors.Is(err, raster.ErrNonRectangular):
		return nil, ErrNonRectangular
	case err != nil:
		return nil, ErrEmptyGrid
	}

	return NewGridGraph(g, GridOptions{Conn: conn})
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph[S]) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed (dx,dy) neighbor offsets.
// Complexity: O(1).
func (gg *GridGraph[S]) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// IsLand reports whether the cell at (x,y) is non-zero.
func (gg *GridGraph[S]) IsLand(x, y int) bool {
	return gg.cells.Row(y)[x] != 0
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph[S]) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph[S]) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
