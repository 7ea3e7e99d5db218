// Package gridgraph defines core types, options, and sentinel errors
// for flood-fill component analysis.
package gridgraph

import (
	"errors"

	"github.com/katalvlaran/runlabel/raster"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// Box is an inclusive bounding box in (row, col) coordinates.
type Box struct {
	RowMin, RowMax int
	ColMin, ColMax int
}

// Component is one island found by ConnectedComponents.
type Component struct {
	// Cells holds row-major cell indices in BFS visiting order.
	Cells []int
	// Area is len(Cells).
	Area int
	// Box is the minimal rectangle containing every cell.
	Box Box
}

// GridGraph treats a raster as a graph. It is immutable once built.
// Width and Height define dimensions; the grid is deep-copied on construction.
type GridGraph[S raster.Sample] struct {
	Width, Height   int
	Conn            Connectivity
	cells           *raster.Grid[S]
	neighborOffsets [][2]int
}
