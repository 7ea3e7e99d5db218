// SPDX-License-Identifier: MIT

package raster

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when requested rows or cols are not positive.
	ErrInvalidDimensions = errors.New("raster: dimensions must be > 0")

	// ErrEmptyGrid indicates an input with no rows or no columns.
	ErrEmptyGrid = errors.New("raster: input must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("raster: all rows must have the same length")

	// ErrDataLength indicates a flat buffer whose length is not rows*cols.
	ErrDataLength = errors.New("raster: data length does not match rows*cols")

	// ErrOutOfRange indicates a row or column index outside the grid.
	ErrOutOfRange = errors.New("raster: index out of range")
)

// gridErrorf wraps err with the method name and coordinates of the failing access.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}
