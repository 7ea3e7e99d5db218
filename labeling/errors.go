// SPDX-License-Identifier: MIT

package labeling

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the root of every error caused by the source or
	// destination raster.
	ErrInvalidInput = errors.New("labeling: invalid input")

	// ErrInvalidConfiguration is the root of every error caused by Options.
	ErrInvalidConfiguration = errors.New("labeling: invalid configuration")
)

var (
	// ErrNilRaster indicates a nil source or destination grid.
	ErrNilRaster = fmt.Errorf("%w: nil raster", ErrInvalidInput)

	// ErrEmptyRaster indicates a grid with zero rows or zero columns.
	ErrEmptyRaster = fmt.Errorf("%w: raster must have positive rows and cols", ErrInvalidInput)

	// ErrShapeMismatch indicates a destination whose shape differs from the source.
	ErrShapeMismatch = fmt.Errorf("%w: destination shape differs from source", ErrInvalidInput)

	// ErrLabelOverflow indicates the destination element type cannot hold the
	// highest assigned label.
	ErrLabelOverflow = fmt.Errorf("%w: label type too narrow for region count", ErrInvalidInput)

	// ErrUnknownLimitMode indicates a LimitMode outside {AreaThreshold, RegionCount}.
	ErrUnknownLimitMode = fmt.Errorf("%w: unknown limit mode", ErrInvalidConfiguration)

	// ErrNonPositiveLimit indicates a limit value <= 0.
	ErrNonPositiveLimit = fmt.Errorf("%w: limit must be > 0", ErrInvalidConfiguration)
)
