// SPDX-License-Identifier: MIT

// Package gocvmat converts between OpenCV matrices and raster grids so that
// frames already held as gocv.Mat can be labelled without an image round trip.
package gocvmat

import (
	"errors"
	"fmt"
	"math"

	"gocv.io/x/gocv"

	"github.com/katalvlaran/runlabel/raster"
)

var (
	// ErrEmptyMat is returned for a Mat with no elements.
	ErrEmptyMat = errors.New("gocvmat: empty mat")

	// ErrChannels is returned for a Mat that is not single-channel.
	ErrChannels = errors.New("gocvmat: mat must have exactly one channel")

	// ErrLabelRange is returned when a label does not fit a CV_32S element.
	ErrLabelRange = errors.New("gocvmat: label outside int32 range")
)

// FromMat copies a single-channel Mat of any depth into a float32 grid.
// Integer depths convert exactly; zero stays background.
func FromMat(m gocv.Mat) (*raster.Grid[float32], error) {
	if m.Empty() || m.Rows() <= 0 || m.Cols() <= 0 {
		return nil, ErrEmptyMat
	}
	if ch := m.Channels(); ch != 1 {
		return nil, fmt.Errorf("%d channels: %w", ch, ErrChannels)
	}

	f := gocv.NewMat()
	defer f.Close()
	m.ConvertTo(&f, gocv.MatTypeCV32F)

	px, err := f.DataPtrFloat32()
	if err != nil {
		return nil, fmt.Errorf("gocvmat: %w", err)
	}
	data := make([]float32, len(px))
	copy(data, px)

	return raster.Wrap(f.Rows(), f.Cols(), data)
}

// ToMat writes a label grid into a new CV_32S Mat. The caller owns the
// returned Mat and must Close it.
func ToMat[L raster.Label](g *raster.Grid[L]) (gocv.Mat, error) {
	for _, v := range g.Data() {
		if v < 0 || uint64(v) > math.MaxInt32 {
			return gocv.NewMat(), fmt.Errorf("%v: %w", v, ErrLabelRange)
		}
	}

	m := gocv.NewMatWithSize(g.Rows(), g.Cols(), gocv.MatTypeCV32S)
	for r := 0; r < g.Rows(); r++ {
		for c, v := range g.Row(r) {
			m.SetIntAt(r, c, int32(v))
		}
	}

	return m, nil
}
