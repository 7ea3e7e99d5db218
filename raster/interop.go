// SPDX-License-Identifier: MIT

package raster

import (
	"image"
	"image/color"
	"math"

	"gonum.org/v1/gonum/mat"
)

// FromGray copies an 8-bit grayscale image into a Grid.
// Row r of the grid corresponds to image row Bounds().Min.Y + r.
func FromGray(img *image.Gray) (*Grid[uint8], error) {
	b := img.Bounds()
	g, err := NewGrid[uint8](b.Dy(), b.Dx())
	if err != nil {
		return nil, ErrEmptyGrid
	}
	for r := 0; r < g.rows; r++ {
		off := img.PixOffset(b.Min.X, b.Min.Y+r)
		copy(g.Row(r), img.Pix[off:off+g.cols])
	}

	return g, nil
}

// FromImage converts any image to a 16-bit luminance Grid.
// *image.Gray16 is copied directly; other models go through color.Gray16Model.
// Fully transparent pixels are background regardless of their color.
//
// Complexity: O(W×H) color conversions.
func FromImage(img image.Image) (*Grid[uint16], error) {
	b := img.Bounds()
	g, err := NewGrid[uint16](b.Dy(), b.Dx())
	if err != nil {
		return nil, ErrEmptyGrid
	}
	if g16, ok := img.(*image.Gray16); ok {
		for r := 0; r < g.rows; r++ {
			row := g.Row(r)
			for c := range row {
				row[c] = g16.Gray16At(b.Min.X+c, b.Min.Y+r).Y
			}
		}
		return g, nil
	}
	for r := 0; r < g.rows; r++ {
		row := g.Row(r)
		for c := range row {
			px := img.At(b.Min.X+c, b.Min.Y+r)
			if _, _, _, a := px.RGBA(); a == 0 {
				continue
			}
			row[c] = color.Gray16Model.Convert(px).(color.Gray16).Y
		}
	}

	return g, nil
}

// ToGray16 renders a label grid as a 16-bit grayscale image with
// pixel value == label. Labels above 65535 saturate; negative labels map to 0.
func ToGray16[L Label](g *Grid[L]) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, g.cols, g.rows))
	for r := 0; r < g.rows; r++ {
		for c, v := range g.Row(r) {
			var y uint16
			switch {
			case v <= 0:
				y = 0
			case uint64(v) > math.MaxUint16:
				y = math.MaxUint16
			default:
				y = uint16(v)
			}
			img.SetGray16(c, r, color.Gray16{Y: y})
		}
	}

	return img
}

// FromMatrix copies a gonum matrix into a float64 Grid.
// Returns ErrEmptyGrid for a matrix with a zero dimension.
func FromMatrix(m mat.Matrix) (*Grid[float64], error) {
	r, c := m.Dims()
	g, err := NewGrid[float64](r, c)
	if err != nil {
		return nil, ErrEmptyGrid
	}
	if d, ok := m.(*mat.Dense); ok {
		raw := d.RawMatrix()
		for i := 0; i < r; i++ {
			copy(g.Row(i), raw.Data[i*raw.Stride:i*raw.Stride+c])
		}
		return g, nil
	}
	for i := 0; i < r; i++ {
		row := g.Row(i)
		for j := range row {
			row[j] = m.At(i, j)
		}
	}

	return g, nil
}
