// SPDX-License-Identifier: MIT

// Package imageio loads source rasters and writes label images for the
// runlabel command. PNG, JPEG, GIF, BMP, TIFF and WebP are decoded;
// PNG, BMP and TIFF are encoded.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/katalvlaran/runlabel/raster"
)

// ErrUnsupportedFormat is returned by Save for an extension it cannot encode.
var ErrUnsupportedFormat = errors.New("imageio: unsupported output format")

// Load decodes the image at path and reports the detected format name.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("imageio: decode %s: %w", path, err)
	}

	return img, format, nil
}

type encodeFunc func(io.Writer, image.Image) error

var encoders = map[string]encodeFunc{
	".png":  png.Encode,
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}

func encoderFor(ext string) (encodeFunc, error) {
	enc, ok := encoders[strings.ToLower(ext)]
	if !ok {
		return nil, fmt.Errorf("%q: %w", ext, ErrUnsupportedFormat)
	}

	return enc, nil
}

// Encode writes img to w in the format named by ext (".png", ".bmp",
// ".tif" or ".tiff", case-insensitive).
func Encode(w io.Writer, ext string, img image.Image) error {
	enc, err := encoderFor(ext)
	if err != nil {
		return err
	}

	return enc(w, img)
}

// Save encodes img to path, choosing the codec from the file extension.
// Nothing is created when the extension is unsupported.
func Save(path string, img image.Image) (err error) {
	enc, err := encoderFor(filepath.Ext(path))
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return enc(f, img)
}

// Color returns the display color of label l. Label 0 is black; every
// other label maps to a fixed, saturated color.
func Color(l int64) color.RGBA {
	if l == 0 {
		return color.RGBA{A: 0xff}
	}
	// splitmix64 finaliser
	x := uint64(l) + 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return color.RGBA{
		R: 0x40 | uint8(x),
		G: 0x40 | uint8(x>>8),
		B: 0x40 | uint8(x>>16),
		A: 0xff,
	}
}

// Colorize paints a label grid with Color, one pixel per cell.
func Colorize[L raster.Label](g *raster.Grid[L]) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Cols(), g.Rows()))
	for r := 0; r < g.Rows(); r++ {
		row := g.Row(r)
		for c, v := range row {
			img.SetRGBA(c, r, Color(int64(v)))
		}
	}

	return img
}
