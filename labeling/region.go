// SPDX-License-Identifier: MIT

package labeling

import "image"

// BoundingBox is an inclusive rectangle in raster coordinates.
type BoundingBox struct {
	RowMin int `json:"row_min"`
	RowMax int `json:"row_max"`
	ColMin int `json:"col_min"`
	ColMax int `json:"col_max"`
}

// Region describes one kept connected component.
type Region struct {
	Label int         `json:"label"` // 1-based, dense
	Area  int         `json:"area"`  // number of pixels
	Box   BoundingBox `json:"bbox"`
}

// newRegion seeds a Region from its root run. Area starts at zero: every
// run, the root included, is folded in by add.
func newRegion(label int, root Run) Region {
	return Region{
		Label: label,
		Box: BoundingBox{
			RowMin: root.Row,
			RowMax: root.Row,
			ColMin: root.ColMin,
			ColMax: root.ColMax,
		},
	}
}

// add folds run r into the region's area and bounding box.
func (rg *Region) add(r Run) {
	rg.Area += r.Len()
	if r.Row < rg.Box.RowMin {
		rg.Box.RowMin = r.Row
	}
	if r.Row > rg.Box.RowMax {
		rg.Box.RowMax = r.Row
	}
	if r.ColMin < rg.Box.ColMin {
		rg.Box.ColMin = r.ColMin
	}
	if r.ColMax > rg.Box.ColMax {
		rg.Box.ColMax = r.ColMax
	}
}

// Width is the number of columns spanned by the bounding box.
func (rg Region) Width() int { return rg.Box.ColMax - rg.Box.ColMin + 1 }

// Height is the number of rows spanned by the bounding box.
func (rg Region) Height() int { return rg.Box.RowMax - rg.Box.RowMin + 1 }

// Rect converts the bounding box to a half-open image.Rectangle with
// X = column and Y = row.
func (rg Region) Rect() image.Rectangle {
	return image.Rect(rg.Box.ColMin, rg.Box.RowMin, rg.Box.ColMax+1, rg.Box.RowMax+1)
}
