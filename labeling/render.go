// SPDX-License-Identifier: MIT

package labeling

import "github.com/katalvlaran/runlabel/raster"

// render zeroes dst and writes each labelled run's label over
// [ColMin, ColMax] of its row. Re-running on the same runs yields the
// same grid.
func render[L raster.Label](a arena, dst *raster.Grid[L]) {
	dst.Fill(0)
	for _, r := range a {
		if r.tally == 0 {
			continue
		}
		label := L(r.tally)
		row := dst.Row(r.Row)
		for c := r.ColMin; c <= r.ColMax; c++ {
			row[c] = label
		}
	}
}

// fitsLabel reports whether L can represent every label in 1..k.
func fitsLabel[L raster.Label](k int) bool {
	if k == 0 {
		return true
	}
	v := L(k)
	return v > 0 && int64(v) == int64(k)
}
