// SPDX-License-Identifier: MIT

package labeling

import (
	"math"

	"github.com/katalvlaran/runlabel/raster"
)

// sentinelRow terminates the forest sweep; no real row can reach it.
const sentinelRow = math.MaxInt

// Run is a maximal horizontal span of non-zero samples in one row, and at
// the same time a node of the union-find forest.
//
// tally holds the accumulated area while the forest is totalised and the
// assigned label (0 = not kept) once labels are fixed.
type Run struct {
	Row    int // row index
	ColMin int // first foreground column, inclusive
	ColMax int // last foreground column, inclusive

	parent int // arena index of the parent; self means root
	tally  int
}

// Len is the number of pixels covered by r.
func (r Run) Len() int { return r.ColMax - r.ColMin + 1 }

// Label is the label assigned to r, 0 when its region was rejected.
// Only meaningful after a completed Exec.
func (r Run) Label() int { return r.tally }

// extractRuns appends one Run per maximal non-zero span of src to runs,
// in row-major then left-to-right order, and returns the extended slice.
//
// Later stages rely on that order: runs sorted by Row, then by ColMin.
// Complexity: O(W×H).
func extractRuns[S raster.Sample](runs []Run, src *raster.Grid[S]) []Run {
	cols := src.Cols()
	for r := 0; r < src.Rows(); r++ {
		row := src.Row(r)
		c := 0
		for c < cols {
			// skip background
			for c < cols && row[c] == 0 {
				c++
			}
			if c == cols {
				break
			}
			start := c
			for c < cols && row[c] != 0 {
				c++
			}
			runs = append(runs, Run{Row: r, ColMin: start, ColMax: c - 1, parent: len(runs)})
		}
	}

	return runs
}
