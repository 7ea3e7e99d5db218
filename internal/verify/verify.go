// SPDX-License-Identifier: MIT

// Package verify cross-checks the output of the run-length labeler against
// flood-fill components computed independently by package gridgraph.
package verify

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/runlabel/gridgraph"
	"github.com/katalvlaran/runlabel/labeling"
	"github.com/katalvlaran/runlabel/raster"
)

// ErrMismatch is wrapped by every discrepancy reported by this package.
var ErrMismatch = errors.New("verify: labeling disagrees with flood fill")

func mismatchf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMismatch, fmt.Sprintf(format, args...))
}

// Against checks that labels and regions describe exactly the components in
// comps (4-connected flood fill of the same source):
//   - every component is uniformly labelled, 0 or a label owned by no other component;
//   - each kept component's area and box equal its Region's;
//   - regions are numbered 1..K with non-increasing area;
//   - no cell outside a kept component is labelled.
//
// All discrepancies are returned joined; nil means the results agree.
func Against[L raster.Label](labels *raster.Grid[L], regions []labeling.Region, comps []gridgraph.Component) error {
	var errs []error
	data := labels.Data()

	for i, rg := range regions {
		if rg.Label != i+1 {
			errs = append(errs, mismatchf("region %d has label %d", i, rg.Label))
		}
		if i > 0 && rg.Area > regions[i-1].Area {
			errs = append(errs, mismatchf("region %d area %d exceeds region %d area %d", i, rg.Area, i-1, regions[i-1].Area))
		}
	}

	owner := make(map[int]int, len(regions))
	keptCells := 0
	for ci, comp := range comps {
		label := int(data[comp.Cells[0]])
		for _, idx := range comp.Cells[1:] {
			if int(data[idx]) != label {
				errs = append(errs, mismatchf("component %d mixes labels %d and %d", ci, label, int(data[idx])))
				break
			}
		}
		if label == 0 {
			continue
		}
		if prev, dup := owner[label]; dup {
			errs = append(errs, mismatchf("label %d shared by components %d and %d", label, prev, ci))
			continue
		}
		owner[label] = ci
		if label < 1 || label > len(regions) {
			errs = append(errs, mismatchf("component %d carries label %d outside 1..%d", ci, label, len(regions)))
			continue
		}
		keptCells += comp.Area
		rg := regions[label-1]
		if rg.Area != comp.Area {
			errs = append(errs, mismatchf("label %d area %d, component area %d", label, rg.Area, comp.Area))
		}
		box := labeling.BoundingBox{
			RowMin: comp.Box.RowMin, RowMax: comp.Box.RowMax,
			ColMin: comp.Box.ColMin, ColMax: comp.Box.ColMax,
		}
		if rg.Box != box {
			errs = append(errs, mismatchf("label %d box %+v, component box %+v", label, rg.Box, box))
		}
	}
	if len(owner) != len(regions) {
		errs = append(errs, mismatchf("%d regions but %d labelled components", len(regions), len(owner)))
	}

	nonZero := 0
	for _, v := range data {
		if v != 0 {
			nonZero++
		}
	}
	if nonZero != keptCells {
		errs = append(errs, mismatchf("%d labelled cells, kept components cover %d", nonZero, keptCells))
	}

	return errors.Join(errs...)
}

// Policy checks that regions keep exactly the components the limit policy
// selects: the same count and the same multiset of areas as the largest
// components that pass.
func Policy(regions []labeling.Region, comps []gridgraph.Component, mode labeling.LimitMode, limit int) error {
	areas := make([]int, len(comps))
	for i, c := range comps {
		areas[i] = c.Area
	}
	sort.Sort(sort.Reverse(sort.IntSlice(areas)))

	want := 0
	switch mode {
	case labeling.AreaThreshold:
		for want < len(areas) && areas[want] >= limit {
			want++
		}
	case labeling.RegionCount:
		want = min(limit, len(areas))
	default:
		return mismatchf("unknown mode %v", mode)
	}
	if len(regions) != want {
		return mismatchf("%v limit %d: kept %d regions, want %d", mode, limit, len(regions), want)
	}
	for i, rg := range regions {
		if rg.Area != areas[i] {
			return mismatchf("region %d area %d, want %d", i, rg.Area, areas[i])
		}
	}

	return nil
}
