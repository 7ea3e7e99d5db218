// SPDX-License-Identifier: MIT

package labeling

import (
	"fmt"
	"sort"
)

// totalize adds the length of every run to the tally of its root.
// Runs must enter with a zero tally; afterwards only root tallies are
// meaningful and hold the area of the whole tree.
func totalize(a arena) {
	for i := range a {
		root := a.findRoot(i)
		a[root].tally += a[i].Len()
	}
}

// collectRoots returns the arena indices of every root in discovery order.
func collectRoots(a arena, buf []int) []int {
	buf = buf[:0]
	for i := range a {
		if a.isRoot(i) {
			buf = append(buf, i)
		}
	}

	return buf
}

// keptCount applies the limit policy to roots already sorted by area,
// descending. A non-positive limit keeps nothing.
func keptCount(a arena, roots []int, mode LimitMode, limit int) int {
	if limit <= 0 {
		return 0
	}
	switch mode {
	case AreaThreshold:
		k := 0
		for k < len(roots) && a[roots[k]].tally >= limit {
			k++
		}
		return k
	case RegionCount:
		return min(limit, len(roots))
	default:
		return 0
	}
}

// assignLabels ranks the roots, labels the kept ones 1..K and every other
// root 0, then labels every run from its root and folds it into the
// matching Region. It returns the regions (index label-1) and the root buffer
// for reuse.
//
// Steps:
//  1. Collect roots; stable sort by area descending (ties keep discovery order).
//  2. keptCount decides K; roots [0,K) get labels 1..K and a Region snapshot.
//  3. Every run takes its root's label; non-zero labels are folded into
//     regions[label-1]. Region area is rebuilt here, not copied from the tally.
//
// Complexity: O(K log K + R·α(R)).
func assignLabels(a arena, mode LimitMode, limit int, rootBuf []int) ([]Region, []int) {
	roots := collectRoots(a, rootBuf)
	sort.SliceStable(roots, func(i, j int) bool {
		return a[roots[i]].tally > a[roots[j]].tally
	})

	kept := keptCount(a, roots, mode, limit)
	regions := make([]Region, 0, kept)
	for k, root := range roots {
		if k < kept {
			regions = append(regions, newRegion(k+1, a[root]))
			a[root].tally = k + 1
		} else {
			a[root].tally = 0
		}
	}

	for i := range a {
		root := a.findRoot(i)
		if !a.isRoot(root) {
			panic(fmt.Sprintf("labeling: resolved root %d of run %d is not self-parented", root, i))
		}
		label := a[root].tally
		a[i].tally = label
		if label == 0 {
			continue
		}
		if label > len(regions) {
			panic(fmt.Sprintf("labeling: run %d carries label %d beyond %d regions", i, label, len(regions)))
		}
		regions[label-1].add(a[i])
	}

	return regions, roots
}
