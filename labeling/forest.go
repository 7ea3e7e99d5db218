// SPDX-License-Identifier: MIT

package labeling

// arena is the run sequence viewed as a union-find forest.
// Parent links are indices into the same slice, never pointers, so the
// slice may grow without invalidating the forest.
type arena []Run

func (a arena) isRoot(i int) bool { return a[i].parent == i }

// findRoot returns the root of i's tree and rewrites every parent link on
// the way so that each visited node points straight at the root.
// Iterative, so degenerate chains cannot exhaust the stack.
func (a arena) findRoot(i int) int {
	root := i
	for a[root].parent != root {
		root = a[root].parent
	}
	for a[i].parent != root {
		next := a[i].parent
		a[i].parent = root
		i = next
	}

	return root
}

// setRoot redirects every node on the path from i to its current root,
// the old root included, to newRoot. The old tree becomes a subtree of
// newRoot.
func (a arena) setRoot(i, newRoot int) {
	for {
		next := a[i].parent
		a[i].parent = newRoot
		if next == i {
			return
		}
		i = next
	}
}

// makeEdge records that fore and back overlap on adjacent rows.
// fore lies on the lower row, back on the row above.
//
//   - fore root, back not:  fore joins back's tree.
//   - both roots:           fore is attached under back.
//   - back root, fore not:  back joins fore's tree.
//   - neither root:         no-op when already merged; otherwise fore's
//     whole tree is re-rooted under back's root.
func (a arena) makeEdge(fore, back int) {
	foreIsRoot := a.isRoot(fore)
	backIsRoot := a.isRoot(back)

	switch {
	case foreIsRoot && !backIsRoot:
		a[fore].parent = a.findRoot(back)
	case foreIsRoot && backIsRoot:
		a[fore].parent = back
	case backIsRoot:
		a[back].parent = a.findRoot(fore)
	default:
		foreRoot, backRoot := a.findRoot(fore), a.findRoot(back)
		if foreRoot == backRoot {
			return
		}
		a.setRoot(fore, backRoot)
	}
}

// buildForest merges every pair of runs on rows exactly one apart whose
// column ranges intersect. It returns the number of merge edges examined.
//
// Steps:
//  1. Append a sentinel run on sentinelRow so cursors never run off the end.
//  2. For each row group, f starts at the group's first run and b at the
//     first run of the previous group.
//  3. If the groups are adjacent, sweep both like a merge: skip whichever
//     run lies entirely to the left; on overlap call makeEdge and advance
//     the run with the smaller ColMax, it cannot touch anything further.
//     The sweep stops when b reaches f's row or f leaves it.
//  4. Move f to the next group; the current group becomes the previous one.
//     A gap of two or more rows leaves no adjacent pair, so nothing is rescanned.
//
// Runs must be ordered by Row then ColMin, as produced by extractRuns.
// Complexity: O(R) cursor steps plus the cost of makeEdge calls.
func buildForest(a arena) (arena, int) {
	n := len(a)
	a = append(a, Run{Row: sentinelRow, ColMin: 0, ColMax: -1, parent: n})

	edges := 0
	prev, f := 0, 0
	for a[f].Row != sentinelRow {
		start := f
		b := prev
		if a[start].Row-a[b].Row == 1 {
			for a[f].Row-a[b].Row == 1 {
				switch {
				case a[f].ColMax < a[b].ColMin:
					f++
				case a[b].ColMax < a[f].ColMin:
					b++
				default:
					a.makeEdge(f, b)
					edges++
					if a[b].ColMax < a[f].ColMax {
						b++
					} else {
						f++
					}
				}
			}
		}
		for a[f].Row == a[start].Row {
			f++
		}
		prev = start
	}

	return a[:n], edges
}
