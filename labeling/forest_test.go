package labeling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/runlabel/raster"
)

func mustGrid(t *testing.T, rows [][]uint8) *raster.Grid[uint8] {
	t.Helper()
	g, err := raster.FromRows(rows)
	require.NoError(t, err)
	return g
}

// spans strips union-find state so runs compare on geometry only.
func spans(a arena) [][3]int {
	out := make([][3]int, len(a))
	for i, r := range a {
		out[i] = [3]int{r.Row, r.ColMin, r.ColMax}
	}
	return out
}

func TestExtractRuns(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{0, 1, 1, 0, 1}, // two disjoint runs
		{0, 0, 0, 0, 0}, // none
		{9, 9, 9, 9, 9}, // whole row
		{1, 0, 1, 0, 1}, // singletons
	})
	runs := extractRuns(nil, g)

	assert.Equal(t, [][3]int{
		{0, 1, 2}, {0, 4, 4},
		{2, 0, 4},
		{3, 0, 0}, {3, 2, 2}, {3, 4, 4},
	}, spans(runs))
	for i, r := range runs {
		assert.Equal(t, i, r.parent, "run %d must start as its own root", i)
		assert.Zero(t, r.tally)
	}
}

func TestExtractRunsFloatAndNegative(t *testing.T) {
	g, err := raster.FromRows([][]float64{{0, -0.5, 1e-9, 0}})
	require.NoError(t, err)
	assert.Equal(t, [][3]int{{0, 1, 2}}, spans(extractRuns(nil, g)))
}

func TestExtractRunsAppendsToBuffer(t *testing.T) {
	g := mustGrid(t, [][]uint8{{1, 0, 1}})
	buf := append(make([]Run, 0, 8), Run{Row: 0, ColMin: 0, ColMax: 0})
	runs := extractRuns(buf, g)
	require.Len(t, runs, 3)
	// parents are arena indices, so they must follow the buffer offset
	assert.Equal(t, 1, runs[1].parent)
	assert.Equal(t, 2, runs[2].parent)
}

func TestFindRootCompressesPath(t *testing.T) {
	// chain 3 -> 2 -> 1 -> 0
	a := arena{{parent: 0}, {parent: 0}, {parent: 1}, {parent: 2}}

	assert.Equal(t, 0, a.findRoot(3))
	for i := range a {
		assert.Equal(t, 0, a[i].parent, "node %d not compressed", i)
	}
}

func TestSetRootRedirectsWholePath(t *testing.T) {
	// tree A: 2 -> 1 -> 0 ; tree B: root 3
	a := arena{{parent: 0}, {parent: 0}, {parent: 1}, {parent: 3}}
	a.setRoot(2, 3)

	assert.Equal(t, 3, a[2].parent)
	assert.Equal(t, 3, a[1].parent)
	assert.Equal(t, 3, a[0].parent, "old root must move under the new root")
	assert.True(t, a.isRoot(3))
}

func TestMakeEdgeBranches(t *testing.T) {
	t.Run("BothRoots", func(t *testing.T) {
		a := arena{{parent: 0}, {parent: 1}}
		a.makeEdge(1, 0)
		assert.Equal(t, 0, a[1].parent)
	})
	t.Run("ForeRootOnly", func(t *testing.T) {
		// back=1 belongs to tree rooted at 0
		a := arena{{parent: 0}, {parent: 0}, {parent: 2}}
		a.makeEdge(2, 1)
		assert.Equal(t, 0, a[2].parent)
	})
	t.Run("BackRootOnly", func(t *testing.T) {
		// fore=2 belongs to tree rooted at 0, back=1 is alone
		a := arena{{parent: 0}, {parent: 1}, {parent: 0}}
		a.makeEdge(2, 1)
		assert.Equal(t, 0, a[1].parent)
	})
	t.Run("NeitherRootSameTree", func(t *testing.T) {
		a := arena{{parent: 0}, {parent: 0}, {parent: 0}}
		a.makeEdge(2, 1)
		assert.Equal(t, arena{{parent: 0}, {parent: 0}, {parent: 0}}, a)
	})
	t.Run("NeitherRootDifferentTrees", func(t *testing.T) {
		// trees {0,2} and {1,3}; fore=2, back=3
		a := arena{{parent: 0}, {parent: 1}, {parent: 0}, {parent: 1}}
		a.makeEdge(2, 3)
		assert.Equal(t, 1, a[2].parent)
		assert.Equal(t, 1, a[0].parent)
		assert.True(t, a.isRoot(1))
		assert.Equal(t, 1, a.findRoot(0))
	})
}

// TestBuildForestReRoot drives the sweep into the "neither is root" branch:
//
//	1 0 0 0 1     A . . . B
//	1 1 0 1 1     C C . D D
//	1 1 1 1 1     E E E E E
//
// Row 1 attaches C under A and D under B. Row 2 attaches E under A, then
// meets D whose root is B, so A's tree is re-rooted under B.
func TestBuildForestReRoot(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{1, 0, 0, 0, 1},
		{1, 1, 0, 1, 1},
		{1, 1, 1, 1, 1},
	})
	a, edges := buildForest(extractRuns(nil, g))

	require.Len(t, a, 5, "sentinel must be removed")
	assert.Equal(t, 4, edges)
	assert.Equal(t, []int{1, 1, 0, 1, 1}, []int{a[0].parent, a[1].parent, a[2].parent, a[3].parent, a[4].parent})
	for i := range a {
		assert.Equal(t, 1, a.findRoot(i))
	}
}

func TestBuildForestHourglass(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{1, 0, 1},
		{1, 1, 1},
	})
	a, edges := buildForest(extractRuns(nil, g))

	assert.Equal(t, 2, edges)
	assert.Equal(t, 0, a.findRoot(1))
	assert.Equal(t, 0, a.findRoot(2))
}

func TestBuildForestSkipsRowGaps(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{1, 1},
		{0, 0},
		{1, 1},
		{0, 1},
		{0, 0},
		{0, 0},
		{1, 0},
	})
	a, edges := buildForest(extractRuns(nil, g))

	require.Len(t, a, 4)
	assert.Equal(t, 1, edges, "only rows 2 and 3 are adjacent")
	assert.True(t, a.isRoot(0))
	assert.True(t, a.isRoot(1))
	assert.Equal(t, 1, a[2].parent)
	assert.True(t, a.isRoot(3))
}

// TestBuildForestAfterGap covers adjacency right after a gap of several
// empty rows followed by two adjacent populated rows.
func TestBuildForestAfterGap(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{1, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
		{0, 1, 1},
		{0, 0, 1},
	})
	a, edges := buildForest(extractRuns(nil, g))

	assert.Equal(t, 1, edges)
	assert.Equal(t, 1, a.findRoot(2))
}

func TestBuildForestDiagonalDoesNotMerge(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{1, 0},
		{0, 1},
	})
	a, edges := buildForest(extractRuns(nil, g))

	assert.Zero(t, edges)
	assert.True(t, a.isRoot(0))
	assert.True(t, a.isRoot(1))
}

func TestBuildForestEmpty(t *testing.T) {
	a, edges := buildForest(nil)
	assert.Empty(t, a)
	assert.Zero(t, edges)
}

func TestTotalize(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{1, 0, 0, 0, 1},
		{1, 1, 0, 1, 1},
		{1, 1, 1, 1, 1},
	})
	a, _ := buildForest(extractRuns(nil, g))
	totalize(a)

	assert.Equal(t, 11, a[1].tally)
}

func TestKeptCountNonPositiveLimitKeepsNothing(t *testing.T) {
	a := arena{{ColMax: 3, parent: 0, tally: 4}}
	roots := []int{0}
	assert.Zero(t, keptCount(a, roots, AreaThreshold, 0))
	assert.Zero(t, keptCount(a, roots, RegionCount, -3))
	assert.Zero(t, keptCount(a, roots, LimitMode(9), 1))
	assert.Equal(t, 1, keptCount(a, roots, RegionCount, 5))
}

func TestAssignLabelsStableTies(t *testing.T) {
	// three singleton trees with areas 2, 5, 2 in discovery order
	a := arena{
		{Row: 0, ColMin: 0, ColMax: 1, parent: 0},
		{Row: 0, ColMin: 3, ColMax: 7, parent: 1},
		{Row: 2, ColMin: 0, ColMax: 1, parent: 2},
	}
	totalize(a)
	regions, _ := assignLabels(a, AreaThreshold, 1, nil)

	require.Len(t, regions, 3)
	assert.Equal(t, []int{2, 1, 3}, []int{a[0].Label(), a[1].Label(), a[2].Label()})
	assert.Equal(t, 5, regions[0].Area)
	assert.Equal(t, BoundingBox{RowMin: 0, RowMax: 0, ColMin: 0, ColMax: 1}, regions[1].Box)
	assert.Equal(t, BoundingBox{RowMin: 2, RowMax: 2, ColMin: 0, ColMax: 1}, regions[2].Box)
}

func TestFitsLabel(t *testing.T) {
	assert.True(t, fitsLabel[uint8](0))
	assert.True(t, fitsLabel[uint8](255))
	assert.False(t, fitsLabel[uint8](256))
	assert.True(t, fitsLabel[int8](127))
	assert.False(t, fitsLabel[int8](128))
	assert.True(t, fitsLabel[uint16](65535))
	assert.True(t, fitsLabel[int32](1<<20))
}

func TestRenderIdempotent(t *testing.T) {
	a := arena{
		{Row: 0, ColMin: 1, ColMax: 2, tally: 1},
		{Row: 1, ColMin: 0, ColMax: 0, tally: 0},
		{Row: 1, ColMin: 2, ColMax: 2, tally: 2},
	}
	dst, err := raster.NewGrid[uint16](2, 3)
	require.NoError(t, err)
	dst.Fill(7)

	render(a, dst)
	first := dst.ToRows()
	render(a, dst)

	assert.Equal(t, [][]uint16{{0, 1, 1}, {0, 0, 2}}, first)
	assert.Equal(t, first, dst.ToRows())
}
