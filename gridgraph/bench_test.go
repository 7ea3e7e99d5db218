package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/runlabel/gridgraph"
	"github.com/katalvlaran/runlabel/raster"
)

// BenchmarkConnectedComponents measures performance of ConnectedComponents
// on a randomly generated 1000×1000 grid with values in [0,4].
// Complexity: O(W×H×d)
func BenchmarkConnectedComponents(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	g, _ := raster.NewGrid[uint8](n, n)
	for i := range g.Data() {
		g.Data()[i] = uint8(rng.Intn(5)) // values 0..4
	}
	gg, err := gridgraph.NewGridGraph(g, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}
