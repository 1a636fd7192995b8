package dijkstra_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/metronav/core"
	"github.com/katalvlaran/metronav/dijkstra"
)

// BenchmarkShortestCost_Grid measures a corner-to-corner query on a 30×30 grid.
func BenchmarkShortestCost_Grid(b *testing.B) {
	const n = 30
	g := core.NewGraph()
	id := func(r, c int) string { return fmt.Sprintf("G%d_%d~X", r, c) }
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			_ = g.AddStation(id(r, c))
		}
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if c+1 < n {
				_ = g.AddEdge(id(r, c), id(r, c+1), int64((r*c)%7+1))
			}
			if r+1 < n {
				_ = g.AddEdge(id(r, c), id(r+1, c), int64((r+c)%5+1))
			}
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.ShortestCost(g, id(0, 0), id(n-1, n-1))
	}
}
