package reachability_test

import (
	"testing"

	"github.com/kkovrov/tacflood/grid"
	"github.com/kkovrov/tacflood/reachability"
)

// BenchmarkFlood_OpenGrid measures the flood on a 64×64 all-walkable
// grid with a budget large enough to cover the whole map.
func BenchmarkFlood_OpenGrid(b *testing.B) {
	bounds := grid.Bounds{Rows: 64, Cols: 64}
	cost := reachability.NewCostGrid[int](bounds)
	for i := range cost.Data {
		cost.Data[i] = 1
	}
	origin := grid.Point[int]{X: 32, Y: 32}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = reachability.Flood(cost, origin, 64)
	}
}
