package grid_test

import (
	"fmt"

	"github.com/kkovrov/tacflood/grid"
)

// Example demonstrates clamping an origin into bounds and reading its
// row-major cell index, the two operations every other package in
// this module builds on.
func Example() {
	b := grid.Bounds{Rows: 21, Cols: 25}
	origin := grid.ClampPoint(grid.Point[int]{X: 30, Y: -2}, b)
	fmt.Println(origin, grid.Index(origin, b.Cols))
	// Output: {24 0} 24
}
