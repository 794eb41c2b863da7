package pushpull_test

import (
	"fmt"

	"github.com/kkovrov/tacflood/grid"
	"github.com/kkovrov/tacflood/pushpull"
)

// Example projects a push to the right with a block distance of three,
// which marks the two tiles before the blocker.
func Example() {
	b := grid.Bounds{Rows: 5, Cols: 5}
	origin := grid.Point[int]{X: 1, Y: 2}
	dist := grid.CardinalDist[int]{Right: 3}
	flags := grid.CardinalFlags{Right: true}

	field := pushpull.Project(dist, flags, b, origin)
	fmt.Println(field.At(grid.Point[int]{X: 2, Y: 2}), field.At(grid.Point[int]{X: 3, Y: 2}))
	// Output: 1 2
}
