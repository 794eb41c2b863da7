package visibility_test

import (
	"fmt"

	"github.com/kkovrov/tacflood/grid"
	"github.com/kkovrov/tacflood/visibility"
)

// Example builds a 5×5 open block grid and sweeps it from the centre
// with a sight radius of 2, printing the observer state and a
// visible neighbour's state.
func Example() {
	b := grid.Bounds{Rows: 5, Cols: 5}
	block := visibility.NewBlockGrid[int](b)

	origin := grid.Point[int]{X: 2, Y: 2}
	field, err := visibility.Sweep(block, origin, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(field.At(origin), field.At(grid.Point[int]{X: 3, Y: 2}))
	// Output: 2 1
}
