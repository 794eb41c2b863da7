package combat_test

import (
	"fmt"

	"github.com/kkovrov/tacflood/combat"
	"github.com/kkovrov/tacflood/grid"
	"github.com/kkovrov/tacflood/reachability"
)

// Example builds a 5×5 all-walkable grid, floods it from the centre
// with budget 1, then finds every tile strikeable at range exactly 1
// from any reachable position.
func Example() {
	b := grid.Bounds{Rows: 5, Cols: 5}
	cost := reachability.NewCostGrid[int](b)
	for i := range cost.Data {
		cost.Data[i] = 1
	}

	origin := grid.Point[int]{X: 2, Y: 2}
	moves, err := reachability.Flood(cost, origin, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	attack, err := combat.AttackFromMove(moves, combat.Range[int]{Lo: 1, Hi: 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	count := 0
	for _, v := range attack.Matrix.Data {
		if v != 0 {
			count++
		}
	}
	fmt.Println(count)
	// Output: 13
}
