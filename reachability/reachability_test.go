package reachability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kkovrov/tacflood/grid"
	"github.com/kkovrov/tacflood/reachability"
)

const (
	gridRows = 21
	gridCols = 25
)

func allOnesGrid(t *testing.T) *reachability.CostGrid[int] {
	t.Helper()
	b := grid.Bounds{Rows: gridRows, Cols: gridCols}
	g := reachability.NewCostGrid[int](b)
	for i := range g.Data {
		g.Data[i] = 1
	}
	return g
}

// TestFloodOpenGrid floods an all-walkable grid from (x=6, y=10) with
// budget 5, producing a 61-tile Manhattan diamond with centre value 1
// and M[t] = manhattan(s,t)+1 everywhere.
func TestFloodOpenGrid(t *testing.T) {
	cost := allOnesGrid(t)
	origin := grid.Point[int]{X: 6, Y: 10}

	field, err := reachability.Flood(cost, origin, 5)
	require.NoError(t, err)

	assert.Equal(t, 1, field.Value(origin))

	count := 0
	for y := 0; y < gridRows; y++ {
		for x := 0; x < gridCols; x++ {
			p := grid.Point[int]{X: x, Y: y}
			d := grid.ManhattanDistance(p, origin)
			if d <= 5 {
				require.True(t, field.Reachable(p), "tile %+v within budget must be reachable", p)
				assert.Equal(t, d+1, field.Value(p))
				count++
			}
		}
	}
	assert.Equal(t, 61, count, "diamond of radius 5 has 61 tiles")
}

// TestFloodVerticalWall floods an all-walkable grid except column 12
// blocked, origin (x=6, y=10), budget 30. Every tile left of the wall
// is reachable at manhattan distance+1; column 12 is unreachable;
// everything right of the wall is unreachable.
func TestFloodVerticalWall(t *testing.T) {
	cost := allOnesGrid(t)
	for y := 0; y < gridRows; y++ {
		cost.Set(grid.Point[int]{X: 12, Y: y}, 0)
	}
	origin := grid.Point[int]{X: 6, Y: 10}

	field, err := reachability.Flood(cost, origin, 30)
	require.NoError(t, err)

	for y := 0; y < gridRows; y++ {
		for x := 0; x < gridCols; x++ {
			p := grid.Point[int]{X: x, Y: y}
			switch {
			case x == 12:
				assert.False(t, field.Reachable(p), "wall tile %+v must be unreachable", p)
			case x < 12:
				require.True(t, field.Reachable(p), "tile %+v left of wall must be reachable", p)
				assert.Equal(t, grid.ManhattanDistance(p, origin)+1, field.Value(p))
			default:
				assert.False(t, field.Reachable(p), "tile %+v right of wall must be unreachable", p)
			}
		}
	}
}

func TestFloodOriginOutOfBounds(t *testing.T) {
	cost := allOnesGrid(t)
	field, err := reachability.Flood(cost, grid.Point[int]{X: -1, Y: 0}, 5)
	require.NoError(t, err)
	assert.False(t, field.Reachable(grid.Point[int]{X: 0, Y: 0}))
}

func TestFloodNegativeBudget(t *testing.T) {
	cost := allOnesGrid(t)
	_, err := reachability.Flood(cost, grid.Point[int]{X: 0, Y: 0}, -1)
	assert.ErrorIs(t, err, reachability.ErrNegativeBudget)
}

func TestFloodBudgetMonotonicity(t *testing.T) {
	cost := allOnesGrid(t)
	origin := grid.Point[int]{X: 6, Y: 10}

	small, err := reachability.Flood(cost, origin, 3)
	require.NoError(t, err)
	large, err := reachability.Flood(cost, origin, 6)
	require.NoError(t, err)

	for y := 0; y < gridRows; y++ {
		for x := 0; x < gridCols; x++ {
			p := grid.Point[int]{X: x, Y: y}
			if small.Reachable(p) {
				assert.True(t, large.Reachable(p), "increasing budget must not remove tiles")
			}
		}
	}
}

func TestFloodListMode(t *testing.T) {
	cost := allOnesGrid(t)
	origin := grid.Point[int]{X: 6, Y: 10}

	field, err := reachability.Flood(cost, origin, 2, reachability.WithMode[int](grid.ModeList))
	require.NoError(t, err)
	assert.Nil(t, field.Matrix)
	assert.NotEmpty(t, field.List)

	seen := make(map[grid.Point[int]]bool)
	for _, p := range field.List {
		assert.False(t, seen[p], "list mode must not duplicate a tile")
		seen[p] = true
		assert.True(t, field.Reachable(p))
	}
}

func TestFloodHexAllOnes(t *testing.T) {
	b := grid.Bounds{Rows: 11, Cols: 11}
	cost := reachability.NewCostGridHex[int](b)
	for i := range cost.Data {
		cost.Data[i] = 1
	}
	origin := grid.HexPoint[int]{X: 5, Y: -5, Z: 0}

	field, err := reachability.FloodHex(cost, origin, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, field.Value(origin))

	neighbour := grid.HexNeighbor(origin, 0)
	require.True(t, field.Reachable(neighbour))
	assert.Equal(t, 2, field.Value(neighbour))
}
