package visibility_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kkovrov/tacflood/grid"
	"github.com/kkovrov/tacflood/visibility"
)

const (
	gridRows = 21
	gridCols = 25
)

// occluders is the occluder layout the sweep tests share, given in
// (row, col) pairs and converted to grid.Point{X: col, Y: row}.
func occluders() []grid.Point[int] {
	rc := [][2]int{
		{9, 1}, {8, 2}, {7, 3}, {6, 4}, {4, 5}, {5, 5}, {3, 6}, {4, 6},
		{10, 5}, {13, 6}, {13, 7}, {13, 8}, {10, 7}, {10, 12}, {11, 12}, {12, 12},
	}
	out := make([]grid.Point[int], len(rc))
	for i, p := range rc {
		out[i] = grid.Point[int]{X: p[1], Y: p[0]}
	}
	return out
}

func occluderGrid(t *testing.T) *visibility.BlockGrid[int] {
	t.Helper()
	b := grid.Bounds{Rows: gridRows, Cols: gridCols}
	g := visibility.NewBlockGrid[int](b)
	for _, p := range occluders() {
		g.Set(p, 1)
	}
	return g
}

// TestSweepOccluders sweeps a block grid with 16 obstacles from
// (x=6, y=10) at radius 6.
func TestSweepOccluders(t *testing.T) {
	block := occluderGrid(t)
	origin := grid.Point[int]{X: 6, Y: 10}

	field, err := visibility.Sweep(block, origin, 6)
	require.NoError(t, err)

	assert.Equal(t, visibility.Observer, field.At(origin))

	for _, p := range occluders() {
		if grid.ChessboardDistance(p, origin) > 6 {
			continue
		}
		state := field.At(p)
		assert.Contains(t, []visibility.State{visibility.Blocked, visibility.Wall}, state,
			"obstacle tile %+v must read blocked or wall, got %v", p, state)
	}

	// A tile directly behind the occluder at (row 10, col 5), on the
	// same ray from the origin, must be occluded.
	behind := grid.Point[int]{X: 4, Y: 10}
	assert.Equal(t, visibility.Blocked, field.At(behind))
}

func TestSweepOriginOutOfBounds(t *testing.T) {
	block := occluderGrid(t)
	field, err := visibility.Sweep(block, grid.Point[int]{X: -1, Y: 0}, 6)
	require.NoError(t, err)
	assert.Equal(t, visibility.Blocked, field.At(grid.Point[int]{X: 0, Y: 0}))
}

func TestSweepNegativeRadius(t *testing.T) {
	block := occluderGrid(t)
	_, err := visibility.Sweep(block, grid.Point[int]{X: 0, Y: 0}, -1)
	assert.ErrorIs(t, err, visibility.ErrNegativeRadius)
}

func TestSweepOpenGridAllVisible(t *testing.T) {
	b := grid.Bounds{Rows: 9, Cols: 9}
	block := visibility.NewBlockGrid[int](b)
	origin := grid.Point[int]{X: 4, Y: 4}

	field, err := visibility.Sweep(block, origin, 3)
	require.NoError(t, err)

	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			p := grid.Point[int]{X: x, Y: y}
			if grid.ManhattanDistance(p, origin) <= 3 && p != origin {
				assert.Equal(t, visibility.Visible, field.At(p), "tile %+v in an open grid must be visible", p)
			}
		}
	}
}

func TestSweepListMode(t *testing.T) {
	block := occluderGrid(t)
	origin := grid.Point[int]{X: 6, Y: 10}

	field, err := visibility.Sweep(block, origin, 6, visibility.WithMode(grid.ModeList))
	require.NoError(t, err)
	assert.Nil(t, field.Matrix)
	assert.NotEmpty(t, field.List)

	for _, p := range field.List {
		assert.NotEqual(t, visibility.Blocked, field.At(p))
	}
}

func TestSweepHexOpenGridAllVisible(t *testing.T) {
	b := grid.Bounds{Rows: 9, Cols: 9}
	block := visibility.NewBlockGridHex[int](b)
	origin := grid.HexPoint[int]{X: 4, Y: -4, Z: 0}

	field, err := visibility.SweepHex(block, origin, 2)
	require.NoError(t, err)
	assert.Equal(t, visibility.Observer, field.At(origin))

	neighbour := grid.HexNeighbor(origin, 0)
	assert.Equal(t, visibility.Visible, field.At(neighbour))
}
