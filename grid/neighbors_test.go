package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kkovrov/tacflood/grid"
)

func TestCardinalOffsetsShape(t *testing.T) {
	for _, d := range grid.CardinalOffsets {
		dx, dy := d[0], d[1]
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		assert.Equal(t, 1, dx+dy, "cardinal offset must have |dx|+|dy|=1")
	}
}

func TestCornerOffsetsShape(t *testing.T) {
	for _, d := range grid.CornerOffsets {
		dx, dy := d[0], d[1]
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		assert.Equal(t, 1, dx, "corner offset must have |dx|=1")
		assert.Equal(t, 1, dy, "corner offset must have |dy|=1")
	}
}

func TestHexOffsetsShape(t *testing.T) {
	for _, d := range grid.HexOffsets {
		sum := d[0] + d[1] + d[2]
		assert.Equal(t, 0, sum, "hex offset must sum to zero in cube space")
		nonZero := 0
		for _, c := range d {
			if c != 0 {
				nonZero++
			}
		}
		assert.Equal(t, 2, nonZero, "hex offset must have exactly two non-zero components")
	}
}

func TestSquareShellPerimeterCount(t *testing.T) {
	centre := grid.Point[int]{X: 10, Y: 10}
	for d := 1; d <= 6; d++ {
		var dst []grid.Point[int]
		dst = grid.SquareShellPerimeter(centre, d, dst)
		require.Len(t, dst, 4*d)

		seen := make(map[grid.Point[int]]bool, len(dst))
		for _, p := range dst {
			assert.False(t, seen[p], "tile %+v visited twice", p)
			seen[p] = true
			assert.Equal(t, d, grid.ManhattanDistance(p, centre))
		}
	}
}

func TestHexShellPerimeterCount(t *testing.T) {
	centre := grid.HexPoint[int]{}
	for d := 1; d <= 6; d++ {
		var dst []grid.HexPoint[int]
		dst = grid.HexShellPerimeter(centre, d, dst)
		require.Len(t, dst, 6*d)

		seen := make(map[grid.HexPoint[int]]bool, len(dst))
		for _, p := range dst {
			assert.True(t, p.Valid(), "hex point must satisfy x+y+z=0")
			assert.False(t, seen[p], "tile %+v visited twice", p)
			seen[p] = true
			assert.Equal(t, d, grid.HexDistance(p, centre))
		}
	}
}
