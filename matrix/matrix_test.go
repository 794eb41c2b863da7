package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kkovrov/tacflood/grid"
	"github.com/kkovrov/tacflood/matrix"
)

func TestGridAtSet(t *testing.T) {
	g := matrix.New[int](grid.Bounds{Rows: 3, Cols: 4})
	p := grid.Point[int]{X: 2, Y: 1}
	g.Set(p, 7)
	assert.Equal(t, 7, g.At(p))
	assert.Equal(t, 1*4+2, grid.Index(p, g.Bounds.Cols))
}

func TestElementwiseOps(t *testing.T) {
	b := grid.Bounds{Rows: 2, Cols: 2}
	a := matrix.New[int](b)
	c := matrix.New[int](b)
	a.Data = []int{1, 2, 3, 4}
	c.Data = []int{1, 0, 3, 5}

	eq, err := matrix.Equal(a, c)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true, false}, eq.Data)

	assert.True(t, matrix.Any(eq))
	assert.False(t, matrix.All(eq))

	sum, err := matrix.Plus(a, c)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 6, 9}, sum.Data)

	diff, err := matrix.Minus(a, c)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 0, -1}, diff.Data)

	masked, err := matrix.Mask(a, eq)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 3, 0}, masked.Data)
}

func TestTrace(t *testing.T) {
	g := matrix.New[int](grid.Bounds{Rows: 2, Cols: 2})
	g.Data = []int{1, 2, 3, 4}
	tr, err := matrix.Trace(g)
	require.NoError(t, err)
	assert.Equal(t, 5, tr)

	_, err = matrix.Trace(matrix.New[int](grid.Bounds{Rows: 2, Cols: 3}))
	assert.ErrorIs(t, err, matrix.ErrNotSquare)
}

func TestDotAndCross(t *testing.T) {
	d, err := matrix.Dot([]int{1, 2, 3}, []int{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 32, d)

	assert.Equal(t, 1, matrix.Cross(1, 0, 0, 1))
}

func TestListRoundTrip(t *testing.T) {
	b := grid.Bounds{Rows: 3, Cols: 3}
	g := matrix.New[int](b)
	g.Set(grid.Point[int]{X: 1, Y: 1}, 5)
	g.Set(grid.Point[int]{X: 2, Y: 0}, 9)

	list := matrix.ToList(g, func(v int) bool { return v != 0 })
	require.Len(t, list, 2)

	back := matrix.FromList(b, list, func(p grid.Point[int]) int { return g.At(p) })
	assert.Equal(t, g.Data, back.Data)
}
