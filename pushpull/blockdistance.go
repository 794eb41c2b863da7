package pushpull

import "github.com/kkovrov/tacflood/grid"

// BlockDistance walks outward from origin in unit steps in each
// cardinal direction over cost; the first step landing on an
// unslidable cell records that step index, or, failing that, the
// distance out to the grid edge.
func BlockDistance[C grid.Coord](cost *CostGrid[C], origin grid.Point[C]) grid.CardinalDist[C] {
	var dist grid.CardinalDist[C]
	set := [4]*C{&dist.Right, &dist.Top, &dist.Left, &dist.Bottom}
	resolved := [4]bool{}

	edge := [4]C{
		C(cost.Bounds.Cols-1) - origin.X, // right
		origin.Y,                         // top
		origin.X,                         // left
		C(cost.Bounds.Rows-1) - origin.Y, // bottom
	}

	for step := C(1); ; step++ {
		done := true
		for dir := 0; dir < 4; dir++ {
			if resolved[dir] {
				continue
			}
			done = false

			if step > edge[dir] {
				*set[dir] = edge[dir]
				resolved[dir] = true
				continue
			}

			off := grid.CardinalOffsets[dir]
			p := grid.Point[C]{
				X: origin.X + C(off[0])*step,
				Y: origin.Y + C(off[1])*step,
			}
			p = grid.ClampPoint(p, cost.Bounds)

			if !cost.Slidable(p) {
				*set[dir] = step
				resolved[dir] = true
			} else if step == edge[dir] {
				*set[dir] = edge[dir]
				resolved[dir] = true
			}
		}
		if done {
			break
		}
	}
	return dist
}
