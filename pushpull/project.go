package pushpull

import (
	"github.com/kkovrov/tacflood/grid"
	"github.com/kkovrov/tacflood/matrix"
)

// Project marks, given block distances and pushpullable flags, every
// intermediate cell from origin at distance 1 .. dist[dir]-1 with
// that distance, for each direction flags allows.
func Project[C grid.Coord](dist grid.CardinalDist[C], flags grid.CardinalFlags, bounds grid.Bounds, origin grid.Point[C], opts ...Option) *Field[C] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	values := matrix.New[C](bounds)
	values.Fill(Blocked)
	values.Set(origin, 0)

	dirs := [4]struct {
		on  bool
		d   C
		off [2]int
	}{
		{flags.Right, dist.Right, grid.CardinalOffsets[0]},
		{flags.Top, dist.Top, grid.CardinalOffsets[1]},
		{flags.Left, dist.Left, grid.CardinalOffsets[2]},
		{flags.Bottom, dist.Bottom, grid.CardinalOffsets[3]},
	}

	var list []grid.Point[C]
	for _, d := range dirs {
		if !d.on {
			continue
		}
		for step := C(1); step < d.d; step++ {
			p := grid.Point[C]{
				X: origin.X + C(d.off[0])*step,
				Y: origin.Y + C(d.off[1])*step,
			}
			p = grid.ClampPoint(p, bounds)
			values.Set(p, step)
			if o.Mode == grid.ModeList {
				list = append(list, p)
			}
		}
	}

	field := &Field[C]{Bounds: bounds, Mode: o.Mode, values: values}
	if o.Mode == grid.ModeMatrix {
		field.Matrix = values
	} else {
		field.List = list
	}
	return field
}
