package gradient

import (
	"github.com/kkovrov/tacflood/frontier"
	"github.com/kkovrov/tacflood/grid"
	"github.com/kkovrov/tacflood/matrix"
	"github.com/kkovrov/tacflood/reachability"
)

// Gradient builds a minimum-distance-to-nearest-seed field from cost
// and seeds.
func Gradient[C grid.Coord](cost *reachability.CostGrid[C], seeds []grid.Point[C], opts ...Option) (*Field[C], error) {
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	values := matrix.New[C](cost.Bounds)
	upperBound := C(cost.Bounds.Rows + cost.Bounds.Cols)
	for y := 0; y < cost.Bounds.Rows; y++ {
		for x := 0; x < cost.Bounds.Cols; x++ {
			p := grid.Point[C]{X: C(x), Y: C(y)}
			if cost.Walkable(p) {
				values.Set(p, upperBound)
			} else {
				values.Set(p, Blocked)
			}
		}
	}

	fr := frontier.New[grid.Point[C], C](cost.Bounds.Cells() * 2)
	for _, s := range seeds {
		values.Set(s, 0)
		fr.PushOpen(frontier.Entry[grid.Point[C], C]{Pos: s, Dist: 0})
	}

	var list []grid.Point[C]
	for fr.OpenLen() > 0 {
		u, _ := fr.PopOpen()
		fr.Close(u)

		if u.Dist < values.At(u.Pos) {
			values.Set(u.Pos, u.Dist)
		}
		if o.Mode == grid.ModeList {
			list = appendIfAbsent(list, u.Pos)
		}

		for i := 0; i < 4; i++ {
			raw := grid.CardinalNeighbor(u.Pos, i)
			v := grid.ClampPoint(raw, cost.Bounds)
			if !cost.Walkable(v) {
				continue
			}
			vDist := u.Dist + 1
			if idx, ok := fr.FindClosed(v); ok {
				if fr.ClosedAt(idx).Dist <= vDist {
					continue
				}
				fr.Reopen(idx, frontier.Entry[grid.Point[C], C]{Pos: v, Dist: vDist})
				continue
			}
			fr.PushOpen(frontier.Entry[grid.Point[C], C]{Pos: v, Dist: vDist})
		}
	}

	field := &Field[C]{Bounds: cost.Bounds, Mode: o.Mode, values: values}
	if o.Mode == grid.ModeMatrix {
		field.Matrix = values
	} else {
		field.List = list
	}
	return field, nil
}

func appendIfAbsent[C grid.Coord](list []grid.Point[C], p grid.Point[C]) []grid.Point[C] {
	for _, q := range list {
		if q == p {
			return list
		}
	}
	return append(list, p)
}
