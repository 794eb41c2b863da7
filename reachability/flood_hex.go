package reachability

import (
	"github.com/kkovrov/tacflood/frontier"
	"github.com/kkovrov/tacflood/grid"
	"github.com/kkovrov/tacflood/matrix"
)

// FloodHex is Flood's hex-grid counterpart. Per-step cost is read
// from the neighbour cell being entered, matching the square variant.
func FloodHex[C grid.Coord](cost *CostGridHex[C], origin grid.HexPoint[C], budget C, opts ...Option[C]) (*MovementFieldHex[C], error) {
	if budget < 0 {
		return nil, ErrNegativeBudget
	}
	o := defaultOptions[C]()
	for _, opt := range opts {
		opt(&o)
	}

	field := &MovementFieldHex[C]{
		Bounds: cost.Bounds,
		Mode:   o.Mode,
		values: matrix.New[C](cost.Bounds),
	}

	if !cost.Bounds.ContainsHex(int(origin.Z), int(origin.X)) {
		finishHex(field, o.Mode)
		return field, nil
	}

	var list []grid.HexPoint[C]
	fr := frontier.New[grid.HexPoint[C], C](cost.Bounds.Cells() * 2)
	fr.PushOpen(frontier.Entry[grid.HexPoint[C], C]{Pos: origin, Dist: 0})

	for fr.OpenLen() > 0 {
		u, _ := fr.PopOpen()
		fr.Close(u)
		if o.OnVisit != nil {
			o.OnVisit(u.Pos, u.Dist)
		}

		cur := field.values.AtHex(u.Pos)
		if cur == 0 || cur > u.Dist+1 {
			field.values.SetHex(u.Pos, u.Dist+1)
		}
		if o.Mode == grid.ModeList {
			list = appendIfAbsentHex(list, u.Pos)
		}

		for i := 0; i < 6; i++ {
			raw := grid.HexNeighbor(u.Pos, i)
			v := grid.ClampHexPoint(raw, cost.Bounds)
			if !cost.Walkable(v) {
				continue
			}
			vDist := u.Dist + cost.AtHex(v)
			if vDist > budget {
				continue
			}
			if idx, ok := fr.FindClosed(v); ok {
				if fr.ClosedAt(idx).Dist <= vDist {
					continue
				}
				fr.Reopen(idx, frontier.Entry[grid.HexPoint[C], C]{Pos: v, Dist: vDist})
				continue
			}
			fr.PushOpen(frontier.Entry[grid.HexPoint[C], C]{Pos: v, Dist: vDist})
		}
	}

	if o.Mode == grid.ModeList {
		field.List = list
	}
	finishHex(field, o.Mode)
	return field, nil
}

func finishHex[C grid.Coord](field *MovementFieldHex[C], mode grid.OutputMode) {
	if mode == grid.ModeMatrix {
		field.Matrix = field.values
	}
}

func appendIfAbsentHex[C grid.Coord](list []grid.HexPoint[C], p grid.HexPoint[C]) []grid.HexPoint[C] {
	for _, q := range list {
		if q == p {
			return list
		}
	}
	return append(list, p)
}
