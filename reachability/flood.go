package reachability

import (
	"github.com/kkovrov/tacflood/frontier"
	"github.com/kkovrov/tacflood/grid"
	"github.com/kkovrov/tacflood/matrix"
)

// Flood builds a movement field from cost, origin, and a non-negative
// movement budget. Out-of-bounds origins return an empty field rather
// than an error.
func Flood[C grid.Coord](cost *CostGrid[C], origin grid.Point[C], budget C, opts ...Option[C]) (*MovementField[C], error) {
	if budget < 0 {
		return nil, ErrNegativeBudget
	}
	o := defaultOptions[C]()
	for _, opt := range opts {
		opt(&o)
	}

	field := &MovementField[C]{
		Bounds: cost.Bounds,
		Mode:   o.Mode,
		values: matrix.New[C](cost.Bounds),
	}

	if !cost.Bounds.Contains(int(origin.X), int(origin.Y)) {
		finishSquare(field, o.Mode)
		return field, nil
	}

	var list []grid.Point[C]
	fr := frontier.New[grid.Point[C], C](cost.Bounds.Cells() * 2)
	fr.PushOpen(frontier.Entry[grid.Point[C], C]{Pos: origin, Dist: 0})

	for fr.OpenLen() > 0 {
		u, _ := fr.PopOpen()
		fr.Close(u)
		if o.OnVisit != nil {
			o.OnVisit(u.Pos, u.Dist)
		}

		cur := field.values.At(u.Pos)
		if cur == 0 || cur > u.Dist+1 {
			field.values.Set(u.Pos, u.Dist+1)
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
			vDist := u.Dist + cost.At(v)
			if vDist > budget {
				continue
			}
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

	if o.Mode == grid.ModeList {
		field.List = list
	}
	finishSquare(field, o.Mode)
	return field, nil
}

func finishSquare[C grid.Coord](field *MovementField[C], mode grid.OutputMode) {
	if mode == grid.ModeMatrix {
		field.Matrix = field.values
	}
}

func appendIfAbsent[C grid.Coord](list []grid.Point[C], p grid.Point[C]) []grid.Point[C] {
	for _, q := range list {
		if q == p {
			return list
		}
	}
	return append(list, p)
}
