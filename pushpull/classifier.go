package pushpull

import (
	"github.com/kkovrov/tacflood/combat"
	"github.com/kkovrov/tacflood/grid"
)

// Direction classifies, for each perimeter tile q around target at
// distance d in [lo, hi] that is in scope in assailable, a pushable
// flag mirrored away from q and, unless q sits on the grid border, a
// pullable flag toward q.
func Direction[C grid.Coord](assailable *combat.Field[C], target grid.Point[C], rng combat.Range[C]) (pushable, pullable grid.CardinalFlags, err error) {
	if rng.Lo > rng.Hi {
		return grid.CardinalFlags{}, grid.CardinalFlags{}, ErrInvalidRange
	}

	lo := rng.Lo
	if lo < 1 {
		lo = 1
	}
	var shell []grid.Point[C]
	for d := int(lo); d <= int(rng.Hi); d++ {
		shell = grid.SquareShellPerimeter(target, d, shell[:0])
		for _, raw := range shell {
			q := grid.ClampPoint(raw, assailable.Bounds)
			if !assailable.InScope(q) {
				continue
			}

			if q.X > target.X {
				pushable.Left = true
			}
			if q.Y > target.Y {
				pushable.Top = true
			}
			if q.X < target.X {
				pushable.Right = true
			}
			if q.Y < target.Y {
				pushable.Bottom = true
			}

			onBorder := q.X == 0 || q.X == C(assailable.Bounds.Cols-1) ||
				q.Y == 0 || q.Y == C(assailable.Bounds.Rows-1)
			if onBorder {
				continue
			}
			if q.X > target.X {
				pullable.Right = true
			}
			if q.Y > target.Y {
				pullable.Bottom = true
			}
			if q.X < target.X {
				pullable.Left = true
			}
			if q.Y < target.Y {
				pullable.Top = true
			}
		}
	}
	return pushable, pullable, nil
}
