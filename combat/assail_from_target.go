package combat

import (
	"github.com/kkovrov/tacflood/grid"
	"github.com/kkovrov/tacflood/reachability"
)

// AssailFromTarget produces, from a movement field and a fixed target,
// the subset of the field reachable at Manhattan distance in
// [rng.Lo, rng.Hi] from the target, via shell-by-shell perimeter
// enumeration around it. A Lo below 1 is raised to 1, so the target's
// own tile is never in scope.
func AssailFromTarget[C grid.Coord](field *reachability.MovementField[C], target grid.Point[C], rng Range[C], opts ...Option) (*Field[C], error) {
	if rng.Lo > rng.Hi {
		return nil, ErrInvalidRange
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	result := newField[C](field.Bounds, o.Mode)
	var list []grid.Point[C]

	lo := rng.Lo
	if lo < 1 {
		lo = 1
	}
	var shell []grid.Point[C]
	for d := int(lo); d <= int(rng.Hi); d++ {
		shell = grid.SquareShellPerimeter(target, d, shell[:0])
		for _, raw := range shell {
			t := grid.ClampPoint(raw, field.Bounds)
			if t != raw {
				continue
			}
			if field.Reachable(t) {
				result.mark(t, &list)
			}
		}
	}

	result.finish(list)
	return result, nil
}
