package combat

import (
	"github.com/kkovrov/tacflood/grid"
	"github.com/kkovrov/tacflood/reachability"
)

// AttackFromMove produces, from a movement field and a Manhattan range
// interval, every tile strikeable from any reachable position. In
// grid.ExcludeMoveTiles mode, tiles the field already reaches by
// movement are dropped from scope.
func AttackFromMove[C grid.Coord](field *reachability.MovementField[C], rng Range[C], opts ...Option) (*Field[C], error) {
	if rng.Lo > rng.Hi {
		return nil, ErrInvalidRange
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	result := newField[C](field.Bounds, o.Mode)
	var list []grid.Point[C]

	signs := [2]C{1, -1}
	for _, p := range field.Positions() {
		for dx := C(0); dx <= rng.Hi; dx++ {
			subLo := C(0)
			if rng.Lo > dx {
				subLo = rng.Lo - dx
			}
			subHi := rng.Hi - dx
			if subHi < 0 {
				continue
			}
			for dy := subLo; dy <= subHi; dy++ {
				for _, sx := range signs {
					for _, sy := range signs {
						raw := grid.Point[C]{X: p.X + sx*dx, Y: p.Y + sy*dy}
						t := grid.ClampPoint(raw, field.Bounds)

						include := true
						if o.MoveTile == grid.ExcludeMoveTiles {
							include = !field.Reachable(t)
						}
						if include {
							result.mark(t, &list)
						}
					}
				}
			}
		}
	}

	result.finish(list)
	return result, nil
}
