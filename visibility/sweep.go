package visibility

import (
	"math"

	"github.com/kkovrov/tacflood/grid"
	"github.com/kkovrov/tacflood/matrix"
)

// Sweep builds a sight field from block, origin, and a non-negative
// sight radius. Out-of-bounds origins return an empty field rather
// than an error, matching reachability.Flood's convention.
func Sweep[C grid.Coord](block *BlockGrid[C], origin grid.Point[C], radius int, opts ...Option) (*SightField[C], error) {
	if radius < 0 {
		return nil, ErrNegativeRadius
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	field := &SightField[C]{
		Bounds: block.Bounds,
		Mode:   o.Mode,
		values: matrix.New[C](block.Bounds),
	}

	if !block.Bounds.Contains(int(origin.X), int(origin.Y)) {
		finishSquare(field, o.Mode)
		return field, nil
	}

	var list []grid.Point[C]
	mark := func(p grid.Point[C], s State) {
		field.values.Set(p, C(s))
		if o.Mode == grid.ModeList && s != Blocked {
			list = append(list, p)
		}
	}

	mark(origin, Observer)

	var shell []grid.Point[C]
	for d := 1; d <= radius; d++ {
		shell = grid.SquareShellPerimeter(origin, d, shell[:0])
		for _, raw := range shell {
			p := grid.ClampPoint(raw, block.Bounds)
			if p != raw {
				continue
			}
			mark(p, traceSquare(block, origin, p, d))
		}
	}

	if o.Mode == grid.ModeList {
		field.List = list
	}
	finishSquare(field, o.Mode)
	return field, nil
}

// traceSquare interpolates the integer line from origin to p (p lying
// exactly d steps out on origin's shell) and reports p's sight state:
// Blocked if any strictly-intermediate cell is opaque, Wall if p itself
// is opaque but the line up to it is clear, else Visible.
func traceSquare[C grid.Coord](block *BlockGrid[C], origin, p grid.Point[C], d int) State {
	dx := float64(p.X - origin.X)
	dy := float64(p.Y - origin.Y)
	for k := 1; k < d; k++ {
		t := float64(k) / float64(d)
		mid := grid.Point[C]{
			X: origin.X + C(math.RoundToEven(t*dx)),
			Y: origin.Y + C(math.RoundToEven(t*dy)),
		}
		if block.Opaque(mid) {
			return Blocked
		}
	}
	if block.Opaque(p) {
		return Wall
	}
	return Visible
}

func finishSquare[C grid.Coord](field *SightField[C], mode grid.OutputMode) {
	if mode == grid.ModeMatrix {
		field.Matrix = field.values
	}
}
