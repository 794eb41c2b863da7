package visibility

import (
	"math"

	"github.com/kkovrov/tacflood/grid"
	"github.com/kkovrov/tacflood/matrix"
)

// SweepHex is Sweep's hex-grid counterpart. Line interpolation is done
// in cube coordinates with the standard round-then-fixup correction so
// the invariant x+y+z=0 is preserved at every intermediate cell.
func SweepHex[C grid.Coord](block *BlockGridHex[C], origin grid.HexPoint[C], radius int, opts ...Option) (*SightFieldHex[C], error) {
	if radius < 0 {
		return nil, ErrNegativeRadius
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	field := &SightFieldHex[C]{
		Bounds: block.Bounds,
		Mode:   o.Mode,
		values: matrix.New[C](block.Bounds),
	}

	ox, oz := int(origin.X), int(origin.Z)
	if !block.Bounds.ContainsHex(oz, ox) {
		finishSquareHex(field, o.Mode)
		return field, nil
	}

	var list []grid.HexPoint[C]
	mark := func(p grid.HexPoint[C], s State) {
		field.values.SetHex(p, C(s))
		if o.Mode == grid.ModeList && s != Blocked {
			list = append(list, p)
		}
	}

	mark(origin, Observer)

	var shell []grid.HexPoint[C]
	for d := 1; d <= radius; d++ {
		shell = grid.HexShellPerimeter(origin, d, shell[:0])
		for _, raw := range shell {
			p := grid.ClampHexPoint(raw, block.Bounds)
			if p != raw {
				continue
			}
			mark(p, traceHex(block, origin, p, d))
		}
	}

	if o.Mode == grid.ModeList {
		field.List = list
	}
	finishSquareHex(field, o.Mode)
	return field, nil
}

// traceHex interpolates the cube-coordinate line from origin to p (d
// steps out) using cube-lerp with the round-to-nearest-cube fixup, and
// reports p's sight state exactly as traceSquare does for the square
// grid.
func traceHex[C grid.Coord](block *BlockGridHex[C], origin, p grid.HexPoint[C], d int) State {
	for k := 1; k < d; k++ {
		t := float64(k) / float64(d)
		mid := cubeLerpRound[C](origin, p, t)
		if block.Opaque(mid) {
			return Blocked
		}
	}
	if block.Opaque(p) {
		return Wall
	}
	return Visible
}

// cubeLerpRound linearly interpolates between two cube points at
// parameter t and rounds to the nearest valid cube coordinate: round
// each axis independently, then discard the axis with the largest
// rounding error and re-derive it from the other two so x+y+z=0 holds
// exactly.
func cubeLerpRound[C grid.Coord](a, b grid.HexPoint[C], t float64) grid.HexPoint[C] {
	fx := float64(a.X) + t*float64(b.X-a.X)
	fy := float64(a.Y) + t*float64(b.Y-a.Y)
	fz := float64(a.Z) + t*float64(b.Z-a.Z)

	rx := math.RoundToEven(fx)
	ry := math.RoundToEven(fy)
	rz := math.RoundToEven(fz)

	dx := math.Abs(rx - fx)
	dy := math.Abs(ry - fy)
	dz := math.Abs(rz - fz)

	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}

	return grid.HexPoint[C]{X: C(rx), Y: C(ry), Z: C(rz)}
}

func finishSquareHex[C grid.Coord](field *SightFieldHex[C], mode grid.OutputMode) {
	if mode == grid.ModeMatrix {
		field.Matrix = field.values
	}
}
