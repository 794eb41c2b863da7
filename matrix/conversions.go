package matrix

import "github.com/kkovrov/tacflood/grid"

// ToList walks g in row-major order and returns the (x, y) points for
// which inScope reports true, in discovery order: the matrix→list
// half of the grid.OutputMode pair.
func ToList[C grid.Coord](g *Grid[C], inScope func(v C) bool) []grid.Point[C] {
	out := make([]grid.Point[C], 0)
	for y := 0; y < g.Bounds.Rows; y++ {
		for x := 0; x < g.Bounds.Cols; x++ {
			p := grid.Point[C]{X: C(x), Y: C(y)}
			if v := g.At(p); inScope(v) {
				out = append(out, p)
			}
		}
	}
	return out
}

// FromList builds a dense Grid sized to b, setting value(p) at every
// point in list and leaving the rest zero-valued: the list→matrix
// half of the grid.OutputMode pair.
func FromList[C grid.Coord](b grid.Bounds, list []grid.Point[C], value func(p grid.Point[C]) C) *Grid[C] {
	out := New[C](b)
	for _, p := range list {
		out.Set(p, value(p))
	}
	return out
}

// ToListHex is ToList's hex-grid counterpart, iterating the (z, x)
// storage plane.
func ToListHex[C grid.Coord](g *Grid[C], inScope func(v C) bool) []grid.HexPoint[C] {
	out := make([]grid.HexPoint[C], 0)
	for z := 0; z < g.Bounds.Rows; z++ {
		for x := 0; x < g.Bounds.Cols; x++ {
			p := grid.HexPoint[C]{X: C(x), Y: -C(x) - C(z), Z: C(z)}
			if v := g.AtHex(p); inScope(v) {
				out = append(out, p)
			}
		}
	}
	return out
}

// FromListHex is FromList's hex-grid counterpart.
func FromListHex[C grid.Coord](b grid.Bounds, list []grid.HexPoint[C], value func(p grid.HexPoint[C]) C) *Grid[C] {
	out := New[C](b)
	for _, p := range list {
		out.SetHex(p, value(p))
	}
	return out
}
