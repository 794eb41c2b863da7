package frontier

import "github.com/kkovrov/tacflood/grid"

// Entry is one flood node: a position and its cumulative distance,
// generic over the position type P (grid.Point[C] or grid.HexPoint[C])
// and the coordinate/cost type C.
type Entry[P comparable, C grid.Coord] struct {
	Pos  P
	Dist C
}
