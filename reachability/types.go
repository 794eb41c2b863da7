package reachability

import (
	"github.com/kkovrov/tacflood/grid"
	"github.com/kkovrov/tacflood/matrix"
)

// CostGrid is a square-grid per-tile movement cost: 0 means blocked,
// >=1 is the cost of entering that tile.
type CostGrid[C grid.Coord] struct {
	*matrix.Grid[C]
}

// NewCostGrid allocates a zero-valued (all-blocked) CostGrid sized b.
func NewCostGrid[C grid.Coord](b grid.Bounds) *CostGrid[C] {
	return &CostGrid[C]{matrix.New[C](b)}
}

// Walkable reports whether p carries a positive cost.
func (g *CostGrid[C]) Walkable(p grid.Point[C]) bool {
	return g.At(p) > 0
}

// CostGridHex is CostGrid's hex-grid counterpart, stored on the (z, x)
// cube-coordinate plane.
type CostGridHex[C grid.Coord] struct {
	*matrix.Grid[C]
}

// NewCostGridHex allocates a zero-valued CostGridHex sized b.
func NewCostGridHex[C grid.Coord](b grid.Bounds) *CostGridHex[C] {
	return &CostGridHex[C]{matrix.New[C](b)}
}

// Walkable reports whether p carries a positive cost.
func (g *CostGridHex[C]) Walkable(p grid.HexPoint[C]) bool {
	return g.AtHex(p) > 0
}

// MovementField is the output of Flood: M[t] = 0 if t is unreachable,
// else (minimum cumulative entry-cost to reach t) + 1.
//
// Matrix is populated iff Mode == grid.ModeMatrix; List iff Mode ==
// grid.ModeList, so exactly one representation is the caller-owned
// return value. Value and Reachable work regardless of Mode and are
// what combat and pathing use internally.
type MovementField[C grid.Coord] struct {
	Bounds grid.Bounds
	Mode   grid.OutputMode
	Matrix *matrix.Grid[C]
	List   []grid.Point[C]

	values *matrix.Grid[C]
}

// Value returns M[t] (0 if unreachable).
func (m *MovementField[C]) Value(p grid.Point[C]) C {
	return m.values.At(p)
}

// Reachable reports whether t was reached within the flood's budget.
func (m *MovementField[C]) Reachable(p grid.Point[C]) bool {
	return m.values.At(p) != 0
}

// Positions returns every reachable tile, regardless of Mode - combat
// and pathing consume this rather than branching on Matrix vs List.
func (m *MovementField[C]) Positions() []grid.Point[C] {
	if m.Mode == grid.ModeList {
		return m.List
	}
	var out []grid.Point[C]
	for y := 0; y < m.Bounds.Rows; y++ {
		for x := 0; x < m.Bounds.Cols; x++ {
			p := grid.Point[C]{X: C(x), Y: C(y)}
			if m.values.At(p) != 0 {
				out = append(out, p)
			}
		}
	}
	return out
}

// MovementFieldHex is MovementField's hex-grid counterpart.
type MovementFieldHex[C grid.Coord] struct {
	Bounds grid.Bounds
	Mode   grid.OutputMode
	Matrix *matrix.Grid[C]
	List   []grid.HexPoint[C]

	values *matrix.Grid[C]
}

// Value returns M[t] (0 if unreachable).
func (m *MovementFieldHex[C]) Value(p grid.HexPoint[C]) C {
	return m.values.AtHex(p)
}

// Reachable reports whether t was reached within the flood's budget.
func (m *MovementFieldHex[C]) Reachable(p grid.HexPoint[C]) bool {
	return m.values.AtHex(p) != 0
}

// Positions returns every reachable tile, regardless of Mode.
func (m *MovementFieldHex[C]) Positions() []grid.HexPoint[C] {
	if m.Mode == grid.ModeList {
		return m.List
	}
	var out []grid.HexPoint[C]
	for z := 0; z < m.Bounds.Rows; z++ {
		for x := 0; x < m.Bounds.Cols; x++ {
			p := grid.HexPoint[C]{X: C(x), Z: C(z), Y: -C(x) - C(z)}
			if m.values.AtHex(p) != 0 {
				out = append(out, p)
			}
		}
	}
	return out
}

// Options configures a Flood/FloodHex call.
type Options[C grid.Coord] struct {
	// Mode selects the returned representation (default ModeMatrix).
	Mode grid.OutputMode
	// OnVisit, if set, is called each time a node is popped from open
	// and closed - useful for instrumentation or tests.
	OnVisit func(pos any, dist C)
}

// Option configures Options.
type Option[C grid.Coord] func(*Options[C])

// WithMode selects the output representation.
func WithMode[C grid.Coord](mode grid.OutputMode) Option[C] {
	return func(o *Options[C]) { o.Mode = mode }
}

// WithOnVisit registers a visitation callback.
func WithOnVisit[C grid.Coord](fn func(pos any, dist C)) Option[C] {
	return func(o *Options[C]) { o.OnVisit = fn }
}

func defaultOptions[C grid.Coord]() Options[C] {
	return Options[C]{Mode: grid.ModeMatrix}
}
