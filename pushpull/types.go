package pushpull

import (
	"github.com/kkovrov/tacflood/grid"
	"github.com/kkovrov/tacflood/matrix"
)

// CostGrid is a square-grid per-tile sliding cost: 0 blocks a slide,
// a positive value lets one pass through. It is deliberately a
// distinct type from the movement reachability.CostGrid; sliding and
// walking read different terrain.
type CostGrid[C grid.Coord] struct {
	*matrix.Grid[C]
}

// NewCostGrid allocates a zero-valued (all-blocking) CostGrid sized b.
func NewCostGrid[C grid.Coord](b grid.Bounds) *CostGrid[C] {
	return &CostGrid[C]{matrix.New[C](b)}
}

// Slidable reports whether p lets a slide pass through.
func (g *CostGrid[C]) Slidable(p grid.Point[C]) bool {
	return g.At(p) > 0
}

// Blocked is the sentinel a Field's Matrix cell carries before Project
// marks it as a reachable slide-stop distance.
const Blocked = -1

// Field is Project's output: 0 = origin, Blocked = out of scope,
// positive = the sliding distance from origin to that stop tile.
type Field[C grid.Coord] struct {
	Bounds grid.Bounds
	Mode   grid.OutputMode
	Matrix *matrix.Grid[C]
	List   []grid.Point[C]

	values *matrix.Grid[C]
}

// At returns the sliding distance recorded at p (Blocked if out of
// scope).
func (f *Field[C]) At(p grid.Point[C]) C {
	return f.values.At(p)
}

// Options configures Project.
type Options struct {
	Mode grid.OutputMode
}

// Option configures Options.
type Option func(*Options)

// WithMode selects the output representation (Project only).
func WithMode(mode grid.OutputMode) Option {
	return func(o *Options) { o.Mode = mode }
}

func defaultOptions() Options {
	return Options{Mode: grid.ModeMatrix}
}
