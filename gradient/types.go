package gradient

import (
	"github.com/kkovrov/tacflood/grid"
	"github.com/kkovrov/tacflood/matrix"
)

// Blocked is the negative sentinel a Field carries at unwalkable
// tiles.
const Blocked = -1

// Field is Gradient's output: Blocked at unwalkable tiles, 0 at a
// seed, the minimum distance to the nearest seed at every walkable
// tile a seed reaches, and Rows+Cols at a walkable tile no seed
// reaches.
type Field[C grid.Coord] struct {
	Bounds grid.Bounds
	Mode   grid.OutputMode
	Matrix *matrix.Grid[C]
	List   []grid.Point[C]

	values *matrix.Grid[C]
}

// At returns the gradient value recorded at p.
func (f *Field[C]) At(p grid.Point[C]) C {
	return f.values.At(p)
}

// Options configures a Gradient call.
type Options struct {
	Mode grid.OutputMode
}

// Option configures Options.
type Option func(*Options)

// WithMode selects the output representation.
func WithMode(mode grid.OutputMode) Option {
	return func(o *Options) { o.Mode = mode }
}

func defaultOptions() Options {
	return Options{Mode: grid.ModeMatrix}
}
