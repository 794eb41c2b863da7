package combat

import (
	"github.com/kkovrov/tacflood/grid"
	"github.com/kkovrov/tacflood/matrix"
)

// Field is the binary in-scope/out-of-scope output of AttackFromMove
// and AssailFromTarget: 0 = out of scope, 1 = in scope.
type Field[C grid.Coord] struct {
	Bounds grid.Bounds
	Mode   grid.OutputMode
	Matrix *matrix.Grid[C]
	List   []grid.Point[C]

	values *matrix.Grid[C]
}

// InScope reports whether p is in the field.
func (f *Field[C]) InScope(p grid.Point[C]) bool {
	return f.values.At(p) != 0
}

func newField[C grid.Coord](b grid.Bounds, mode grid.OutputMode) *Field[C] {
	return &Field[C]{Bounds: b, Mode: mode, values: matrix.New[C](b)}
}

func (f *Field[C]) mark(p grid.Point[C], list *[]grid.Point[C]) {
	if f.values.At(p) != 0 {
		return
	}
	f.values.Set(p, 1)
	if f.Mode == grid.ModeList {
		*list = append(*list, p)
	}
}

func (f *Field[C]) finish(list []grid.Point[C]) {
	if f.Mode == grid.ModeMatrix {
		f.Matrix = f.values
	} else {
		f.List = list
	}
}

// Range is an inclusive [Lo, Hi] Manhattan-distance interval.
type Range[C grid.Coord] struct {
	Lo, Hi C
}

// Options configures AttackFromMove and AssailFromTarget.
type Options struct {
	Mode     grid.OutputMode
	MoveTile grid.MoveTileMode
}

// Option configures Options.
type Option func(*Options)

// WithMode selects the output representation.
func WithMode(mode grid.OutputMode) Option {
	return func(o *Options) { o.Mode = mode }
}

// WithMoveTile selects whether tiles already reachable by movement
// stay in scope (AttackFromMove only).
func WithMoveTile(mode grid.MoveTileMode) Option {
	return func(o *Options) { o.MoveTile = mode }
}

func defaultOptions() Options {
	return Options{Mode: grid.ModeMatrix, MoveTile: grid.IncludeMoveTiles}
}
