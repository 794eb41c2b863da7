package visibility

import (
	"github.com/kkovrov/tacflood/grid"
	"github.com/kkovrov/tacflood/matrix"
)

// BlockGrid is a square-grid per-tile opacity: 0 transparent, >=1 opaque.
type BlockGrid[C grid.Coord] struct {
	*matrix.Grid[C]
}

// NewBlockGrid allocates a zero-valued (all-transparent) BlockGrid.
func NewBlockGrid[C grid.Coord](b grid.Bounds) *BlockGrid[C] {
	return &BlockGrid[C]{matrix.New[C](b)}
}

// Opaque reports whether p blocks line of sight.
func (g *BlockGrid[C]) Opaque(p grid.Point[C]) bool {
	return g.At(p) > 0
}

// BlockGridHex is BlockGrid's hex-grid counterpart.
type BlockGridHex[C grid.Coord] struct {
	*matrix.Grid[C]
}

// NewBlockGridHex allocates a zero-valued BlockGridHex.
func NewBlockGridHex[C grid.Coord](b grid.Bounds) *BlockGridHex[C] {
	return &BlockGridHex[C]{matrix.New[C](b)}
}

// Opaque reports whether p blocks line of sight.
func (g *BlockGridHex[C]) Opaque(p grid.HexPoint[C]) bool {
	return g.AtHex(p) > 0
}

// State is a sight field cell's visibility classification. Cells are
// stored in the field's matrix as plain integer values, so the
// constants below are also the raw cell values a caller reading
// Matrix.Data sees.
type State int

const (
	// Blocked is the default: out of range, or occluded.
	Blocked State = 0
	// Visible is an in-range, unobstructed, transparent tile.
	Visible State = 1
	// Observer marks the origin tile itself.
	Observer State = 2
	// Wall marks an in-range tile that is itself opaque but whose
	// line of sight up to it is unobstructed.
	Wall State = 3
)

// SightField is the output of Sweep. Matrix cells carry State values
// widened to the coordinate type.
type SightField[C grid.Coord] struct {
	Bounds grid.Bounds
	Mode   grid.OutputMode
	Matrix *matrix.Grid[C]
	List   []grid.Point[C]

	values *matrix.Grid[C]
}

// At returns the sight state at p.
func (s *SightField[C]) At(p grid.Point[C]) State {
	return State(s.values.At(p))
}

// SightFieldHex is SightField's hex-grid counterpart.
type SightFieldHex[C grid.Coord] struct {
	Bounds grid.Bounds
	Mode   grid.OutputMode
	Matrix *matrix.Grid[C]
	List   []grid.HexPoint[C]

	values *matrix.Grid[C]
}

// At returns the sight state at p.
func (s *SightFieldHex[C]) At(p grid.HexPoint[C]) State {
	return State(s.values.AtHex(p))
}

// Options configures a Sweep/SweepHex call.
type Options struct {
	// Mode selects the returned representation (default ModeMatrix).
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
