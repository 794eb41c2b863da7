package render

import "github.com/kkovrov/tacflood/grid"

// RGB is a 0..1 floating-point color triple, gg's native color input
// (gg.Context.SetRGB).
type RGB struct {
	R, G, B float64
}

// ColorFunc maps a cell value to the color its tile is filled with.
type ColorFunc[C grid.Coord] func(v C) RGB

// Marker draws a filled disc over a tile, on top of the cell fill -
// used for an origin, a target, or a gradient seed.
type Marker[C grid.Coord] struct {
	Pos    grid.Point[C]
	Color  RGB
	Radius float64 // fraction of CellSize, e.g. 0.35
}

// Options configures the pixel geometry Grid and SavePNG render with.
type Options struct {
	// CellSize is the pixel width/height of one rendered tile.
	CellSize int
	// Background is painted under the grid before any tile is drawn.
	Background RGB
	// GridLines, if true, strokes a one-pixel border around every
	// tile after it is filled.
	GridLines bool
	GridColor RGB
}

// Option configures Options.
type Option func(*Options)

// WithCellSize overrides the default 16px tile size.
func WithCellSize(px int) Option {
	return func(o *Options) { o.CellSize = px }
}

// WithBackground overrides the default white background.
func WithBackground(c RGB) Option {
	return func(o *Options) { o.Background = c }
}

// WithGridLines enables a thin border around every tile, in c.
func WithGridLines(c RGB) Option {
	return func(o *Options) { o.GridLines, o.GridColor = true, c }
}

func defaultOptions() Options {
	return Options{
		CellSize:   16,
		Background: RGB{1, 1, 1},
	}
}
