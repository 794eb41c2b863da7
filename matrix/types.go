package matrix

import "github.com/kkovrov/tacflood/grid"

// Grid is a flat row-major rows×cols buffer of C:
// cell(row, col) = row*cols + col for square grids,
// cell(z, x) = z*cols + x for hex grids stored on the (z, x) plane.
// Every field type in this module (cost, movement, block, sight,
// gradient, pushpull) is backed by a *Grid[C].
type Grid[C grid.Coord] struct {
	Bounds grid.Bounds
	Data   []C
}

// New allocates a zero-valued Grid sized to b.
func New[C grid.Coord](b grid.Bounds) *Grid[C] {
	return &Grid[C]{Bounds: b, Data: make([]C, b.Cells())}
}

// At returns the value at a square-grid point.
func (g *Grid[C]) At(p grid.Point[C]) C {
	return g.Data[grid.Index(p, g.Bounds.Cols)]
}

// Set assigns the value at a square-grid point.
func (g *Grid[C]) Set(p grid.Point[C], v C) {
	g.Data[grid.Index(p, g.Bounds.Cols)] = v
}

// AtHex returns the value at a hex-grid point's storage-plane cell.
func (g *Grid[C]) AtHex(p grid.HexPoint[C]) C {
	return g.Data[grid.HexIndex(p, g.Bounds.Cols)]
}

// SetHex assigns the value at a hex-grid point's storage-plane cell.
func (g *Grid[C]) SetHex(p grid.HexPoint[C], v C) {
	g.Data[grid.HexIndex(p, g.Bounds.Cols)] = v
}

// Clone returns a deep, independent copy of g.
func (g *Grid[C]) Clone() *Grid[C] {
	out := &Grid[C]{Bounds: g.Bounds, Data: make([]C, len(g.Data))}
	copy(out.Data, g.Data)
	return out
}

// Fill sets every cell of g to v.
func (g *Grid[C]) Fill(v C) {
	for i := range g.Data {
		g.Data[i] = v
	}
}

// Bits is a flat row-major rows×cols boolean buffer, the result shape
// of the comparison kernels (Equal, And, Or) and the mask input of
// Mask. It mirrors Grid's layout with bool cells.
type Bits struct {
	Bounds grid.Bounds
	Data   []bool
}

// NewBits allocates an all-false Bits sized to b.
func NewBits(b grid.Bounds) *Bits {
	return &Bits{Bounds: b, Data: make([]bool, b.Cells())}
}

// At returns the bit at a square-grid point.
func (g *Bits) At(x, y int) bool {
	return g.Data[y*g.Bounds.Cols+x]
}

// Set assigns the bit at a square-grid point.
func (g *Bits) Set(x, y int, v bool) {
	g.Data[y*g.Bounds.Cols+x] = v
}
