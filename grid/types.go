package grid

// Coord is the signed integer coordinate/cost type every operation in
// this module is generic over. Callers pick a width wide enough for
// rows*cols and the largest cumulative path cost on their maps.
type Coord interface {
	~int | ~int32 | ~int64
}

// Point is an (x, y) integer coordinate on a square grid. x maps to
// column, y maps to row.
type Point[C Coord] struct {
	X, Y C
}

// HexPoint is a cube coordinate (x, y, z) on a hex grid with the
// invariant x + y + z == 0. The storage plane is (z, x).
type HexPoint[C Coord] struct {
	X, Y, Z C
}

// Valid reports whether the cube-coordinate invariant x+y+z=0 holds.
func (p HexPoint[C]) Valid() bool {
	return p.X+p.Y+p.Z == 0
}

// Bounds describes a rows×cols grid extent. Every operation in this
// module is defined over a Bounds and clamps coordinates into it.
type Bounds struct {
	Rows, Cols int
}

// Contains reports whether (x, y) lies within b.
func (b Bounds) Contains(x, y int) bool {
	return x >= 0 && x < b.Cols && y >= 0 && y < b.Rows
}

// ContainsHex reports whether the hex point's storage-plane projection
// (z, x) lies within b.
func (b Bounds) ContainsHex(z, x int) bool {
	return x >= 0 && x < b.Cols && z >= 0 && z < b.Rows
}

// Cells returns the total number of tiles in b.
func (b Bounds) Cells() int {
	return b.Rows * b.Cols
}

// Index maps a square-grid point to its row-major cell index:
// cell(row, col) = row*cols + col.
func Index[C Coord](p Point[C], cols int) int {
	return int(p.Y)*cols + int(p.X)
}

// HexIndex maps a hex-grid point to its row-major cell index over the
// (z, x) storage plane: cell(z, x) = z*cols + x.
func HexIndex[C Coord](p HexPoint[C], cols int) int {
	return int(p.Z)*cols + int(p.X)
}

// OutputMode selects whether a map-returning operation produces a
// dense matrix or a packed list of in-scope (x, y) pairs.
type OutputMode uint8

const (
	// ModeMatrix returns a dense rows×cols grid.
	ModeMatrix OutputMode = iota
	// ModeList returns only in-scope tiles, in discovery order.
	ModeList
)

// MoveTileMode selects whether attack-from-move includes tiles already
// reachable by movement.
type MoveTileMode uint8

const (
	// IncludeMoveTiles keeps tiles reachable by movement in scope.
	IncludeMoveTiles MoveTileMode = iota
	// ExcludeMoveTiles drops tiles reachable by movement from scope.
	ExcludeMoveTiles
)

// PathMode selects the emitted shape of a reconstructed path.
type PathMode uint8

const (
	// PathAbsolute emits a sequence of absolute positions.
	PathAbsolute PathMode = iota
	// PathSteps emits a sequence of step deltas.
	PathSteps
)

// CardinalFlags is the four-slot {right, top, left, bottom} boolean
// record the push/pull direction classifier reports.
type CardinalFlags struct {
	Right, Top, Left, Bottom bool
}

// Any reports whether at least one direction is set.
func (f CardinalFlags) Any() bool {
	return f.Right || f.Top || f.Left || f.Bottom
}

// CardinalDist is the four-slot {right, top, left, bottom} distance
// record the block-distance probe produces and the push/pull
// projector consumes. It shares CardinalFlags's shape; the two stay
// separate types so flags and distances cannot be mixed up.
type CardinalDist[C Coord] struct {
	Right, Top, Left, Bottom C
}
