package grid

// CardinalOffsets enumerates the four unit cardinal offsets in a fixed
// rotational order: right, up, left, down. Every square-grid neighbour
// loop (reachability, gradient, pathing, pushpull) walks this cycle.
var CardinalOffsets = [4][2]int{
	{1, 0},  // right
	{0, -1}, // up
	{-1, 0}, // left
	{0, 1},  // down
}

// CornerOffsets enumerates the four unit diagonal-corner offsets in a
// fixed rotational order, interleaved with CardinalOffsets so that
// iterating both in lock-step visits a square annulus's perimeter once
// per cell.
var CornerOffsets = [4][2]int{
	{1, -1},  // top-right
	{-1, -1}, // top-left
	{-1, 1},  // bottom-left
	{1, 1},   // bottom-right
}

// HexOffsets enumerates the six unit cube-coordinate offsets (dx, dy, dz)
// in a fixed rotational order; each has exactly two non-zero components
// summing to zero, preserving the cube invariant.
var HexOffsets = [6][3]int{
	{1, -1, 0},
	{1, 0, -1},
	{0, 1, -1},
	{-1, 1, 0},
	{-1, 0, 1},
	{0, -1, 1},
}

// CardinalNeighbor returns the i'th cardinal neighbour of p (i is taken
// mod 4), unclamped.
func CardinalNeighbor[C Coord](p Point[C], i int) Point[C] {
	d := CardinalOffsets[((i%4)+4)%4]
	return Point[C]{X: p.X + C(d[0]), Y: p.Y + C(d[1])}
}

// CornerNeighbor returns the i'th diagonal-corner neighbour of p (i is
// taken mod 4), unclamped.
func CornerNeighbor[C Coord](p Point[C], i int) Point[C] {
	d := CornerOffsets[((i%4)+4)%4]
	return Point[C]{X: p.X + C(d[0]), Y: p.Y + C(d[1])}
}

// HexNeighbor returns the i'th hex neighbour of p (i is taken mod 6),
// unclamped. The result's invariant x+y+z=0 holds whenever p's does.
func HexNeighbor[C Coord](p HexPoint[C], i int) HexPoint[C] {
	d := HexOffsets[((i%6)+6)%6]
	return HexPoint[C]{X: p.X + C(d[0]), Y: p.Y + C(d[1]), Z: p.Z + C(d[2])}
}

// squareShellEdgeDirs walks the four edges of a Manhattan-distance
// diamond shell, each edge composed from one CornerOffsets direction:
// starting at the "right" cardinal vertex (d, 0), edge 0 walks to the
// "up" vertex (0, -d), edge 1 to "left", edge 2 to "down", edge 3 back
// to "right": the cardinal cycle supplies the four shell vertices, the
// corner cycle the direction of travel between them.
var squareShellEdgeDirs = [4][2]int{
	CornerOffsets[1], // top-left: (d,0) -> (0,-d)
	CornerOffsets[2], // bottom-left: (0,-d) -> (-d,0)
	CornerOffsets[3], // bottom-right: (-d,0) -> (0,d)
	CornerOffsets[0], // top-right: (0,d) -> (d,0)
}

// SquareShellPerimeter appends to dst every tile on the Manhattan-
// distance shell (diamond ring) |dx|+|dy|=d around centre, composing
// the cardinal and corner cycles so each of the 4*d perimeter tiles is
// produced exactly once, in a fixed traversal order. d must be >= 1.
func SquareShellPerimeter[C Coord](centre Point[C], d int, dst []Point[C]) []Point[C] {
	if d < 1 {
		return dst
	}
	cur := Point[C]{X: centre.X + C(d), Y: centre.Y}
	for edge := 0; edge < 4; edge++ {
		dir := squareShellEdgeDirs[edge]
		for step := 0; step < d; step++ {
			dst = append(dst, cur)
			cur = Point[C]{X: cur.X + C(dir[0]), Y: cur.Y + C(dir[1])}
		}
	}
	return dst
}

// HexShellPerimeter appends to dst every tile on the hex shell of
// radius d around centre: 6*d tiles for d >= 1.
func HexShellPerimeter[C Coord](centre HexPoint[C], d int, dst []HexPoint[C]) []HexPoint[C] {
	if d < 1 {
		return dst
	}
	// Start d steps along offset index 4 (one of the six directions),
	// then walk the ring using each of the six directions for d steps.
	cur := HexPoint[C]{
		X: centre.X + C(HexOffsets[4][0]*d),
		Y: centre.Y + C(HexOffsets[4][1]*d),
		Z: centre.Z + C(HexOffsets[4][2]*d),
	}
	for side := 0; side < 6; side++ {
		for step := 0; step < d; step++ {
			cur = HexNeighbor(cur, side)
			dst = append(dst, cur)
		}
	}
	return dst
}
