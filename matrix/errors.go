package matrix

import "errors"

// Sentinel errors for matrix operations.
var (
	// ErrNilGrid indicates a nil *Grid argument.
	ErrNilGrid = errors.New("matrix: grid is nil")

	// ErrDimensionMismatch indicates two grids have different bounds,
	// or two vectors passed to Dot have different lengths.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotSquare indicates an operation requiring equal rows and
	// columns (Trace) was given a non-square grid.
	ErrNotSquare = errors.New("matrix: grid is not square")
)
