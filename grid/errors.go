package grid

import "errors"

// Sentinel errors for grid-level input faults. No function in this
// module returns them; each other package defines the sentinels it
// returns.
var (
	// ErrOutOfBounds indicates an origin or target coordinate falls
	// outside the grid's Bounds.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrInvalidRange indicates a range interval with lo > hi.
	ErrInvalidRange = errors.New("grid: invalid range interval (lo > hi)")

	// ErrEmptyBounds indicates a grid with zero rows or zero columns.
	ErrEmptyBounds = errors.New("grid: bounds must have at least one row and one column")
)
