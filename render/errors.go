package render

import "errors"

// ErrNilGrid indicates a nil *matrix.Grid argument.
var ErrNilGrid = errors.New("render: grid is nil")

// ErrInvalidCellSize indicates a non-positive Options.CellSize.
var ErrInvalidCellSize = errors.New("render: cell size must be positive")
