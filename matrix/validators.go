package matrix

import "github.com/kkovrov/tacflood/grid"

// ValidateNotNil returns ErrNilGrid if g is nil.
func ValidateNotNil[C grid.Coord](g *Grid[C]) error {
	if g == nil {
		return ErrNilGrid
	}
	return nil
}

// ValidateSameShape returns ErrDimensionMismatch if a and b differ in
// rows or columns.
func ValidateSameShape[C grid.Coord](a, b *Grid[C]) error {
	if a.Bounds != b.Bounds {
		return ErrDimensionMismatch
	}
	return nil
}
