package matrix

import "github.com/kkovrov/tacflood/grid"

// Element-wise kernels over Grid and Bits. Loop orders are fixed
// (row-major) so two calls on equal inputs are byte-identical.

// Equal returns a Bits grid where out.Data[i] reports whether
// a.Data[i] == b.Data[i].
func Equal[C grid.Coord](a, b *Grid[C]) (*Bits, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, err
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, err
	}
	if a.Bounds != b.Bounds {
		return nil, ErrDimensionMismatch
	}
	out := NewBits(a.Bounds)
	for i := range a.Data {
		out.Data[i] = a.Data[i] == b.Data[i]
	}
	return out, nil
}

// And returns the element-wise logical AND of two Bits grids.
func And(a, b *Bits) (*Bits, error) {
	if a == nil || b == nil {
		return nil, ErrNilGrid
	}
	if a.Bounds != b.Bounds {
		return nil, ErrDimensionMismatch
	}
	out := NewBits(a.Bounds)
	for i := range a.Data {
		out.Data[i] = a.Data[i] && b.Data[i]
	}
	return out, nil
}

// Or returns the element-wise logical OR of two Bits grids.
func Or(a, b *Bits) (*Bits, error) {
	if a == nil || b == nil {
		return nil, ErrNilGrid
	}
	if a.Bounds != b.Bounds {
		return nil, ErrDimensionMismatch
	}
	out := NewBits(a.Bounds)
	for i := range a.Data {
		out.Data[i] = a.Data[i] || b.Data[i]
	}
	return out, nil
}

// Plus returns the element-wise sum of two grids.
func Plus[C grid.Coord](a, b *Grid[C]) (*Grid[C], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, err
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, err
	}
	if a.Bounds != b.Bounds {
		return nil, ErrDimensionMismatch
	}
	out := New[C](a.Bounds)
	for i := range a.Data {
		out.Data[i] = a.Data[i] + b.Data[i]
	}
	return out, nil
}

// Minus returns the element-wise difference a-b.
func Minus[C grid.Coord](a, b *Grid[C]) (*Grid[C], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, err
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, err
	}
	if a.Bounds != b.Bounds {
		return nil, ErrDimensionMismatch
	}
	out := New[C](a.Bounds)
	for i := range a.Data {
		out.Data[i] = a.Data[i] - b.Data[i]
	}
	return out, nil
}

// Mask zeroes every cell of a where mask is false, leaving the rest
// untouched.
func Mask[C grid.Coord](a *Grid[C], mask *Bits) (*Grid[C], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, err
	}
	if mask == nil {
		return nil, ErrNilGrid
	}
	if a.Bounds != mask.Bounds {
		return nil, ErrDimensionMismatch
	}
	out := New[C](a.Bounds)
	for i := range a.Data {
		if mask.Data[i] {
			out.Data[i] = a.Data[i]
		}
	}
	return out, nil
}

// Any reports whether at least one cell of a Bits grid is true.
func Any(a *Bits) bool {
	for _, v := range a.Data {
		if v {
			return true
		}
	}
	return false
}

// All reports whether every cell of a Bits grid is true.
func All(a *Bits) bool {
	for _, v := range a.Data {
		if !v {
			return false
		}
	}
	return true
}

// Trace returns the sum of a square grid's diagonal elements.
func Trace[C grid.Coord](a *Grid[C]) (C, error) {
	var zero C
	if err := ValidateNotNil(a); err != nil {
		return zero, err
	}
	if a.Bounds.Rows != a.Bounds.Cols {
		return zero, ErrNotSquare
	}
	var sum C
	for i := 0; i < a.Bounds.Rows; i++ {
		sum += a.At(grid.Point[C]{X: C(i), Y: C(i)})
	}
	return sum, nil
}

// Dot returns the dot product of two equal-length integer vectors.
func Dot[C grid.Coord](a, b []C) (C, error) {
	var zero C
	if len(a) != len(b) {
		return zero, ErrDimensionMismatch
	}
	var sum C
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum, nil
}

// Cross returns the scalar 2D cross product ax*by - ay*bx, which
// tells which side of the vector (ax, ay) the vector (bx, by) falls
// on.
func Cross[C grid.Coord](ax, ay, bx, by C) C {
	return ax*by - ay*bx
}
