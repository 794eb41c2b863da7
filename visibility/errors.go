package visibility

import "errors"

// ErrNegativeRadius is returned when the sight radius is negative.
var ErrNegativeRadius = errors.New("visibility: sight radius must be non-negative")
