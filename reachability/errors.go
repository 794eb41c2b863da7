package reachability

import "errors"

// ErrNegativeBudget is returned when the movement budget is negative.
// A zero budget is a well-formed origin-only result; a negative one is
// a caller error.
var ErrNegativeBudget = errors.New("reachability: movement budget must be non-negative")
