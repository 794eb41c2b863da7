package combat

import "errors"

// ErrInvalidRange is returned when a range interval's low end exceeds
// its high end.
var ErrInvalidRange = errors.New("combat: range interval low must not exceed high")
