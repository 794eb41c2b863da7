package gradient

import "errors"

// ErrNoSeeds is returned when Gradient is called with an empty seed
// set.
var ErrNoSeeds = errors.New("gradient: at least one seed position is required")
