package pathing

import "errors"

// ErrUnreachable is returned when start or end is unreachable in the
// movement field.
var ErrUnreachable = errors.New("pathing: start or end is unreachable")

// ErrStalled is returned when no cardinal neighbour improves on the
// current tile's movement value, meaning the walk cannot progress.
var ErrStalled = errors.New("pathing: path reconstruction stalled")
