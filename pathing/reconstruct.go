package pathing

import (
	"github.com/kkovrov/tacflood/grid"
	"github.com/kkovrov/tacflood/reachability"
)

// Reconstruct walks gradient-descent from end to start over field,
// then emits the path per mode. PathAbsolute emits positions in the
// raw end-to-start order the walk produces; PathSteps emits
// start-to-end deltas.
func Reconstruct[C grid.Coord](field *reachability.MovementField[C], start, end grid.Point[C], mode grid.PathMode) ([]grid.Point[C], error) {
	if !field.Reachable(start) || !field.Reachable(end) {
		return nil, ErrUnreachable
	}

	raw := []grid.Point[C]{end}
	c := end
	for c != start {
		cur := field.Value(c)
		best, bestVal := c, cur
		for i := 0; i < 4; i++ {
			raw2 := grid.CardinalNeighbor(c, i)
			n := grid.ClampPoint(raw2, field.Bounds)
			if !field.Reachable(n) {
				continue
			}
			if v := field.Value(n); v < bestVal {
				bestVal, best = v, n
			}
		}
		if best == c {
			return nil, ErrStalled
		}
		c = best
		raw = append(raw, c)
	}

	if mode == grid.PathAbsolute {
		return raw, nil
	}

	steps := make([]grid.Point[C], 0, len(raw)-1)
	for i := len(raw) - 1; i >= 1; i-- {
		steps = append(steps, grid.Point[C]{X: raw[i-1].X - raw[i].X, Y: raw[i-1].Y - raw[i].Y})
	}
	return steps, nil
}
