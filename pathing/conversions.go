package pathing

import "github.com/kkovrov/tacflood/grid"

// StepsToPositions emits start, then for each step the cumulative
// position start + sum(steps[:i+1]).
func StepsToPositions[C grid.Coord](start grid.Point[C], steps []grid.Point[C]) []grid.Point[C] {
	out := make([]grid.Point[C], 0, len(steps)+1)
	out = append(out, start)
	cur := start
	for _, d := range steps {
		cur = grid.Point[C]{X: cur.X + d.X, Y: cur.Y + d.Y}
		out = append(out, cur)
	}
	return out
}

// PositionsToSteps is StepsToPositions's inverse: consecutive
// position differences.
func PositionsToSteps[C grid.Coord](positions []grid.Point[C]) []grid.Point[C] {
	if len(positions) == 0 {
		return nil
	}
	steps := make([]grid.Point[C], 0, len(positions)-1)
	for i := 1; i < len(positions); i++ {
		steps = append(steps, grid.Point[C]{
			X: positions[i].X - positions[i-1].X,
			Y: positions[i].Y - positions[i-1].Y,
		})
	}
	return steps
}
