// Package pathing implements path reconstruction over a movement
// field and the two path representations it can be emitted in.
//
// What:
//
//   - Reconstruct walks gradient-descent from end to start over a
//     reachability.MovementField, selecting at each step the reachable
//     cardinal neighbour with the minimum field value, breaking ties
//     by cycle order, and detecting stalls rather than looping forever.
//   - StepsToPositions / PositionsToSteps convert between the
//     absolute-position and step-delta path representations.
package pathing
