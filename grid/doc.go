// Package grid provides the index math, bounds clamping, and
// neighbour-offset tables shared by every flood, sweep, and
// reconstruction in tacflood.
//
// What:
//
//   - Point and HexPoint: integer coordinates for square and hex grids,
//     stored row-major per Index/HexIndex.
//   - Bounds: the rows×cols extent every operation is clamped against.
//   - CardinalOffsets/CornerOffsets/HexOffsets: fixed-rotation neighbour
//     cycles that every perimeter traversal in reachability, visibility,
//     combat, and pushpull loops over.
//   - CardinalFlags/CardinalDist: the four-slot {right, top, left, bottom}
//     record used both as a boolean direction set and as a per-direction
//     distance.
//
// Why:
//
//   - Every other package in this module composes these primitives rather
//     than re-deriving index math or neighbour order, so two calls on
//     identical inputs always visit tiles in the same sequence.
//
// Complexity:
//
//   - Index, Clamp, Bounds.Contains: O(1).
//   - Neighbour cycle lookups: O(1) (fixed-size tables).
package grid
