// Package visibility implements the line-of-sight sweep: given a
// block grid, an origin, and a sight radius, it produces the sight
// field marking which tiles the origin can see.
//
// What:
//
//   - Sweep / SweepHex mark the observer's own tile, then walk each
//     shell d in [1, r] using grid.SquareShellPerimeter /
//     grid.HexShellPerimeter (the same shells combat.AssailFromTarget
//     walks), interpolating the line from origin to each perimeter
//     tile to test for occlusion.
//
// Why:
//
//   - Shell-by-shell raycasting with symmetric interpolation guarantees
//     every in-range tile is visited exactly once and that occlusion
//     reads the same from either endpoint when the block grid is
//     symmetric and no tile lies strictly between the pair.
//
// Complexity:
//
//   - Time: O(r^3) - each of the O(r) shells has O(r) perimeter tiles,
//     and each tile interpolates O(r) intermediate cells.
//   - Space: O(rows*cols) for the returned sight field.
package visibility
