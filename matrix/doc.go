// Package matrix provides the dense rows×cols storage every field in
// this module is built from, plus element-wise kernels and matrix/list
// conversions.
//
// What:
//
//   - Grid[C]: a flat row-major rows×cols buffer, the single storage
//     type every field (cost, movement, block, sight, gradient,
//     pushpull) in this module is built from.
//   - Bits: the boolean counterpart, produced by the comparison
//     kernels and consumed by Mask.
//   - Element-wise kernels: Equal, And, Or, Plus, Minus, Mask, Any, All,
//     Trace, Dot, Cross.
//   - ToList/FromList (and their hex counterparts): conversion between
//     the two grid.OutputMode representations. The floods, sweeps, and
//     projectors build their lists directly and do not call these.
//
// Complexity:
//
//   - Grid construction: O(rows*cols).
//   - Element-wise kernels: O(rows*cols).
//   - ToList: O(rows*cols). FromList: O(len(list)).
package matrix
