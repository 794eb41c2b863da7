// Package gradient implements the multi-source flood: given a cost
// grid and a set of seed positions, it builds a field holding, at
// every walkable tile a seed reaches, the minimum distance to the
// nearest seed.
//
// What:
//
//   - Gradient seeds the frontier's open set with every seed position
//     at distance zero and runs the same LIFO reopen-on-improvement
//     flood reachability.Flood uses, except every step costs exactly
//     one regardless of the cost grid's cell values; only walkability
//     is read from the cost grid.
//
// Why:
//
//   - Sharing the frontier package's open/closed discipline keeps the
//     gradient flood's termination and ordering guarantees identical
//     to the single-source flood's, rather than introducing a second
//     frontier implementation.
package gradient
