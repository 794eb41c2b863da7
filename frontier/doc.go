// Package frontier implements the open/closed node collections shared
// by every uniform-cost flood in this module (reachability and
// gradient): LIFO open-set discipline with search-and-reopen against
// a closed set.
//
// What:
//
//   - Entry: a (position, distance) flood node, generic over the
//     position type (grid.Point or grid.HexPoint) and coordinate type.
//   - Frontier: an open stack (push/pop-last) and a closed list
//     (append/find-by-position/remove-at-index).
//
// Why:
//
//   - The flood reopens a closed node when a cheaper path is later
//     discovered; Frontier.Reopen implements exactly that move without
//     the caller re-deriving index math.
//
// Complexity:
//
//   - PushOpen, PopOpen: amortized O(1).
//   - FindClosed: O(|closed|) linear scan. There is no index structure
//     backing the closed list; at tactical-map sizes the scan is cheap
//     and keeps visitation order fully deterministic.
package frontier
