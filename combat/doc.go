// Package combat implements the two range-interval sweeps built on top
// of a reachability field: attack-from-move, which projects every tile
// strikeable from any reachable position, and assail-from-target,
// which finds every reachable position that can strike a given target.
//
// What:
//
//   - AttackFromMove walks the movement field's occupied positions and,
//     for each, enumerates the Manhattan range-interval ring around it
//     by quadrant.
//   - AssailFromTarget walks grid.SquareShellPerimeter around a fixed
//     target for each distance in the range interval, keeping only
//     shell tiles the movement field can actually reach.
//
// Why:
//
//   - Both reuse the movement field produced by reachability.Flood
//     rather than re-deriving reachability; the movement field is the
//     single upstream input for attack projection and pathing alike.
package combat
