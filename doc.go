// Package tacflood is a library of grid-based pathfinding, visibility,
// and reachability algorithms for tile-based tactical games.
//
// Given a two-dimensional tile grid annotated with per-tile movement
// costs or obstacles, it computes - from any origin - the set of
// tiles reachable within a movement budget, the set of tiles visible
// under line of sight, the tiles attackable from a reachable
// position, the tiles from which a target can be struck, the
// directions a target can be pushed or pulled, a gradient field
// seeded by several unit positions at once, and a shortest path over
// a previously computed reachability field. Every operation has a
// four-neighbour square-grid form and (where the contract calls for
// it) a six-neighbour hex-grid form.
//
// Under the hood, everything is organized as one top-level package
// per concern:
//
//	grid/         - index math, clamping, neighbour cycles, shell
//	                traversal, shared field-mode constants
//	frontier/     - the LIFO open/closed flood containers
//	matrix/       - the dense row-major Grid buffer and its
//	                matrix<->list conversions and element-wise ops
//	reachability/ - the movement-field flood (square + hex)
//	visibility/   - the sight-field sweep (square + hex)
//	combat/       - attack-from-move and assail-from-target
//	pushpull/     - push/pull direction classifier, block-distance
//	                probe, and slide projector
//	gradient/     - the multi-source gradient flood
//	pathing/      - path reconstruction and representation conversion
//	render/       - optional PNG rasterization of any field, for
//	                debugging and examples
//
// The library is synchronous and allocation-only: every call is a
// pure function of its inputs, returns a freshly owned result, and
// mutates nothing it was handed.
package tacflood
