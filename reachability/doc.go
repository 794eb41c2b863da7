// Package reachability implements the uniform-cost movement flood:
// given a cost grid, an origin, and a movement budget, it produces
// the movement field every downstream consumer in this module
// (combat, pathing) operates over.
//
// What:
//
//   - Flood / FloodHex build a MovementField / MovementFieldHex from a
//     CostGrid / CostGridHex using a LIFO open/closed frontier
//     (frontier.Frontier), relaxing against the closed set so a node
//     can be reopened when a cheaper path is later discovered.
//
// Why:
//
//   - LIFO open with explicit relaxation against the closed set is
//     equivalent to Dijkstra for uniform non-negative costs and a
//     bounded budget: every reopening strictly decreases a node's
//     recorded distance, which is bounded below by zero, so the flood
//     terminates.
//
// Complexity:
//
//   - Time: O(rows*cols) amortized for tactical-map-sized budgets;
//     worst case each cell is opened and reopened a bounded number of
//     times proportional to its in-degree.
//   - Space: O(rows*cols) for the movement field plus O(rows*cols*2)
//     for the frontier.
package reachability
