// Package pushpull implements the three-stage push/pull subsystem:
// classifying which cardinal directions a target may be pushed or
// pulled in, probing how far a slide can travel before hitting a
// blocker or the grid edge, and projecting the resulting slide
// destinations onto a map.
//
// What:
//
//   - Direction classifies an assailable field around a target into
//     pushable and pullable CardinalFlags.
//   - BlockDistance walks outward from an origin in each cardinal
//     direction over a sliding-cost grid.
//   - Project combines a CardinalDist and CardinalFlags pair into a
//     Field of intermediate slide-stop tiles.
//
// Why:
//
//   - These stay three separate functions (assailable field ->
//     direction -> block distance -> projected map) so a caller can
//     recompute any stage without redoing the others, e.g. re-probing
//     block distances after terrain changes while the classifier's
//     flags still hold.
package pushpull
