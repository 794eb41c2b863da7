// Package render rasterizes the dense grids produced by reachability,
// visibility, gradient, and pushpull to PNG using fogleman/gg: one
// filled DrawRectangle per tile, plus a filled DrawCircle for point
// markers such as an origin or a gradient seed.
//
// render depends on grid and matrix, and on visibility for the sight
// State constants SightPalette switches on; nothing else in this
// module depends on render, so the flood/sweep core stays free of any
// rendering concern.
//
// Render is meant for debugging and for this module's example tests,
// not for production game rendering. It has no double buffering, no
// font cache, no streaming pipeline; those concerns belong to a
// caller, not to a pathfinding library.
package render
