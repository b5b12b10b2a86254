// Package grid models a flat terrain-cost grid, single floor or a stack of
// equally sized floors, as the implicit graph searched by package astar.
//
// What:
//
//   - Grid wraps a row-major (and floor-major) []uint32 of terrain costs.
//   - A cost of 0 marks an impassable cell; any cost ≥ 1 is the toll paid for
//     entering that cell.
//   - Index and Coordinate convert between flattened indices and (X, Y, Floor).
//   - Distance and Manhattan give the L1 distance used both as step cost term
//     and as the search heuristic.
//
// Layout:
//
//	2D:      index = y*width + x
//	layered: index = floor*(width*height) + y*width + x
//
// Complexity:
//
//   - New, NewLayered: O(N) time and memory (input is deep-copied).
//   - All accessors:   O(1).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height is zero, the grid is empty, or the
//     cell count is not a multiple of the row / floor size.
//   - ErrInvalidIndex: an index lies outside the grid.
//
// A Grid is immutable once built and may be read from any number of
// goroutines without synchronization.
package grid
