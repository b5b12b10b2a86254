// Package neighbors enumerates the traversable cells adjacent to a grid cell.
//
// What:
//
//   - Mode selects the planar enumeration: Omnidirectional (up to 8 cells,
//     diagonals allowed to cut wall corners) or CardinalOnly (up to 4 cells).
//   - Links holds per-cell vertical connections for layered grids. A planar
//     neighbor found in the up set also yields the cell one floor above it; one
//     found in the down set yields the cell one floor below.
//   - Policy computes neighbor sets on demand.
//   - Cache precomputes the Policy result for every cell once, so repeated
//     searches over a static grid skip the enumeration entirely.
//   - Regions labels connected areas (moves taken in either direction) so
//     callers can reject queries between disconnected cells up front.
//
// Policy and Cache both satisfy Source, the interface consumed by package astar.
//
// Enumeration order (stable, shared by Policy and Cache):
//
//	top, top-left, top-right, left, right, bottom, bottom-left, bottom-right,
//	then vertical targets in the order of the planar neighbors that produced them.
//
// Corner cutting:
//
//	A diagonal cell is included iff it is passable itself. The two orthogonal
//	cells flanking the corner are not consulted:
//
//	  S █        S may step straight to D even though
//	  █ D        both flanking cells are walls.
//
// Complexity:
//
//   - Policy.Neighbors: O(1) per call, no allocation when the caller passes a
//     buffer with enough capacity.
//   - BuildCache:       O(N) time and memory, parallelized over chunks of cells.
//   - Cache.Neighbors:  O(1), returns a view into shared read-only storage.
//   - BuildRegions:     O(N·α(N)) union-find over every move.
//
// Errors:
//
//   - ErrNilGrid:         NewPolicy received a nil grid.
//   - ErrNilPolicy:       BuildCache received a nil policy.
//   - ErrNilSource:       BuildRegions received a nil source.
//   - ErrGridMismatch:    BuildRegions got a source built for another grid.
//   - ErrUnknownMode:     the Mode value is not one of the defined constants.
//   - ErrInvalidLink:     a link index is out of bounds or points to a missing floor.
//   - ErrOptionViolation: an Option received an invalid value, or was passed
//     to the constructor that does not read it.
package neighbors
