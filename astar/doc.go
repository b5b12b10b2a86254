// Package astar finds least-cost paths on terrain grids with the A* algorithm.
//
// Overview:
//
//   - The graph is implicit: cells of a grid.Grid are vertices, and the edges
//     out of a cell are whatever a neighbors.Source reports for it (an
//     on-demand neighbors.Policy or a precomputed neighbors.Cache).
//   - Entering cell n from cell c costs Cost(n) + Manhattan(c, n). A diagonal
//     step therefore pays 2 distance units, an orthogonal one 1, and a vertical
//     step pays its floor difference plus the planar offset to the linked cell.
//   - The heuristic is the Manhattan distance to the goal over the same axes
//     (X, Y and Floor). Every real step costs at least one more than the
//     heuristic can drop, so the heuristic is admissible and consistent and the
//     returned path is a least-cost path.
//
// Determinism:
//
//	The frontier pops the lowest priority first and, among equal priorities,
//	the HIGHER cell index first. This rule decides which of several equal-cost
//	paths is returned and is part of the contract: identical inputs always
//	yield the identical path.
//
// Result contract:
//
//   - The path excludes the start cell and includes the goal cell.
//   - start == goal yields an empty path and no error.
//   - If the goal is unreachable the search fails with ErrNoPath. A partial
//     or guessed path is never returned.
//
// Algorithm outline (per query):
//
//  1. costSoFar[*] = 0 (unvisited), costSoFar[start] = 1 (sentinel),
//     cameFrom[*] = start, push (0, start).
//  2. Pop; skip stale entries; stop when the goal is popped.
//  3. For each neighbor: candidate = costSoFar[cur] + step cost; relax iff the
//     neighbor is unvisited or candidate is strictly lower; push
//     (candidate + h(neighbor), neighbor). No decrease-key, duplicates are lazy.
//  4. Follow cameFrom from the goal back to the start and reverse.
//
// Complexity:
//
//   - Time:  O(N log N) worst case for N cells (each cell relaxed a bounded
//     number of times, each push/pop O(log N)).
//   - Space: O(N) per query for costSoFar, cameFrom and the frontier.
//
// Concurrency:
//
//	A Finder is immutable. Every Find/Search call allocates its own search
//	state, so any number of goroutines may query the same Finder, grid and
//	cache at once without locking. FindAll runs a batch of independent
//	queries on a bounded worker pool. A single search is never interrupted;
//	WithMaxExpansions and WithOnExpand are the caller's bounds, and hitting
//	either is reported as a failure.
//
// Errors (sentinel):
//
//   - ErrNilGrid, ErrNilSource:   New received a nil dependency.
//   - ErrSourceMismatch:          the source enumerates a different grid.
//   - ErrInvalidIndex:            start or goal outside the grid (alias of grid.ErrInvalidIndex).
//   - ErrImpassableEndpoint:      start or goal has terrain cost 0.
//   - ErrNoPath:                  the frontier ran dry before reaching the goal.
//   - ErrExpansionLimit:          WithMaxExpansions cap reached.
//   - ErrOptionViolation:         an Option received an invalid value.
//
// Example:
//
//	g, _ := grid.New(cells, width)
//	p, _ := neighbors.NewPolicy(g, neighbors.CardinalOnly)
//	c, _ := neighbors.BuildCache(p)
//	f, _ := astar.New(g, c)
//	path, err := f.Find(start, goal)
//	if errors.Is(err, astar.ErrNoPath) {
//	    // unreachable
//	}
package astar
