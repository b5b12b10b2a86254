// Package gridpath finds least-cost paths across terrain grids: flat maps and
// stacked multi-floor maps joined by stairs.
//
// What is in the box?
//
//	grid/       immutable flat cost grid, index ⇄ (x, y, floor) conversion
//	neighbors/  move enumeration (8-way with corner cutting, or 4-way),
//	            vertical links, a parallel-built neighbor cache and
//	            connected-region labelling
//	astar/      the A* engine: deterministic tie-breaking, explicit
//	            no-path failure, batch queries, slog logging hooks
//	metrics/    Prometheus observer for search statistics
//
// Terrain model:
//
//	Each cell holds a uint32 toll: 0 is a wall, anything else is the price of
//	stepping onto it. A move from c to n costs toll(n) + Manhattan(c, n), so a
//	diagonal costs one more than an orthogonal step and stairs charge for the
//	floor change.
//
// Quick start:
//
//	g, _ := grid.New(cells, width)
//	p, _ := neighbors.NewPolicy(g, neighbors.Omnidirectional)
//	c, _ := neighbors.BuildCache(p) // optional, for repeated queries
//	f, _ := astar.New(g, c)
//	path, err := f.Find(start, goal) // excludes start, includes goal
//
// Multi-floor maps:
//
//	g, _ := grid.NewLayered(cells, width, height)
//	links := neighbors.NewLinks(upStairs, downStairs)
//	p, _ := neighbors.NewPolicy(g, neighbors.Omnidirectional, neighbors.WithLinks(links))
//
// Every type is immutable once built; a single cache and Finder can serve
// any number of goroutines.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
