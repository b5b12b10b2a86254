package astar

import (
	"container/heap"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/neighbors"
)

// defaultBufCap sizes the neighbor buffer when the source does not report
// its own capacity.
const defaultBufCap = 24

// Finder answers path queries over one grid and one neighbor source.
// It holds no per-query state and is safe for concurrent use.
type Finder struct {
	grid   *grid.Grid
	src    neighbors.Source
	opts   Options
	bufCap int
}

// New builds a Finder for g using src to enumerate moves.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. src must be non-nil (ErrNilSource).
//  3. Options must be valid (ErrOptionViolation).
//  4. If src reports its grid (Policy and Cache do), it must be g (ErrSourceMismatch).
//  5. Regions given through WithRegions must belong to g (ErrSourceMismatch).
func New(g *grid.Grid, src neighbors.Source, opts ...Option) (*Finder, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if src == nil {
		return nil, ErrNilSource
	}

	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	if owned, ok := src.(interface{ Grid() *grid.Grid }); ok && owned.Grid() != g {
		return nil, ErrSourceMismatch
	}
	if cfg.Regions != nil && cfg.Regions.Grid() != g {
		return nil, fmt.Errorf("%w: regions", ErrSourceMismatch)
	}

	bufCap := defaultBufCap
	if sized, ok := src.(interface{ Capacity() int }); ok {
		bufCap = sized.Capacity()
	}

	return &Finder{grid: g, src: src, opts: cfg, bufCap: bufCap}, nil
}

// Grid returns the grid searched by f.
func (f *Finder) Grid() *grid.Grid { return f.grid }

// Find returns the least-cost path from start to goal, excluding start and
// including goal. It is Search without the statistics.
func (f *Finder) Find(start, goal uint32) ([]uint32, error) {
	res, err := f.Search(start, goal)
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// Search runs one A* query from start to goal.
//
// Validation (in order):
//  1. start and goal must be inside the grid (ErrInvalidIndex).
//  2. start and goal must be passable (ErrImpassableEndpoint).
//
// start == goal returns an empty, non-nil path with Cost 0 rather than
// [goal], since the path never includes the start. An unreachable goal
// returns ErrNoPath. Every call reports to the Logger and the Observer.
func (f *Finder) Search(start, goal uint32) (Result, error) {
	began := time.Now()
	res, err := f.search(start, goal)
	f.report(start, goal, res, err, time.Since(began))
	if err != nil {
		return Result{Expanded: res.Expanded, Pushed: res.Pushed}, err
	}
	return res, nil
}

func (f *Finder) search(start, goal uint32) (Result, error) {
	// 1) Endpoint validation.
	if err := f.grid.CheckIndex(start); err != nil {
		return Result{}, fmt.Errorf("astar: start: %w", err)
	}
	if err := f.grid.CheckIndex(goal); err != nil {
		return Result{}, fmt.Errorf("astar: goal: %w", err)
	}
	if !f.grid.Passable(start) {
		return Result{}, fmt.Errorf("%w: start %d", ErrImpassableEndpoint, start)
	}
	if !f.grid.Passable(goal) {
		return Result{}, fmt.Errorf("%w: goal %d", ErrImpassableEndpoint, goal)
	}

	// 2) Trivial query.
	if start == goal {
		return Result{Path: []uint32{}}, nil
	}

	// 3) Known-disconnected endpoints.
	if f.opts.Regions != nil && !f.opts.Regions.Connected(start, goal) {
		return Result{}, fmt.Errorf("%w: %d → %d lie in different regions", ErrNoPath, start, goal)
	}

	// 4) Full search.
	r := f.newRunner(start, goal)
	r.init()
	found, err := r.process()
	res := Result{Expanded: r.expanded, Pushed: r.pushed}
	if err != nil {
		return res, err
	}
	if !found {
		return res, fmt.Errorf("%w: %d → %d", ErrNoPath, start, goal)
	}
	res.Path = r.path()
	res.Cost = r.costSoFar[goal] - 1

	return res, nil
}

// report forwards one finished search to the logger and the observer.
func (f *Finder) report(start, goal uint32, res Result, err error, elapsed time.Duration) {
	outcome := outcomeOf(err)
	if f.opts.Observer != nil {
		f.opts.Observer.ObserveSearch(Stats{
			Start:    start,
			Goal:     goal,
			Outcome:  outcome,
			Expanded: res.Expanded,
			Pushed:   res.Pushed,
			PathLen:  len(res.Path),
			Cost:     res.Cost,
			Elapsed:  elapsed,
		})
	}
	if !f.opts.Logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	attrs := []any{
		slog.Uint64("start", uint64(start)),
		slog.Uint64("goal", uint64(goal)),
		slog.String("result", string(outcome)),
		slog.Int("expanded", res.Expanded),
		slog.Int("path_len", len(res.Path)),
		slog.Uint64("cost", res.Cost),
		slog.Duration("elapsed", elapsed),
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}
	f.opts.Logger.Debug("astar search", attrs...)
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	grid      *grid.Grid
	src       neighbors.Source
	options   *Options
	start     uint32
	goal      uint32
	goalAt    grid.Coord // coordinate of goal, cached for the heuristic
	costSoFar []uint64   // 0 = unvisited; start holds the sentinel 1
	cameFrom  []uint32   // predecessor on the best known path
	pq        frontier   // lazy min-heap, stale duplicates allowed
	buf       []uint32   // neighbor scratch space
	expanded  int
	pushed    int
}

func (f *Finder) newRunner(start, goal uint32) *runner {
	n := f.grid.Len()
	return &runner{
		grid:      f.grid,
		src:       f.src,
		options:   &f.opts,
		start:     start,
		goal:      goal,
		goalAt:    f.grid.Coordinate(goal),
		costSoFar: make([]uint64, n),
		cameFrom:  make([]uint32, n),
		pq:        make(frontier, 0, 64),
		buf:       make([]uint32, 0, f.bufCap),
	}
}

// init seeds the search with the start cell.
func (r *runner) init() {
	// 1) Every predecessor defaults to start; only relaxed cells are ever read.
	for i := range r.cameFrom {
		r.cameFrom[i] = r.start
	}

	// 2) Sentinel cost so that "0" keeps meaning "never reached".
	r.costSoFar[r.start] = 1

	// 3) The start goes in with priority 0.
	heap.Init(&r.pq)
	heap.Push(&r.pq, frontierItem{priority: 0, index: r.start})
	r.pushed++
}

// h is the Manhattan distance from idx to the goal.
func (r *runner) h(idx uint32) uint64 {
	return uint64(grid.Manhattan(r.grid.Coordinate(idx), r.goalAt))
}

// process pops cells until the goal is popped or the frontier is empty.
// It reports whether the goal was reached.
func (r *runner) process() (bool, error) {
	var item frontierItem
	var cur uint32
	for r.pq.Len() > 0 {
		// 1) Cheapest entry; ties resolved towards the higher index.
		item = heap.Pop(&r.pq).(frontierItem)
		cur = item.index

		// 2) A cheaper copy of this cell was pushed later; this one is stale.
		if cur != r.start && item.priority > r.costSoFar[cur]+r.h(cur) {
			continue
		}

		// 3) Goal popped: its cost is final.
		if cur == r.goal {
			return true, nil
		}

		// 4) Caller-imposed bounds.
		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			return false, fmt.Errorf("%w: %d cells", ErrExpansionLimit, r.expanded)
		}
		if err := r.options.OnExpand(cur); err != nil {
			return false, fmt.Errorf("astar: expansion of %d aborted: %w", cur, err)
		}
		r.expanded++

		// 5) Relax every move out of cur.
		r.relax(cur)
	}

	return false, nil
}

// relax tries to improve the cost of every neighbor of cur.
func (r *runner) relax(cur uint32) {
	at := r.grid.Coordinate(cur)
	base := r.costSoFar[cur]

	var nextAt grid.Coord
	var cost uint64
	for _, next := range r.src.Neighbors(cur, r.buf[:0]) {
		// Step cost: terrain of the entered cell plus the distance travelled.
		nextAt = r.grid.Coordinate(next)
		cost = base + uint64(r.grid.Cost(next)) + uint64(grid.Manhattan(at, nextAt))

		// Only unvisited cells or strictly better costs are relaxed.
		if prev := r.costSoFar[next]; prev != 0 && cost >= prev {
			continue
		}
		r.costSoFar[next] = cost
		r.cameFrom[next] = cur
		heap.Push(&r.pq, frontierItem{
			priority: cost + uint64(grid.Manhattan(nextAt, r.goalAt)),
			index:    next,
		})
		r.pushed++
		r.options.OnRelax(cur, next, cost-1)
	}
}

// path walks cameFrom back from the goal. The start is not included.
func (r *runner) path() []uint32 {
	n := 0
	for at := r.goal; at != r.start; at = r.cameFrom[at] {
		n++
	}
	out := make([]uint32, n)
	for at, i := r.goal, n-1; at != r.start; at, i = r.cameFrom[at], i-1 {
		out[i] = at
	}
	return out
}

// FindPath builds an on-demand Policy for g and mode and runs one query.
func FindPath(g *grid.Grid, start, goal uint32, mode neighbors.Mode, opts ...Option) ([]uint32, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	p, err := neighbors.NewPolicy(g, mode)
	if err != nil {
		return nil, err
	}
	f, err := New(g, p, opts...)
	if err != nil {
		return nil, err
	}
	return f.Find(start, goal)
}

// FindPathCached runs one query against a prebuilt cache.
func FindPathCached(c *neighbors.Cache, start, goal uint32, opts ...Option) ([]uint32, error) {
	if c == nil {
		return nil, ErrNilSource
	}
	f, err := New(c.Grid(), c, opts...)
	if err != nil {
		return nil, err
	}
	return f.Find(start, goal)
}
