package neighbors

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/grid"
)

// minChunk keeps tiny grids from being split into goroutines that do
// almost no work.
const minChunk = 1024

// Cache is the Policy result for every cell of a grid, computed once.
// Rows are stored back to back in flat; the neighbors of cell i are
// flat[offsets[i]:offsets[i+1]]. A Cache is never mutated after BuildCache
// returns and may be shared by any number of concurrent searches.
type Cache struct {
	grid    *grid.Grid
	mode    Mode
	offsets []int
	flat    []uint32
}

// cacheChunk is the slice of the cache built by one worker.
type cacheChunk struct {
	lo, hi int
	ends   []int // ends[k] = end of row lo+k inside flat
	flat   []uint32
}

// BuildCache precomputes p.Neighbors for every cell of p.Grid().
// Impassable cells get an empty row without being enumerated.
// Work is split into contiguous chunks of cells processed by at most
// Options.Workers goroutines (WithWorkers).
//
// Complexity: O(N) time, O(N·d) memory where d is the average degree.
func BuildCache(p *Policy, opts ...Option) (*Cache, error) {
	if p == nil {
		return nil, ErrNilPolicy
	}
	cfg, err := applyCacheOptions(opts)
	if err != nil {
		return nil, err
	}

	// 1) Partition the cells.
	n := p.grid.Len()
	size := (n + cfg.Workers - 1) / cfg.Workers
	if size < minChunk {
		size = minChunk
	}
	chunks := make([]cacheChunk, (n+size-1)/size)

	// 2) Fill every chunk independently; chunks never share memory.
	var eg errgroup.Group
	eg.SetLimit(cfg.Workers)
	for ci := range chunks {
		c := &chunks[ci]
		c.lo = ci * size
		c.hi = min(c.lo+size, n)
		eg.Go(func() error {
			c.fill(p)
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	// 3) Stitch chunks into one flat table.
	total := 0
	for i := range chunks {
		total += len(chunks[i].flat)
	}
	cache := &Cache{
		grid:    p.grid,
		mode:    p.mode,
		offsets: make([]int, n+1),
		flat:    make([]uint32, 0, total),
	}
	for i := range chunks {
		c := &chunks[i]
		base := len(cache.flat)
		for k, end := range c.ends {
			cache.offsets[c.lo+k+1] = base + end
		}
		cache.flat = append(cache.flat, c.flat...)
	}

	return cache, nil
}

func (c *cacheChunk) fill(p *Policy) {
	c.ends = make([]int, 0, c.hi-c.lo)
	c.flat = make([]uint32, 0, (c.hi-c.lo)*p.mode.Degree()/2)
	buf := make([]uint32, 0, p.Capacity())
	for i := c.lo; i < c.hi; i++ {
		idx := uint32(i)
		if p.grid.Passable(idx) {
			buf = p.Neighbors(idx, buf)
			c.flat = append(c.flat, buf...)
		}
		c.ends = append(c.ends, len(c.flat))
	}
}

// Neighbors returns the cached neighbors of idx. buf is ignored; the result
// is a capacity-capped view of the cache and must not be modified.
func (c *Cache) Neighbors(idx uint32, _ []uint32) []uint32 {
	lo, hi := c.offsets[idx], c.offsets[idx+1]
	return c.flat[lo:hi:hi]
}

// Grid returns the grid the cache was built for.
func (c *Cache) Grid() *grid.Grid { return c.grid }

// Mode returns the enumeration mode of the policy the cache was built from.
func (c *Cache) Mode() Mode { return c.mode }

// Len returns the number of cells covered, equal to Grid().Len().
func (c *Cache) Len() int { return len(c.offsets) - 1 }

// Edges returns the total number of cached neighbor entries.
func (c *Cache) Edges() int { return len(c.flat) }
