package neighbors

import (
	"github.com/katalvlaran/gridpath/grid"
)

// NoRegion labels impassable cells.
const NoRegion = ^uint32(0)

// Regions labels every passable cell with the weakly connected region it
// belongs to: two cells share a label iff they are joined by a chain of moves
// when the direction of each move is ignored. Cells in different regions can
// never reach each other, which makes Connected a sound "no path" pre-check
// even with one-way vertical links. The converse does not hold for one-way
// links: a shared label does not guarantee a path.
//
// Labels are dense (0..Count()-1) and numbered by the lowest cell index in
// each region, so the labelling is deterministic.
type Regions struct {
	grid   *grid.Grid
	labels []uint32
	sizes  []int
}

// BuildRegions labels the regions of g as seen through src. If src reports
// its grid (Policy and Cache do) it must be g, else ErrGridMismatch.
//
// Time:   O(N·d·α(N)) for N cells and d neighbors per cell.
// Memory: O(N).
func BuildRegions(g *grid.Grid, src Source) (*Regions, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if src == nil {
		return nil, ErrNilSource
	}
	if owned, ok := src.(interface{ Grid() *grid.Grid }); ok && owned.Grid() != g {
		return nil, ErrGridMismatch
	}

	// 1) Disjoint-set forest over all cells.
	n := g.Len()
	parent := make([]uint32, n)
	rank := make([]uint8, n)
	for i := range parent {
		parent[i] = uint32(i)
	}

	// Iterative find with path halving.
	find := func(u uint32) uint32 {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	// Union by rank.
	union := func(u, v uint32) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	// 2) Merge along every move out of every passable cell.
	capacity := 24
	if sized, ok := src.(interface{ Capacity() int }); ok {
		capacity = sized.Capacity()
	}
	buf := make([]uint32, 0, capacity)
	for i := 0; i < n; i++ {
		idx := uint32(i)
		if !g.Passable(idx) {
			continue
		}
		for _, next := range src.Neighbors(idx, buf[:0]) {
			union(idx, next)
		}
	}

	// 3) Dense labels in order of first appearance.
	r := &Regions{grid: g, labels: make([]uint32, n)}
	byRoot := make(map[uint32]uint32)
	for i := 0; i < n; i++ {
		idx := uint32(i)
		if !g.Passable(idx) {
			r.labels[i] = NoRegion
			continue
		}
		root := find(idx)
		label, ok := byRoot[root]
		if !ok {
			label = uint32(len(r.sizes))
			byRoot[root] = label
			r.sizes = append(r.sizes, 0)
		}
		r.labels[i] = label
		r.sizes[label]++
	}

	return r, nil
}

// Grid returns the grid the regions were computed for.
func (r *Regions) Grid() *grid.Grid { return r.grid }

// Count returns the number of regions.
func (r *Regions) Count() int { return len(r.sizes) }

// Region returns the label of idx, or NoRegion for walls.
func (r *Regions) Region(idx uint32) uint32 { return r.labels[idx] }

// Size returns the number of cells carrying label.
func (r *Regions) Size(label uint32) int { return r.sizes[label] }

// Connected reports whether a and b are passable and share a region.
func (r *Regions) Connected(a, b uint32) bool {
	la := r.labels[a]
	return la != NoRegion && la == r.labels[b]
}

// Members returns the cells of label in ascending order.
func (r *Regions) Members(label uint32) []uint32 {
	out := make([]uint32, 0, r.sizes[label])
	for i, l := range r.labels {
		if l == label {
			out = append(out, uint32(i))
		}
	}
	return out
}
