package neighbors

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Policy enumerates neighbors on demand. It is immutable and safe for
// concurrent use.
type Policy struct {
	grid  *grid.Grid
	mode  Mode
	links *Links
	tiles uint32
}

// NewPolicy creates a Policy over g using mode.
// WithLinks adds vertical links; they are validated here so that enumeration
// never has to bounds-check a vertical target.
// Returns ErrNilGrid, ErrUnknownMode, ErrInvalidLink or ErrOptionViolation.
func NewPolicy(g *grid.Grid, mode Mode, opts ...Option) (*Policy, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
	cfg, err := applyPolicyOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = cfg.Links.validate(g); err != nil {
		return nil, err
	}
	links := cfg.Links
	if links.Len() == 0 {
		links = nil
	}

	return &Policy{
		grid:  g,
		mode:  mode,
		links: links,
		tiles: g.TilesPerFloor(),
	}, nil
}

// Grid returns the grid the policy enumerates over.
func (p *Policy) Grid() *grid.Grid { return p.grid }

// Mode returns the planar enumeration mode.
func (p *Policy) Mode() Mode { return p.mode }

// Links returns the vertical links, or nil for a planar policy.
func (p *Policy) Links() *Links { return p.links }

// Capacity returns a buffer capacity large enough for any neighbor set this
// policy can produce: every planar neighbor may add one up and one down target.
func (p *Policy) Capacity() int {
	if p.links == nil {
		return p.mode.Degree()
	}
	return 3 * p.mode.Degree()
}

// Neighbors appends the traversable neighbors of idx to buf[:0] and returns
// the result. Boundary checks are relative to the floor of idx, so a cell on
// the last row of floor 0 never sees the first row of floor 1 as planar
// neighbor. idx must be in bounds.
func (p *Policy) Neighbors(idx uint32, buf []uint32) []uint32 {
	out := buf[:0]

	// 1) Position of idx inside its floor.
	w := p.grid.Width()
	inFloor := idx % p.tiles
	x := idx % w
	isTop := inFloor < w
	isBottom := inFloor >= p.tiles-w
	isLeft := x == 0
	isRight := x == w-1
	diagonal := p.mode == Omnidirectional

	// 2) Row above.
	if !isTop {
		top := idx - w
		out = p.appendPassable(out, top)
		if diagonal && !isLeft {
			out = p.appendPassable(out, top-1)
		}
		if diagonal && !isRight {
			out = p.appendPassable(out, top+1)
		}
	}

	// 3) Same row.
	if !isLeft {
		out = p.appendPassable(out, idx-1)
	}
	if !isRight {
		out = p.appendPassable(out, idx+1)
	}

	// 4) Row below.
	if !isBottom {
		bottom := idx + w
		out = p.appendPassable(out, bottom)
		if diagonal && !isLeft {
			out = p.appendPassable(out, bottom-1)
		}
		if diagonal && !isRight {
			out = p.appendPassable(out, bottom+1)
		}
	}

	// 5) Vertical targets reachable through a linked planar neighbor.
	if p.links != nil {
		planar := len(out)
		for i := 0; i < planar; i++ {
			n := out[i]
			if p.links.HasUp(n) {
				out = p.appendPassable(out, n+p.tiles)
			}
			if p.links.HasDown(n) {
				out = p.appendPassable(out, n-p.tiles)
			}
		}
	}

	return out
}

func (p *Policy) appendPassable(out []uint32, idx uint32) []uint32 {
	if p.grid.Passable(idx) {
		out = append(out, idx)
	}
	return out
}
