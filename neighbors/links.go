package neighbors

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
)

// Links is the set of vertical connections ("stairs") of a layered grid.
//
// Every entry is an absolute cell index, i.e. one specific cell on one specific
// floor; floors need not share a layout. An up-link at i connects to
// i + TilesPerFloor, a down-link at i to i - TilesPerFloor. Up and down sets are
// independent: nothing requires a down-link on the floor above an up-link.
//
// Links is immutable after NewLinks returns.
type Links struct {
	up   mapset.Set[uint32]
	down mapset.Set[uint32]
}

// NewLinks builds a Links from up-link and down-link indices.
// Duplicates are collapsed. Indices are validated against a grid by NewPolicy.
func NewLinks(up, down []uint32) *Links {
	l := &Links{
		up:   mapset.New[uint32](),
		down: mapset.New[uint32](),
	}
	for _, idx := range up {
		l.up.Put(idx)
	}
	for _, idx := range down {
		l.down.Put(idx)
	}

	return l
}

// HasUp reports whether idx carries an up-link.
func (l *Links) HasUp(idx uint32) bool { return l != nil && l.up.Has(idx) }

// HasDown reports whether idx carries a down-link.
func (l *Links) HasDown(idx uint32) bool { return l != nil && l.down.Has(idx) }

// Len returns the total number of up and down links.
func (l *Links) Len() int {
	if l == nil {
		return 0
	}
	return l.up.Size() + l.down.Size()
}

// Up returns the up-link indices in ascending order.
func (l *Links) Up() []uint32 {
	if l == nil {
		return nil
	}
	return sortedMembers(l.up)
}

// Down returns the down-link indices in ascending order.
func (l *Links) Down() []uint32 {
	if l == nil {
		return nil
	}
	return sortedMembers(l.down)
}

// validate checks every link against g: the index must be in bounds and the
// floor it leads to must exist. Links are checked in ascending order so the
// reported offender is deterministic.
func (l *Links) validate(g *grid.Grid) error {
	if l.Len() == 0 {
		return nil
	}
	floors := g.Floors()
	for _, idx := range l.Up() {
		if !g.InBounds(idx) {
			return fmt.Errorf("%w: up-link %d outside grid of %d cells", ErrInvalidLink, idx, g.Len())
		}
		if f := g.Coordinate(idx).Floor; f+1 >= floors {
			return fmt.Errorf("%w: up-link %d on top floor %d", ErrInvalidLink, idx, f)
		}
	}
	for _, idx := range l.Down() {
		if !g.InBounds(idx) {
			return fmt.Errorf("%w: down-link %d outside grid of %d cells", ErrInvalidLink, idx, g.Len())
		}
		if f := g.Coordinate(idx).Floor; f == 0 {
			return fmt.Errorf("%w: down-link %d on ground floor", ErrInvalidLink, idx)
		}
	}

	return nil
}

func sortedMembers(s mapset.Set[uint32]) []uint32 {
	out := make([]uint32, 0, s.Size())
	s.Each(func(idx uint32) {
		out = append(out, idx)
	})
	slices.Sort(out)

	return out
}
