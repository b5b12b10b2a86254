package grid

import (
	"fmt"
	"math"
)

// New constructs a single-floor Grid of the given width from a row-major cost
// slice. The number of rows is len(cells)/width.
// It deep-copies cells so later mutation of the input has no effect.
// Returns ErrInvalidDimensions if width is 0, cells is empty, or len(cells)
// is not a multiple of width.
// Complexity: O(N) time and memory.
func New(cells []uint32, width uint32) (*Grid, error) {
	if width == 0 {
		return nil, fmt.Errorf("%w: width must be positive", ErrInvalidDimensions)
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("%w: grid has no cells", ErrInvalidDimensions)
	}
	if len(cells)%int(width) != 0 {
		return nil, fmt.Errorf("%w: %d cells is not a multiple of width %d",
			ErrInvalidDimensions, len(cells), width)
	}

	return NewLayered(cells, width, uint32(len(cells)/int(width)))
}

// NewLayered constructs a multi-floor Grid. Every floor has height rows of
// width cells; floors are stored one after another, so the floor count is
// len(cells)/(width*height).
// Returns ErrInvalidDimensions if width or height is 0, cells is empty,
// len(cells) is not a multiple of width*height, or the grid does not fit in
// uint32 indices.
// Complexity: O(N) time and memory.
func NewLayered(cells []uint32, width, height uint32) (*Grid, error) {
	// 1) Reject degenerate shapes before any division.
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: width=%d height=%d", ErrInvalidDimensions, width, height)
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("%w: grid has no cells", ErrInvalidDimensions)
	}
	if uint64(len(cells)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d cells exceed the index range", ErrInvalidDimensions, len(cells))
	}

	// 2) The floor size must divide the cell count exactly.
	tiles := uint64(width) * uint64(height)
	if uint64(len(cells))%tiles != 0 {
		return nil, fmt.Errorf("%w: %d cells is not a multiple of floor size %d×%d",
			ErrInvalidDimensions, len(cells), width, height)
	}

	// 3) Deep copy to keep the grid immutable.
	own := make([]uint32, len(cells))
	copy(own, cells)

	return &Grid{
		cells:  own,
		width:  width,
		height: height,
		floors: uint32(uint64(len(cells)) / tiles),
		tiles:  uint32(tiles),
	}, nil
}

// Width returns the number of columns per row.
func (g *Grid) Width() uint32 { return g.width }

// Height returns the number of rows per floor.
func (g *Grid) Height() uint32 { return g.height }

// Floors returns the number of stacked floors (1 for a 2D grid).
func (g *Grid) Floors() uint32 { return g.floors }

// TilesPerFloor returns Width*Height, the index offset between two floors.
func (g *Grid) TilesPerFloor() uint32 { return g.tiles }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether idx addresses a cell of the grid.
func (g *Grid) InBounds(idx uint32) bool { return uint64(idx) < uint64(len(g.cells)) }

// CheckIndex returns ErrInvalidIndex, annotated with idx, if idx is out of range.
func (g *Grid) CheckIndex(idx uint32) error {
	if !g.InBounds(idx) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidIndex, idx, len(g.cells))
	}

	return nil
}

// Cost returns the terrain cost of entering idx. idx must be in bounds.
func (g *Grid) Cost(idx uint32) uint32 { return g.cells[idx] }

// Passable reports whether idx can be entered (cost > 0). idx must be in bounds.
func (g *Grid) Passable(idx uint32) bool { return g.cells[idx] != Impassable }

// Cells returns a copy of the terrain costs.
func (g *Grid) Cells() []uint32 {
	out := make([]uint32, len(g.cells))
	copy(out, g.cells)

	return out
}

// Index maps c to its flattened index. It is the exact inverse of Coordinate
// for every in-bounds c.
func (g *Grid) Index(c Coord) uint32 {
	return c.Floor*g.tiles + c.Y*g.width + c.X
}

// Coordinate decomposes idx into (X, Y, Floor).
func (g *Grid) Coordinate(idx uint32) Coord {
	return Coord{
		X:     idx % g.width,
		Y:     idx % g.tiles / g.width,
		Floor: idx / g.tiles,
	}
}

// Distance returns the Manhattan distance between two cells, counting the
// floor difference as a third axis.
func (g *Grid) Distance(a, b uint32) uint32 {
	return Manhattan(g.Coordinate(a), g.Coordinate(b))
}

// Manhattan returns |dx| + |dy| + |dfloor|.
func Manhattan(a, b Coord) uint32 {
	return absDiff(a.X, b.X) + absDiff(a.Y, b.Y) + absDiff(a.Floor, b.Floor)
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
