package grid

import "errors"

var (
	// ErrInvalidDimensions indicates a zero width/height, an empty grid, or a
	// cell count that is not a multiple of the row (or floor) size.
	ErrInvalidDimensions = errors.New("grid: invalid dimensions")
	// ErrInvalidIndex indicates a cell index outside the grid.
	ErrInvalidIndex = errors.New("grid: index out of range")
)
