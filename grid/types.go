package grid

// Impassable is the terrain cost of a cell that can never be entered.
const Impassable uint32 = 0

// Coord is the decomposed form of a flattened cell index.
// Floor is always 0 on a single-floor grid.
type Coord struct {
	X, Y, Floor uint32
}

// Grid is an immutable terrain-cost grid made of one or more floors of
// Width×Height cells each. cells[i] holds the cost of entering cell i.
type Grid struct {
	cells  []uint32
	width  uint32
	height uint32 // rows per floor
	floors uint32
	tiles  uint32 // width*height, cells per floor
}
