package core

// Grid is a boolean occupancy map over a Field.
// Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int
	H     int
	Cells []bool
}

// NewGrid creates an empty occupancy map sized to the field.
func NewGrid(f Field) *Grid {
	return &Grid{
		W:     f.Width,
		H:     f.Height,
		Cells: make([]bool, f.Cells()),
	}
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Occupied reports whether the cell is marked.
// Out-of-bounds cells read as free.
func (g *Grid) Occupied(c Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.Cells[g.index(c)]
}

// Occupy marks the cell. Out-of-bounds writes are ignored.
func (g *Grid) Occupy(c Coord) {
	if g.InBounds(c) {
		g.Cells[g.index(c)] = true
	}
}

// Clear unmarks the cell. Out-of-bounds writes are ignored.
func (g *Grid) Clear(c Coord) {
	if g.InBounds(c) {
		g.Cells[g.index(c)] = false
	}
}
