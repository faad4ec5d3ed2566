// Package core provides fundamental grid types shared by the battle simulator.
// It has no dependencies on units or rosters so that the geometry stays pure
// and testable.
package core

import "fmt"

// Coord represents a cell on the battle field.
// X grows from the left edge to the right edge, Y grows downward (one row per lane).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Equal returns true if two coordinates are the same.
func (c Coord) Equal(other Coord) bool {
	return c.X == other.X && c.Y == other.Y
}

// Chebyshev returns the number of 8-directional steps between two cells
// on an empty field: max(|dx|, |dy|).
func (c Coord) Chebyshev(other Coord) int {
	return Max(Abs(c.X-other.X), Abs(c.Y-other.Y))
}

// Field describes a fixed-size rectangular area of cells.
type Field struct {
	Width  int
	Height int
}

// Default dimensions. Both are defaults only: the effective values come from
// the loaded configuration.
var (
	// DefaultField is the battle field used for targeting and movement.
	DefaultField = Field{Width: 27, Height: 21}

	// DefaultPlacementZone is the strip a generated army is placed into.
	DefaultPlacementZone = Field{Width: 3, Height: 21}
)

// InBounds returns true if the coordinate lies inside the field.
func (f Field) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < f.Width && c.Y >= 0 && c.Y < f.Height
}

// Cells returns the number of cells in the field.
func (f Field) Cells() int {
	return f.Width * f.Height
}

// Valid returns true if both dimensions are positive.
func (f Field) Valid() bool {
	return f.Width > 0 && f.Height > 0
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
