package army

import "github.com/vovakirdan/heroes-battle/internal/core"

// Board is a read view over both rosters on one field.
// Attack programs use it to find enemies and obstacles.
type Board struct {
	Field core.Field
	Left  *Army
	Right *Army
}

// NewBoard creates a board and stamps each roster's side onto its units.
func NewBoard(field core.Field, left, right *Army) *Board {
	left.SetSide(SideLeft)
	right.SetSide(SideRight)
	return &Board{Field: field, Left: left, Right: right}
}

// Army returns the roster fighting from the given side.
func (b *Board) Army(s Side) *Army {
	if s == SideLeft {
		return b.Left
	}
	return b.Right
}

// Enemies returns the roster opposing the given side.
func (b *Board) Enemies(s Side) *Army {
	return b.Army(s.Opposite())
}

// AllUnits returns every unit on the board, dead or alive, left roster first.
func (b *Board) AllUnits() []*Unit {
	all := make([]*Unit, 0, len(b.Left.Units)+len(b.Right.Units))
	all = append(all, b.Left.Units...)
	all = append(all, b.Right.Units...)
	return all
}

// Living returns every living unit, left roster first.
func (b *Board) Living() []*Unit {
	living := b.Left.Living()
	return append(living, b.Right.Living()...)
}

// Occupancy builds the occupancy map for the given units:
// a cell is occupied iff some living unit stands on it.
func Occupancy(f core.Field, units []*Unit) *core.Grid {
	g := core.NewGrid(f)
	for _, u := range units {
		if u != nil && u.Alive() {
			g.Occupy(u.Pos())
		}
	}
	return g
}
