package army

import "github.com/vovakirdan/heroes-battle/internal/core"

// Army is one side's roster: an ordered list of units and the points spent on them.
// Points are informational only.
type Army struct {
	Units  []*Unit
	Points int
}

// New creates an army from the given units, totalling their cost.
func New(units ...*Unit) *Army {
	a := &Army{Units: units}
	for _, u := range units {
		a.Points += u.Cost
	}
	return a
}

// Living returns the units with health left, in roster order.
func (a *Army) Living() []*Unit {
	living := make([]*Unit, 0, len(a.Units))
	for _, u := range a.Units {
		if u != nil && u.Alive() {
			living = append(living, u)
		}
	}
	return living
}

// HasLiving reports whether at least one unit is alive.
func (a *Army) HasLiving() bool {
	if a == nil {
		return false
	}
	for _, u := range a.Units {
		if u != nil && u.Alive() {
			return true
		}
	}
	return false
}

// UnitsByRow groups living units by their y coordinate.
// The result has one entry per field row; units outside the field are dropped.
func (a *Army) UnitsByRow(f core.Field) [][]*Unit {
	rows := make([][]*Unit, f.Height)
	for _, u := range a.Living() {
		if !f.InBounds(u.Pos()) {
			continue
		}
		rows[u.Y] = append(rows[u.Y], u)
	}
	return rows
}

// SetSide assigns the side to every unit in the roster.
func (a *Army) SetSide(s Side) {
	for _, u := range a.Units {
		if u != nil {
			u.Side = s
		}
	}
}
