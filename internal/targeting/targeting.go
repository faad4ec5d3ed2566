// Package targeting decides which units of a side can be attacked.
//
// A unit is a suitable target when no living unit stands between it and the
// edge of the field scanned for its side: toward x=0 when the left army is the
// target, toward x=Width-1 when the right army is. Only the foremost unit of
// each row (in that convention) is attackable. Battle outcomes depend on this
// orientation, so it must not change.
package targeting

import (
	"github.com/vovakirdan/heroes-battle/internal/army"
	"github.com/vovakirdan/heroes-battle/internal/core"
)

// Finder computes suitable attack targets on one field.
type Finder struct {
	Field core.Field
}

// NewFinder creates a finder for the given field.
func NewFinder(f core.Field) *Finder {
	return &Finder{Field: f}
}

// SuitableUnits returns the living units of the target side that are not
// shielded along their row. Every living unit in unitsByRow occupies its cell;
// units of the other side are only obstacles and are never returned. Units
// without a side (SideNone) are treated as members of the target side.
// Results follow unitsByRow order.
func (f *Finder) SuitableUnits(unitsByRow [][]*army.Unit, leftArmyTarget bool) []*army.Unit {
	occupied := f.occupancy(unitsByRow)
	targetSide := army.SideRight
	if leftArmyTarget {
		targetSide = army.SideLeft
	}

	suitable := make([]*army.Unit, 0)
	for _, row := range unitsByRow {
		for _, u := range row {
			if u == nil || !u.Alive() || (u.Side != army.SideNone && u.Side != targetSide) {
				continue
			}
			if !f.Field.InBounds(u.Pos()) {
				continue
			}
			if f.Blocked(u.Pos(), occupied, leftArmyTarget) {
				continue
			}
			suitable = append(suitable, u)
		}
	}
	return suitable
}

// Blocked reports whether the unit at c has an occupied cell strictly between it
// and the scanned edge of its row.
func (f *Finder) Blocked(c core.Coord, occupied *core.Grid, leftArmyTarget bool) bool {
	if leftArmyTarget {
		for x := c.X - 1; x >= 0; x-- {
			if occupied.Occupied(core.C(x, c.Y)) {
				return true
			}
		}
		return false
	}
	for x := c.X + 1; x < f.Field.Width; x++ {
		if occupied.Occupied(core.C(x, c.Y)) {
			return true
		}
	}
	return false
}

func (f *Finder) occupancy(unitsByRow [][]*army.Unit) *core.Grid {
	all := make([]*army.Unit, 0)
	for _, row := range unitsByRow {
		all = append(all, row...)
	}
	return army.Occupancy(f.Field, all)
}

// TargetsFor returns the suitable targets for a unit fighting from side s:
// the opposing roster, grouped by row, scanned from the opposing edge.
func (f *Finder) TargetsFor(b *army.Board, s army.Side) []*army.Unit {
	enemies := b.Enemies(s)
	return f.SuitableUnits(enemies.UnitsByRow(f.Field), s == army.SideRight)
}
