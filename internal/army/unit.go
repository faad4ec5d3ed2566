// Package army models the units and rosters that take part in a battle.
//
// Units are owned by their Army and always handled through *Unit. Every
// component of a battle (turn order, targeting, pathfinding, attack programs)
// observes the same unit records; nothing copies a unit while a battle runs.
package army

import (
	"context"
	"fmt"

	"github.com/vovakirdan/heroes-battle/internal/core"
)

// Side identifies which half of the field a roster fights from.
// The zero value means the unit has not been assigned to a roster yet.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Opposite returns the other side. SideNone has no opposite.
func (s Side) Opposite() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

// AttackProgram is the attack capability a unit exposes to the battle loop.
// Attack returns the unit that was attacked, or nil when there was no legal
// target. A non-nil error interrupts the battle.
type AttackProgram interface {
	Attack(ctx context.Context) (*Unit, error)
}

// Unit is a single fighter on the field.
type Unit struct {
	Name           string
	Type           string
	Health         int
	BaseAttack     int
	Cost           int
	AttackType     string
	AttackBonuses  map[string]float64 // multiplier against a target unit type
	DefenceBonuses map[string]float64 // divisor against an attacker's attack type
	X, Y           int
	Side           Side

	program AttackProgram
}

// Alive reports whether the unit still has health left.
func (u *Unit) Alive() bool {
	return u.Health > 0
}

// Pos returns the unit's cell.
func (u *Unit) Pos() core.Coord {
	return core.C(u.X, u.Y)
}

// TakeDamage reduces health by n, never below zero.
// Returns the health actually removed.
func (u *Unit) TakeDamage(n int) int {
	if n <= 0 || u.Health <= 0 {
		return 0
	}
	if n > u.Health {
		n = u.Health
	}
	u.Health -= n
	return n
}

// Program returns the attack program bound to the unit.
func (u *Unit) Program() AttackProgram {
	return u.program
}

// SetProgram binds an attack program to the unit.
func (u *Unit) SetProgram(p AttackProgram) {
	u.program = p
}

// Attack runs the unit's attack program once.
// A unit without a program never attacks.
func (u *Unit) Attack(ctx context.Context) (*Unit, error) {
	if u.program == nil {
		return nil, nil
	}
	return u.program.Attack(ctx)
}

// Clone returns a copy of the unit with its own bonus tables and no program.
// Used to stamp roster units out of catalogue templates.
func (u *Unit) Clone() *Unit {
	c := *u
	c.program = nil
	c.AttackBonuses = cloneBonuses(u.AttackBonuses)
	c.DefenceBonuses = cloneBonuses(u.DefenceBonuses)
	return &c
}

// String returns a short description used in logs.
func (u *Unit) String() string {
	return fmt.Sprintf("%s[%s hp=%d atk=%d @%v]", u.Name, u.Side, u.Health, u.BaseAttack, u.Pos())
}

// AttackBonus returns the multiplier against the given unit type, 1 when absent.
func (u *Unit) AttackBonus(targetType string) float64 {
	return bonus(u.AttackBonuses, targetType)
}

// DefenceBonus returns the divisor against the given attack type, 1 when absent.
func (u *Unit) DefenceBonus(attackType string) float64 {
	return bonus(u.DefenceBonuses, attackType)
}

func bonus(table map[string]float64, key string) float64 {
	if v, ok := table[key]; ok && v > 0 {
		return v
	}
	return 1
}

func cloneBonuses(src map[string]float64) map[string]float64 {
	if src == nil {
		return nil
	}
	dst := make(map[string]float64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
