// Package config provides YAML-based configuration for the battle simulator:
// field dimensions, army placement, budgets, and the unit catalogue.
package config

import (
	"fmt"

	"github.com/vovakirdan/heroes-battle/internal/army"
	"github.com/vovakirdan/heroes-battle/internal/core"
)

// Config contains everything needed to set up and run a battle.
type Config struct {
	Field     FieldConfig     `yaml:"field"`
	Placement PlacementConfig `yaml:"placement"`
	Army      ArmyConfig      `yaml:"army"`
	Battle    BattleConfig    `yaml:"battle"`
	Units     []UnitDef       `yaml:"units"`
}

// FieldConfig defines the battle field used for targeting and movement.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlacementConfig defines the strip each generated army is dropped into.
type PlacementConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	LeftOffset  int `yaml:"left_offset"`  // first column of the left army's zone
	RightOffset int `yaml:"right_offset"` // first column of the right army's zone
}

// ArmyConfig defines army generation budgets.
type ArmyConfig struct {
	MaxPoints       int `yaml:"max_points"`
	MaxUnitsPerType int `yaml:"max_units_per_type"`
}

// BattleConfig defines battle loop limits.
type BattleConfig struct {
	MaxTicks int `yaml:"max_ticks"` // 0 = no limit
}

// UnitDef is one catalogue entry.
type UnitDef struct {
	Type           string             `yaml:"type"`
	Health         int                `yaml:"health"`
	BaseAttack     int                `yaml:"base_attack"`
	Cost           int                `yaml:"cost"`
	AttackType     string             `yaml:"attack_type"`
	AttackBonuses  map[string]float64 `yaml:"attack_bonuses"`
	DefenceBonuses map[string]float64 `yaml:"defence_bonuses"`
}

// BattleField returns the battle field dimensions.
func (c Config) BattleField() core.Field {
	return core.Field{Width: c.Field.Width, Height: c.Field.Height}
}

// PlacementZone returns the placement strip dimensions.
func (c Config) PlacementZone() core.Field {
	return core.Field{Width: c.Placement.Width, Height: c.Placement.Height}
}

// PlacementOffset returns the first column of the zone for a side.
func (c Config) PlacementOffset(s army.Side) int {
	if s == army.SideLeft {
		return c.Placement.LeftOffset
	}
	return c.Placement.RightOffset
}

// Catalogue builds unit templates from the configured definitions.
func (c Config) Catalogue() []*army.Unit {
	units := make([]*army.Unit, 0, len(c.Units))
	for _, def := range c.Units {
		units = append(units, &army.Unit{
			Name:           def.Type,
			Type:           def.Type,
			Health:         def.Health,
			BaseAttack:     def.BaseAttack,
			Cost:           def.Cost,
			AttackType:     def.AttackType,
			AttackBonuses:  def.AttackBonuses,
			DefenceBonuses: def.DefenceBonuses,
		})
	}
	return units
}

// Validate checks that the configuration describes a playable battle.
func (c Config) Validate() error {
	if !c.BattleField().Valid() {
		return fmt.Errorf("config: field must have positive dimensions, got %dx%d", c.Field.Width, c.Field.Height)
	}
	if !c.PlacementZone().Valid() {
		return fmt.Errorf("config: placement must have positive dimensions, got %dx%d", c.Placement.Width, c.Placement.Height)
	}
	if c.Placement.Height > c.Field.Height {
		return fmt.Errorf("config: placement height %d exceeds field height %d", c.Placement.Height, c.Field.Height)
	}
	for _, offset := range []int{c.Placement.LeftOffset, c.Placement.RightOffset} {
		if offset < 0 || offset+c.Placement.Width > c.Field.Width {
			return fmt.Errorf("config: placement at column %d does not fit a field of width %d", offset, c.Field.Width)
		}
	}
	if c.Army.MaxPoints < 0 {
		return fmt.Errorf("config: max_points must not be negative")
	}
	if c.Battle.MaxTicks < 0 {
		return fmt.Errorf("config: max_ticks must not be negative")
	}

	seen := make(map[string]bool)
	for i, def := range c.Units {
		switch {
		case def.Type == "":
			return fmt.Errorf("config: unit %d has no type", i)
		case seen[def.Type]:
			return fmt.Errorf("config: duplicate unit type %q", def.Type)
		case def.Health <= 0:
			return fmt.Errorf("config: unit %q must have positive health", def.Type)
		case def.Cost <= 0:
			return fmt.Errorf("config: unit %q must have positive cost", def.Type)
		case def.AttackType == "":
			return fmt.Errorf("config: unit %q has no attack type", def.Type)
		}
		seen[def.Type] = true
	}
	return nil
}
