package config

import (
	_ "embed"

	"github.com/vovakirdan/heroes-battle/internal/core"
)

//go:embed defaults/heroes.yaml
var defaultHeroesYAML []byte

// DefaultConfig returns the hardcoded configuration used when no YAML is usable.
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{
			Width:  core.DefaultField.Width,
			Height: core.DefaultField.Height,
		},
		Placement: PlacementConfig{
			Width:       core.DefaultPlacementZone.Width,
			Height:      core.DefaultPlacementZone.Height,
			LeftOffset:  0,
			RightOffset: core.DefaultField.Width - core.DefaultPlacementZone.Width,
		},
		Army: ArmyConfig{
			MaxPoints:       1500,
			MaxUnitsPerType: 11,
		},
		Battle: BattleConfig{
			MaxTicks: 1000,
		},
		Units: []UnitDef{
			{
				Type: "Archer", Health: 50, BaseAttack: 20, Cost: 20, AttackType: "ranged",
				AttackBonuses:  map[string]float64{"Knight": 0.5},
				DefenceBonuses: map[string]float64{"melee": 0.8},
			},
			{
				Type: "Knight", Health: 100, BaseAttack: 30, Cost: 30, AttackType: "melee",
				AttackBonuses:  map[string]float64{"Archer": 1.5},
				DefenceBonuses: map[string]float64{"ranged": 2.0},
			},
			{
				Type: "Pikeman", Health: 90, BaseAttack: 20, Cost: 20, AttackType: "melee",
				AttackBonuses:  map[string]float64{"Knight": 2.0},
				DefenceBonuses: map[string]float64{"melee": 1.2},
			},
			{
				Type: "Swordsman", Health: 60, BaseAttack: 25, Cost: 15, AttackType: "melee",
				AttackBonuses: map[string]float64{"Pikeman": 1.5},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultHeroesYAML
}
