// Package programs implements the attack programs units run each turn.
//
// Programs register themselves with the registry by attack type:
//
//	melee  - strikes the closest foremost enemy it has a route to
//	ranged - shoots the weakest foremost enemy, no approach needed
//
// Neither program relocates its unit; movement is only ever a computed path.
package programs

import (
	"math"

	"github.com/vovakirdan/heroes-battle/internal/army"
)

// Attack types understood by the registry.
const (
	AttackMelee  = "melee"
	AttackRanged = "ranged"
)

// Damage returns the health an attacker removes from a target in one hit:
// base attack scaled by the attacker's bonus against the target's type and
// divided by the target's defence against the attacker's attack type.
// Every hit deals at least 1.
func Damage(attacker, target *army.Unit) int {
	raw := float64(attacker.BaseAttack) * attacker.AttackBonus(target.Type) / target.DefenceBonus(attacker.AttackType)
	dmg := int(math.Round(raw))
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

// weaker orders candidate targets: lower health first, then name.
func weaker(a, b *army.Unit) bool {
	if a.Health != b.Health {
		return a.Health < b.Health
	}
	return a.Name < b.Name
}
