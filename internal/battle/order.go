package battle

import (
	"sort"

	"github.com/vovakirdan/heroes-battle/internal/army"
)

// TurnOrder returns the units sorted into the order they act in one tick:
// higher base attack first, ties broken by ascending name.
// The input slice is not modified.
func TurnOrder(units []*army.Unit) []*army.Unit {
	order := make([]*army.Unit, len(units))
	copy(order, units)
	sort.SliceStable(order, func(i, j int) bool {
		return actsBefore(order[i], order[j])
	})
	return order
}

func actsBefore(a, b *army.Unit) bool {
	if a.BaseAttack != b.BaseAttack {
		return a.BaseAttack > b.BaseAttack
	}
	return a.Name < b.Name
}
