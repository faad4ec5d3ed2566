package programs

import (
	"context"

	"github.com/vovakirdan/heroes-battle/internal/army"
	"github.com/vovakirdan/heroes-battle/internal/registry"
)

func init() {
	registry.Register(AttackRanged, NewRanged)
}

// Ranged shoots the weakest suitable enemy.
type Ranged struct {
	unit *army.Unit
	env  registry.Env
}

// NewRanged creates a ranged program for the unit.
func NewRanged(u *army.Unit, env registry.Env) army.AttackProgram {
	return &Ranged{unit: u, env: env}
}

// Attack hits the suitable target with the least health (ties by name).
func (r *Ranged) Attack(ctx context.Context) (*army.Unit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var best *army.Unit
	for _, t := range r.env.Targets.TargetsFor(r.env.Board, r.unit.Side) {
		if best == nil || weaker(t, best) {
			best = t
		}
	}
	if best == nil {
		return nil, nil
	}

	dealt := best.TakeDamage(Damage(r.unit, best))
	r.env.Logger.Debug("ranged hit", "attacker", r.unit.Name, "target", best.Name,
		"damage", dealt, "health", best.Health)
	return best, nil
}
