package programs

import (
	"context"

	"github.com/vovakirdan/heroes-battle/internal/army"
	"github.com/vovakirdan/heroes-battle/internal/pathfind"
	"github.com/vovakirdan/heroes-battle/internal/registry"
)

func init() {
	registry.Register(AttackMelee, NewMelee)
}

// Melee attacks the closest suitable enemy it has a route to.
type Melee struct {
	unit *army.Unit
	env  registry.Env
}

// NewMelee creates a melee program for the unit.
func NewMelee(u *army.Unit, env registry.Env) army.AttackProgram {
	return &Melee{unit: u, env: env}
}

// Attack picks the target with the shortest approach path (ties: weaker, then
// name) and hits it. Returns nil when no suitable target is reachable.
func (m *Melee) Attack(ctx context.Context) (*army.Unit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	units := m.env.Board.AllUnits()
	var (
		best      *army.Unit
		bestSteps int
	)
	for _, t := range m.env.Targets.TargetsFor(m.env.Board, m.unit.Side) {
		steps := pathfind.Steps(m.env.Paths.FindPath(m.unit, t, units))
		if steps < 0 {
			continue
		}
		if best == nil || steps < bestSteps || (steps == bestSteps && weaker(t, best)) {
			best, bestSteps = t, steps
		}
	}
	if best == nil {
		m.env.Logger.Debug("no reachable target", "unit", m.unit.Name)
		return nil, nil
	}

	dealt := best.TakeDamage(Damage(m.unit, best))
	m.env.Logger.Debug("melee hit", "attacker", m.unit.Name, "target", best.Name,
		"steps", bestSteps, "damage", dealt, "health", best.Health)
	return best, nil
}
