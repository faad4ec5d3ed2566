// Package registry provides a global registry of attack-program factories.
// Programs register themselves in init() functions keyed by attack type,
// allowing battle setup to arm units without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/heroes-battle/internal/army"
	"github.com/vovakirdan/heroes-battle/internal/core"
)

// TargetFinder lists the units a side may attack.
type TargetFinder interface {
	TargetsFor(b *army.Board, s army.Side) []*army.Unit
}

// PathFinder computes approach routes between units.
type PathFinder interface {
	FindPath(attacker, target *army.Unit, units []*army.Unit) []core.Coord
}

// Env is everything an attack program may consult while acting.
type Env struct {
	Board   *army.Board
	Targets TargetFinder
	Paths   PathFinder
	Logger  *log.Logger
}

// Factory creates the attack program for one unit.
type Factory func(u *army.Unit, env Env) army.AttackProgram

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a program factory for an attack type.
// Typically called from an init() function.
// Panics if the attack type is already registered.
func Register(attackType string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[attackType]; exists {
		panic(fmt.Sprintf("registry: attack type %q already registered", attackType))
	}
	factories[attackType] = f
}

// List returns all registered attack types, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]string, 0, len(factories))
	for attackType := range factories {
		result = append(result, attackType)
	}
	sort.Strings(result)
	return result
}

// Exists checks if an attack type is registered.
func Exists(attackType string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[attackType]
	return ok
}

// Create builds the program for a unit from its attack type.
// Returns an error if the attack type is not registered.
func Create(u *army.Unit, env Env) (army.AttackProgram, error) {
	mu.RLock()
	f, ok := factories[u.AttackType]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown attack type %q for %s", u.AttackType, u.Name)
	}
	if env.Logger == nil {
		env.Logger = log.New(io.Discard)
	}
	return f(u, env), nil
}

// Arm binds a program to every unit on the board.
func Arm(env Env) error {
	if env.Board == nil {
		return fmt.Errorf("registry: no board to arm")
	}
	for _, u := range env.Board.AllUnits() {
		p, err := Create(u, env)
		if err != nil {
			return err
		}
		u.SetProgram(p)
	}
	return nil
}
