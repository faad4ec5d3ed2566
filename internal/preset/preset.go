// Package preset builds computer armies from a unit catalogue.
//
// Generation is greedy: unit types are ranked by attack per point, then by
// health per point, and each type is bought as many times as the budget and
// the per-type cap allow before moving on to the next. Units are dropped onto
// distinct random cells of the placement zone.
package preset

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/vovakirdan/heroes-battle/internal/army"
	"github.com/vovakirdan/heroes-battle/internal/core"
)

// DefaultMaxUnitsPerType caps how many copies of one type an army receives.
const DefaultMaxUnitsPerType = 11

// ErrNoPositions is returned when the placement zone has no free cell left.
var ErrNoPositions = errors.New("preset: no free positions in placement zone")

const epsilon = 1e-9

// Zone is the strip of the field a generated army is placed into.
// Cells are (OffsetX+x, y) for x < Field.Width, y < Field.Height.
type Zone struct {
	Field   core.Field
	OffsetX int
}

// Generator creates armies.
type Generator struct {
	MaxUnitsPerType int
	Zone            Zone
	rng             *rand.Rand
}

// New creates a generator that places units with rng.
func New(zone Zone, maxUnitsPerType int, rng *rand.Rand) *Generator {
	if maxUnitsPerType <= 0 {
		maxUnitsPerType = DefaultMaxUnitsPerType
	}
	return &Generator{
		MaxUnitsPerType: maxUnitsPerType,
		Zone:            zone,
		rng:             rng,
	}
}

// Generate buys units from the catalogue within maxPoints.
// Units are named "<Type> <n>" counting from 1 per type; templates are not modified.
func (g *Generator) Generate(catalogue []*army.Unit, maxPoints int) (*army.Army, error) {
	positions := newPositions(g.Zone, g.rng)
	result := &army.Army{}

	for _, tmpl := range Rank(catalogue) {
		if tmpl.Cost <= 0 {
			continue
		}
		for n := 0; result.Points+tmpl.Cost <= maxPoints && n < g.MaxUnitsPerType; n++ {
			pos, err := positions.next()
			if err != nil {
				return nil, fmt.Errorf("preset: placing %s %d: %w", tmpl.Type, n+1, err)
			}

			u := tmpl.Clone()
			u.Name = fmt.Sprintf("%s %d", tmpl.Type, n+1)
			u.X, u.Y = pos.X, pos.Y
			result.Units = append(result.Units, u)
			result.Points += u.Cost
		}
	}
	return result, nil
}

// Rank orders unit templates for greedy buying: attack per point descending,
// then health per point descending. The input is not modified.
func Rank(catalogue []*army.Unit) []*army.Unit {
	ranked := make([]*army.Unit, 0, len(catalogue))
	for _, u := range catalogue {
		if u != nil {
			ranked = append(ranked, u)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		ea, eb := perPoint(a.BaseAttack, a.Cost), perPoint(b.BaseAttack, b.Cost)
		if math.Abs(ea-eb) > epsilon {
			return ea > eb
		}
		return perPoint(a.Health, a.Cost) > perPoint(b.Health, b.Cost)
	})
	return ranked
}

func perPoint(v, cost int) float64 {
	if cost <= 0 {
		return 0
	}
	return float64(v) / float64(cost)
}

// positions hands out zone cells without replacement.
type positions struct {
	free []core.Coord
	rng  *rand.Rand
}

func newPositions(z Zone, rng *rand.Rand) *positions {
	free := make([]core.Coord, 0, z.Field.Cells())
	for x := 0; x < z.Field.Width; x++ {
		for y := 0; y < z.Field.Height; y++ {
			free = append(free, core.C(z.OffsetX+x, y))
		}
	}
	return &positions{free: free, rng: rng}
}

func (p *positions) next() (core.Coord, error) {
	if len(p.free) == 0 {
		return core.Coord{}, ErrNoPositions
	}
	i := p.rng.Intn(len(p.free))
	c := p.free[i]
	p.free = append(p.free[:i], p.free[i+1:]...)
	return c, nil
}
