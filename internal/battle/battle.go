// Package battle runs the turn loop of one battle between two rosters.
//
// The loop is single-threaded: every tick it orders the living units of both
// sides by attack power and lets each one act once through its attack program,
// until one side has no living units left. Damage, targeting and movement live
// in the attack programs; this package only sequences turns.
package battle

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/heroes-battle/internal/army"
)

// ErrInterrupted marks a battle aborted by an attack program or by the context.
var ErrInterrupted = errors.New("battle interrupted")

// Printer receives one event per successful attack.
type Printer interface {
	PrintBattleLog(attacker, target *army.Unit)
}

// PrinterFunc adapts a function to the Printer interface.
type PrinterFunc func(attacker, target *army.Unit)

// PrintBattleLog calls f(attacker, target).
func (f PrinterFunc) PrintBattleLog(attacker, target *army.Unit) {
	f(attacker, target)
}

// Result summarizes a finished battle.
type Result struct {
	Ticks     int
	Attacks   int
	Decided   bool      // exactly one side has living units
	Winner    army.Side // SideNone unless Decided
	Stalemate bool      // the tick limit was reached first
}

// Simulator runs battles.
type Simulator struct {
	printer  Printer
	logger   *log.Logger
	maxTicks int
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithLogger sets the logger for per-tick debug output.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxTicks ends a battle as a stalemate after n ticks. 0 means no limit.
func WithMaxTicks(n int) Option {
	return func(s *Simulator) {
		if n > 0 {
			s.maxTicks = n
		}
	}
}

// New creates a simulator that reports attacks to printer (may be nil).
func New(printer Printer, opts ...Option) *Simulator {
	s := &Simulator{
		printer: printer,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run plays the battle to completion.
//
// A battle is over as soon as either roster has no living unit; this is checked
// before every tick and before every turn, so no unit acts once a side is
// eliminated. An error from an attack program, or a cancelled context, aborts
// the battle immediately. Damage already dealt is not rolled back.
func (s *Simulator) Run(ctx context.Context, left, right *army.Army) (Result, error) {
	var res Result

	for bothAlive(left, right) {
		if s.maxTicks > 0 && res.Ticks >= s.maxTicks {
			res.Stalemate = true
			s.logger.Warn("tick limit reached", "ticks", res.Ticks)
			return res, nil
		}
		res.Ticks++

		order := TurnOrder(append(left.Living(), right.Living()...))
		s.logger.Debug("tick", "n", res.Ticks, "order", len(order))

		for _, u := range order {
			if !bothAlive(left, right) {
				break
			}
			if !u.Alive() {
				continue
			}
			if err := ctx.Err(); err != nil {
				return res, fmt.Errorf("battle: tick %d before %s: %w: %w", res.Ticks, u.Name, ErrInterrupted, err)
			}

			target, err := u.Attack(ctx)
			if err != nil {
				return res, fmt.Errorf("battle: tick %d %s attack: %w", res.Ticks, u.Name, interruption(err))
			}
			if target == nil {
				continue
			}
			res.Attacks++
			if s.printer != nil {
				s.printer.PrintBattleLog(u, target)
			}
		}
	}

	switch {
	case left.HasLiving():
		res.Decided, res.Winner = true, army.SideLeft
	case right.HasLiving():
		res.Decided, res.Winner = true, army.SideRight
	}
	if res.Decided {
		s.logger.Info("battle over", "winner", res.Winner, "ticks", res.Ticks, "attacks", res.Attacks)
	} else {
		s.logger.Info("battle over", "decided", false, "ticks", res.Ticks, "attacks", res.Attacks)
	}
	return res, nil
}

// interruption makes sure the returned error matches ErrInterrupted.
func interruption(err error) error {
	if errors.Is(err, ErrInterrupted) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInterrupted, err)
}

func bothAlive(left, right *army.Army) bool {
	return left.HasLiving() && right.HasLiving()
}
