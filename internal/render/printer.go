package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/heroes-battle/internal/army"
	"github.com/vovakirdan/heroes-battle/internal/battle"
	"github.com/vovakirdan/heroes-battle/internal/core"
)

// Printer writes one line per attack.
type Printer struct {
	w        io.Writer
	renderer *lipgloss.Renderer
	lines    int
}

// NewPrinter creates a printer writing to w. Colors are used only when w is a
// terminal that supports them.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, renderer: lipgloss.NewRenderer(w)}
}

// PrintBattleLog writes "attacker -> target" with the target's remaining health.
func (p *Printer) PrintBattleLog(attacker, target *army.Unit) {
	p.lines++
	from := style(p.renderer, SideColor(attacker.Side)).Bold(true).Render(attacker.Name)
	to := style(p.renderer, SideColor(target.Side)).Render(target.Name)

	status := fmt.Sprintf("hp %d", target.Health)
	if !target.Alive() {
		to = style(p.renderer, SideColor(target.Side)).Strikethrough(true).Render(target.Name)
		status = "defeated"
	}
	fmt.Fprintf(p.w, "%4d  %s -> %s  (%s)\n", p.lines, from, to, status)
}

// Summary describes the outcome of a battle.
func Summary(r *lipgloss.Renderer, res battle.Result, left, right *army.Army) string {
	title := r.NewStyle().Bold(true)

	var outcome string
	switch {
	case res.Stalemate:
		outcome = style(r, core.ColorYellow).Render("Stalemate")
	case res.Decided:
		outcome = style(r, SideColor(res.Winner)).Render(fmt.Sprintf("%s army wins", res.Winner))
	default:
		outcome = "No winner"
	}

	return fmt.Sprintf("%s %s\n  ticks:   %d\n  attacks: %d\n  left:    %d/%d alive (%d pts)\n  right:   %d/%d alive (%d pts)",
		title.Render("Result:"), outcome,
		res.Ticks, res.Attacks,
		len(left.Living()), len(left.Units), left.Points,
		len(right.Living()), len(right.Units), right.Points,
	)
}

var _ battle.Printer = (*Printer)(nil)
