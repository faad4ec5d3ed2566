// Package render turns battles into terminal output: a styled battle log,
// field snapshots, and a result summary.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/heroes-battle/internal/army"
	"github.com/vovakirdan/heroes-battle/internal/core"
)

// palette maps core.Color to lipgloss colors.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:    lipgloss.Color("1"),
	core.ColorGreen:  lipgloss.Color("2"),
	core.ColorYellow: lipgloss.Color("3"),
	core.ColorBlue:   lipgloss.Color("4"),
	core.ColorCyan:   lipgloss.Color("6"),
	core.ColorGray:   lipgloss.Color("245"),
}

// SideColor returns the color a side is drawn with.
func SideColor(s army.Side) core.Color {
	if s == army.SideLeft {
		return core.ColorBlue
	}
	return core.ColorRed
}

func style(r *lipgloss.Renderer, c core.Color) lipgloss.Style {
	st := r.NewStyle()
	if fg, ok := palette[c]; ok {
		st = st.Foreground(fg)
	}
	return st
}

// Screen converts a Screen buffer to a styled string.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func Screen(r *lipgloss.Renderer, s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(style(r, startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// Field draws the board inside a box: one character per cell, living units
// shown by the first letter of their type in their side's color. The top
// border carries the living unit count of each side.
func Field(b *army.Board) *core.Screen {
	f := b.Field
	s := core.NewScreen(f.Width+2, f.Height+2)
	for y := 1; y <= f.Height; y++ {
		for x := 1; x <= f.Width; x++ {
			s.SetColored(x, y, '·', core.ColorGray)
		}
	}
	s.DrawBox(0, 0, f.Width+2, f.Height+2)
	if header := fmt.Sprintf(" %d vs %d ", len(b.Left.Living()), len(b.Right.Living())); len(header)+4 <= s.Width() {
		s.DrawText(2, 0, header)
	}

	for _, u := range b.Living() {
		if !f.InBounds(u.Pos()) {
			continue
		}
		s.SetColored(u.X+1, u.Y+1, glyph(u), SideColor(u.Side))
	}
	return s
}

func glyph(u *army.Unit) rune {
	for _, r := range u.Type {
		return r
	}
	return '?'
}
