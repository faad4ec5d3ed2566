package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/heroes-battle/internal/army"
	"github.com/vovakirdan/heroes-battle/internal/core"
	"github.com/vovakirdan/heroes-battle/internal/render"
)

var (
	flagPresetPoints int
	flagPresetSide   string
	flagPresetRender bool
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Print a generated army",
	Long: `Generate an army with the greedy preset (best attack per point first,
then best health per point) and print its units and positions.

Examples:
  heroes preset
  heroes preset --points 300 --seed 1
  heroes preset --side right --render`,
	Args: cobra.NoArgs,
	Run:  runPreset,
}

func init() {
	presetCmd.Flags().IntVar(&flagPresetPoints, "points", 0, "Army budget in points (0 = config max_points)")
	presetCmd.Flags().StringVar(&flagPresetSide, "side", "left", "Placement side: left, right")
	presetCmd.Flags().BoolVar(&flagPresetRender, "render", false, "Draw the army on the field")
}

func runPreset(cmd *cobra.Command, args []string) {
	logger := newLogger()
	cfg := loadConfig()

	side, err := parseSide(flagPresetSide)
	if err != nil {
		fail("%v", err)
	}
	points := flagPresetPoints
	if points <= 0 {
		points = cfg.Army.MaxPoints
	}

	a, err := generateArmy(cfg, side, points, core.NewRand(flagSeed))
	if err != nil {
		fail("%v", err)
	}
	logger.Debug("army generated", "side", side, "units", len(a.Units), "points", a.Points)

	if flagPresetRender {
		empty := army.New()
		board := army.NewBoard(cfg.BattleField(), a, empty)
		if side == army.SideRight {
			board = army.NewBoard(cfg.BattleField(), empty, a)
		}
		fmt.Println(render.Screen(lipgloss.NewRenderer(os.Stdout), render.Field(board)))
		fmt.Println()
	}

	fmt.Printf("%s army, %d units, %d/%d points:\n\n", side, len(a.Units), a.Points, points)
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  NAME\tHP\tATK\tCOST\tPOS")
	for _, u := range a.Units {
		fmt.Fprintf(tw, "  %s\t%d\t%d\t%d\t%s\n", u.Name, u.Health, u.BaseAttack, u.Cost, u.Pos())
	}
	tw.Flush()
}
