package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/heroes-battle/internal/army"
	"github.com/vovakirdan/heroes-battle/internal/battle"
	"github.com/vovakirdan/heroes-battle/internal/config"
	"github.com/vovakirdan/heroes-battle/internal/core"
	"github.com/vovakirdan/heroes-battle/internal/pathfind"
	"github.com/vovakirdan/heroes-battle/internal/registry"
	"github.com/vovakirdan/heroes-battle/internal/render"
	"github.com/vovakirdan/heroes-battle/internal/targeting"
)

var (
	flagPoints     int
	flagDifficulty string
	flagRender     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Fight a battle between two generated armies",
	Long: `Generate the player's army (left) and the computer's army (right)
from the unit catalogue and run the battle until one side is destroyed.

Each tick every living unit acts once, strongest attack first. Melee
units strike the nearest enemy they can reach, ranged units shoot the
weakest visible enemy.

Difficulty options scale the computer's budget:
  easy   - 70% of the player's points
  normal - same points as the player
  hard   - 130% of the player's points

Examples:
  heroes simulate
  heroes simulate --points 500 --seed 7
  heroes simulate --difficulty hard --render`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagPoints, "points", 0, "Army budget in points (0 = config max_points)")
	simulateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
	simulateCmd.Flags().BoolVar(&flagRender, "render", false, "Draw the field before and after the battle")
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger := newLogger()
	cfg := loadConfig()

	difficulty, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fail("%v", err)
	}

	points := flagPoints
	if points <= 0 {
		points = cfg.Army.MaxPoints
	}

	rng := core.NewRand(flagSeed)
	left, err := generateArmy(cfg, army.SideLeft, points, rng)
	if err != nil {
		fail("%v", err)
	}
	right, err := generateArmy(cfg, army.SideRight, config.ComputerPoints(points, difficulty), rng)
	if err != nil {
		fail("%v", err)
	}

	field := cfg.BattleField()
	board := army.NewBoard(field, left, right)
	env := registry.Env{
		Board:   board,
		Targets: targeting.NewFinder(field),
		Paths:   pathfind.NewFinder(field),
		Logger:  logger,
	}
	if err := registry.Arm(env); err != nil {
		fail("%v", err)
	}

	logger.Info("battle starting",
		"left", len(left.Units), "left_points", left.Points,
		"right", len(right.Units), "right_points", right.Points,
		"difficulty", difficulty)

	renderer := lipgloss.NewRenderer(os.Stdout)
	if flagRender {
		printField(renderer, board)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sim := battle.New(render.NewPrinter(os.Stdout),
		battle.WithLogger(logger),
		battle.WithMaxTicks(cfg.Battle.MaxTicks),
	)
	res, err := sim.Run(ctx, left, right)
	if err != nil {
		if errors.Is(err, battle.ErrInterrupted) {
			fmt.Fprintln(os.Stderr, "Battle interrupted.")
			os.Exit(130)
		}
		fail("%v", err)
	}

	if flagRender {
		printField(renderer, board)
	}
	fmt.Println()
	fmt.Println(render.Summary(renderer, res, left, right))
}

// printField draws the board if it fits in the terminal.
func printField(r *lipgloss.Renderer, b *army.Board) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w < b.Field.Width+2 {
			fmt.Fprintf(os.Stderr, "Terminal too narrow to draw the field (%d < %d columns)\n", w, b.Field.Width+2)
			return
		}
	}
	fmt.Println(render.Screen(r, render.Field(b)))
	fmt.Println()
}
