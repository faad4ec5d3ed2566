// heroes is a turn-based battle simulator for two armies on a grid.
//
// Usage:
//
//	heroes simulate          - Generate two armies and fight a battle
//	heroes preset            - Print a generated army
//	heroes units             - List the unit catalogue and attack types
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible armies
//	--config <path>      - Use a custom heroes.yaml
//	--log-level <level>  - debug, info, warn, error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import programs to register attack types
	_ "github.com/vovakirdan/heroes-battle/internal/programs"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "heroes",
	Short: "Heroes - turn-based army battles on a grid",
	Long: `Heroes generates two armies from a unit catalogue, places them on
opposite sides of the battle field, and lets them fight until one side
has no living units left.

Available commands:
  simulate - Fight a battle and print the battle log
  preset   - Print a generated army
  units    - Show the unit catalogue

Examples:
  heroes simulate
  heroes simulate --seed 42 --render
  heroes simulate --points 800 --difficulty hard
  heroes preset --side right
  heroes units --config ./my-heroes.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom heroes.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(presetCmd)
	rootCmd.AddCommand(unitsCmd)
}
