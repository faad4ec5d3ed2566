package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/heroes-battle/internal/registry"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the unit catalogue",
	Long:  `Shows the unit types from the loaded configuration and the registered attack types.`,
	Args:  cobra.NoArgs,
	Run:   runUnits,
}

func runUnits(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	if len(cfg.Units) == 0 {
		fmt.Println("No units configured.")
		return
	}

	fmt.Println("Unit catalogue:")
	fmt.Println()

	// Calculate column widths
	maxTypeLen := 4 // "Type" header
	for _, u := range cfg.Units {
		if len(u.Type) > maxTypeLen {
			maxTypeLen = len(u.Type)
		}
	}

	fmt.Printf("  %-*s  %6s  %6s  %4s  %s\n", maxTypeLen, "Type", "Health", "Attack", "Cost", "Attack type")
	fmt.Printf("  %-*s  %6s  %6s  %4s  %s\n", maxTypeLen, "----", "------", "------", "----", "-----------")

	for _, u := range cfg.Units {
		attackType := u.AttackType
		if !registry.Exists(attackType) {
			attackType += " (unregistered)"
		}
		fmt.Printf("  %-*s  %6d  %6d  %4d  %s\n", maxTypeLen, u.Type, u.Health, u.BaseAttack, u.Cost, attackType)
	}

	fmt.Println()
	fmt.Printf("Attack types: %v\n", registry.List())
	fmt.Println("Run 'heroes simulate' to fight a battle.")
}
