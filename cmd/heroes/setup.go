package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/heroes-battle/internal/army"
	"github.com/vovakirdan/heroes-battle/internal/config"
	"github.com/vovakirdan/heroes-battle/internal/preset"
)

// fail prints the error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "heroes",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fail("invalid log level %q", flagLogLevel)
	}
	logger.SetLevel(level)
	return logger
}

func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	return cfg
}

// generateArmy builds one side's army from the catalogue.
func generateArmy(cfg config.Config, side army.Side, points int, rng *rand.Rand) (*army.Army, error) {
	zone := preset.Zone{Field: cfg.PlacementZone(), OffsetX: cfg.PlacementOffset(side)}
	gen := preset.New(zone, cfg.Army.MaxUnitsPerType, rng)

	a, err := gen.Generate(cfg.Catalogue(), points)
	if err != nil {
		return nil, fmt.Errorf("%s army: %w", side, err)
	}
	a.SetSide(side)
	return a, nil
}

func parseSide(name string) (army.Side, error) {
	switch name {
	case "left", "":
		return army.SideLeft, nil
	case "right":
		return army.SideRight, nil
	default:
		return army.SideNone, fmt.Errorf("unknown side %q (valid: left, right)", name)
	}
}
