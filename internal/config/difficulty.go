package config

import (
	"fmt"
	"math"
)

// DifficultyPreset scales the computer army's budget against the player's.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty validates a preset name. Empty means normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// PointsMultiplier returns the share of the base budget the computer army gets.
func PointsMultiplier(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.7
	case DifficultyHard:
		return 1.3
	default:
		return 1.0
	}
}

// ComputerPoints returns the computer army's budget for a preset.
func ComputerPoints(basePoints int, preset DifficultyPreset) int {
	return int(math.Round(float64(basePoints) * PointsMultiplier(preset)))
}
