package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/heroes-battle/internal/army"
	"github.com/vovakirdan/heroes-battle/internal/core"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig() invalid: %v", err)
	}
	if cfg.BattleField() != core.DefaultField {
		t.Errorf("BattleField() = %+v, expected %+v", cfg.BattleField(), core.DefaultField)
	}
	if cfg.PlacementZone() != core.DefaultPlacementZone {
		t.Errorf("PlacementZone() = %+v, expected %+v", cfg.PlacementZone(), core.DefaultPlacementZone)
	}
	if cfg.PlacementOffset(army.SideLeft) != 0 || cfg.PlacementOffset(army.SideRight) != 24 {
		t.Errorf("unexpected placement offsets %+v", cfg.Placement)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	def := DefaultConfig()
	if cfg.Field != def.Field || cfg.Placement != def.Placement || cfg.Army != def.Army || cfg.Battle != def.Battle {
		t.Errorf("embedded config differs from DefaultConfig():\n%+v\n%+v", cfg, def)
	}
	if len(cfg.Units) != len(def.Units) {
		t.Fatalf("embedded config has %d units, expected %d", len(cfg.Units), len(def.Units))
	}
	for i := range def.Units {
		if cfg.Units[i].Type != def.Units[i].Type || cfg.Units[i].Cost != def.Units[i].Cost {
			t.Errorf("unit %d: %+v vs %+v", i, cfg.Units[i], def.Units[i])
		}
	}
	if len(DefaultYAML()) == 0 {
		t.Error("DefaultYAML() should not be empty")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := `
field: {width: 10, height: 5}
placement: {width: 2, height: 5, left_offset: 0, right_offset: 8}
army: {max_points: 100, max_units_per_type: 3}
battle: {max_ticks: 50}
units:
  - type: Scout
    health: 10
    base_attack: 3
    cost: 4
    attack_type: ranged
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.BattleField() != (core.Field{Width: 10, Height: 5}) {
		t.Errorf("BattleField() = %+v", cfg.BattleField())
	}
	if cfg.Battle.MaxTicks != 50 || cfg.Army.MaxUnitsPerType != 3 {
		t.Errorf("unexpected config %+v", cfg)
	}

	cat := cfg.Catalogue()
	if len(cat) != 1 || cat[0].Type != "Scout" || cat[0].AttackType != "ranged" || cat[0].Health != 10 {
		t.Errorf("Catalogue() = %+v", cat)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("field: [unclosed"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(broken); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Errorf("expected parse error, got %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("field: {width: 0, height: 5}"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(invalid); err == nil || !strings.Contains(err.Error(), "invalid") {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfgDir := filepath.Join(home, ".heroes", "configs")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	cfg := DefaultConfig()
	data := strings.Replace(string(DefaultYAML()), "max_points: 1500", "max_points: 700", 1)
	if err := os.WriteFile(filepath.Join(cfgDir, "heroes.yaml"), []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	loaded, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Army.MaxPoints != 700 {
		t.Errorf("MaxPoints = %d, expected user override 700 (default %d)", loaded.Army.MaxPoints, cfg.Army.MaxPoints)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errSub string
	}{
		{"zero field", func(c *Config) { c.Field.Width = 0 }, "field"},
		{"zero placement", func(c *Config) { c.Placement.Height = 0 }, "placement"},
		{"placement too tall", func(c *Config) { c.Placement.Height = c.Field.Height + 1 }, "height"},
		{"right zone off field", func(c *Config) { c.Placement.RightOffset = 25 }, "column 25"},
		{"negative left offset", func(c *Config) { c.Placement.LeftOffset = -1 }, "column -1"},
		{"negative ticks", func(c *Config) { c.Battle.MaxTicks = -1 }, "max_ticks"},
		{"negative points", func(c *Config) { c.Army.MaxPoints = -1 }, "max_points"},
		{"duplicate type", func(c *Config) { c.Units = append(c.Units, c.Units[0]) }, "duplicate"},
		{"missing type", func(c *Config) { c.Units[0].Type = "" }, "no type"},
		{"zero cost", func(c *Config) { c.Units[1].Cost = 0 }, "cost"},
		{"zero health", func(c *Config) { c.Units[1].Health = 0 }, "health"},
		{"missing attack type", func(c *Config) { c.Units[2].AttackType = "" }, "attack type"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.errSub) {
				t.Errorf("error %q should mention %q", err, tc.errSub)
			}
		})
	}
}

func TestDifficulty(t *testing.T) {
	tests := []struct {
		name     string
		expected DifficultyPreset
		points   int
	}{
		{"", DifficultyNormal, 1500},
		{"easy", DifficultyEasy, 1050},
		{"normal", DifficultyNormal, 1500},
		{"hard", DifficultyHard, 1950},
	}

	for _, tc := range tests {
		preset, err := ParseDifficulty(tc.name)
		if err != nil {
			t.Fatalf("ParseDifficulty(%q) error: %v", tc.name, err)
		}
		if preset != tc.expected {
			t.Errorf("ParseDifficulty(%q) = %s, expected %s", tc.name, preset, tc.expected)
		}
		if got := ComputerPoints(1500, preset); got != tc.points {
			t.Errorf("ComputerPoints(1500, %s) = %d, expected %d", preset, got, tc.points)
		}
	}

	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}
