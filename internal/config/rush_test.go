package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultParses(t *testing.T) {
	var cfg RushConfig
	if err := yaml.Unmarshal(defaultRushYAML, &cfg); err != nil {
		t.Fatalf("embedded default YAML should parse: %v", err)
	}

	want := DefaultRushConfig()
	if cfg.Area != want.Area {
		t.Errorf("area = %+v, expected %+v", cfg.Area, want.Area)
	}
	if cfg.Scoring != want.Scoring {
		t.Errorf("scoring = %+v, expected %+v", cfg.Scoring, want.Scoring)
	}
	if cfg.Round != want.Round {
		t.Errorf("round = %+v, expected %+v", cfg.Round, want.Round)
	}
}

func TestClampDuration(t *testing.T) {
	cfg := DefaultRushConfig()

	tests := []struct {
		in, want int
	}{
		{0, 1},    // below minimum; zero would divide by zero in the summary
		{-10, 1},  // negative
		{1, 1},    // at minimum
		{30, 30},  // in range
		{999, 300},
	}

	for _, tc := range tests {
		if got := cfg.ClampDuration(tc.in); got != tc.want {
			t.Errorf("ClampDuration(%d) = %d, expected %d", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeKeepsPlacementTerminating(t *testing.T) {
	cfg := DefaultRushConfig()
	cfg.Area = AreaConfig{Width: 50, Height: 50}
	cfg.Target = TargetConfig{Width: 200, Height: 200}
	cfg.Placement.Exclusion = 500

	cfg.Normalize()

	maxX := cfg.Area.Width - cfg.Target.Width
	maxY := cfg.Area.Height - cfg.Target.Height
	if maxX <= 0 || maxY <= 0 {
		t.Fatalf("target must fit the area after Normalize: area=%+v target=%+v", cfg.Area, cfg.Target)
	}
	if cfg.Placement.Exclusion >= maxX || cfg.Placement.Exclusion >= maxY {
		t.Errorf("exclusion %d must be strictly below the draw range (%d, %d)",
			cfg.Placement.Exclusion, maxX, maxY)
	}
}

func TestDurationForPreset(t *testing.T) {
	tests := []struct {
		preset DurationPreset
		want   int
	}{
		{PresetBlitz, 10},
		{PresetClassic, 30},
		{PresetMarathon, 60},
		{DurationPreset("bogus"), 0},
	}

	for _, tc := range tests {
		if got := DurationForPreset(tc.preset); got != tc.want {
			t.Errorf("DurationForPreset(%q) = %d, expected %d", tc.preset, got, tc.want)
		}
	}
}

func TestLoadRushCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rush.yaml")
	content := []byte("area:\n  width: 200\n  height: 180\nround:\n  default_duration: 15\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRush(path)
	if err != nil {
		t.Fatalf("LoadRush: %v", err)
	}
	if cfg.Area.Width != 200 || cfg.Area.Height != 180 {
		t.Errorf("area = %+v, expected 200x180", cfg.Area)
	}
	if cfg.Round.DefaultDuration != 15 {
		t.Errorf("default duration = %d, expected 15", cfg.Round.DefaultDuration)
	}
	// Unspecified sections are normalized to sane values
	if cfg.Scoring.BonusOneIn != 4 {
		t.Errorf("bonus odds should default to 4, got %d", cfg.Scoring.BonusOneIn)
	}
}

func TestLoadRushMissingCustomPath(t *testing.T) {
	if _, err := LoadRush("/nonexistent/rush.yaml"); err == nil {
		t.Error("LoadRush with a missing explicit path should fail")
	}
}
