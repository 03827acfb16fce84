package config

import (
	_ "embed"
)

//go:embed defaults/rush.yaml
var defaultRushYAML []byte

// DefaultRushConfig returns the hardcoded Target Rush configuration, used
// when the embedded YAML cannot be parsed.
func DefaultRushConfig() RushConfig {
	return RushConfig{
		Area: AreaConfig{
			Width:  421,
			Height: 395,
		},
		Target: TargetConfig{
			Width:  60,
			Height: 32,
		},
		Placement: PlacementConfig{
			Exclusion:   25,
			MaxAttempts: 1000,
		},
		Scoring: ScoringConfig{
			NormalPoints: 1,
			BonusPoints:  2,
			MissPenalty:  1,
			BonusOneIn:   4,
		},
		Round: RoundConfig{
			DefaultDuration: 30,
			MinDuration:     1,
			MaxDuration:     300,
			DurationStep:    5,
		},
		Cursor: CursorConfig{
			Step: 12,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "rush":
		return defaultRushYAML
	default:
		return nil
	}
}
