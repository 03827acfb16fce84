// Package config provides YAML-based game configuration with embedded
// defaults and duration presets.
package config

// RushConfig contains all tunables for the Target Rush game. Positions and
// sizes are in play-area units; the presentation layer scales them to
// terminal cells.
type RushConfig struct {
	Area      AreaConfig      `yaml:"area"`
	Target    TargetConfig    `yaml:"target"`
	Placement PlacementConfig `yaml:"placement"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Round     RoundConfig     `yaml:"round"`
	Cursor    CursorConfig    `yaml:"cursor"`
}

// AreaConfig is the play-area size in units.
type AreaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TargetConfig is the clickable target size in units. The decoy uses the
// same dimensions.
type TargetConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlacementConfig controls decoy placement.
type PlacementConfig struct {
	// Exclusion is the side of the square anchored at the target's top-left
	// corner that the decoy position may not fall into.
	Exclusion int `yaml:"exclusion"`
	// MaxAttempts caps the rejection-sampling loop.
	MaxAttempts int `yaml:"max_attempts"`
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	NormalPoints int `yaml:"normal_points"`
	BonusPoints  int `yaml:"bonus_points"`
	MissPenalty  int `yaml:"miss_penalty"`
	// BonusOneIn is the bonus odds: one draw in N produces a bonus target.
	BonusOneIn int `yaml:"bonus_one_in"`
}

// RoundConfig defines round duration limits in seconds.
type RoundConfig struct {
	DefaultDuration int `yaml:"default_duration"`
	MinDuration     int `yaml:"min_duration"`
	MaxDuration     int `yaml:"max_duration"`
	// DurationStep is the increment used by the start-screen adjustment.
	DurationStep int `yaml:"duration_step"`
}

// CursorConfig controls keyboard play.
type CursorConfig struct {
	// Step is how many units the cursor moves per key press.
	Step int `yaml:"step"`
}

// DurationPreset is a named round length.
type DurationPreset string

const (
	PresetBlitz    DurationPreset = "blitz"
	PresetClassic  DurationPreset = "classic"
	PresetMarathon DurationPreset = "marathon"
)

// DurationForPreset returns the round length for a preset, or 0 when the
// preset is unknown.
func DurationForPreset(preset DurationPreset) int {
	switch preset {
	case PresetBlitz:
		return 10
	case PresetClassic:
		return 30
	case PresetMarathon:
		return 60
	default:
		return 0
	}
}

// ClampDuration restricts a round duration to the configured limits. A
// duration below one second would divide by zero in the points-per-second
// summary, so the lower bound is never below 1.
func (c RushConfig) ClampDuration(secs int) int {
	min := c.Round.MinDuration
	if min < 1 {
		min = 1
	}
	max := c.Round.MaxDuration
	if max < min {
		max = min
	}
	if secs < min {
		return min
	}
	if secs > max {
		return max
	}
	return secs
}

// Normalize fixes inconsistent values so the placement loop always
// terminates: the target must fit the area and the exclusion square must be
// strictly smaller than the draw range.
func (c *RushConfig) Normalize() {
	if c.Area.Width < 40 {
		c.Area.Width = 40
	}
	if c.Area.Height < 40 {
		c.Area.Height = 40
	}
	if c.Target.Width < 1 {
		c.Target.Width = 1
	}
	if c.Target.Height < 1 {
		c.Target.Height = 1
	}
	if c.Target.Width > c.Area.Width/2 {
		c.Target.Width = c.Area.Width / 2
	}
	if c.Target.Height > c.Area.Height/2 {
		c.Target.Height = c.Area.Height / 2
	}

	maxX := c.Area.Width - c.Target.Width
	maxY := c.Area.Height - c.Target.Height
	limit := maxX
	if maxY < limit {
		limit = maxY
	}
	if c.Placement.Exclusion < 0 {
		c.Placement.Exclusion = 0
	}
	if c.Placement.Exclusion >= limit {
		c.Placement.Exclusion = limit - 1
	}
	if c.Placement.MaxAttempts < 1 {
		c.Placement.MaxAttempts = 1000
	}

	if c.Scoring.NormalPoints < 1 {
		c.Scoring.NormalPoints = 1
	}
	if c.Scoring.BonusPoints < c.Scoring.NormalPoints {
		c.Scoring.BonusPoints = c.Scoring.NormalPoints
	}
	if c.Scoring.MissPenalty < 0 {
		c.Scoring.MissPenalty = 0
	}
	if c.Scoring.BonusOneIn < 1 {
		c.Scoring.BonusOneIn = 4
	}

	if c.Round.MinDuration < 1 {
		c.Round.MinDuration = 1
	}
	if c.Round.MaxDuration < 1 {
		c.Round.MaxDuration = 300
	}
	if c.Round.MaxDuration < c.Round.MinDuration {
		c.Round.MaxDuration = c.Round.MinDuration
	}
	c.Round.DefaultDuration = c.ClampDuration(c.Round.DefaultDuration)
	if c.Round.DurationStep < 1 {
		c.Round.DurationStep = 5
	}

	if c.Cursor.Step < 1 {
		c.Cursor.Step = 1
	}
}
