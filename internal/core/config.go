package core

// RuntimeConfig is passed to games at initialization. Games use it to adapt
// to the terminal size and to seed their RNG for deterministic play.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// GameState is the platform-visible status of a game, returned by
// Game.State() after every tick.
type GameState struct {
	Score     int  // Current round score
	RoundOver bool // The round has ended and a summary is available
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
