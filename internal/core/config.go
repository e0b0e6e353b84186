package core

// RuntimeConfig is passed to the game session at initialization.
// The session uses it to adapt to the terminal size and to seed its RNG
// for deterministic simulation in tests.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks a time-based seed
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState communicates session status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the session has ended
}

// StepResult is returned by Session.Step after each simulation tick.
type StepResult struct {
	State GameState
}
