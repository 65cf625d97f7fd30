package core

// RuntimeConfig contains per-run settings passed to the game at reset.
// World dimensions and tuning live in config.PenguinsConfig.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means use current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the externally visible summary of the game.
type GameState struct {
	Score     int // Collected followers, never decreases within a run
	Level     int // Current level, starts at 1
	Remaining int // Followers still active in the current level
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State        GameState
	Collected    int  // Followers collected during this tick
	LevelChanged bool // A level transition happened during this tick
	Restarted    bool // The tick began with a restart
}
