package core

// RuntimeConfig carries the per-run values a driver hands to the simulation.
// WorldWidth replaces any ambient screen-size state: obstacles spawn at the
// right edge of the world it describes.
type RuntimeConfig struct {
	WorldWidth float64 // Width of the visible world in world units
	TickRate   int     // Simulation ticks per second (default 60)
	Seed       int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		WorldWidth: 400,
		TickRate:   60,
		Seed:       0, // 0 means seed from the clock in the platform layer
	}
}

// GameState is the summary the platform reads after every tick.
type GameState struct {
	Score     int
	HighScore int
	GameOver  bool
	Paused    bool
}
