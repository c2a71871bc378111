package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded runner constants.
// It mirrors defaults/runner.yaml and is used if the embedded copy fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:          400,
			TickRate:       60,
			GroundBaseline: 0,
		},
		Physics: PhysicsConfig{
			Gravity:   0.6,
			JumpForce: 12,
		},
		Speed: SpeedCurve{
			Initial:   5,
			Increment: 0.001,
			Max:       15,
		},
		Actor: ActorConfig{
			X:          50,
			Width:      60,
			Height:     60,
			DuckFactor: 0.6,
		},
		Spawn: SpawnConfig{
			MinGap: 800,
			MaxGap: 1200,
		},
		Obstacles: ObstacleSet{
			Cactus:      ObstacleShape{Width: 40, Height: 50, Elevation: 0},
			Rock:        ObstacleShape{Width: 40, Height: 50, Elevation: 0},
			Pterodactyl: ObstacleShape{Width: 60, Height: 40, Elevation: 40},
		},
		Collision: CollisionConfig{
			Padding: 5,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
