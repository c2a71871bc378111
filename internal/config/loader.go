package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when constants violate simulation invariants.
var ErrInvalidConfig = errors.New("invalid runner config")

// Load returns the build-time runner constants.
// The embedded YAML is authoritative; if it cannot be parsed or fails
// validation the hardcoded defaults are returned together with the error.
func Load() (RunnerConfig, error) {
	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), err
	}
	return cfg, nil
}

// MustLoad is Load for callers that cannot act on the error.
func MustLoad() RunnerConfig {
	cfg, _ := Load()
	return cfg
}

// Parse decodes and validates a runner config document.
func Parse(data []byte) (RunnerConfig, error) {
	var cfg RunnerConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse runner config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the constants keep the simulation well-defined.
func (c RunnerConfig) Validate() error {
	var problems []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0, "world.width must be positive, got %v", c.World.Width)
	check(c.World.TickRate > 0, "world.tick_rate must be positive, got %d", c.World.TickRate)
	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.JumpForce > 0, "physics.jump_force must be positive, got %v", c.Physics.JumpForce)
	check(c.Speed.Initial > 0, "speed.initial must be positive, got %v", c.Speed.Initial)
	check(c.Speed.Increment >= 0, "speed.increment must not be negative, got %v", c.Speed.Increment)
	check(c.Speed.Max >= c.Speed.Initial, "speed.max (%v) must be >= speed.initial (%v)", c.Speed.Max, c.Speed.Initial)
	check(c.Actor.Width > 0 && c.Actor.Height > 0, "actor size must be positive, got %vx%v", c.Actor.Width, c.Actor.Height)
	check(c.Actor.DuckFactor > 0 && c.Actor.DuckFactor <= 1, "actor.duck_factor must be in (0, 1], got %v", c.Actor.DuckFactor)
	check(c.Spawn.MinGap > 0, "spawn.min_gap must be positive, got %v", c.Spawn.MinGap)
	check(c.Spawn.MaxGap >= c.Spawn.MinGap, "spawn.max_gap (%v) must be >= spawn.min_gap (%v)", c.Spawn.MaxGap, c.Spawn.MinGap)
	check(c.Collision.Padding >= 0, "collision.padding must not be negative, got %v", c.Collision.Padding)

	shapes := []struct {
		name  string
		shape ObstacleShape
	}{
		{"cactus", c.Obstacles.Cactus},
		{"rock", c.Obstacles.Rock},
		{"pterodactyl", c.Obstacles.Pterodactyl},
	}
	for _, s := range shapes {
		name, shape := s.name, s.shape
		check(shape.Width > 0 && shape.Height > 0, "obstacles.%s size must be positive, got %vx%v", name, shape.Width, shape.Height)
		check(shape.Elevation >= 0, "obstacles.%s.elevation must not be negative, got %v", name, shape.Elevation)
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("config: %w: %w", ErrInvalidConfig, errors.Join(problems...))
}
