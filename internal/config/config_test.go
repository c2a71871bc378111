package config

import (
	"errors"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultRunnerConfig() {
		t.Errorf("embedded YAML and DefaultRunnerConfig() disagree:\nyaml: %+v\ncode: %+v", cfg, DefaultRunnerConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
	}{
		{"zero gravity", func(c *RunnerConfig) { c.Physics.Gravity = 0 }},
		{"downward jump", func(c *RunnerConfig) { c.Physics.JumpForce = -12 }},
		{"inverted gap range", func(c *RunnerConfig) { c.Spawn.MinGap, c.Spawn.MaxGap = 1200, 800 }},
		{"max below initial speed", func(c *RunnerConfig) { c.Speed.Max = 1 }},
		{"duck factor above one", func(c *RunnerConfig) { c.Actor.DuckFactor = 1.5 }},
		{"zero tick rate", func(c *RunnerConfig) { c.World.TickRate = 0 }},
		{"negative padding", func(c *RunnerConfig) { c.Collision.Padding = -1 }},
		{"flat obstacle", func(c *RunnerConfig) { c.Obstacles.Rock.Height = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte("world: [")); err == nil {
		t.Error("Parse() should fail on malformed YAML")
	}
	if _, err := Parse([]byte("world:\n  width: 100\n")); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Parse() of a partial document should fail validation, got %v", err)
	}
}

func TestSpeedCurve(t *testing.T) {
	c := SpeedCurve{Initial: 5, Increment: 0.5, Max: 8}

	tests := []struct {
		score int
		want  float64
	}{
		{-3, 5},
		{0, 5},
		{1, 5.5},
		{4, 7},
		{6, 8},
		{100, 8},
	}
	for _, tc := range tests {
		if got := c.Speed(tc.score); got != tc.want {
			t.Errorf("Speed(%d) = %v, expected %v", tc.score, got, tc.want)
		}
	}

	prev := c.Speed(0)
	for score := 1; score < 50; score++ {
		s := c.Speed(score)
		if s < prev {
			t.Fatalf("Speed decreased at score %d: %v < %v", score, s, prev)
		}
		if s > c.Max {
			t.Fatalf("Speed(%d) = %v exceeds max %v", score, s, c.Max)
		}
		prev = s
	}

	if got := c.ScoreAtMax(); got != 6 {
		t.Errorf("ScoreAtMax() = %d, expected 6", got)
	}
	if got := (SpeedCurve{Initial: 5, Max: 5}).ScoreAtMax(); got != -1 {
		t.Errorf("flat curve ScoreAtMax() = %d, expected -1", got)
	}
}

func TestDuckHeight(t *testing.T) {
	a := ActorConfig{Height: 60, DuckFactor: 0.5}
	if got := a.DuckHeight(); got != 30 {
		t.Errorf("DuckHeight() = %v, expected 30", got)
	}
}
