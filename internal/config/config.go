// Package config holds the Dino Runner simulation constants.
// Constants are fixed at build time: they are parsed from an embedded YAML
// document, with a hardcoded copy as the fallback.
package config

// RunnerConfig contains every tunable constant of the runner simulation.
type RunnerConfig struct {
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Speed     SpeedCurve      `yaml:"speed"`
	Actor     ActorConfig     `yaml:"actor"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Obstacles ObstacleSet     `yaml:"obstacles"`
	Collision CollisionConfig `yaml:"collision"`
}

// WorldConfig describes the visible world and the tick cadence.
type WorldConfig struct {
	Width          float64 `yaml:"width"`           // Obstacles spawn at this x
	TickRate       int     `yaml:"tick_rate"`       // Ticks per second
	GroundBaseline float64 `yaml:"ground_baseline"` // Resting y of the actor
}

// PhysicsConfig defines the actor's vertical kinematics.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`    // Subtracted from velocity every tick
	JumpForce float64 `yaml:"jump_force"` // Upward velocity set by a jump
}

// ActorConfig defines the player-controlled dinosaur.
type ActorConfig struct {
	X          float64 `yaml:"x"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	DuckFactor float64 `yaml:"duck_factor"` // Height multiplier while ducking
}

// DuckHeight returns the actor height while ducking.
func (a ActorConfig) DuckHeight() float64 {
	return a.Height * a.DuckFactor
}

// SpawnConfig bounds the random scroll distance between obstacle spawns.
type SpawnConfig struct {
	MinGap float64 `yaml:"min_gap"`
	MaxGap float64 `yaml:"max_gap"`
}

// ObstacleShape is the geometry of one obstacle variant.
type ObstacleShape struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Elevation float64 `yaml:"elevation"` // Bottom edge above the ground baseline
}

// ObstacleSet lists the shape of every obstacle variant.
type ObstacleSet struct {
	Cactus      ObstacleShape `yaml:"cactus"`
	Rock        ObstacleShape `yaml:"rock"`
	Pterodactyl ObstacleShape `yaml:"pterodactyl"`
}

// CollisionConfig defines hitbox forgiveness.
type CollisionConfig struct {
	Padding float64 `yaml:"padding"` // Trimmed from every side of both boxes
}
