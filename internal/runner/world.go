// Package runner implements the Dino Runner simulation: a fixed-timestep,
// side-scrolling world where the player jumps over or ducks under obstacles.
//
// The simulation is a pure function over World values. A Simulation holds
// the build-time constants and the world width; Step takes a World and the
// tick's input and returns the next World without touching the old one.
// The only outside dependency is a RandSource for spawn decisions, so a
// fixed seed and input sequence always replays the same run.
package runner

import (
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// ObstacleType identifies an obstacle variant.
type ObstacleType int

const (
	Cactus      ObstacleType = iota // Ground hazard A
	Rock                            // Ground hazard B
	Pterodactyl                     // Flying hazard, can be ducked under

	obstacleTypeCount = 3
)

// String returns the variant name.
func (t ObstacleType) String() string {
	switch t {
	case Cactus:
		return "cactus"
	case Rock:
		return "rock"
	case Pterodactyl:
		return "pterodactyl"
	default:
		return "unknown"
	}
}

// Actor is the player-controlled dinosaur.
// X is fixed; the world scrolls around it. Y is the elevation of its feet.
type Actor struct {
	X, Y          float64
	Width, Height float64
	VelocityY     float64 // Positive is upward
	IsJumping     bool
	IsDucking     bool
}

// Box returns the actor's bounding box.
func (a Actor) Box() core.Box {
	return core.NewBox(a.X, a.Y, a.Width, a.Height)
}

// Obstacle is a scrolling hazard.
type Obstacle struct {
	X, Y          float64 // Left edge, bottom edge
	Width, Height float64
	Type          ObstacleType
	Passed        bool // Set once, when the trailing edge clears the actor
}

// Box returns the obstacle's bounding box.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.Width, o.Height)
}

// Right returns the x-coordinate of the trailing edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// World is one snapshot of a run.
type World struct {
	Actor     Actor
	Obstacles []Obstacle // Spawn order, oldest first

	// DistanceSinceSpawn accumulates scroll distance since the last spawn.
	DistanceSinceSpawn float64

	Score      int
	HighScore  int // Best completed score in this session; survives Reset
	Speed      float64
	Tick       int // Steps taken since the last reset
	IsGameOver bool
	IsPaused   bool
}

// Clone returns a copy that shares no memory with w.
func (w World) Clone() World {
	out := w
	if w.Obstacles != nil {
		out.Obstacles = make([]Obstacle, len(w.Obstacles))
		copy(out.Obstacles, w.Obstacles)
	}
	return out
}

// Phase is the session state derived from a World.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Phase reports where the world sits in the session state machine:
// Idle -> Running <-> Paused, Running -> GameOver -> (reset) -> Idle.
func (w World) Phase() Phase {
	switch {
	case w.IsGameOver:
		return PhaseGameOver
	case w.IsPaused:
		return PhasePaused
	case w.Tick == 0:
		return PhaseIdle
	default:
		return PhaseRunning
	}
}

// Simulation holds the constants a run is evaluated against.
// It carries no mutable state and is safe to share.
type Simulation struct {
	cfg        config.RunnerConfig
	worldWidth float64
}

// NewSimulation creates a simulation for the given constants.
// worldWidth overrides cfg.World.Width when positive.
func NewSimulation(cfg config.RunnerConfig, worldWidth float64) *Simulation {
	if worldWidth <= 0 {
		worldWidth = cfg.World.Width
	}
	return &Simulation{cfg: cfg, worldWidth: worldWidth}
}

// Config returns the simulation constants.
func (s *Simulation) Config() config.RunnerConfig {
	return s.cfg
}

// WorldWidth returns the x at which obstacles spawn.
func (s *Simulation) WorldWidth() float64 {
	return s.worldWidth
}

// NewWorld returns the initial world: actor standing on the ground,
// no obstacles, score zero, initial speed.
func (s *Simulation) NewWorld() World {
	return World{
		Actor: Actor{
			X:      s.cfg.Actor.X,
			Y:      s.cfg.World.GroundBaseline,
			Width:  s.cfg.Actor.Width,
			Height: s.cfg.Actor.Height,
		},
		Speed: s.cfg.Speed.Initial,
	}
}

// Reset returns a fresh world that keeps w's high score.
// Calling it twice in a row yields the same world.
func (s *Simulation) Reset(w World) World {
	fresh := s.NewWorld()
	fresh.HighScore = w.HighScore
	return fresh
}

// TogglePause flips the paused flag. Nothing else changes.
// A finished run stays finished: only Reset leaves game over.
func (s *Simulation) TogglePause(w World) World {
	if w.IsGameOver {
		return w
	}
	w.IsPaused = !w.IsPaused
	return w
}
