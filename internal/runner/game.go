package runner

import (
	"math/rand"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// Game owns one World and the seeded random source that drives it.
// It translates per-tick InputFrames into Simulation calls and is the
// single writer of its world; callers must not use it from more than one
// goroutine at a time.
type Game struct {
	sim   *Simulation
	world World
	rng   *rand.Rand
	seed  int64
}

// NewGame creates a game for the given constants and runtime settings.
func NewGame(cfg config.RunnerConfig, rt core.RuntimeConfig) *Game {
	g := &Game{
		sim: NewSimulation(cfg, rt.WorldWidth),
	}
	g.world = g.sim.NewWorld()
	g.reseed(rt.Seed)
	return g
}

// ID returns the identifier runs are recorded under.
func (g *Game) ID() string {
	return "dino"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Dino Runner"
}

func (g *Game) reseed(seed int64) {
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))
}

// Simulation returns the simulation the game runs on.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Seed returns the seed the current run was started with.
func (g *Game) Seed() int64 {
	return g.seed
}

// Reset starts a new run with the given seed, keeping the high score.
func (g *Game) Reset(seed int64) {
	g.world = g.sim.Reset(g.world)
	g.reseed(seed)
}

// TogglePause pauses or resumes the run.
func (g *Game) TogglePause() {
	g.world = g.sim.TogglePause(g.world)
}

// Step applies one InputFrame and advances the world by a tick.
// Restart and Pause are edge actions handled before the tick; a paused or
// finished world does not advance. Duck is level-triggered: the frame must
// carry it on every tick the input is held.
func (g *Game) Step(in core.InputFrame) core.GameState {
	if in.Has(core.ActionRestart) {
		g.world = g.sim.Reset(g.world)
		return g.State()
	}
	if in.Has(core.ActionPause) {
		g.TogglePause()
	}
	if g.world.IsPaused || g.world.IsGameOver {
		return g.State()
	}

	g.world = g.sim.Step(g.world, Input{
		Jump: in.Has(core.ActionJump),
		Duck: in.Has(core.ActionDuck),
	}, g.rng)
	return g.State()
}

// World returns a copy of the current world, safe to hand to readers.
func (g *Game) World() World {
	return g.world.Clone()
}

// State returns the summary of the current world.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.world.Score,
		HighScore: g.world.HighScore,
		GameOver:  g.world.IsGameOver,
		Paused:    g.world.IsPaused,
	}
}
