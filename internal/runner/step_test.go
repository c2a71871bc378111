package runner

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/dino-runner/internal/config"
)

// scriptedRand returns the same draw every time.
type scriptedRand struct {
	f float64
	n int
}

func (r scriptedRand) Float64() float64 { return r.f }
func (r scriptedRand) Intn(n int) int   { return r.n % n }

// noSpawn keeps the gap at its maximum so nothing spawns for a long while.
var noSpawn = scriptedRand{f: 0.999}

func newTestSim() *Simulation {
	return NewSimulation(config.DefaultRunnerConfig(), 0)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewWorld(t *testing.T) {
	sim := newTestSim()
	w := sim.NewWorld()

	if w.Actor.X != 50 || w.Actor.Y != 0 {
		t.Errorf("actor should start at (50, 0), got (%v, %v)", w.Actor.X, w.Actor.Y)
	}
	if w.Actor.Width != 60 || w.Actor.Height != 60 {
		t.Errorf("actor should be 60x60, got %vx%v", w.Actor.Width, w.Actor.Height)
	}
	if w.Speed != 5 {
		t.Errorf("speed should start at 5, got %v", w.Speed)
	}
	if len(w.Obstacles) != 0 || w.Score != 0 || w.IsGameOver || w.IsPaused {
		t.Errorf("new world should be empty and running, got %+v", w)
	}
	if w.Phase() != PhaseIdle {
		t.Errorf("new world phase = %v, expected idle", w.Phase())
	}
}

func TestJumpLeavesGround(t *testing.T) {
	sim := newTestSim()
	w := sim.RequestJump(sim.NewWorld())

	if !w.Actor.IsJumping {
		t.Fatal("RequestJump should set IsJumping")
	}
	if w.Actor.VelocityY != sim.Config().Physics.JumpForce {
		t.Fatalf("RequestJump velocity = %v, expected %v", w.Actor.VelocityY, sim.Config().Physics.JumpForce)
	}

	w = sim.Step(w, Input{}, noSpawn)
	if !w.Actor.IsJumping {
		t.Error("actor should still be jumping after one tick")
	}
	if w.Actor.Y <= 0 {
		t.Errorf("actor should be above the ground baseline, y = %v", w.Actor.Y)
	}
}

func TestJumpViaInput(t *testing.T) {
	sim := newTestSim()
	w := sim.Step(sim.NewWorld(), Input{Jump: true}, noSpawn)

	if !w.Actor.IsJumping || w.Actor.Y <= 0 {
		t.Errorf("jump input should lift the actor, got %+v", w.Actor)
	}
}

func TestRequestJumpIgnored(t *testing.T) {
	sim := newTestSim()

	airborne := sim.Step(sim.RequestJump(sim.NewWorld()), Input{}, noSpawn)
	if got := sim.RequestJump(airborne); !reflect.DeepEqual(got, airborne) {
		t.Errorf("RequestJump while jumping changed the world:\nbefore %+v\nafter  %+v", airborne, got)
	}

	ducking := sim.SetDucking(sim.NewWorld(), true)
	if got := sim.RequestJump(ducking); !reflect.DeepEqual(got, ducking) {
		t.Errorf("RequestJump while ducking changed the world:\nbefore %+v\nafter  %+v", ducking, got)
	}

	paused := sim.TogglePause(sim.NewWorld())
	if got := sim.RequestJump(paused); !reflect.DeepEqual(got, paused) {
		t.Error("RequestJump while paused changed the world")
	}
}

func TestDuck(t *testing.T) {
	sim := newTestSim()
	w := sim.SetDucking(sim.NewWorld(), true)

	if !w.Actor.IsDucking {
		t.Fatal("SetDucking(true) should set IsDucking")
	}
	if !approx(w.Actor.Height, 36) {
		t.Errorf("ducking height = %v, expected 36", w.Actor.Height)
	}

	w = sim.SetDucking(w, false)
	if w.Actor.IsDucking || w.Actor.Height != 60 {
		t.Errorf("releasing duck should restore the actor, got %+v", w.Actor)
	}
}

func TestDuckIgnoredWhileJumping(t *testing.T) {
	sim := newTestSim()
	airborne := sim.Step(sim.RequestJump(sim.NewWorld()), Input{}, noSpawn)

	if got := sim.SetDucking(airborne, true); !reflect.DeepEqual(got, airborne) {
		t.Errorf("SetDucking while jumping changed the world:\nbefore %+v\nafter  %+v", airborne, got)
	}
}

func TestDuckAndJumpSameTick(t *testing.T) {
	sim := newTestSim()
	w := sim.Step(sim.NewWorld(), Input{Jump: true, Duck: true}, noSpawn)

	if w.Actor.IsJumping {
		t.Error("jump should be ignored when duck is held in the same tick")
	}
	if !w.Actor.IsDucking || w.Actor.Y != 0 {
		t.Errorf("actor should be ducking on the ground, got %+v", w.Actor)
	}
}

func TestActorNeverBelowGround(t *testing.T) {
	sim := newTestSim()
	w := sim.NewWorld()

	for tick := 0; tick < 600; tick++ {
		in := Input{Jump: tick%45 == 0}
		w = sim.Step(w, in, noSpawn)

		if w.Actor.Y < 0 {
			t.Fatalf("tick %d: actor below ground, y = %v", tick, w.Actor.Y)
		}
		if w.Actor.Y == 0 {
			if w.Actor.VelocityY != 0 {
				t.Fatalf("tick %d: grounded actor has velocity %v", tick, w.Actor.VelocityY)
			}
			if w.Actor.IsJumping {
				t.Fatalf("tick %d: grounded actor still jumping", tick)
			}
		}
	}
}

func TestJumpLandsAgain(t *testing.T) {
	sim := newTestSim()
	w := sim.RequestJump(sim.NewWorld())

	landed := -1
	for tick := 1; tick <= 100; tick++ {
		w = sim.Step(w, Input{}, noSpawn)
		if !w.Actor.IsJumping {
			landed = tick
			break
		}
	}
	// 12 up, 0.6 down per tick: airborne for roughly 2*12/0.6 ticks.
	if landed < 35 || landed > 45 {
		t.Errorf("jump landed after %d ticks, expected about 40", landed)
	}
}

func TestObstacleAdvanceAndRemoval(t *testing.T) {
	in := []Obstacle{
		{X: -35, Width: 40}, // trailing edge reaches 0: dropped
		{X: -34, Width: 40}, // trailing edge at 1: kept
		{X: 200, Width: 40},
	}
	out := advanceObstacles(in, 5)

	if len(out) != 2 {
		t.Fatalf("expected 2 obstacles, got %d", len(out))
	}
	if out[0].X != -39 || out[1].X != 195 {
		t.Errorf("unexpected positions %v, %v", out[0].X, out[1].X)
	}
	if in[0].X != -35 {
		t.Error("advanceObstacles must not modify its input")
	}
}

func TestSpawnAfterGap(t *testing.T) {
	sim := newTestSim()
	rng := scriptedRand{f: 0, n: int(Rock)} // gap = 800
	w := sim.NewWorld()

	// 5 per tick reaches 800 on tick 160.
	for tick := 1; tick < 160; tick++ {
		w = sim.Step(w, Input{}, rng)
		if len(w.Obstacles) != 0 {
			t.Fatalf("tick %d: spawned before the gap was reached", tick)
		}
	}
	w = sim.Step(w, Input{}, rng)

	if len(w.Obstacles) != 1 {
		t.Fatalf("expected a spawn on tick 160, have %d obstacles", len(w.Obstacles))
	}
	o := w.Obstacles[0]
	if o.Type != Rock || o.X != 400 || o.Y != 0 || o.Width != 40 || o.Height != 50 {
		t.Errorf("unexpected spawned obstacle %+v", o)
	}
	if w.DistanceSinceSpawn != 0 {
		t.Errorf("spawn should reset the distance counter, got %v", w.DistanceSinceSpawn)
	}
}

func TestFlyingHazardShape(t *testing.T) {
	sim := newTestSim()
	ground := sim.NewObstacle(Cactus)
	flyer := sim.NewObstacle(Pterodactyl)

	if flyer.Y <= ground.Y {
		t.Error("flying hazard should sit higher than ground hazards")
	}
	if flyer.Width <= ground.Width || flyer.Height >= ground.Height {
		t.Error("flying hazard should be wider and shorter than ground hazards")
	}
}

func TestDrawGapClamped(t *testing.T) {
	spawn := config.SpawnConfig{MinGap: 800, MaxGap: 1200}

	tests := []struct {
		f, want float64
	}{
		{0, 800},
		{0.5, 1000},
		{1.5, 1200},
		{-1, 800},
	}
	for _, tc := range tests {
		if got := drawGap(spawn, scriptedRand{f: tc.f}); got != tc.want {
			t.Errorf("drawGap(f=%v) = %v, expected %v", tc.f, got, tc.want)
		}
	}
}

func TestPassScoresOnce(t *testing.T) {
	sim := newTestSim()
	w := sim.NewWorld()
	// High enough to never touch the actor.
	w.Obstacles = []Obstacle{{X: 400, Y: 500, Width: 40, Height: 50, Type: Pterodactyl}}

	// Trailing edge 440 - 5k drops below the actor's x=50 first at k=79.
	for tick := 1; tick <= 78; tick++ {
		w = sim.Step(w, Input{}, noSpawn)
		if w.Score != 0 || w.Obstacles[0].Passed {
			t.Fatalf("tick %d: scored before the trailing edge crossed", tick)
		}
	}

	w = sim.Step(w, Input{}, noSpawn)
	if w.Score != 1 {
		t.Fatalf("score should be 1 on tick 79, got %d", w.Score)
	}
	if !w.Obstacles[0].Passed {
		t.Fatal("obstacle should be marked passed")
	}
	if !approx(w.Speed, 5.001) {
		t.Errorf("speed should follow the score, got %v", w.Speed)
	}

	for tick := 80; tick <= 150; tick++ {
		w = sim.Step(w, Input{}, noSpawn)
		if w.Score != 1 {
			t.Fatalf("tick %d: obstacle scored twice, score %d", tick, w.Score)
		}
	}
	if len(w.Obstacles) != 0 {
		t.Errorf("obstacle should have left the world, %d remain", len(w.Obstacles))
	}
}

func TestCollisionEndsRun(t *testing.T) {
	sim := newTestSim()
	w := sim.NewWorld()
	w.Actor.Y = 30
	w.Actor.VelocityY = 5
	w.Actor.IsJumping = true
	w.Obstacles = []Obstacle{sim.NewObstacle(Cactus)}
	w.Obstacles[0].X = 60
	w.Score = 7
	w.HighScore = 3
	w.DistanceSinceSpawn = 120
	before := w.Clone()

	next := sim.Step(w, Input{}, noSpawn)

	if !next.IsGameOver {
		t.Fatal("overlapping hitboxes should end the run")
	}
	if next.HighScore != 7 {
		t.Errorf("high score = %d, expected 7", next.HighScore)
	}
	if next.Score != 7 || next.Speed != before.Speed || next.DistanceSinceSpawn != 120 {
		t.Errorf("score, speed and spawn counter should keep their pre-tick values, got %+v", next)
	}
	if !reflect.DeepEqual(next.Obstacles, before.Obstacles) {
		t.Errorf("obstacles should keep their pre-tick values, got %+v", next.Obstacles)
	}
	v := 5.0
	v -= 0.6
	if !approx(next.Actor.Y, 30+v) {
		t.Errorf("actor should keep this tick's kinematics, y = %v", next.Actor.Y)
	}
	if next.Phase() != PhaseGameOver {
		t.Errorf("phase = %v, expected game over", next.Phase())
	}
	if !reflect.DeepEqual(w, before) {
		t.Error("Step must not modify its input world")
	}
}

func TestCollisionKeepsHigherHighScore(t *testing.T) {
	sim := newTestSim()
	w := sim.NewWorld()
	w.Obstacles = []Obstacle{sim.NewObstacle(Cactus)}
	w.Obstacles[0].X = 60
	w.Score = 2
	w.HighScore = 10

	next := sim.Step(w, Input{}, noSpawn)
	if !next.IsGameOver || next.HighScore != 10 {
		t.Errorf("expected game over with high score 10, got over=%v high=%d", next.IsGameOver, next.HighScore)
	}
}

func TestCollisionCountsPassInSameTick(t *testing.T) {
	sim := newTestSim()
	w := sim.NewWorld()
	w.Obstacles = []Obstacle{
		{X: 12, Y: 0, Width: 40, Height: 50, Type: Cactus}, // clears the actor this tick
		{X: 60, Y: 0, Width: 40, Height: 50, Type: Rock},   // hits the actor this tick
	}

	next := sim.Step(w, Input{}, noSpawn)
	if !next.IsGameOver {
		t.Fatal("expected a collision")
	}
	if next.HighScore != 1 {
		t.Errorf("high score should include the pass made on the collision tick, got %d", next.HighScore)
	}
	if next.Score != 0 {
		t.Errorf("score should keep its pre-tick value, got %d", next.Score)
	}
}

func TestDuckUnderFlyingHazard(t *testing.T) {
	sim := newTestSim()
	w := sim.NewWorld()
	w.Obstacles = []Obstacle{sim.NewObstacle(Pterodactyl)}
	w.Obstacles[0].X = 60

	standing := sim.Step(w, Input{}, noSpawn)
	if !standing.IsGameOver {
		t.Error("a standing actor should hit the flying hazard")
	}

	ducking := sim.Step(w, Input{Duck: true}, noSpawn)
	if ducking.IsGameOver {
		t.Error("a ducking actor should pass under the flying hazard")
	}
}

func TestSteppingStoppedWorld(t *testing.T) {
	sim := newTestSim()

	paused := sim.TogglePause(sim.Step(sim.NewWorld(), Input{}, noSpawn))
	if got := sim.Step(paused, Input{Jump: true}, noSpawn); !reflect.DeepEqual(got, paused) {
		t.Error("stepping a paused world should not change it")
	}

	over := sim.NewWorld()
	over.IsGameOver = true
	if got := sim.Step(over, Input{}, noSpawn); !reflect.DeepEqual(got, over) {
		t.Error("stepping a finished world should not change it")
	}
}

func TestTogglePause(t *testing.T) {
	sim := newTestSim()
	w := sim.Step(sim.NewWorld(), Input{}, noSpawn)

	paused := sim.TogglePause(w)
	if !paused.IsPaused || paused.Phase() != PhasePaused {
		t.Fatal("TogglePause should pause a running world")
	}
	paused.IsPaused = false
	if !reflect.DeepEqual(paused, w) {
		t.Error("TogglePause should change nothing but the flag")
	}

	resumed := sim.TogglePause(sim.TogglePause(w))
	if resumed.IsPaused || resumed.Phase() != PhaseRunning {
		t.Error("second TogglePause should resume")
	}

	over := w
	over.IsGameOver = true
	if got := sim.TogglePause(over); got.IsPaused {
		t.Error("a finished run cannot be paused")
	}
}

func TestResetIdempotent(t *testing.T) {
	sim := newTestSim()
	w := sim.NewWorld()
	w.Obstacles = []Obstacle{sim.NewObstacle(Rock)}
	w.Score = 12
	w.HighScore = 40
	w.Speed = 9
	w.DistanceSinceSpawn = 300
	w.IsGameOver = true
	w.Tick = 900

	once := sim.Reset(w)
	twice := sim.Reset(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Reset is not idempotent:\nonce  %+v\ntwice %+v", once, twice)
	}
	if once.HighScore != 40 {
		t.Errorf("Reset should keep the high score, got %d", once.HighScore)
	}
	fresh := sim.NewWorld()
	fresh.HighScore = 40
	if !reflect.DeepEqual(once, fresh) {
		t.Errorf("Reset should return the initial world, got %+v", once)
	}
}

// autopilot jumps ground hazards and ducks flying ones when they get close.
func autopilot(w World) Input {
	for _, o := range w.Obstacles {
		gap := o.X - (w.Actor.X + w.Actor.Width)
		if gap < 0 || gap > 60 {
			continue
		}
		if o.Type == Pterodactyl {
			return Input{Duck: true}
		}
		return Input{Jump: true}
	}
	return Input{}
}

func TestScoreAndSpeedMonotonic(t *testing.T) {
	sim := newTestSim()
	rng := rand.New(rand.NewSource(7))
	w := sim.NewWorld()
	maxSpeed := sim.Config().Speed.Max

	for tick := 0; tick < 20000 && !w.IsGameOver; tick++ {
		prev := w
		w = sim.Step(w, autopilot(w), rng)

		if w.Score < prev.Score {
			t.Fatalf("tick %d: score decreased %d -> %d", tick, prev.Score, w.Score)
		}
		if w.Score-prev.Score > len(prev.Obstacles)+1 {
			t.Fatalf("tick %d: score jumped by %d", tick, w.Score-prev.Score)
		}
		if w.Speed < prev.Speed {
			t.Fatalf("tick %d: speed decreased %v -> %v", tick, prev.Speed, w.Speed)
		}
		if w.Speed > maxSpeed {
			t.Fatalf("tick %d: speed %v exceeds max %v", tick, w.Speed, maxSpeed)
		}
		if w.HighScore < prev.HighScore {
			t.Fatalf("tick %d: high score decreased", tick)
		}
	}
}

func TestDeterministicReplay(t *testing.T) {
	sim := newTestSim()
	run := func() World {
		rng := rand.New(rand.NewSource(12345))
		w := sim.NewWorld()
		for tick := 0; tick < 3000 && !w.IsGameOver; tick++ {
			w = sim.Step(w, autopilot(w), rng)
		}
		return w
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and inputs produced different worlds:\n%+v\n%+v", a, b)
	}
}

func TestWorldWidthOverride(t *testing.T) {
	sim := NewSimulation(config.DefaultRunnerConfig(), 800)
	if got := sim.NewObstacle(Cactus).X; got != 800 {
		t.Errorf("obstacles should spawn at the world width, got x = %v", got)
	}
	if got := NewSimulation(config.DefaultRunnerConfig(), 0).WorldWidth(); got != 400 {
		t.Errorf("zero width should fall back to the configured 400, got %v", got)
	}
}
