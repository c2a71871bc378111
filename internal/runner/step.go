package runner

// Input is the player intent consumed by one tick.
type Input struct {
	Jump bool // Edge: a jump was requested since the last tick
	Duck bool // Level: the duck input is held
}

// Step advances the world by one fixed tick and returns the result.
//
// The duck level is applied first, then a pending jump, then the tick runs:
// gravity, obstacle advance, spawn decision, pass scoring, speed recompute
// and the collision check. On collision the run ends on the last consistent
// frame: the actor keeps this tick's kinematics, but obstacles, the spawn
// counter, score and speed keep their values from before the tick, and the
// high score absorbs the score reached at the moment of impact.
//
// Paused and finished worlds are returned unchanged.
func (s *Simulation) Step(w World, in Input, rng RandSource) World {
	if w.IsPaused || w.IsGameOver {
		return w
	}

	// Intents
	actor := s.duck(w.Actor, in.Duck)
	if in.Jump {
		actor = s.jump(actor)
	}

	// 1. Gravity
	actor = s.applyGravity(actor)

	// 2. Advance with the speed in effect at the start of the tick
	obstacles := advanceObstacles(w.Obstacles, w.Speed)

	// 3. Spawn
	obstacles, distance := s.maybeSpawn(obstacles, w.DistanceSinceSpawn, w.Speed, rng)

	// 4. Score
	score := w.Score + markPassed(obstacles, actor.X)

	// 5. Speed
	speed := s.cfg.Speed.Speed(score)

	next := w
	next.Actor = actor
	next.Tick = w.Tick + 1

	// 6. Collision
	if s.Collides(actor, obstacles) {
		next.IsGameOver = true
		next.HighScore = max(w.HighScore, score)
		return next
	}

	next.Obstacles = obstacles
	next.DistanceSinceSpawn = distance
	next.Score = score
	next.Speed = speed
	return next
}
