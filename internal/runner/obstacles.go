package runner

import (
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// RandSource is the randomness a Simulation draws spawn decisions from.
// *math/rand.Rand satisfies it; tests substitute scripted sources.
type RandSource interface {
	Float64() float64 // Uniform in [0, 1)
	Intn(n int) int   // Uniform in [0, n)
}

// advanceObstacles moves every obstacle left by speed and drops the ones
// whose trailing edge has left the world. The input slice is not modified.
func advanceObstacles(obstacles []Obstacle, speed float64) []Obstacle {
	out := make([]Obstacle, 0, len(obstacles)+1)
	for _, o := range obstacles {
		o.X -= speed
		if o.Right() <= 0 {
			continue
		}
		out = append(out, o)
	}
	return out
}

// drawGap returns a spawn gap uniform in [MinGap, MaxGap].
// Out-of-range draws from a misbehaving source are clamped.
func drawGap(spawn config.SpawnConfig, rng RandSource) float64 {
	gap := spawn.MinGap + rng.Float64()*(spawn.MaxGap-spawn.MinGap)
	return core.ClampF(gap, spawn.MinGap, spawn.MaxGap)
}

// drawType picks an obstacle variant uniformly.
func drawType(rng RandSource) ObstacleType {
	n := rng.Intn(obstacleTypeCount)
	if n < 0 || n >= obstacleTypeCount {
		n = 0
	}
	return ObstacleType(n)
}

// shape returns the configured geometry of an obstacle variant.
func (s *Simulation) shape(t ObstacleType) config.ObstacleShape {
	switch t {
	case Rock:
		return s.cfg.Obstacles.Rock
	case Pterodactyl:
		return s.cfg.Obstacles.Pterodactyl
	default:
		return s.cfg.Obstacles.Cactus
	}
}

// NewObstacle builds an obstacle of the given type at the right edge of the world.
func (s *Simulation) NewObstacle(t ObstacleType) Obstacle {
	sh := s.shape(t)
	return Obstacle{
		X:      s.worldWidth,
		Y:      s.cfg.World.GroundBaseline + sh.Elevation,
		Width:  sh.Width,
		Height: sh.Height,
		Type:   t,
	}
}

// maybeSpawn adds scrolled distance to the spawn counter and, once it
// reaches a freshly drawn gap, spawns one obstacle and zeroes the counter.
func (s *Simulation) maybeSpawn(obstacles []Obstacle, distance, speed float64, rng RandSource) ([]Obstacle, float64) {
	distance += speed
	gap := drawGap(s.cfg.Spawn, rng)
	if distance < gap {
		return obstacles, distance
	}
	obstacles = append(obstacles, s.NewObstacle(drawType(rng)))
	return obstacles, 0
}

// markPassed flags obstacles whose trailing edge is now left of actorX and
// returns how many flipped this tick. Obstacles are updated in place.
func markPassed(obstacles []Obstacle, actorX float64) int {
	newlyPassed := 0
	for i := range obstacles {
		if !obstacles[i].Passed && obstacles[i].Right() < actorX {
			obstacles[i].Passed = true
			newlyPassed++
		}
	}
	return newlyPassed
}

// Collides reports whether the actor hits any obstacle once both hitboxes
// are inset by the configured padding.
func (s *Simulation) Collides(a Actor, obstacles []Obstacle) bool {
	actorBox := a.Box()
	for _, o := range obstacles {
		if core.PaddedOverlap(actorBox, o.Box(), s.cfg.Collision.Padding) {
			return true
		}
	}
	return false
}
