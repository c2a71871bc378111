package runner

// applyGravity integrates one tick of vertical motion.
// Velocity loses Gravity first, then moves the actor; touching or crossing
// the ground baseline lands it.
func (s *Simulation) applyGravity(a Actor) Actor {
	ground := s.cfg.World.GroundBaseline

	a.VelocityY -= s.cfg.Physics.Gravity
	a.Y += a.VelocityY

	if a.Y <= ground {
		a.Y = ground
		a.VelocityY = 0
		a.IsJumping = false
	} else {
		a.IsJumping = true
	}
	return a
}

// jump starts a jump unless the actor is airborne or ducking.
func (s *Simulation) jump(a Actor) Actor {
	if a.IsJumping || a.IsDucking {
		return a
	}
	a.VelocityY = s.cfg.Physics.JumpForce
	a.IsJumping = true
	return a
}

// duck sets the ducking state and height. Ignored mid-air.
func (s *Simulation) duck(a Actor, ducking bool) Actor {
	if a.IsJumping {
		return a
	}
	a.IsDucking = ducking
	if ducking {
		a.Height = s.cfg.Actor.DuckHeight()
	} else {
		a.Height = s.cfg.Actor.Height
	}
	return a
}

// RequestJump applies a jump request to the world's actor.
// It is a no-op while jumping, ducking, paused or after game over.
func (s *Simulation) RequestJump(w World) World {
	if w.IsPaused || w.IsGameOver {
		return w
	}
	w.Actor = s.jump(w.Actor)
	return w
}

// SetDucking applies the held/released duck input to the world's actor.
// It is a no-op while jumping, paused or after game over.
func (s *Simulation) SetDucking(w World, ducking bool) World {
	if w.IsPaused || w.IsGameOver {
		return w
	}
	w.Actor = s.duck(w.Actor, ducking)
	return w
}
