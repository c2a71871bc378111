// Package tui provides the Bubble Tea front-end for the runner.
// It maps keys to driver intents and draws the snapshots the driver publishes.
package tui

import (
	"context"

	"github.com/vovakirdan/dino-runner/internal/driver"
	"github.com/vovakirdan/dino-runner/internal/runner"
)

// Session couples a driver with the frame feed a Model reads from.
type Session struct {
	drv        *driver.Driver
	frames     chan driver.Snapshot
	worldWidth float64
}

// NewSession creates a session for game. opts.OnFrame is replaced by the
// session's own feed.
func NewSession(game *runner.Game, ticks driver.TickSource, opts driver.Options) *Session {
	s := &Session{
		frames:     make(chan driver.Snapshot, 1),
		worldWidth: game.Simulation().WorldWidth(),
	}
	opts.OnFrame = s.publish
	s.drv = driver.New(game, ticks, opts)
	return s
}

// Driver returns the session's driver.
func (s *Session) Driver() *driver.Driver {
	return s.drv
}

// Run drives the game until ctx is done, then closes the frame feed.
func (s *Session) Run(ctx context.Context) error {
	defer close(s.frames)
	return s.drv.Run(ctx)
}

// publish keeps only the newest snapshot so the driver never waits on the UI.
// It is only called from the Run goroutine.
func (s *Session) publish(snap driver.Snapshot) {
	select {
	case <-s.frames:
	default:
	}
	s.frames <- snap
}
