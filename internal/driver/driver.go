package driver

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/runner"
)

// Snapshot is the read-only view published after every tick and state change.
type Snapshot struct {
	World runner.World
	Phase runner.Phase
	Seed  int64
}

// RunResult describes a finished run.
type RunResult struct {
	GameID    string
	Seed      int64
	Score     int
	HighScore int
	Ticks     int
	EndedAt   time.Time
}

// ResultSink receives every finished run exactly once.
type ResultSink interface {
	SaveRun(result RunResult) error
}

// Options configures a Driver. All fields are optional.
type Options struct {
	Logger  *log.Logger
	Sink    ResultSink
	OnFrame func(Snapshot) // Called on the Run goroutine; must not block for long
	NewSeed func() int64   // Seed for runs started by Reset; defaults to the clock
}

type commandKind int

const (
	cmdJump commandKind = iota
	cmdDuck
	cmdPause
	cmdReset
)

type command struct {
	kind commandKind
	held bool
}

// Driver feeds ticks and player intents to a game.
type Driver struct {
	game    *runner.Game
	ticks   TickSource
	logger  *log.Logger
	sink    ResultSink
	onFrame func(Snapshot)
	newSeed func() int64

	cmds chan command
	done chan struct{}

	// Owned by the Run goroutine.
	pending  core.InputFrame
	duckHeld bool
	recorded bool
}

// New creates a driver for game on the given tick source.
func New(game *runner.Game, ticks TickSource, opts Options) *Driver {
	d := &Driver{
		game:    game,
		ticks:   ticks,
		logger:  opts.Logger,
		sink:    opts.Sink,
		onFrame: opts.OnFrame,
		newSeed: opts.NewSeed,
		cmds:    make(chan command),
		done:    make(chan struct{}),
		pending: core.NewInputFrame(),
	}
	if d.logger == nil {
		d.logger = log.Default()
	}
	if d.newSeed == nil {
		d.newSeed = func() int64 { return time.Now().UnixNano() }
	}
	return d
}

// Jump requests a jump on the next tick.
func (d *Driver) Jump() { d.send(command{kind: cmdJump}) }

// SetDuck sets whether the duck input is held.
func (d *Driver) SetDuck(held bool) { d.send(command{kind: cmdDuck, held: held}) }

// TogglePause pauses or resumes the run.
func (d *Driver) TogglePause() { d.send(command{kind: cmdPause}) }

// Reset starts a new run.
func (d *Driver) Reset() { d.send(command{kind: cmdReset}) }

// send hands an intent to the Run goroutine. It returns once the intent
// has been taken, or immediately if Run has exited.
func (d *Driver) send(c command) {
	select {
	case d.cmds <- c:
	case <-d.done:
	}
}

// Run drives the game until ctx is done. Ticks are stopped while the game
// is paused or over, and at most one tick is processed at a time.
func (d *Driver) Run(ctx context.Context) error {
	defer close(d.done)
	defer d.ticks.Stop()

	d.logger.Info("run started", "game", d.game.ID(), "seed", d.game.Seed())
	d.syncTicks()
	d.publish()

	for {
		select {
		case <-ctx.Done():
			d.logger.Debug("driver stopped", "tick", d.game.World().Tick)
			return ctx.Err()
		case c := <-d.cmds:
			d.handle(c)
		case <-d.ticks.C():
			d.tick()
		}
	}
}

func (d *Driver) handle(c command) {
	state := d.game.State()

	switch c.kind {
	case cmdJump:
		if state.Paused || state.GameOver {
			return
		}
		d.pending.Set(core.ActionJump)
		return

	case cmdDuck:
		d.duckHeld = c.held
		return

	case cmdPause:
		if state.GameOver {
			return
		}
		d.game.TogglePause()
		if d.game.State().Paused {
			d.logger.Info("paused", "tick", d.game.World().Tick, "score", state.Score)
		} else {
			d.logger.Info("resumed", "tick", d.game.World().Tick)
		}

	case cmdReset:
		seed := d.newSeed()
		d.game.Reset(seed)
		d.pending.Clear()
		d.recorded = false
		d.logger.Info("run started", "game", d.game.ID(), "seed", seed, "high_score", state.HighScore)
	}

	d.syncTicks()
	d.publish()
}

// tick advances the game by one step.
func (d *Driver) tick() {
	if st := d.game.State(); st.Paused || st.GameOver {
		// A tick that raced a stop; the game is frozen.
		return
	}

	frame := d.pending
	if d.duckHeld {
		frame.Set(core.ActionDuck)
	}
	state := d.game.Step(frame)
	d.pending = core.NewInputFrame()

	if state.GameOver {
		d.ticks.Stop()
		d.finish()
	}
	d.publish()
}

// finish reports the ended run once.
func (d *Driver) finish() {
	if d.recorded {
		return
	}
	d.recorded = true

	w := d.game.World()
	result := RunResult{
		GameID:    d.game.ID(),
		Seed:      d.game.Seed(),
		Score:     w.Score,
		HighScore: w.HighScore,
		Ticks:     w.Tick,
		EndedAt:   time.Now(),
	}
	d.logger.Info("game over", "score", result.Score, "high_score", result.HighScore, "ticks", result.Ticks)

	if d.sink == nil {
		return
	}
	if err := d.sink.SaveRun(result); err != nil {
		d.logger.Warn("could not record run", "error", err)
	}
}

// syncTicks runs the tick source only while the game can advance.
func (d *Driver) syncTicks() {
	if st := d.game.State(); st.Paused || st.GameOver {
		d.ticks.Stop()
		return
	}
	d.ticks.Start()
}

func (d *Driver) publish() {
	if d.onFrame == nil {
		return
	}
	w := d.game.World()
	d.onFrame(Snapshot{
		World: w,
		Phase: w.Phase(),
		Seed:  d.game.Seed(),
	})
}
