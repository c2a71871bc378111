// Package driver runs a runner.Game on a tick source.
//
// The driver is the single writer of its game: every intent and every tick
// is handled on the goroutine executing Run, one at a time. Readers get
// copies of the world through the OnFrame observer.
package driver

import (
	"sync"
	"time"
)

// TickSource delivers simulation ticks. Start and Stop may be called any
// number of times; C returns the same channel for the source's lifetime.
type TickSource interface {
	Start()
	Stop()
	C() <-chan time.Time
}

// Ticker is a TickSource backed by time.Ticker.
type Ticker struct {
	mu       sync.Mutex
	ticker   *time.Ticker
	interval time.Duration
	running  bool
}

// NewTicker creates a stopped ticker firing rate times per second.
func NewTicker(rate int) *Ticker {
	if rate <= 0 {
		rate = 60
	}
	interval := time.Second / time.Duration(rate)
	t := time.NewTicker(interval)
	t.Stop()
	return &Ticker{ticker: t, interval: interval}
}

// Start begins delivering ticks.
func (t *Ticker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return
	}
	t.ticker.Reset(t.interval)
	t.running = true
}

// Stop halts delivery and discards a tick that is already pending.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return
	}
	t.ticker.Stop()
	t.running = false
	select {
	case <-t.ticker.C:
	default:
	}
}

// C returns the tick channel.
func (t *Ticker) C() <-chan time.Time {
	return t.ticker.C
}

// Interval returns the time between ticks.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Manual is a TickSource fired by hand. Tests use it to step a driver
// deterministically without timers.
type Manual struct {
	mu      sync.Mutex
	running bool
	ch      chan time.Time
}

// NewManual creates a stopped manual source.
func NewManual() *Manual {
	return &Manual{ch: make(chan time.Time)}
}

// Start enables Fire.
func (m *Manual) Start() {
	m.mu.Lock()
	m.running = true
	m.mu.Unlock()
}

// Stop disables Fire.
func (m *Manual) Stop() {
	m.mu.Lock()
	m.running = false
	m.mu.Unlock()
}

// Running reports whether the source is started.
func (m *Manual) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// Fire delivers one tick and blocks until the driver receives it.
// It returns false without delivering when the source is stopped.
func (m *Manual) Fire() bool {
	if !m.Running() {
		return false
	}
	m.ch <- time.Now()
	return true
}

// C returns the tick channel.
func (m *Manual) C() <-chan time.Time {
	return m.ch
}
