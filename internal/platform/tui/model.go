package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/driver"
)

// duckHold is how long a duck press is held. Terminals report key presses
// only, so the hold is extended by key repeat and released after silence.
const duckHold = 400 * time.Millisecond

// frameMsg carries a snapshot from the driver.
type frameMsg driver.Snapshot

// feedClosedMsg reports that the driver has stopped.
type feedClosedMsg struct{}

// duckReleaseMsg releases the duck input unless a newer press extended it.
type duckReleaseMsg struct{ seq int }

// Model is the Bubble Tea model for one run session.
type Model struct {
	session  *Session
	renderer *Renderer
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	snap     driver.Snapshot
	duckSeq  int
	ducking  bool
	quitting bool
}

// NewModel creates a model that reads frames from session.
func NewModel(session *Session, width, height int) Model {
	h := help.New()
	h.Width = width

	return Model{
		session:  session,
		renderer: NewRenderer(session.worldWidth),
		screen:   core.NewScreen(width, core.Max(height-1, 0)),
		keys:     DefaultKeyMap(),
		help:     h,
	}
}

// Init starts listening for frames.
func (m Model) Init() tea.Cmd {
	return waitForFrame(m.session.frames)
}

// waitForFrame blocks until the next snapshot or until the feed closes.
func waitForFrame(frames <-chan driver.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-frames
		if !ok {
			return feedClosedMsg{}
		}
		return frameMsg(snap)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		m.snap = driver.Snapshot(msg)
		return m, waitForFrame(m.session.frames)

	case duckReleaseMsg:
		if msg.seq == m.duckSeq && m.ducking {
			m.ducking = false
			m.session.drv.SetDuck(false)
		}
		return m, nil

	case feedClosedMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	drv := m.session.drv
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionJump:
		drv.Jump()
	case core.ActionDuck:
		m.duckSeq++
		if !m.ducking {
			m.ducking = true
			drv.SetDuck(true)
		}
		seq := m.duckSeq
		return m, tea.Tick(duckHold, func(time.Time) tea.Msg {
			return duckReleaseMsg{seq: seq}
		})
	case core.ActionPause:
		drv.TogglePause()
	case core.ActionRestart:
		drv.Reset()
	}
	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.renderer.Render(m.screen, m.snap)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".dino", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("dino_%d_%s.txt", m.snap.Seed, time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, the run continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Render(m.screen, m.snap)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run plays session in the local terminal until the user quits.
func Run(ctx context.Context, session *Session) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- session.Run(ctx) }()

	p := tea.NewProgram(
		NewModel(session, 80, 24),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()

	cancel()
	runErr := <-errc
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}

// Ensure KeyMap satisfies the help interface
var _ help.KeyMap = KeyMap{}
