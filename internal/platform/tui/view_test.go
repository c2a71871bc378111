package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/driver"
	"github.com/vovakirdan/dino-runner/internal/runner"
)

func testSnapshot(phase runner.Phase, obstacles ...runner.Obstacle) driver.Snapshot {
	return driver.Snapshot{
		World: runner.World{
			Actor:     runner.Actor{X: 50, Width: 60, Height: 60},
			Obstacles: obstacles,
			Score:     12,
			HighScore: 40,
			Speed:     5,
		},
		Phase: phase,
	}
}

func TestRendererLayout(t *testing.T) {
	// 40 columns over 400 world units: 10 units per column.
	screen := core.NewScreen(40, 12)
	r := NewRenderer(400)

	snap := testSnapshot(runner.PhaseRunning,
		runner.Obstacle{X: 200, Y: 0, Width: 40, Height: 50, Type: runner.Cactus},
		runner.Obstacle{X: 300, Y: 40, Width: 60, Height: 40, Type: runner.Pterodactyl},
	)
	r.Render(screen, snap)

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"ground", 0, 10, GroundChar},
		{"actor feet", 5, 9, ActorChar},
		{"actor right edge", 10, 9, ActorChar},
		{"left of actor", 4, 9, ' '},
		{"cactus", 20, 9, CactusChar},
		{"pterodactyl", 30, 8, PterodactylChar},
		{"under pterodactyl", 30, 9, ' '},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := screen.Get(tt.x, tt.y); got != tt.want {
				t.Errorf("Get(%d, %d) = %q, expected %q\n%s", tt.x, tt.y, got, tt.want, screen.String())
			}
		})
	}

	if !strings.Contains(screen.Row(0), "Score: 12") || !strings.Contains(screen.Row(0), "HI: 40") {
		t.Errorf("HUD missing score: %q", screen.Row(0))
	}
	if screen.GetCell(5, 9).Color != core.ColorActor {
		t.Error("actor should use the actor color")
	}
}

func TestRendererDuckingGlyph(t *testing.T) {
	screen := core.NewScreen(40, 12)
	snap := testSnapshot(runner.PhaseRunning)
	snap.World.Actor.IsDucking = true
	snap.World.Actor.Height = 36

	NewRenderer(400).Render(screen, snap)
	if got := screen.Get(5, 9); got != DuckingChar {
		t.Errorf("ducking actor drawn with %q, expected %q", got, DuckingChar)
	}
}

func TestRendererMessages(t *testing.T) {
	tests := []struct {
		phase runner.Phase
		want  string
	}{
		{runner.PhaseRunning, ""},
		{runner.PhasePaused, "PAUSED"},
		{runner.PhaseGameOver, "GAME OVER"},
	}

	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			screen := core.NewScreen(60, 16)
			NewRenderer(400).Render(screen, testSnapshot(tt.phase))
			out := screen.String()

			if tt.want == "" {
				if strings.Contains(out, "PAUSED") || strings.Contains(out, "GAME OVER") {
					t.Error("a running world should not show a message")
				}
				return
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("expected %q on screen:\n%s", tt.want, out)
			}
		})
	}
}

func TestRendererTinyScreen(t *testing.T) {
	for _, size := range [][2]int{{0, 0}, {10, 2}, {1, 4}} {
		screen := core.NewScreen(size[0], size[1])
		NewRenderer(400).Render(screen, testSnapshot(runner.PhaseGameOver))
	}
}

func TestRenderScreenStripsNothing(t *testing.T) {
	screen := core.NewScreen(5, 2)
	screen.DrawText(0, 0, "ab")
	screen.SetColored(2, 0, 'c', core.ColorRed)

	out := RenderScreen(screen)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "c") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected one line break for two rows, got %q", out)
	}
}
