package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/driver"
	"github.com/vovakirdan/dino-runner/internal/runner"
)

// Glyphs used to draw the world.
const (
	ActorChar       = '█'
	DuckingChar     = '▄'
	CactusChar      = '▓'
	RockChar        = '▒'
	PterodactylChar = 'v'
	GroundChar      = '═'
)

// skyHeight is the world height, in world units, kept visible above the ground.
const skyHeight = 200.0

// Renderer draws snapshots into a screen buffer. World units are scaled so
// the whole world width fits the screen and skyHeight fits above the ground.
type Renderer struct {
	worldWidth float64
}

// NewRenderer creates a renderer for worlds of the given width.
func NewRenderer(worldWidth float64) *Renderer {
	return &Renderer{worldWidth: worldWidth}
}

// groundRow returns the screen row of the ground line.
func groundRow(dst *core.Screen) int {
	return dst.Height() - 2
}

// scale returns world units per column and per row.
func (r *Renderer) scale(dst *core.Screen) (sx, sy float64) {
	cols := core.Max(dst.Width(), 1)
	rows := core.Max(groundRow(dst)-1, 1) // row 0 is the HUD
	return r.worldWidth / float64(cols), skyHeight / float64(rows)
}

// cellRect maps a world box to the screen cells it covers.
// Every visible box covers at least one cell.
func (r *Renderer) cellRect(dst *core.Screen, b core.Box) core.Rect {
	sx, sy := r.scale(dst)
	ground := groundRow(dst)

	x0 := int(math.Floor(b.X / sx))
	x1 := core.Max(int(math.Ceil(b.Right()/sx)), x0+1)
	bottom := ground - int(math.Floor(b.Y/sy))
	top := core.Min(ground-int(math.Ceil(b.Top()/sy)), bottom-1)

	return core.NewRect(x0, top, x1-x0, bottom-top)
}

// Render draws the snapshot into dst.
func (r *Renderer) Render(dst *core.Screen, snap driver.Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() < 4 {
		return
	}
	w := snap.World

	dst.DrawHLine(0, groundRow(dst), dst.Width(), GroundChar, core.ColorGround)

	for _, o := range w.Obstacles {
		glyph, color := obstacleGlyph(o.Type)
		dst.DrawRect(r.cellRect(dst, o.Box()), glyph, color)
	}

	actorGlyph := rune(ActorChar)
	if w.Actor.IsDucking {
		actorGlyph = DuckingChar
	}
	dst.DrawRect(r.cellRect(dst, w.Actor.Box()), actorGlyph, core.ColorActor)

	hud := fmt.Sprintf(" Score: %d  HI: %d ", w.Score, w.HighScore)
	dst.DrawTextColored(2, 0, hud, core.ColorHUD)
	speed := fmt.Sprintf(" Spd: %.1f ", w.Speed)
	dst.DrawTextColored(dst.Width()-len(speed)-2, 0, speed, core.ColorHUD)

	switch snap.Phase {
	case runner.PhasePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorHUD)
	case runner.PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", w.Score), core.ColorGameOverMsg)
	}
}

func obstacleGlyph(t runner.ObstacleType) (rune, core.Color) {
	switch t {
	case runner.Rock:
		return RockChar, core.ColorRockHaz
	case runner.Pterodactyl:
		return PterodactylChar, core.ColorFlyingHaz
	default:
		return CactusChar, core.ColorGroundHaz
	}
}

// drawCenteredMessage draws a boxed two-line message in the middle of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, c)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
