package dodge

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dodge/internal/core"
)

// Playfield maps world coordinates onto screen cells.
type Playfield struct {
	Box            core.Rect // Border around the field
	worldW, worldH float64
}

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

// layoutPlayfield fits a field with the HUD's aspect ratio into a screen of
// the given size, leaving row 0 for the HUD.
func layoutPlayfield(screenW, screenH int, hudW, hudH int, worldW, worldH float64) Playfield {
	innerH := core.Max(screenH-3, 1)
	aspect := worldW / worldH
	if hudW > 0 && hudH > 0 {
		aspect = float64(hudW) / float64(hudH)
	}
	innerW := int(math.Round(float64(innerH) * aspect * cellAspect))
	innerW = core.Clamp(innerW, 1, core.Max(screenW-2, 1))

	boxX := core.Max((screenW-innerW-2)/2, 0)
	return Playfield{
		Box:    core.NewRect(boxX, 1, innerW+2, innerH+2),
		worldW: worldW,
		worldH: worldH,
	}
}

// Cell converts a world position to a screen cell inside the box.
// The world's y axis points up; screen rows grow downward.
func (p Playfield) Cell(x, y float64) (col, row int, ok bool) {
	innerW := p.Box.W - 2
	innerH := p.Box.H - 2
	fx := x / p.worldW
	fy := (p.worldH - y) / p.worldH
	if fx < 0 || fx >= 1 || fy < 0 || fy >= 1 {
		return 0, 0, false
	}
	col = p.Box.X + 1 + int(fx*float64(innerW))
	row = p.Box.Y + 1 + int(fy*float64(innerH))
	return col, row, true
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	field := layoutPlayfield(dst.Width(), dst.Height(),
		g.cfg.HUD.Width, g.cfg.HUD.Height, g.cfg.World.Width, g.cfg.World.Height)
	dst.DrawBoxColored(field.Box, core.ColorGray)

	for _, o := range g.sim.Obstacles() {
		color := core.ColorRed
		if o.Hit() {
			color = core.ColorBrightRed
		}
		g.drawBody(dst, field, &o.Body, color)
	}
	g.drawBody(dst, field, &g.sim.Player().Body, core.ColorBrightCyan)

	g.drawHUD(dst, field)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "P to resume  |  B for menu")
	}

	if g.sim.GameOver() {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  R to restart", g.sim.Score()))
	}
}

// drawBody draws a body at the cell under its center. Bodies without a
// region are skipped and reported once per game.
func (g *Game) drawBody(dst *core.Screen, field Playfield, b *Body, color core.Color) {
	if !b.HasRegion() {
		if !g.warnedMissing {
			g.warnedMissing = true
			g.logger.Warn("skipping body without region", "x", b.X(), "y", b.Y())
		}
		return
	}
	c := b.Shape()
	col, row, ok := field.Cell(c.X, c.Y)
	if !ok {
		return
	}
	dst.SetColored(col, row, b.Region, color)
}

// drawHUD draws lives on the left and the displayed score on the right,
// mirroring the field's padding.
func (g *Game) drawHUD(dst *core.Screen, field Playfield) {
	pad := g.cfg.HUD.Padding
	lives := fmt.Sprintf("LIVES: %d", g.sim.Lives())
	dst.DrawTextColored(field.Box.X+pad, 0, lives, core.ColorYellow)

	score := fmt.Sprintf("SCORE: %d", g.sim.DisplayedScore())
	dst.DrawTextColored(field.Box.Right()-pad-len(score), 0, score, core.ColorYellow)

	speed := fmt.Sprintf("LV %.0f%%", g.Level()*100)
	dst.DrawTextColored((dst.Width()-len(speed))/2, dst.Height()-1, speed, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
