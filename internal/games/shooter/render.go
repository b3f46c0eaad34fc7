package shooter

import (
	"fmt"

	"github.com/vovakirdan/wordshot/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar = '█'
	BulletChar = '•'
)

// Minimum screen size the field can be drawn on.
const (
	minScreenW = 40
	minScreenH = 18
)

// Render draws the current game state to the screen. Play-area units are
// scaled to the screen so the whole field is always visible.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorYellow)
		return
	}

	v := g.view
	p := projection{
		sx: float64(dst.Width()) / g.cfg.Field.Width,
		sy: float64(dst.Height()) / g.cfg.Field.Height,
	}

	hudRows := max(p.y(g.cfg.Field.UIHeight), 5)
	g.drawHUD(dst, hudRows)

	// Player
	pw := max(p.x(g.cfg.Player.Size), 1)
	ph := max(p.y(g.cfg.Player.Size), 1)
	dst.DrawRect(core.NewRect(p.x(v.Player.X), p.y(v.Player.Y), pw, ph), PlayerChar, core.ColorBrightCyan)

	for _, b := range v.Bullets {
		dst.SetColored(p.x(b.X), p.y(b.Y), BulletChar, core.ColorYellow)
	}

	for _, t := range v.Tokens {
		y := p.y(t.Y)
		if y < hudRows {
			continue
		}
		color := core.ColorWhite
		if t.Terminator {
			color = core.ColorRed
		}
		dst.DrawTextColored(p.x(t.X), y, t.Text, color)
	}

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorYellow)
	}
	if v.GameOver {
		drawCenteredMessage(dst, "GAME OVER", "Press R to Restart", core.ColorBrightRed)
	}
}

// drawHUD draws the top strip: score, recent words and perplexity.
func (g *Game) drawHUD(dst *core.Screen, rows int) {
	v := g.view

	dst.DrawBox(core.NewRect(0, 0, dst.Width(), rows), core.ColorGray)
	dst.DrawTextColored(2, 1, fmt.Sprintf("SCORE: %d", v.Score), core.ColorBrightWhite)
	dst.DrawTextColored(2, 2, "Sentence: "+v.Recent, core.ColorWhite)

	pcolor := core.ColorGreen
	if v.Perplexity > v.Threshold*0.75 {
		pcolor = core.ColorYellow
	}
	if v.Perplexity > v.Threshold {
		pcolor = core.ColorRed
	}
	dst.DrawTextColored(2, 3, fmt.Sprintf("Perplexity: %.2f / %.2f", v.Perplexity, v.Threshold), pcolor)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	rect := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(rect, ' ', core.ColorDefault)
	dst.DrawBox(rect, c)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, c)
	dst.DrawTextColored(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}

// projection maps play-area units to screen cells.
type projection struct {
	sx, sy float64
}

func (p projection) x(v float64) int { return int(v * p.sx) }
func (p projection) y(v float64) int { return int(v * p.sy) }
