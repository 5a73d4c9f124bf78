package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/session"
)

// Debug font cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

var (
	backgroundColor  = color.RGBA{R: 18, G: 18, B: 28, A: 255}
	playerColor      = color.RGBA{R: 50, G: 110, B: 255, A: 255}
	obstacleColor    = color.RGBA{R: 230, G: 50, B: 50, A: 255}
	collectibleColor = color.RGBA{R: 60, G: 200, B: 90, A: 255}
	panelColor       = color.RGBA{A: 180}
)

// Draw renders the latest frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	f := g.sess.Frame()
	if f.Started {
		for _, e := range f.Collectibles {
			fillRect(screen, e.Rect(), collectibleColor)
		}
		for _, e := range f.Obstacles {
			fillRect(screen, e.Rect(), obstacleColor)
		}
		fillRect(screen, f.Player, playerColor)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", f.Score), 8, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Speed: %.1f", f.Speed), 8, 8+glyphH)

	switch g.sess.Phase() {
	case session.PhaseIdle:
		g.drawPanel(screen, "DODGE", "", "Avoid red, catch green", "", "Press ENTER or click to start")
	case session.PhasePaused:
		g.drawPanel(screen, "PAUSED", "", "Press P to resume")
	case session.PhaseOver:
		lines := []string{"GAME OVER", "", fmt.Sprintf("Score: %d", f.Score), "", "Press ENTER or click to restart"}
		if id := g.sess.SavedID(); id > 0 {
			lines = append(lines, fmt.Sprintf("Replay #%d saved", id))
		}
		g.drawPanel(screen, lines...)
	}
}

func fillRect(dst *ebiten.Image, r core.RectF, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// drawPanel draws centered lines of debug text over a translucent box.
func (g *Game) drawPanel(screen *ebiten.Image, lines ...string) {
	longest := 0
	for _, l := range lines {
		longest = core.Max(longest, len(l))
	}
	w := longest*glyphW + 32
	h := len(lines)*glyphH + 24
	x := (g.width() - w) / 2
	y := (g.height() - h) / 2

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), panelColor, false)
	for i, l := range lines {
		lx := x + (w-len(l)*glyphW)/2
		ebitenutil.DebugPrintAt(screen, l, lx, y+12+i*glyphH)
	}
}
