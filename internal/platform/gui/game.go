// Package gui runs the dodge game in a desktop window with Ebitengine.
// Ebitengine's Update loop is the frame scheduler: one simulation tick per
// update, at the configured ticks per second.
package gui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/session"
)

// Game implements ebiten.Game around a session.
type Game struct {
	sess  *session.Session
	cfg   config.DodgeConfig
	input pointerInput
}

// New creates a game window model. The window shows the start panel until
// the player presses Enter or clicks.
func New(cfg config.DodgeConfig, opts session.Options) *Game {
	return &Game{
		sess: session.New(cfg, opts),
		cfg:  cfg,
	}
}

// Update polls input and advances the simulation by one tick.
// Returns ebiten.Termination when the player quits.
func (g *Game) Update() error {
	for _, a := range g.input.poll(g.width(), g.sess.Phase()) {
		if a == core.ActionQuit {
			return ebiten.Termination
		}
		g.sess.Handle(a)
	}
	g.sess.Tick()
	return nil
}

// Layout returns the playfield size so world units map 1:1 to logical pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width(), g.height()
}

func (g *Game) width() int {
	return int(g.cfg.Playfield.Width)
}

func (g *Game) height() int {
	return int(g.cfg.Playfield.Height)
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(cfg config.DodgeConfig, rc core.RuntimeConfig, opts session.Options) error {
	if rc.Seed != 0 {
		opts.Seed = rc.Seed
	}
	g := New(cfg, opts)
	defer g.sess.Close()

	ebiten.SetWindowSize(g.width(), g.height())
	ebiten.SetWindowTitle("Dodge")
	if rc.TickRate > 0 {
		ebiten.SetTPS(rc.TickRate)
	}

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
