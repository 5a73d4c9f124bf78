package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/session"
)

// pointerInput turns keyboard, mouse and touch state into actions.
// Keys are edge-triggered like key-down events; touches steer when they
// start or move, and the mouse steers whenever it moves or is clicked.
type pointerInput struct {
	cursorX, cursorY int
	cursorSeen       bool
	touches          []ebiten.TouchID
	pressed          []ebiten.TouchID
	points           []core.Touch
	tracker          core.TouchTracker
}

// poll returns the actions for this frame in the order they apply.
func (p *pointerInput) poll(width int, phase session.Phase) []core.Action {
	var actions []core.Action

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return []core.Action{core.ActionQuit}
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		actions = append(actions, core.ActionPause)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		actions = appendBegin(actions, phase)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		actions = append(actions, core.ActionRestart)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		actions = append(actions, core.ActionLeft)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		actions = append(actions, core.ActionRight)
	}

	// Touch
	p.pressed = inpututil.AppendJustPressedTouchIDs(p.pressed[:0])
	if len(p.pressed) > 0 {
		actions = appendBegin(actions, phase)
	}
	p.touches = ebiten.AppendTouchIDs(p.touches[:0])
	p.points = p.points[:0]
	for _, id := range p.touches {
		x, _ := ebiten.TouchPosition(id)
		p.points = append(p.points, core.Touch{ID: int(id), X: x})
	}
	actions = p.tracker.Moves(actions, p.points, width)

	// Mouse
	x, y := ebiten.CursorPosition()
	moved := p.cursorSeen && (x != p.cursorX || y != p.cursorY)
	p.cursorX, p.cursorY, p.cursorSeen = x, y, true

	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if clicked {
		actions = appendBegin(actions, phase)
	}
	if len(p.touches) == 0 && (moved || clicked) {
		actions = append(actions, core.PointerAction(x, width))
	}

	return actions
}

// appendBegin adds the action that begins a run from the given phase.
func appendBegin(actions []core.Action, phase session.Phase) []core.Action {
	switch phase {
	case session.PhaseIdle:
		return append(actions, core.ActionStart)
	case session.PhaseOver:
		return append(actions, core.ActionRestart)
	}
	return actions
}
