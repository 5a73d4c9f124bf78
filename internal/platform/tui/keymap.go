package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// KeyMap defines the key bindings for a play session.
// It centralizes bindings and makes them testable.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Start   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Start, k.Pause, k.Restart},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "move right"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a semantic action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}

// MouseAction translates a mouse message to a move using the midline rule.
// Only motion and left-button presses count.
func MouseAction(msg tea.MouseMsg, width int) core.Action {
	if width <= 0 {
		return core.ActionNone
	}
	switch {
	case msg.Action == tea.MouseActionMotion:
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
	default:
		return core.ActionNone
	}
	return core.PointerAction(msg.X, width)
}
