package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/session"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a play session.
type Model struct {
	sess     *session.Session
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	ticking  bool // A TickMsg is in flight
	quitting bool
	width    int
	height   int
}

// NewModel creates a new Bubble Tea model around a fresh session.
// rc.Seed overrides opts.Seed when set.
func NewModel(cfg config.DodgeConfig, rc core.RuntimeConfig, opts session.Options) Model {
	if rc.Seed != 0 {
		opts.Seed = rc.Seed
	}

	return Model{
		sess:   session.New(cfg, opts),
		screen: core.NewScreen(rc.ScreenW, core.Max(rc.ScreenH-1, 1)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		config: rc,
		width:  rc.ScreenW,
		height: rc.ScreenH,
	}
}

// Init sets the window title; the tick loop starts with the first run.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("dodge")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.Action(msg))

	case tea.MouseMsg:
		if a := MouseAction(msg, m.width); a != core.ActionNone {
			m.sess.Move(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.ticking = false
		if m.sess.Tick() {
			return m.scheduleTick()
		}
		return m, nil
	}

	return m, nil
}

// handleAction applies a semantic action from the keyboard.
func (m Model) handleAction(a core.Action) (tea.Model, tea.Cmd) {
	switch a {
	case core.ActionQuit:
		m.sess.Close()
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.sess.Handle(a) {
		return m.scheduleTick()
	}
	return m, nil
}

// scheduleTick arms the next tick unless one is already in flight.
func (m Model) scheduleTick() (tea.Model, tea.Cmd) {
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.config.TickRate)
}

// overlay picks the panel for the current phase.
func (m Model) overlay() overlay {
	switch m.sess.Phase() {
	case session.PhaseIdle:
		return overlayStart
	case session.PhaseOver:
		return overlayGameOver
	case session.PhasePaused:
		return overlayPaused
	}
	return overlayNone
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := helpStyle.Render(m.help.View(m.keys))
	fitScreen(m.screen, m.width, m.height-lipgloss.Height(helpView))

	status := ""
	if m.sess.SavedID() > 0 {
		status = "replay saved"
	}
	drawFrame(m.screen, m.sess.Frame(), frameView{overlay: m.overlay(), status: status})

	return RenderScreen(m.screen) + "\n" + helpView
}

// fitScreen resizes the buffer when the space available for it changed.
func fitScreen(s *core.Screen, w, h int) {
	w, h = core.Max(w, 1), core.Max(h, 1)
	if s.Width() != w || s.Height() != h {
		s.Resize(w, h)
	}
}

// Run starts the Bubble Tea program for a play session.
func Run(cfg config.DodgeConfig, rc core.RuntimeConfig, opts session.Options) error {
	model := NewModel(cfg, rc, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer steering needs motion without a button held
	)

	_, err := p.Run()
	return err
}
