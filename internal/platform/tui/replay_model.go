package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/replay"
)

// ReplayModel plays a recording back, one recorded tick per frame.
type ReplayModel struct {
	id       int64
	player   *replay.Player
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	paused   bool
	ticking  bool
	quitting bool
	width    int
	height   int
}

// NewReplayModel creates a playback model for the given recording.
func NewReplayModel(id int64, rec replay.Recording, rc core.RuntimeConfig) ReplayModel {
	keys := DefaultKeyMap()
	keys.Left.SetEnabled(false)
	keys.Right.SetEnabled(false)
	keys.Start.SetEnabled(false)
	keys.Restart.SetEnabled(false)

	return ReplayModel{
		id:      id,
		player:  replay.NewPlayer(rec),
		screen:  core.NewScreen(rc.ScreenW, core.Max(rc.ScreenH-1, 1)),
		keys:    keys,
		help:    help.New(),
		config:  rc,
		ticking: true, // Armed by Init
		width:   rc.ScreenW,
		height:  rc.ScreenH,
	}
}

// Init starts playback.
func (m ReplayModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(fmt.Sprintf("dodge replay #%d", m.id)),
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages for playback.
func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keys.Action(msg) {
		case core.ActionQuit:
			m.quitting = true
			return m, tea.Quit
		case core.ActionHelp:
			m.help.ShowAll = !m.help.ShowAll
		case core.ActionPause:
			if m.player.Done() {
				return m, nil
			}
			m.paused = !m.paused
			if !m.paused && !m.ticking {
				m.ticking = true
				return m, tickCmd(m.config.TickRate)
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.ticking = false
		if m.paused {
			return m, nil
		}
		if _, ok := m.player.Step(); !ok || m.player.Done() {
			return m, nil
		}
		m.ticking = true
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// View renders the replay frame with a progress indicator.
func (m ReplayModel) View() string {
	if m.quitting {
		return ""
	}

	helpView := helpStyle.Render(m.help.View(m.keys))
	fitScreen(m.screen, m.width, m.height-lipgloss.Height(helpView))

	view := frameView{
		status: fmt.Sprintf("REPLAY #%d %3.0f%%", m.id, m.player.Progress()*100),
	}
	switch {
	case m.player.Done():
		view.overlay = overlayReplayEnd
	case m.paused:
		view.overlay = overlayPaused
	}
	drawFrame(m.screen, m.player.Frame(), view)

	return RenderScreen(m.screen) + "\n" + helpView
}

// RunReplay plays a recording in the terminal until the user quits.
func RunReplay(id int64, rec replay.Recording, rc core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewReplayModel(id, rec, rc),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
