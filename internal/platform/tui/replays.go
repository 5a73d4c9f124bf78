package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dodge/internal/storage"
)

// Replay list layout constants
const (
	maxReplays = 100 // Max replays to load
)

// ReplayListKeyMap defines the key bindings for the replay list.
type ReplayListKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReplayListKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ReplayListKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Select, k.Delete, k.Quit},
	}
}

// DefaultReplayListKeyMap returns default key bindings.
func DefaultReplayListKeyMap() ReplayListKeyMap {
	return ReplayListKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "watch"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ReplayListModel is the Bubble Tea model for browsing saved replays.
type ReplayListModel struct {
	store    *storage.Store
	replays  []storage.ReplayEntry
	table    table.Model
	help     help.Model
	keys     ReplayListKeyMap
	err      error // Last storage error, shown under the table
	selected int64 // Replay chosen with Select; 0 if none
	width    int
	height   int
	quitting bool
}

// NewReplayListModel creates a replay list backed by the store.
func NewReplayListModel(store *storage.Store, width, height int) ReplayListModel {
	m := ReplayListModel{
		store:  store,
		keys:   DefaultReplayListKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadReplays()
	return m
}

// createTable creates a new table sized to the window.
func (m *ReplayListModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Ticks", Width: 8},
		{Title: "Length", Width: 9},
		{Title: "Seed", Width: 20},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadReplays refreshes the listing from the store.
func (m *ReplayListModel) loadReplays() {
	if m.store == nil {
		m.replays = nil
		m.updateTableRows()
		return
	}

	replays, err := m.store.ListReplays(maxReplays)
	m.err = err
	m.replays = replays
	m.updateTableRows()
}

// updateTableRows updates the table with the current listing.
func (m *ReplayListModel) updateTableRows() {
	rows := make([]table.Row, len(m.replays))
	for i, r := range m.replays {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", r.ID),
			fmt.Sprintf("%d", r.Ticks),
			r.Duration.Round(100 * time.Millisecond).String(),
			fmt.Sprintf("%d", r.Seed),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
}

// current returns the entry under the cursor.
func (m ReplayListModel) current() (storage.ReplayEntry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.replays) {
		return storage.ReplayEntry{}, false
	}
	return m.replays[i], true
}

// Init initializes the replay list model.
func (m ReplayListModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the replay list.
func (m ReplayListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if r, ok := m.current(); ok {
				m.selected = r.ID
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if r, ok := m.current(); ok && m.store != nil {
				m.err = m.store.DeleteReplay(r.ID)
				m.loadReplays()
				if m.table.Cursor() >= len(m.replays) {
					m.table.GotoBottom()
				}
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the replay list.
func (m ReplayListModel) View() string {
	if m.quitting || m.selected != 0 {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("REPLAYS", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.err.Error()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ReplayListModel) renderTableContent() string {
	if len(m.replays) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No replays recorded yet.\nPlay a session to record one!")
	}

	return m.table.View()
}

// Selected returns the replay ID chosen by the user, or 0.
func (m ReplayListModel) Selected() int64 {
	return m.selected
}

// RunReplayList runs the replay browser.
// Returns the chosen replay ID, or 0 if the user quit.
func RunReplayList(store *storage.Store, width, height int) (int64, error) {
	p := tea.NewProgram(
		NewReplayListModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	m, ok := finalModel.(ReplayListModel)
	if !ok {
		return 0, nil
	}
	return m.Selected(), nil
}
