package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/dodge"
	"github.com/vovakirdan/tui-dodge/internal/replay"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

// shortRecording builds a recording of a few ticks with one move.
func shortRecording(ticks int) replay.Recording {
	g := dodge.New(config.DefaultDodgeConfig(),
		dodge.WithSeed(3),
		dodge.WithClock(dodge.ClockFunc(func() int64 { return 0 })),
	)
	g.Start()

	r := replay.NewRecorder()
	r.Begin(g)
	g.ApplyMove(dodge.Left)
	r.Move(dodge.Left)
	for i := 1; i <= ticks; i++ {
		at := int64(i) * 16
		r.Tick(at)
		g.Tick(at)
	}
	return r.Stop()
}

func sendReplay(t *testing.T, m ReplayModel, msg tea.Msg) (ReplayModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(ReplayModel)
	if !ok {
		t.Fatalf("Update returned %T, expected ReplayModel", next)
	}
	return nm, cmd
}

func TestReplayModelPlaysToEnd(t *testing.T) {
	rec := shortRecording(3)
	m := NewReplayModel(7, rec, testRuntime())

	var cmd tea.Cmd
	for i := 0; i < 10 && !m.player.Done(); i++ {
		m, cmd = sendReplay(t, m, tick())
	}
	if !m.player.Done() {
		t.Fatal("Playback should finish")
	}
	if cmd != nil {
		t.Error("Tick loop should stop at the end of the recording")
	}
	if m.player.Frame().Tick != 3 {
		t.Errorf("Final tick = %d, expected 3", m.player.Frame().Tick)
	}

	view := m.View()
	if !strings.Contains(view, "END OF REPLAY") {
		t.Error("End panel should be shown")
	}
	if !strings.Contains(view, "REPLAY #7") {
		t.Error("Status should name the replay")
	}
}

func TestReplayModelPause(t *testing.T) {
	m := NewReplayModel(1, shortRecording(5), testRuntime())

	m, _ = sendReplay(t, m, runeKey('p'))
	m, cmd := sendReplay(t, m, tick())
	if cmd != nil || m.player.Frame().Tick != 0 {
		t.Error("Paused playback should not advance")
	}

	m, cmd = sendReplay(t, m, runeKey('p'))
	if cmd == nil {
		t.Fatal("Resuming should re-arm the tick loop")
	}
	m, _ = sendReplay(t, m, tick())
	if m.player.Frame().Tick != 1 {
		t.Errorf("Tick after resume = %d, expected 1", m.player.Frame().Tick)
	}
}

func TestReplayModelIgnoresPlayerInput(t *testing.T) {
	m := NewReplayModel(1, shortRecording(5), testRuntime())
	before := m.player.Frame().Player

	m, _ = sendReplay(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.player.Frame().Player != before {
		t.Error("Playback must not accept moves")
	}
}

func TestReplayListSelectAndDelete(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "replays.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	first, err := store.SaveReplay(shortRecording(2))
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	second, err := store.SaveReplay(shortRecording(4))
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	m := NewReplayListModel(store, 80, 24)
	if len(m.replays) != 2 {
		t.Fatalf("Expected 2 replays listed, got %d", len(m.replays))
	}

	next, _ := m.Update(runeKey('x'))
	m = next.(ReplayListModel)
	if len(m.replays) != 1 || m.replays[0].ID != first {
		t.Fatalf("Delete should remove the newest replay #%d, left %+v", second, m.replays)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(ReplayListModel)
	if m.Selected() != first {
		t.Errorf("Selected() = %d, expected %d", m.Selected(), first)
	}
	if cmd == nil {
		t.Error("Select should quit the browser")
	}
}

func TestReplayListEmpty(t *testing.T) {
	m := NewReplayListModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No replays recorded yet") {
		t.Error("Empty listing should show a hint")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if next.(ReplayListModel).Selected() != 0 {
		t.Error("Select on an empty list should choose nothing")
	}
}
