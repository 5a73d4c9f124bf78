// Package session drives one player's run of the dodge game for an
// interactive front end: it owns the game, its pausable clock and the replay
// recorder, and saves the replay when a run ends.
//
// Front ends translate their input to core.Action values and call Tick once
// per frame; a Session is used from a single goroutine.
package session

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/dodge"
	"github.com/vovakirdan/tui-dodge/internal/replay"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

// Phase is the lifecycle stage of a session.
type Phase int

const (
	PhaseIdle    Phase = iota // Waiting for the first start
	PhasePlaying              // Ticks and moves reach the game
	PhasePaused               // Clock frozen, input ignored
	PhaseOver                 // Waiting for restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Options holds the optional collaborators of a session.
type Options struct {
	Seed   int64            // 0 means time based
	Store  *storage.Store   // Replays are saved here on game over; nil disables saving
	Logger *log.Logger      // Defaults to a discarding logger
	Record bool             // Capture a replay of every run
	Now    func() time.Time // Wall clock; defaults to time.Now
}

// Session is one player's sequence of runs.
type Session struct {
	game     *dodge.GameState
	clock    *dodge.PausableClock
	recorder *replay.Recorder
	store    *storage.Store
	logger   *log.Logger
	frame    dodge.FrameResult
	savedID  int64
}

// New creates an idle session.
func New(cfg config.DodgeConfig, opts Options) *Session {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	clock := dodge.NewPausableClock(opts.Now)
	game := dodge.New(cfg, dodge.WithSeed(seed), dodge.WithClock(clock))

	s := &Session{
		game:   game,
		clock:  clock,
		store:  opts.Store,
		logger: logger,
		frame:  game.Snapshot(),
	}
	if opts.Record {
		s.recorder = replay.NewRecorder()
	}
	return s
}

// Phase returns the current lifecycle stage.
func (s *Session) Phase() Phase {
	switch {
	case !s.game.Started():
		return PhaseIdle
	case s.game.IsOver():
		return PhaseOver
	case s.clock.Paused():
		return PhasePaused
	}
	return PhasePlaying
}

// Frame returns the latest frame.
func (s *Session) Frame() dodge.FrameResult {
	return s.frame
}

// SavedID returns the replay ID saved for the last finished run, or 0.
func (s *Session) SavedID() int64 {
	return s.savedID
}

// Seed returns the seed of the current run.
func (s *Session) Seed() int64 {
	return s.game.Seed()
}

// Handle applies an action and reports whether the caller's frame scheduler
// should (re)start: a run began or was resumed. Quit is left to the caller.
func (s *Session) Handle(a core.Action) (schedule bool) {
	switch a {
	case core.ActionStart:
		return s.Start()
	case core.ActionRestart:
		return s.Restart()
	case core.ActionPause:
		return s.TogglePause() == PhasePlaying
	case core.ActionLeft, core.ActionRight:
		s.Move(a)
	}
	return false
}

// Start begins the first run. It does nothing once a run has started.
func (s *Session) Start() bool {
	if s.Phase() != PhaseIdle {
		return false
	}
	s.begin()
	return true
}

// Restart begins a new run with a fresh seed after game over.
func (s *Session) Restart() bool {
	if s.Phase() != PhaseOver {
		return false
	}
	s.game.Reseed(time.Now().UnixNano())
	s.begin()
	return true
}

func (s *Session) begin() {
	s.clock.Resume()
	s.game.Start()
	if s.recorder != nil {
		s.recorder.Begin(s.game)
	}
	s.frame = s.game.Snapshot()
	s.savedID = 0

	s.logger.Info("run started", "seed", s.game.Seed())
}

// TogglePause freezes or resumes a run in progress and returns the new phase.
func (s *Session) TogglePause() Phase {
	switch s.Phase() {
	case PhasePlaying:
		s.clock.Pause()
		s.logger.Debug("paused", "tick", s.frame.Tick)
	case PhasePaused:
		s.clock.Resume()
		s.logger.Debug("resumed")
	}
	return s.Phase()
}

// Move forwards a directional action to the game while playing.
func (s *Session) Move(a core.Action) {
	if s.Phase() != PhasePlaying {
		return
	}
	d, ok := dodge.DirectionFor(a)
	if !ok {
		return
	}
	s.game.ApplyMove(d)
	if s.recorder != nil {
		s.recorder.Move(d)
	}
	s.frame.Player = s.game.Snapshot().Player
}

// Tick advances the run by one frame and reports whether the scheduler
// should keep ticking. Outside PhasePlaying it does nothing.
func (s *Session) Tick() bool {
	if s.Phase() != PhasePlaying {
		return false
	}

	at := s.clock.NowMillis()
	if s.recorder != nil {
		s.recorder.Tick(at)
	}
	s.frame = s.game.Tick(at)

	if s.frame.Collected > 0 {
		s.logger.Debug("collected", "count", s.frame.Collected, "score", s.frame.Score)
	}
	if s.frame.SpeedIncreased {
		s.logger.Debug("speed increased", "speed", s.frame.Speed)
	}
	if s.frame.GameOver {
		s.finish()
		return false
	}
	return true
}

// finish logs the result and saves the replay (best effort).
func (s *Session) finish() {
	s.logger.Info("game over", "score", s.frame.Score, "ticks", s.frame.Tick)

	if s.recorder == nil {
		return
	}
	rec := s.recorder.Stop()
	if s.store == nil {
		return
	}

	id, err := s.store.SaveReplay(rec)
	if err != nil {
		s.logger.Warn("could not save replay", "error", err)
		return
	}
	s.savedID = id
	s.logger.Info("replay saved", "id", id, "events", len(rec.Events))
}

// Close logs an unfinished run. It does not save it.
func (s *Session) Close() {
	if p := s.Phase(); p == PhasePlaying || p == PhasePaused {
		s.logger.Info("run abandoned", "score", s.frame.Score, "ticks", s.frame.Tick)
	}
}
