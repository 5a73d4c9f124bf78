// Package replay records the inputs that drive a session and re-simulates
// them. A GameState is deterministic given its seed, the Start clock reading,
// and the ordered sequence of moves and tick timestamps, so that is all a
// recording holds.
package replay

import (
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/dodge"
)

// EventKind tags a recorded event.
type EventKind uint8

const (
	EventTick EventKind = iota + 1
	EventMove
)

// Event is one call into the GameState.
type Event struct {
	Kind EventKind       `msgpack:"k"`
	At   int64           `msgpack:"t,omitempty"` // Tick timestamp in clock milliseconds
	Dir  dodge.Direction `msgpack:"d,omitempty"` // Move direction
}

// Recording is a complete, replayable session.
type Recording struct {
	Seed      int64
	StartedAt int64 // Clock reading taken by Start
	Config    config.DodgeConfig
	Events    []Event
}

// Ticks returns the number of tick events in the recording.
func (r Recording) Ticks() int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == EventTick {
			n++
		}
	}
	return n
}

// DurationMillis returns the span between Start and the last tick.
func (r Recording) DurationMillis() int64 {
	for i := len(r.Events) - 1; i >= 0; i-- {
		if r.Events[i].Kind == EventTick {
			return r.Events[i].At - r.StartedAt
		}
	}
	return 0
}

// Recorder captures events as the platform drives a game.
// Like the GameState it is used from a single goroutine.
type Recorder struct {
	rec    Recording
	active bool
}

// NewRecorder creates an idle recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Begin discards anything recorded so far and starts a new recording for a
// session that was just started on g.
func (r *Recorder) Begin(g *dodge.GameState) {
	r.rec = Recording{
		Seed:      g.Seed(),
		StartedAt: g.StartedAt(),
		Config:    g.Config(),
		Events:    make([]Event, 0, 1024),
	}
	r.active = true
}

// Tick records a tick timestamp.
func (r *Recorder) Tick(at int64) {
	if !r.active {
		return
	}
	r.rec.Events = append(r.rec.Events, Event{Kind: EventTick, At: at})
}

// Move records a move.
func (r *Recorder) Move(d dodge.Direction) {
	if !r.active {
		return
	}
	r.rec.Events = append(r.rec.Events, Event{Kind: EventMove, Dir: d})
}

// Stop ends the recording and returns it. Later events are ignored until Begin.
func (r *Recorder) Stop() Recording {
	r.active = false
	return r.Recording()
}

// Recording returns a copy of what has been recorded so far.
func (r *Recorder) Recording() Recording {
	rec := r.rec
	rec.Events = append([]Event(nil), r.rec.Events...)
	return rec
}

// Active reports whether the recorder is capturing events.
func (r *Recorder) Active() bool {
	return r.active
}
