package replay

import (
	"github.com/vovakirdan/tui-dodge/internal/dodge"
)

// Player re-simulates a recording one tick at a time.
type Player struct {
	rec   Recording
	game  *dodge.GameState
	next  int
	frame dodge.FrameResult
}

// NewPlayer builds a fresh GameState from the recording and starts it.
func NewPlayer(rec Recording) *Player {
	g := dodge.New(rec.Config,
		dodge.WithSeed(rec.Seed),
		dodge.WithClock(dodge.ClockFunc(func() int64 { return rec.StartedAt })),
	)
	g.Start()

	return &Player{
		rec:   rec,
		game:  g,
		frame: g.Snapshot(),
	}
}

// Step applies events up to and including the next tick.
// Returns false once the recording is exhausted.
func (p *Player) Step() (dodge.FrameResult, bool) {
	for p.next < len(p.rec.Events) {
		e := p.rec.Events[p.next]
		p.next++

		switch e.Kind {
		case EventMove:
			p.game.ApplyMove(e.Dir)
		case EventTick:
			p.frame = p.game.Tick(e.At)
			return p.frame, true
		}
	}
	return p.frame, false
}

// Frame returns the most recent frame.
func (p *Player) Frame() dodge.FrameResult {
	return p.frame
}

// Done reports whether every event has been applied.
func (p *Player) Done() bool {
	return p.next >= len(p.rec.Events)
}

// Progress returns the fraction of events applied, in [0, 1].
func (p *Player) Progress() float64 {
	if len(p.rec.Events) == 0 {
		return 1
	}
	return float64(p.next) / float64(len(p.rec.Events))
}

// Play re-simulates a whole recording and returns the final frame.
func Play(rec Recording) dodge.FrameResult {
	p := NewPlayer(rec)
	for {
		if _, ok := p.Step(); !ok {
			return p.Frame()
		}
	}
}
