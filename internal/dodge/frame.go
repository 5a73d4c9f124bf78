package dodge

import "github.com/vovakirdan/tui-dodge/internal/core"

// FrameResult is a read-only snapshot handed to renderers after each tick.
// Entity slices are copies; mutating them does not affect the game.
type FrameResult struct {
	Bounds       core.RectF // Playfield in world units
	Player       core.RectF
	Obstacles    []Entity
	Collectibles []Entity
	Score        int
	Speed        float64
	Tick         int // Productive ticks since Start
	Started      bool
	GameOver     bool

	// Events that happened during the tick that produced this frame.
	Collected      int  // Collectibles picked up
	SpeedIncreased bool // Speed ramp fired
}
