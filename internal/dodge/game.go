// Package dodge implements the falling-object avoidance game.
// The player square slides along the bottom of the playfield, avoiding
// obstacles and picking up collectibles while the fall speed ramps up.
//
// GameState is pure simulation: it is driven by an external frame scheduler
// calling Tick and an input adapter calling ApplyMove, both on one goroutine.
package dodge

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// GameState owns every mutable piece of a session.
type GameState struct {
	cfg   config.DodgeConfig
	clock Clock
	rng   *rand.Rand
	seed  int64

	playerX float64
	playerY float64

	obstacles    []Entity
	collectibles []Entity

	speed             float64
	score             int
	tick              int
	lastSpeedIncrease int64 // Clock milliseconds of the last ramp step (or Start)
	startedAt         int64
	started           bool
	gameOver          bool
}

// Option configures a GameState at construction.
type Option func(*GameState)

// WithSeed fixes the RNG seed so spawn positions are reproducible.
func WithSeed(seed int64) Option {
	return func(g *GameState) {
		g.seed = seed
	}
}

// WithClock replaces the wall clock read by Start.
func WithClock(c Clock) Option {
	return func(g *GameState) {
		g.clock = c
	}
}

// New creates a game that has not started yet.
// cfg must satisfy config.DodgeConfig.Validate; it is not checked here.
func New(cfg config.DodgeConfig, opts ...Option) *GameState {
	g := &GameState{
		cfg:   cfg,
		clock: SystemClock{},
		seed:  time.Now().UnixNano(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.rng = rand.New(rand.NewSource(g.seed))
	g.playerX = g.centerX()
	g.playerY = g.baseY()
	g.speed = cfg.Speed.Initial
	return g
}

// Reseed resets the RNG. Takes effect for every spawn after the call,
// so calling it right before Start makes the next session reproducible.
func (g *GameState) Reseed(seed int64) {
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))
}

// Seed returns the seed last applied to the RNG.
func (g *GameState) Seed() int64 {
	return g.seed
}

// Config returns the configuration the game was built with.
func (g *GameState) Config() config.DodgeConfig {
	return g.cfg
}

// Start begins a fresh session, discarding any previous one.
func (g *GameState) Start() {
	now := g.clock.NowMillis()

	g.obstacles = g.obstacles[:0]
	g.collectibles = g.collectibles[:0]
	g.score = 0
	g.tick = 0
	g.speed = g.cfg.Speed.Initial
	g.lastSpeedIncrease = now
	g.startedAt = now
	g.gameOver = false
	g.started = true
	g.playerX = g.centerX()
	g.playerY = g.baseY()

	for i := 0; i < g.cfg.Obstacles.Count; i++ {
		g.obstacles = append(g.obstacles, g.spawn(Obstacle))
	}
	for i := 0; i < g.cfg.Collectibles.Count; i++ {
		g.collectibles = append(g.collectibles, g.spawn(Collectible))
	}
}

// ApplyMove shifts the player one step and clamps it inside the playfield.
// Ignored before Start and after game over.
func (g *GameState) ApplyMove(dir Direction) {
	if !g.active() {
		return
	}

	step := g.cfg.Player.MoveStep
	if dir == Left {
		step = -step
	}
	g.playerX = core.ClampF(g.playerX+step, 0, g.maxPlayerX())
}

// Tick advances the simulation to nowMillis and reports the resulting frame.
// Ignored before Start and after game over; the returned snapshot is then unchanged.
func (g *GameState) Tick(nowMillis int64) FrameResult {
	if !g.active() {
		return g.Snapshot()
	}
	g.tick++

	// At most one ramp step per tick, however late the tick is
	speedIncreased := false
	if nowMillis-g.lastSpeedIncrease > g.cfg.Speed.IntervalMs {
		g.speed += g.cfg.Speed.Increment
		g.lastSpeedIncrease = nowMillis
		speedIncreased = true
	}

	g.advance(g.obstacles)
	g.advance(g.collectibles)

	player := g.playerRect()
	for _, o := range g.obstacles {
		if player.Intersects(o.Rect()) {
			g.gameOver = true
		}
	}

	// A collision ends the session before anything else is scored
	collected := 0
	if !g.gameOver {
		for i := range g.collectibles {
			if player.Intersects(g.collectibles[i].Rect()) {
				g.score += g.cfg.Scoring.Reward
				g.collectibles[i] = g.spawn(Collectible)
				collected++
			}
		}
	}

	frame := g.Snapshot()
	frame.Collected = collected
	frame.SpeedIncreased = speedIncreased
	return frame
}

// IsOver reports whether the current session has ended.
func (g *GameState) IsOver() bool {
	return g.gameOver
}

// Started reports whether Start has been called.
func (g *GameState) Started() bool {
	return g.started
}

// StartedAt returns the clock reading taken by the last Start.
func (g *GameState) StartedAt() int64 {
	return g.startedAt
}

// Score returns the current score.
func (g *GameState) Score() int {
	return g.score
}

// Speed returns the current fall speed in world units per tick.
func (g *GameState) Speed() float64 {
	return g.speed
}

// Snapshot returns the current state without advancing it.
func (g *GameState) Snapshot() FrameResult {
	return FrameResult{
		Bounds:       core.NewRectF(0, 0, g.cfg.Playfield.Width, g.cfg.Playfield.Height),
		Player:       g.playerRect(),
		Obstacles:    append([]Entity(nil), g.obstacles...),
		Collectibles: append([]Entity(nil), g.collectibles...),
		Score:        g.score,
		Speed:        g.speed,
		Tick:         g.tick,
		Started:      g.started,
		GameOver:     g.gameOver,
	}
}

// active reports whether simulation and input currently have any effect.
func (g *GameState) active() bool {
	return g.started && !g.gameOver
}

// advance moves entities down and replaces the ones that left the playfield.
// Replacement happens in place so collection sizes never change.
func (g *GameState) advance(entities []Entity) {
	for i := range entities {
		entities[i].Y += g.speed
		if entities[i].Y > g.cfg.Playfield.Height {
			entities[i] = g.spawn(entities[i].Kind)
		}
	}
}

// spawn creates an entity just above the top edge at a random column.
func (g *GameState) spawn(kind Kind) Entity {
	size := g.cfg.Obstacles.Size
	if kind == Collectible {
		size = g.cfg.Collectibles.Size
	}
	return Entity{
		Kind: kind,
		X:    g.rng.Float64() * (g.cfg.Playfield.Width - size),
		Y:    -size,
		Size: size,
	}
}

// playerRect returns the player's collision box.
func (g *GameState) playerRect() core.RectF {
	return core.Square(g.playerX, g.playerY, g.cfg.Player.Size)
}

func (g *GameState) maxPlayerX() float64 {
	return g.cfg.Playfield.Width - g.cfg.Player.Size
}

func (g *GameState) centerX() float64 {
	return g.cfg.Playfield.Width/2 - g.cfg.Player.Size/2
}

func (g *GameState) baseY() float64 {
	return g.cfg.Playfield.Height - g.cfg.Player.Size - g.cfg.Player.BottomMargin
}
