package dodge

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// fixedClock returns a clock frozen at the given millisecond.
func fixedClock(ms int64) Clock {
	return ClockFunc(func() int64 { return ms })
}

// newStartedGame creates a game with default config, seed 1, started at t=0.
func newStartedGame(t *testing.T) *GameState {
	t.Helper()
	g := New(config.DefaultDodgeConfig(), WithSeed(1), WithClock(fixedClock(0)))
	g.Start()
	return g
}

func TestNewGameIsIdle(t *testing.T) {
	g := New(config.DefaultDodgeConfig(), WithSeed(1))

	if g.Started() {
		t.Error("New game should not be started")
	}
	if g.IsOver() {
		t.Error("New game should not be over")
	}

	before := g.Snapshot()
	g.ApplyMove(Left)
	frame := g.Tick(10_000)

	if !reflect.DeepEqual(before, frame) {
		t.Errorf("Tick before Start should not change state:\nbefore %+v\nafter  %+v", before, frame)
	}
	if frame.Started || frame.Tick != 0 || len(frame.Obstacles) != 0 {
		t.Errorf("Tick before Start should return an inert frame, got %+v", frame)
	}
}

func TestStartSpawnsOneOfEach(t *testing.T) {
	g := newStartedGame(t)
	frame := g.Snapshot()

	if len(frame.Obstacles) != 1 {
		t.Fatalf("Expected 1 obstacle, got %d", len(frame.Obstacles))
	}
	if len(frame.Collectibles) != 1 {
		t.Fatalf("Expected 1 collectible, got %d", len(frame.Collectibles))
	}

	o := frame.Obstacles[0]
	if o.Kind != Obstacle || o.Y != -50 || o.Size != 50 {
		t.Errorf("Obstacle spawned as %+v, expected kind obstacle at y=-50 size 50", o)
	}
	if o.X < 0 || o.X > 750 {
		t.Errorf("Obstacle x = %v, expected within [0, 750]", o.X)
	}

	c := frame.Collectibles[0]
	if c.Kind != Collectible || c.Y != -30 || c.Size != 30 {
		t.Errorf("Collectible spawned as %+v, expected kind collectible at y=-30 size 30", c)
	}
	if c.X < 0 || c.X > 770 {
		t.Errorf("Collectible x = %v, expected within [0, 770]", c.X)
	}

	if frame.Player.X != 375 || frame.Player.Y != 540 {
		t.Errorf("Player at (%v, %v), expected (375, 540)", frame.Player.X, frame.Player.Y)
	}
	if frame.Speed != 5 || frame.Score != 0 || frame.GameOver {
		t.Errorf("Fresh session state = %+v", frame)
	}
}

func TestFirstTickMovesEntitiesBySpeed(t *testing.T) {
	g := newStartedGame(t)
	before := g.Snapshot()

	frame := g.Tick(1)

	if frame.Obstacles[0].Y != before.Obstacles[0].Y+5 {
		t.Errorf("Obstacle y = %v, expected %v", frame.Obstacles[0].Y, before.Obstacles[0].Y+5)
	}
	if frame.Collectibles[0].Y != before.Collectibles[0].Y+5 {
		t.Errorf("Collectible y = %v, expected %v", frame.Collectibles[0].Y, before.Collectibles[0].Y+5)
	}
	if frame.Obstacles[0].X != before.Obstacles[0].X {
		t.Error("Falling should not change x")
	}
	if frame.GameOver {
		t.Error("First tick should not end the game")
	}
	if frame.Score != 0 {
		t.Errorf("Score = %d, expected 0", frame.Score)
	}
	if frame.Tick != 1 {
		t.Errorf("Tick = %d, expected 1", frame.Tick)
	}
}

func TestApplyMoveClamps(t *testing.T) {
	g := newStartedGame(t)

	g.ApplyMove(Right)
	if g.playerX != 395 {
		t.Errorf("After one right move x = %v, expected 395", g.playerX)
	}

	for i := 0; i < 100; i++ {
		g.ApplyMove(Left)
	}
	if g.playerX != 0 {
		t.Errorf("After many left moves x = %v, expected 0", g.playerX)
	}

	for i := 0; i < 100; i++ {
		g.ApplyMove(Right)
	}
	if g.playerX != 750 {
		t.Errorf("After many right moves x = %v, expected 750", g.playerX)
	}
}

func TestApplyMoveClampsLargeStep(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	cfg.Player.MoveStep = 5000
	g := New(cfg, WithSeed(1), WithClock(fixedClock(0)))
	g.Start()

	g.ApplyMove(Left)
	if g.playerX != 0 {
		t.Errorf("x = %v, expected 0", g.playerX)
	}
	g.ApplyMove(Right)
	if g.playerX != 750 {
		t.Errorf("x = %v, expected 750", g.playerX)
	}
}

func TestObstacleCollisionEndsGame(t *testing.T) {
	g := newStartedGame(t)

	// After falling one step the obstacle sits exactly on the player
	g.obstacles[0].X = g.playerX
	g.obstacles[0].Y = g.playerY - g.speed

	frame := g.Tick(1)
	if !frame.GameOver || !g.IsOver() {
		t.Fatal("Overlapping obstacle should end the game")
	}

	g.Tick(2)
	if !g.IsOver() {
		t.Error("Game over should persist across ticks")
	}
}

func TestTouchingObstacleDoesNotCollide(t *testing.T) {
	g := newStartedGame(t)

	// Right edge of obstacle lands exactly on player's left edge
	g.obstacles[0].X = g.playerX - 50
	g.obstacles[0].Y = g.playerY - g.speed

	if frame := g.Tick(1); frame.GameOver {
		t.Error("Touching edges should not count as a collision")
	}
}

func TestCollectibleCollectionScoresAndRespawns(t *testing.T) {
	g := newStartedGame(t)

	g.collectibles[0].X = g.playerX + 10
	g.collectibles[0].Y = g.playerY

	frame := g.Tick(1)
	if frame.Score != 10 {
		t.Errorf("Score = %d, expected 10", frame.Score)
	}
	if frame.Collected != 1 {
		t.Errorf("Collected = %d, expected 1", frame.Collected)
	}
	if len(frame.Collectibles) != 1 {
		t.Fatalf("Expected exactly 1 collectible, got %d", len(frame.Collectibles))
	}
	if frame.Collectibles[0].Y != -30 {
		t.Errorf("Replacement collectible y = %v, expected -30", frame.Collectibles[0].Y)
	}
	if frame.GameOver {
		t.Error("Collecting should not end the game")
	}
}

func TestMultipleCollectionsInOneTick(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	cfg.Collectibles.Count = 3
	g := New(cfg, WithSeed(7), WithClock(fixedClock(0)))
	g.Start()

	// Keep the obstacle well away from the player
	g.obstacles[0].X = 0
	g.obstacles[0].Y = 0
	for i := range g.collectibles {
		g.collectibles[i].X = g.playerX + float64(i)*5
		g.collectibles[i].Y = g.playerY
	}

	frame := g.Tick(1)
	if frame.Score != 30 {
		t.Errorf("Score = %d, expected 30", frame.Score)
	}
	if frame.Collected != 3 {
		t.Errorf("Collected = %d, expected 3", frame.Collected)
	}
	if len(frame.Collectibles) != 3 {
		t.Fatalf("Expected 3 collectibles, got %d", len(frame.Collectibles))
	}
	for i, c := range frame.Collectibles {
		if c.Y != -30 {
			t.Errorf("Collectible %d y = %v, expected respawn at -30", i, c.Y)
		}
	}
}

func TestObstacleAndCollectibleSameTick(t *testing.T) {
	g := newStartedGame(t)

	g.obstacles[0].X = g.playerX
	g.obstacles[0].Y = g.playerY
	g.collectibles[0].X = g.playerX
	g.collectibles[0].Y = g.playerY

	frame := g.Tick(1)
	if !frame.GameOver {
		t.Fatal("Obstacle hit should end the game")
	}
	if frame.Score != 0 {
		t.Errorf("Collectible should not score on the losing tick, score = %d", frame.Score)
	}
	if frame.Collected != 0 {
		t.Errorf("Collected = %d, expected 0", frame.Collected)
	}
}

func TestOffscreenEntitiesRespawn(t *testing.T) {
	g := newStartedGame(t)

	g.obstacles[0].X = 0
	g.obstacles[0].Y = 598 // 603 after one tick, past the bottom
	g.collectibles[0].X = 0
	g.collectibles[0].Y = 595 // exactly 600 after one tick, still in play

	frame := g.Tick(1)
	if len(frame.Obstacles) != 1 || frame.Obstacles[0].Y != -50 {
		t.Errorf("Obstacle past the bottom should respawn at -50, got %+v", frame.Obstacles)
	}
	if len(frame.Collectibles) != 1 || frame.Collectibles[0].Y != 600 {
		t.Errorf("Collectible at the bottom edge should stay, got %+v", frame.Collectibles)
	}
	if frame.Score != 0 {
		t.Errorf("Falling off-screen should not score, got %d", frame.Score)
	}
}

func TestOffscreenCollectibleRespawns(t *testing.T) {
	g := newStartedGame(t)

	g.collectibles[0].X = 0
	g.collectibles[0].Y = 599 // 604 after one tick, past the bottom

	frame := g.Tick(1)
	if len(frame.Collectibles) != len(g.collectibles) {
		t.Fatalf("Collectible count changed to %d", len(frame.Collectibles))
	}
	if got := frame.Collectibles[0]; got.Y != -30 || got.Size != 30 || got.Kind != Collectible {
		t.Errorf("Collectible past the bottom should respawn at -30, got %+v", got)
	}
	if frame.Score != 0 || frame.Collected != 0 {
		t.Errorf("Missed collectible should not score, score %d collected %d", frame.Score, frame.Collected)
	}
}

func TestSpeedRampBoundary(t *testing.T) {
	g := newStartedGame(t)

	frame := g.Tick(5000)
	if frame.Speed != 5 || frame.SpeedIncreased {
		t.Errorf("Speed at exactly the interval = %v, expected 5 (strict comparison)", frame.Speed)
	}

	frame = g.Tick(5001)
	if frame.Speed != 5.5 || !frame.SpeedIncreased {
		t.Errorf("Speed one ms past the interval = %v, expected 5.5", frame.Speed)
	}
	if g.lastSpeedIncrease != 5001 {
		t.Errorf("lastSpeedIncrease = %d, expected 5001", g.lastSpeedIncrease)
	}

	frame = g.Tick(5002)
	if frame.Speed != 5.5 || frame.SpeedIncreased {
		t.Errorf("Speed should not ramp again immediately, got %v", frame.Speed)
	}
}

func TestSpeedRampFiresOncePerTick(t *testing.T) {
	g := newStartedGame(t)

	// Four intervals elapsed, one step allowed
	frame := g.Tick(20_001)
	if frame.Speed != 5.5 {
		t.Errorf("Speed after a long gap = %v, expected 5.5", frame.Speed)
	}
	if g.lastSpeedIncrease != 20_001 {
		t.Errorf("lastSpeedIncrease = %d, expected 20001", g.lastSpeedIncrease)
	}
}

func TestSpeedAppliesOnSameTick(t *testing.T) {
	g := newStartedGame(t)
	before := g.Snapshot()

	frame := g.Tick(5001)
	if frame.Obstacles[0].Y != before.Obstacles[0].Y+5.5 {
		t.Errorf("Obstacle y = %v, expected fall at the ramped speed 5.5", frame.Obstacles[0].Y)
	}
}

func TestGameOverFreezesState(t *testing.T) {
	g := newStartedGame(t)
	g.obstacles[0].X = g.playerX
	g.obstacles[0].Y = g.playerY
	g.Tick(1)
	if !g.IsOver() {
		t.Fatal("Setup should end the game")
	}

	frozen := g.Snapshot()

	g.ApplyMove(Left)
	g.ApplyMove(Right)
	g.ApplyMove(Right)
	frame := g.Tick(60_000)

	if !reflect.DeepEqual(frozen, frame) {
		t.Errorf("State changed after game over:\nbefore %+v\nafter  %+v", frozen, frame)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newStartedGame(t)
	g.collectibles[0].X = g.playerX
	g.collectibles[0].Y = g.playerY
	g.Tick(1)
	g.ApplyMove(Left)
	g.obstacles[0].X = g.playerX
	g.obstacles[0].Y = g.playerY
	g.Tick(6000)
	if !g.IsOver() || g.Score() != 10 {
		t.Fatalf("Setup expected game over with score 10, got over=%v score=%d", g.IsOver(), g.Score())
	}

	g.Start()
	frame := g.Snapshot()

	if frame.Score != 0 {
		t.Errorf("Score after restart = %d, expected 0", frame.Score)
	}
	if frame.GameOver {
		t.Error("Restart should clear game over")
	}
	if frame.Speed != 5 {
		t.Errorf("Speed after restart = %v, expected 5", frame.Speed)
	}
	if len(frame.Obstacles) != 1 || len(frame.Collectibles) != 1 {
		t.Errorf("Restart should spawn one of each, got %d obstacles, %d collectibles",
			len(frame.Obstacles), len(frame.Collectibles))
	}
	if frame.Obstacles[0].Y != -50 || frame.Collectibles[0].Y != -30 {
		t.Error("Restart should spawn fresh entities above the top edge")
	}
	if frame.Player.X != 375 {
		t.Errorf("Restart should recenter the player, x = %v", frame.Player.X)
	}
	if frame.Tick != 0 {
		t.Errorf("Tick after restart = %d, expected 0", frame.Tick)
	}
}

func TestStartReadsClock(t *testing.T) {
	now := int64(1_000)
	g := New(config.DefaultDodgeConfig(), WithSeed(1), WithClock(ClockFunc(func() int64 { return now })))
	g.Start()

	if g.StartedAt() != 1_000 {
		t.Errorf("StartedAt() = %d, expected 1000", g.StartedAt())
	}

	// Ramp is measured from Start, not from zero
	if frame := g.Tick(6_000); frame.SpeedIncreased {
		t.Error("Ramp should not fire 5000ms after Start")
	}
	if frame := g.Tick(6_001); !frame.SpeedIncreased {
		t.Error("Ramp should fire 5001ms after Start")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newStartedGame(t)
	frame := g.Snapshot()

	frame.Obstacles[0].Y = 12345
	frame.Collectibles[0].X = -1

	if g.obstacles[0].Y == 12345 || g.collectibles[0].X == -1 {
		t.Error("Mutating a snapshot should not affect the game")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() FrameResult {
		g := New(config.DefaultDodgeConfig(), WithSeed(12345), WithClock(fixedClock(0)))
		g.Start()
		var frame FrameResult
		for i := 1; i <= 500 && !g.IsOver(); i++ {
			if i%7 == 0 {
				g.ApplyMove(Left)
			}
			if i%11 == 0 {
				g.ApplyMove(Right)
			}
			frame = g.Tick(int64(i) * 16)
		}
		return frame
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Same seed and inputs should give identical frames:\n%+v\n%+v", a, b)
	}
}

func TestReseedReproducesSpawns(t *testing.T) {
	g := New(config.DefaultDodgeConfig(), WithSeed(1), WithClock(fixedClock(0)))
	g.Reseed(99)
	g.Start()
	first := g.Snapshot()

	g.Reseed(99)
	g.Start()
	second := g.Snapshot()

	if !reflect.DeepEqual(first.Obstacles, second.Obstacles) ||
		!reflect.DeepEqual(first.Collectibles, second.Collectibles) {
		t.Error("Reseeding with the same seed should reproduce spawn positions")
	}
	if g.Seed() != 99 {
		t.Errorf("Seed() = %d, expected 99", g.Seed())
	}
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	cfg.Obstacles.Count = 2
	cfg.Collectibles.Count = 3

	for seed := int64(1); seed <= 20; seed++ {
		g := New(cfg, WithSeed(seed), WithClock(fixedClock(0)))
		g.Start()
		input := rand.New(rand.NewSource(seed * 31))

		prevScore, prevSpeed := 0, g.Speed()
		for i := 1; i <= 2000 && !g.IsOver(); i++ {
			for n := input.Intn(3); n > 0; n-- {
				g.ApplyMove(Direction(input.Intn(2)))
				if g.playerX < 0 || g.playerX > 750 {
					t.Fatalf("seed %d: player x = %v out of bounds", seed, g.playerX)
				}
			}

			frame := g.Tick(int64(i) * 100)

			if frame.Score < prevScore {
				t.Fatalf("seed %d: score decreased %d -> %d", seed, prevScore, frame.Score)
			}
			if frame.Score-prevScore != frame.Collected*10 {
				t.Fatalf("seed %d: score delta %d does not match %d collections",
					seed, frame.Score-prevScore, frame.Collected)
			}
			if frame.Speed < prevSpeed || frame.Speed-prevSpeed > 0.5 {
				t.Fatalf("seed %d: speed went %v -> %v", seed, prevSpeed, frame.Speed)
			}
			if len(frame.Obstacles) != 2 || len(frame.Collectibles) != 3 {
				t.Fatalf("seed %d: collection sizes changed to %d/%d",
					seed, len(frame.Obstacles), len(frame.Collectibles))
			}
			prevScore, prevSpeed = frame.Score, frame.Speed
		}
	}
}

func TestDirectionFor(t *testing.T) {
	tests := []struct {
		action   core.Action
		expected Direction
		ok       bool
	}{
		{core.ActionLeft, Left, true},
		{core.ActionRight, Right, true},
		{core.ActionNone, Left, false},
		{core.ActionPause, Left, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			d, ok := DirectionFor(tc.action)
			if ok != tc.ok || (ok && d != tc.expected) {
				t.Errorf("DirectionFor(%v) = (%v, %v), expected (%v, %v)", tc.action, d, ok, tc.expected, tc.ok)
			}
		})
	}
}
