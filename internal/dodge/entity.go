package dodge

import "github.com/vovakirdan/tui-dodge/internal/core"

// Kind tags a falling entity.
type Kind int

const (
	Obstacle Kind = iota
	Collectible
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Obstacle:
		return "obstacle"
	case Collectible:
		return "collectible"
	default:
		return "unknown"
	}
}

// Entity is a falling square, either an obstacle or a collectible.
type Entity struct {
	Kind Kind
	X, Y float64 // Top-left corner in world units
	Size float64
}

// Rect returns the collision box for this entity.
func (e Entity) Rect() core.RectF {
	return core.Square(e.X, e.Y, e.Size)
}

// Direction is the normalized move signal produced by input adapters.
type Direction int

const (
	Left Direction = iota
	Right
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// DirectionFor converts a platform action to a move direction.
// ok is false for actions that are not moves.
func DirectionFor(a core.Action) (d Direction, ok bool) {
	switch a {
	case core.ActionLeft:
		return Left, true
	case core.ActionRight:
		return Right, true
	default:
		return Left, false
	}
}
