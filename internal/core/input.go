package core

// Action represents a semantic game action, abstracted from physical input.
// Keyboard, mouse and touch adapters all reduce to these values.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H, pointer in left half
	ActionRight          // Right arrow, D, L, pointer in right half
	ActionStart          // Enter, Space - begin a session from the title panel
	ActionPause          // P, Escape - pause/unpause
	ActionRestart        // R - start a new session after game over
	ActionHelp           // ? - toggle full key help
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerAction applies the midline rule: a pointer in the left half of the
// surface moves left, anything else moves right.
func PointerAction(x, width int) Action {
	if 2*x < width {
		return ActionLeft
	}
	return ActionRight
}

// Touch is one active touch point.
type Touch struct {
	ID int
	X  int
}

// TouchTracker steers like touch start and touch move events: a touch
// produces a move when it first appears and again only when its position
// changes. A held, motionless touch produces nothing.
type TouchTracker struct {
	last map[int]int // Last seen X per touch ID
}

// Moves appends one pointer action for each touch that started or moved
// since the previous call. Touches missing from touches are forgotten.
func (t *TouchTracker) Moves(dst []Action, touches []Touch, width int) []Action {
	if t.last == nil {
		t.last = make(map[int]int)
	}

	for _, tc := range touches {
		if x, ok := t.last[tc.ID]; !ok || x != tc.X {
			dst = append(dst, PointerAction(tc.X, width))
		}
	}

	clear(t.last)
	for _, tc := range touches {
		t.last[tc.ID] = tc.X
	}
	return dst
}
