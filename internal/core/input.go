package core

// Action represents a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionQuit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether a is one of the four movement actions.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}

// InputFrame collects the movement received between two simulation ticks.
// Only the most recent movement action is kept. Quit is not buffered.
type InputFrame struct {
	move Action
}

// Set records an action for this frame. Non-movement actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a.IsMove() {
		f.move = a
	}
}

// Move returns the last movement action of the frame, if any.
func (f InputFrame) Move() (Action, bool) {
	return f.move, f.move != ActionNone
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	*f = InputFrame{}
}
