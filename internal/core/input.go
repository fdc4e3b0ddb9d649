package core

// Action represents a semantic game intent, abstracted from physical key presses.
// The mapping of keys to actions is owned by the platform layer.
type Action int

const (
	ActionNone           Action = iota
	ActionJump                  // Space, W, Up - flap upward
	ActionMoveLeft              // A, Left arrow - nudge left
	ActionMoveRight             // D, Right arrow - nudge right
	ActionTogglePause           // P - pause/unpause
	ActionStartOrRestart        // Enter, R, Space on title/game over screens
	ActionBack                  // B, Escape - go back to menu
	ActionQuit                  // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionTogglePause:
		return "TogglePause"
	case ActionStartOrRestart:
		return "StartOrRestart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the intents triggered during one simulation tick.
// Repeated presses of the same action within a tick are counted, so two
// MoveLeft key events between ticks move the player twice.
type InputFrame struct {
	Actions map[Action]int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]int),
	}
}

// Set records one occurrence of an action for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]int)
	}
	f.Actions[a]++
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Count(a) > 0
}

// Count returns how many times the action was triggered this frame.
func (f InputFrame) Count(a Action) int {
	if f.Actions == nil {
		return 0
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
