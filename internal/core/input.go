package core

// Action is a semantic game action, abstracted from physical key presses.
// The platform maps raw terminal keys to actions; the game only sees these.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow, K - slide up
	ActionDown           // S, Down arrow, J - slide down
	ActionLeft           // A, Left arrow, H - slide left
	ActionRight          // D, Right arrow, L - slide right
	ActionRestart        // R - reset the board (works in any state)
	ActionConfirm        // Enter - confirm in auxiliary screens
	ActionBack           // B, Escape - leave auxiliary screens
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionRestart:
		return "Restart"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for a single simulation tick. Keys are
// edge-triggered: a terminal delivers one event per press, the platform
// records it here and clears the frame after the tick, so each action
// fires at most once per frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
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
