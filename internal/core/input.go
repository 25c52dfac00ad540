package core

// Action represents a semantic game action, abstracted from physical key
// presses. The game works with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Left arrow, A - move piece left
	ActionRight           // Right arrow, D - move piece right
	ActionSoftDrop        // Down arrow, S - accelerate the fall
	ActionRotate          // Space, Up, W - rotate clockwise
	ActionPause           // P - pause/unpause
	ActionRestart         // R - restart after game over
	ActionQuit            // Q, Ctrl+C - exit
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
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotate:
		return "Rotate"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// Pressed actions fire exactly on the tick the key went down; held actions
// stay set for as long as the platform considers the key down. Movement and
// soft drop consume held state, rotation and the toggles consume pressed.
type InputFrame struct {
	pressed map[Action]bool
	held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		pressed: make(map[Action]bool),
		held:    make(map[Action]bool),
	}
}

// Press marks an action as triggered on this tick (and implicitly held).
func (f *InputFrame) Press(a Action) {
	if f.pressed == nil {
		f.pressed = make(map[Action]bool)
	}
	f.pressed[a] = true
	f.Hold(a)
}

// Hold marks an action as held during this tick.
func (f *InputFrame) Hold(a Action) {
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
	f.held[a] = true
}

// Pressed returns true if the action was triggered on this tick.
func (f InputFrame) Pressed(a Action) bool {
	return f.pressed[a]
}

// Held returns true if the action is down during this tick.
func (f InputFrame) Held(a Action) bool {
	return f.held[a]
}

// Clear resets all actions for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.pressed {
		delete(f.pressed, k)
	}
	for k := range f.held {
		delete(f.held, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.pressed {
		clone.pressed[k] = v
	}
	for k, v := range f.held {
		clone.held[k] = v
	}
	return clone
}
