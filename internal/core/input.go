package core

// Action is a semantic game action, abstracted from physical key presses.
// The platform maps keys and mouse buttons to actions; games never see raw
// input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move cursor up / increase duration
	ActionDown           // S, Down arrow - move cursor down / decrease duration
	ActionLeft           // A, Left arrow - move cursor left
	ActionRight          // D, Right arrow - move cursor right
	ActionPress          // Space, Enter - press at the cursor / start the round
	ActionConfirm        // Enter - confirm a menu selection
	ActionBack           // B, Escape - leave the game or menu
	ActionRestart        // R - back to the start screen after a round ends
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
	case ActionPress:
		return "Press"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Click is a pointer press at a terminal cell position.
type Click struct {
	X, Y int
}

// InputFrame carries all input gathered during one simulation tick: the set
// of triggered actions plus an optional pointer click.
type InputFrame struct {
	Actions map[Action]bool
	Click   *Click
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

// SetClick records a pointer press at cell (x, y) for this frame.
func (f *InputFrame) SetClick(x, y int) {
	f.Click = &Click{X: x, Y: y}
}

// Has reports whether the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and the click for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Click = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if f.Click != nil {
		c := *f.Click
		clone.Click = &c
	}
	return clone
}
