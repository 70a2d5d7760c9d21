package core

// Action is a semantic game action, abstracted from physical key presses.
// Each game decides what an action means for it.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Left arrow, A - move piece left / lower force
	ActionRight            // Right arrow - move piece right / raise force
	ActionUp               // Up arrow, W - rotate left / raise barrel
	ActionDown             // Down arrow, S - rotate right / lower barrel
	ActionPrimary          // Space - hard drop / fire
	ActionSecondary        // D - drop one row
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - back to menu
	ActionRestart          // R - restart after game over
	ActionQuit             // Q, Ctrl+C - leave the session
	ActionPause            // P - pause/unpause
)

var actionNames = map[Action]string{
	ActionNone:      "None",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionUp:        "Up",
	ActionDown:      "Down",
	ActionPrimary:   "Primary",
	ActionSecondary: "Secondary",
	ActionConfirm:   "Confirm",
	ActionBack:      "Back",
	ActionRestart:   "Restart",
	ActionQuit:      "Quit",
	ActionPause:     "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame holds the actions triggered during one simulation tick.
// Actions are applied by the game in a fixed order, not in press order.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make(map[Action]bool, len(actions))}
	for _, a := range actions {
		f.Actions[a] = true
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates an independent copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
