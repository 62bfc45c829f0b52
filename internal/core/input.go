package core

// InputFrame is the immutable input snapshot a game consumes at the start of
// a simulation tick. Movement and jump are held/released intents; Start and
// Pause are edge-triggered and set only on the tick of the key press.
//
// The platform layer is responsible for building frames from whatever input
// source it has (local keyboard, SSH session). Games never see raw key
// events, which keeps the simulation deterministic and replayable.
type InputFrame struct {
	Left  bool // move-left intent held
	Right bool // move-right intent held
	Jump  bool // jump intent held; games detect the rising edge themselves
	Start bool // start/restart trigger (edge)
	Pause bool // pause toggle (edge)
}

// Idle reports whether no intent is active this frame.
func (f InputFrame) Idle() bool {
	return !f.Left && !f.Right && !f.Jump && !f.Start && !f.Pause
}

// Intent identifies a single input intent tracked by the platform layer.
type Intent int

const (
	IntentNone Intent = iota
	IntentLeft
	IntentRight
	IntentJump
	IntentStart
	IntentPause
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentLeft:
		return "Left"
	case IntentRight:
		return "Right"
	case IntentJump:
		return "Jump"
	case IntentStart:
		return "Start"
	case IntentPause:
		return "Pause"
	default:
		return "Unknown"
	}
}
