package tui

import (
	"time"

	"github.com/vovakirdan/coindash/internal/core"
)

// holdWindow is how long a movement intent stays active after its last
// key press. Terminals report key repeats but never releases, so a held
// key shows up as a stream of presses; the window must outlast the gap
// between the initial press and the first OS repeat.
const holdWindow = 550 * time.Millisecond

// HoldTracker turns discrete terminal key presses into held intents.
// Movement and jump intents stay active for a repeat window after each
// press; start and pause intents fire once and clear when consumed.
type HoldTracker struct {
	lastPress map[core.Intent]time.Time
	start     bool
	pause     bool
}

// NewHoldTracker creates an empty tracker.
func NewHoldTracker() *HoldTracker {
	return &HoldTracker{
		lastPress: make(map[core.Intent]time.Time),
	}
}

// Press records an intent at the given time.
func (h *HoldTracker) Press(intent core.Intent, now time.Time) {
	switch intent {
	case core.IntentStart:
		h.start = true
	case core.IntentPause:
		h.pause = true
	case core.IntentLeft, core.IntentRight, core.IntentJump:
		h.lastPress[intent] = now
	}
}

// Frame builds the input snapshot for a tick at the given time.
// Edge intents are consumed; held intents expire after the repeat window.
func (h *HoldTracker) Frame(now time.Time) core.InputFrame {
	frame := core.InputFrame{
		Left:  h.held(core.IntentLeft, now),
		Right: h.held(core.IntentRight, now),
		Jump:  h.held(core.IntentJump, now),
		Start: h.start,
		Pause: h.pause,
	}
	h.start = false
	h.pause = false
	return frame
}

// Clear drops all tracked state.
func (h *HoldTracker) Clear() {
	h.lastPress = make(map[core.Intent]time.Time)
	h.start = false
	h.pause = false
}

func (h *HoldTracker) held(intent core.Intent, now time.Time) bool {
	t, ok := h.lastPress[intent]
	if !ok {
		return false
	}
	if now.Sub(t) > holdWindow {
		delete(h.lastPress, intent)
		return false
	}
	return true
}
