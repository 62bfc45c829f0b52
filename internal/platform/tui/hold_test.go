package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/coindash/internal/core"
)

func TestHoldTrackerHeldIntentPersists(t *testing.T) {
	h := NewHoldTracker()
	now := time.Now()

	h.Press(core.IntentRight, now)

	frame := h.Frame(now.Add(100 * time.Millisecond))
	if !frame.Right {
		t.Error("intent should stay held within the repeat window")
	}

	frame = h.Frame(now.Add(holdWindow + time.Millisecond))
	if frame.Right {
		t.Error("intent should expire after the repeat window")
	}
}

func TestHoldTrackerRepeatExtendsHold(t *testing.T) {
	h := NewHoldTracker()
	now := time.Now()

	h.Press(core.IntentJump, now)
	h.Press(core.IntentJump, now.Add(400*time.Millisecond))

	// Past the first window but within the second.
	frame := h.Frame(now.Add(700 * time.Millisecond))
	if !frame.Jump {
		t.Error("a key repeat should extend the hold")
	}
}

func TestHoldTrackerEdgeIntentsConsumed(t *testing.T) {
	h := NewHoldTracker()
	now := time.Now()

	h.Press(core.IntentStart, now)
	h.Press(core.IntentPause, now)

	frame := h.Frame(now)
	if !frame.Start || !frame.Pause {
		t.Fatal("edge intents should appear on the next frame")
	}

	frame = h.Frame(now.Add(time.Millisecond))
	if frame.Start || frame.Pause {
		t.Error("edge intents must be consumed by the frame that saw them")
	}
}

func TestHoldTrackerClear(t *testing.T) {
	h := NewHoldTracker()
	now := time.Now()

	h.Press(core.IntentLeft, now)
	h.Press(core.IntentStart, now)
	h.Clear()

	frame := h.Frame(now)
	if !frame.Idle() {
		t.Errorf("cleared tracker should produce an idle frame, got %+v", frame)
	}
}

func TestHoldTrackerIndependentIntents(t *testing.T) {
	h := NewHoldTracker()
	now := time.Now()

	h.Press(core.IntentLeft, now)
	h.Press(core.IntentRight, now.Add(300*time.Millisecond))

	// Left has expired, right is still held.
	frame := h.Frame(now.Add(600 * time.Millisecond))
	if frame.Left {
		t.Error("expired intent should be inactive")
	}
	if !frame.Right {
		t.Error("fresher intent should still be held")
	}
}
