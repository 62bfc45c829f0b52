package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/coindash/internal/config"
	"github.com/vovakirdan/coindash/internal/core"
)

const sampleRate = beep.SampleRate(48000)

// Engine owns the speaker and plays synthesized cues for game events.
// All cues are generated on the fly; nothing is loaded from disk.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

// NewEngine creates an engine from the audio config. Call Init before Play.
func NewEngine(cfg config.AudioConfig) *Engine {
	return &Engine{
		mixer:  &beep.Mixer{},
		volume: cfg.Volume,
		muted:  !cfg.Enabled,
	}
}

// Init opens the speaker. A failure leaves the engine silent but usable,
// so a host without an audio device still runs the game.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Play queues the cue for an event. Safe to call from the update loop;
// the speaker drains the mixer on its own goroutine.
func (e *Engine) Play(ev core.Event) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized || e.muted {
		return
	}
	cue := CueFor(ev, sampleRate)
	if cue == nil {
		return
	}
	e.mixer.Add(newVolume(cue, e.volume))
}

// PlayAll queues cues for every event in a step result.
func (e *Engine) PlayAll(events []core.Event) {
	for _, ev := range events {
		e.Play(ev)
	}
}

// ToggleMute flips the mute state and reports whether sound is now on.
func (e *Engine) ToggleMute() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.muted = !e.muted
	return !e.muted
}

// SetVolume updates the master volume, clamped to [0, 1].
func (e *Engine) SetVolume(vol float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.volume = core.ClampF(vol, 0, 1)
}

// Close silences the engine. The speaker itself has no close in beep;
// clearing the mixer is enough to stop output.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	e.mixer.Clear()
	e.initialized = false
}
