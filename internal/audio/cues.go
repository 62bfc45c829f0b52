package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/coindash/internal/core"
)

// Cue durations and envelope shaping.
const (
	jumpDuration = 90 * time.Millisecond
	jumpAttack   = 5 * time.Millisecond
	jumpRelease  = 40 * time.Millisecond

	coinNoteDuration = 70 * time.Millisecond
	coinAttack       = 2 * time.Millisecond
	coinRelease      = 30 * time.Millisecond

	jingleAttack  = 5 * time.Millisecond
	jingleRelease = 60 * time.Millisecond
)

// Note is one step of a jingle: a pitch, how long it sounds, and how long
// to rest before it starts.
type Note struct {
	Freq     float64
	Duration time.Duration
	Delay    time.Duration
}

// WinJingle is the ascending four-note phrase played when a run is won:
// C5, E5, G5, then C6 held longer.
func WinJingle() []Note {
	return []Note{
		{Freq: 523.25, Duration: 110 * time.Millisecond},
		{Freq: 659.25, Duration: 110 * time.Millisecond, Delay: 20 * time.Millisecond},
		{Freq: 783.99, Duration: 110 * time.Millisecond, Delay: 20 * time.Millisecond},
		{Freq: 1046.50, Duration: 260 * time.Millisecond, Delay: 20 * time.Millisecond},
	}
}

// CreateJumpSound generates a short square blip for a jump impulse.
func CreateJumpSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(440.0, jumpDuration, WaveSquare, rate)
	return NewEnvelope(osc, jumpDuration, jumpAttack, jumpRelease, rate)
}

// CreateCoinSound generates a bright two-note chime (B5 then E6) for a
// coin pickup.
func CreateCoinSound(rate beep.SampleRate) beep.Streamer {
	n1 := NewOscillator(987.77, coinNoteDuration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, coinNoteDuration, coinAttack, coinRelease, rate)

	n2 := NewOscillator(1318.51, coinNoteDuration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, coinNoteDuration, coinAttack, coinRelease, rate)

	return beep.Seq(n1Shaped, n2Shaped)
}

// CreateWinSound builds the win jingle as a single sequenced streamer.
func CreateWinSound(rate beep.SampleRate) beep.Streamer {
	notes := WinJingle()
	parts := make([]beep.Streamer, 0, len(notes)*2)
	for _, n := range notes {
		if n.Delay > 0 {
			parts = append(parts, beep.Silence(rate.N(n.Delay)))
		}
		osc := NewOscillator(n.Freq, n.Duration, WaveSine, rate)
		parts = append(parts, NewEnvelope(osc, n.Duration, jingleAttack, jingleRelease, rate))
	}
	return beep.Seq(parts...)
}

// CueFor returns the streamer for a game event, or nil for events with
// no sound.
func CueFor(ev core.Event, rate beep.SampleRate) beep.Streamer {
	switch ev {
	case core.EventJump:
		return CreateJumpSound(rate)
	case core.EventCoin:
		return CreateCoinSound(rate)
	case core.EventWin:
		return CreateWinSound(rate)
	default:
		return nil
	}
}
