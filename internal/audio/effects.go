// Package audio synthesizes the short sound cues of a round.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a wave generator that stops after duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	totalSamples int
}

// NewEnvelope shapes s with a linear fade in over attack and fade out over release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:     s,
		attack:       rate.N(attack),
		release:      rate.N(release),
		totalSamples: rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.totalSamples - e.position; remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; math.Log2(0) is -Inf, so 0 means silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note is a shaped tone.
func note(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, d, wave, rate)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/2, rate)
}

// Cue identifies a sound played during a round.
type Cue int

const (
	CueFirstTag Cue = iota // First contact of a round
	CueTag                 // The tag changed hands
	CueWin                 // A countdown reached zero
)

func (c Cue) String() string {
	switch c {
	case CueFirstTag:
		return "first-tag"
	case CueTag:
		return "tag"
	case CueWin:
		return "win"
	default:
		return "unknown"
	}
}

// Cue durations.
const (
	tagNoteDuration = 70 * time.Millisecond
	winNoteDuration = 120 * time.Millisecond
)

// NewCue builds the streamer for c at the given linear volume.
// Unknown cues return nil.
func NewCue(c Cue, volume float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueFirstTag:
		// Single low blip (A4)
		s = note(440, tagNoteDuration*2, WaveSquare, rate)
	case CueTag:
		// Rising pair (E5, A5)
		s = beep.Seq(
			note(659.25, tagNoteDuration, WaveSquare, rate),
			note(880, tagNoteDuration, WaveSquare, rate),
		)
	case CueWin:
		// Major arpeggio (C5, E5, G5, C6) with a soft octave on top
		melody := beep.Seq(
			note(523.25, winNoteDuration, WaveTriangle, rate),
			note(659.25, winNoteDuration, WaveTriangle, rate),
			note(783.99, winNoteDuration, WaveTriangle, rate),
			note(1046.5, winNoteDuration*2, WaveTriangle, rate),
		)
		shimmer := note(2093, winNoteDuration*5, WaveSine, rate)
		s = beep.Mix(newVolume(melody, 0.8), newVolume(shimmer, 0.2))
	default:
		return nil
	}
	return newVolume(s, volume)
}
