// Package synth generates the game's music and sound cues as beep streamers.
// The same streamers feed the terminal speaker directly and are rendered to
// PCM for the desktop audio player.
package synth

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is shared by every front end.
const SampleRate = beep.SampleRate(44100)

// Wave selects an oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Square
	Triangle
)

// Note is one step of a sequence. A zero frequency is a rest.
type Note struct {
	Freq     float64
	Duration time.Duration
}

type tone struct {
	freq    float64
	wave    Wave
	rate    beep.SampleRate
	phase   float64
	pos     int
	total   int
	attack  int
	release int
}

// NewTone returns a finite streamer playing freq for d with a short attack
// and release so consecutive notes do not click.
func NewTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	edge := min(rate.N(5*time.Millisecond), total/2)
	return &tone{
		freq:    freq,
		wave:    wave,
		rate:    rate,
		total:   total,
		attack:  edge,
		release: edge,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}

	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}

		var val float64
		if t.freq > 0 {
			switch t.wave {
			case Square:
				val = 1
				if t.phase >= 0.5 {
					val = -1
				}
			case Triangle:
				val = 4*math.Abs(t.phase-0.5) - 1
			default:
				val = math.Sin(2 * math.Pi * t.phase)
			}
		}

		val *= t.gain()
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}

	return len(samples), true
}

func (t *tone) gain() float64 {
	switch {
	case t.attack > 0 && t.pos < t.attack:
		return float64(t.pos) / float64(t.attack)
	case t.release > 0 && t.pos >= t.total-t.release:
		return float64(t.total-t.pos) / float64(t.release)
	}
	return 1
}

func (t *tone) Err() error { return nil }

// Sequence plays the notes back to back.
func Sequence(notes []Note, wave Wave, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, NewTone(n.Freq, n.Duration, wave, rate))
	}
	return beep.Seq(parts...)
}

// WithVolume scales s linearly. Zero or negative volume is silent.
func WithVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}

const beat = 180 * time.Millisecond

// Theme is one pass of the background loop.
var Theme = []Note{
	{329.63, beat}, {392.00, beat}, {440.00, beat}, {392.00, beat},
	{329.63, beat}, {293.66, beat}, {261.63, 2 * beat},
	{293.66, beat}, {329.63, beat}, {392.00, beat}, {329.63, beat},
	{293.66, beat}, {246.94, beat}, {261.63, 2 * beat},
	{0, beat},
}

// Bark is the milestone cue: two short falling yelps.
var Bark = []Note{
	{587.33, 70 * time.Millisecond}, {392.00, 90 * time.Millisecond},
	{0, 60 * time.Millisecond},
	{659.25, 70 * time.Millisecond}, {440.00, 120 * time.Millisecond},
}

// ThemeStreamer returns a single pass of the theme at the given volume.
func ThemeStreamer(volume float64) beep.Streamer {
	return WithVolume(Sequence(Theme, Triangle, SampleRate), volume)
}

// BarkStreamer returns the milestone cue at the given volume.
func BarkStreamer(volume float64) beep.Streamer {
	return WithVolume(Sequence(Bark, Square, SampleRate), volume)
}

// Duration sums the note lengths.
func Duration(notes []Note) time.Duration {
	var d time.Duration
	for _, n := range notes {
		d += n.Duration
	}
	return d
}
