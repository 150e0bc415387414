package terminal

import (
	"errors"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/coinfall/frontend/synth"
)

var errAudioClosed = errors.New("audio not initialized")

// Audio mixes the looping theme and milestone cues onto the system
// speaker. It implements game.Audio.
type Audio struct {
	volume      float64
	mixer       *beep.Mixer
	background  *beep.Ctrl
	initialized bool
}

func NewAudio(volume float64) *Audio {
	return &Audio{volume: volume, mixer: &beep.Mixer{}}
}

// Init opens the speaker. Until it succeeds every Play call fails.
func (a *Audio) Init() error {
	if a.initialized {
		return nil
	}
	if err := speaker.Init(synth.SampleRate, synth.SampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(a.mixer)
	a.initialized = true
	return nil
}

func (a *Audio) Close() {
	if !a.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	a.initialized = false
}

// PlayBackground resumes the theme where it was paused, starting it on
// first use.
func (a *Audio) PlayBackground() error {
	if !a.initialized {
		return errAudioClosed
	}

	speaker.Lock()
	defer speaker.Unlock()

	if a.background == nil {
		a.background = a.addTheme()
	}
	a.background.Paused = false
	return nil
}

// RestartBackground plays the theme from its first note. The previous
// streamer is drained so the mixer drops it.
func (a *Audio) RestartBackground() error {
	if !a.initialized {
		return errAudioClosed
	}

	speaker.Lock()
	defer speaker.Unlock()

	if a.background != nil {
		a.background.Streamer = nil
	}
	a.background = a.addTheme()
	return nil
}

// addTheme must be called with the speaker locked.
func (a *Audio) addTheme() *beep.Ctrl {
	theme := beep.Iterate(func() beep.Streamer {
		return synth.ThemeStreamer(a.volume)
	})
	ctrl := &beep.Ctrl{Streamer: theme}
	a.mixer.Add(ctrl)
	return ctrl
}

func (a *Audio) StopBackground() {
	if !a.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if a.background != nil {
		a.background.Paused = true
	}
}

func (a *Audio) PlayMilestone() error {
	if !a.initialized {
		return errAudioClosed
	}

	speaker.Lock()
	a.mixer.Add(synth.BarkStreamer(a.volume))
	speaker.Unlock()
	return nil
}
