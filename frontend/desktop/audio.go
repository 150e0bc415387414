package desktop

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/plus3/coinfall/frontend/synth"
)

// Audio plays the synthesized theme and milestone cue through ebiten's
// audio context. It implements game.Audio.
type Audio struct {
	ctx        *audio.Context
	volume     float64
	background *audio.Player
	bark       []byte
	lastBark   *audio.Player
}

func NewAudio(volume float64) *Audio {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(int(synth.SampleRate))
	}
	return &Audio{ctx: ctx, volume: volume}
}

// PlayBackground resumes the looping theme, creating its player on first
// use.
func (a *Audio) PlayBackground() error {
	if err := a.ensureBackground(); err != nil {
		return err
	}
	a.background.Play()
	return nil
}

// RestartBackground rewinds the theme to its first sample and plays it.
func (a *Audio) RestartBackground() error {
	if err := a.ensureBackground(); err != nil {
		return err
	}
	if err := a.background.SetPosition(0); err != nil {
		return fmt.Errorf("rewind background: %w", err)
	}
	a.background.Play()
	return nil
}

func (a *Audio) ensureBackground() error {
	if a.background != nil {
		return nil
	}
	pcm := synth.PCM16(synth.ThemeStreamer(1))
	p, err := a.ctx.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm))))
	if err != nil {
		return fmt.Errorf("background player: %w", err)
	}
	p.SetVolume(a.volume)
	a.background = p
	return nil
}

func (a *Audio) StopBackground() {
	if a.background != nil {
		a.background.Pause()
	}
}

func (a *Audio) PlayMilestone() error {
	if a.bark == nil {
		a.bark = synth.PCM16(synth.BarkStreamer(1))
	}
	p := a.ctx.NewPlayerFromBytes(a.bark)
	p.SetVolume(a.volume)
	p.Play()
	a.lastBark = p
	return nil
}
