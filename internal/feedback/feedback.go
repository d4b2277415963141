// Package feedback plays a short tick when a pan gesture starts or ends.
package feedback

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/svg-pan/internal/config"
	"github.com/iburimskiy/svg-pan/internal/gesture"
)

// Player emits ticks through the speaker. A nil or disabled Player is silent.
type Player struct {
	sampleRate beep.SampleRate
	enabled    bool
}

// New initializes the speaker. With enabled false no audio device is opened.
func New(enabled bool) (*Player, error) {
	p := &Player{sampleRate: beep.SampleRate(config.SampleRate)}
	if !enabled {
		return p, nil
	}
	if err := speaker.Init(p.sampleRate, p.sampleRate.N(time.Second/20)); err != nil {
		return p, fmt.Errorf("init speaker: %w", err)
	}
	p.enabled = true
	return p, nil
}

// Enabled reports whether ticks are audible.
func (p *Player) Enabled() bool { return p != nil && p.enabled }

// Play ticks for gesture start and end; other events are silent.
func (p *Player) Play(ev gesture.Event) {
	if !p.Enabled() {
		return
	}
	freq, ok := tickFrequency(ev)
	if !ok {
		return
	}
	speaker.Play(Tone(p.sampleRate, freq, config.TickDuration*time.Millisecond))
}

// Close stops playback and releases the audio device.
func (p *Player) Close() {
	if !p.Enabled() {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.enabled = false
}

// tickFrequency is higher on grab than on release.
func tickFrequency(ev gesture.Event) (float64, bool) {
	switch ev {
	case gesture.Started:
		return config.TickFrequency, true
	case gesture.Ended:
		return config.TickFrequency * 3 / 4, true
	default:
		return 0, false
	}
}

// Tone returns a sine at freq Hz that decays linearly to silence over d.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	step := 2 * math.Pi * freq / float64(sr)
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				return i, true
			}
			env := 1 - float64(pos)/float64(total)
			v := 0.3 * env * math.Sin(step*float64(pos))
			samples[i] = [2]float64{v, v}
			pos++
		}
		return len(samples), true
	})
}
