// Package chime plays a short synthesized bell through the system speaker.
package chime

import (
	"fmt"
	"math"
	"time"

	"github.com/SimonWoodburyForget/hextime/constant"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// NewTone returns a sine at freq lasting exactly duration.
// freq must stay under half the sample rate.
func NewTone(freq float64, duration time.Duration, rate beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("tone %.0fHz at %dHz: %w", freq, rate, err)
	}
	return beep.Take(rate.N(duration), sine), nil
}

// envelope gates a stream with a linear attack, a flat hold and a linear release
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s over duration; the release ends exactly at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

// gain at sample position p
func (e *envelope) gain(p int) float64 {
	if p < e.attack {
		return float64(p) / float64(e.attack)
	}
	if left := e.total - p; left < e.release {
		return float64(left) / float64(e.release)
	}
	return 1
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if left := e.total - e.pos; len(samples) > left {
		samples = samples[:left]
	}

	n, ok = e.streamer.Stream(samples)
	for i := range samples[:n] {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero volume is expressed as silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// partial is one sine component of the bell
type partial struct {
	freq    float64
	release time.Duration
	weight  float64
}

// bellPartials sum to unit weight so the mix never clips
var bellPartials = [...]partial{
	{constant.BellFundamental, constant.BellSoundFundamentalRelease, 0.7},
	{constant.BellOvertone, constant.BellSoundOvertoneRelease, 0.3},
}

// NewBell builds the rollover bell at the given master volume
func NewBell(rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	voices := make([]beep.Streamer, 0, len(bellPartials))
	for _, p := range bellPartials {
		tone, err := NewTone(p.freq, constant.BellSoundDuration, rate)
		if err != nil {
			return nil, err
		}
		shaped := NewEnvelope(tone, constant.BellSoundDuration, constant.BellSoundAttack, p.release, rate)
		voices = append(voices, newVolume(shaped, p.weight))
	}
	return newVolume(beep.Mix(voices...), volume), nil
}
