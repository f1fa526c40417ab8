// Package audio plays the sound cues games emit. Every cue is synthesised
// from oscillators, so the binary ships no sample files.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/loop-arcade/internal/core"
)

// SampleRate is the rate every cue is rendered at.
const SampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Square
	Saw
	Noise
)

// Tone is one note of a cue: a frequency sweep from Freq to EndFreq.
type Tone struct {
	Wave     Wave
	Freq     float64
	EndFreq  float64 // 0 keeps Freq
	Duration time.Duration
	Volume   float64 // linear, 1 is full scale
}

type oscillator struct {
	tone  Tone
	rate  beep.SampleRate
	total int
	pos   int
	phase float64
	rng   *rand.Rand
}

func newOscillator(t Tone, rate beep.SampleRate) *oscillator {
	return &oscillator{
		tone:  t,
		rate:  rate,
		total: rate.N(t.Duration),
		rng:   rand.New(rand.NewSource(int64(t.Freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	if o.pos >= o.total {
		return 0, false
	}
	for i := range samples {
		if o.pos >= o.total {
			return i, true
		}
		progress := float64(o.pos) / float64(o.total)
		freq := o.tone.Freq
		if o.tone.EndFreq > 0 {
			freq += (o.tone.EndFreq - o.tone.Freq) * progress
		}

		var v float64
		switch o.tone.Wave {
		case Square:
			if o.phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		case Saw:
			v = 2 * (o.phase - 0.5)
		case Noise:
			v = o.rng.Float64()*2 - 1
		default:
			v = math.Sin(2 * math.Pi * o.phase)
		}

		// Short linear attack and release to avoid clicks.
		env := 1.0
		edge := o.rate.N(5 * time.Millisecond)
		if o.pos < edge {
			env = float64(o.pos) / float64(edge)
		} else if left := o.total - o.pos; left < edge {
			env = float64(left) / float64(edge)
		}

		samples[i][0] = v * env
		samples[i][1] = v * env

		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Tones returns the notes a cue is made of.
func Tones(c core.Cue) []Tone {
	switch c {
	case core.CueJump:
		return []Tone{{Wave: Square, Freq: 300, EndFreq: 600, Duration: 90 * time.Millisecond, Volume: 0.25}}
	case core.CueLand:
		return []Tone{{Wave: Sine, Freq: 140, EndFreq: 90, Duration: 60 * time.Millisecond, Volume: 0.3}}
	case core.CueCoin:
		return []Tone{
			{Wave: Square, Freq: 988, Duration: 60 * time.Millisecond, Volume: 0.2},
			{Wave: Square, Freq: 1319, Duration: 140 * time.Millisecond, Volume: 0.2},
		}
	case core.CueHit:
		return []Tone{{Wave: Saw, Freq: 220, EndFreq: 110, Duration: 80 * time.Millisecond, Volume: 0.3}}
	case core.CueShoot:
		return []Tone{{Wave: Square, Freq: 1200, EndFreq: 400, Duration: 70 * time.Millisecond, Volume: 0.15}}
	case core.CueExplode:
		return []Tone{{Wave: Noise, Freq: 1, Duration: 250 * time.Millisecond, Volume: 0.3}}
	case core.CueRoundStart:
		return []Tone{
			{Wave: Sine, Freq: 523, Duration: 120 * time.Millisecond, Volume: 0.3},
			{Wave: Sine, Freq: 659, Duration: 120 * time.Millisecond, Volume: 0.3},
			{Wave: Sine, Freq: 784, Duration: 200 * time.Millisecond, Volume: 0.3},
		}
	case core.CueKO:
		return []Tone{{Wave: Saw, Freq: 400, EndFreq: 60, Duration: 600 * time.Millisecond, Volume: 0.35}}
	case core.CueMiss:
		return []Tone{{Wave: Square, Freq: 110, Duration: 120 * time.Millisecond, Volume: 0.2}}
	default:
		return nil
	}
}

// Render builds the streamer for a cue, or nil for cues without sound.
func Render(c core.Cue, rate beep.SampleRate) beep.Streamer {
	tones := Tones(c)
	if len(tones) == 0 {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		parts = append(parts, withVolume(newOscillator(t, rate), t.Volume))
	}
	return beep.Seq(parts...)
}
