package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// Sweep is a sine tone gliding from one frequency to another over a second,
// with an exponential decay
type Sweep struct {
	sr       beep.SampleRate
	from, to float64
	gain     float64
	pos      int
	phase    float64
}

// NewSweep creates a sweep generator
func NewSweep(sr beep.SampleRate, from, to, gain float64) *Sweep {
	return &Sweep{sr: sr, from: from, to: to, gain: gain}
}

func (g *Sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		k := math.Min(t, 1)
		freq := g.from + (g.to-g.from)*k
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := g.gain * math.Exp(-t*4) * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Sweep) Err() error { return nil }

// Buzz is a harsh tone with odd harmonics and a short fade in
type Buzz struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzz creates a buzz generator
func NewBuzz(sr beep.SampleRate, freq float64) *Buzz {
	return &Buzz{sr: sr, freq: freq}
}

func (g *Buzz) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3*math.Sin(2*math.Pi*g.freq*t) +
			0.15*math.Sin(2*math.Pi*g.freq*3*t) +
			0.075*math.Sin(2*math.Pi*g.freq*5*t)
		envelope := math.Min(t/0.02, 1)
		sample *= envelope * 0.3

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Buzz) Err() error { return nil }

// Noise is a decaying burst of pseudo-random noise over a low rumble
type Noise struct {
	sr    beep.SampleRate
	gain  float64
	decay float64
	pos   int
	seed  int64
}

// NewNoise creates a noise burst; decay is the envelope rate per second
func NewNoise(sr beep.SampleRate, gain, decay float64) *Noise {
	return &Noise{sr: sr, gain: gain, decay: decay, seed: 12345}
}

func (g *Noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		rumble := 0.3 * math.Sin(2*math.Pi*70*t)

		sample := g.gain * math.Exp(-t*g.decay) * (0.7*noise + rumble)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Noise) Err() error { return nil }
