package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"lanesurvivor/sim"
)

const sampleRate = beep.SampleRate(44100)

// Cues plays short synthesized sounds for simulation events.
// Every method is safe to call before Initialize or after it failed; the
// game simply stays silent.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewCues creates a silent cue player
func NewCues() *Cues {
	return &Cues{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Cleanup stops everything that is still playing
func (c *Cues) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// SetMuted silences new cues without closing the speaker
func (c *Cues) SetMuted(m bool) {
	c.mu.Lock()
	c.muted = m
	c.mu.Unlock()
}

// Play queues the cue of every event that has one
func (c *Cues) Play(events []sim.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || c.muted {
		return
	}
	var streams []beep.Streamer
	for _, ev := range events {
		if s := Streamer(ev); s != nil {
			streams = append(streams, s)
		}
	}
	if len(streams) == 0 {
		return
	}
	speaker.Lock()
	c.mixer.Add(streams...)
	speaker.Unlock()
}

// Streamer returns the finite sound for ev, or nil when ev is silent
func Streamer(ev sim.Event) beep.Streamer {
	switch ev.Kind {
	case sim.EventShotFired:
		if ev.PlayerSide {
			return take(80*time.Millisecond, NewSweep(sampleRate, 880, 440, 0.12))
		}
		return take(90*time.Millisecond, NewSweep(sampleRate, 300, 200, 0.08))
	case sim.EventEnemyHit:
		return ping(1320, 40*time.Millisecond)
	case sim.EventPlayerHit:
		return take(150*time.Millisecond, NewBuzz(sampleRate, 110))
	case sim.EventEnemyKilled:
		return take(250*time.Millisecond, NewNoise(sampleRate, 0.3, 10))
	case sim.EventLifeLost:
		return take(500*time.Millisecond, NewSweep(sampleRate, 440, 110, 0.25))
	case sim.EventRecycled:
		return take(600*time.Millisecond, NewSweep(sampleRate, 80, 200, 0.15))
	case sim.EventStateChanged:
		switch ev.To {
		case sim.StateVictory:
			return take(700*time.Millisecond, NewSweep(sampleRate, 330, 990, 0.2))
		case sim.StateGameOver:
			return take(900*time.Millisecond, NewSweep(sampleRate, 220, 55, 0.25))
		}
	}
	return nil
}

// ping is a plain sine tone at a fifth of full scale
func ping(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil
	}
	return take(d, &effects.Gain{Streamer: sine, Gain: -0.8})
}

func take(d time.Duration, s beep.Streamer) beep.Streamer {
	return beep.Take(sampleRate.N(d), s)
}
