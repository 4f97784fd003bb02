package sim

import "time"

// Timer counts elapsed time towards a duration.
// A one-shot timer stops at its duration and stays finished until Reset;
// a repeating timer wraps around and reports JustFinished on every lap.
type Timer struct {
	Duration  time.Duration
	Elapsed   time.Duration
	Repeating bool

	justFinished bool
}

// NewTimer creates a timer starting at zero elapsed time
func NewTimer(d time.Duration, repeating bool) Timer {
	return Timer{Duration: d, Repeating: repeating}
}

// NewCooldown creates a one-shot timer that is already finished, so the
// first attack is available immediately
func NewCooldown(d time.Duration) Timer {
	return Timer{Duration: d, Elapsed: d}
}

// Tick advances the timer by dt
func (t *Timer) Tick(dt time.Duration) {
	t.justFinished = false
	if t.Repeating {
		t.Elapsed += dt
		if t.Duration <= 0 {
			t.justFinished = true
			t.Elapsed = 0
			return
		}
		if t.Elapsed >= t.Duration {
			t.justFinished = true
			t.Elapsed %= t.Duration
		}
		return
	}

	if t.Elapsed >= t.Duration {
		return
	}
	t.Elapsed += dt
	if t.Elapsed >= t.Duration {
		t.Elapsed = t.Duration
		t.justFinished = true
	}
}

// Finished reports whether the cooldown is ready
func (t *Timer) Finished() bool {
	if t.Repeating {
		return t.justFinished
	}
	return t.Elapsed >= t.Duration
}

// JustFinished reports whether the last Tick reached the duration
func (t *Timer) JustFinished() bool { return t.justFinished }

// Reset starts the timer over
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.justFinished = false
}

// Remaining returns the time left until the timer finishes
func (t *Timer) Remaining() time.Duration {
	if t.Elapsed >= t.Duration {
		return 0
	}
	return t.Duration - t.Elapsed
}
