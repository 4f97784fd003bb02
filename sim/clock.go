package sim

import "time"

// Clock supplies the per-tick delta and the total elapsed time
type Clock interface {
	// Step advances the clock by one frame and returns the frame delta
	Step() time.Duration

	// Elapsed returns the time accumulated by all steps so far
	Elapsed() time.Duration
}

// MaxFrameDelta bounds a single wall-clock step so a stalled frame can't
// teleport actors
const MaxFrameDelta = 100 * time.Millisecond

// WallClock measures real time between steps
type WallClock struct {
	now     func() time.Time
	last    time.Time
	elapsed time.Duration
}

// NewWallClock creates a clock whose first step measures from now
func NewWallClock() *WallClock {
	return &WallClock{now: time.Now, last: time.Now()}
}

func (c *WallClock) Step() time.Duration {
	now := c.now()
	delta := now.Sub(c.last)
	c.last = now
	if delta > MaxFrameDelta {
		delta = MaxFrameDelta
	}
	if delta < 0 {
		delta = 0
	}
	c.elapsed += delta
	return delta
}

func (c *WallClock) Elapsed() time.Duration { return c.elapsed }

// ManualClock advances by a fixed Frame per step
type ManualClock struct {
	Frame   time.Duration
	elapsed time.Duration
}

// NewManualClock creates a clock stepping by frame
func NewManualClock(frame time.Duration) *ManualClock {
	return &ManualClock{Frame: frame}
}

func (c *ManualClock) Step() time.Duration {
	c.elapsed += c.Frame
	return c.Frame
}

func (c *ManualClock) Elapsed() time.Duration { return c.elapsed }
