package sim

import (
	"testing"
	"time"
)

func TestCooldownStartsReady(t *testing.T) {
	c := NewCooldown(500 * time.Millisecond)
	if !c.Finished() {
		t.Fatal("new cooldown should be ready")
	}
	c.Tick(time.Second)
	if !c.Finished() {
		t.Fatal("expired cooldown should stay ready while ticking")
	}
	if c.JustFinished() {
		t.Error("an already expired cooldown must not report JustFinished again")
	}

	c.Reset()
	if c.Finished() {
		t.Fatal("reset cooldown should not be ready")
	}
	c.Tick(300 * time.Millisecond)
	if c.Finished() {
		t.Fatal("cooldown ready too early")
	}
	c.Tick(200 * time.Millisecond)
	if !c.Finished() || !c.JustFinished() {
		t.Fatal("cooldown should finish on the crossing tick")
	}
}

func TestRepeatingTimerCarriesOvershoot(t *testing.T) {
	tm := NewTimer(5*time.Second, true)

	fired := 0
	for i := 0; i < 4; i++ {
		tm.Tick(1500 * time.Millisecond)
		if tm.JustFinished() {
			fired++
		}
	}
	if fired != 1 {
		t.Fatalf("fired %d times in 6s, want 1", fired)
	}
	if tm.Elapsed != time.Second {
		t.Errorf("elapsed after wrap = %v, want 1s", tm.Elapsed)
	}

	tm.Tick(time.Second)
	if tm.JustFinished() {
		t.Error("JustFinished should clear on the next tick")
	}
}

func TestOneShotFinishesOnce(t *testing.T) {
	tm := NewTimer(time.Second, false)
	count := 0
	for i := 0; i < 10; i++ {
		tm.Tick(250 * time.Millisecond)
		if tm.JustFinished() {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("one-shot timer finished %d times, want 1", count)
	}
	if tm.Remaining() != 0 {
		t.Errorf("remaining = %v, want 0", tm.Remaining())
	}
}

func TestWallClockClampsDelta(t *testing.T) {
	base := time.Unix(0, 0)
	now := base
	c := &WallClock{now: func() time.Time { return now }, last: base}

	now = now.Add(16 * time.Millisecond)
	if d := c.Step(); d != 16*time.Millisecond {
		t.Errorf("step = %v, want 16ms", d)
	}

	now = now.Add(3 * time.Second)
	if d := c.Step(); d != MaxFrameDelta {
		t.Errorf("stalled step = %v, want %v", d, MaxFrameDelta)
	}

	now = now.Add(-time.Second)
	if d := c.Step(); d != 0 {
		t.Errorf("backwards step = %v, want 0", d)
	}
	if c.Elapsed() != 16*time.Millisecond+MaxFrameDelta {
		t.Errorf("elapsed = %v", c.Elapsed())
	}
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(250 * time.Millisecond)
	for i := 0; i < 4; i++ {
		c.Step()
	}
	if c.Elapsed() != time.Second {
		t.Fatalf("elapsed = %v, want 1s", c.Elapsed())
	}
}
