package sim

import (
	"fmt"
	"time"
)

// HUD is the read-only snapshot pushed to the UI every tick
type HUD struct {
	State     GameState
	Remaining string
	Score     uint32
	Lives     uint32
}

// FormatRemaining renders d as MM:SS, truncated to whole seconds
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func (s *Simulation) publishHUD() {
	s.hud = HUD{
		State:     s.machine.Current(),
		Remaining: FormatRemaining(s.session.Survival.Remaining()),
		Score:     s.session.Score,
		Lives:     s.session.Lives,
	}
}

// HUD returns the snapshot published by the last tick
func (s *Simulation) HUD() HUD { return s.hud }
