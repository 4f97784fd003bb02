package sim

import (
	"log"
	"math"
	"time"
)

// updateHealthBars derives every bar's scale from its owner's health ratio.
// Bars whose owner is gone or queued for removal are left as they are.
func (s *Simulation) updateHealthBars() {
	for _, bar := range s.world.HealthBars() {
		hb := HealthBar.Get(bar)
		if !s.world.Valid(hb.Owner) {
			continue
		}
		owner := s.world.Entry(hb.Owner)
		if !owner.HasComponent(Health) {
			continue
		}
		hb.ScaleX = healthBarScale(*Health.Get(owner), s.cfg.HealthBarWidth)
	}
}

func healthBarScale(h HealthData, width float64) float64 {
	return math.Max(h.Ratio(), 0) * width
}

// handleDeaths removes dead enemies for score and takes a life from a dead
// player, requesting GameOver when the last one is lost
func (s *Simulation) handleDeaths() {
	for _, enemy := range s.world.Enemies() {
		if s.world.Pending(enemy.Entity()) {
			continue
		}
		if Health.Get(enemy).Current <= 0 {
			s.world.Despawn(enemy.Entity())
			s.session.Score += s.cfg.KillScore
			s.emit(Event{Kind: EventEnemyKilled, Position: Transform.Get(enemy).Position})
		}
	}

	player, ok := s.world.Player()
	if !ok {
		return
	}
	hp := Health.Get(player)
	if hp.Current > 0 {
		return
	}
	if s.session.Lives > 1 {
		s.session.Lives--
		hp.Current = hp.Max
		s.emit(Event{Kind: EventLifeLost, Position: Transform.Get(player).Position})
		log.Printf("[session %s] life lost, %d left", s.session.ShortID(), s.session.Lives)
		return
	}
	s.session.Lives = 0
	s.request(StateGameOver)
}

// tickSurvival counts the survival timer down and requests Victory on the
// tick it runs out. A session that lost its last life this tick stays lost.
func (s *Simulation) tickSurvival(dt time.Duration) {
	s.session.Survival.Tick(dt)
	if s.session.Lives == 0 {
		return
	}
	if s.session.Survival.JustFinished() {
		s.request(StateVictory)
	}
}
