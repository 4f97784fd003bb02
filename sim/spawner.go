package sim

import (
	"math"
	"time"

	"github.com/yohamta/donburi"

	"lanesurvivor/geom"
)

// spawnEnemies ticks the repeating spawn timer and, when it fires with a
// player present, places one enemy ahead of the player
func (s *Simulation) spawnEnemies(dt time.Duration) {
	s.session.SpawnTimer.Tick(dt)
	if !s.session.SpawnTimer.JustFinished() {
		return
	}
	player, ok := s.world.Player()
	if !ok {
		return
	}
	px := Transform.Get(player).Position.X

	skin := EnemySkins[s.rng.Intn(len(EnemySkins))]
	sway := math.Sin(s.clock.Elapsed().Seconds()) * s.cfg.SpawnSway
	jitter := s.uniform(-s.cfg.SpawnJitter, s.cfg.SpawnJitter)
	pos := geom.V3(px-s.cfg.SpawnLead, 0, sway+jitter)

	s.spawnEnemy(skin, pos)
}

// spawnEnemy creates an enemy at full health with a ready attack and a health bar
func (s *Simulation) spawnEnemy(skin string, pos geom.Vec3) *donburi.Entry {
	enemy := s.world.create(Gameplay, EnemyTag, Transform, Health, AttackTimer, Skin, Children)
	Transform.SetValue(enemy, TransformData{Position: pos})
	Health.SetValue(enemy, HealthData{Current: s.cfg.EnemyHealth, Max: s.cfg.EnemyHealth})
	AttackTimer.SetValue(enemy, NewCooldown(s.cfg.EnemyCooldown))
	Skin.SetValue(enemy, SkinData{Key: skin})
	s.attachHealthBar(enemy)
	return enemy
}

// attachHealthBar gives owner a health bar child at full scale
func (s *Simulation) attachHealthBar(owner *donburi.Entry) {
	bar := s.world.create(Gameplay, HealthBar)
	HealthBar.SetValue(bar, HealthBarData{Owner: owner.Entity(), ScaleX: s.cfg.HealthBarWidth})
	s.world.adopt(owner, bar)
}

// uniform returns a value in [lo, hi)
func (s *Simulation) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
