package sim

import (
	"time"

	"github.com/yohamta/donburi"

	"lanesurvivor/geom"
)

// defaultShotDirection is used when the aim point sits on the player
var defaultShotDirection = geom.V3(-1, 0, -1).NormalizeOrZero()

// playerAttack ticks the player cooldown and fires at the hover point when
// an attack input is held
func (s *Simulation) playerAttack(in Input, dt time.Duration) {
	player, ok := s.world.Player()
	if !ok {
		return
	}
	cooldown := AttackTimer.Get(player)
	cooldown.Tick(dt)
	if !(in.Attack || in.Primary) || !cooldown.Finished() {
		return
	}

	pos := Transform.Get(player).Position
	dir := s.hover.World.Sub(pos).Horizontal().NormalizeOrZero()
	if dir.IsZero() {
		dir = defaultShotDirection
	}
	s.fire(pos, dir, s.cfg.PlayerShotSpeed, s.cfg.PlayerShotDamage, true)
	cooldown.Reset()
}

// enemyAttack fires from every ready enemy within range of the player.
// An enemy out of range keeps its expired cooldown and fires as soon as it
// gets close enough.
func (s *Simulation) enemyAttack(dt time.Duration) {
	player, playerOK := s.world.Player()
	var playerPos geom.Vec3
	if playerOK {
		playerPos = Transform.Get(player).Position
	}

	for _, enemy := range s.world.Enemies() {
		cooldown := AttackTimer.Get(enemy)
		cooldown.Tick(dt)
		if !cooldown.Finished() || !playerOK {
			continue
		}
		pos := Transform.Get(enemy).Position
		if pos.Distance(playerPos) >= s.cfg.EnemyRange {
			continue
		}
		dir, ok := playerPos.Sub(pos).Normalize()
		if !ok {
			continue
		}
		s.fire(pos, dir, s.cfg.EnemyShotSpeed, s.cfg.EnemyShotDamage, false)
		cooldown.Reset()
	}
}

// fire creates a projectile ShotHeight above origin
func (s *Simulation) fire(origin, dir geom.Vec3, speed, damage float64, playerOwned bool) {
	start := origin.Add(geom.Up.Scale(s.cfg.ShotHeight))
	shot := s.world.create(Gameplay, Projectile, Transform)
	Transform.SetValue(shot, TransformData{Position: start, Facing: dir.Horizontal().NormalizeOrZero()})
	Projectile.SetValue(shot, ProjectileData{
		Velocity:    dir.Scale(speed),
		Damage:      damage,
		PlayerOwned: playerOwned,
	})
	s.emit(Event{Kind: EventShotFired, Position: start, PlayerSide: playerOwned})
}

// updateProjectiles integrates every projectile, drops the ones past the
// distance cap and applies hits. A projectile hits at most one actor and
// never one of its own side.
func (s *Simulation) updateProjectiles(dt time.Duration) {
	secs := dt.Seconds()
	enemies := s.world.Enemies()
	player, playerOK := s.world.Player()

	for _, shot := range s.world.Projectiles() {
		if s.world.Pending(shot.Entity()) {
			continue
		}
		tr := Transform.Get(shot)
		p := Projectile.Get(shot)
		tr.Position = tr.Position.Add(p.Velocity.Scale(secs))

		if tr.Position.Length() > s.cfg.ProjectileCap {
			s.world.Despawn(shot.Entity())
			continue
		}

		if p.PlayerOwned {
			for _, enemy := range enemies {
				if s.hits(tr.Position, enemy) {
					Health.Get(enemy).Current -= p.Damage
					s.world.Despawn(shot.Entity())
					s.emit(Event{Kind: EventEnemyHit, Position: tr.Position})
					break
				}
			}
			continue
		}

		if playerOK && s.hits(tr.Position, player) {
			Health.Get(player).Current -= p.Damage
			s.world.Despawn(shot.Entity())
			s.emit(Event{Kind: EventPlayerHit, Position: tr.Position})
		}
	}
}

// hits reports whether p is inside the hit sphere of target
func (s *Simulation) hits(p geom.Vec3, target *donburi.Entry) bool {
	center := Transform.Get(target).Position.Add(geom.Up.Scale(s.cfg.HitHeight))
	return p.Distance(center) < s.cfg.HitRadius
}
