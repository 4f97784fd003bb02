package sim

import "time"

// minFacingSq is the squared horizontal length under which an aim vector is
// too short to turn towards
const minFacingSq = 0.01

// movePlayer walks the player towards its move target, keeps it inside the
// lane and behind the wall, then advances the progress
func (s *Simulation) movePlayer(dt time.Duration) {
	secs := dt.Seconds()
	for _, player := range s.world.Players() {
		tr := Transform.Get(player)
		target := MoveTarget.Get(player).Point

		toTarget := target.Sub(tr.Position)
		dist := toTarget.Length()
		if dist > s.cfg.ArriveEpsilon {
			step := s.cfg.PlayerSpeed * secs
			if step >= dist {
				tr.Position = target
			} else {
				tr.Position = tr.Position.Add(toTarget.Scale(step / dist))
			}
		}

		tr.Position = s.clampToLane(tr.Position)
		s.session.Progress.Advance(tr.Position.X, s.cfg.WallOffset)
	}
}

// aimPlayer turns the player towards the hover point, the same point shots
// are fired at. A near-zero aim vector leaves the facing untouched.
func (s *Simulation) aimPlayer() {
	for _, player := range s.world.Players() {
		tr := Transform.Get(player)
		look := s.hover.World.Sub(tr.Position).Horizontal()
		if look.LengthSquared() > minFacingSq {
			tr.Facing = look.NormalizeOrZero()
		}
	}
}

// moveEnemies steers every enemy towards the player until it is within the
// stop radius. Enemies face the player whether or not they moved.
func (s *Simulation) moveEnemies(dt time.Duration) {
	player, ok := s.world.Player()
	if !ok {
		return
	}
	playerPos := Transform.Get(player).Position
	secs := dt.Seconds()

	for _, enemy := range s.world.Enemies() {
		tr := Transform.Get(enemy)
		flat := playerPos.Sub(tr.Position).Horizontal()
		dist := flat.Length()
		if dist > s.cfg.EnemyStopRadius {
			tr.Position = tr.Position.Add(flat.Scale(s.cfg.EnemySpeed * secs / dist))
		}
		if facing, ok := flat.Normalize(); ok {
			tr.Facing = facing
		}
	}
}
