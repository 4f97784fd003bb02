package sim

import (
	"log"

	"lanesurvivor/geom"
)

// recycleLane teleports the first player past the recycle limit forward,
// rebases the progress, reshuffles the props laterally and clears the
// enemies. It fires at most once per tick.
func (s *Simulation) recycleLane() {
	var fired bool
	for _, player := range s.world.Players() {
		tr := Transform.Get(player)
		if tr.Position.X >= s.cfg.RecycleLimit {
			continue
		}
		tr.Position.X += s.cfg.RecycleOffset
		MoveTarget.Get(player).Point.X += s.cfg.RecycleOffset
		s.session.Progress.Rebase(tr.Position.X, s.cfg.RecycleWallOffset)
		s.emit(Event{Kind: EventRecycled, Position: tr.Position})
		fired = true
		break
	}
	if !fired {
		return
	}

	for _, prop := range s.world.Props() {
		tr := Transform.Get(prop)
		side := geom.Sign(tr.Position.Z)
		tr.Position.Z = side * (s.cfg.LaneHalfWidth + s.uniform(s.cfg.PropSpreadMin, s.cfg.PropSpreadMax))
	}

	enemies := s.world.Enemies()
	for _, enemy := range enemies {
		s.world.Despawn(enemy.Entity())
	}
	log.Printf("[session %s] lane recycled, wall at %.1f, %d enemies cleared",
		s.session.ShortID(), s.session.Progress.WallX, len(enemies))
}
