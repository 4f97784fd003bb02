package sim

import "lanesurvivor/geom"

// followCamera keeps the camera at a fixed diagonal offset from the point
// (MinX, playerY, playerZ) and looking at it. Longitudinally the camera only
// follows progress, so walking back towards the wall does not scroll.
func (s *Simulation) followCamera() {
	player, ok := s.world.Player()
	if !ok {
		return
	}
	cam, ok := s.world.Camera()
	if !ok {
		return
	}
	pos := Transform.Get(player).Position
	focus := geom.V3(s.session.Progress.MinX, pos.Y, pos.Z)
	off := s.cfg.CameraOffset

	c := Camera.Get(cam)
	c.Target = focus
	c.Eye = focus.Add(geom.V3(off, off, off))
}
