package sim

import (
	"lanesurvivor/geom"
)

// Input is the logical input state of one tick. Frontends fill it from
// whatever devices they have; the simulation never sees raw events.
type Input struct {
	// Cursor is the pointer position in viewport pixels, nil when unknown
	Cursor *geom.Vec2

	// Primary and Secondary are the held pointer buttons
	Primary   bool
	Secondary bool

	// Directional keys: Up/Down are longitudinal, Left/Right are lateral
	Up, Down, Left, Right bool

	// Attack is the held attack key
	Attack bool

	// Start, Restart and SelectCharacter are edge-triggered menu commands
	Start           bool
	Restart         bool
	SelectCharacter string
}

// RayCaster turns a viewport point into a world-space ray for the given
// camera transform. ok is false when the point is outside the viewport.
type RayCaster interface {
	ViewportToWorld(cam CameraData, cursor geom.Vec2) (geom.Ray, bool)
}

// RayCasterFunc adapts a function to RayCaster
type RayCasterFunc func(cam CameraData, cursor geom.Vec2) (geom.Ray, bool)

func (f RayCasterFunc) ViewportToWorld(cam CameraData, cursor geom.Vec2) (geom.Ray, bool) {
	return f(cam, cursor)
}

// clampToLane keeps p inside the player boundary and behind the wall
func (s *Simulation) clampToLane(p geom.Vec3) geom.Vec3 {
	p.X = s.session.Progress.ClampForward(p.X)
	p.Z = geom.Clamp(p.Z, -s.cfg.PlayerBoundary, s.cfg.PlayerBoundary)
	return p
}

// resolvePointer maps the cached cursor to a clamped ground point.
// It fails when there is no cursor, camera or caster, or the ray misses the ground.
func (s *Simulation) resolvePointer() (geom.Vec3, bool) {
	if s.hover.Cursor == nil || s.caster == nil {
		return geom.Zero, false
	}
	cam, ok := s.world.Camera()
	if !ok {
		return geom.Zero, false
	}
	ray, ok := s.caster.ViewportToWorld(*Camera.Get(cam), *s.hover.Cursor)
	if !ok {
		return geom.Zero, false
	}
	p, ok := geom.IntersectGround(ray)
	if !ok {
		return geom.Zero, false
	}
	return s.clampToLane(p), true
}

// resolveInput updates the hover point and indicator, then sets the player's
// move target from the pointer or, failing that, the directional keys
func (s *Simulation) resolveInput(in Input) {
	if in.Cursor != nil {
		c := *in.Cursor
		s.hover.Cursor = &c
	}

	point, resolved := s.resolvePointer()
	if resolved {
		s.hover.World = point
		s.hover.Valid = true
		if ind, ok := s.world.Indicator(); ok {
			Transform.Get(ind).Position = point.Add(geom.Up.Scale(s.cfg.IndicatorLift))
		}
	}

	player, ok := s.world.Player()
	if !ok {
		return
	}
	target := MoveTarget.Get(player)

	if in.Secondary && resolved {
		target.Point = point
		return
	}

	var dir geom.Vec3
	if in.Up {
		dir.X -= 1
	}
	if in.Down {
		dir.X += 1
	}
	if in.Left {
		dir.Z += 1
	}
	if in.Right {
		dir.Z -= 1
	}
	if dir.IsZero() {
		return
	}
	pos := Transform.Get(player).Position
	target.Point = pos.Add(dir.NormalizeOrZero().Scale(s.cfg.KeyboardStep))
}
