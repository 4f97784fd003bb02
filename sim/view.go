package sim

import (
	"github.com/yohamta/donburi"

	"lanesurvivor/geom"
)

// HealthBarLift is how far above its owner a health bar floats
const HealthBarLift = 3.5

// DrawKind says how a renderer should draw a Drawable
type DrawKind int

const (
	DrawProp DrawKind = iota
	DrawEnemy
	DrawPlayer
	DrawIndicator
	DrawProjectile
)

// Drawable is one entity as a renderer sees it
type Drawable struct {
	Kind     DrawKind
	Skin     string
	Position geom.Vec3
	Facing   geom.Vec3

	// Bar is the health-bar scale, valid when HasBar is set
	Bar    float64
	HasBar bool

	PlayerOwned bool
}

// View is a read-only snapshot of the world for frontends
type View struct {
	HUD       HUD
	Camera    CameraData
	HasCamera bool
	Progress  Progress
	Hover     geom.Vec3
	Drawables []Drawable
}

// View builds a snapshot of the current world. Props come first and
// projectiles last so renderers can draw in slice order.
func (s *Simulation) View() View {
	v := View{
		HUD:      s.hud,
		Progress: s.session.Progress,
		Hover:    s.hover.World,
	}
	if cam, ok := s.world.Camera(); ok {
		v.Camera = *Camera.Get(cam)
		v.HasCamera = true
	}

	for _, e := range s.world.Props() {
		v.Drawables = append(v.Drawables, s.drawable(DrawProp, e))
	}
	for _, e := range s.world.Enemies() {
		v.Drawables = append(v.Drawables, s.drawable(DrawEnemy, e))
	}
	for _, e := range s.world.Players() {
		v.Drawables = append(v.Drawables, s.drawable(DrawPlayer, e))
	}
	if ind, ok := s.world.Indicator(); ok {
		v.Drawables = append(v.Drawables, s.drawable(DrawIndicator, ind))
	}
	for _, e := range s.world.Projectiles() {
		d := s.drawable(DrawProjectile, e)
		d.PlayerOwned = Projectile.Get(e).PlayerOwned
		v.Drawables = append(v.Drawables, d)
	}
	return v
}

func (s *Simulation) drawable(kind DrawKind, e *donburi.Entry) Drawable {
	tr := Transform.Get(e)
	d := Drawable{Kind: kind, Position: tr.Position, Facing: tr.Facing}
	if e.HasComponent(Skin) {
		d.Skin = Skin.Get(e).Key
	}
	if e.HasComponent(Children) {
		for _, child := range Children.Get(e).Entities {
			if !s.world.Valid(child) {
				continue
			}
			ce := s.world.Entry(child)
			if ce.HasComponent(HealthBar) {
				d.Bar = HealthBar.Get(ce).ScaleX
				d.HasBar = true
				break
			}
		}
	}
	return d
}
