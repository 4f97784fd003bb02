package geom

// Ray is a half-line in world space
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectGround intersects the ray with the ground plane y = 0.
// Solves t = -origin.y / direction.y and rejects hits that are not in front of
// the origin (t <= 0), including rays parallel to the ground.
func IntersectGround(r Ray) (Vec3, bool) {
	if r.Direction.Y == 0 {
		return Zero, false
	}
	t := -r.Origin.Y / r.Direction.Y
	if !(t > 0) {
		return Zero, false
	}
	p := r.At(t)
	p.Y = 0
	return p, true
}
