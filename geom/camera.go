package geom

import "math"

// LookAt is a perspective camera placed at Eye and aimed at Target.
// It converts between world points and screen pixels for a viewport of
// Width x Height.
type LookAt struct {
	Eye    Vec3
	Target Vec3
	FovY   float64 // vertical field of view in radians
	Width  float64
	Height float64
}

// NewLookAt creates a camera with a 45 degree vertical field of view
func NewLookAt(width, height float64) *LookAt {
	return &LookAt{
		Eye:    V3(20, 20, 20),
		FovY:   math.Pi / 4,
		Width:  width,
		Height: height,
	}
}

// basis returns forward, right and up unit vectors
func (c *LookAt) basis() (Vec3, Vec3, Vec3) {
	f := c.Target.Sub(c.Eye).NormalizeOrZero()
	r := f.Cross(Up).NormalizeOrZero()
	if r.IsZero() {
		// looking straight up or down
		r = V3(1, 0, 0)
	}
	u := r.Cross(f)
	return f, r, u
}

func (c *LookAt) halfExtents() (float64, float64) {
	tanY := math.Tan(c.FovY / 2)
	aspect := 1.0
	if c.Height > 0 {
		aspect = c.Width / c.Height
	}
	return tanY * aspect, tanY
}

// Ray returns the world-space ray through the screen point p
func (c *LookAt) Ray(p Vec2) Ray {
	f, r, u := c.basis()
	hx, hy := c.halfExtents()
	nx := (2*p.X/c.Width - 1) * hx
	ny := (1 - 2*p.Y/c.Height) * hy
	dir := f.Add(r.Scale(nx)).Add(u.Scale(ny)).NormalizeOrZero()
	return Ray{Origin: c.Eye, Direction: dir}
}

// Project maps a world point to screen pixels. The second result is false
// when the point is behind the camera.
func (c *LookAt) Project(p Vec3) (Vec2, bool) {
	f, r, u := c.basis()
	v := p.Sub(c.Eye)
	depth := v.Dot(f)
	if depth <= 1e-6 {
		return Vec2{}, false
	}
	hx, hy := c.halfExtents()
	nx := v.Dot(r) / (depth * hx)
	ny := v.Dot(u) / (depth * hy)
	return Vec2{
		X: (nx + 1) / 2 * c.Width,
		Y: (1 - ny) / 2 * c.Height,
	}, true
}

// Depth returns the distance of p along the view direction
func (c *LookAt) Depth(p Vec3) float64 {
	f, _, _ := c.basis()
	return p.Sub(c.Eye).Dot(f)
}
