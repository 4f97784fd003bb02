package geom

import "math"

// Vec3 is a point or direction in world space.
// X runs along the lane (forward is -X), Y is up, Z is lateral.
type Vec3 struct {
	X, Y, Z float64
}

// Vec2 is a screen or pointer coordinate
type Vec2 struct {
	X, Y float64
}

var (
	Zero = Vec3{}
	Up   = Vec3{0, 1, 0}
)

func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns v × o
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) LengthSquared() float64 { return v.Dot(v) }
func (v Vec3) Length() float64        { return math.Sqrt(v.Dot(v)) }

// Distance returns the euclidean distance between two points
func (v Vec3) Distance(o Vec3) float64 { return v.Sub(o).Length() }

// Horizontal drops the vertical component
func (v Vec3) Horizontal() Vec3 { return Vec3{v.X, 0, v.Z} }

// NormalizeOrZero returns the unit vector in the direction of v, or Zero when
// v is too short to have a direction.
func (v Vec3) NormalizeOrZero() Vec3 {
	l := v.Length()
	if l < 1e-9 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Zero
	}
	return v.Scale(1 / l)
}

// Normalize is NormalizeOrZero with an ok flag
func (v Vec3) Normalize() (Vec3, bool) {
	n := v.NormalizeOrZero()
	return n, n != Zero
}

// IsZero reports whether all components are exactly zero
func (v Vec3) IsZero() bool { return v == Zero }

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns +1 for positive values and -1 otherwise
func Sign(v float64) float64 {
	if v > 0 {
		return 1
	}
	return -1
}
