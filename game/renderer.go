package game

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"lanesurvivor/geom"
	"lanesurvivor/sim"
)

// Camera is the viewport into the lane. It projects world points for the
// renderer and casts cursor rays for the simulation.
type Camera struct {
	lens geom.LookAt
}

// NewCamera creates a camera for a width x height viewport
func NewCamera(width, height float64) *Camera {
	return &Camera{lens: *geom.NewLookAt(width, height)}
}

// Sync moves the camera to the simulation camera transform
func (c *Camera) Sync(cd sim.CameraData) {
	c.lens.Eye = cd.Eye
	c.lens.Target = cd.Target
}

// Resize changes the viewport size
func (c *Camera) Resize(width, height float64) {
	c.lens.Width = width
	c.lens.Height = height
}

// WorldToScreen converts a world point to screen coordinates
func (c *Camera) WorldToScreen(p geom.Vec3) (float64, float64, bool) {
	s, ok := c.lens.Project(p)
	return s.X, s.Y, ok
}

// ViewportToWorld casts the ray under cursor for the given camera transform.
// It fails for points outside the viewport.
func (c *Camera) ViewportToWorld(cd sim.CameraData, cursor geom.Vec2) (geom.Ray, bool) {
	if cursor.X < 0 || cursor.Y < 0 || cursor.X > c.lens.Width || cursor.Y > c.lens.Height {
		return geom.Ray{}, false
	}
	lens := c.lens
	lens.Eye = cd.Eye
	lens.Target = cd.Target
	return lens.Ray(cursor), true
}

// unitPixels returns the screen length of one world unit standing upright at p
func (c *Camera) unitPixels(p geom.Vec3) float64 {
	_, y0, ok0 := c.WorldToScreen(p)
	_, y1, ok1 := c.WorldToScreen(p.Add(geom.Up))
	if !ok0 || !ok1 {
		return 0
	}
	return math.Abs(y0 - y1)
}

// Heights of the drawn archetypes in world units
const (
	actorHeight    = 2.4
	buildingHeight = 6.0
	treeHeight     = 3.5
)

var (
	groundColor     = color.RGBA{70, 92, 60, 255}
	laneColor       = color.RGBA{196, 180, 130, 255}
	gridColor       = color.RGBA{170, 150, 105, 255}
	wallColor       = color.RGBA{220, 40, 40, 255}
	indicatorColor  = color.RGBA{0, 255, 255, 255}
	playerShotColor = color.RGBA{0, 255, 255, 255}
	enemyShotColor  = color.RGBA{255, 40, 40, 255}
	barBackColor    = color.RGBA{60, 0, 0, 255}
	enemyBarColor   = color.RGBA{255, 0, 0, 255}
	playerBarColor  = color.RGBA{0, 220, 0, 255}
)

// Renderer draws a simulation snapshot
type Renderer struct {
	camera  *Camera
	sprites *SpriteBook
	order   []sim.Drawable
}

// NewRenderer creates a new renderer
func NewRenderer(camera *Camera, sprites *SpriteBook) *Renderer {
	return &Renderer{camera: camera, sprites: sprites}
}

// Render draws the lane and every drawable, far to near
func (r *Renderer) Render(screen *ebiten.Image, view sim.View) {
	screen.Fill(groundColor)
	if !view.HasCamera {
		return
	}
	r.camera.Sync(view.Camera)
	r.drawLane(screen, view.Progress)

	r.order = append(r.order[:0], view.Drawables...)
	sort.SliceStable(r.order, func(i, j int) bool {
		return r.camera.lens.Depth(r.order[i].Position) > r.camera.lens.Depth(r.order[j].Position)
	})
	for _, d := range r.order {
		r.drawOne(screen, d)
	}
}

// drawLane draws the lane surface, cross lines every 10 units and the wall
func (r *Renderer) drawLane(screen *ebiten.Image, p sim.Progress) {
	near := p.WallX + 20
	far := p.MinX - 120
	const half = 8.0

	quad := []geom.Vec3{
		geom.V3(far, 0, -half), geom.V3(far, 0, half),
		geom.V3(near, 0, half), geom.V3(near, 0, -half),
	}
	r.fillPolygon(screen, quad, laneColor)

	for x := math.Floor(far/10) * 10; x <= near; x += 10 {
		r.line3(screen, geom.V3(x, 0, -half), geom.V3(x, 0, half), 1, gridColor)
	}
	r.line3(screen, geom.V3(far, 0, -half), geom.V3(near, 0, -half), 2, gridColor)
	r.line3(screen, geom.V3(far, 0, half), geom.V3(near, 0, half), 2, gridColor)
	r.line3(screen, geom.V3(p.WallX, 0, -half), geom.V3(p.WallX, 0, half), 3, wallColor)
}

func (r *Renderer) drawOne(screen *ebiten.Image, d sim.Drawable) {
	switch d.Kind {
	case sim.DrawProjectile:
		clr := enemyShotColor
		if d.PlayerOwned {
			clr = playerShotColor
		}
		r.dot(screen, d.Position, 0.25, clr)
	case sim.DrawIndicator:
		r.dot(screen, d.Position, 0.2, indicatorColor)
	case sim.DrawProp:
		h := treeHeight
		if d.Skin != sim.SkinTree {
			h = buildingHeight
		}
		r.drawSprite(screen, d, h)
	case sim.DrawEnemy, sim.DrawPlayer:
		r.drawSprite(screen, d, actorHeight)
		if !d.Facing.IsZero() {
			r.line3(screen, d.Position, d.Position.Add(d.Facing.Scale(1.5)), 2, color.White)
		}
		if d.HasBar {
			clr := enemyBarColor
			if d.Kind == sim.DrawPlayer {
				clr = playerBarColor
			}
			r.drawHealthBar(screen, d.Position, d.Bar, clr)
		}
	}
}

// drawSprite draws the skin standing on the ground at d.Position, scaled to
// height world units. Unknown skins fall back to a flat marker.
func (r *Renderer) drawSprite(screen *ebiten.Image, d sim.Drawable, height float64) {
	sx, sy, ok := r.camera.WorldToScreen(d.Position)
	if !ok {
		return
	}
	unit := r.camera.unitPixels(d.Position)
	if unit <= 0 {
		return
	}
	img := r.sprites.Get(d.Skin)
	if img == nil {
		vector.DrawFilledRect(screen, float32(sx-unit/2), float32(sy-unit*height), float32(unit), float32(unit*height), color.RGBA{200, 200, 200, 255}, true)
		return
	}
	b := img.Bounds()
	scale := unit * height / float64(b.Dy())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy()))
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(sx, sy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// drawHealthBar draws a bar of scaled width over its owner
func (r *Renderer) drawHealthBar(screen *ebiten.Image, owner geom.Vec3, scaleX float64, clr color.Color) {
	at := owner.Add(geom.Up.Scale(sim.HealthBarLift))
	sx, sy, ok := r.camera.WorldToScreen(at)
	if !ok {
		return
	}
	unit := r.camera.unitPixels(at)
	full := 2 * unit
	h := math.Max(unit*0.2, 2)
	x := sx - full/2
	vector.DrawFilledRect(screen, float32(x), float32(sy), float32(full), float32(h), barBackColor, true)
	vector.DrawFilledRect(screen, float32(x), float32(sy), float32(scaleX*unit), float32(h), clr, true)
}

func (r *Renderer) dot(screen *ebiten.Image, p geom.Vec3, radius float64, clr color.Color) {
	sx, sy, ok := r.camera.WorldToScreen(p)
	if !ok {
		return
	}
	px := math.Max(r.camera.unitPixels(p)*radius, 2)
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(px), clr, true)
}

func (r *Renderer) line3(screen *ebiten.Image, a, b geom.Vec3, width float32, clr color.Color) {
	ax, ay, ok1 := r.camera.WorldToScreen(a)
	bx, by, ok2 := r.camera.WorldToScreen(b)
	if !ok1 || !ok2 {
		return
	}
	vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), width, clr, true)
}

// fillPolygon fills a convex ground polygon
func (r *Renderer) fillPolygon(screen *ebiten.Image, pts []geom.Vec3, clr color.Color) {
	cr, cg, cb, ca := clr.RGBA()
	vs := make([]ebiten.Vertex, 0, len(pts))
	for _, p := range pts {
		x, y, ok := r.camera.WorldToScreen(p)
		if !ok {
			return
		}
		vs = append(vs, ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 1, SrcY: 1,
			ColorR: float32(cr) / 0xffff, ColorG: float32(cg) / 0xffff,
			ColorB: float32(cb) / 0xffff, ColorA: float32(ca) / 0xffff,
		})
	}
	is := make([]uint16, 0, 3*(len(pts)-2))
	for i := 1; i+1 < len(pts); i++ {
		is = append(is, 0, uint16(i), uint16(i+1))
	}
	screen.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

var white *ebiten.Image

func whitePixel() *ebiten.Image {
	if white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return white
}
