package main

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"lanesurvivor/geom"
	"lanesurvivor/sim"
)

// A terminal cell is about twice as tall as it is wide, so one row covers
// one world unit along the lane and one column covers half a unit across it.
const (
	unitsPerRow = 1.0
	unitsPerCol = 0.5

	// holdWindow is how long a key counts as held after its last press.
	// Terminals report no key releases, only auto-repeat.
	holdWindow = 200 * time.Millisecond
)

// topDown maps terminal cells to the ground. The camera target sits in the
// middle of the screen, forward (-x) points up and +z points left.
type topDown struct {
	cols, rows int
}

func (v topDown) center() (float64, float64) {
	return float64(v.cols) / 2, float64(v.rows) / 2
}

// ViewportToWorld casts a vertical ray through the ground under a cell
func (v topDown) ViewportToWorld(cam sim.CameraData, cursor geom.Vec2) (geom.Ray, bool) {
	if cursor.X < 0 || cursor.Y < 0 || cursor.X >= float64(v.cols) || cursor.Y >= float64(v.rows) {
		return geom.Ray{}, false
	}
	cx, cy := v.center()
	x := cam.Target.X + (cursor.Y-cy)*unitsPerRow
	z := cam.Target.Z - (cursor.X-cx)*unitsPerCol
	return geom.Ray{Origin: geom.V3(x, 50, z), Direction: geom.V3(0, -1, 0)}, true
}

// cell returns the terminal cell showing world point p
func (v topDown) cell(cam sim.CameraData, p geom.Vec3) (int, int, bool) {
	cx, cy := v.center()
	col := int(math.Floor(cx - (p.Z-cam.Target.Z)/unitsPerCol))
	row := int(math.Floor(cy + (p.X-cam.Target.X)/unitsPerRow))
	if col < 0 || row < 0 || col >= v.cols || row >= v.rows {
		return 0, 0, false
	}
	return col, row, true
}

// keyTracker turns the terminal's press-only key stream into held state
// plus one-shot commands
type keyTracker struct {
	lastSeen map[rune]time.Time

	cursor    *geom.Vec2
	primary   bool
	secondary bool

	start, restart bool
	selectSkin     string
}

func newKeyTracker() *keyTracker {
	return &keyTracker{lastSeen: make(map[rune]time.Time)}
}

// keyRune folds arrows and special keys onto the rune they share a binding with
func keyRune(ev *tcell.EventKey) rune {
	switch ev.Key() {
	case tcell.KeyUp:
		return 'w'
	case tcell.KeyDown:
		return 's'
	case tcell.KeyLeft:
		return 'a'
	case tcell.KeyRight:
		return 'd'
	case tcell.KeyEnter:
		return '\n'
	case tcell.KeyRune:
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return r
	}
	return 0
}

func (k *keyTracker) key(r rune, now time.Time) {
	k.lastSeen[r] = now
	switch r {
	case '\n':
		k.start = true
	case 'r':
		k.restart = true
	case '1':
		k.selectSkin = sim.SkinPlayerA
	case '2':
		k.selectSkin = sim.SkinPlayerB
	}
}

func (k *keyTracker) mouse(col, row int, buttons tcell.ButtonMask) {
	k.cursor = &geom.Vec2{X: float64(col), Y: float64(row)}
	k.primary = buttons&tcell.Button1 != 0
	k.secondary = buttons&tcell.Button2 != 0
}

func (k *keyTracker) held(r rune, now time.Time) bool {
	t, ok := k.lastSeen[r]
	return ok && now.Sub(t) < holdWindow
}

// input builds the tick input and consumes the one-shot commands
func (k *keyTracker) input(now time.Time) sim.Input {
	in := sim.Input{
		Cursor:          k.cursor,
		Primary:         k.primary,
		Secondary:       k.secondary,
		Up:              k.held('w', now),
		Down:            k.held('s', now),
		Left:            k.held('a', now),
		Right:           k.held('d', now),
		Attack:          k.held(' ', now),
		Start:           k.start,
		Restart:         k.restart,
		SelectCharacter: k.selectSkin,
	}
	k.start, k.restart, k.selectSkin = false, false, ""
	return in
}

// glyph returns the rune and style a drawable is shown with
func glyph(d sim.Drawable) (rune, tcell.Style) {
	base := tcell.StyleDefault
	switch d.Kind {
	case sim.DrawPlayer:
		return '@', base.Foreground(tcell.ColorLime).Bold(true)
	case sim.DrawEnemy:
		r := 'e'
		if n := len(d.Skin); n > 0 {
			r = rune(d.Skin[n-1])
		}
		return r, base.Foreground(tcell.ColorRed).Bold(true)
	case sim.DrawProjectile:
		if d.PlayerOwned {
			return '*', base.Foreground(tcell.ColorAqua)
		}
		return '*', base.Foreground(tcell.ColorOrange)
	case sim.DrawIndicator:
		return '+', base.Foreground(tcell.ColorAqua)
	case sim.DrawProp:
		if d.Skin == sim.SkinTree {
			return '♣', base.Foreground(tcell.ColorGreen)
		}
		return '#', base.Foreground(tcell.ColorGray)
	}
	return '?', base
}
