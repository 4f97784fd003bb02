package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lanesurvivor/geom"
	"lanesurvivor/sim"
)

// deviceState is a snapshot of the keyboard and mouse for one frame
type deviceState struct {
	cursorX, cursorY int
	cursorInside     bool

	held    map[ebiten.Key]bool
	pressed map[ebiten.Key]bool

	leftButton  bool
	rightButton bool
}

func (d deviceState) anyHeld(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if d.held[k] {
			return true
		}
	}
	return false
}

func (d deviceState) anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if d.pressed[k] {
			return true
		}
	}
	return false
}

// characterKeys maps number keys to selectable player skins
var characterKeys = map[ebiten.Key]string{
	ebiten.Key1: sim.SkinPlayerA,
	ebiten.Key2: sim.SkinPlayerB,
}

// watchedKeys are the keys sampled every frame
var watchedKeys = []ebiten.Key{
	ebiten.KeyW, ebiten.KeyA, ebiten.KeyS, ebiten.KeyD,
	ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight,
	ebiten.KeySpace, ebiten.KeyEnter, ebiten.KeyR,
	ebiten.Key1, ebiten.Key2,
}

// inputFromState maps a device snapshot to the logical simulation input
func inputFromState(d deviceState) sim.Input {
	in := sim.Input{
		Primary:   d.leftButton,
		Secondary: d.rightButton,
		Up:        d.anyHeld(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:      d.anyHeld(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:      d.anyHeld(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:     d.anyHeld(ebiten.KeyD, ebiten.KeyArrowRight),
		Attack:    d.anyHeld(ebiten.KeySpace),
		Start:     d.anyPressed(ebiten.KeyEnter),
		Restart:   d.anyPressed(ebiten.KeyR),
	}
	if d.cursorInside {
		in.Cursor = &geom.Vec2{X: float64(d.cursorX), Y: float64(d.cursorY)}
	}
	for _, k := range []ebiten.Key{ebiten.Key1, ebiten.Key2} {
		if d.pressed[k] {
			in.SelectCharacter = characterKeys[k]
		}
	}
	return in
}

// captureDevices samples ebiten's input state. width and height bound the
// viewport the cursor must lie in.
func captureDevices(width, height int) deviceState {
	d := deviceState{
		held:        make(map[ebiten.Key]bool, len(watchedKeys)),
		pressed:     make(map[ebiten.Key]bool, len(watchedKeys)),
		leftButton:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		rightButton: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
	}
	d.cursorX, d.cursorY = ebiten.CursorPosition()
	d.cursorInside = d.cursorX >= 0 && d.cursorY >= 0 && d.cursorX < width && d.cursorY < height

	for _, k := range watchedKeys {
		if ebiten.IsKeyPressed(k) {
			d.held[k] = true
		}
		if inpututil.IsKeyJustPressed(k) {
			d.pressed[k] = true
		}
	}
	return d
}
