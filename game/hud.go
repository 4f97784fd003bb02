package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"lanesurvivor/sim"
)

// hudFont is the bitmap font every overlay line is set in
var hudFont font.Face = bitmapfont.Face

var hudFace = text.NewGoXFace(hudFont)

var (
	hudShade   = color.RGBA{0, 0, 0, 140}
	titleColor = color.RGBA{255, 220, 90, 255}
)

// statusLine is the always-visible top line while playing
func statusLine(h sim.HUD) string {
	return fmt.Sprintf("TIME %s   SCORE %d   LIVES %d", h.Remaining, h.Score, h.Lives)
}

// screenText returns the centered title and body lines for the non-playing
// states. Playing has no centered text.
func screenText(h sim.HUD, character string) (string, []string) {
	switch h.State {
	case sim.StateMenu:
		return "LANE SURVIVOR", []string{
			fmt.Sprintf("Character: %s", character),
			"1 / 2  choose character",
			"Enter  start",
			"WASD or right mouse to move, Space or left mouse to shoot",
		}
	case sim.StateGameOver:
		return "GAME OVER", []string{
			fmt.Sprintf("Score %d", h.Score),
			"R  back to menu",
		}
	case sim.StateVictory:
		return "YOU SURVIVED", []string{
			fmt.Sprintf("Score %d   Lives %d", h.Score, h.Lives),
			"R  back to menu",
		}
	}
	return "", nil
}

// drawHUD draws the status line or the state screen
func drawHUD(screen *ebiten.Image, h sim.HUD, character string) {
	w := float64(screen.Bounds().Dx())
	hh := float64(screen.Bounds().Dy())

	if h.State == sim.StatePlaying {
		line := statusLine(h)
		const scale = 2.0
		vector.DrawFilledRect(screen, 0, 0, float32(w), 40, hudShade, false)
		drawText(screen, line, (w-text.Advance(line, hudFace)*scale)/2, 8, scale, color.White)
		return
	}

	title, body := screenText(h, character)
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(hh), hudShade, false)

	const titleScale = 5.0
	y := hh/2 - 120
	drawText(screen, title, (w-text.Advance(title, hudFace)*titleScale)/2, y, titleScale, titleColor)
	y += 100
	for _, line := range body {
		const scale = 2.0
		drawText(screen, line, (w-text.Advance(line, hudFace)*scale)/2, y, scale, color.White)
		y += 36
	}
}

func drawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, hudFace, op)
}
