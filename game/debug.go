package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"lanesurvivor/sim"
)

// DebugState holds debug flags that persist across sessions
type DebugState struct {
	ShowOverlay bool // Show FPS, entity counts and the hover point
}

var globalDebugState = &DebugState{}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}

// debugLines describes the simulation for the overlay
func debugLines(s *sim.Simulation, fps float64) []string {
	w := s.World()
	lines := []string{
		fmt.Sprintf("FPS %.1f", fps),
		fmt.Sprintf("state %s  session %s", s.State(), s.Session().ShortID()),
		fmt.Sprintf("entities %d  enemies %d  shots %d", w.Count(), len(w.Enemies()), len(w.Projectiles())),
	}
	p := s.Session().Progress
	lines = append(lines, fmt.Sprintf("min x %.1f  wall x %.1f", p.MinX, p.WallX))
	if h := s.Hover(); h.Valid {
		lines = append(lines, fmt.Sprintf("hover %.1f %.1f %.1f", h.World.X, h.World.Y, h.World.Z))
	} else {
		lines = append(lines, "hover -")
	}
	return lines
}

func drawDebug(screen *ebiten.Image, lines []string) {
	y := screen.Bounds().Dy() - len(lines)*16 - 8
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 8, y)
		y += 16
	}
}
