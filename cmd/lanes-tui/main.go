// Command lanes-tui runs the lane survival game in a terminal
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"lanesurvivor/audio"
	"lanesurvivor/config"
	"lanesurvivor/geom"
	"lanesurvivor/sim"
)

const (
	frameInterval = 16 * time.Millisecond
	laneHalfWidth = 8.0
)

var (
	laneStyle = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	wallStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	hudStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

type app struct {
	screen tcell.Screen
	view   *topDown
	keys   *keyTracker
	sim    *sim.Simulation
	cues   *audio.Cues
}

func newApp(settings config.Settings) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	a := &app{
		screen: screen,
		view:   &topDown{},
		keys:   newKeyTracker(),
		cues:   audio.NewCues(),
	}
	a.view.cols, a.view.rows = screen.Size()
	a.sim = sim.New(settings.SimConfig(), sim.NewWallClock(), a.view)

	if settings.Audio {
		if err := a.cues.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	return a, nil
}

func (a *app) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := pumpEvents(a.screen.PollEvent, done)

	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handle(ev) {
				return
			}
		case now := <-ticker.C:
			a.sim.Tick(a.keys.input(now))
			a.cues.Play(a.sim.Drain())
			a.draw()
		}
	}
}

// pumpEvents forwards polled events until poll returns nil or done closes
func pumpEvents(poll func() tcell.Event, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 100)
	go func() {
		defer close(events)
		for {
			ev := poll()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// handle applies one terminal event; it returns false to quit
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if r := keyRune(ev); r != 0 {
			a.keys.key(r, time.Now())
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		a.keys.mouse(col, row, ev.Buttons())
	case *tcell.EventResize:
		a.view.cols, a.view.rows = a.screen.Size()
		a.screen.Sync()
	}
	return true
}

func (a *app) draw() {
	a.screen.Clear()
	v := a.sim.View()

	if v.HasCamera {
		a.drawLane(v)
		for _, d := range v.Drawables {
			if col, row, ok := a.view.cell(v.Camera, d.Position); ok {
				r, style := glyph(d)
				a.screen.SetContent(col, row, r, nil, style)
			}
		}
	}

	h := v.HUD
	if h.State == sim.StatePlaying {
		a.text(0, 0, fmt.Sprintf(" TIME %s  SCORE %d  LIVES %d ", h.Remaining, h.Score, h.Lives), hudStyle)
	} else {
		a.drawScreen(h)
	}
	a.screen.Show()
}

func (a *app) drawLane(v sim.View) {
	for row := 0; row < a.view.rows; row++ {
		for _, z := range []float64{laneHalfWidth, -laneHalfWidth} {
			x := v.Camera.Target.X + (float64(row)-float64(a.view.rows)/2)*unitsPerRow
			if col, r, ok := a.view.cell(v.Camera, geom.V3(x, 0, z)); ok {
				a.screen.SetContent(col, r, '│', nil, laneStyle)
			}
		}
	}
	for z := -laneHalfWidth; z <= laneHalfWidth; z += unitsPerCol {
		if col, row, ok := a.view.cell(v.Camera, geom.V3(v.Progress.WallX, 0, z)); ok {
			a.screen.SetContent(col, row, '═', nil, wallStyle)
		}
	}
}

func (a *app) drawScreen(h sim.HUD) {
	var lines []string
	switch h.State {
	case sim.StateMenu:
		lines = []string{"LANE SURVIVOR", "", "Character: " + a.sim.Character(), "1 / 2 choose, Enter start", "WASD move, Space shoot, mouse aims", "Esc quit"}
	case sim.StateGameOver:
		lines = []string{"GAME OVER", "", fmt.Sprintf("Score %d", h.Score), "R back to menu"}
	case sim.StateVictory:
		lines = []string{"YOU SURVIVED", "", fmt.Sprintf("Score %d  Lives %d", h.Score, h.Lives), "R back to menu"}
	}
	top := a.view.rows/2 - len(lines)/2
	for i, line := range lines {
		a.text(a.view.cols/2-len([]rune(line))/2, top+i, line, tcell.StyleDefault.Bold(i == 0))
	}
}

func (a *app) text(col, row int, s string, style tcell.Style) {
	for _, r := range s {
		a.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

func (a *app) cleanup() {
	a.cues.Cleanup()
	a.screen.Fini()
}

func main() {
	settings, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		os.Exit(1)
	}

	// The terminal owns stdout, so logs only ever go to the debug file
	logFile, err := config.SetupLogging(settings.Debug, settings.LogDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	a, err := newApp(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			a.cleanup()
			panic(r)
		}
	}()

	a.run()
	a.cleanup()
}
