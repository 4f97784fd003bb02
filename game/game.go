package game

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lanesurvivor/sim"
)

// EventSink receives the events drained from the simulation every frame
type EventSink interface {
	Play(events []sim.Event)
}

// Options configures the windowed frontend
type Options struct {
	ScreenWidth  int
	ScreenHeight int

	// Profile enables pprof captures on frame rate drops
	Profile     bool
	ProfilesDir string

	// Debug shows the overlay from the first frame
	Debug bool
}

// App is the ebiten frontend around one simulation
type App struct {
	sim      *sim.Simulation
	camera   *Camera
	renderer *Renderer
	sink     EventSink
	opts     Options

	fps      *FPSMeter
	profiler *Profiler

	lastUpdate time.Time
}

// NewApp builds the simulation for cfg with the camera as its ray caster.
// sink may be nil.
func NewApp(cfg sim.Config, opts Options, sink EventSink) (*App, error) {
	sprites, err := NewSpriteBook()
	if err != nil {
		return nil, fmt.Errorf("load sprites: %w", err)
	}
	camera := NewCamera(float64(opts.ScreenWidth), float64(opts.ScreenHeight))

	a := &App{
		sim:        sim.New(cfg, sim.NewWallClock(), camera),
		camera:     camera,
		renderer:   NewRenderer(camera, sprites),
		sink:       sink,
		opts:       opts,
		fps:        NewFPSMeter(),
		lastUpdate: time.Now(),
	}
	if opts.Profile {
		dir := opts.ProfilesDir
		if dir == "" {
			dir = "profiles"
		}
		if a.profiler, err = NewProfiler(dir); err != nil {
			return nil, err
		}
	}
	GetDebugState().ShowOverlay = opts.Debug
	return a, nil
}

// Simulation returns the driven simulation
func (a *App) Simulation() *sim.Simulation { return a.sim }

// Update advances the simulation by one frame
func (a *App) Update() error {
	now := time.Now()
	frame := now.Sub(a.lastUpdate).Seconds()
	a.lastUpdate = now

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		debugState := GetDebugState()
		debugState.ShowOverlay = !debugState.ShowOverlay
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	a.sim.Tick(inputFromState(captureDevices(a.opts.ScreenWidth, a.opts.ScreenHeight)))
	if events := a.sim.Drain(); len(events) > 0 && a.sink != nil {
		a.sink.Play(events)
	}

	if a.fps.Frame(frame) && a.profiler != nil {
		a.reportDrop()
	}
	return nil
}

func (a *App) reportDrop() {
	w := a.sim.World()
	reason := fmt.Sprintf("fps%.0f-entities%d-projectiles%d", a.fps.FPS(), w.Count(), len(w.Projectiles()))

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("FPS drop detected (%.0f FPS), GC stats: NumGC=%d, PauseTotal=%v, HeapAlloc=%d KB",
		a.fps.FPS(), m.NumGC, time.Duration(m.PauseTotalNs), m.HeapAlloc/1024)

	if err := a.profiler.CaptureProfile(reason); err != nil {
		log.Printf("Failed to capture profile: %v", err)
	}
}

// Draw renders the lane, the HUD and the debug overlay
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Render(screen, a.sim.View())
	drawHUD(screen, a.sim.HUD(), a.sim.Character())
	if GetDebugState().ShowOverlay {
		drawDebug(screen, debugLines(a.sim, a.fps.FPS()))
	}
}

// Layout returns the configured screen size
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.opts.ScreenWidth, a.opts.ScreenHeight
}
