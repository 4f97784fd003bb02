package game

import (
	"math"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"lanesurvivor/geom"
	"lanesurvivor/sim"
)

func TestCameraRoundTrip(t *testing.T) {
	cam := NewCamera(1280, 720)
	cd := sim.CameraData{Eye: geom.V3(-30, 20, 25), Target: geom.V3(-50, 0, 5)}
	cam.Sync(cd)

	points := []geom.Vec3{
		geom.V3(-50, 0, 5),
		geom.V3(-55, 0, 0),
		geom.V3(-45, 0, 9),
		geom.V3(-60, 0, -6),
	}
	for _, p := range points {
		x, y, ok := cam.WorldToScreen(p)
		if !ok {
			t.Fatalf("%v is behind the camera", p)
		}
		ray, ok := cam.ViewportToWorld(cd, geom.Vec2{X: x, Y: y})
		if !ok {
			t.Fatalf("%v projected outside the viewport at %.1f,%.1f", p, x, y)
		}
		hit, ok := geom.IntersectGround(ray)
		if !ok {
			t.Fatalf("ray through %v missed the ground", p)
		}
		if hit.Distance(p) > 1e-6 {
			t.Errorf("round trip of %v landed at %v", p, hit)
		}
	}
}

func TestCameraRejectsOutsideViewport(t *testing.T) {
	cam := NewCamera(800, 600)
	cd := sim.CameraData{Eye: geom.V3(20, 20, 20)}
	for _, c := range []geom.Vec2{{X: -1, Y: 10}, {X: 10, Y: -1}, {X: 801, Y: 10}, {X: 10, Y: 601}} {
		if _, ok := cam.ViewportToWorld(cd, c); ok {
			t.Errorf("cursor %v should be rejected", c)
		}
	}
}

func TestCenterRayHitsTarget(t *testing.T) {
	cam := NewCamera(800, 600)
	cd := sim.CameraData{Eye: geom.V3(20, 20, 20)}
	ray, ok := cam.ViewportToWorld(cd, geom.Vec2{X: 400, Y: 300})
	if !ok {
		t.Fatal("center cursor rejected")
	}
	hit, ok := geom.IntersectGround(ray)
	if !ok || hit.Length() > 1e-6 {
		t.Errorf("center ray hit %v (ok=%v), want origin", hit, ok)
	}
}

func TestSkinTableCoversSimulationSkins(t *testing.T) {
	keys := append([]string{}, sim.PlayerSkins...)
	keys = append(keys, sim.EnemySkins...)
	keys = append(keys, sim.BuildingSkins...)
	keys = append(keys, sim.SkinTree)
	for _, k := range keys {
		if _, ok := skinTable[k]; !ok {
			t.Errorf("no art for skin %q", k)
		}
	}
}

func TestRenderSkinTints(t *testing.T) {
	img, err := renderSkin(skinTable[sim.SkinPlayerA])
	if err != nil {
		t.Fatalf("renderSkin: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 48 {
		t.Fatalf("bounds = %v", b)
	}
	c := img.RGBAAt(16, 25)
	if !(c.G > c.R && c.G > c.B) {
		t.Errorf("body pixel = %v, want the green tint", c)
	}
	if img.RGBAAt(0, 0).A != 0 {
		t.Error("corner should stay transparent")
	}
}

func TestInputFromState(t *testing.T) {
	d := deviceState{
		cursorX: 100, cursorY: 50, cursorInside: true,
		held:        map[ebiten.Key]bool{ebiten.KeyW: true, ebiten.KeyArrowLeft: true, ebiten.KeySpace: true},
		pressed:     map[ebiten.Key]bool{ebiten.Key2: true, ebiten.KeyR: true},
		rightButton: true,
	}
	in := inputFromState(d)

	if in.Cursor == nil || in.Cursor.X != 100 || in.Cursor.Y != 50 {
		t.Errorf("cursor = %v", in.Cursor)
	}
	if !in.Up || in.Down || !in.Left || in.Right {
		t.Errorf("directions = up %v down %v left %v right %v", in.Up, in.Down, in.Left, in.Right)
	}
	if !in.Attack || in.Primary || !in.Secondary {
		t.Errorf("attack %v primary %v secondary %v", in.Attack, in.Primary, in.Secondary)
	}
	if !in.Restart || in.Start {
		t.Errorf("restart %v start %v", in.Restart, in.Start)
	}
	if in.SelectCharacter != sim.SkinPlayerB {
		t.Errorf("select = %q", in.SelectCharacter)
	}
}

func TestMenuKeysStayOffGameplayKeys(t *testing.T) {
	in := inputFromState(deviceState{
		held:    map[ebiten.Key]bool{ebiten.KeySpace: true},
		pressed: map[ebiten.Key]bool{ebiten.KeySpace: true},
	})
	if !in.Attack || in.Start || in.Restart {
		t.Errorf("space: attack %v start %v restart %v", in.Attack, in.Start, in.Restart)
	}

	in = inputFromState(deviceState{pressed: map[ebiten.Key]bool{ebiten.KeyEnter: true}})
	if !in.Start || in.Restart {
		t.Errorf("enter: start %v restart %v", in.Start, in.Restart)
	}
}

func TestInputWithoutCursor(t *testing.T) {
	in := inputFromState(deviceState{cursorX: -5, cursorY: 3})
	if in.Cursor != nil {
		t.Errorf("cursor outside the window = %v, want nil", in.Cursor)
	}
}

func TestScreenText(t *testing.T) {
	tests := []struct {
		state sim.GameState
		title string
	}{
		{sim.StateMenu, "LANE SURVIVOR"},
		{sim.StateGameOver, "GAME OVER"},
		{sim.StateVictory, "YOU SURVIVED"},
		{sim.StatePlaying, ""},
	}
	for _, tt := range tests {
		title, _ := screenText(sim.HUD{State: tt.state, Score: 300}, sim.SkinPlayerA)
		if title != tt.title {
			t.Errorf("%s: title %q, want %q", tt.state, title, tt.title)
		}
	}

	_, body := screenText(sim.HUD{State: sim.StateMenu}, sim.SkinPlayerB)
	if !strings.Contains(body[0], sim.SkinPlayerB) {
		t.Errorf("menu does not show the chosen character: %q", body[0])
	}
	_, body = screenText(sim.HUD{State: sim.StateGameOver, Score: 300}, "")
	if !strings.Contains(body[0], "300") {
		t.Errorf("game over does not show the score: %q", body[0])
	}
}

func TestStatusLine(t *testing.T) {
	got := statusLine(sim.HUD{State: sim.StatePlaying, Remaining: "04:59", Score: 200, Lives: 2})
	want := "TIME 04:59   SCORE 200   LIVES 2"
	if got != want {
		t.Errorf("statusLine = %q, want %q", got, want)
	}
}

func TestFPSMeter(t *testing.T) {
	m := NewFPSMeter()
	if m.FPS() != 60 {
		t.Fatalf("initial FPS = %v", m.FPS())
	}

	// 3 seconds at 60 FPS, never a drop
	for i := 0; i < 180; i++ {
		if m.Frame(1.0 / 60) {
			t.Fatalf("drop reported at frame %d", i)
		}
	}
	if math.Abs(m.FPS()-60) > 1 {
		t.Errorf("FPS = %v, want about 60", m.FPS())
	}

	// a second at 20 FPS after the warmup
	dropped := false
	for i := 0; i < 20; i++ {
		dropped = m.Frame(1.0/20) || dropped
	}
	if !dropped {
		t.Error("slow window not reported")
	}
	if math.Abs(m.FPS()-20) > 1 {
		t.Errorf("FPS = %v, want about 20", m.FPS())
	}
}

func TestFPSMeterWarmup(t *testing.T) {
	m := NewFPSMeter()
	for i := 0; i < 10; i++ {
		if m.Frame(0.1) {
			t.Fatal("drop reported during warmup")
		}
	}
}
