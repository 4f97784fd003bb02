package game

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

// Profiler captures a CPU profile and an execution trace when the frame
// rate drops
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	profilesDir     string
	captureDuration time.Duration
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profiles dir: %w", err)
	}
	return &Profiler{
		captureCooldown: 10 * time.Second,
		profilesDir:     dir,
		captureDuration: 5 * time.Second,
	}, nil
}

// CaptureProfile starts a background capture unless one is running or the
// last one was too recent
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if since := time.Since(p.lastCaptureTime); since < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", since)
	}
	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := fmt.Sprintf("fps-drop-%s-%s", time.Now().Format("20060102-150405"), reason)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.captureCPUProfile(baseName, p.captureDuration); err != nil {
				log.Printf("Error capturing CPU profile: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.captureTrace(baseName, p.captureDuration); err != nil {
				log.Printf("Error capturing trace: %v", err)
			}
		}()
		wg.Wait()

		p.summarize(baseName)
	}()
	return nil
}

// IsProfiling reports whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

func (p *Profiler) captureCPUProfile(baseName string, d time.Duration) error {
	path := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer f.Close()

	if err := pprof.StartCPUProfile(f); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(d)
	pprof.StopCPUProfile()

	log.Printf("CPU profile saved to: %s", path)
	return nil
}

func (p *Profiler) captureTrace(baseName string, d time.Duration) error {
	path := filepath.Join(p.profilesDir, baseName+".trace")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer f.Close()

	if err := trace.Start(f); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(d)
	trace.Stop()

	log.Printf("Trace saved to: %s", path)
	return nil
}

// summarize logs where the profile went and the heap state after it
func (p *Profiler) summarize(baseName string) {
	path := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	info, err := os.Stat(path)
	if err != nil {
		log.Printf("Warning: could not analyze profile: %v", err)
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("profile %s (%.2f KB), view with: go tool pprof -http=:8080 %s", baseName, float64(info.Size())/1024, path)
	log.Printf("memory: alloc=%d KB sys=%d KB gc=%d heap objects=%d", m.Alloc/1024, m.Sys/1024, m.NumGC, m.HeapObjects)
}

// FPSMeter averages the frame rate over half second windows and flags drops
type FPSMeter struct {
	fps     float64
	frames  int
	elapsed float64

	// Threshold is the rate below which a window counts as a drop
	Threshold float64
	// Warmup ignores drops for this long after start
	Warmup float64
	since  float64
}

// NewFPSMeter creates a meter assuming 60 FPS until the first window closes
func NewFPSMeter() *FPSMeter {
	return &FPSMeter{fps: 60, Threshold: 55, Warmup: 3}
}

// Frame records one frame of dt seconds. It returns true when a window
// closed below the threshold after the warmup.
func (m *FPSMeter) Frame(dt float64) bool {
	m.elapsed += dt
	m.since += dt
	m.frames++
	if m.elapsed < 0.5 {
		return false
	}
	m.fps = float64(m.frames) / m.elapsed
	m.frames = 0
	m.elapsed = 0
	return m.fps < m.Threshold && m.since >= m.Warmup
}

// FPS returns the rate of the last closed window
func (m *FPSMeter) FPS() float64 { return m.fps }
