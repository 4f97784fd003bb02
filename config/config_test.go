package config

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	s, err := FromEnv(lookupFrom(nil))
	if err != nil {
		t.Fatal(err)
	}
	if s != Default() {
		t.Errorf("settings = %+v, want defaults", s)
	}
	cfg := s.SimConfig()
	if cfg.SurvivalDuration != 300*time.Second || cfg.Seed != 1 {
		t.Errorf("sim config = %+v", cfg)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	s, err := FromEnv(lookupFrom(map[string]string{
		EnvWidth:    "800",
		EnvHeight:   "600",
		EnvSeed:     "42",
		EnvSurvival: "90s",
		EnvDebug:    "true",
		EnvAudio:    "0",
		EnvLogDir:   "/tmp/lanes",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if s.ScreenWidth != 800 || s.ScreenHeight != 600 || !s.Debug || s.Audio || s.LogDir != "/tmp/lanes" {
		t.Errorf("settings = %+v", s)
	}
	cfg := s.SimConfig()
	if cfg.Seed != 42 || cfg.SurvivalDuration != 90*time.Second {
		t.Errorf("sim config seed %d survival %v", cfg.Seed, cfg.SurvivalDuration)
	}
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad width", map[string]string{EnvWidth: "wide"}},
		{"zero height", map[string]string{EnvHeight: "0"}},
		{"bad seed", map[string]string{EnvSeed: "x"}},
		{"bad survival", map[string]string{EnvSurvival: "five minutes"}},
		{"negative survival", map[string]string{EnvSurvival: "-5s"}},
		{"bad bool", map[string]string{EnvDebug: "maybe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromEnv(lookupFrom(tt.env)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("LANES_SEED=7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvSeed, "")
	os.Unsetenv(EnvSeed)

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Seed != 7 {
		t.Errorf("seed = %d, want 7 from .env", s.Seed)
	}

	if _, err := Load(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("missing .env should not fail: %v", err)
	}
}

func TestSetupLoggingDisabled(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	f, err := SetupLogging(false, t.TempDir())
	if err != nil || f != nil {
		t.Fatalf("SetupLogging(false) = %v, %v", f, err)
	}
	if log.Writer() != io.Discard {
		t.Error("log output should be discarded")
	}
}

func TestSetupLoggingRotates(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	dir := t.TempDir()
	path := filepath.Join(dir, LogFileName)
	if err := os.WriteFile(path, make([]byte, MaxLogSize+1), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := SetupLogging(true, dir)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	log.Println("hello")

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("log dir has %d files, want current + rotated", len(entries))
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 || info.Size() > MaxLogSize {
		t.Errorf("new log size = %d", info.Size())
	}
}
