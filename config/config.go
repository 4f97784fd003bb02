package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"lanesurvivor/sim"
)

// Settings holds process-level settings shared by both frontends
type Settings struct {
	ScreenWidth  int
	ScreenHeight int

	// Seed overrides the simulation random seed when non-zero
	Seed int64

	// Survival overrides the survival duration when non-zero
	Survival time.Duration

	Debug  bool
	LogDir string

	Audio   bool
	Profile bool
}

// Default returns the settings used when nothing is configured
func Default() Settings {
	return Settings{
		ScreenWidth:  1280,
		ScreenHeight: 720,
		LogDir:       "logs",
		Audio:        true,
	}
}

// Environment variables read by Load
const (
	EnvWidth    = "LANES_WIDTH"
	EnvHeight   = "LANES_HEIGHT"
	EnvSeed     = "LANES_SEED"
	EnvSurvival = "LANES_SURVIVAL"
	EnvDebug    = "LANES_DEBUG"
	EnvLogDir   = "LANES_LOG_DIR"
	EnvAudio    = "LANES_AUDIO"
	EnvProfile  = "LANES_PROFILE"
)

// Load reads an optional .env file at path into the environment and applies
// LANES_* overrides on top of the defaults. A missing file is not an error.
func Load(path string) (Settings, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("load %s: %w", path, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv applies overrides from lookup to the defaults
func FromEnv(lookup func(string) (string, bool)) (Settings, error) {
	s := Default()

	ints := []struct {
		key string
		dst *int
	}{
		{EnvWidth, &s.ScreenWidth},
		{EnvHeight, &s.ScreenHeight},
	}
	for _, f := range ints {
		if v, ok := lookup(f.key); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return Settings{}, fmt.Errorf("%s: invalid size %q", f.key, v)
			}
			*f.dst = n
		}
	}

	if v, ok := lookup(EnvSeed); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		s.Seed = n
	}

	if v, ok := lookup(EnvSurvival); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w", EnvSurvival, err)
		}
		if d <= 0 {
			return Settings{}, fmt.Errorf("%s: duration must be positive, got %s", EnvSurvival, d)
		}
		s.Survival = d
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{EnvDebug, &s.Debug},
		{EnvAudio, &s.Audio},
		{EnvProfile, &s.Profile},
	}
	for _, f := range bools {
		if v, ok := lookup(f.key); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return Settings{}, fmt.Errorf("%s: %w", f.key, err)
			}
			*f.dst = b
		}
	}

	if v, ok := lookup(EnvLogDir); ok && v != "" {
		s.LogDir = v
	}
	return s, nil
}

// SimConfig derives the simulation tuning from the settings
func (s Settings) SimConfig() sim.Config {
	cfg := sim.DefaultConfig()
	if s.Seed != 0 {
		cfg.Seed = s.Seed
	}
	if s.Survival > 0 {
		cfg.SurvivalDuration = s.Survival
	}
	return cfg
}
