package sim

import (
	"github.com/google/uuid"

	"lanesurvivor/geom"
)

// Session is the per-run state reset every time Playing is entered
type Session struct {
	ID       string
	Score    uint32
	Lives    uint32
	Progress Progress

	// Survival counts up to the survival duration; Remaining is what the HUD shows
	Survival Timer

	// SpawnTimer gates enemy creation
	SpawnTimer Timer
}

func newSession(cfg Config) Session {
	return Session{
		ID:         uuid.NewString(),
		Score:      0,
		Lives:      cfg.StartingLives,
		Progress:   NewProgress(cfg),
		Survival:   NewTimer(cfg.SurvivalDuration, false),
		SpawnTimer: NewTimer(cfg.SpawnInterval, true),
	}
}

// ShortID is the session id prefix used in log lines
func (s Session) ShortID() string {
	if len(s.ID) > 8 {
		return s.ID[:8]
	}
	return s.ID
}

// HoverPosition is the last ground point resolved under the pointer
type HoverPosition struct {
	// Cursor is the last pointer position seen, nil until one is reported
	Cursor *geom.Vec2

	World geom.Vec3

	// Valid is set once World has been resolved at least once this session
	Valid bool
}
