package sim

import "lanesurvivor/geom"

// EventKind identifies something that happened during a tick
type EventKind int

const (
	EventShotFired EventKind = iota
	EventPlayerHit
	EventEnemyHit
	EventEnemyKilled
	EventLifeLost
	EventRecycled
	EventStateChanged
)

func (k EventKind) String() string {
	switch k {
	case EventShotFired:
		return "ShotFired"
	case EventPlayerHit:
		return "PlayerHit"
	case EventEnemyHit:
		return "EnemyHit"
	case EventEnemyKilled:
		return "EnemyKilled"
	case EventLifeLost:
		return "LifeLost"
	case EventRecycled:
		return "Recycled"
	case EventStateChanged:
		return "StateChanged"
	default:
		return "Unknown"
	}
}

// Event is a notification for frontends (sound, logging, effects).
// Only the fields relevant to Kind are set.
type Event struct {
	Kind     EventKind
	Position geom.Vec3

	// PlayerSide is set on ShotFired for player shots
	PlayerSide bool

	// From and To are set on StateChanged
	From GameState
	To   GameState
}

func (s *Simulation) emit(ev Event) {
	s.events = append(s.events, ev)
}

// Drain returns the events produced since the last call and forgets them
func (s *Simulation) Drain() []Event {
	if len(s.events) == 0 {
		return nil
	}
	out := s.events
	s.events = make([]Event, 0, cap(out))
	return out
}
