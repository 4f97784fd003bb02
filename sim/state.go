package sim

import (
	"errors"
	"fmt"
)

// GameState is the top-level mode of the game
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StateGameOver
	StateVictory
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	case StateVictory:
		return "Victory"
	default:
		return fmt.Sprintf("GameState(%d)", int(s))
	}
}

// ErrInvalidTransition is returned for a transition the state machine does not allow
var ErrInvalidTransition = errors.New("invalid state transition")

var validTransitions = map[GameState][]GameState{
	StateMenu:     {StatePlaying},
	StatePlaying:  {StateGameOver, StateVictory},
	StateGameOver: {StateMenu},
	StateVictory:  {StateMenu},
}

// CanTransition reports whether from -> to is an edge of the state machine
func CanTransition(from, to GameState) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// StateMachine holds the current state and at most one pending transition.
// Requests are applied by Apply, which the tick driver calls before running
// any state-gated system; the last valid request of a tick wins.
type StateMachine struct {
	current GameState
	next    GameState
	queued  bool
}

// Current returns the active state
func (m *StateMachine) Current() GameState { return m.current }

// Request queues a transition to next
func (m *StateMachine) Request(next GameState) error {
	if !CanTransition(m.current, next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.current, next)
	}
	m.next = next
	m.queued = true
	return nil
}

// Pending returns the queued state, if any
func (m *StateMachine) Pending() (GameState, bool) {
	return m.next, m.queued
}

// Apply moves to the queued state and returns the states it moved between
func (m *StateMachine) Apply() (from, to GameState, changed bool) {
	if !m.queued {
		return m.current, m.current, false
	}
	from, to = m.current, m.next
	m.current = m.next
	m.queued = false
	return from, to, from != to
}
