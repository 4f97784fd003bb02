package sim

import (
	"log"
	"math/rand"

	"lanesurvivor/geom"
)

// Simulation is the tick driver. It owns the registry, the state machine and
// the session, and runs the gameplay systems in a fixed order.
type Simulation struct {
	cfg    Config
	clock  Clock
	caster RayCaster
	rng    *rand.Rand

	world   *World
	machine StateMachine
	session Session
	hover   HoverPosition
	choice  string

	hud    HUD
	events []Event
}

// New creates a simulation in the Menu state. caster may be nil, in which
// case the pointer never resolves and only keyboard movement works.
func New(cfg Config, clock Clock, caster RayCaster) *Simulation {
	s := &Simulation{
		cfg:    cfg,
		clock:  clock,
		caster: caster,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		world:  NewWorld(),
		choice: SkinPlayerA,
		events: make([]Event, 0, 32),
	}
	s.session = newSession(cfg)
	s.publishHUD()
	return s
}

// Tick advances the simulation by one clock step
func (s *Simulation) Tick(in Input) {
	dt := s.clock.Step()

	s.applyTransition()

	switch s.machine.Current() {
	case StateMenu:
		if in.SelectCharacter != "" {
			s.SelectCharacter(in.SelectCharacter)
		}
		if in.Start {
			s.request(StatePlaying)
		}
	case StateGameOver, StateVictory:
		if in.Restart {
			s.request(StateMenu)
		}
	case StatePlaying:
		s.resolveInput(in)
		s.movePlayer(dt)
		s.aimPlayer()
		s.followCamera()
		s.spawnEnemies(dt)
		s.moveEnemies(dt)
		s.playerAttack(in, dt)
		s.enemyAttack(dt)
		s.updateProjectiles(dt)
		s.updateHealthBars()
		s.handleDeaths()
		s.tickSurvival(dt)
		s.recycleLane()
	}

	s.world.Flush()
	s.publishHUD()
}

// Request queues a state transition applied at the start of the next tick
func (s *Simulation) Request(next GameState) error {
	return s.machine.Request(next)
}

// request queues a transition raised by a system; invalid ones are logged
func (s *Simulation) request(next GameState) {
	if err := s.machine.Request(next); err != nil {
		log.Printf("[session %s] %v", s.session.ShortID(), err)
	}
}

// SelectCharacter records the player archetype used by the next session
func (s *Simulation) SelectCharacter(key string) bool {
	if !IsPlayerSkin(key) {
		return false
	}
	s.choice = key
	return true
}

// applyTransition moves to the pending state and runs the exit/enter side effects
func (s *Simulation) applyTransition() {
	from, to, changed := s.machine.Apply()
	if !changed {
		return
	}
	if from == StatePlaying {
		s.world.Clear()
	}
	if to == StatePlaying {
		s.session = newSession(s.cfg)
		s.hover = HoverPosition{Cursor: s.hover.Cursor}
		s.setupWorld()
	}
	log.Printf("[session %s] %s -> %s", s.session.ShortID(), from, to)
	s.emit(Event{Kind: EventStateChanged, From: from, To: to})
}

// setupWorld builds the canonical starting layout: camera, player, ground,
// indicator and the two rows of props along the lane
func (s *Simulation) setupWorld() {
	off := s.cfg.CameraOffset
	cam := s.world.create(Gameplay, Camera)
	Camera.SetValue(cam, CameraData{Eye: geom.V3(off, off, off), Target: geom.Zero})

	player := s.world.create(Gameplay, PlayerTag, Transform, Health, AttackTimer, MoveTarget, Skin, Children)
	Transform.SetValue(player, TransformData{Position: geom.Zero})
	Health.SetValue(player, HealthData{Current: s.cfg.PlayerHealth, Max: s.cfg.PlayerHealth})
	AttackTimer.SetValue(player, NewCooldown(s.cfg.PlayerCooldown))
	MoveTarget.SetValue(player, MoveTargetData{Point: geom.Zero})
	Skin.SetValue(player, SkinData{Key: s.choice})
	s.attachHealthBar(player)

	ground := s.world.create(Gameplay, GroundTag, Transform, Skin)
	Skin.SetValue(ground, SkinData{Key: SkinGround})

	ind := s.world.create(Gameplay, IndicatorTag, Transform, Skin)
	Transform.SetValue(ind, TransformData{Position: geom.V3(0, -1, 0)})
	Skin.SetValue(ind, SkinData{Key: SkinIndicator})

	for i := -s.cfg.PropRows; i <= s.cfg.PropRows; i++ {
		x := float64(i) * s.cfg.PropSpacing
		for _, side := range []float64{1, -1} {
			z := side * s.cfg.LaneHalfWidth
			s.spawnProp(PropBuilding, buildingSkin(i, side), geom.V3(x, 0, z))
			if i < s.cfg.PropRows {
				s.spawnProp(PropTree, SkinTree, geom.V3(x+s.cfg.PropSpacing/2, 0, z))
			}
		}
	}
}

func (s *Simulation) spawnProp(kind PropKind, skin string, pos geom.Vec3) {
	e := s.world.create(Gameplay, Prop, Transform, Skin)
	Prop.SetValue(e, PropData{Kind: kind})
	Transform.SetValue(e, TransformData{Position: pos})
	Skin.SetValue(e, SkinData{Key: skin})
}

// State returns the active game state
func (s *Simulation) State() GameState { return s.machine.Current() }

// Session returns a copy of the per-run state
func (s *Simulation) Session() Session { return s.session }

// Hover returns the last resolved pointer position
func (s *Simulation) Hover() HoverPosition { return s.hover }

// Character returns the archetype the next session will use
func (s *Simulation) Character() string { return s.choice }

// Config returns the tuning the simulation runs with
func (s *Simulation) Config() Config { return s.cfg }

// World exposes the registry to tests and debug overlays
func (s *Simulation) World() *World { return s.world }
