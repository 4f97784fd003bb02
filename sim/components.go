package sim

import (
	"github.com/yohamta/donburi"

	"lanesurvivor/geom"
)

// Role tags. An actor is either a Player or an Enemy, never both.
var (
	PlayerTag    = donburi.NewTag()
	EnemyTag     = donburi.NewTag()
	IndicatorTag = donburi.NewTag()
	GroundTag    = donburi.NewTag()

	// Gameplay marks everything that is discarded when leaving Playing
	Gameplay = donburi.NewTag()
)

// TransformData is the placement of an entity in the world
type TransformData struct {
	Position geom.Vec3

	// Facing is a horizontal unit vector, zero until the entity first turns
	Facing geom.Vec3
}

var Transform = donburi.NewComponentType[TransformData]()

// HealthData is the health of an actor. Current may go below zero until the
// lifecycle pass processes the death.
type HealthData struct {
	Current float64
	Max     float64
}

// Ratio returns Current/Max
func (h HealthData) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

var Health = donburi.NewComponentType[HealthData]()

// AttackTimer is the attack cooldown of an actor
var AttackTimer = donburi.NewComponentType[Timer]()

// MoveTargetData is where the player is walking to
type MoveTargetData struct {
	Point geom.Vec3
}

var MoveTarget = donburi.NewComponentType[MoveTargetData]()

// SkinData is the archetype key handed to the visual collaborator
type SkinData struct {
	Key string
}

var Skin = donburi.NewComponentType[SkinData]()

// HealthBarData is the visual proxy of an owner's health. It holds no health
// of its own; ScaleX is recomputed from the owner every tick.
type HealthBarData struct {
	Owner  donburi.Entity
	ScaleX float64
}

var HealthBar = donburi.NewComponentType[HealthBarData]()

// ChildrenData lists entities owned by this one; they are removed with it
type ChildrenData struct {
	Entities []donburi.Entity
}

var Children = donburi.NewComponentType[ChildrenData]()

// ProjectileData is a shot in flight
type ProjectileData struct {
	Velocity    geom.Vec3
	Damage      float64
	PlayerOwned bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()

// PropKind distinguishes static scenery
type PropKind int

const (
	PropBuilding PropKind = iota
	PropTree
)

// PropData is static scenery standing at one edge of the lane
type PropData struct {
	Kind PropKind
}

var Prop = donburi.NewComponentType[PropData]()

// CameraData is the transform of the gameplay camera
type CameraData struct {
	Eye    geom.Vec3
	Target geom.Vec3
}

var Camera = donburi.NewComponentType[CameraData]()
