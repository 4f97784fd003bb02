package sim

import "time"

// Config holds every tunable of the lane simulation
type Config struct {
	// LaneHalfWidth is the distance from the centerline to the lane edge where props stand
	LaneHalfWidth float64

	// PlayerBoundary clamps the lateral coordinate of the player, its move target and the aim point
	PlayerBoundary float64

	// PlayerSpeed is the player movement speed in units per second
	PlayerSpeed float64

	// ArriveEpsilon is the distance under which the player counts as arrived at its target
	ArriveEpsilon float64

	// KeyboardStep is how far ahead of the player a directional key places the move target
	KeyboardStep float64

	// PlayerHealth is the maximum (and starting) player health
	PlayerHealth float64

	// StartingLives is the number of lives at the start of every session
	StartingLives uint32

	// EnemySpeed is the enemy steering speed in units per second
	EnemySpeed float64

	// EnemyStopRadius is the horizontal distance at which enemies stop approaching
	EnemyStopRadius float64

	// EnemyHealth is the maximum (and starting) enemy health
	EnemyHealth float64

	// SpawnInterval is the period of the repeating enemy spawn timer
	SpawnInterval time.Duration

	// SpawnLead is how far ahead (towards -X) of the player enemies appear
	SpawnLead float64

	// SpawnSway is the amplitude of the sin(elapsed) lateral sway of spawn points
	SpawnSway float64

	// SpawnJitter is the half-width of the uniform lateral jitter of spawn points
	SpawnJitter float64

	// PlayerCooldown is the player attack cooldown
	PlayerCooldown time.Duration

	// PlayerShotSpeed and PlayerShotDamage describe player projectiles
	PlayerShotSpeed  float64
	PlayerShotDamage float64

	// EnemyCooldown is the enemy attack cooldown
	EnemyCooldown time.Duration

	// EnemyRange is the distance under which enemies fire at the player
	EnemyRange float64

	// EnemyShotSpeed and EnemyShotDamage describe enemy projectiles
	EnemyShotSpeed  float64
	EnemyShotDamage float64

	// ShotHeight is the height above the shooter where projectiles start
	ShotHeight float64

	// ProjectileCap removes projectiles farther than this from the world origin
	ProjectileCap float64

	// HitRadius and HitHeight define the hit sphere centered HitHeight above an actor
	HitRadius float64
	HitHeight float64

	// KillScore is added to the score for every enemy killed
	KillScore uint32

	// HealthBarWidth is the full-health horizontal scale of a health bar
	HealthBarWidth float64

	// SurvivalDuration is the time to survive for a victory
	SurvivalDuration time.Duration

	// InitialWall is the wall position at the start of a session (MinX starts at 0)
	InitialWall float64

	// WallOffset is the distance between MinX and the wall during normal play
	WallOffset float64

	// RecycleLimit is the longitudinal coordinate that triggers a lane recycle
	RecycleLimit float64

	// RecycleOffset is added to the player position on a lane recycle
	RecycleOffset float64

	// RecycleWallOffset is the distance between MinX and the wall right after a recycle
	RecycleWallOffset float64

	// PropSpreadMin and PropSpreadMax bound the random lateral offset added to
	// LaneHalfWidth when props are shuffled on a recycle
	PropSpreadMin float64
	PropSpreadMax float64

	// PropRows and PropSpacing lay out buildings along the lane at i*PropSpacing for i in [-PropRows, PropRows]
	PropRows    int
	PropSpacing float64

	// CameraOffset is added to the followed point to place the camera eye
	CameraOffset float64

	// IndicatorLift raises the aim indicator above the ground
	IndicatorLift float64

	// Seed initializes the simulation random source
	Seed int64
}

// DefaultConfig returns the canonical tuning of the game
func DefaultConfig() Config {
	return Config{
		LaneHalfWidth:     8.0,
		PlayerBoundary:    7.0,
		PlayerSpeed:       7.0,
		ArriveEpsilon:     0.1,
		KeyboardStep:      1.5,
		PlayerHealth:      200.0,
		StartingLives:     3,
		EnemySpeed:        5.0,
		EnemyStopRadius:   10.0,
		EnemyHealth:       100.0,
		SpawnInterval:     5 * time.Second,
		SpawnLead:         60.0,
		SpawnSway:         5.0,
		SpawnJitter:       3.0,
		PlayerCooldown:    500 * time.Millisecond,
		PlayerShotSpeed:   25.0,
		PlayerShotDamage:  25.0,
		EnemyCooldown:     2 * time.Second,
		EnemyRange:        35.0,
		EnemyShotSpeed:    15.0,
		EnemyShotDamage:   10.0,
		ShotHeight:        1.5,
		ProjectileCap:     500.0,
		HitRadius:         2.0,
		HitHeight:         1.5,
		KillScore:         100,
		HealthBarWidth:    2.0,
		SurvivalDuration:  300 * time.Second,
		InitialWall:       20.0,
		WallOffset:        15.0,
		RecycleLimit:      -350.0,
		RecycleOffset:     700.0,
		RecycleWallOffset: 30.0,
		PropSpreadMin:     -2.0,
		PropSpreadMax:     4.0,
		PropRows:          40,
		PropSpacing:       10.0,
		CameraOffset:      20.0,
		IndicatorLift:     0.1,
		Seed:              1,
	}
}
