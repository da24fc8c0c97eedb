package constants

// Speed and Score
const (
	// InitialSpeed is the forward speed at the start of a run (world units per frame)
	InitialSpeed = 15.0

	// MaxSpeed caps the speed ramp
	MaxSpeed = 50.0

	// SpeedIncrement is added to speed every flying frame until MaxSpeed
	SpeedIncrement = 0.005

	// ScoreSpeedDivisor converts speed into per-frame score: floor(speed / divisor)
	ScoreSpeedDivisor = 5.0

	// CrashSlowdown multiplies speed every frame while crashing
	CrashSlowdown = 0.90

	// SpeedDisplayFactor converts speed into displayed KM/H
	SpeedDisplayFactor = 10.0
)

// Player Controller
const (
	// PlayerSmoothing is the exponential smoothing factor toward the target
	PlayerSmoothing = 0.2

	// TiltGain converts lateral delta into bank angle (radians per world unit)
	TiltGain = 0.003

	// TiltSmoothing smooths the bank angle toward its goal
	TiltSmoothing = 0.15

	// KeyboardStep is how far one arrow key press moves the target
	KeyboardStep = 60.0

	// FireBurstFrames is how long one fire key press holds the trigger
	FireBurstFrames = 12
)

// Spawning
const (
	// SpawnConstant divided by speed gives the spawn interval in frames
	SpawnConstant = 500.0

	// MinSpawnInterval floors the spawn interval in frames
	MinSpawnInterval = 10

	// RotationStep is added to entity rotation every frame (radians)
	RotationStep = 0.03
)

// Powerups
const (
	ShieldDuration     = 600
	MagnetDuration     = 600
	RapidFireDuration  = 600
	TripleShotDuration = 600
	MagnetRange        = 700.0
	MagnetMaxZ         = 2000.0
	MagnetPullStrength = 0.15
	LootPullStrength   = 0.25
	MagnetDepthPull    = 25.0
)

// Effects
const (
	// ShakeDecay multiplies shake intensity each frame
	ShakeDecay = 0.9

	// ShakeFloor snaps shake to zero below this intensity
	ShakeFloor = 0.5

	ShakeAsteroidHit       = 2.0
	ShakeAsteroidDestroyed = 5.0
	ShakeShieldBlock       = 15.0
	ShakeCrash             = 40.0

	// ParticleDecay is subtracted from particle life each frame
	ParticleDecay = 0.03

	// ParticleDrag multiplies particle velocity each frame
	ParticleDrag = 0.92

	// ScoreTextDecay is subtracted from world-anchored text life each frame
	ScoreTextDecay = 0.02

	// NotificationDecay is subtracted from screen-anchored text life each frame
	NotificationDecay = 0.015

	ScoreTextVelocity    = -5.0
	NotificationVelocity = -1.0
)
