package constants

// Projectiles
const (
	// ProjectileSpeed is the forward depth advance per frame
	ProjectileSpeed = 140.0

	// ProjectileSize is the width and height of a projectile
	ProjectileSize = 30.0

	// ProjectileZOffset places new projectiles slightly ahead of the craft
	ProjectileZOffset = 50.0

	// CooldownDefault is the minimum frames between shots
	CooldownDefault = 10

	// CooldownRapid is the minimum frames between shots under rapid fire
	CooldownRapid = 3

	// TripleShotOffset is the lateral offset of side shots
	TripleShotOffset = 40.0

	// TripleShotVX is the lateral velocity of side shots
	TripleShotVX = 10.0

	// HitDepthWindow is the depth overlap threshold for projectile hits
	HitDepthWindow = 150.0
)

// Asteroids
const (
	AsteroidScore   = 100
	AsteroidHPSmall = 1
	AsteroidHPLarge = 3
)

// Entity Dimensions
const (
	CubeSize       = 120.0
	RingSize       = 140.0
	PickupSize     = 100.0
	CoinGateSize   = 120.0
	LootCoinSize   = 80.0
	LargeAsteroidW = 250.0
	LargeAsteroidH = 200.0
	SmallAsteroidW = 160.0
	SmallAsteroidH = 140.0
)

// Explosion Particles
const (
	ParticleSpreadXY   = 50.0
	ParticleSpreadZMin = -20.0
	ParticleSpreadZMax = 80.0
	ParticleMinSize    = 5.0

	SparkCount  = 5
	SparkSize   = 10.0
	DebrisCount = 20
	DebrisSize  = 30.0
	EmberCount  = 10
	EmberSize   = 20.0
	BlockCount  = 15
	BlockSize   = 20.0
	CrashCount  = 60
	CrashSize   = 20.0
)
