package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the simulation + render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// CrashGameOverDelay is the real-time delay between crash and game over
	CrashGameOverDelay = 800 * time.Millisecond

	// EventChannelSize is the buffered capacity of the terminal event channel
	EventChannelSize = 100
)

// Projection and World Geometry
const (
	// FocalLength is the perspective focal length in world units
	FocalLength = 300.0

	// NearZ is the depth of the near collision plane
	NearZ = 180.0

	// SpawnZ is the depth of the far spawn plane
	SpawnZ = 2500.0

	// FloorY is the height of the virtual floor (positive is down)
	FloorY = 350.0

	// FloorMargin keeps the craft this far inside the floor and ceiling
	FloorMargin = 50.0

	// PlayerZ is the fixed depth of the craft, behind the collision plane
	PlayerZ = NearZ - 50.0

	// CullZ is the depth behind the camera where entities are discarded
	CullZ = -FocalLength

	// PlayableWidth is the lateral half-extent the craft can reach
	PlayableWidth = 500.0

	// SpawnRangeX is the narrower lateral half-extent used for spawning
	SpawnRangeX = 380.0

	// SpawnRangeY is the vertical half-extent used for spawning
	SpawnRangeY = 350.0
)

// Collision Window
const (
	// CollisionBandBehind is how far behind NearZ an entity is still tested
	CollisionBandBehind = 50.0

	// CollisionBandAhead is how far ahead of NearZ an entity starts being tested
	CollisionBandAhead = 100.0

	// HitboxPadding is added to each half-extent before scaling
	HitboxPadding = 20.0

	// ObstacleHitboxScale shrinks solid obstacle hitboxes
	ObstacleHitboxScale = 0.75

	// CollectHitboxScale enlarges coin and pickup hitboxes (gates)
	CollectHitboxScale = 2.0
)
