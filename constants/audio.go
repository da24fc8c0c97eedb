package constants

import "time"

// Audio Engine Timing
const (
	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap is the minimum gap between two plays of the same sound
	MinSoundGap = 40 * time.Millisecond
)

// Shot Sound Timing
const (
	ShotSoundDuration = 90 * time.Millisecond
	ShotSoundAttack   = 2 * time.Millisecond
	ShotSoundRelease  = 70 * time.Millisecond
)

// Coin Sound Timing
const (
	CoinSoundNote1Duration = 60 * time.Millisecond
	CoinSoundNote2Duration = 200 * time.Millisecond
	CoinSoundAttack        = 5 * time.Millisecond
	CoinSoundNote1Release  = 30 * time.Millisecond
	CoinSoundNote2Release  = 150 * time.Millisecond
)

// Hit Sound Timing
const (
	HitSoundDuration = 70 * time.Millisecond
	HitSoundAttack   = 2 * time.Millisecond
	HitSoundRelease  = 50 * time.Millisecond
)

// Explosion Sound Timing
const (
	ExplosionSoundDuration = 350 * time.Millisecond
	ExplosionSoundAttack   = 5 * time.Millisecond
	ExplosionSoundRelease  = 300 * time.Millisecond
)

// Powerup Sound Timing
const (
	PowerupSoundNoteDuration = 70 * time.Millisecond
	PowerupSoundAttack       = 5 * time.Millisecond
	PowerupSoundRelease      = 40 * time.Millisecond
)

// Crash Sound Timing
const (
	CrashSoundDuration = 900 * time.Millisecond
	CrashSoundAttack   = 10 * time.Millisecond
	CrashSoundRelease  = 800 * time.Millisecond
)
