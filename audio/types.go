package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundShot      SoundType = iota // Laser fired
	SoundCoin                       // Coin collected
	SoundHit                        // Asteroid damaged
	SoundExplosion                  // Asteroid destroyed or shield broken
	SoundPowerup                    // Powerup granted
	SoundCrash                      // Player crashed
	soundTypeCount
)

// soundNames maps the JSON keys of SKY_PILOT_SFX_VOLUMES
var soundNames = map[string]SoundType{
	"shot":      SoundShot,
	"coin":      SoundCoin,
	"hit":       SoundHit,
	"explosion": SoundExplosion,
	"powerup":   SoundPowerup,
	"crash":     SoundCrash,
}

// String returns the config key of the sound
func (s SoundType) String() string {
	for name, t := range soundNames {
		if t == s {
			return name
		}
	}
	return "unknown"
}

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: map[SoundType]float64{
			SoundShot:      0.3,
			SoundCoin:      0.6,
			SoundHit:       0.5,
			SoundExplosion: 0.8,
			SoundPowerup:   0.7,
			SoundCrash:     1.0,
		},
	}
}
