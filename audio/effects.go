package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/sky-pilot/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a wave whose frequency slides linearly from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from startFreq to endFreq over duration
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     startFreq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(startFreq*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/sustain/release envelope of the given total duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or negative volume is silent
// math.Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// rumble returns a low sine tone of the given duration, or silence if the generator rejects the frequency
func rumble(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(rate.N(duration))
	}
	return beep.Take(rate.N(duration), tone)
}

func effectVolume(cfg *AudioConfig, st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// CreateShotSound generates a descending laser zap
func CreateShotSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	zap := NewSweep(1400, 300, constants.ShotSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(zap, constants.ShotSoundDuration, constants.ShotSoundAttack, constants.ShotSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundShot))
}

// CreateCoinSound generates a two-note chime
func CreateCoinSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// B5 then E6
	n1 := NewOscillator(987.77, constants.CoinSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.CoinSoundNote1Duration, constants.CoinSoundAttack, constants.CoinSoundNote1Release, rate)

	n2 := NewOscillator(1318.51, constants.CoinSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.CoinSoundNote2Duration, constants.CoinSoundAttack, constants.CoinSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), effectVolume(cfg, SoundCoin))
}

// CreateHitSound generates a short metallic tick
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	tick := NewSweep(600, 200, constants.HitSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(tick, constants.HitSoundDuration, constants.HitSoundAttack, constants.HitSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundHit))
}

// CreateExplosionSound generates a noise burst over a low rumble
func CreateExplosionSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.ExplosionSoundDuration

	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, constants.ExplosionSoundAttack, constants.ExplosionSoundRelease, rate)
	low := NewEnvelope(rumble(70, d, rate), d, constants.ExplosionSoundAttack, constants.ExplosionSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(noise, 0.6),
		newVolume(low, 0.4),
	)
	return newVolume(mixed, effectVolume(cfg, SoundExplosion))
}

// CreatePowerupSound generates a rising arpeggio
func CreatePowerupSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.PowerupSoundNoteDuration

	// C5 E5 G5 C6
	freqs := []float64{523.25, 659.25, 783.99, 1046.50}
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		osc := NewOscillator(f, d, WaveSine, rate)
		notes = append(notes, NewEnvelope(osc, d, constants.PowerupSoundAttack, constants.PowerupSoundRelease, rate))
	}

	return newVolume(beep.Seq(notes...), effectVolume(cfg, SoundPowerup))
}

// CreateCrashSound generates a long falling roar
func CreateCrashSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.CrashSoundDuration

	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, constants.CrashSoundAttack, constants.CrashSoundRelease, rate)
	fall := NewEnvelope(NewSweep(220, 40, d, WaveSaw, rate), d, constants.CrashSoundAttack, constants.CrashSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(noise, 0.5),
		newVolume(fall, 0.5),
	)
	return newVolume(mixed, effectVolume(cfg, SoundCrash))
}

// GetSoundEffect returns the streamer for the given sound type, nil if unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundShot:
		return CreateShotSound(cfg)
	case SoundCoin:
		return CreateCoinSound(cfg)
	case SoundHit:
		return CreateHitSound(cfg)
	case SoundExplosion:
		return CreateExplosionSound(cfg)
	case SoundPowerup:
		return CreatePowerupSound(cfg)
	case SoundCrash:
		return CreateCrashSound(cfg)
	default:
		return nil
	}
}
