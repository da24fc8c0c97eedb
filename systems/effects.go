package systems

import (
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/sky-pilot/constants"
	"github.com/lixenwraith/sky-pilot/engine"
	"github.com/lixenwraith/sky-pilot/vmath"
)

// EffectsSystem integrates particles, ages floating texts and decays shake
type EffectsSystem struct{}

// NewEffectsSystem creates a new effects system
func NewEffectsSystem() engine.System {
	return &EffectsSystem{}
}

// Priority returns the system's priority
func (sys *EffectsSystem) Priority() int {
	return constants.PriorityEffects
}

// Update advances every visual effect by one frame
func (sys *EffectsSystem) Update(s *engine.State) {
	sys.updateParticles(s)
	sys.updateTexts(s)

	if s.Shake > 0 {
		s.Shake *= constants.ShakeDecay
		if s.Shake < constants.ShakeFloor {
			s.Shake = 0
		}
	}
}

func (sys *EffectsSystem) updateParticles(s *engine.State) {
	for i := range s.Particles {
		p := &s.Particles[i]
		p.Pos.X += p.Vel.X()
		p.Pos.Y += p.Vel.Y()
		p.Pos.Z += p.Vel.Z()
		p.Vel = p.Vel.Mul(constants.ParticleDrag)
		p.Life -= constants.ParticleDecay
	}
	s.Particles = slices.DeleteFunc(s.Particles, func(p engine.Particle) bool {
		return p.Life <= 0 || p.Pos.Z < constants.CullZ
	})
}

func (sys *EffectsSystem) updateTexts(s *engine.State) {
	for i := range s.Texts {
		t := &s.Texts[i]
		if t.Kind == engine.TextScore {
			t.Life -= constants.ScoreTextDecay
			t.Pos.Y += t.Velocity
		} else {
			t.Life -= constants.NotificationDecay
		}
	}
	s.Texts = slices.DeleteFunc(s.Texts, func(t engine.FloatingText) bool {
		return t.Life <= 0
	})
}

// explode emits count particles at pos with random velocity and size up to maxSize
func explode(s *engine.State, pos engine.Point3D, color string, count int, maxSize float64) {
	for i := 0; i < count; i++ {
		vel := mgl64.Vec3{
			vmath.RandomRange(s.Rand, -constants.ParticleSpreadXY, constants.ParticleSpreadXY),
			vmath.RandomRange(s.Rand, -constants.ParticleSpreadXY, constants.ParticleSpreadXY),
			vmath.RandomRange(s.Rand, constants.ParticleSpreadZMin, constants.ParticleSpreadZMax),
		}
		s.Particles = append(s.Particles, engine.Particle{
			Pos:     pos,
			Vel:     vel,
			Life:    1,
			MaxLife: 1,
			Color:   color,
			Size:    vmath.RandomRange(s.Rand, constants.ParticleMinSize, math.Max(maxSize, constants.ParticleMinSize)),
		})
	}
}

// scoreText adds a world-anchored rising label
func scoreText(s *engine.State, text, color string, pos engine.Point3D) {
	s.Texts = append(s.Texts, engine.FloatingText{
		ID:       s.NextID(),
		Pos:      pos,
		Text:     text,
		Color:    color,
		Life:     1,
		Velocity: constants.ScoreTextVelocity,
		Kind:     engine.TextScore,
	})
}

// notify adds a screen-anchored notification
func notify(s *engine.State, text, color string) {
	s.Texts = append(s.Texts, engine.FloatingText{
		ID:       s.NextID(),
		Text:     text,
		Color:    color,
		Life:     1,
		Velocity: constants.NotificationVelocity,
		Kind:     engine.TextNotification,
	})
}

// shake sets the camera shake intensity; a new impulse replaces the current one
func shake(s *engine.State, amount float64) {
	s.Shake = amount
}
