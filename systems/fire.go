package systems

import (
	"github.com/lixenwraith/sky-pilot/constants"
	"github.com/lixenwraith/sky-pilot/engine"
)

// FireSystem spawns projectiles while firing is held, gated by a frame cooldown
type FireSystem struct{}

// NewFireSystem creates a new fire system
func NewFireSystem() engine.System {
	return &FireSystem{}
}

// Priority returns the system's priority
func (sys *FireSystem) Priority() int {
	return constants.PriorityFire
}

// Update fires once when held and the cooldown has elapsed
func (sys *FireSystem) Update(s *engine.State) {
	if !s.Firing || s.Crashing() {
		return
	}
	if s.Frame-s.LastShotFrame < Cooldown(s) {
		return
	}
	s.LastShotFrame = s.Frame

	color := constants.ColorLaser
	if s.HasPower(engine.PowerRapidFire) {
		color = constants.ColorLaserRapid
	}

	spawnProjectile(s, 0, 0, color)
	if s.HasPower(engine.PowerTripleShot) {
		spawnProjectile(s, -constants.TripleShotOffset, -constants.TripleShotVX, color)
		spawnProjectile(s, constants.TripleShotOffset, constants.TripleShotVX, color)
	}

	s.Emit(engine.EventShot, s.Player.Pos)
}

// Cooldown returns the current minimum frames between shots
func Cooldown(s *engine.State) int {
	if s.HasPower(engine.PowerRapidFire) {
		return constants.CooldownRapid
	}
	return constants.CooldownDefault
}

func spawnProjectile(s *engine.State, offsetX, vx float64, color string) {
	p := s.Player.Pos
	s.Projectiles = append(s.Projectiles, &engine.Entity{
		ID:     s.NextID(),
		Pos:    engine.Point3D{X: p.X + offsetX, Y: p.Y, Z: p.Z + constants.ProjectileZOffset},
		Type:   engine.TypeProjectile,
		Width:  constants.ProjectileSize,
		Height: constants.ProjectileSize,
		Color:  color,
		Active: true,
		VX:     vx,
	})
}
