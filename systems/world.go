package systems

import (
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/sky-pilot/constants"
	"github.com/lixenwraith/sky-pilot/engine"
)

const defaultCraftColor = "#ffffff"

// WorldSystem scrolls entities toward the viewer and resolves player contact
type WorldSystem struct{}

// NewWorldSystem creates a new world system
func NewWorldSystem() engine.System {
	return &WorldSystem{}
}

// Priority returns the system's priority
func (sys *WorldSystem) Priority() int {
	return constants.PriorityWorld
}

// Update processes entities in insertion order; a crash stops collisions for the rest of the pass
func (sys *WorldSystem) Update(s *engine.State) {
	for _, e := range s.Entities {
		if !e.Active {
			continue
		}

		e.Pos.Z -= s.Speed
		if e.HasRotation {
			e.Rotation += constants.RotationStep
		}

		if e.Type == engine.TypeCoin && !s.Crashing() {
			pullCoin(s, e)
		}

		if !s.Crashing() && inCollisionBand(e.Pos.Z) && touches(s.Player.Pos, e) {
			resolveContact(s, e)
		}

		if e.Pos.Z < constants.CullZ {
			e.Active = false
		}
	}

	s.Entities = slices.DeleteFunc(s.Entities, func(e *engine.Entity) bool {
		return !e.Active
	})
}

// pullCoin drags a coin toward the craft under the magnet, or always for loot
func pullCoin(s *engine.State, e *engine.Entity) {
	if !e.AutoCollect && !s.HasPower(engine.PowerMagnet) {
		return
	}
	if e.Pos.Z >= constants.MagnetMaxZ {
		return
	}

	offset := mgl64.Vec2{s.Player.Pos.X - e.Pos.X, s.Player.Pos.Y - e.Pos.Y}
	if !e.AutoCollect && offset.Len() >= constants.MagnetRange {
		return
	}

	strength := constants.MagnetPullStrength
	if e.AutoCollect {
		strength = constants.LootPullStrength
	}
	step := offset.Mul(strength)
	e.Pos.X += step.X()
	e.Pos.Y += step.Y()
	e.Pos.Z -= constants.MagnetDepthPull
}

func inCollisionBand(z float64) bool {
	return z > constants.NearZ-constants.CollisionBandBehind && z < constants.NearZ+constants.CollisionBandAhead
}

// touches tests the padded, type-scaled hitbox of e against the craft
func touches(p engine.Point3D, e *engine.Entity) bool {
	k := constants.ObstacleHitboxScale
	if e.Type.IsCollectible() {
		k = constants.CollectHitboxScale
	}
	halfW := (e.Width/2 + constants.HitboxPadding) * k
	halfH := (e.Height/2 + constants.HitboxPadding) * k
	return math.Abs(p.X-e.Pos.X) < halfW && math.Abs(p.Y-e.Pos.Y) < halfH
}

func resolveContact(s *engine.State, e *engine.Entity) {
	switch {
	case e.Type == engine.TypeCoin:
		e.Active = false
		s.Coins++
		scoreText(s, "+1", constants.ColorCoin, e.Pos)
		s.Emit(engine.EventCoinCollected, e.Pos)

	case e.Type.IsPickup():
		e.Active = false
		k, _ := e.Type.Power()
		info := k.Info()
		s.Powers[k].Grant(info.Duration)
		notify(s, info.Notice, info.Color)
		s.EmitPower(engine.EventPowerup, k)

	case e.Type.IsObstacle():
		if s.HasPower(engine.PowerShield) {
			e.Active = false
			s.Powers[engine.PowerShield].Consume()
			explode(s, e.Pos, constants.ColorBlocked, constants.BlockCount, constants.BlockSize)
			shake(s, constants.ShakeShieldBlock)
			scoreText(s, "BLOCKED", constants.ColorBlocked, e.Pos)
			notify(s, "SHIELD BROKEN", constants.ColorBroken)
			s.Emit(engine.EventShieldBlocked, e.Pos)
			return
		}
		crash(s)
	}
}

// crash enters the crash phase once, with a burst at the craft in its own color
func crash(s *engine.State) {
	if !s.Crash() {
		return
	}
	color := s.CraftColor
	if color == "" {
		color = defaultCraftColor
	}
	explode(s, s.Player.Pos, color, constants.CrashCount, constants.CrashSize)
	shake(s, constants.ShakeCrash)
	s.Emit(engine.EventCrash, s.Player.Pos)
}
