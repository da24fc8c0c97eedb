package systems

import (
	"fmt"
	"math"
	"slices"

	"github.com/lixenwraith/sky-pilot/constants"
	"github.com/lixenwraith/sky-pilot/engine"
)

// ProjectileSystem advances projectiles and resolves hits against asteroids
type ProjectileSystem struct{}

// NewProjectileSystem creates a new projectile system
func NewProjectileSystem() engine.System {
	return &ProjectileSystem{}
}

// Priority returns the system's priority
func (sys *ProjectileSystem) Priority() int {
	return constants.PriorityProjectiles
}

// Update moves every projectile, resolves at most one hit per projectile and purges the dead
func (sys *ProjectileSystem) Update(s *engine.State) {
	for _, p := range s.Projectiles {
		p.Pos.Z += constants.ProjectileSpeed
		p.Pos.X += p.VX

		if p.Pos.Z > constants.SpawnZ {
			p.Active = false
		}
		if !p.Active || s.Crashing() {
			continue
		}

		if target := firstHit(s.Entities, p); target != nil {
			p.Active = false
			hitAsteroid(s, target)
		}
	}

	s.Projectiles = slices.DeleteFunc(s.Projectiles, func(p *engine.Entity) bool {
		return !p.Active
	})
}

// firstHit returns the first active asteroid overlapping p in insertion order
func firstHit(entities []*engine.Entity, p *engine.Entity) *engine.Entity {
	for _, e := range entities {
		if !e.Active || e.Type != engine.TypeAsteroid {
			continue
		}
		if math.Abs(p.Pos.Z-e.Pos.Z) < constants.HitDepthWindow &&
			math.Abs(p.Pos.X-e.Pos.X) < e.Width &&
			math.Abs(p.Pos.Y-e.Pos.Y) < e.Height {
			return e
		}
	}
	return nil
}

func hitAsteroid(s *engine.State, e *engine.Entity) {
	e.HP--
	explode(s, e.Pos, constants.ColorSpark, constants.SparkCount, constants.SparkSize)

	if e.HP > 0 {
		shake(s, constants.ShakeAsteroidHit)
		s.Emit(engine.EventAsteroidHit, e.Pos)
		return
	}

	e.Active = false
	explode(s, e.Pos, constants.ColorDebris, constants.DebrisCount, constants.DebrisSize)
	explode(s, e.Pos, constants.ColorEmber, constants.EmberCount, constants.EmberSize)

	s.Score += constants.AsteroidScore
	scoreText(s, fmt.Sprintf("+%d", constants.AsteroidScore), constants.ColorScoreText, e.Pos)
	shake(s, constants.ShakeAsteroidDestroyed)
	spawnLoot(s, e.Pos)
	s.Emit(engine.EventAsteroidDestroyed, e.Pos)
}

// spawnLoot drops an auto-collecting coin at pos
func spawnLoot(s *engine.State, pos engine.Point3D) {
	s.Entities = append(s.Entities, &engine.Entity{
		ID:          s.NextID(),
		Pos:         pos,
		Type:        engine.TypeCoin,
		Width:       constants.LootCoinSize,
		Height:      constants.LootCoinSize,
		Color:       constants.ColorCoin,
		Active:      true,
		HP:          1,
		MaxHP:       1,
		AutoCollect: true,
	})
}
