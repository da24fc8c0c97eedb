package engine

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Point3D is a world position; Z decreases toward the viewer
type Point3D struct {
	X, Y, Z float64
}

// EntityType tags the behavior of an entity
type EntityType uint8

const (
	TypeCube EntityType = iota
	TypeRing
	TypeAsteroid
	TypeCoin
	TypeShield
	TypeMagnet
	TypeRapidFire
	TypeTripleShot
	TypeProjectile
)

var entityTypeNames = [...]string{
	TypeCube:       "cube",
	TypeRing:       "ring",
	TypeAsteroid:   "asteroid",
	TypeCoin:       "coin",
	TypeShield:     "shield",
	TypeMagnet:     "magnet",
	TypeRapidFire:  "rapid_fire",
	TypeTripleShot: "triple_shot",
	TypeProjectile: "projectile",
}

func (t EntityType) String() string {
	if int(t) < len(entityTypeNames) {
		return entityTypeNames[t]
	}
	return "unknown"
}

// IsObstacle reports whether contact crashes the player
func (t EntityType) IsObstacle() bool {
	return t == TypeCube || t == TypeRing || t == TypeAsteroid
}

// IsPickup reports whether the type grants a power
func (t EntityType) IsPickup() bool {
	_, ok := t.Power()
	return ok
}

// IsCollectible reports whether the type uses the generous gate hitbox
func (t EntityType) IsCollectible() bool {
	return t == TypeCoin || t.IsPickup()
}

// Power maps a pickup type to the power it grants
func (t EntityType) Power() (PowerKind, bool) {
	switch t {
	case TypeShield:
		return PowerShield, true
	case TypeMagnet:
		return PowerMagnet, true
	case TypeRapidFire:
		return PowerRapidFire, true
	case TypeTripleShot:
		return PowerTripleShot, true
	}
	return 0, false
}

// Label returns the glyph drawn on a pickup, empty for other types
func (t EntityType) Label() string {
	switch t {
	case TypeShield:
		return "S"
	case TypeMagnet:
		return "M"
	case TypeRapidFire:
		return "RF"
	case TypeTripleShot:
		return "3X"
	case TypeCoin:
		return "$"
	}
	return ""
}

// Entity is an obstacle, pickup, coin or projectile
// Active=false marks the entity dead; it is purged at the end of its owner's pass
type Entity struct {
	ID          uint64
	Pos         Point3D
	Type        EntityType
	Width       float64
	Height      float64
	Color       string
	Active      bool
	Rotation    float64
	HasRotation bool
	VX          float64 // Lateral velocity, projectiles only
	HP          int
	MaxHP       int
	AutoCollect bool // Loot coin: unlimited magnet range
}

// Damaged reports whether a multi-hit entity has lost hit points
func (e *Entity) Damaged() bool {
	return e.MaxHP > 1 && e.HP < e.MaxHP
}

// Particle is a short-lived visual fragment
type Particle struct {
	Pos     Point3D
	Vel     mgl64.Vec3
	Life    float64 // 1.0 down to 0
	MaxLife float64
	Color   string
	Size    float64
}

// TextKind selects how a floating text is anchored
type TextKind uint8

const (
	// TextScore is anchored in world space and rises as it fades
	TextScore TextKind = iota
	// TextNotification is anchored to the screen and stacked
	TextNotification
)

// FloatingText is a fading label
type FloatingText struct {
	ID       uint64
	Pos      Point3D
	Text     string
	Color    string
	Life     float64
	Velocity float64
	Kind     TextKind
}

// Player is the craft; Pos.Z stays fixed
type Player struct {
	Pos  Point3D
	Tilt float64
}

// Target is the input-driven lateral/vertical goal of the craft
type Target struct {
	X, Y float64
}
