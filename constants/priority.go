package constants

// System Execution Priorities (lower runs first)
// Order is fixed: fire, progress, player, powers, spawn, projectiles, world, effects
const (
	PriorityFire        = 10
	PriorityProgress    = 20
	PriorityPlayer      = 30
	PriorityPowers      = 40
	PrioritySpawn       = 50
	PriorityProjectiles = 60
	PriorityWorld       = 70
	PriorityEffects     = 80
)
