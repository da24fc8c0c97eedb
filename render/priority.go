package render

// RenderPriority determines render order. Lower values render first
// Layers below PriorityHUD are drawn under the camera shake offset
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityEntities
	PriorityPlayer
	PriorityReticle
	PriorityParticles
	PriorityTexts
	PriorityHUD
	PriorityOverlay
)
