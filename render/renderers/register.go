package renderers

import "github.com/lixenwraith/sky-pilot/render"

// RegisterAll installs every layer in draw order
func RegisterAll(o *render.RenderOrchestrator) {
	o.Register(NewBackgroundRenderer(), render.PriorityBackground)
	o.Register(NewEntitiesRenderer(), render.PriorityEntities)
	o.Register(NewPlayerRenderer(), render.PriorityPlayer)
	o.Register(NewReticleRenderer(), render.PriorityReticle)
	o.Register(NewParticlesRenderer(), render.PriorityParticles)
	o.Register(NewTextsRenderer(), render.PriorityTexts)
	o.Register(NewHUDRenderer(), render.PriorityHUD)
	o.Register(NewMenuRenderer(), render.PriorityOverlay)
	o.Register(NewGameOverRenderer(), render.PriorityOverlay)
	o.Register(NewHangarRenderer(), render.PriorityOverlay)
}
