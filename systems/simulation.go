package systems

import "github.com/lixenwraith/sky-pilot/engine"

// NewSimulation builds the full frame pipeline
func NewSimulation() *engine.Simulation {
	return engine.NewSimulation(
		NewFireSystem(),
		NewProgressSystem(),
		NewPlayerSystem(),
		NewPowerSystem(),
		NewSpawnSystem(),
		NewProjectileSystem(),
		NewWorldSystem(),
		NewEffectsSystem(),
	)
}
