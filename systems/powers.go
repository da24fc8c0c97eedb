package systems

import (
	"github.com/lixenwraith/sky-pilot/constants"
	"github.com/lixenwraith/sky-pilot/engine"
)

// PowerSystem counts down active power timers
type PowerSystem struct{}

// NewPowerSystem creates a new power system
func NewPowerSystem() engine.System {
	return &PowerSystem{}
}

// Priority returns the system's priority
func (sys *PowerSystem) Priority() int {
	return constants.PriorityPowers
}

// Update ticks each power once per flying frame
func (sys *PowerSystem) Update(s *engine.State) {
	if s.Crashing() {
		return
	}

	for k := engine.PowerKind(0); k < engine.PowerCount; k++ {
		if !s.Powers[k].Tick() {
			continue
		}
		s.EmitPower(engine.EventPowerExpired, k)
		if k == engine.PowerShield {
			notify(s, "SHIELD DOWN", constants.ColorShieldDown)
		}
	}
}
