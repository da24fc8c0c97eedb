package systems

import (
	"math"

	"github.com/lixenwraith/sky-pilot/constants"
	"github.com/lixenwraith/sky-pilot/engine"
)

// ProgressSystem advances the frame counter, ramps speed and accrues score
// While crashing it only decays speed for the slow-motion effect
type ProgressSystem struct{}

// NewProgressSystem creates a new progress system
func NewProgressSystem() engine.System {
	return &ProgressSystem{}
}

// Priority returns the system's priority
func (sys *ProgressSystem) Priority() int {
	return constants.PriorityProgress
}

// Update advances run progress by one frame
func (sys *ProgressSystem) Update(s *engine.State) {
	if s.Crashing() {
		s.Speed *= constants.CrashSlowdown
		return
	}

	s.Frame++
	if s.Speed < constants.MaxSpeed {
		s.Speed = math.Min(s.Speed+constants.SpeedIncrement, constants.MaxSpeed)
	}
	s.Score += ScoreRate(s.Speed)
}

// ScoreRate returns the per-frame score at the given speed
func ScoreRate(speed float64) int {
	return int(math.Floor(speed / constants.ScoreSpeedDivisor))
}
