package systems

import (
	"github.com/lixenwraith/sky-pilot/constants"
	"github.com/lixenwraith/sky-pilot/engine"
	"github.com/lixenwraith/sky-pilot/vmath"
)

// PlayerSystem smooths the craft toward the input target and derives bank tilt
type PlayerSystem struct{}

// NewPlayerSystem creates a new player system
func NewPlayerSystem() engine.System {
	return &PlayerSystem{}
}

// Priority returns the system's priority
func (sys *PlayerSystem) Priority() int {
	return constants.PriorityPlayer
}

// Update integrates craft position and tilt; the craft freezes while crashing
func (sys *PlayerSystem) Update(s *engine.State) {
	if s.Crashing() {
		return
	}

	p := &s.Player
	dx := s.Target.X - p.Pos.X
	dy := s.Target.Y - p.Pos.Y

	p.Pos.X += dx * constants.PlayerSmoothing
	p.Pos.Y += dy * constants.PlayerSmoothing

	limitY := constants.FloorY - constants.FloorMargin
	p.Pos.Y = vmath.Clamp(p.Pos.Y, -limitY, limitY)
	p.Pos.X = vmath.Clamp(p.Pos.X, -constants.PlayableWidth, constants.PlayableWidth)

	p.Tilt += (dx*-constants.TiltGain - p.Tilt) * constants.TiltSmoothing
}
