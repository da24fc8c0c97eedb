package engine

import "sort"

// System is one stage of the simulation step
type System interface {
	Update(s *State)
	Priority() int // Lower values run first
}

// Simulation runs its systems in priority order once per frame
type Simulation struct {
	systems []System
}

// NewSimulation creates a simulation from the given systems
func NewSimulation(systems ...System) *Simulation {
	sim := &Simulation{}
	for _, sys := range systems {
		sim.AddSystem(sys)
	}
	return sim
}

// AddSystem registers a system, keeping priority order stable for equal priorities
func (sim *Simulation) AddSystem(sys System) {
	sim.systems = append(sim.systems, sys)
	sort.SliceStable(sim.systems, func(i, j int) bool {
		return sim.systems[i].Priority() < sim.systems[j].Priority()
	})
}

// Systems returns the registered systems in run order
func (sim *Simulation) Systems() []System {
	return sim.systems
}

// Step advances the state by one frame
// The outbound event queue holds only this frame's events afterwards
func (sim *Simulation) Step(s *State, in Input) {
	s.Events.Reset()
	s.Target = in.Target
	s.Firing = in.Firing

	for _, sys := range sim.systems {
		sys.Update(s)
	}
}
