package engine

import "testing"

type recordingSystem struct {
	name     string
	priority int
	log      *[]string
}

func (r *recordingSystem) Update(s *State) {
	*r.log = append(*r.log, r.name)
	s.Emit(EventShot, Point3D{})
}

func (r *recordingSystem) Priority() int { return r.priority }

func TestSimulationRunsByPriority(t *testing.T) {
	var log []string
	sim := NewSimulation(
		&recordingSystem{"world", 7, &log},
		&recordingSystem{"fire", 1, &log},
		&recordingSystem{"effects", 8, &log},
		&recordingSystem{"progress", 2, &log},
	)

	s := NewState(1)
	sim.Step(s, Input{})

	want := []string{"fire", "progress", "world", "effects"}
	if len(log) != len(want) {
		t.Fatalf("Ran %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Position %d: got %s, want %s", i, log[i], want[i])
		}
	}
}

// TestStepEventsPerFrame verifies each step starts with an empty event queue
func TestStepEventsPerFrame(t *testing.T) {
	var log []string
	sim := NewSimulation(&recordingSystem{"a", 1, &log})
	s := NewState(1)

	sim.Step(s, Input{})
	sim.Step(s, Input{})

	if s.Events.Len() != 1 {
		t.Errorf("Events.Len() = %d, want 1", s.Events.Len())
	}
	if drained := s.Events.Drain(); len(drained) != 1 || s.Events.Len() != 0 {
		t.Errorf("Drain returned %d events, %d left", len(drained), s.Events.Len())
	}
}

func TestStepCopiesInput(t *testing.T) {
	sim := NewSimulation()
	s := NewState(1)

	sim.Step(s, Input{Target: Target{X: 120, Y: -40}, Firing: true})

	if s.Target.X != 120 || s.Target.Y != -40 || !s.Firing {
		t.Errorf("Input not applied: target=%+v firing=%v", s.Target, s.Firing)
	}
}
