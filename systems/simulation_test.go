package systems

import (
	"testing"

	"github.com/lixenwraith/sky-pilot/constants"
	"github.com/lixenwraith/sky-pilot/engine"
)

func TestSimulationOrder(t *testing.T) {
	sim := NewSimulation()
	want := []int{
		constants.PriorityFire,
		constants.PriorityProgress,
		constants.PriorityPlayer,
		constants.PriorityPowers,
		constants.PrioritySpawn,
		constants.PriorityProjectiles,
		constants.PriorityWorld,
		constants.PriorityEffects,
	}

	got := sim.Systems()
	if len(got) != len(want) {
		t.Fatalf("Systems = %d, want %d", len(got), len(want))
	}
	for i, sys := range got {
		if sys.Priority() != want[i] {
			t.Errorf("System %d priority = %d, want %d", i, sys.Priority(), want[i])
		}
	}
}

// TestSameSeedSameRun verifies two runs with equal seeds and inputs stay identical
func TestSameSeedSameRun(t *testing.T) {
	a := engine.NewState(99)
	b := engine.NewState(99)
	simA, simB := NewSimulation(), NewSimulation()

	for frame := 0; frame < 600; frame++ {
		in := engine.Input{
			Target: engine.Target{X: float64(frame%200) - 100, Y: float64(frame % 50)},
			Firing: frame%3 == 0,
		}
		simA.Step(a, in)
		simB.Step(b, in)
	}

	if a.Score != b.Score || a.Coins != b.Coins || a.Frame != b.Frame || a.Phase != b.Phase {
		t.Fatalf("Runs diverged: a=(%d,%d,%d,%v) b=(%d,%d,%d,%v)",
			a.Score, a.Coins, a.Frame, a.Phase, b.Score, b.Coins, b.Frame, b.Phase)
	}
	if len(a.Entities) != len(b.Entities) {
		t.Fatalf("Entity counts differ: %d vs %d", len(a.Entities), len(b.Entities))
	}
	for i := range a.Entities {
		if *a.Entities[i] != *b.Entities[i] {
			t.Fatalf("Entity %d differs: %+v vs %+v", i, *a.Entities[i], *b.Entities[i])
		}
	}
	if len(a.Particles) != len(b.Particles) {
		t.Errorf("Particle counts differ")
	}
}

func TestStepClearsEventsAndCopiesInput(t *testing.T) {
	s := engine.NewState(1)
	s.Emit(engine.EventCrash, engine.Point3D{})
	sim := NewSimulation()

	sim.Step(s, engine.Input{Target: engine.Target{X: 100}})

	for _, ev := range s.Events.Peek() {
		if ev.Type == engine.EventCrash {
			t.Error("Stale event survived Step")
		}
	}
	if s.Target.X != 100 {
		t.Errorf("Target = %+v", s.Target)
	}
	if s.Player.Pos.X != 100*constants.PlayerSmoothing {
		t.Errorf("Player X = %v, want %v", s.Player.Pos.X, 100*constants.PlayerSmoothing)
	}
}

// TestCrashFreezesRun verifies the crash phase stops progress and keeps the frozen result
func TestCrashFreezesRun(t *testing.T) {
	s := engine.NewState(1)
	s.Score, s.Coins = 700, 3
	s.Crash()
	frame := s.Frame
	sim := NewSimulation()

	for i := 0; i < 20; i++ {
		sim.Step(s, engine.Input{Firing: true})
	}

	if s.Frame != frame {
		t.Errorf("Frame advanced while crashing")
	}
	if len(s.Projectiles) != 0 || len(s.Entities) != 0 {
		t.Errorf("Fired or spawned while crashing")
	}
	if score, coins := s.Result(); score != 700 || coins != 3 {
		t.Errorf("Result = (%d, %d)", score, coins)
	}
}

func TestPlayerClamp(t *testing.T) {
	s := engine.NewState(1)
	sys := NewPlayerSystem()
	s.Target = engine.Target{X: 1e6, Y: -1e6}

	for i := 0; i < 50; i++ {
		sys.Update(s)
	}

	if s.Player.Pos.X != constants.PlayableWidth {
		t.Errorf("X = %v, want %v", s.Player.Pos.X, constants.PlayableWidth)
	}
	if want := -(constants.FloorY - constants.FloorMargin); s.Player.Pos.Y != want {
		t.Errorf("Y = %v, want %v", s.Player.Pos.Y, want)
	}
	if s.Player.Tilt >= 0 {
		t.Errorf("Tilt = %v, want banked left for a rightward target", s.Player.Tilt)
	}
}
