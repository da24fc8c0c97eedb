package engine

import (
	"math/rand"

	"github.com/lixenwraith/sky-pilot/constants"
)

// FlightPhase is the crash state machine of a run
type FlightPhase uint8

const (
	PhaseFlying FlightPhase = iota
	PhaseCrashing
)

func (p FlightPhase) String() string {
	if p == PhaseCrashing {
		return "crashing"
	}
	return "flying"
}

// Input is the per-frame handoff from input handlers to the simulation
type Input struct {
	Target Target
	Firing bool
}

// State is the complete simulation state of one run
// Owned by the loop goroutine; systems mutate it in place during Step
type State struct {
	Entities    []*Entity // Obstacles, pickups, coins in insertion order
	Projectiles []*Entity
	Particles   []Particle
	Texts       []FloatingText

	Player     Player
	CraftColor string // Crash explosion color, set by the driver from the equipped skin
	Target     Target
	Firing     bool

	Powers [PowerCount]PowerState

	Score         int
	Coins         int
	Speed         float64
	Frame         int
	Shake         float64
	LastShotFrame int

	Phase      FlightPhase
	CrashScore int // Frozen at the crash frame
	CrashCoins int

	// RunID increments on every Reset; delayed work tagged with an older id is stale
	RunID uint64
	Seed  int64
	Rand  *rand.Rand

	Events EventQueue

	gameOverFired bool
	nextID        uint64
}

// NewState creates a state ready for the first run
func NewState(seed int64) *State {
	s := &State{}
	s.Reset(seed)
	return s
}

// Reset discards the previous run and starts a new one
func (s *State) Reset(seed int64) {
	runID := s.RunID + 1
	*s = State{
		Player: Player{Pos: Point3D{Z: constants.PlayerZ}},
		Speed:  constants.InitialSpeed,
		RunID:  runID,
		Seed:   seed,
		Rand:   rand.New(rand.NewSource(seed)),
	}
}

// NextID returns a run-unique id for entities and texts
func (s *State) NextID() uint64 {
	s.nextID++
	return s.nextID
}

// Crashing reports whether the run has entered the crash phase
func (s *State) Crashing() bool {
	return s.Phase == PhaseCrashing
}

// HasPower reports whether the power is active
func (s *State) HasPower(k PowerKind) bool {
	return s.Powers[k].Active
}

// Crash transitions FLYING to CRASHING and freezes the result
// Returns false if the run is already crashing
func (s *State) Crash() bool {
	if s.Phase == PhaseCrashing {
		return false
	}
	s.Phase = PhaseCrashing
	s.CrashScore = s.Score
	s.CrashCoins = s.Coins
	return true
}

// Result returns the score and coins reported to game over
func (s *State) Result() (score, coins int) {
	if s.Phase == PhaseCrashing {
		return s.CrashScore, s.CrashCoins
	}
	return s.Score, s.Coins
}

// ClaimGameOver is the one-shot game-over guard
// Returns true once per run, only for the current run id and only after the crash
func (s *State) ClaimGameOver(runID uint64) bool {
	if runID != s.RunID || s.Phase != PhaseCrashing || s.gameOverFired {
		return false
	}
	s.gameOverFired = true
	return true
}

// Emit queues an outbound event stamped with the current frame
func (s *State) Emit(t EventType, pos Point3D) {
	s.Events.Push(Event{Type: t, Frame: s.Frame, Pos: pos})
}

// EmitPower queues a power event
func (s *State) EmitPower(t EventType, k PowerKind) {
	s.Events.Push(Event{Type: t, Frame: s.Frame, Power: k})
}
