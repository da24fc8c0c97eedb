package systems

import (
	"testing"

	"github.com/lixenwraith/sky-pilot/constants"
	"github.com/lixenwraith/sky-pilot/engine"
)

// TestScoreAtInitialSpeed verifies 100 frames from the initial speed accrue 300 points
func TestScoreAtInitialSpeed(t *testing.T) {
	s := engine.NewState(1)
	sys := NewProgressSystem()

	for i := 0; i < 100; i++ {
		sys.Update(s)
	}

	if s.Score != 300 {
		t.Errorf("Score = %d, want 300", s.Score)
	}
	if s.Frame != 100 {
		t.Errorf("Frame = %d, want 100", s.Frame)
	}
}

func TestSpeedRampCapped(t *testing.T) {
	s := engine.NewState(1)
	s.Speed = constants.MaxSpeed - constants.SpeedIncrement/2
	sys := NewProgressSystem()

	sys.Update(s)
	sys.Update(s)

	if s.Speed != constants.MaxSpeed {
		t.Errorf("Speed = %v, want %v", s.Speed, constants.MaxSpeed)
	}
}

func TestCrashingDecaysSpeedOnly(t *testing.T) {
	s := engine.NewState(1)
	s.Speed = 40
	s.Frame = 12
	s.Score = 500
	s.Crash()

	NewProgressSystem().Update(s)

	if s.Frame != 12 || s.Score != 500 {
		t.Errorf("Frame/Score advanced while crashing: %d/%d", s.Frame, s.Score)
	}
	if s.Speed != 40*constants.CrashSlowdown {
		t.Errorf("Speed = %v, want %v", s.Speed, 40*constants.CrashSlowdown)
	}
}

func TestScoreRate(t *testing.T) {
	tests := []struct {
		speed float64
		want  int
	}{
		{15, 3},
		{19.99, 3},
		{20, 4},
		{50, 10},
		{0, 0},
	}
	for _, tt := range tests {
		if got := ScoreRate(tt.speed); got != tt.want {
			t.Errorf("ScoreRate(%v) = %d, want %d", tt.speed, got, tt.want)
		}
	}
}
