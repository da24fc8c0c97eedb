package engine

import (
	"testing"

	"github.com/lixenwraith/sky-pilot/constants"
)

func TestResetIncrementsRunID(t *testing.T) {
	s := NewState(1)
	first := s.RunID

	s.Score = 500
	s.Entities = append(s.Entities, &Entity{Active: true})
	s.Powers[PowerShield].Grant(10)
	s.Crash()
	s.Reset(2)

	if s.RunID != first+1 {
		t.Errorf("RunID = %d, want %d", s.RunID, first+1)
	}
	if s.Score != 0 || len(s.Entities) != 0 || s.HasPower(PowerShield) || s.Crashing() {
		t.Errorf("Reset left run data behind: %+v", s)
	}
	if s.Speed != constants.InitialSpeed || s.Player.Pos.Z != constants.PlayerZ {
		t.Errorf("Reset did not restore initial speed/player depth")
	}
	if s.Seed != 2 {
		t.Errorf("Seed = %d, want 2", s.Seed)
	}
}

// TestResetSameSeedSameRolls verifies the seeded generator is reproducible
func TestResetSameSeedSameRolls(t *testing.T) {
	a := NewState(42)
	b := NewState(7)
	b.Reset(42)

	for i := 0; i < 10; i++ {
		if a.Rand.Float64() != b.Rand.Float64() {
			t.Fatalf("Roll %d differs for equal seeds", i)
		}
	}
}

func TestCrashFreezesResult(t *testing.T) {
	s := NewState(1)
	s.Score, s.Coins = 1200, 7

	if !s.Crash() {
		t.Fatal("First crash should transition")
	}
	if s.Crash() {
		t.Error("Second crash should not transition")
	}

	s.Score, s.Coins = 9999, 99
	score, coins := s.Result()
	if score != 1200 || coins != 7 {
		t.Errorf("Result() = (%d, %d), want (1200, 7)", score, coins)
	}
}

func TestClaimGameOver(t *testing.T) {
	s := NewState(1)
	run := s.RunID

	if s.ClaimGameOver(run) {
		t.Error("Claim before crash should fail")
	}

	s.Crash()
	if !s.ClaimGameOver(run) {
		t.Error("First claim after crash should succeed")
	}
	if s.ClaimGameOver(run) {
		t.Error("Second claim should fail")
	}

	// Stale claim from the finished run after restart
	s.Reset(2)
	s.Crash()
	if s.ClaimGameOver(run) {
		t.Error("Claim with stale run id should fail")
	}
	if !s.ClaimGameOver(s.RunID) {
		t.Error("Claim for current run should succeed")
	}
}

func TestNextIDUnique(t *testing.T) {
	s := NewState(1)
	seen := make(map[uint64]bool)
	for i := 0; i < 100; i++ {
		id := s.NextID()
		if seen[id] {
			t.Fatalf("Duplicate id %d", id)
		}
		seen[id] = true
	}
}

func TestPowerGrantRefreshesWithoutStacking(t *testing.T) {
	var p PowerState
	p.Grant(600)
	for i := 0; i < 100; i++ {
		p.Tick()
	}
	p.Grant(600)

	if p.Remaining != 600 {
		t.Errorf("Remaining = %d, want 600 (refresh, not stack)", p.Remaining)
	}
}

func TestPowerTickExpiry(t *testing.T) {
	var p PowerState
	p.Grant(3)

	expired := []bool{p.Tick(), p.Tick(), p.Tick(), p.Tick()}
	want := []bool{false, false, true, false}

	for i := range want {
		if expired[i] != want[i] {
			t.Errorf("Tick %d expired = %v, want %v", i+1, expired[i], want[i])
		}
	}
	if p.Active || p.Remaining != 0 {
		t.Errorf("Power should be inactive at zero, got %+v", p)
	}
}

func TestPowerFraction(t *testing.T) {
	var p PowerState
	if p.Fraction(600) != 0 {
		t.Error("Inactive power fraction should be 0")
	}
	p.Grant(600)
	p.Remaining = 150
	if p.Fraction(600) != 0.25 {
		t.Errorf("Fraction = %f, want 0.25", p.Fraction(600))
	}
}

func TestEntityTypePredicates(t *testing.T) {
	tests := []struct {
		typ         EntityType
		obstacle    bool
		pickup      bool
		collectible bool
	}{
		{TypeCube, true, false, false},
		{TypeRing, true, false, false},
		{TypeAsteroid, true, false, false},
		{TypeCoin, false, false, true},
		{TypeShield, false, true, true},
		{TypeMagnet, false, true, true},
		{TypeRapidFire, false, true, true},
		{TypeTripleShot, false, true, true},
		{TypeProjectile, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			if got := tt.typ.IsObstacle(); got != tt.obstacle {
				t.Errorf("IsObstacle() = %v", got)
			}
			if got := tt.typ.IsPickup(); got != tt.pickup {
				t.Errorf("IsPickup() = %v", got)
			}
			if got := tt.typ.IsCollectible(); got != tt.collectible {
				t.Errorf("IsCollectible() = %v", got)
			}
			if tt.pickup && tt.typ.Label() == "" {
				t.Error("Pickup without label")
			}
		})
	}
}
