package systems

import (
	"testing"

	"github.com/lixenwraith/sky-pilot/constants"
	"github.com/lixenwraith/sky-pilot/engine"
)

func TestMagnetRange(t *testing.T) {
	tests := []struct {
		name       string
		dx         float64
		wantPulled bool
	}{
		{"inside range", constants.MagnetRange - 1, true},
		{"outside range", constants.MagnetRange + 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState()
			s.Powers[engine.PowerMagnet].Grant(constants.MagnetDuration)
			coin := addEntity(s, engine.TypeCoin, tt.dx, 0, 1000, constants.CoinGateSize, constants.CoinGateSize, 1)

			NewWorldSystem().Update(s)

			pulled := coin.Pos.X < tt.dx
			if pulled != tt.wantPulled {
				t.Errorf("pulled = %v, want %v (x=%v)", pulled, tt.wantPulled, coin.Pos.X)
			}
			if pulled && coin.Pos.Z != 1000-constants.MagnetDepthPull {
				t.Errorf("Z = %v, want depth pull", coin.Pos.Z)
			}
		})
	}
}

func TestMagnetIgnoresFarDepth(t *testing.T) {
	s := newTestState()
	s.Powers[engine.PowerMagnet].Grant(constants.MagnetDuration)
	coin := addEntity(s, engine.TypeCoin, 100, 0, constants.MagnetMaxZ, constants.CoinGateSize, constants.CoinGateSize, 1)

	NewWorldSystem().Update(s)

	if coin.Pos.X != 100 {
		t.Errorf("Coin at MagnetMaxZ should not be pulled")
	}
}

// TestLootCoinPulledFromAnyDistance verifies auto-collect coins ignore magnet state and range
func TestLootCoinPulledFromAnyDistance(t *testing.T) {
	s := newTestState()
	coin := addEntity(s, engine.TypeCoin, 3000, 0, 1000, constants.LootCoinSize, constants.LootCoinSize, 1)
	coin.AutoCollect = true

	NewWorldSystem().Update(s)

	want := 3000 - 3000*constants.LootPullStrength
	if coin.Pos.X != want {
		t.Errorf("X = %v, want %v", coin.Pos.X, want)
	}
}

func TestCoinCollected(t *testing.T) {
	s := newTestState()
	addEntity(s, engine.TypeCoin, 0, 0, constants.NearZ, constants.CoinGateSize, constants.CoinGateSize, 1)

	NewWorldSystem().Update(s)

	if s.Coins != 1 {
		t.Errorf("Coins = %d, want 1", s.Coins)
	}
	if len(s.Entities) != 0 {
		t.Error("Collected coin not purged")
	}
	if got := eventTypes(s); len(got) != 1 || got[0] != engine.EventCoinCollected {
		t.Errorf("Events = %v", got)
	}
	if !hasText(s, "+1") {
		t.Error("Missing +1 text")
	}
}

func TestCollisionBand(t *testing.T) {
	tests := []struct {
		name string
		z    float64
		want bool
	}{
		{"behind edge", constants.NearZ - constants.CollisionBandBehind, false},
		{"just inside behind", constants.NearZ - constants.CollisionBandBehind + 1, true},
		{"just inside ahead", constants.NearZ + constants.CollisionBandAhead - 1, true},
		{"ahead edge", constants.NearZ + constants.CollisionBandAhead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState()
			addEntity(s, engine.TypeCube, 0, 0, tt.z, constants.CubeSize, constants.CubeSize, 1)

			NewWorldSystem().Update(s)

			if s.Crashing() != tt.want {
				t.Errorf("crashed = %v, want %v", s.Crashing(), tt.want)
			}
		})
	}
}

func TestHitboxScaling(t *testing.T) {
	obstacleHalf := (constants.CubeSize/2 + constants.HitboxPadding) * constants.ObstacleHitboxScale
	gateHalf := (constants.CoinGateSize/2 + constants.HitboxPadding) * constants.CollectHitboxScale

	tests := []struct {
		name string
		typ  engine.EntityType
		size float64
		dx   float64
		want bool
	}{
		{"obstacle inside", engine.TypeCube, constants.CubeSize, obstacleHalf - 1, true},
		{"obstacle outside", engine.TypeCube, constants.CubeSize, obstacleHalf, false},
		{"coin inside", engine.TypeCoin, constants.CoinGateSize, gateHalf - 1, true},
		{"coin outside", engine.TypeCoin, constants.CoinGateSize, gateHalf, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &engine.Entity{Type: tt.typ, Width: tt.size, Height: tt.size, Pos: engine.Point3D{X: tt.dx}}
			if got := touches(engine.Point3D{}, e); got != tt.want {
				t.Errorf("touches = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPickupRefreshDoesNotStack(t *testing.T) {
	s := newTestState()
	s.Powers[engine.PowerShield].Grant(constants.ShieldDuration)
	s.Powers[engine.PowerShield].Remaining = 10
	addEntity(s, engine.TypeShield, 0, 0, constants.NearZ, constants.PickupSize, constants.PickupSize, 1)

	NewWorldSystem().Update(s)

	if got := s.Powers[engine.PowerShield].Remaining; got != constants.ShieldDuration {
		t.Errorf("Remaining = %d, want %d", got, constants.ShieldDuration)
	}
	if !hasText(s, "SHIELD ACTIVE") {
		t.Error("Missing grant notification")
	}
	evs := s.Events.Peek()
	if len(evs) != 1 || evs[0].Type != engine.EventPowerup || evs[0].Power != engine.PowerShield {
		t.Errorf("Events = %+v", evs)
	}
}

// TestShieldThenCrashSameFrame verifies one obstacle consumes the shield and the next crashes
func TestShieldThenCrashSameFrame(t *testing.T) {
	s := newTestState()
	s.CraftColor = "#123456"
	s.Score, s.Coins = 800, 4
	s.Powers[engine.PowerShield].Grant(constants.ShieldDuration)
	first := addEntity(s, engine.TypeCube, 0, 0, constants.NearZ, constants.CubeSize, constants.CubeSize, 1)
	second := addEntity(s, engine.TypeRing, 0, 0, constants.NearZ, constants.RingSize, constants.RingSize, 1)

	NewWorldSystem().Update(s)

	if first.Active {
		t.Error("Blocked obstacle should be removed")
	}
	if !second.Active {
		t.Error("Crashing obstacle stays in the world")
	}
	if s.HasPower(engine.PowerShield) {
		t.Error("Shield should be consumed")
	}
	if !s.Crashing() {
		t.Fatal("Second obstacle should crash")
	}

	got := eventTypes(s)
	want := []engine.EventType{engine.EventShieldBlocked, engine.EventCrash}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Events = %v, want %v", got, want)
	}
	if !hasText(s, "BLOCKED") || !hasText(s, "SHIELD BROKEN") {
		t.Error("Missing shield texts")
	}
	if s.Shake != constants.ShakeCrash {
		t.Errorf("Shake = %v, want %v", s.Shake, constants.ShakeCrash)
	}

	crashParticles := 0
	for _, p := range s.Particles {
		if p.Color == "#123456" {
			crashParticles++
		}
	}
	if crashParticles != constants.CrashCount {
		t.Errorf("Crash particles = %d, want %d", crashParticles, constants.CrashCount)
	}
	if score, coins := s.Result(); score != 800 || coins != 4 {
		t.Errorf("Result = (%d, %d), want (800, 4)", score, coins)
	}
}

func TestNoCollisionWhileCrashing(t *testing.T) {
	s := newTestState()
	s.Crash()
	addEntity(s, engine.TypeCoin, 0, 0, constants.NearZ, constants.CoinGateSize, constants.CoinGateSize, 1)
	addEntity(s, engine.TypeCube, 0, 0, constants.NearZ, constants.CubeSize, constants.CubeSize, 1)

	NewWorldSystem().Update(s)

	if s.Coins != 0 || s.Events.Len() != 0 {
		t.Errorf("Collisions resolved while crashing: coins=%d events=%d", s.Coins, s.Events.Len())
	}
}

// TestInactiveEntitiesPurged verifies culled and already inactive entities leave the list
func TestInactiveEntitiesPurged(t *testing.T) {
	s := newTestState()
	s.Speed = 20
	culled := addEntity(s, engine.TypeCube, 2000, 0, constants.CullZ+10, constants.CubeSize, constants.CubeSize, 1)
	dead := addEntity(s, engine.TypeCube, 0, 0, 1500, constants.CubeSize, constants.CubeSize, 1)
	dead.Active = false
	kept := addEntity(s, engine.TypeCube, 0, 0, 1500, constants.CubeSize, constants.CubeSize, 1)
	kept.HasRotation = true

	NewWorldSystem().Update(s)

	if culled.Active {
		t.Error("Entity past CullZ should be deactivated")
	}
	if len(s.Entities) != 1 || s.Entities[0] != kept {
		t.Fatalf("Entities = %d, want only the live one", len(s.Entities))
	}
	if kept.Pos.Z != 1480 || kept.Rotation != constants.RotationStep {
		t.Errorf("Kept entity z=%v rot=%v", kept.Pos.Z, kept.Rotation)
	}
}
