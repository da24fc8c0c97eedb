package audio

import (
	"testing"
	"time"

	"github.com/lixenwraith/sky-pilot/constants"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	for st := SoundType(0); st < soundTypeCount; st++ {
		sm.Play(st)
	}
	sm.Play(SoundType(99))
	sm.Cleanup()

	if sm.IsInitialized() {
		t.Error("Expected manager to stay uninitialized")
	}
}

// TestSoundManagerDisabled verifies a disabled config never opens the speaker
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Initialize with disabled audio returned error: %v", err)
	}
	if sm.IsInitialized() {
		t.Error("Disabled audio should not initialize")
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	// Speaker initialization may fail without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should be a no-op, got error: %v", err)
	}

	sm.Play(SoundCoin)
	sm.Cleanup()
	if sm.IsInitialized() {
		t.Error("Expected cleanup to reset initialized flag")
	}
}

// TestSoundManagerAdmitGap verifies repeated plays inside the gap are dropped per sound
func TestSoundManagerAdmitGap(t *testing.T) {
	sm := NewSoundManager(nil)
	base := time.Unix(1000, 0)

	tests := []struct {
		name   string
		st     SoundType
		offset time.Duration
		want   bool
	}{
		{"first shot", SoundShot, 0, true},
		{"shot inside gap", SoundShot, constants.MinSoundGap - time.Millisecond, false},
		{"coin independent of shot", SoundCoin, time.Millisecond, true},
		{"shot at gap", SoundShot, constants.MinSoundGap, true},
		{"invalid type", SoundType(-1), time.Second, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sm.admit(tt.st, base.Add(tt.offset)); got != tt.want {
				t.Errorf("admit(%v) = %v, want %v", tt.st, got, tt.want)
			}
		})
	}
}
