package audio

import (
	"testing"
)

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}

	for st := SoundType(0); st < soundTypeCount; st++ {
		if _, ok := cfg.EffectVolumes[st]; !ok {
			t.Errorf("Expected volume for sound %s to be set", st)
		}
	}
}

// TestLoadAudioConfigEnabled verifies loading enabled flag
func TestLoadAudioConfigEnabled(t *testing.T) {
	testCases := []struct {
		value    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1", true},
		{"0", false},
		{"garbage", true},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv("SKY_PILOT_AUDIO_ENABLED", tc.value)
			cfg := LoadAudioConfig()

			if cfg.Enabled != tc.expected {
				t.Errorf("Expected Enabled=%v for value %s, got %v", tc.expected, tc.value, cfg.Enabled)
			}
		})
	}
}

// TestLoadAudioConfigMasterVolume verifies percentage conversion and clamping
func TestLoadAudioConfigMasterVolume(t *testing.T) {
	testCases := []struct {
		value    string
		expected float64
	}{
		{"0", 0.0},
		{"50", 0.5},
		{"75", 0.75},
		{"100", 1.0},
		{"-50", 0.0},
		{"150", 1.0},
		{"loud", 0.5},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv("SKY_PILOT_MASTER_VOLUME", tc.value)
			cfg := LoadAudioConfig()

			if cfg.MasterVolume != tc.expected {
				t.Errorf("Expected MasterVolume=%f for value %s, got %f", tc.expected, tc.value, cfg.MasterVolume)
			}
		})
	}
}

// TestLoadAudioConfigEffectVolumes verifies the JSON volume map
func TestLoadAudioConfigEffectVolumes(t *testing.T) {
	t.Setenv("SKY_PILOT_SFX_VOLUMES", `{"shot":0.1,"crash":0.9,"unknown":0.4}`)
	cfg := LoadAudioConfig()
	defaults := DefaultAudioConfig()

	if cfg.EffectVolumes[SoundShot] != 0.1 {
		t.Errorf("Expected shot volume 0.1, got %f", cfg.EffectVolumes[SoundShot])
	}
	if cfg.EffectVolumes[SoundCrash] != 0.9 {
		t.Errorf("Expected crash volume 0.9, got %f", cfg.EffectVolumes[SoundCrash])
	}
	if cfg.EffectVolumes[SoundCoin] != defaults.EffectVolumes[SoundCoin] {
		t.Errorf("Unset coin volume changed: %f", cfg.EffectVolumes[SoundCoin])
	}
	if len(cfg.EffectVolumes) != int(soundTypeCount) {
		t.Errorf("Unknown key leaked into volumes: %v", cfg.EffectVolumes)
	}
}

// TestLoadAudioConfigEffectVolumesInvalidJSON verifies malformed JSON keeps defaults
func TestLoadAudioConfigEffectVolumesInvalidJSON(t *testing.T) {
	t.Setenv("SKY_PILOT_SFX_VOLUMES", `{shot:`)
	cfg := LoadAudioConfig()

	if cfg.EffectVolumes[SoundShot] != DefaultAudioConfig().EffectVolumes[SoundShot] {
		t.Errorf("Expected default shot volume, got %f", cfg.EffectVolumes[SoundShot])
	}
}

// TestLoadAudioConfigSampleRate verifies loading sample rate
func TestLoadAudioConfigSampleRate(t *testing.T) {
	testCases := []struct {
		value    string
		expected int
	}{
		{"22050", 22050},
		{"48000", 48000},
		{"invalid", 44100},
		{"-1000", 44100},
		{"0", 44100},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv("SKY_PILOT_SAMPLE_RATE", tc.value)
			cfg := LoadAudioConfig()

			if cfg.SampleRate != tc.expected {
				t.Errorf("Expected SampleRate=%d for value %s, got %d", tc.expected, tc.value, cfg.SampleRate)
			}
		})
	}
}
