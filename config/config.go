// Package config resolves runtime settings from defaults, an optional TOML file and the environment
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/sky-pilot/input"
)

// Environment variables read by Load
const (
	EnvConfig  = "SKY_PILOT_CONFIG"
	EnvDebug   = "SKY_PILOT_DEBUG"
	EnvFPS     = "SKY_PILOT_FPS"
	EnvSeed    = "SKY_PILOT_SEED"
	EnvProfile = "SKY_PILOT_PROFILE"
	EnvReplay  = "SKY_PILOT_REPLAY"
)

const (
	DefaultFPS     = 60
	MinFPS         = 10
	MaxFPS         = 240
	defaultDirName = ".sky-pilot"
)

// Config is the resolved runtime configuration
type Config struct {
	Debug bool `toml:"debug"`
	FPS   int  `toml:"fps"`
	// Seed of the first run; 0 seeds every run from the clock
	Seed        int64  `toml:"seed"`
	ProfilePath string `toml:"profile"`
	// ReplayPath receives the recording of every finished run; empty disables recording
	ReplayPath string `toml:"replay"`

	Keys input.Keymap `toml:"keys"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		FPS:         DefaultFPS,
		ProfilePath: defaultProfilePath(),
	}
}

func defaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(defaultDirName, "profile.toml")
	}
	return filepath.Join(home, defaultDirName, "profile.toml")
}

// Load applies the config file named by SKY_PILOT_CONFIG and then env overrides onto the defaults
// A missing or invalid file is an error; invalid env values are logged and ignored
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv(EnvConfig); path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return cfg, err
		}
	}

	cfg.applyEnv()
	cfg.clamp()
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("config: unknown key %q in %s", key.String(), path)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDebug); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		} else {
			log.Printf("config: %s=%q: %v", EnvDebug, v, err)
		}
	}

	if v := os.Getenv(EnvFPS); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.FPS = n
		} else {
			log.Printf("config: %s=%q: %v", EnvFPS, v, err)
		}
	}

	if v := os.Getenv(EnvSeed); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = n
		} else {
			log.Printf("config: %s=%q: %v", EnvSeed, v, err)
		}
	}

	if v := os.Getenv(EnvProfile); v != "" {
		c.ProfilePath = v
	}
	if v := os.Getenv(EnvReplay); v != "" {
		c.ReplayPath = v
	}
}

func (c *Config) clamp() {
	switch {
	case c.FPS <= 0:
		c.FPS = DefaultFPS
	case c.FPS < MinFPS:
		c.FPS = MinFPS
	case c.FPS > MaxFPS:
		c.FPS = MaxFPS
	}
}

// KeyTable builds the input table with the configured overrides applied
func (c Config) KeyTable() (*input.KeyTable, error) {
	kt := input.DefaultKeyTable()
	if err := input.ApplyKeymap(kt, c.Keys); err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}
	return kt, nil
}
