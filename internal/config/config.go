// Package config loads runtime settings from WHISPERGROVE_* environment
// variables. Command-line flags in main and cmd/server override them.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"whispergrove/assets"

	"github.com/caarlos0/env/v11"
)

// ErrInvalid marks a setting outside its allowed range.
var ErrInvalid = errors.New("invalid config")

// Start levels accepted by StartLevel.
const (
	StartForest = "forest"
	StartPack   = "pack"
)

// Config holds every tunable of a play session.
type Config struct {
	AudioEnabled   bool          `env:"AUDIO_ENABLED" envDefault:"true"`
	MasterVolume   int           `env:"MASTER_VOLUME" envDefault:"50"`
	Seed           int64         `env:"SEED" envDefault:"0"` // 0 seeds from the clock
	TickInterval   time.Duration `env:"TICK_INTERVAL" envDefault:"50ms"`
	AphorismChance float64       `env:"APHORISM_CHANCE" envDefault:"0.3"`
	StartLevel     string        `env:"START_LEVEL" envDefault:"forest"`
	DataDir        string        `env:"DATA_DIR"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	SSHPort        int           `env:"SSH_PORT" envDefault:"2222"`
	SSHHostKey     string        `env:"SSH_HOST_KEY" envDefault:"server_host_key"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "WHISPERGROVE_"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	if c.MasterVolume < 0 || c.MasterVolume > 100 {
		return fmt.Errorf("%w: master volume %d not in 0-100", ErrInvalid, c.MasterVolume)
	}
	if c.AphorismChance < 0 || c.AphorismChance > 1 {
		return fmt.Errorf("%w: aphorism chance %v not in [0,1]", ErrInvalid, c.AphorismChance)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval %v must be positive", ErrInvalid, c.TickInterval)
	}
	switch c.StartLevel {
	case StartForest, StartPack:
	default:
		return fmt.Errorf("%w: start level %q", ErrInvalid, c.StartLevel)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.SSHPort <= 0 || c.SSHPort > 65535 {
		return fmt.Errorf("%w: ssh port %d", ErrInvalid, c.SSHPort)
	}
	return nil
}

// StartLevelName maps StartLevel to the level it names.
func (c Config) StartLevelName() string {
	if c.StartLevel == StartPack {
		return assets.LevelPack
	}
	return assets.LevelForest
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
}

// DataPath returns DataDir, or $XDG_DATA_HOME/whispergrove when it is unset,
// defaulting to ~/.local/share/whispergrove.
func (c Config) DataPath() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve data dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "whispergrove"), nil
}
