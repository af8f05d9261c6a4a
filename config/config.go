package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/rs/zerolog"

	"github.com/MatthewRicci12/gofish/game"
)

// Config is read from GOFISH_* environment variables
type Config struct {
	Players      int           `env:"GOFISH_PLAYERS,default=2"`
	Variant      string        `env:"GOFISH_VARIANT,default=standard"`
	Seed         int64         `env:"GOFISH_SEED,default=0"`
	SnapshotDir  string        `env:"GOFISH_SNAPSHOT_DIR,default=."`
	SnapshotName string        `env:"GOFISH_SNAPSHOT_NAME,default=save.bin"`
	SnapshotTTL  time.Duration `env:"GOFISH_SNAPSHOT_TTL,default=0s"`
	RedisAddr    string        `env:"GOFISH_REDIS_ADDR"`
	LogLevel     string        `env:"GOFISH_LOG_LEVEL,default=info"`
	Resume       bool          `env:"GOFISH_RESUME,default=false"`
}

// Load decodes the environment. Unset variables take their defaults.
func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Players < 2 || c.Players > 4 {
		return fmt.Errorf("GOFISH_PLAYERS must be between 2 and 4, got %d", c.Players)
	}
	if _, err := game.ParseVariant(c.Variant); err != nil {
		return fmt.Errorf("GOFISH_VARIANT: %w", err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("GOFISH_LOG_LEVEL: %w", err)
	}
	if c.SnapshotTTL < 0 {
		return fmt.Errorf("GOFISH_SNAPSHOT_TTL must not be negative, got %s", c.SnapshotTTL)
	}
	if c.SnapshotName == "" {
		return errors.New("GOFISH_SNAPSHOT_NAME must not be empty")
	}
	return nil
}

// GameVariant is the parsed GOFISH_VARIANT
func (c Config) GameVariant() game.Variant {
	v, _ := game.ParseVariant(c.Variant)
	return v
}

// Level is the parsed GOFISH_LOG_LEVEL
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// UseRedis reports whether snapshots go to Redis instead of files
func (c Config) UseRedis() bool {
	return c.RedisAddr != ""
}
