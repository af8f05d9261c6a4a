package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/MatthewRicci12/gofish/game"
	utils "github.com/MatthewRicci12/gofish/internal"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		utils.AssertNoError(t, err)

		utils.AssertDeepEqual(t, cfg, Config{
			Players:      2,
			Variant:      "standard",
			SnapshotDir:  ".",
			SnapshotName: "save.bin",
			LogLevel:     "info",
		})
		utils.AssertEqual(t, cfg.GameVariant(), game.Standard)
		utils.AssertEqual(t, cfg.Level(), zerolog.InfoLevel)
		utils.AssertEqual(t, cfg.UseRedis(), false)
	})

	t.Run("from the environment", func(t *testing.T) {
		t.Setenv("GOFISH_PLAYERS", "4")
		t.Setenv("GOFISH_VARIANT", "Popcorn")
		t.Setenv("GOFISH_SEED", "12")
		t.Setenv("GOFISH_REDIS_ADDR", "localhost:6379")
		t.Setenv("GOFISH_LOG_LEVEL", "debug")
		t.Setenv("GOFISH_SNAPSHOT_TTL", "24h")
		t.Setenv("GOFISH_RESUME", "true")

		cfg, err := Load()
		utils.AssertNoError(t, err)

		utils.AssertEqual(t, cfg.Players, 4)
		utils.AssertEqual(t, cfg.Seed, int64(12))
		utils.AssertEqual(t, cfg.GameVariant(), game.Popcorn)
		utils.AssertEqual(t, cfg.Level(), zerolog.DebugLevel)
		utils.AssertTrue(t, cfg.UseRedis())
		utils.AssertTrue(t, cfg.Resume)
		utils.AssertEqual(t, cfg.SnapshotTTL, 24*time.Hour)
	})

	type test struct {
		name, key, value string
	}

	tt := []test{
		{"too many players", "GOFISH_PLAYERS", "5"},
		{"too few players", "GOFISH_PLAYERS", "1"},
		{"unknown variant", "GOFISH_VARIANT", "old maid"},
		{"unknown log level", "GOFISH_LOG_LEVEL", "loud"},
		{"negative ttl", "GOFISH_SNAPSHOT_TTL", "-1m"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
