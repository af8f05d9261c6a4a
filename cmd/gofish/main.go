package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/MatthewRicci12/gofish"
	"github.com/MatthewRicci12/gofish/config"
	"github.com/MatthewRicci12/gofish/game"
	"github.com/MatthewRicci12/gofish/store"
)

const (
	snapshotCacheSize = 16
	snapshotCacheTTL  = 10 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Could not read configuration")
	}

	// the table is drawn on stdout, so logs go to stderr
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(cfg.Level()).
		With().Timestamp().Logger()
	log.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var snapshots game.SnapshotStore
	if cfg.UseRedis() {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("Could not reach redis")
		}
		snapshots = store.NewCachedStore(
			store.NewRedisStore(rdb, store.WithTTL(cfg.SnapshotTTL)),
			snapshotCacheSize,
			snapshotCacheTTL,
		)
	} else {
		snapshots = store.NewFileStore(cfg.SnapshotDir)
	}

	session := gofish.NewSession(gofish.Conn{In: os.Stdin, Out: os.Stdout}, game.Opts{
		Players:      cfg.Players,
		Variant:      cfg.GameVariant(),
		Seed:         cfg.Seed,
		Store:        snapshots,
		SnapshotName: cfg.SnapshotName,
		Logger:       &logger,
	})
	session.Resume = cfg.Resume

	if err := session.Run(ctx); err != nil && err != context.Canceled {
		logger.Fatal().Err(err).Msg("Could not play")
	}
}
