package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "gofish:snapshot:"

// RedisStore keeps snapshots as plain string keys
type RedisStore struct {
	rdb    redis.Cmdable
	prefix string
	ttl    time.Duration
}

type RedisOption func(*RedisStore)

// WithKeyPrefix replaces the "gofish:snapshot:" key prefix
func WithKeyPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// WithTTL expires snapshots that haven't been saved for ttl. Zero keeps
// them forever.
func WithTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStore) {
		s.ttl = ttl
	}
}

func NewRedisStore(rdb redis.Cmdable, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		rdb:    rdb,
		prefix: defaultKeyPrefix,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *RedisStore) key(name string) string {
	return s.prefix + name
}

func (s *RedisStore) Save(ctx context.Context, name string, data []byte) error {
	if err := s.rdb.Set(ctx, s.key(name), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save snapshot %q: %w", name, err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, name string) ([]byte, error) {
	data, err := s.rdb.Get(ctx, s.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errNotFound(name)
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot %q: %w", name, err)
	}
	return data, nil
}
