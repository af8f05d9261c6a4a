package store

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedStore answers repeated loads from memory. Saves go straight
// through to the wrapped store and refresh the cached copy.
type CachedStore struct {
	inner  SnapshotStore
	caches *expirable.LRU[string, []byte]
}

func NewCachedStore(inner SnapshotStore, size int, ttl time.Duration) *CachedStore {
	return &CachedStore{
		inner:  inner,
		caches: expirable.NewLRU[string, []byte](size, nil, ttl),
	}
}

func (s *CachedStore) Save(ctx context.Context, name string, data []byte) error {
	if err := s.inner.Save(ctx, name, data); err != nil {
		s.caches.Remove(name)
		return err
	}

	cached := make([]byte, len(data))
	copy(cached, data)
	s.caches.Add(name, cached)

	return nil
}

func (s *CachedStore) Load(ctx context.Context, name string) ([]byte, error) {
	if data, ok := s.caches.Get(name); ok {
		loaded := make([]byte, len(data))
		copy(loaded, data)
		return loaded, nil
	}

	data, err := s.inner.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	s.caches.Add(name, data)

	loaded := make([]byte, len(data))
	copy(loaded, data)
	return loaded, nil
}
