package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MatthewRicci12/gofish/game"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

type SnapshotStore = game.SnapshotStore

func errNotFound(name string) error {
	return fmt.Errorf("%w: %q", ErrSnapshotNotFound, name)
}

// InMemoryStore maps snapshot name to snapshot
type InMemoryStore struct {
	mu        sync.RWMutex
	Snapshots map[string][]byte
}

// NewInMemoryStore constructs an InMemoryStore
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		Snapshots: map[string][]byte{},
	}
}

func (s *InMemoryStore) Save(ctx context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.Snapshots[name] = stored

	return nil
}

func (s *InMemoryStore) Load(ctx context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.Snapshots[name]
	if !ok {
		return nil, errNotFound(name)
	}

	loaded := make([]byte, len(data))
	copy(loaded, data)

	return loaded, nil
}
