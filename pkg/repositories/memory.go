package repositories

import (
	"context"
	"sync"
)

// InMemoryRepository keeps save blobs in a map. It backs tests and
// the ephemeral server mode; nothing survives a restart.
type InMemoryRepository struct {
	lock  sync.RWMutex
	saves map[string][]byte
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		saves: make(map[string][]byte),
	}
}

func (r *InMemoryRepository) Close(ctx context.Context) error {
	return nil
}

func (r *InMemoryRepository) Save(ctx context.Context, key string, data []byte) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	r.saves[key] = stored

	return nil
}

func (r *InMemoryRepository) Load(ctx context.Context, key string) ([]byte, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	data, ok := r.saves[key]
	if !ok {
		return nil, &ErrNotFound{}
	}

	loaded := make([]byte, len(data))
	copy(loaded, data)

	return loaded, nil
}
