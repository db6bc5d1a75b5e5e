package repositories

import (
	"context"
)

// Repository is a keyed blob store for save data. Implementations
// must treat the blob as opaque bytes.
type Repository interface {
	Close(ctx context.Context) error
	Save(ctx context.Context, key string, data []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
}
