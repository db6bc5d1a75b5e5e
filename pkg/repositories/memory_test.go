package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository_SaveLoad(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	require.NoError(t, repo.Save(ctx, "default", []byte("blob-1")))

	data, err := repo.Load(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, []byte("blob-1"), data)

	require.NoError(t, repo.Save(ctx, "default", []byte("blob-2")))
	data, err = repo.Load(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, []byte("blob-2"), data)
}

func TestInMemoryRepository_LoadMissingKey(t *testing.T) {
	repo := NewInMemoryRepository()

	_, err := repo.Load(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestInMemoryRepository_CopiesBlobs(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	original := []byte("blob")
	require.NoError(t, repo.Save(ctx, "default", original))
	original[0] = 'X'

	data, err := repo.Load(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, []byte("blob"), data)

	data[0] = 'Y'
	again, err := repo.Load(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, []byte("blob"), again)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&ErrNotFound{}))
	assert.False(t, IsNotFound(context.Canceled))
	assert.False(t, IsNotFound(nil))
}
