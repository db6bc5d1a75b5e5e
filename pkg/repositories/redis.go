package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRepository stores save blobs under a prefixed Redis key with
// an optional TTL (0 = no expiration).
type RedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

type NewRedisRepositoryOptions struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

func NewRedisRepository(ctx context.Context, opts NewRedisRepositoryOptions) (Repository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %v", err)
	}

	return &RedisRepository{
		client: client,
		ttl:    opts.TTL,
	}, nil
}

func (r *RedisRepository) Close(ctx context.Context) error {
	return r.client.Close()
}

func (r *RedisRepository) Save(ctx context.Context, key string, data []byte) error {
	if err := r.client.Set(ctx, saveKey(key), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store save: %v", err)
	}

	return nil
}

func (r *RedisRepository) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, saveKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to get save: %v", err)
	}

	return data, nil
}

func saveKey(key string) string {
	return fmt.Sprintf("save:%s", key)
}
