package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"resumeforge/internal/store"
)

// RedisStateStore keeps the state blob under the storage key in Redis.
// Useful when the api and worker processes share no filesystem.
type RedisStateStore struct {
	client *redis.Client
}

func NewRedisStateStore(client *redis.Client) *RedisStateStore {
	return &RedisStateStore{client: client}
}

func (s *RedisStateStore) Load(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, store.StorageKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("read state from redis: %w", err)
	}
	return data, nil
}

func (s *RedisStateStore) Save(ctx context.Context, blob []byte) error {
	if err := s.client.Set(ctx, store.StorageKey, blob, 0).Err(); err != nil {
		return fmt.Errorf("write state to redis: %w", err)
	}
	return nil
}
