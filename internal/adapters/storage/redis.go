package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"gitlab.com/babycash/clients/storefront-client/internal/domain"
)

// RedisStore implements the domain.KVStore port on Redis, for headless
// deployments where the client's session and cart must survive process
// restarts or be shared with other babycash tooling. Keys are written
// without TTL; the session lifecycle (logout, failed refresh) is what
// removes them.
type RedisStore struct {
	redisClient *redis.Client
	logger      domain.Logger
}

// NewRedisStore creates a new instance of RedisStore.
func NewRedisStore(redisClient *redis.Client, logger domain.Logger) *RedisStore {
	if redisClient == nil {
		// Panicking here because this is a critical setup error.
		panic("redisClient cannot be nil in NewRedisStore")
	}
	if logger == nil {
		panic("logger cannot be nil in NewRedisStore")
	}
	return &RedisStore{
		redisClient: redisClient,
		logger:      logger,
	}
}

// Get retrieves the value stored under key, or domain.ErrKeyNotFound.
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.redisClient.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		s.logger.Debug(ctx, "State key miss", "key", key)
		return "", domain.ErrKeyNotFound
	}
	if err != nil {
		s.logger.Error(ctx, "Failed to get state key from Redis", "key", key, "error", err.Error())
		return "", fmt.Errorf("redis GET for key '%s' failed: %w", key, err)
	}
	return val, nil
}

// Set stores value under key.
func (s *RedisStore) Set(ctx context.Context, key string, value string) error {
	if err := s.redisClient.Set(ctx, key, value, 0).Err(); err != nil {
		s.logger.Error(ctx, "Failed to set state key in Redis", "key", key, "error", err.Error())
		return fmt.Errorf("redis SET for key '%s' failed: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.redisClient.Del(ctx, key).Err(); err != nil {
		s.logger.Error(ctx, "Failed to delete state key from Redis", "key", key, "error", err.Error())
		return fmt.Errorf("redis DEL for key '%s' failed: %w", key, err)
	}
	return nil
}
