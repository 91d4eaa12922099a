// Package kv provides the key/value backends the identity store persists into.
package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"regalis_backend/internal/feature/identity/usecase"
)

// RedisStore implements usecase.KVStore on Redis strings.
// Keys are namespaced so several deployments can share one Redis.
type RedisStore struct {
	client    redis.Cmdable
	namespace string
}

var _ usecase.KVStore = (*RedisStore)(nil)

// NewRedisStore creates a RedisStore. If namespace is empty, it uses "regalis".
func NewRedisStore(client redis.Cmdable, namespace string) *RedisStore {
	if namespace == "" {
		namespace = "regalis"
	}
	return &RedisStore{client: client, namespace: namespace}
}

func (s *RedisStore) key(k string) string {
	return fmt.Sprintf("%s:%s", s.namespace, k)
}

// Get returns the stored value, or found=false when the key is absent.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

// Set stores value without expiry.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.key(key), value, 0).Err()
}

// Delete removes key. Deleting a missing key is not an error.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.key(key)).Err()
}

// Ping checks that Redis answers.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
