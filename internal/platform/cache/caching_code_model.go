// Package cache provides caching decorators backed by Redis.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"regalis_backend/internal/feature/generation/usecase"
)

// CachingCodeModel decorates a CodeModel with Redis caching.
// Identical (system instruction, prompt) pairs are answered from Redis
// until the TTL expires. Cache failures never fail a generation.
type CachingCodeModel struct {
	inner     usecase.CodeModel
	rdb       redis.Cmdable
	ttl       time.Duration
	namespace string
}

var _ usecase.CodeModel = (*CachingCodeModel)(nil)

// NewCachingCodeModel decorates inner with Redis caching.
// If ttl is 0, it defaults to 1 hour. If namespace is empty, it uses "generation".
// A nil rdb disables caching.
func NewCachingCodeModel(rdb redis.Cmdable, ttl time.Duration, inner usecase.CodeModel, namespace string) *CachingCodeModel {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if namespace == "" {
		namespace = "generation"
	}
	return &CachingCodeModel{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Generate returns the cached output, or calls the inner model and caches its output.
func (c *CachingCodeModel) Generate(ctx context.Context, systemInstruction, prompt string) (string, error) {
	if c.rdb == nil {
		return c.inner.Generate(ctx, systemInstruction, prompt)
	}

	key := c.cacheKey(systemInstruction, prompt)

	// 1) Check cache
	cached, err := c.rdb.Get(ctx, key).Result()
	switch {
	case err == nil && cached != "":
		return cached, nil
	case err != nil && err != redis.Nil:
		slog.Warn("generation cache read failed", "error", err, "key", key)
	}

	// 2) Fallback to the model
	out, err := c.inner.Generate(ctx, systemInstruction, prompt)
	if err != nil {
		return "", err
	}

	// 3) Store in cache (best effort)
	if err := c.rdb.Set(ctx, key, out, c.ttl).Err(); err != nil {
		slog.Warn("generation cache write failed", "error", err, "key", key)
	}
	return out, nil
}

// cacheKey hashes the request so arbitrary prompt text never ends up in a key.
func (c *CachingCodeModel) cacheKey(systemInstruction, prompt string) string {
	sum := sha256.Sum256([]byte(systemInstruction + "\x00" + prompt))
	return fmt.Sprintf("%s:%s", safe(c.namespace), hex.EncodeToString(sum[:]))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
