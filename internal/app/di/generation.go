package di

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"regalis_backend/internal/feature/generation/adapters/gemini"
	"regalis_backend/internal/feature/generation/usecase"
	"regalis_backend/internal/platform/cache"
	platformhttp "regalis_backend/internal/platform/http"
	"regalis_backend/internal/shared/ratelimiter"
)

// NewCodeModel builds the Gemini model, throttled by GENERATION_RATE_LIMIT
// calls per minute and cached in Redis when rdb is set and GENERATION_CACHE_TTL > 0.
func NewCodeModel(ctx context.Context, cfg Config, rdb *redis.Client) (usecase.CodeModel, error) {
	var limiter ratelimiter.Limiter
	if cfg.GenerationRateLimit > 0 {
		limiter = ratelimiter.NewRateLimiter(cfg.GenerationRateLimit, time.Minute)
	}

	model, err := gemini.NewCodeModel(ctx, gemini.Config{
		APIKey:     cfg.GeminiAPIKey,
		Model:      cfg.GeminiModel,
		HTTPClient: platformhttp.NewHTTPClient(cfg.GeminiTimeout),
		Limiter:    limiter,
	})
	if err != nil {
		return nil, err
	}

	if rdb == nil || cfg.GenerationCacheTTL <= 0 {
		return model, nil
	}
	slog.Info("generation cache enabled", "ttl", cfg.GenerationCacheTTL)
	return cache.NewCachingCodeModel(rdb, cfg.GenerationCacheTTL, model, cfg.KVNamespace+":generation"), nil
}

// unavailableModel stands in for Gemini when no client could be created, so
// the rest of the service still starts and /generate answers 502.
type unavailableModel struct {
	err error
}

func (m unavailableModel) Generate(context.Context, string, string) (string, error) {
	return "", fmt.Errorf("code model unavailable: %w", m.err)
}
