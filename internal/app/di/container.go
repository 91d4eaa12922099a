package di

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	generationhandler "regalis_backend/internal/feature/generation/transport/handler"
	generationusecase "regalis_backend/internal/feature/generation/usecase"
	identityhandler "regalis_backend/internal/feature/identity/transport/handler"
	identityusecase "regalis_backend/internal/feature/identity/usecase"
	templateadapters "regalis_backend/internal/feature/templates/adapters"
	templatehandler "regalis_backend/internal/feature/templates/transport/handler"
	templateusecase "regalis_backend/internal/feature/templates/usecase"
	jwtmw "regalis_backend/internal/platform/jwt"
	platformredis "regalis_backend/internal/platform/redis"
)

// App holds the wired handlers and the resources to release on shutdown.
type App struct {
	Identity   *identityhandler.IdentityHandler
	Projects   *identityhandler.ProjectHandler
	Generation *generationhandler.GenerationHandler
	Templates  *templatehandler.TemplateHandler
	Backend    KVBackend
	Store      *identityusecase.Store

	closers []func() error
}

// Close stops the store first so queued audit events and writes finish
// before the backend connections go away.
func (a *App) Close() error {
	if a == nil {
		return nil
	}
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Build wires every feature from cfg.
// Resources opened before a failure are released before Build returns.
func Build(ctx context.Context, cfg Config, logger *slog.Logger) (*App, error) {
	app := &App{}
	built := false
	defer func() {
		if !built {
			if err := app.Close(); err != nil {
				slog.Warn("failed to release resources after build error", "error", err)
			}
		}
	}()

	// Redis is shared by the redis backend and the generation cache.
	var rdb *redis.Client
	if cfg.KVBackend == BackendRedis || cfg.GenerationCacheTTL > 0 {
		client, redisErr := platformredis.NewRedisClient(ctx, cfg.Redis)
		switch {
		case redisErr == nil:
			rdb = client
			app.closers = append(app.closers, rdb.Close)
		case cfg.KVBackend == BackendRedis:
			return nil, redisErr
		default:
			slog.Warn("Redis unavailable, running without generation cache", "error", redisErr)
		}
	}

	backend, closeBackend, err := NewKVBackend(ctx, cfg, rdb)
	if err != nil {
		return nil, err
	}
	app.Backend = backend
	app.closers = append(app.closers, closeBackend)

	proofs, err := NewProofScheme(cfg)
	if err != nil {
		return nil, err
	}
	store, err := identityusecase.Open(ctx, backend, proofs,
		identityusecase.WithAuditSink(NewAuditSink(cfg, logger)),
		identityusecase.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	app.Store = store
	app.closers = append(app.closers, store.Close)

	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET is not set; tokens cannot be issued. Set a strong secret in production.")
	}
	tokens := jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTExpiration)

	model, err := NewCodeModel(ctx, cfg, rdb)
	if err != nil {
		slog.Warn("Gemini client unavailable, /generate will fail", "error", err)
		model = unavailableModel{err: err}
	}

	catalog, err := templateadapters.NewStaticCatalog()
	if err != nil {
		return nil, err
	}

	app.Identity = identityhandler.NewIdentityHandler(store, tokens)
	app.Projects = identityhandler.NewProjectHandler(store)
	app.Generation = generationhandler.NewGenerationHandler(generationusecase.NewGenerationUsecase(model))
	app.Templates = templatehandler.NewTemplateHandler(templateusecase.NewTemplateUsecase(catalog))
	built = true
	return app, nil
}
