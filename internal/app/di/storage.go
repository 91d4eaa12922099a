package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"regalis_backend/internal/feature/identity/usecase"
	"regalis_backend/internal/platform/db"
	"regalis_backend/internal/platform/kv"
	platformredis "regalis_backend/internal/platform/redis"
)

// KVBackend is a key/value store that can report its health.
type KVBackend interface {
	usecase.KVStore
	Ping(ctx context.Context) error
}

// NewKVBackend opens the backend named by cfg.KVBackend.
// When rdb is non-nil it is reused for the redis backend.
// The returned close function releases the SQL connection pool, if any.
func NewKVBackend(ctx context.Context, cfg Config, rdb *redis.Client) (KVBackend, func() error, error) {
	switch cfg.KVBackend {
	case BackendRedis:
		if rdb == nil {
			var err error
			if rdb, err = platformredis.NewRedisClient(ctx, cfg.Redis); err != nil {
				return nil, nil, fmt.Errorf("redis backend: %w", err)
			}
			slog.Info("using redis key/value backend", "address", cfg.Redis.Addr(), "namespace", cfg.KVNamespace)
			return kv.NewRedisStore(rdb, cfg.KVNamespace), rdb.Close, nil
		}
		slog.Info("using redis key/value backend", "address", cfg.Redis.Addr(), "namespace", cfg.KVNamespace)
		return kv.NewRedisStore(rdb, cfg.KVNamespace), func() error { return nil }, nil

	case BackendSQLite, BackendPostgres:
		dbCfg := cfg.DB
		dbCfg.Driver = cfg.KVBackend
		gdb, err := db.OpenDB(dbCfg, cfg.DBTimeout)
		if err != nil {
			return nil, nil, fmt.Errorf("%s backend: %w", cfg.KVBackend, err)
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, nil, err
		}
		if cfg.KVBackend == BackendSQLite {
			// SQLite allows one writer; a single connection avoids SQLITE_BUSY.
			sqlDB.SetMaxOpenConns(1)
		}
		store, err := kv.NewGormStore(gdb, cfg.KVNamespace)
		if err != nil {
			_ = sqlDB.Close()
			return nil, nil, err
		}
		slog.Info("using SQL key/value backend", "driver", cfg.KVBackend, "namespace", cfg.KVNamespace)
		return store, sqlDB.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown KV_BACKEND %q (want redis, sqlite or postgres)", cfg.KVBackend)
	}
}
