// Package db opens the GORM connection used by the SQL key/value backend.
package db

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"regalis_backend/internal/shared/env"
)

// Supported drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const retryInterval = 3 * time.Second

// Config holds the connection settings.
type Config struct {
	Driver     string
	User       string
	Password   string
	Name       string
	Host       string
	Port       string
	SSLMode    string
	SQLitePath string
}

// LoadConfigFromEnv reads the DB_* variables. Driver comes from KV_BACKEND.
func LoadConfigFromEnv() Config {
	return Config{
		Driver:     env.String("KV_BACKEND", DriverSQLite),
		User:       env.String("DB_USER", "postgres"),
		Password:   env.String("DB_PASSWORD", ""),
		Name:       env.String("DB_NAME", "regalis"),
		Host:       env.String("DB_HOST", "localhost"),
		Port:       env.String("DB_PORT", "5432"),
		SSLMode:    env.String("DB_SSLMODE", "disable"),
		SQLitePath: env.String("SQLITE_PATH", "regalis.db"),
	}
}

// BuildDSN returns the data source name for cfg.Driver.
func BuildDSN(cfg Config) string {
	if cfg.Driver == DriverSQLite {
		return cfg.SQLitePath
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode)
}

// Dialector returns the GORM dialector for cfg.
// Postgres DSNs are parsed up front so a malformed config fails without retrying.
func Dialector(cfg Config) (gorm.Dialector, error) {
	dsn := BuildDSN(cfg)
	switch cfg.Driver {
	case DriverSQLite:
		if dsn == "" {
			return nil, errors.New("sqlite path is empty")
		}
		return sqlite.Open(dsn), nil
	case DriverPostgres:
		if _, err := pgx.ParseConfig(dsn); err != nil {
			return nil, fmt.Errorf("invalid postgres configuration: %w", err)
		}
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// OpenDB connects with the configured driver, retrying for up to timeout.
func OpenDB(cfg Config, timeout time.Duration) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	gcfg := &gorm.Config{Logger: newGormLogger(log.New(os.Stderr, "\r\n", log.LstdFlags))}
	return ConnectWithRetry(BuildDSN(cfg), timeout, func(string) (*gorm.DB, error) {
		return gorm.Open(dialector, gcfg)
	})
}

// newGormLogger logs slow queries and errors. Missing rows are an expected
// outcome of key lookups and are not logged.
func newGormLogger(w logger.Writer) logger.Interface {
	return logger.New(w, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

// ConnectWithRetry calls opener until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, opener func(string) (*gorm.DB, error)) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(retryInterval).After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %v: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err, "retry_in", retryInterval)
		time.Sleep(retryInterval)
	}
}
