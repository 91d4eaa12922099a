package db

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"
	"time"

	"gorm.io/gorm"
)

// TestBuildDSN_Postgres verifies the keyword/value DSN used for postgres.
func TestBuildDSN_Postgres(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Driver:   DriverPostgres,
		User:     "testuser",
		Password: "testpass",
		Name:     "testdb",
		Host:     "localhost",
		Port:     "5432",
		SSLMode:  "disable",
	}

	dsn := BuildDSN(cfg)

	expected := "host=localhost user=testuser password=testpass dbname=testdb port=5432 sslmode=disable"
	if dsn != expected {
		t.Errorf("expected DSN %q, got %q", expected, dsn)
	}
}

// TestBuildDSN_SQLite verifies that sqlite uses the file path as is.
func TestBuildDSN_SQLite(t *testing.T) {
	t.Parallel()

	cfg := Config{Driver: DriverSQLite, SQLitePath: "/var/lib/regalis.db", Host: "ignored"}

	if dsn := BuildDSN(cfg); dsn != "/var/lib/regalis.db" {
		t.Errorf("expected sqlite path, got %q", dsn)
	}
}

func TestDialector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      Config
		wantName string
		wantErr  bool
	}{
		{name: "sqlite", cfg: Config{Driver: DriverSQLite, SQLitePath: ":memory:"}, wantName: "sqlite"},
		{name: "sqlite without path", cfg: Config{Driver: DriverSQLite}, wantErr: true},
		{name: "postgres", cfg: Config{Driver: DriverPostgres, Host: "db", Port: "5432", User: "u", Name: "n", SSLMode: "disable"}, wantName: "postgres"},
		{name: "postgres with bad port", cfg: Config{Driver: DriverPostgres, Host: "db", Port: "not-a-port", User: "u", Name: "n", SSLMode: "disable"}, wantErr: true},
		{name: "unknown driver", cfg: Config{Driver: "mysql"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, err := Dialector(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.Name() != tt.wantName {
				t.Errorf("expected dialector %q, got %q", tt.wantName, d.Name())
			}
		})
	}
}

// TestOpenDB_SQLiteMemory opens a real in-memory sqlite database.
func TestOpenDB_SQLiteMemory(t *testing.T) {
	t.Parallel()

	db, err := OpenDB(Config{Driver: DriverSQLite, SQLitePath: ":memory:"}, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = sqlDB.Close() }()

	if err := sqlDB.Ping(); err != nil {
		t.Errorf("ping failed: %v", err)
	}
}

// TestConnectWithRetry_SuccessOnFirstTry verifies the DB is returned without retrying.
func TestConnectWithRetry_SuccessOnFirstTry(t *testing.T) {
	t.Parallel()

	mockDB := &gorm.DB{}
	opener := func(dsn string) (*gorm.DB, error) {
		return mockDB, nil
	}

	db, err := ConnectWithRetry("test-dsn", 5*time.Second, opener)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if db != mockDB {
		t.Error("expected mock DB to be returned")
	}
}

// TestConnectWithRetry_RetriesOnFailure verifies failed attempts are retried until one succeeds.
func TestConnectWithRetry_RetriesOnFailure(t *testing.T) {
	// Not parallel because this test takes time due to retry sleeps

	mockDB := &gorm.DB{}
	attemptCount := 0

	opener := func(dsn string) (*gorm.DB, error) {
		attemptCount++
		if attemptCount < 3 {
			return nil, errors.New("connection refused")
		}
		return mockDB, nil
	}

	// Use a timeout that allows for 2 retries (retry interval is 3 seconds)
	db, err := ConnectWithRetry("test-dsn", 10*time.Second, opener)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if db != mockDB {
		t.Error("expected mock DB to be returned")
	}
	if attemptCount != 3 {
		t.Errorf("expected 3 attempts, got %d", attemptCount)
	}
}

// TestConnectWithRetry_TimeoutAfterRetries verifies the last error is returned once the timeout is spent.
func TestConnectWithRetry_TimeoutAfterRetries(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	attemptCount := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attemptCount++
		return nil, cause
	}

	// Very short timeout - should fail quickly
	_, err := ConnectWithRetry("test-dsn", 100*time.Millisecond, opener)

	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped %v, got %v", cause, err)
	}
	if attemptCount != 1 {
		t.Errorf("expected 1 attempt, got %d", attemptCount)
	}
}

// TestLoadConfigFromEnv verifies the DB_* variables are read.
func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("KV_BACKEND", "postgres")
	t.Setenv("DB_USER", "envuser")
	t.Setenv("DB_PASSWORD", "envpass")
	t.Setenv("DB_NAME", "envdb")
	t.Setenv("DB_HOST", "envhost")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_SSLMODE", "require")

	cfg := LoadConfigFromEnv()

	if cfg.Driver != DriverPostgres {
		t.Errorf("expected Driver 'postgres', got %q", cfg.Driver)
	}
	if cfg.User != "envuser" {
		t.Errorf("expected User 'envuser', got %q", cfg.User)
	}
	if cfg.Password != "envpass" {
		t.Errorf("expected Password 'envpass', got %q", cfg.Password)
	}
	if cfg.Name != "envdb" {
		t.Errorf("expected Name 'envdb', got %q", cfg.Name)
	}
	if cfg.Host != "envhost" {
		t.Errorf("expected Host 'envhost', got %q", cfg.Host)
	}
	if cfg.Port != "5433" {
		t.Errorf("expected Port '5433', got %q", cfg.Port)
	}
	if cfg.SSLMode != "require" {
		t.Errorf("expected SSLMode 'require', got %q", cfg.SSLMode)
	}
}

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("KV_BACKEND", "")
	t.Setenv("SQLITE_PATH", "")

	cfg := LoadConfigFromEnv()

	if cfg.Driver != DriverSQLite {
		t.Errorf("expected default driver sqlite, got %q", cfg.Driver)
	}
	if cfg.SQLitePath != "regalis.db" {
		t.Errorf("expected default sqlite path, got %q", cfg.SQLitePath)
	}
}

// TestNewGormLogger_IgnoresRecordNotFound verifies that lookups of missing rows stay quiet
// while real query errors are still logged.
func TestNewGormLogger_IgnoresRecordNotFound(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := newGormLogger(log.New(&buf, "", 0))
	query := func() (string, int64) { return "SELECT * FROM kv_entries", 0 }

	l.Trace(context.Background(), time.Now(), query, gorm.ErrRecordNotFound)
	if buf.Len() != 0 {
		t.Fatalf("record not found was logged: %q", buf.String())
	}

	l.Trace(context.Background(), time.Now(), query, errors.New("disk I/O error"))
	if buf.Len() == 0 {
		t.Fatal("expected query error to be logged")
	}
}
