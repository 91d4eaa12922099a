// Package di wires the application's dependencies from configuration.
package di

import (
	"time"

	"regalis_backend/internal/platform/db"
	platformredis "regalis_backend/internal/platform/redis"
	"regalis_backend/internal/shared/env"
)

// Key/value backends selectable with KV_BACKEND.
const (
	BackendRedis    = "redis"
	BackendSQLite   = db.DriverSQLite
	BackendPostgres = db.DriverPostgres
)

// Config is the whole application configuration, read from the environment.
type Config struct {
	HTTPAddr string
	LogLevel string

	KVBackend   string
	KVNamespace string
	DB          db.Config
	DBTimeout   time.Duration
	Redis       platformredis.Config

	JWTSecret     string
	JWTExpiration time.Duration

	ProofScheme string
	BcryptCost  int

	AdminEmail     string
	ResendAPIKey   string
	AuditEmailFrom string

	GeminiAPIKey        string
	GeminiModel         string
	GeminiTimeout       time.Duration
	GenerationRateLimit int
	GenerationCacheTTL  time.Duration

	CORSAllowedOrigins []string
}

// LoadConfig reads Config from the environment, applying defaults.
func LoadConfig() Config {
	return Config{
		HTTPAddr: env.String("HTTP_ADDR", ":8080"),
		LogLevel: env.String("LOG_LEVEL", "info"),

		KVBackend:   env.String("KV_BACKEND", BackendSQLite),
		KVNamespace: env.String("KV_NAMESPACE", "regalis"),
		DB:          db.LoadConfigFromEnv(),
		DBTimeout:   env.Duration("DB_CONNECT_TIMEOUT", 60*time.Second),
		Redis:       platformredis.LoadConfig(),

		JWTSecret:     env.String("JWT_SECRET", ""),
		JWTExpiration: env.Duration("JWT_EXPIRATION", 24*time.Hour),

		ProofScheme: env.String("PROOF_SCHEME", "bcrypt"),
		BcryptCost:  env.Int("BCRYPT_COST", 10),

		AdminEmail:     env.String("ADMIN_EMAIL", "admin@regalis.ai"),
		ResendAPIKey:   env.String("RESEND_API_KEY", ""),
		AuditEmailFrom: env.String("AUDIT_EMAIL_FROM", "Regalis AI <onboarding@resend.dev>"),

		GeminiAPIKey:        env.String("GEMINI_API_KEY", ""),
		GeminiModel:         env.String("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiTimeout:       env.Duration("GEMINI_TIMEOUT", 60*time.Second),
		GenerationRateLimit: env.Int("GENERATION_RATE_LIMIT", 10),
		GenerationCacheTTL:  env.Duration("GENERATION_CACHE_TTL", 0),

		CORSAllowedOrigins: env.List("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
	}
}
