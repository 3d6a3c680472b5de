package config

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Postgres PostgresConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Geocoder GeocoderConfig
	Warmer   WarmerConfig
}

// PostgresConfig mirrors the libpq PG* variables. DATABASE_URL, when set,
// takes precedence over the individual fields.
type PostgresConfig struct {
	URL      string `env:"DATABASE_URL"`
	Host     string `env:"PGHOST,     default=localhost"`
	Port     int    `env:"PGPORT,     default=5432"`
	User     string `env:"PGUSER,     default=postgres"`
	Password string `env:"PGPASSWORD"`
	Database string `env:"PGDATABASE, default=swiftcargo"`
	SSLMode  string `env:"PGSSLMODE,  default=disable"`
	MaxConns int32  `env:"PG_MAX_CONNS, default=10"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=swiftcargo"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,      default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,        default=0"`
	PoolSize int    `env:"REDIS_POOL_SIZE, default=10"`
	// IdempotencyTTL is how long a status-update idempotency key is remembered.
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL, default=24h"`
}

type GeocoderConfig struct {
	URL             string        `env:"GEOCODER_URL,               default=https://nominatim.openstreetmap.org/search"`
	UserAgent       string        `env:"GEOCODER_USER_AGENT,        default=SwiftCargo-Tracker/1.0"`
	Email           string        `env:"GEOCODER_EMAIL"`
	Timeout         time.Duration `env:"GEOCODER_TIMEOUT,           default=5s"`
	MinInterval     time.Duration `env:"GEOCODER_MIN_INTERVAL,      default=100ms"`
	ResultLimit     int           `env:"GEOCODER_RESULT_LIMIT,      default=5"`
	CacheMaxEntries int           `env:"GEOCODER_CACHE_MAX_ENTRIES, default=0"`
	CacheMatch      string        `env:"GEOCODER_CACHE_MATCH,       default=substring"`
}

type WarmerConfig struct {
	Workers   int `env:"WARMER_WORKERS,    default=2"`
	QueueSize int `env:"WARMER_QUEUE_SIZE, default=64"`
}

// DSN returns the Postgres connection string.
func (c PostgresConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.Database,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	if c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	} else {
		u.User = url.User(c.User)
	}
	return u.String()
}

// IsDevelopment reports whether the service runs in a local environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "local"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	return &cfg, nil
}
