package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.Port != "8080" || cfg.Env != "development" {
		t.Fatalf("unexpected defaults: port=%s env=%s", cfg.Port, cfg.Env)
	}
	if cfg.Geocoder.Timeout != 5*time.Second || cfg.Geocoder.MinInterval != 100*time.Millisecond {
		t.Fatalf("unexpected geocoder timings: %+v", cfg.Geocoder)
	}
	if cfg.Geocoder.UserAgent != "SwiftCargo-Tracker/1.0" || cfg.Geocoder.ResultLimit != 5 {
		t.Fatalf("unexpected geocoder defaults: %+v", cfg.Geocoder)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development environment")
	}
	if cfg.Redis.PoolSize != 10 || cfg.Redis.Password != "" {
		t.Fatalf("unexpected redis defaults: %+v", cfg.Redis)
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV":                   "production",
		"GEOCODER_MIN_INTERVAL": "1s",
		"GEOCODER_CACHE_MATCH":  "exact",
		"WARMER_WORKERS":        "4",
		"REDIS_PASSWORD":        "s3cret",
		"REDIS_POOL_SIZE":       "32",
	}))
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if cfg.IsDevelopment() {
		t.Fatalf("production must not be development")
	}
	if cfg.Geocoder.MinInterval != time.Second || cfg.Geocoder.CacheMatch != "exact" || cfg.Warmer.Workers != 4 {
		t.Fatalf("overrides not applied: %+v %+v", cfg.Geocoder, cfg.Warmer)
	}
	if cfg.Redis.Password != "s3cret" || cfg.Redis.PoolSize != 32 {
		t.Fatalf("redis overrides not applied: %+v", cfg.Redis)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"GEOCODER_TIMEOUT": "soon",
	}))
	if err == nil {
		t.Fatalf("expected error for malformed duration")
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	c := PostgresConfig{Host: "db", Port: 5432, User: "svc", Password: "p@ss", Database: "swiftcargo", SSLMode: "disable"}
	want := "postgres://svc:p%40ss@db:5432/swiftcargo?sslmode=disable"
	if got := c.DSN(); got != want {
		t.Fatalf("DSN() = %s, want %s", got, want)
	}

	c.URL = "postgres://override"
	if got := c.DSN(); got != "postgres://override" {
		t.Fatalf("DATABASE_URL must take precedence, got %s", got)
	}
}
