package redis

import (
	"testing"
	"time"
)

func TestConfigOptions(t *testing.T) {
	opts := Config{
		Addr:        "cache:6380",
		Password:    "s3cret",
		DB:          2,
		PoolSize:    25,
		ReadTimeout: time.Second,
	}.options()

	if opts.Addr != "cache:6380" || opts.Password != "s3cret" || opts.DB != 2 {
		t.Fatalf("connection fields not carried over: %+v", opts)
	}
	if opts.PoolSize != 25 {
		t.Fatalf("expected pool size 25, got %d", opts.PoolSize)
	}
	if opts.ReadTimeout != time.Second {
		t.Fatalf("expected read timeout 1s, got %s", opts.ReadTimeout)
	}
}

func TestConfigOptions_DefaultPoolSize(t *testing.T) {
	if got := (Config{Addr: "localhost:6379"}).options().PoolSize; got != defaultPoolSize {
		t.Fatalf("expected default pool size %d, got %d", defaultPoolSize, got)
	}
}

func TestIdempotencyKey(t *testing.T) {
	if got := idempotencyKey("status:SCABC1234567", "k1"); got != "idem:status:SCABC1234567:k1" {
		t.Fatalf("unexpected key %q", got)
	}
}
