package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "STORE_LIST_LATENCY_MS", "STORE_UPDATE_LATENCY_MS", "AUTH_REQUIRE_LOGIN", "ADMIN_PASSWORD", "REDIS_DB"} {
		t.Setenv(key, "")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Addr() != "0.0.0.0:8080" {
		t.Fatalf("unexpected addr %s", cfg.App.Addr())
	}
	if cfg.Store.ListLatency() != time.Second || cfg.Store.UpdateLatency() != 0 {
		t.Fatalf("unexpected latencies %v %v", cfg.Store.ListLatency(), cfg.Store.UpdateLatency())
	}
	if cfg.Auth.RequireLogin {
		t.Fatalf("login should not be required by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORE_LIST_LATENCY_MS", "250")
	t.Setenv("AUTH_REQUIRE_LOGIN", "true")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "0")
	t.Setenv("ADMIN_PASSWORD", "long-enough")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Port != "9090" || cfg.Store.ListLatency() != 250*time.Millisecond {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if !cfg.Auth.RequireLogin {
		t.Fatalf("expected login required")
	}
	if cfg.App.RequestTimeout() != 0 {
		t.Fatalf("expected no request timeout, got %v", cfg.App.RequestTimeout())
	}
}

func TestLoadRejectsShortAdminPassword(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "short")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for short admin password")
	}
}

func TestLoadRejectsBadRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "one")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for REDIS_DB")
	}
}

func TestInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("STORE_UPDATE_LATENCY_MS", "fast")
	t.Setenv("AUTH_REQUIRE_LOGIN", "maybe")
	if got := getEnvAsInt("STORE_UPDATE_LATENCY_MS", 7); got != 7 {
		t.Fatalf("expected fallback 7, got %d", got)
	}
	if got := getEnvAsBool("AUTH_REQUIRE_LOGIN", true); !got {
		t.Fatalf("expected fallback true")
	}
}

func TestLoadClient(t *testing.T) {
	t.Setenv("LEADS_API_URL", "http://leads.internal:8080")
	t.Setenv("LEADS_API_TIMEOUT_SECONDS", "3")
	t.Setenv("LEADSGRID_LOG_FILE", "/tmp/leadsgrid.log")

	cfg, err := LoadClient()
	if err != nil {
		t.Fatalf("load client: %v", err)
	}
	if cfg.APIURL != "http://leads.internal:8080" || cfg.Timeout() != 3*time.Second {
		t.Fatalf("unexpected client config %+v", cfg)
	}
	if cfg.Logger.File != "/tmp/leadsgrid.log" {
		t.Fatalf("unexpected log file %q", cfg.Logger.File)
	}
}
