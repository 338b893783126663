package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MP_ACCESS_TOKEN", "TEST-token")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":3000" {
		t.Fatalf("HTTPAddr = %q, want :3000", cfg.HTTPAddr)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("ShutdownTimeout = %v, want 10s", cfg.ShutdownTimeout)
	}
}

func TestLoadRequiresAccessToken(t *testing.T) {
	t.Setenv("MP_ACCESS_TOKEN", "")

	_, err := Load()
	if !errors.Is(err, ErrMissingAccessToken) {
		t.Fatalf("err = %v, want ErrMissingAccessToken", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MP_ACCESS_TOKEN", "TEST-token")
	t.Setenv("PORT", "8081")
	t.Setenv("WEBHOOK_URL", "https://relay.example/webhook_pago")
	t.Setenv("SHUTDOWN_TIMEOUT", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":8081" {
		t.Fatalf("HTTPAddr = %q, want :8081", cfg.HTTPAddr)
	}
	if cfg.WebhookURL != "https://relay.example/webhook_pago" {
		t.Fatalf("WebhookURL = %q", cfg.WebhookURL)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("ShutdownTimeout = %v, want 5s", cfg.ShutdownTimeout)
	}
}
