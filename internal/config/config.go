// Package config provides runtime configuration for the relay.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds everything the process reads from its environment.
type Config struct {
	// HTTPAddr is the listen address, derived from PORT (default 3000).
	HTTPAddr string
	// MPAccessToken authenticates calls to the payment provider.
	MPAccessToken string
	// WebhookURL is the callback the provider notifies on payment events.
	WebhookURL string
	// FirestoreProjectID selects the document database project.
	FirestoreProjectID string
	// CredentialsFile is the service-account key for the document database.
	// Empty means application-default credentials.
	CredentialsFile string
	// OTLPEndpoint receives trace spans. Empty disables the exporter.
	OTLPEndpoint string
	// ShutdownTimeout bounds graceful HTTP server shutdown.
	ShutdownTimeout time.Duration
}

var ErrMissingAccessToken = errors.New("MP_ACCESS_TOKEN is required")

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durenvs(key string, defSec int) time.Duration {
	v := getenv(key, "")
	if v == "" {
		return time.Duration(defSec) * time.Second
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return time.Duration(defSec) * time.Second
	}
	return time.Duration(n) * time.Second
}

// Load collects configuration from environment with defaults.
func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:           ":" + getenv("PORT", "3000"),
		MPAccessToken:      os.Getenv("MP_ACCESS_TOKEN"),
		WebhookURL:         os.Getenv("WEBHOOK_URL"),
		FirestoreProjectID: getenv("FIRESTORE_PROJECT_ID", "servivending"),
		CredentialsFile:    os.Getenv("SERVICE_ACCOUNT_FILE"),
		OTLPEndpoint:       os.Getenv("OTLP_ENDPOINT"),
		ShutdownTimeout:    durenvs("SHUTDOWN_TIMEOUT", 10),
	}
	if cfg.MPAccessToken == "" {
		return Config{}, ErrMissingAccessToken
	}
	return cfg, nil
}
