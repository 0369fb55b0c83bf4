package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// WebhookConfig holds alert webhook intake settings. Loaded from environment
// variables because the secret must never land in YAML files.
type WebhookConfig struct {
	// Secret is the shared HMAC-SHA256 key for X-Webhook-Token validation.
	// Empty disables the webhook endpoint.
	Secret string

	// RequireAuth, when false, accepts unsigned webhook requests. Intended
	// for local development only.
	RequireAuth bool

	// DedupTTL is how long an alert fingerprint suppresses duplicates.
	DedupTTL time.Duration

	// MaxConcurrentRuns caps in-flight webhook-triggered runs; excess
	// requests get 429 with Retry-After.
	MaxConcurrentRuns int
}

// LoadWebhookConfigFromEnv loads webhook settings from environment variables.
func LoadWebhookConfigFromEnv() (*WebhookConfig, error) {
	cfg := &WebhookConfig{
		Secret:            os.Getenv("WEBHOOK_SECRET"),
		RequireAuth:       true,
		DedupTTL:          300 * time.Second,
		MaxConcurrentRuns: 5,
	}

	if v := os.Getenv("WEBHOOK_REQUIRE_AUTH"); v != "" {
		requireAuth, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: WEBHOOK_REQUIRE_AUTH=%q", ErrInvalidValue, v)
		}
		cfg.RequireAuth = requireAuth
	}
	if v := os.Getenv("WEBHOOK_DEDUP_TTL_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("%w: WEBHOOK_DEDUP_TTL_SECONDS=%q", ErrInvalidValue, v)
		}
		cfg.DedupTTL = time.Duration(secs) * time.Second
	}
	if v := os.Getenv("WEBHOOK_MAX_CONCURRENT_RUNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: WEBHOOK_MAX_CONCURRENT_RUNS=%q", ErrInvalidValue, v)
		}
		cfg.MaxConcurrentRuns = n
	}

	if cfg.RequireAuth && cfg.Secret == "" {
		// Endpoint stays registered but rejects everything until a secret
		// is configured.
		return cfg, nil
	}

	return cfg, nil
}
