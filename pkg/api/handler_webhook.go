package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/ranger/pkg/models"
	"github.com/codeready-toolchain/ranger/pkg/services"
)

const (
	// dedupCacheMaxEntries bounds the in-memory fingerprint cache.
	dedupCacheMaxEntries = 1000

	// webhookRetryAfterSeconds is returned with 429 when the alert-run cap
	// is reached.
	webhookRetryAfterSeconds = 60

	// maxWebhookBodySize caps the accepted webhook payload.
	maxWebhookBodySize = 1 << 20
)

// webhookProfileAnnotation selects the agent profile for an alert; absent,
// the configured default profile is used.
const webhookProfileAnnotation = "ranger_profile"

// dedupCache suppresses duplicate alert fingerprints for a TTL.
// Per-process only: a partial unique index on non-terminal runs with the
// same fingerprint backstops multi-replica races.
type dedupCache struct {
	mu      sync.Mutex
	entries map[string]time.Time // fingerprint -> expiry
	max     int
}

func newDedupCache(max int) *dedupCache {
	return &dedupCache{
		entries: make(map[string]time.Time),
		max:     max,
	}
}

// Contains reports whether the fingerprint is present and unexpired.
func (d *dedupCache) Contains(fingerprint string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	expiry, ok := d.entries[fingerprint]
	return ok && time.Now().Before(expiry)
}

// Record stores the fingerprint for the TTL. Callers record only after the
// alert run is durably created, so a failed create never suppresses a retry.
func (d *dedupCache) Record(fingerprint string, ttl time.Duration) {
	now := time.Now()
	d.mu.Lock()
	defer d.mu.Unlock()

	// Evict expired entries first; if still full, drop the oldest.
	if len(d.entries) >= d.max {
		for fp, expiry := range d.entries {
			if now.After(expiry) {
				delete(d.entries, fp)
			}
		}
		for len(d.entries) >= d.max {
			var oldestFP string
			var oldest time.Time
			for fp, expiry := range d.entries {
				if oldestFP == "" || expiry.Before(oldest) {
					oldestFP = fp
					oldest = expiry
				}
			}
			delete(d.entries, oldestFP)
		}
	}

	d.entries[fingerprint] = now.Add(ttl)
}

// prometheusWebhookHandler handles POST /webhooks/prometheus.
//
// Accepts Alertmanager notifications, deduplicates by fingerprint, enforces
// the concurrent alert-run cap, and creates one run per firing alert.
func (s *Server) prometheusWebhookHandler(c *echo.Context) error {
	if s.cfg.Webhook == nil {
		return echo.NewHTTPError(http.StatusNotFound, "webhook intake is not configured")
	}

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBodySize+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read request body")
	}
	if len(body) > maxWebhookBodySize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "webhook payload too large")
	}

	if s.cfg.Webhook.RequireAuth {
		if err := verifyWebhookToken(s.cfg.Webhook.Secret, body, c.Request().Header.Get("X-Webhook-Token")); err != nil {
			return err
		}
	}

	var req PrometheusWebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid webhook payload: "+err.Error())
	}
	if len(req.Alerts) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no alerts in payload")
	}

	// Concurrency cap: count runs still executing that came from alerts.
	active, err := s.runService.CountActiveAlertRuns(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	if active >= s.cfg.Webhook.MaxConcurrentRuns {
		c.Response().Header().Set("Retry-After", fmt.Sprintf("%d", webhookRetryAfterSeconds))
		return echo.NewHTTPError(http.StatusTooManyRequests,
			fmt.Sprintf("maximum of %d concurrent alert runs reached", s.cfg.Webhook.MaxConcurrentRuns))
	}

	resp := &WebhookResponse{RunIDs: []string{}}
	for _, alert := range req.Alerts {
		if alert.Status != "" && alert.Status != "firing" {
			continue
		}
		fingerprint := alert.Fingerprint
		if fingerprint == "" {
			fingerprint = fingerprintLabels(alert.Labels)
		}
		if s.dedup.Contains(fingerprint) {
			resp.Duplicates++
			continue
		}

		run, err := s.runService.CreateRun(c.Request().Context(), models.CreateRunRequest{
			RunID:            uuid.New().String(),
			Goal:             alertGoal(alert),
			AgentProfileID:   s.alertProfileID(alert),
			Context:          alert.Labels,
			Author:           "prometheus-webhook",
			AlertFingerprint: fingerprint,
		})
		if errors.Is(err, services.ErrAlreadyExists) {
			// Another replica already holds a non-terminal run for this
			// fingerprint; the partial unique index rejected the insert.
			resp.Duplicates++
			continue
		}
		if err != nil {
			return mapServiceError(err)
		}
		s.dedup.Record(fingerprint, s.cfg.Webhook.DedupTTL)
		resp.RunIDs = append(resp.RunIDs, run.ID)
	}

	resp.Message = fmt.Sprintf("%d run(s) created", len(resp.RunIDs))
	return c.JSON(http.StatusAccepted, resp)
}

// verifyWebhookToken checks the HMAC-SHA256 signature of the raw body
// against the X-Webhook-Token header using a constant-time comparison.
func verifyWebhookToken(secret string, body []byte, token string) error {
	if secret == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "webhook secret is not configured")
	}
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing X-Webhook-Token header")
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(token)) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid webhook token")
	}
	return nil
}

// fingerprintLabels derives a stable fingerprint from the alert's label set
// when Alertmanager did not supply one.
func fingerprintLabels(labels map[string]string) string {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(k)
		sb.WriteString("=")
		sb.WriteString(labels[k])
		sb.WriteString(";")
	}
	sum := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(sum[:16])
}

// alertGoal renders the natural-language goal for an alert run.
func alertGoal(alert WebhookAlert) string {
	name := alert.Labels["alertname"]
	if name == "" {
		name = "unknown alert"
	}
	goal := fmt.Sprintf("Investigate the firing alert %q", name)
	if summary := alert.Annotations["summary"]; summary != "" {
		goal += ": " + summary
	}
	if desc := alert.Annotations["description"]; desc != "" {
		goal += "\n\n" + desc
	}
	return goal
}

// alertProfileID resolves the agent profile for an alert from its
// annotations, falling back to the configured default.
func (s *Server) alertProfileID(alert WebhookAlert) string {
	if profileID := alert.Annotations[webhookProfileAnnotation]; profileID != "" {
		if _, err := s.cfg.GetProfile(profileID); err == nil {
			return profileID
		}
	}
	if s.cfg.Defaults != nil && s.cfg.Defaults.AgentProfile != "" {
		return s.cfg.Defaults.AgentProfile
	}
	return "default"
}
