package api

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/ranger/pkg/models"
)

func signWebhook(secret, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}

func alertBody(fingerprint string) string {
	return fmt.Sprintf(`{
		"status": "firing",
		"alerts": [{
			"status": "firing",
			"labels": {"alertname": "HighErrorRate", "namespace": "checkout"},
			"annotations": {"summary": "5xx rate above 5%%"},
			"fingerprint": %q
		}]
	}`, fingerprint)
}

func (fx *apiFixture) postWebhook(body string, headers map[string]string) *httptest.ResponseRecorder {
	return fx.do(http.MethodPost, "/webhooks/prometheus", body, headers)
}

func TestWebhook_CreatesRun(t *testing.T) {
	fx := newAPIFixture(t)
	body := alertBody("fp-001")

	rec := fx.postWebhook(body, map[string]string{"X-Webhook-Token": signWebhook("test-secret", body)})
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	var resp WebhookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.RunIDs, 1)
	assert.Equal(t, 0, resp.Duplicates)

	run, err := fx.runs.GetRun(context.Background(), resp.RunIDs[0])
	require.NoError(t, err)
	assert.Contains(t, run.Goal, "HighErrorRate")
	assert.Contains(t, run.Goal, "5xx rate above 5%")
	assert.Equal(t, "sre", run.AgentProfileID)
	require.NotNil(t, run.Author)
	assert.Equal(t, "prometheus-webhook", *run.Author)
	require.NotNil(t, run.AlertFingerprint)
	assert.Equal(t, "fp-001", *run.AlertFingerprint)
	assert.Equal(t, "checkout", run.Context["namespace"])
}

func TestWebhook_Auth(t *testing.T) {
	fx := newAPIFixture(t)
	body := alertBody("fp-002")

	rec := fx.postWebhook(body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = fx.postWebhook(body, map[string]string{"X-Webhook-Token": "deadbeef"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid signature for a different body does not transfer.
	rec = fx.postWebhook(body, map[string]string{"X-Webhook-Token": signWebhook("test-secret", "other")})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWebhook_DedupSuppressesRepeat(t *testing.T) {
	fx := newAPIFixture(t)
	body := alertBody("fp-003")
	headers := map[string]string{"X-Webhook-Token": signWebhook("test-secret", body)}

	rec := fx.postWebhook(body, headers)
	require.Equal(t, http.StatusAccepted, rec.Code)

	rec = fx.postWebhook(body, headers)
	require.Equal(t, http.StatusAccepted, rec.Code)
	var resp WebhookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.RunIDs)
	assert.Equal(t, 1, resp.Duplicates)
}

func TestWebhook_FingerprintIndexBackstop(t *testing.T) {
	fx := newAPIFixture(t)
	ctx := context.Background()

	// Simulate another replica holding a non-terminal run for the same
	// fingerprint. The local dedup cache knows nothing about it, so the
	// insert is stopped by the partial unique index.
	existing, err := fx.runs.CreateRun(ctx, models.CreateRunRequest{
		RunID:            uuid.New().String(),
		Goal:             "investigate alert",
		AgentProfileID:   "sre",
		AlertFingerprint: "fp-shared",
	})
	require.NoError(t, err)

	body := alertBody("fp-shared")
	headers := map[string]string{"X-Webhook-Token": signWebhook("test-secret", body)}

	rec := fx.postWebhook(body, headers)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	var resp WebhookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.RunIDs)
	assert.Equal(t, 1, resp.Duplicates)

	// The rejected insert never reached the cache, so once the existing
	// run ends the same alert fires a fresh run.
	require.NoError(t, fx.runs.MarkRunning(ctx, existing.ID, "pod-1"))
	require.NoError(t, fx.runs.CompleteRun(ctx, existing.ID, "resolved"))

	rec = fx.postWebhook(body, headers)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	resp = WebhookResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.RunIDs, 1)
	assert.Equal(t, 0, resp.Duplicates)
}

func TestWebhook_SkipsResolvedAlerts(t *testing.T) {
	fx := newAPIFixture(t)
	body := `{"status": "resolved", "alerts": [{"status": "resolved", "labels": {"alertname": "Flappy"}, "fingerprint": "fp-004"}]}`

	rec := fx.postWebhook(body, map[string]string{"X-Webhook-Token": signWebhook("test-secret", body)})
	require.Equal(t, http.StatusAccepted, rec.Code)

	var resp WebhookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.RunIDs)
	assert.Equal(t, 0, resp.Duplicates)
}

func TestWebhook_ConcurrencyCap(t *testing.T) {
	fx := newAPIFixture(t)

	// Fill the cap with non-terminal alert-originated runs.
	for i := 0; i < fx.cfg.Webhook.MaxConcurrentRuns; i++ {
		_, err := fx.runs.CreateRun(context.Background(), models.CreateRunRequest{
			RunID:            uuid.New().String(),
			Goal:             "investigate alert",
			AgentProfileID:   "sre",
			AlertFingerprint: fmt.Sprintf("cap-fp-%d", i),
		})
		require.NoError(t, err)
	}

	body := alertBody("fp-overflow")
	rec := fx.postWebhook(body, map[string]string{"X-Webhook-Token": signWebhook("test-secret", body)})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
}

func TestWebhook_ProfileAnnotation(t *testing.T) {
	fx := newAPIFixture(t)
	body := `{"alerts": [{
		"status": "firing",
		"labels": {"alertname": "CertExpiry"},
		"annotations": {"ranger_profile": "sre"},
		"fingerprint": "fp-005"
	}]}`

	rec := fx.postWebhook(body, map[string]string{"X-Webhook-Token": signWebhook("test-secret", body)})
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	var resp WebhookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.RunIDs, 1)

	run, err := fx.runs.GetRun(context.Background(), resp.RunIDs[0])
	require.NoError(t, err)
	assert.Equal(t, "sre", run.AgentProfileID)
}

func TestWebhook_EmptyPayload(t *testing.T) {
	fx := newAPIFixture(t)
	body := `{"alerts": []}`

	rec := fx.postWebhook(body, map[string]string{"X-Webhook-Token": signWebhook("test-secret", body)})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFingerprintLabels(t *testing.T) {
	a := fingerprintLabels(map[string]string{"alertname": "X", "ns": "prod"})
	b := fingerprintLabels(map[string]string{"ns": "prod", "alertname": "X"})
	c := fingerprintLabels(map[string]string{"ns": "staging", "alertname": "X"})

	assert.Equal(t, a, b, "fingerprint must be order independent")
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 32)
}

func TestDedupCache_Eviction(t *testing.T) {
	cache := newDedupCache(3)

	cache.Record("a", time.Minute)
	cache.Record("b", time.Minute)
	cache.Record("c", time.Minute)
	assert.True(t, cache.Contains("a"))

	// Fourth distinct fingerprint evicts the entry closest to expiry.
	cache.Record("d", time.Minute)
	assert.True(t, cache.Contains("d"))
}

func TestDedupCache_TTLExpiry(t *testing.T) {
	cache := newDedupCache(10)

	cache.Record("a", 10*time.Millisecond)
	assert.True(t, cache.Contains("a"))
	time.Sleep(20 * time.Millisecond)
	assert.False(t, cache.Contains("a"))
}

func TestDedupCache_ChecksWithoutRecording(t *testing.T) {
	cache := newDedupCache(10)

	assert.False(t, cache.Contains("a"))
	assert.False(t, cache.Contains("a"), "a failed run creation must not suppress the retry")
	cache.Record("a", time.Minute)
	assert.True(t, cache.Contains("a"))
}
