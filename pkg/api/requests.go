package api

// SubmitRunRequest is the HTTP request body for POST /api/v1/run.
type SubmitRunRequest struct {
	Goal           string            `json:"goal"`
	AgentProfileID string            `json:"agent_profile_id"`
	Context        map[string]string `json:"context,omitempty"`
	StreamTokens   bool              `json:"stream_tokens,omitempty"`
}

// ApproveRequest is the HTTP request body for POST /api/v1/runs/:id/approve.
// Approved defaults to true when omitted; false rejects the held call.
// ModifiedArguments, when present, replaces the proposed tool arguments.
type ApproveRequest struct {
	Approved          *bool          `json:"approved,omitempty"`
	ModifiedArguments map[string]any `json:"modified_arguments,omitempty"`
}

// PrometheusWebhookRequest is the Alertmanager-compatible payload accepted by
// POST /webhooks/prometheus. Only the fields the intake uses are modeled.
type PrometheusWebhookRequest struct {
	Status string         `json:"status"`
	Alerts []WebhookAlert `json:"alerts"`
}

// WebhookAlert is a single alert inside an Alertmanager notification.
type WebhookAlert struct {
	Status      string            `json:"status"`
	Labels      map[string]string `json:"labels"`
	Annotations map[string]string `json:"annotations"`
	Fingerprint string            `json:"fingerprint"`
}
