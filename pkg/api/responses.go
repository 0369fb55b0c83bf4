package api

import (
	"time"

	"github.com/codeready-toolchain/ranger/ent"
	"github.com/codeready-toolchain/ranger/pkg/mcp"
	"github.com/codeready-toolchain/ranger/pkg/models"
)

// SubmitRunResponse is returned by POST /api/v1/run.
type SubmitRunResponse struct {
	RunID          string    `json:"run_id"`
	Status         string    `json:"status"`
	Goal           string    `json:"goal"`
	AgentProfileID string    `json:"agent_profile_id"`
	CreatedAt      time.Time `json:"created_at"`
	Message        string    `json:"message"`
}

// ApprovalResponse is returned by the approve and reject endpoints.
type ApprovalResponse struct {
	RunID   string `json:"run_id"`
	Status  string `json:"status"`
	Applied bool   `json:"applied"`
	Message string `json:"message,omitempty"`
}

// RunResponse is the full run representation returned by GET /api/v1/runs/:id.
type RunResponse struct {
	RunID               string                  `json:"run_id"`
	Goal                string                  `json:"goal"`
	AgentProfileID      string                  `json:"agent_profile_id"`
	Status              string                  `json:"status"`
	Context             map[string]string       `json:"context,omitempty"`
	Steps               []models.StepRecord     `json:"steps"`
	ToolCalls           []models.ToolCallRecord `json:"tool_calls"`
	PendingToolCall     *models.PendingToolCall `json:"pending_tool_call,omitempty"`
	CheckpointStepIndex *int                    `json:"checkpoint_step_index,omitempty"`
	Answer              string                  `json:"answer,omitempty"`
	ErrorMessage        string                  `json:"error_message,omitempty"`
	StreamTokens        bool                    `json:"stream_tokens"`
	Author              string                  `json:"author,omitempty"`
	CreatedAt           time.Time               `json:"created_at"`
	UpdatedAt           time.Time               `json:"updated_at"`
	CompletedAt         *time.Time              `json:"completed_at,omitempty"`
}

// RunListResponse is returned by GET /api/v1/runs.
type RunListResponse struct {
	Runs       []*RunSummary `json:"runs"`
	TotalCount int           `json:"total_count"`
	Limit      int           `json:"limit"`
	Offset     int           `json:"offset"`
}

// RunSummary is the compact run representation used in list responses.
type RunSummary struct {
	RunID          string     `json:"run_id"`
	Goal           string     `json:"goal"`
	AgentProfileID string     `json:"agent_profile_id"`
	Status         string     `json:"status"`
	StepCount      int        `json:"step_count"`
	Author         string     `json:"author,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// CancelResponse is returned by POST /api/v1/runs/:id/cancel.
type CancelResponse struct {
	RunID   string `json:"run_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ProfileResponse describes one agent profile in GET /api/v1/agent-profiles.
type ProfileResponse struct {
	ProfileID             string   `json:"profile_id"`
	Description           string   `json:"description,omitempty"`
	AllowedToolServers    []string `json:"allowed_tool_servers"`
	ApprovalRequiredTools []string `json:"approval_required_tools,omitempty"`
	MaxSteps              int      `json:"max_steps"`
	Enabled               bool     `json:"enabled"`
}

// WebhookResponse is returned by POST /webhooks/prometheus.
type WebhookResponse struct {
	RunIDs     []string `json:"run_ids"`
	Duplicates int      `json:"duplicates,omitempty"`
	Message    string   `json:"message"`
}

// ToolServerListResponse is returned by GET /api/v1/tool-servers.
// Connected is true when every enabled server has a live connection.
type ToolServerListResponse struct {
	Connected bool               `json:"connected"`
	Servers   []mcp.ServerStatus `json:"servers"`
}

// HealthCheck is a single named check inside HealthResponse.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// toRunResponse converts an ent run to its API representation.
func toRunResponse(r *ent.Run) *RunResponse {
	resp := &RunResponse{
		RunID:               r.ID,
		Goal:                r.Goal,
		AgentProfileID:      r.AgentProfileID,
		Status:              string(r.Status),
		Context:             r.Context,
		Steps:               r.Steps,
		ToolCalls:           r.ToolCalls,
		PendingToolCall:     r.PendingToolCall,
		CheckpointStepIndex: r.CheckpointStepIndex,
		StreamTokens:        r.StreamTokens,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
		CompletedAt:         r.CompletedAt,
	}
	if resp.Steps == nil {
		resp.Steps = []models.StepRecord{}
	}
	if resp.ToolCalls == nil {
		resp.ToolCalls = []models.ToolCallRecord{}
	}
	if r.Answer != nil {
		resp.Answer = *r.Answer
	}
	if r.ErrorMessage != nil {
		resp.ErrorMessage = *r.ErrorMessage
	}
	if r.Author != nil {
		resp.Author = *r.Author
	}
	return resp
}

// toRunSummary converts an ent run to its list representation.
func toRunSummary(r *ent.Run) *RunSummary {
	summary := &RunSummary{
		RunID:          r.ID,
		Goal:           r.Goal,
		AgentProfileID: r.AgentProfileID,
		Status:         string(r.Status),
		StepCount:      len(r.Steps),
		CreatedAt:      r.CreatedAt,
		CompletedAt:    r.CompletedAt,
	}
	if r.Author != nil {
		summary.Author = *r.Author
	}
	return summary
}
