package events

import (
	"github.com/codeready-toolchain/ranger/pkg/models"
)

// StatusPayload is the payload for status events.
// Published on every run status transition.
type StatusPayload struct {
	Type            string                  `json:"type"` // always EventTypeStatus
	RunID           string                  `json:"run_id"`
	Status          string                  `json:"status"`                      // pending, running, awaiting_approval, completed, failed, cancelled
	Error           string                  `json:"error,omitempty"`             // set on failed
	PendingToolCall *models.PendingToolCall `json:"pending_tool_call,omitempty"` // set on awaiting_approval
	Timestamp       string                  `json:"timestamp"`                   // RFC3339Nano
}

// StepPayload is the payload for step events.
// Published after each planner step is persisted.
type StepPayload struct {
	Type          string `json:"type"` // always EventTypeStep
	RunID         string `json:"run_id"`
	StepIndex     int    `json:"step_index"` // 1-based
	Kind          string `json:"kind"`       // tool_call, finish, unknown
	ServerID      string `json:"server_id,omitempty"`
	ToolName      string `json:"tool_name,omitempty"`
	ResultSummary string `json:"result_summary,omitempty"`
	IsError       bool   `json:"is_error,omitempty"`
	RawResponse   string `json:"raw_response,omitempty"`
	Timestamp     string `json:"timestamp"` // RFC3339Nano
}

// TokenPayload is the payload for token events.
// Transient: delivered to live subscribers only, never persisted.
type TokenPayload struct {
	Type      string `json:"type"` // always EventTypeToken
	RunID     string `json:"run_id"`
	Delta     string `json:"delta"`     // incremental text chunk
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// AnswerPayload is the payload for answer events.
// Published once when a run completes.
type AnswerPayload struct {
	Type      string `json:"type"` // always EventTypeAnswer
	RunID     string `json:"run_id"`
	Answer    string `json:"answer"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// AuditPayload is the payload for audit events.
// Published when an operator approves or rejects a held tool call.
type AuditPayload struct {
	Type              string `json:"type"` // always EventTypeAudit
	RunID             string `json:"run_id"`
	Action            string `json:"action"` // tool_approved, tool_rejected
	ServerID          string `json:"server_id,omitempty"`
	ToolName          string `json:"tool_name,omitempty"`
	ApproverID        string `json:"approver_id,omitempty"`
	ArgumentsModified bool   `json:"arguments_modified"`
	Timestamp         string `json:"timestamp"` // RFC3339Nano
}

// EndPayload is the payload of the final SSE frame.
// Synthesized by the streamer; never stored in the event log.
type EndPayload struct {
	Type      string `json:"type"` // always EventTypeEnd
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}
