// Package models contains plain domain types shared across packages.
// This package is imported by the ent schema for typed JSON columns, so it
// must not import the generated ent code.
package models

import "time"

// Run status values. Terminal statuses never transition again.
const (
	StatusPending          = "pending"
	StatusRunning          = "running"
	StatusAwaitingApproval = "awaiting_approval"
	StatusCompleted        = "completed"
	StatusFailed           = "failed"
	StatusCancelled        = "cancelled"
)

// IsTerminalStatus reports whether a run in the given status can still change.
func IsTerminalStatus(status string) bool {
	switch status {
	case StatusCompleted, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// Step kinds.
const (
	StepKindToolCall = "tool_call"
	StepKindFinish   = "finish"
	StepKindUnknown  = "unknown"
)

// ToolCallRecord is the durable record of one tool invocation.
type ToolCallRecord struct {
	ServerID      string         `json:"server_id"`
	ToolName      string         `json:"tool_name"`
	Arguments     map[string]any `json:"arguments,omitempty"`
	ResultSummary string         `json:"result_summary,omitempty"`
	IsError       bool           `json:"is_error,omitempty"`
}

// StepRecord is one entry in a run's step history. StepIndex is 1-based and
// dense: the Nth element always has index N.
type StepRecord struct {
	StepIndex    int             `json:"step_index"`
	Kind         string          `json:"kind"`
	ToolCall     *ToolCallRecord `json:"tool_call,omitempty"`
	FinishAnswer string          `json:"finish_answer,omitempty"`
	RawResponse  string          `json:"raw_response,omitempty"`
}

// PendingToolCall is a tool call held for human approval. Present on a run
// exactly while its status is awaiting_approval.
type PendingToolCall struct {
	ServerID  string         `json:"server_id"`
	ToolName  string         `json:"tool_name"`
	Arguments map[string]any `json:"arguments,omitempty"`
	StepIndex int            `json:"step_index"`
}

// CreateRunRequest contains fields for creating a new run
type CreateRunRequest struct {
	RunID            string            `json:"run_id"`
	Goal             string            `json:"goal"`
	AgentProfileID   string            `json:"agent_profile_id"`
	Context          map[string]string `json:"context,omitempty"`
	StreamTokens     bool              `json:"stream_tokens,omitempty"`
	Author           string            `json:"author,omitempty"`
	AlertFingerprint string            `json:"alert_fingerprint,omitempty"`
}

// RunFilters contains filtering options for listing runs
type RunFilters struct {
	Status        string     `json:"status,omitempty"`
	ProfileID     string     `json:"agent_profile_id,omitempty"`
	Author        string     `json:"author,omitempty"`
	CreatedAfter  *time.Time `json:"created_after,omitempty"`
	CreatedBefore *time.Time `json:"created_before,omitempty"`
	Limit         int        `json:"limit,omitempty"`
	Offset        int        `json:"offset,omitempty"`
}
