// Package events provides the run event log surface: typed payloads, a
// publisher that appends to the per-run event log, an in-memory broker for
// transient token deltas, and the SSE streamer that tails the log.
//
// Persistence policy: status, step, answer, and audit events are stored in
// the event log and replayed to late subscribers. Token deltas are
// transient — delivered only to subscribers connected while the model is
// streaming. The final answer always arrives via the persisted answer
// event, so nothing authoritative is lost on reconnect.
package events

// Persistent event types (stored in the run event log).
const (
	// EventTypeStatus marks a run status transition.
	EventTypeStatus = "status"

	// EventTypeStep records one completed planner step.
	EventTypeStep = "step"

	// EventTypeAnswer carries the final answer of a completed run.
	EventTypeAnswer = "answer"

	// EventTypeAudit records a human approval decision.
	EventTypeAudit = "audit"
)

// Transient event types (broker only, never persisted).
const (
	// EventTypeToken is an LLM streaming delta.
	EventTypeToken = "token"
)

// EventTypeEnd terminates an SSE stream. Emitted by the streamer when the
// run reaches a terminal status; never written to the event log.
const EventTypeEnd = "end"

// Audit action values (used in AuditPayload.Action).
const (
	AuditActionToolApproved = "tool_approved"
	AuditActionToolRejected = "tool_rejected"
)
