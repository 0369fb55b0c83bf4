package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/codeready-toolchain/ranger/pkg/models"
	"github.com/codeready-toolchain/ranger/pkg/services"
)

// Publisher appends typed events to the per-run event log and broadcasts
// transient token deltas to live subscribers via the Broker.
//
// Each public method accepts the minimal fields for its event kind and
// stamps the type and timestamp itself — see payloads.go for the wire
// shapes. Publishing is best-effort from the planner's point of view:
// callers log failures and keep going, the run row stays authoritative.
type Publisher struct {
	events *services.EventService
	broker *Broker
}

// NewPublisher creates a Publisher. broker may be nil when token streaming
// is not needed (e.g., queue workers without an HTTP surface).
func NewPublisher(events *services.EventService, broker *Broker) *Publisher {
	return &Publisher{events: events, broker: broker}
}

// Broker returns the token broker, or nil if none was configured.
func (p *Publisher) Broker() *Broker { return p.broker }

// PublishStatus appends a status event. pending carries the held tool call
// for awaiting_approval transitions; errMsg the failure text for failed.
func (p *Publisher) PublishStatus(ctx context.Context, runID, status string, pending *models.PendingToolCall, errMsg string) error {
	return p.append(ctx, runID, EventTypeStatus, StatusPayload{
		Type:            EventTypeStatus,
		RunID:           runID,
		Status:          status,
		Error:           errMsg,
		PendingToolCall: pending,
		Timestamp:       now(),
	})
}

// PublishStep appends a step event for a persisted planner step.
func (p *Publisher) PublishStep(ctx context.Context, runID string, step models.StepRecord) error {
	payload := StepPayload{
		Type:        EventTypeStep,
		RunID:       runID,
		StepIndex:   step.StepIndex,
		Kind:        step.Kind,
		RawResponse: step.RawResponse,
		Timestamp:   now(),
	}
	if step.ToolCall != nil {
		payload.ServerID = step.ToolCall.ServerID
		payload.ToolName = step.ToolCall.ToolName
		payload.ResultSummary = step.ToolCall.ResultSummary
		payload.IsError = step.ToolCall.IsError
	}
	return p.append(ctx, runID, EventTypeStep, payload)
}

// PublishAnswer appends the final answer event of a completed run.
func (p *Publisher) PublishAnswer(ctx context.Context, runID, answer string) error {
	return p.append(ctx, runID, EventTypeAnswer, AnswerPayload{
		Type:      EventTypeAnswer,
		RunID:     runID,
		Answer:    answer,
		Timestamp: now(),
	})
}

// PublishAudit appends an approval-decision audit event.
func (p *Publisher) PublishAudit(ctx context.Context, runID, action, serverID, toolName, approverID string, argumentsModified bool) error {
	return p.append(ctx, runID, EventTypeAudit, AuditPayload{
		Type:              EventTypeAudit,
		RunID:             runID,
		Action:            action,
		ServerID:          serverID,
		ToolName:          toolName,
		ApproverID:        approverID,
		ArgumentsModified: argumentsModified,
		Timestamp:         now(),
	})
}

// PublishToken broadcasts a streaming delta to live subscribers.
// No-op when no broker is configured. Never persisted.
func (p *Publisher) PublishToken(runID, delta string) {
	if p.broker == nil {
		return
	}
	p.broker.Publish(runID, TokenPayload{
		Type:      EventTypeToken,
		RunID:     runID,
		Delta:     delta,
		Timestamp: now(),
	})
}

// append marshals the typed payload to the generic map shape the event log
// stores and writes it through the event service.
func (p *Publisher) append(ctx context.Context, runID, eventType string, payload any) error {
	m, err := toMap(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", eventType, err)
	}
	if _, err := p.events.AppendEvent(ctx, runID, eventType, m); err != nil {
		return fmt.Errorf("failed to append %s event: %w", eventType, err)
	}
	return nil
}

func toMap(payload any) (map[string]any, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
