package services

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/ranger/ent"
	"github.com/codeready-toolchain/ranger/ent/runevent"
)

// EventService manages the append-only run event log backing SSE streams.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// AppendEvent appends an event to a run's log. The generated ID is the
// stream cursor: strictly increasing in append order.
func (s *EventService) AppendEvent(httpCtx context.Context, runID, eventType string, payload map[string]any) (*ent.RunEvent, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	evt, err := s.client.RunEvent.Create().
		SetRunID(runID).
		SetEventType(eventType).
		SetPayload(payload).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append event: %w", err)
	}

	return evt, nil
}

// GetEventsSince retrieves a run's events with ID greater than sinceID,
// in ascending ID order. Limit <= 0 means no limit.
func (s *EventService) GetEventsSince(ctx context.Context, runID string, sinceID int, limit int) ([]*ent.RunEvent, error) {
	query := s.client.RunEvent.Query().
		Where(
			runevent.RunIDEQ(runID),
			runevent.IDGT(sinceID),
		).
		Order(ent.Asc(runevent.FieldID))

	if limit > 0 {
		query = query.Limit(limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	return events, nil
}

// CleanupRunEvents removes all events for a run
func (s *EventService) CleanupRunEvents(ctx context.Context, runID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.RunEvent.Delete().
		Where(runevent.RunIDEQ(runID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup run events: %w", err)
	}

	return count, nil
}

// CleanupExpiredEvents removes events older than the retention TTL
func (s *EventService) CleanupExpiredEvents(ctx context.Context, ttlDays int) (int, error) {
	cutoff := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.RunEvent.Delete().
		Where(runevent.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup expired events: %w", err)
	}

	return count, nil
}
