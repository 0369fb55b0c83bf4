package services

import (
	"context"
	"testing"
	"time"

	"github.com/codeready-toolchain/ranger/pkg/models"
	testdb "github.com/codeready-toolchain/ranger/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createEventTestRun(t *testing.T, runService *RunService) string {
	t.Helper()
	runID := uuid.New().String()
	_, err := runService.CreateRun(context.Background(), models.CreateRunRequest{
		RunID:          runID,
		Goal:           "test",
		AgentProfileID: "sre",
	})
	require.NoError(t, err)
	return runID
}

func TestEventService_AppendEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	runService := NewRunService(client.Client)
	ctx := context.Background()

	runID := createEventTestRun(t, runService)

	t.Run("appends event with monotonic IDs", func(t *testing.T) {
		evt1, err := eventService.AppendEvent(ctx, runID, "status", map[string]any{"status": "running"})
		require.NoError(t, err)
		assert.Equal(t, "status", evt1.EventType)
		assert.NotNil(t, evt1.Payload)

		evt2, err := eventService.AppendEvent(ctx, runID, "step", map[string]any{"step_index": 1})
		require.NoError(t, err)
		assert.Greater(t, evt2.ID, evt1.ID)
	})
}

func TestEventService_GetEventsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	runService := NewRunService(client.Client)
	ctx := context.Background()

	runID := createEventTestRun(t, runService)
	otherRunID := createEventTestRun(t, runService)

	evt1, err := eventService.AppendEvent(ctx, runID, "status", map[string]any{"seq": 1})
	require.NoError(t, err)

	evt2, err := eventService.AppendEvent(ctx, runID, "step", map[string]any{"seq": 2})
	require.NoError(t, err)

	_, err = eventService.AppendEvent(ctx, otherRunID, "status", map[string]any{"seq": 3})
	require.NoError(t, err)

	t.Run("retrieves events after cursor", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, runID, evt1.ID, 0)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, evt2.ID, events[0].ID)
	})

	t.Run("retrieves all events when sinceID is 0", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, runID, 0, 0)
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("does not leak other runs' events", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, runID, 0, 0)
		require.NoError(t, err)
		for _, evt := range events {
			assert.Equal(t, runID, evt.RunID)
		}
	})

	t.Run("respects limit parameter", func(t *testing.T) {
		events, err := eventService.GetEventsSince(ctx, runID, 0, 1)
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})
}

func TestEventService_CleanupRunEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	runService := NewRunService(client.Client)
	ctx := context.Background()

	runID := createEventTestRun(t, runService)

	for i := 0; i < 3; i++ {
		_, err := eventService.AppendEvent(ctx, runID, "step", map[string]any{"seq": i})
		require.NoError(t, err)
	}

	t.Run("cleans up all run events", func(t *testing.T) {
		count, err := eventService.CleanupRunEvents(ctx, runID)
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		events, err := eventService.GetEventsSince(ctx, runID, 0, 0)
		require.NoError(t, err)
		assert.Len(t, events, 0)
	})
}

func TestEventService_CleanupExpiredEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client.Client)
	runService := NewRunService(client.Client)
	ctx := context.Background()

	runID := createEventTestRun(t, runService)

	// Create event directly with old created_at (bypassing service)
	oldTime := time.Now().Add(-8 * 24 * time.Hour)
	_, err := client.RunEvent.Create().
		SetRunID(runID).
		SetEventType("status").
		SetPayload(map[string]any{}).
		SetCreatedAt(oldTime).
		Save(ctx)
	require.NoError(t, err)

	t.Run("cleans up old events", func(t *testing.T) {
		count, err := eventService.CleanupExpiredEvents(ctx, 7)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, count, 1)
	})
}
