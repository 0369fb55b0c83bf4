package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/ranger/pkg/config"
	"github.com/codeready-toolchain/ranger/pkg/database"
	"github.com/codeready-toolchain/ranger/pkg/models"
	"github.com/codeready-toolchain/ranger/pkg/services"
	testdb "github.com/codeready-toolchain/ranger/test/database"
)

func setupRun(t *testing.T) (*database.Client, string) {
	t.Helper()
	client := testdb.NewTestClient(t)
	runs := services.NewRunService(client.Client)

	runID := uuid.New().String()
	_, err := runs.CreateRun(context.Background(), models.CreateRunRequest{
		RunID:          runID,
		Goal:           "check retention",
		AgentProfileID: "sre",
	})
	require.NoError(t, err)
	return client, runID
}

func TestService_RemovesExpiredEvents(t *testing.T) {
	client, runID := setupRun(t)
	eventService := services.NewEventService(client.Client)
	ctx := context.Background()

	// An event past the TTL and a fresh one.
	_, err := client.Client.RunEvent.Create().
		SetRunID(runID).
		SetEventType("status").
		SetPayload(map[string]any{"status": "running"}).
		SetCreatedAt(time.Now().Add(-8 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = eventService.AppendEvent(ctx, runID, "answer", map[string]any{"answer": "done"})
	require.NoError(t, err)

	cfg := &config.RetentionConfig{
		EventTTLDays:    7,
		CleanupInterval: time.Hour,
	}
	svc := NewService(cfg, eventService)
	svc.cleanupExpiredEvents(ctx)

	events, err := eventService.GetEventsSince(ctx, runID, 0, 0)
	require.NoError(t, err)
	require.Len(t, events, 1, "expired event removed, fresh event preserved")
	assert.Equal(t, "answer", events[0].EventType)
}

func TestService_PreservesEventsWithinTTL(t *testing.T) {
	client, runID := setupRun(t)
	eventService := services.NewEventService(client.Client)
	ctx := context.Background()

	_, err := eventService.AppendEvent(ctx, runID, "status", map[string]any{"status": "running"})
	require.NoError(t, err)

	cfg := &config.RetentionConfig{
		EventTTLDays:    7,
		CleanupInterval: time.Hour,
	}
	svc := NewService(cfg, eventService)
	svc.cleanupExpiredEvents(ctx)

	events, err := eventService.GetEventsSince(ctx, runID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestService_StartStop(t *testing.T) {
	client, _ := setupRun(t)
	eventService := services.NewEventService(client.Client)

	cfg := &config.RetentionConfig{
		EventTTLDays:    7,
		CleanupInterval: time.Hour,
	}
	svc := NewService(cfg, eventService)
	svc.Start(context.Background())
	svc.Stop()
}
