package events

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/ranger/pkg/models"
	"github.com/codeready-toolchain/ranger/pkg/services"
	testdb "github.com/codeready-toolchain/ranger/test/database"
)

func newTestStreamer(t *testing.T) (*Streamer, *Publisher, *services.RunService, string) {
	t.Helper()
	client := testdb.NewTestClient(t)
	runService := services.NewRunService(client.Client)
	eventService := services.NewEventService(client.Client)
	broker := NewBroker()

	runID := uuid.New().String()
	_, err := runService.CreateRun(context.Background(), models.CreateRunRequest{
		RunID:          runID,
		Goal:           "ping 8.8.8.8",
		AgentProfileID: "sre",
	})
	require.NoError(t, err)

	streamer := NewStreamer(runService, eventService, broker)
	streamer.pollInterval = 20 * time.Millisecond
	return streamer, NewPublisher(eventService, broker), runService, runID
}

func TestStreamer_ReplaysEventsAndEnds(t *testing.T) {
	streamer, pub, runService, runID := newTestStreamer(t)
	ctx := context.Background()

	require.NoError(t, pub.PublishStatus(ctx, runID, "running", nil, ""))
	require.NoError(t, pub.PublishStep(ctx, runID, models.StepRecord{
		StepIndex: 1,
		Kind:      models.StepKindToolCall,
		ToolCall:  &models.ToolCallRecord{ServerID: "net", ToolName: "ping", ResultSummary: "ok"},
	}))
	require.NoError(t, runService.MarkRunning(ctx, runID, "pod-1"))
	require.NoError(t, runService.CompleteRun(ctx, runID, "reachable"))
	require.NoError(t, pub.PublishStatus(ctx, runID, "completed", nil, ""))
	require.NoError(t, pub.PublishAnswer(ctx, runID, "reachable"))

	rec := httptest.NewRecorder()
	err := streamer.Stream(ctx, rec, runID, 0)
	require.NoError(t, err)

	body := rec.Body.String()
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))

	// Frames arrive in event-log order, end frame last.
	idxStatus := strings.Index(body, "event: status")
	idxStep := strings.Index(body, "event: step")
	idxAnswer := strings.Index(body, "event: answer")
	idxEnd := strings.Index(body, "event: end")
	require.GreaterOrEqual(t, idxStatus, 0)
	require.Greater(t, idxStep, idxStatus)
	require.Greater(t, idxAnswer, idxStep)
	require.Greater(t, idxEnd, idxAnswer)

	assert.Contains(t, body, `"status":"completed"`)
	assert.Contains(t, body, `"answer":"reachable"`)
}

func TestStreamer_ResumeCursorSkipsDelivered(t *testing.T) {
	streamer, pub, runService, runID := newTestStreamer(t)
	ctx := context.Background()

	require.NoError(t, pub.PublishStatus(ctx, runID, "running", nil, ""))
	require.NoError(t, pub.PublishStep(ctx, runID, models.StepRecord{StepIndex: 1, Kind: models.StepKindUnknown, RawResponse: "???"}))

	// Find the ID of the first event to use as a resume cursor.
	evs, err := streamer.events.GetEventsSince(ctx, runID, 0, 10)
	require.NoError(t, err)
	require.Len(t, evs, 2)
	cursor := evs[0].ID

	require.NoError(t, runService.MarkRunning(ctx, runID, "pod-1"))
	require.NoError(t, runService.CompleteRun(ctx, runID, "done"))

	rec := httptest.NewRecorder()
	require.NoError(t, streamer.Stream(ctx, rec, runID, cursor))

	body := rec.Body.String()
	assert.NotContains(t, body, `"status":"running"`, "events at or before the cursor are not replayed")
	assert.Contains(t, body, "event: step")
	assert.Contains(t, body, "event: end")
}

func TestStreamer_CancelledRunEndsStream(t *testing.T) {
	streamer, _, runService, runID := newTestStreamer(t)
	ctx := context.Background()

	_, err := runService.CancelRun(ctx, runID)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, streamer.Stream(ctx, rec, runID, 0))

	body := rec.Body.String()
	assert.Contains(t, body, "event: end")
	assert.Contains(t, body, `"status":"cancelled"`)
}

func TestStreamer_ContextCancelStopsPolling(t *testing.T) {
	streamer, _, _, runID := newTestStreamer(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	rec := httptest.NewRecorder()
	go func() {
		done <- streamer.Stream(ctx, rec, runID, 0)
	}()

	time.Sleep(60 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("streamer did not stop after context cancellation")
	}
}

func TestStreamer_UnknownRun(t *testing.T) {
	streamer, _, _, _ := newTestStreamer(t)

	rec := httptest.NewRecorder()
	err := streamer.Stream(context.Background(), rec, "no-such-run", 0)
	assert.Error(t, err)
}
