package api

import (
	"context"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamRun_ReplaysCompletedRun(t *testing.T) {
	fx := newAPIFixture(t)
	runID := fx.createRun(t)

	ctx := context.Background()
	require.NoError(t, fx.runs.MarkRunning(ctx, runID, "pod-1"))
	_, err := fx.events.AppendEvent(ctx, runID, "status", map[string]any{"status": "running"})
	require.NoError(t, err)
	_, err = fx.events.AppendEvent(ctx, runID, "answer", map[string]any{"answer": "disk was full"})
	require.NoError(t, err)
	require.NoError(t, fx.runs.CompleteRun(ctx, runID, "disk was full"))

	rec := fx.do(http.MethodGet, "/api/v1/runs/"+runID+"/stream", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")

	body := rec.Body.String()
	assert.Contains(t, body, "event: status")
	assert.Contains(t, body, "event: answer")
	assert.Contains(t, body, "disk was full")
	assert.Contains(t, body, "event: end")
}

func TestStreamRun_ResumesAfterCursor(t *testing.T) {
	fx := newAPIFixture(t)
	runID := fx.createRun(t)

	ctx := context.Background()
	require.NoError(t, fx.runs.MarkRunning(ctx, runID, "pod-1"))
	first, err := fx.events.AppendEvent(ctx, runID, "status", map[string]any{"status": "running"})
	require.NoError(t, err)
	_, err = fx.events.AppendEvent(ctx, runID, "answer", map[string]any{"answer": "done"})
	require.NoError(t, err)
	require.NoError(t, fx.runs.CompleteRun(ctx, runID, "done"))

	rec := fx.do(http.MethodGet, "/api/v1/runs/"+runID+"/stream", "",
		map[string]string{"Last-Event-ID": strconv.Itoa(first.ID)})
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.NotContains(t, body, "event: status")
	assert.Contains(t, body, "event: answer")
	assert.Contains(t, body, "event: end")
}

func TestStreamRun_InvalidCursor(t *testing.T) {
	fx := newAPIFixture(t)
	runID := fx.createRun(t)

	rec := fx.do(http.MethodGet, "/api/v1/runs/"+runID+"/stream?last_event_id=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStreamRun_NotFound(t *testing.T) {
	fx := newAPIFixture(t)

	rec := fx.do(http.MethodGet, "/api/v1/runs/no-such-run/stream", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
