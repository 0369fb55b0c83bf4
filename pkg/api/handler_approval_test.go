package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entrun "github.com/codeready-toolchain/ranger/ent/run"
	"github.com/codeready-toolchain/ranger/pkg/models"
)

// awaitingRun parks a run in awaiting_approval with a held tool call.
func (fx *apiFixture) awaitingRun(t *testing.T) string {
	t.Helper()
	runID := fx.createRun(t)
	ctx := context.Background()
	require.NoError(t, fx.runs.MarkRunning(ctx, runID, "test-pod"))
	require.NoError(t, fx.runs.SetAwaitingApproval(ctx, runID, &models.PendingToolCall{
		ServerID:  "ansible",
		ToolName:  "restart",
		Arguments: map[string]any{"service": "nginx"},
		StepIndex: 1,
	}))
	return runID
}

func TestApproveRun(t *testing.T) {
	fx := newAPIFixture(t)
	runID := fx.awaitingRun(t)

	rec := fx.do(http.MethodPost, "/api/v1/runs/"+runID+"/approve", `{}`,
		map[string]string{"X-Forwarded-User": "oncall@example.com"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result ApprovalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Applied)
	assert.Equal(t, "pending", result.Status)

	run, err := fx.runs.GetRun(context.Background(), runID)
	require.NoError(t, err)
	assert.Equal(t, entrun.StatusPending, run.Status)
	assert.Nil(t, run.PendingToolCall)
	require.Len(t, run.Steps, 1)
	require.NotNil(t, run.Steps[0].ToolCall)
	assert.Equal(t, "restart", run.Steps[0].ToolCall.ToolName)

	// The executed call also shows up in the run representation.
	rec = fx.do(http.MethodGet, "/api/v1/runs/"+runID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var runResp RunResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &runResp))
	require.Len(t, runResp.ToolCalls, 1)
	assert.Equal(t, "restart", runResp.ToolCalls[0].ToolName)
	assert.Equal(t, "ansible", runResp.ToolCalls[0].ServerID)

	evs, err := fx.events.GetEventsSince(context.Background(), runID, 0, 10)
	require.NoError(t, err)
	require.Len(t, evs, 2)
	assert.Equal(t, "step", evs[0].EventType)
	assert.Equal(t, "audit", evs[1].EventType)
	assert.Equal(t, "tool_approved", evs[1].Payload["action"])
	assert.Equal(t, "oncall@example.com", evs[1].Payload["approver_id"])
}

func TestApproveRun_ModifiedArguments(t *testing.T) {
	fx := newAPIFixture(t)
	runID := fx.awaitingRun(t)

	rec := fx.do(http.MethodPost, "/api/v1/runs/"+runID+"/approve",
		`{"modified_arguments": {"service": "haproxy"}}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	run, err := fx.runs.GetRun(context.Background(), runID)
	require.NoError(t, err)
	require.Len(t, run.Steps, 1)
	require.NotNil(t, run.Steps[0].ToolCall)
	assert.Equal(t, "haproxy", run.Steps[0].ToolCall.Arguments["service"])

	evs, err := fx.events.GetEventsSince(context.Background(), runID, 0, 10)
	require.NoError(t, err)
	require.Len(t, evs, 2)
	assert.Equal(t, true, evs[1].Payload["arguments_modified"])
}

func TestApproveRun_NotAwaiting(t *testing.T) {
	fx := newAPIFixture(t)
	runID := fx.createRun(t)

	rec := fx.do(http.MethodPost, "/api/v1/runs/"+runID+"/approve", `{}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result ApprovalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Applied)
	assert.Contains(t, result.Message, "not awaiting approval")
}

func TestApproveRun_Unknown(t *testing.T) {
	fx := newAPIFixture(t)

	rec := fx.do(http.MethodPost, "/api/v1/runs/no-such-run/approve", `{}`, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestApproveRun_ApprovedFalseRejects(t *testing.T) {
	fx := newAPIFixture(t)
	runID := fx.awaitingRun(t)

	rec := fx.do(http.MethodPost, "/api/v1/runs/"+runID+"/approve", `{"approved": false}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	run, err := fx.runs.GetRun(context.Background(), runID)
	require.NoError(t, err)
	assert.Equal(t, entrun.StatusFailed, run.Status)
}

func TestRejectRun(t *testing.T) {
	fx := newAPIFixture(t)
	runID := fx.awaitingRun(t)

	rec := fx.do(http.MethodPost, "/api/v1/runs/"+runID+"/reject", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result ApprovalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "failed", result.Status)

	run, err := fx.runs.GetRun(context.Background(), runID)
	require.NoError(t, err)
	assert.Equal(t, entrun.StatusFailed, run.Status)
	require.NotNil(t, run.ErrorMessage)
	assert.Contains(t, *run.ErrorMessage, "rejected")
	assert.Empty(t, run.Steps)
}
