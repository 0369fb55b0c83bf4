package planner

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entrun "github.com/codeready-toolchain/ranger/ent/run"
	"github.com/codeready-toolchain/ranger/pkg/models"
)

type fakeScheduler struct {
	mu        sync.Mutex
	scheduled []string
}

func (s *fakeScheduler) Schedule(ctx context.Context, runID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduled = append(s.scheduled, runID)
}

func (s *fakeScheduler) runs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.scheduled...)
}

// newGateFixture puts the fixture run into awaiting_approval on an
// ansible.restart call held at step 1.
func newGateFixture(t *testing.T) (*Gate, *plannerFixture, *fakeScheduler) {
	t.Helper()
	profile := sreProfile()
	profile.ApprovalRequiredTools = []string{"restart"}
	fx := newPlannerFixture(t, profile)

	ctx := context.Background()
	require.NoError(t, fx.runs.MarkRunning(ctx, fx.runID, "test-pod"))
	require.NoError(t, fx.runs.SetAwaitingApproval(ctx, fx.runID, &models.PendingToolCall{
		ServerID:  "ansible",
		ToolName:  "restart",
		Arguments: map[string]any{"service": "nginx"},
		StepIndex: 1,
	}))

	scheduler := &fakeScheduler{}
	return NewGate(fx.planner, scheduler), fx, scheduler
}

func TestGate_Approve(t *testing.T) {
	gate, fx, scheduler := newGateFixture(t)
	fx.executor.results = map[string]*ToolResult{
		"ansible.restart": {Name: "ansible.restart", Content: "nginx restarted"},
	}
	ctx := context.Background()

	result, err := gate.Approve(ctx, fx.runID, "alice@example.com", nil)
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Equal(t, "pending", result.Status)

	run, err := fx.runs.GetRun(ctx, fx.runID)
	require.NoError(t, err)
	assert.Equal(t, entrun.StatusPending, run.Status)
	assert.Nil(t, run.PendingToolCall)
	assert.Nil(t, run.PodID)

	require.Len(t, run.Steps, 1)
	assert.Equal(t, 1, run.Steps[0].StepIndex)
	assert.Equal(t, models.StepKindToolCall, run.Steps[0].Kind)
	assert.Equal(t, "nginx restarted", run.Steps[0].ToolCall.ResultSummary)

	assert.Equal(t, []string{"ansible.restart"}, fx.executor.callNames())
	assert.Equal(t, []string{fx.runID}, scheduler.runs())

	evs, err := fx.eventSvc.GetEventsSince(ctx, fx.runID, 0, 50)
	require.NoError(t, err)
	require.Len(t, evs, 2)
	assert.Equal(t, "step", evs[0].EventType)
	assert.Equal(t, "audit", evs[1].EventType)
	assert.Equal(t, "tool_approved", evs[1].Payload["action"])
	assert.Equal(t, "alice@example.com", evs[1].Payload["approver_id"])
	assert.Equal(t, false, evs[1].Payload["arguments_modified"])
}

func TestGate_Approve_ModifiedArguments(t *testing.T) {
	gate, fx, _ := newGateFixture(t)
	ctx := context.Background()

	modified := map[string]any{"service": "nginx", "graceful": true}
	result, err := gate.Approve(ctx, fx.runID, "bob@example.com", modified)
	require.NoError(t, err)
	assert.True(t, result.Applied)

	require.Len(t, fx.executor.calls, 1)
	var args map[string]any
	require.NoError(t, json.Unmarshal([]byte(fx.executor.calls[0].Arguments), &args))
	assert.Equal(t, true, args["graceful"])

	run, err := fx.runs.GetRun(ctx, fx.runID)
	require.NoError(t, err)
	require.Len(t, run.Steps, 1)
	assert.Equal(t, modified, run.Steps[0].ToolCall.Arguments)

	evs, err := fx.eventSvc.GetEventsSince(ctx, fx.runID, 0, 50)
	require.NoError(t, err)
	require.Len(t, evs, 2)
	assert.Equal(t, true, evs[1].Payload["arguments_modified"])
}

func TestGate_Approve_NotAwaiting(t *testing.T) {
	gate, fx, scheduler := newGateFixture(t)
	ctx := context.Background()

	// Resolve once, then approve again.
	_, err := gate.Approve(ctx, fx.runID, "alice@example.com", nil)
	require.NoError(t, err)

	result, err := gate.Approve(ctx, fx.runID, "alice@example.com", nil)
	require.NoError(t, err)
	assert.False(t, result.Applied)
	assert.Equal(t, "pending", result.Status)
	assert.Contains(t, result.Message, "not awaiting approval")

	run, err := fx.runs.GetRun(ctx, fx.runID)
	require.NoError(t, err)
	assert.Len(t, run.Steps, 1, "no duplicate execution")
	assert.Len(t, scheduler.runs(), 1)
}

func TestGate_ConcurrentApprovals_ExecuteOnce(t *testing.T) {
	gate, fx, scheduler := newGateFixture(t)
	fx.executor.results = map[string]*ToolResult{
		"ansible.restart": {Name: "ansible.restart", Content: "nginx restarted"},
	}
	ctx := context.Background()

	results := make([]*ApprovalResult, 2)
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = gate.Approve(ctx, fx.runID, "alice@example.com", nil)
		}()
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	applied := 0
	for _, r := range results {
		if r.Applied {
			applied++
		}
	}
	assert.Equal(t, 1, applied, "exactly one decision wins")

	assert.Equal(t, []string{"ansible.restart"}, fx.executor.callNames(), "tool runs once")

	run, err := fx.runs.GetRun(ctx, fx.runID)
	require.NoError(t, err)
	assert.Equal(t, entrun.StatusPending, run.Status)
	require.Len(t, run.Steps, 1)
	assert.Len(t, scheduler.runs(), 1)
}

func TestGate_Reject(t *testing.T) {
	gate, fx, scheduler := newGateFixture(t)
	ctx := context.Background()

	result, err := gate.Reject(ctx, fx.runID, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Equal(t, "failed", result.Status)

	run, err := fx.runs.GetRun(ctx, fx.runID)
	require.NoError(t, err)
	assert.Equal(t, entrun.StatusFailed, run.Status)
	require.NotNil(t, run.ErrorMessage)
	assert.Equal(t, "Tool call rejected by user", *run.ErrorMessage)
	assert.Nil(t, run.PendingToolCall)

	assert.Empty(t, fx.executor.callNames(), "rejected call never executes")
	assert.Empty(t, scheduler.runs())

	evs, err := fx.eventSvc.GetEventsSince(ctx, fx.runID, 0, 50)
	require.NoError(t, err)
	require.Len(t, evs, 2)
	assert.Equal(t, "audit", evs[0].EventType)
	assert.Equal(t, "tool_rejected", evs[0].Payload["action"])
	assert.Equal(t, "status", evs[1].EventType)
	assert.Equal(t, "failed", evs[1].Payload["status"])
}

func TestGate_Reject_Idempotent(t *testing.T) {
	gate, fx, _ := newGateFixture(t)
	ctx := context.Background()

	_, err := gate.Reject(ctx, fx.runID, "alice@example.com")
	require.NoError(t, err)

	result, err := gate.Reject(ctx, fx.runID, "alice@example.com")
	require.NoError(t, err)
	assert.False(t, result.Applied)
	assert.Equal(t, "failed", result.Status)

	evs, err := fx.eventSvc.GetEventsSince(ctx, fx.runID, 0, 50)
	require.NoError(t, err)
	assert.Len(t, evs, 2, "second reject writes nothing")
}

func TestGate_Approve_UnknownRun(t *testing.T) {
	gate, _, _ := newGateFixture(t)
	_, err := gate.Approve(context.Background(), "no-such-run", "alice@example.com", nil)
	assert.Error(t, err)
}
