package services

import (
	"context"
	"testing"
	"time"

	"github.com/codeready-toolchain/ranger/ent/run"
	"github.com/codeready-toolchain/ranger/pkg/models"
	testdb "github.com/codeready-toolchain/ranger/test/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRun(t *testing.T, svc *RunService) string {
	t.Helper()
	runID := uuid.New().String()
	_, err := svc.CreateRun(context.Background(), models.CreateRunRequest{
		RunID:          runID,
		Goal:           "check cluster health",
		AgentProfileID: "sre",
	})
	require.NoError(t, err)
	return runID
}

func TestRunService_CreateRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRunService(client.Client)
	ctx := context.Background()

	t.Run("creates run in pending status", func(t *testing.T) {
		runID := uuid.New().String()
		created, err := svc.CreateRun(ctx, models.CreateRunRequest{
			RunID:          runID,
			Goal:           "diagnose failing deployment",
			AgentProfileID: "sre",
			Context:        map[string]string{"namespace": "prod"},
			Author:         "alice",
		})
		require.NoError(t, err)
		assert.Equal(t, runID, created.ID)
		assert.Equal(t, run.StatusPending, created.Status)
		assert.Equal(t, "prod", created.Context["namespace"])
		require.NotNil(t, created.Author)
		assert.Equal(t, "alice", *created.Author)
		assert.Nil(t, created.CheckpointStepIndex)
		assert.Empty(t, created.Steps)
	})

	t.Run("rejects missing goal", func(t *testing.T) {
		_, err := svc.CreateRun(ctx, models.CreateRunRequest{
			RunID:          uuid.New().String(),
			AgentProfileID: "sre",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects missing profile", func(t *testing.T) {
		_, err := svc.CreateRun(ctx, models.CreateRunRequest{
			RunID: uuid.New().String(),
			Goal:  "goal",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects duplicate run ID", func(t *testing.T) {
		runID := newTestRun(t, svc)
		_, err := svc.CreateRun(ctx, models.CreateRunRequest{
			RunID:          runID,
			Goal:           "other goal",
			AgentProfileID: "sre",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestRunService_GetRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRunService(client.Client)
	ctx := context.Background()

	runID := newTestRun(t, svc)

	t.Run("returns existing run", func(t *testing.T) {
		r, err := svc.GetRun(ctx, runID)
		require.NoError(t, err)
		assert.Equal(t, runID, r.ID)
	})

	t.Run("returns ErrNotFound for unknown ID", func(t *testing.T) {
		_, err := svc.GetRun(ctx, "does-not-exist")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRunService_ListRuns(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRunService(client.Client)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		ids = append(ids, newTestRun(t, svc))
		time.Sleep(5 * time.Millisecond)
	}
	require.NoError(t, svc.MarkRunning(ctx, ids[0], "pod-1"))

	t.Run("newest first", func(t *testing.T) {
		resp, err := svc.ListRuns(ctx, models.RunFilters{})
		require.NoError(t, err)
		require.Len(t, resp.Runs, 3)
		assert.Equal(t, ids[2], resp.Runs[0].ID)
		assert.Equal(t, ids[0], resp.Runs[2].ID)
		assert.Equal(t, 3, resp.TotalCount)
	})

	t.Run("status filter", func(t *testing.T) {
		resp, err := svc.ListRuns(ctx, models.RunFilters{Status: "running"})
		require.NoError(t, err)
		require.Len(t, resp.Runs, 1)
		assert.Equal(t, ids[0], resp.Runs[0].ID)
	})

	t.Run("limit and offset", func(t *testing.T) {
		resp, err := svc.ListRuns(ctx, models.RunFilters{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, resp.Runs, 1)
		assert.Equal(t, ids[1], resp.Runs[0].ID)
		assert.Equal(t, 3, resp.TotalCount)
	})
}

func TestRunService_AppendStep(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRunService(client.Client)
	ctx := context.Background()

	runID := newTestRun(t, svc)
	require.NoError(t, svc.MarkRunning(ctx, runID, "pod-1"))

	t.Run("appends step with checkpoint in one write", func(t *testing.T) {
		err := svc.AppendStep(ctx, runID, models.StepRecord{
			StepIndex: 1,
			Kind:      models.StepKindToolCall,
			ToolCall: &models.ToolCallRecord{
				ServerID: "k8s",
				ToolName: "get_pods",
			},
		}, &models.ToolCallRecord{ServerID: "k8s", ToolName: "get_pods", ResultSummary: "3 pods"})
		require.NoError(t, err)

		r, err := svc.GetRun(ctx, runID)
		require.NoError(t, err)
		require.Len(t, r.Steps, 1)
		assert.Equal(t, 1, r.Steps[0].StepIndex)
		require.NotNil(t, r.CheckpointStepIndex)
		assert.Equal(t, 1, *r.CheckpointStepIndex)
		require.Len(t, r.ToolCalls, 1)
	})

	t.Run("rejects non-monotonic step index", func(t *testing.T) {
		err := svc.AppendStep(ctx, runID, models.StepRecord{
			StepIndex: 1,
			Kind:      models.StepKindUnknown,
		}, nil)
		assert.ErrorIs(t, err, ErrConcurrentModification)
	})
}

func TestRunService_TerminalTransitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRunService(client.Client)
	ctx := context.Background()

	t.Run("complete sets answer and completed_at", func(t *testing.T) {
		runID := newTestRun(t, svc)
		require.NoError(t, svc.MarkRunning(ctx, runID, "pod-1"))
		require.NoError(t, svc.CompleteRun(ctx, runID, "all healthy"))

		r, err := svc.GetRun(ctx, runID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusCompleted, r.Status)
		require.NotNil(t, r.Answer)
		assert.Equal(t, "all healthy", *r.Answer)
		assert.NotNil(t, r.CompletedAt)
	})

	t.Run("complete with empty answer still sets answer", func(t *testing.T) {
		runID := newTestRun(t, svc)
		require.NoError(t, svc.MarkRunning(ctx, runID, "pod-1"))
		require.NoError(t, svc.CompleteRun(ctx, runID, ""))

		r, err := svc.GetRun(ctx, runID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusCompleted, r.Status)
		require.NotNil(t, r.Answer, "completed runs always carry an answer")
		assert.Equal(t, "", *r.Answer)
	})

	t.Run("failed runs carry no answer", func(t *testing.T) {
		runID := newTestRun(t, svc)
		require.NoError(t, svc.MarkRunning(ctx, runID, "pod-1"))
		require.NoError(t, svc.FailRun(ctx, runID, "boom"))

		r, err := svc.GetRun(ctx, runID)
		require.NoError(t, err)
		assert.Nil(t, r.Answer)
	})

	t.Run("cancel wins over late completion", func(t *testing.T) {
		runID := newTestRun(t, svc)
		require.NoError(t, svc.MarkRunning(ctx, runID, "pod-1"))

		cancelled, err := svc.CancelRun(ctx, runID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusCancelled, cancelled.Status)

		// The worker's terminal write after cancellation must not win.
		err = svc.CompleteRun(ctx, runID, "late answer")
		assert.ErrorIs(t, err, ErrConcurrentModification)

		r, err := svc.GetRun(ctx, runID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusCancelled, r.Status)
		assert.Nil(t, r.Answer)
	})

	t.Run("cancel is idempotent on terminal runs", func(t *testing.T) {
		runID := newTestRun(t, svc)
		require.NoError(t, svc.MarkRunning(ctx, runID, "pod-1"))
		require.NoError(t, svc.FailRun(ctx, runID, "boom"))

		r, err := svc.CancelRun(ctx, runID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusFailed, r.Status)
	})
}

func TestRunService_ApprovalFlow(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRunService(client.Client)
	ctx := context.Background()

	runID := newTestRun(t, svc)
	require.NoError(t, svc.MarkRunning(ctx, runID, "pod-1"))

	pending := &models.PendingToolCall{
		ServerID:  "k8s",
		ToolName:  "delete_pod",
		Arguments: map[string]any{"name": "web-1"},
		StepIndex: 2,
	}
	require.NoError(t, svc.SetAwaitingApproval(ctx, runID, pending))

	r, err := svc.GetRun(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusAwaitingApproval, r.Status)
	require.NotNil(t, r.PendingToolCall)
	assert.Equal(t, "delete_pod", r.PendingToolCall.ToolName)

	t.Run("resume applies modified arguments and clears pending", func(t *testing.T) {
		approved, err := svc.ResumeFromApproval(ctx, runID, map[string]any{"name": "web-2"})
		require.NoError(t, err)
		assert.Equal(t, "web-2", approved.Arguments["name"])
		assert.Equal(t, 2, approved.StepIndex)

		r, err := svc.GetRun(ctx, runID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusPending, r.Status)
		assert.Nil(t, r.PendingToolCall)
	})

	t.Run("resume on non-awaiting run is rejected", func(t *testing.T) {
		_, err := svc.ResumeFromApproval(ctx, runID, nil)
		assert.ErrorIs(t, err, ErrConcurrentModification)
	})
}

func TestRunService_ClaimNextPendingRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRunService(client.Client)
	ctx := context.Background()

	t.Run("claims oldest pending run", func(t *testing.T) {
		first := newTestRun(t, svc)
		time.Sleep(5 * time.Millisecond)
		newTestRun(t, svc)

		claimed, err := svc.ClaimNextPendingRun(ctx, "pod-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, first, claimed.ID)
		assert.Equal(t, run.StatusRunning, claimed.Status)
		require.NotNil(t, claimed.PodID)
		assert.Equal(t, "pod-1", *claimed.PodID)
		assert.NotNil(t, claimed.LastHeartbeatAt)
	})

	t.Run("returns nil when nothing pending", func(t *testing.T) {
		for {
			claimed, err := svc.ClaimNextPendingRun(ctx, "pod-1")
			require.NoError(t, err)
			if claimed == nil {
				break
			}
		}
	})
}

func TestRunService_OrphanDetection(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewRunService(client.Client)
	ctx := context.Background()

	runID := newTestRun(t, svc)
	require.NoError(t, svc.MarkRunning(ctx, runID, "pod-1"))

	// Backdate the heartbeat.
	err := client.Run.UpdateOneID(runID).
		SetLastHeartbeatAt(time.Now().Add(-10 * time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	t.Run("finds stale heartbeats", func(t *testing.T) {
		orphans, err := svc.FindOrphanedRuns(ctx, 5*time.Minute)
		require.NoError(t, err)
		require.Len(t, orphans, 1)
		assert.Equal(t, runID, orphans[0].ID)
	})

	t.Run("fresh heartbeat clears orphan state", func(t *testing.T) {
		require.NoError(t, svc.Heartbeat(ctx, runID))

		orphans, err := svc.FindOrphanedRuns(ctx, 5*time.Minute)
		require.NoError(t, err)
		assert.Len(t, orphans, 0)
	})

	t.Run("startup cleanup fails this pod's running runs", func(t *testing.T) {
		count, err := svc.FailStartupOrphans(ctx, "pod-1")
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		r, err := svc.GetRun(ctx, runID)
		require.NoError(t, err)
		assert.Equal(t, run.StatusFailed, r.Status)
		require.NotNil(t, r.ErrorMessage)
		assert.Contains(t, *r.ErrorMessage, "process restarted")
	})
}
