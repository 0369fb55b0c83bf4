package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entrun "github.com/codeready-toolchain/ranger/ent/run"
	"github.com/codeready-toolchain/ranger/pkg/config"
	"github.com/codeready-toolchain/ranger/pkg/database"
	"github.com/codeready-toolchain/ranger/pkg/events"
	"github.com/codeready-toolchain/ranger/pkg/models"
	"github.com/codeready-toolchain/ranger/pkg/services"
	testdb "github.com/codeready-toolchain/ranger/test/database"
)

// fakeRunExecutor delegates to a function so each test scripts its own
// lifecycle behavior.
type fakeRunExecutor struct {
	mu       sync.Mutex
	executed []string
	fn       func(ctx context.Context, runID string) error
}

func (f *fakeRunExecutor) Execute(ctx context.Context, runID string) error {
	f.mu.Lock()
	f.executed = append(f.executed, runID)
	f.mu.Unlock()
	if f.fn != nil {
		return f.fn(ctx, runID)
	}
	return nil
}

func (f *fakeRunExecutor) executedRuns() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.executed...)
}

func fastQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 1
	cfg.MaxConcurrentRuns = 2
	cfg.PollInterval = 20 * time.Millisecond
	cfg.PollIntervalJitter = 0
	cfg.RunTimeout = 5 * time.Second
	cfg.HeartbeatInterval = 25 * time.Millisecond
	cfg.OrphanDetectionInterval = time.Hour
	cfg.OrphanThreshold = time.Minute
	return cfg
}

type poolFixture struct {
	client   *database.Client
	runs     *services.RunService
	executor *fakeRunExecutor
	cfg      *config.QueueConfig
}

func newPoolFixture(t *testing.T) *poolFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	return &poolFixture{
		client:   client,
		runs:     services.NewRunService(client.Client),
		executor: &fakeRunExecutor{},
		cfg:      fastQueueConfig(),
	}
}

func (fx *poolFixture) newPool(podID string) *WorkerPool {
	pub := events.NewPublisher(services.NewEventService(fx.client.Client), nil)
	return NewWorkerPool(podID, fx.client.Client, fx.runs, fx.cfg, fx.executor, pub)
}

func (fx *poolFixture) createRun(t *testing.T) string {
	t.Helper()
	runID := uuid.New().String()
	_, err := fx.runs.CreateRun(context.Background(), models.CreateRunRequest{
		RunID:          runID,
		Goal:           "diagnose latency",
		AgentProfileID: "sre",
	})
	require.NoError(t, err)
	return runID
}

func (fx *poolFixture) runStatus(t *testing.T, runID string) entrun.Status {
	t.Helper()
	r, err := fx.runs.GetRun(context.Background(), runID)
	require.NoError(t, err)
	return r.Status
}

func TestWorkerPool_ProcessesPendingRun(t *testing.T) {
	fx := newPoolFixture(t)
	fx.executor.fn = func(ctx context.Context, runID string) error {
		return fx.runs.CompleteRun(ctx, runID, "done")
	}
	runID := fx.createRun(t)

	pool := fx.newPool("pod-1")
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		return fx.runStatus(t, runID) == entrun.StatusCompleted
	}, 5*time.Second, 20*time.Millisecond)

	assert.Equal(t, []string{runID}, fx.executor.executedRuns())
}

func TestWorkerPool_ClaimSetsOwnership(t *testing.T) {
	fx := newPoolFixture(t)
	claimed := make(chan struct{})
	fx.executor.fn = func(ctx context.Context, runID string) error {
		close(claimed)
		return fx.runs.CompleteRun(ctx, runID, "done")
	}
	runID := fx.createRun(t)

	pool := fx.newPool("pod-owner")
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	select {
	case <-claimed:
	case <-time.After(5 * time.Second):
		t.Fatal("run was never claimed")
	}

	r, err := fx.runs.GetRun(context.Background(), runID)
	require.NoError(t, err)
	require.NotNil(t, r.PodID)
	assert.Equal(t, "pod-owner", *r.PodID)
	require.NotNil(t, r.LastHeartbeatAt)
}

func TestWorkerPool_CancelRun(t *testing.T) {
	fx := newPoolFixture(t)
	fx.executor.fn = func(ctx context.Context, runID string) error {
		<-ctx.Done()
		return ctx.Err()
	}
	runID := fx.createRun(t)

	pool := fx.newPool("pod-1")
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		return pool.CancelRun(runID)
	}, 5*time.Second, 20*time.Millisecond, "run never registered for cancellation")

	require.Eventually(t, func() bool {
		return fx.runStatus(t, runID) == entrun.StatusFailed
	}, 5*time.Second, 20*time.Millisecond)

	r, err := fx.runs.GetRun(context.Background(), runID)
	require.NoError(t, err)
	require.NotNil(t, r.ErrorMessage)
	assert.Contains(t, *r.ErrorMessage, "cancelled")
}

func TestWorkerPool_RunTimeoutBackstop(t *testing.T) {
	fx := newPoolFixture(t)
	fx.cfg.RunTimeout = 50 * time.Millisecond
	fx.executor.fn = func(ctx context.Context, runID string) error {
		<-ctx.Done()
		return ctx.Err()
	}
	runID := fx.createRun(t)

	pool := fx.newPool("pod-1")
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		return fx.runStatus(t, runID) == entrun.StatusFailed
	}, 5*time.Second, 20*time.Millisecond)

	r, err := fx.runs.GetRun(context.Background(), runID)
	require.NoError(t, err)
	require.NotNil(t, r.ErrorMessage)
	assert.Contains(t, *r.ErrorMessage, "timed out")
}

func TestWorkerPool_ApprovalPauseIsNotAFailure(t *testing.T) {
	fx := newPoolFixture(t)
	fx.executor.fn = func(ctx context.Context, runID string) error {
		return fx.runs.SetAwaitingApproval(ctx, runID, &models.PendingToolCall{
			ServerID: "ansible", ToolName: "restart", StepIndex: 1,
		})
	}
	runID := fx.createRun(t)

	pool := fx.newPool("pod-1")
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		return fx.runStatus(t, runID) == entrun.StatusAwaitingApproval
	}, 5*time.Second, 20*time.Millisecond)

	// The worker must leave the paused run alone.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, entrun.StatusAwaitingApproval, fx.runStatus(t, runID))
}

func TestWorkerPool_RespectsCapacity(t *testing.T) {
	fx := newPoolFixture(t)
	fx.cfg.MaxConcurrentRuns = 1
	fx.executor.fn = func(ctx context.Context, runID string) error {
		return fx.runs.CompleteRun(ctx, runID, "done")
	}

	// A run already executing on another pod consumes the only slot.
	blocker := fx.createRun(t)
	require.NoError(t, fx.runs.MarkRunning(context.Background(), blocker, "other-pod"))
	pending := fx.createRun(t)

	pool := fx.newPool("pod-1")
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, entrun.StatusPending, fx.runStatus(t, pending))
	assert.Empty(t, fx.executor.executedRuns())

	// Freeing the slot lets the pool pick the pending run up.
	require.NoError(t, fx.runs.CompleteRun(context.Background(), blocker, "done"))
	require.Eventually(t, func() bool {
		return fx.runStatus(t, pending) == entrun.StatusCompleted
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWorkerPool_Health(t *testing.T) {
	fx := newPoolFixture(t)
	fx.createRun(t)

	pool := fx.newPool("pod-health")
	health := pool.Health()
	assert.False(t, health.IsHealthy, "pool without workers is unhealthy")
	assert.True(t, health.DBReachable)
	assert.Equal(t, 1, health.QueueDepth)
	assert.Equal(t, "pod-health", health.PodID)
}

func TestOrphanDetection_FailsStaleRuns(t *testing.T) {
	fx := newPoolFixture(t)
	ctx := context.Background()

	runID := fx.createRun(t)
	require.NoError(t, fx.runs.MarkRunning(ctx, runID, "dead-pod"))
	// Age the heartbeat past the orphan threshold.
	require.NoError(t, fx.client.Client.Run.UpdateOneID(runID).
		SetLastHeartbeatAt(time.Now().Add(-10*time.Minute)).
		Exec(ctx))

	pool := fx.newPool("pod-1")
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	r, err := fx.runs.GetRun(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, entrun.StatusFailed, r.Status)
	require.NotNil(t, r.ErrorMessage)
	assert.Contains(t, *r.ErrorMessage, "Orphaned: no heartbeat from pod dead-pod")

	pool.orphans.mu.Lock()
	recovered := pool.orphans.orphansRecovered
	pool.orphans.mu.Unlock()
	assert.Equal(t, 1, recovered)
}

func TestOrphanDetection_IgnoresFreshHeartbeats(t *testing.T) {
	fx := newPoolFixture(t)
	ctx := context.Background()

	runID := fx.createRun(t)
	require.NoError(t, fx.runs.MarkRunning(ctx, runID, "live-pod"))

	pool := fx.newPool("pod-1")
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	assert.Equal(t, entrun.StatusRunning, fx.runStatus(t, runID))
}
