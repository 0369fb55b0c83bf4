package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/codeready-toolchain/ranger/ent"
	entrun "github.com/codeready-toolchain/ranger/ent/run"
	"github.com/codeready-toolchain/ranger/pkg/config"
	"github.com/codeready-toolchain/ranger/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and executes runs.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	runs     *services.RunService
	config   *config.QueueConfig
	executor RunExecutor
	pool     RunRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentRunID  string
	runsProcessed int
	lastActivity  time.Time
}

// RunRegistry is the subset of WorkerPool used by Worker for run registration.
type RunRegistry interface {
	RegisterRun(runID string, cancel context.CancelFunc)
	UnregisterRun(runID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, runs *services.RunService, cfg *config.QueueConfig, executor RunExecutor, pool RunRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		runs:         runs,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentRunID:  w.currentRunID,
		RunsProcessed: w.runsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoRunsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing run", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a run, and executes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.Run.Query().
		Where(entrun.StatusEQ(entrun.StatusRunning)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active runs: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentRuns {
		return ErrAtCapacity
	}

	// 2. Claim next pending run (FOR UPDATE SKIP LOCKED inside the service)
	claimed, err := w.runs.ClaimNextPendingRun(ctx, w.podID)
	if err != nil {
		return fmt.Errorf("claiming run: %w", err)
	}
	if claimed == nil {
		return ErrNoRunsAvailable
	}

	log := slog.With("run_id", claimed.ID, "worker_id", w.id)
	log.Info("Run claimed")

	w.setStatus(WorkerStatusWorking, claimed.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Run context with the global run timeout
	runCtx, cancelRun := context.WithTimeout(ctx, w.config.RunTimeout)
	defer cancelRun()

	// 4. Register cancel function for API-triggered cancellation
	w.pool.RegisterRun(claimed.ID, cancelRun)
	defer w.pool.UnregisterRun(claimed.ID)

	// 5. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(runCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, claimed.ID)

	// 6. Execute. The planner writes steps, events, and terminal statuses
	//    itself; pauses for approval leave the run in awaiting_approval.
	execErr := w.executor.Execute(runCtx, claimed.ID)
	cancelHeartbeat()

	// 7. Backstop: if the executor bailed out on context expiry before it
	//    could write a terminal status, fail the run here.
	if execErr != nil || runCtx.Err() != nil {
		w.failIfStillRunning(claimed.ID, execErr, runCtx.Err())
	}

	w.mu.Lock()
	w.runsProcessed++
	w.mu.Unlock()

	log.Info("Run processing complete")
	return nil
}

// failIfStillRunning writes a failed status when the executor exited without
// reaching a terminal state. Uses a background context because the run
// context is typically already expired here.
func (w *Worker) failIfStillRunning(runID string, execErr, ctxErr error) {
	checkCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	current, err := w.runs.GetRun(checkCtx, runID)
	if err != nil {
		slog.Error("Failed to read run after executor exit", "run_id", runID, "error", err)
		return
	}
	if current.Status != entrun.StatusRunning {
		// Terminal already written, or legitimately paused for approval.
		return
	}

	var msg string
	switch {
	case errors.Is(ctxErr, context.DeadlineExceeded):
		msg = fmt.Sprintf("run timed out after %v", w.config.RunTimeout)
	case errors.Is(ctxErr, context.Canceled):
		msg = "run cancelled while executing"
	case execErr != nil:
		msg = execErr.Error()
	default:
		return
	}

	if err := w.runs.FailRun(checkCtx, runID, msg); err != nil &&
		!errors.Is(err, services.ErrConcurrentModification) {
		slog.Error("Failed to fail run after executor exit", "run_id", runID, "error", err)
	}
}

// runHeartbeat periodically refreshes last_heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, runID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.runs.Heartbeat(ctx, runID); err != nil {
				slog.Warn("Heartbeat update failed", "run_id", runID, "error", err)
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, runID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentRunID = runID
	w.lastActivity = time.Now()
}
