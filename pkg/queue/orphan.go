package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/codeready-toolchain/ranger/ent"
	entrun "github.com/codeready-toolchain/ranger/ent/run"
	"github.com/codeready-toolchain/ranger/pkg/services"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for runs whose worker stopped
// heartbeating. All pods run this independently; the operations are
// idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds running runs with stale heartbeats and
// fails them.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	orphaned, err := p.runs.FindOrphanedRuns(ctx, p.config.OrphanThreshold)
	if err != nil {
		return err
	}

	if len(orphaned) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned runs", "count", len(orphaned))

	recovered := 0
	for _, orphan := range orphaned {
		if err := p.recoverOrphanedRun(ctx, orphan); err != nil {
			slog.Error("Failed to recover orphaned run",
				"run_id", orphan.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedRun fails a single orphaned run and publishes the terminal
// status event its planner never got to write.
func (p *WorkerPool) recoverOrphanedRun(ctx context.Context, orphan *ent.Run) error {
	lastHeartbeat := "unknown"
	if orphan.LastHeartbeatAt != nil {
		lastHeartbeat = orphan.LastHeartbeatAt.Format(time.RFC3339)
	}
	podID := "unknown"
	if orphan.PodID != nil {
		podID = *orphan.PodID
	}

	msg := fmt.Sprintf("Orphaned: no heartbeat from pod %s since %s", podID, lastHeartbeat)
	if err := p.runs.FailRun(ctx, orphan.ID, msg); err != nil {
		if errors.Is(err, services.ErrConcurrentModification) {
			return nil // finished or was cancelled between scan and recovery
		}
		return err
	}

	if p.pub != nil {
		if err := p.pub.PublishStatus(ctx, orphan.ID, string(entrun.StatusFailed), nil, msg); err != nil {
			slog.Warn("Failed to publish orphan status event", "run_id", orphan.ID, "error", err)
		}
	}

	slog.Warn("Orphaned run marked as failed",
		"run_id", orphan.ID, "old_pod_id", podID, "last_heartbeat", lastHeartbeat)
	return nil
}
