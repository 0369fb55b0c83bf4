// Package queue provides the distributed run queue: worker pools that claim
// pending runs from the database and drive them through the planner.
package queue

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for queue operations.
var (
	// ErrNoRunsAvailable indicates no pending runs are in the queue.
	ErrNoRunsAvailable = errors.New("no runs available")

	// ErrAtCapacity indicates the global concurrent run limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// RunExecutor drives one claimed run to a pause or a terminal status.
// The executor owns the run lifecycle internally: it writes steps, events,
// and the terminal status progressively. The worker only handles claiming,
// the heartbeat, timeout backstop, and cancel registration.
type RunExecutor interface {
	Execute(ctx context.Context, runID string) error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveRuns       int            `json:"active_runs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentRunID  string    `json:"current_run_id,omitempty"`
	RunsProcessed int       `json:"runs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
