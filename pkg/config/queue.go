package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// QueueConfig contains queue and worker pool configuration.
// These values control how pending runs are polled, claimed, and executed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and executes runs.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentRuns is the global limit of concurrent runs being
	// executed across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentRuns int `yaml:"max_concurrent_runs"`

	// PollInterval is the base interval for checking pending runs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// RunTimeout is the maximum time a single run can execute.
	RunTimeout time.Duration `yaml:"run_timeout"`

	// HeartbeatInterval is how often an executing worker refreshes the
	// run's last_heartbeat_at.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// GracefulShutdownTimeout is the max time to wait for active runs
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for orphaned runs.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a run can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
}

// ApplyEnvOverrides applies environment variable overrides on top of the
// YAML-resolved queue config. Env wins over YAML.
func (c *QueueConfig) ApplyEnvOverrides() error {
	if v := os.Getenv("GRACEFUL_SHUTDOWN_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return fmt.Errorf("%w: GRACEFUL_SHUTDOWN_TIMEOUT_SECONDS=%q", ErrInvalidValue, v)
		}
		c.GracefulShutdownTimeout = time.Duration(secs) * time.Second
	}
	return nil
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentRuns:       5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		RunTimeout:              15 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		GracefulShutdownTimeout: 15 * time.Minute,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
	}
}
