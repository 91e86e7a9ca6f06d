package config

import (
	"fmt"
	"time"
)

// QueueConfig contains queue and worker pool configuration.
// These values control how jobs are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerConcurrency is the number of worker goroutines per queue per
	// replica. Each worker independently polls and claims jobs.
	WorkerConcurrency int

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// DrainTimeout is the max time to wait for active jobs to complete
	// during shutdown.
	DrainTimeout time.Duration

	// JobTimeout is the ceiling on a single handler invocation. Must be
	// generous enough for a full run execution.
	JobTimeout time.Duration

	// HeartbeatInterval is how often a claimed run refreshes its
	// heartbeat while executing.
	HeartbeatInterval time.Duration

	// OrphanScanInterval is how often to scan for orphaned runs and jobs.
	OrphanScanInterval time.Duration

	// OrphanThreshold is how long a running run can go without a
	// heartbeat before it is considered orphaned and reset to pending.
	OrphanThreshold time.Duration
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerConcurrency:  5,
		PollInterval:       1 * time.Second,
		PollIntervalJitter: 500 * time.Millisecond,
		DrainTimeout:       30 * time.Second,
		JobTimeout:         10 * time.Minute,
		HeartbeatInterval:  30 * time.Second,
		OrphanScanInterval: 1 * time.Minute,
		OrphanThreshold:    2 * time.Minute,
	}
}

func loadQueueConfig() *QueueConfig {
	def := DefaultQueueConfig()
	return &QueueConfig{
		WorkerConcurrency:  getEnvInt("WORKER_CONCURRENCY", def.WorkerConcurrency),
		PollInterval:       getEnvDuration("QUEUE_POLL_INTERVAL", def.PollInterval),
		PollIntervalJitter: getEnvDuration("QUEUE_POLL_JITTER", def.PollIntervalJitter),
		DrainTimeout:       getEnvDuration("QUEUE_DRAIN_TIMEOUT", def.DrainTimeout),
		JobTimeout:         getEnvDuration("QUEUE_JOB_TIMEOUT", def.JobTimeout),
		HeartbeatInterval:  getEnvDuration("HEARTBEAT_INTERVAL", def.HeartbeatInterval),
		OrphanScanInterval: getEnvDuration("ORPHAN_SCAN_INTERVAL", def.OrphanScanInterval),
		OrphanThreshold:    getEnvDuration("ORPHAN_THRESHOLD", def.OrphanThreshold),
	}
}

// Validate checks worker and interval ranges.
func (c *QueueConfig) Validate() error {
	if c == nil {
		return fmt.Errorf("queue configuration is nil")
	}
	if c.WorkerConcurrency < 1 || c.WorkerConcurrency > 50 {
		return NewValidationError("queue", "WORKER_CONCURRENCY",
			fmt.Errorf("must be between 1 and 50, got %d", c.WorkerConcurrency))
	}
	if c.PollInterval < 100*time.Millisecond {
		return NewValidationError("queue", "QUEUE_POLL_INTERVAL",
			fmt.Errorf("must be at least 100ms, got %s", c.PollInterval))
	}
	if c.PollIntervalJitter < 0 || c.PollIntervalJitter > c.PollInterval {
		return NewValidationError("queue", "QUEUE_POLL_JITTER",
			fmt.Errorf("must be between 0 and the poll interval, got %s", c.PollIntervalJitter))
	}
	if c.JobTimeout < time.Minute {
		return NewValidationError("queue", "QUEUE_JOB_TIMEOUT",
			fmt.Errorf("must be at least 1m, got %s", c.JobTimeout))
	}
	if c.OrphanThreshold < c.HeartbeatInterval*2 {
		return NewValidationError("queue", "ORPHAN_THRESHOLD",
			fmt.Errorf("must be at least twice the heartbeat interval (%s), got %s",
				c.HeartbeatInterval, c.OrphanThreshold))
	}
	return nil
}
