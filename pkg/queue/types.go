// Package queue provides durable job queues on Postgres and the worker
// pool that drains them. Jobs are claimed with FOR UPDATE SKIP LOCKED,
// retried with backoff, and deduplicated by key while live.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/conductorhq/conductor/ent"
)

// Named queues. Every job belongs to exactly one.
const (
	// QueueRuns carries run execution jobs consumed by the engine.
	QueueRuns = "runs"

	// QueueWake carries wake jobs that flip waiting runs back to pending.
	QueueWake = "wake"

	// QueueMemoryWrites carries memory extraction jobs for closed or
	// rotated conversation segments.
	QueueMemoryWrites = "memory-writes"

	// QueueMessages carries outbound delivery jobs.
	QueueMessages = "messages"

	// QueueDeliveryAcks carries delivery status updates back onto the
	// message rows.
	QueueDeliveryAcks = "delivery-acks"
)

// AllQueues lists every queue a full worker pool subscribes to.
var AllQueues = []string{QueueRuns, QueueWake, QueueMemoryWrites, QueueMessages, QueueDeliveryAcks}

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no claimable jobs are visible on the
	// worker's subscribed queues.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrNoHandler indicates a job arrived on a queue with no registered
	// handler. The job is failed permanently.
	ErrNoHandler = errors.New("no handler registered for queue")
)

// Handler processes a single claimed job. Returning an error re-enqueues
// the job with backoff until its attempts are exhausted; returning nil
// marks it completed. Handlers must be idempotent — delivery is
// at-least-once.
type Handler func(ctx context.Context, job *ent.QueueJob) error

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	QueueDepths      map[string]int `json:"queue_depths"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	CurrentQueue  string    `json:"current_queue,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
