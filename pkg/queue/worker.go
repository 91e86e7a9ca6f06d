package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/queuejob"
	"github.com/conductorhq/conductor/pkg/config"
)

// Worker is a single queue worker that polls for and processes jobs.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	handlers map[string]Handler
	queues   []string
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	currentQueue  string
	jobsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a new queue worker subscribed to the given queues.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, handlers map[string]Handler, queues []string) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		handlers:     handlers,
		queues:       queues,
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
	w.signalStop()
	w.wait()
}

// signalStop asks the worker to exit after its current job.
func (w *Worker) signalStop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

// wait blocks until the worker loop has exited.
func (w *Worker) wait() {
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		CurrentQueue:  w.currentQueue,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started", "queues", w.queues)

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
				if errors.Is(err, ErrNoJobsAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
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

// pollAndProcess claims the next visible job and runs its handler.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	job, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("job_id", job.ID, "queue", job.Queue, "worker_id", w.id, "attempt", job.Attempts)
	log.Info("Job claimed")

	w.setStatus(WorkerStatusWorking, job)
	defer w.setStatus(WorkerStatusIdle, nil)

	handler, ok := w.handlers[job.Queue]
	if !ok {
		// Nothing will ever process this queue on this pod; fail the job
		// so it does not spin through the retry budget.
		if err := w.markFailed(context.Background(), job, ErrNoHandler); err != nil {
			return err
		}
		log.Error("No handler registered, job failed")
		return nil
	}

	jobCtx, cancel := context.WithTimeout(ctx, w.config.JobTimeout)
	defer cancel()

	handlerErr := handler(jobCtx, job)

	if handlerErr == nil && jobCtx.Err() != nil {
		handlerErr = jobCtx.Err()
	}

	// Terminal bookkeeping uses a background context — the job ctx may be
	// cancelled or expired by now.
	if handlerErr != nil {
		if err := w.retryOrFail(context.Background(), job, handlerErr); err != nil {
			return err
		}
	} else {
		if err := w.markCompleted(context.Background(), job); err != nil {
			return err
		}
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	log.Info("Job processing complete", "success", handlerErr == nil)
	return nil
}

// claimNextJob atomically claims the next visible job using
// FOR UPDATE SKIP LOCKED, ordered by run_at then created_at.
func (w *Worker) claimNextJob(ctx context.Context) (*ent.QueueJob, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	job, err := tx.QueueJob.Query().
		Where(
			queuejob.QueueIn(w.queues...),
			queuejob.StatusEQ(queuejob.StatusPending),
			queuejob.RunAtLTE(time.Now()),
		).
		Order(ent.Asc(queuejob.FieldRunAt), ent.Asc(queuejob.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query pending job: %w", err)
	}

	job, err = job.Update().
		SetStatus(queuejob.StatusRunning).
		SetClaimedBy(w.id).
		SetAttempts(job.Attempts + 1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return job, nil
}

// markCompleted records a successful handler run.
func (w *Worker) markCompleted(ctx context.Context, job *ent.QueueJob) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := w.client.QueueJob.UpdateOneID(job.ID).
		SetStatus(queuejob.StatusCompleted).
		ClearLastError().
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to mark job completed: %w", err)
	}
	return nil
}

// retryOrFail re-enqueues the job with backoff, or fails it permanently
// once its attempts are exhausted.
func (w *Worker) retryOrFail(ctx context.Context, job *ent.QueueJob, handlerErr error) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if job.Attempts >= job.MaxAttempts {
		if err := w.markFailed(writeCtx, job, handlerErr); err != nil {
			return err
		}
		slog.Error("Job failed permanently",
			"job_id", job.ID, "queue", job.Queue,
			"attempts", job.Attempts, "error", handlerErr)
		return nil
	}

	backoff := retryBackoff(job.Attempts)
	err := w.client.QueueJob.UpdateOneID(job.ID).
		SetStatus(queuejob.StatusPending).
		SetRunAt(time.Now().Add(backoff)).
		SetLastError(handlerErr.Error()).
		ClearClaimedBy().
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to re-enqueue job: %w", err)
	}

	slog.Warn("Job re-enqueued with backoff",
		"job_id", job.ID, "queue", job.Queue,
		"attempt", job.Attempts, "backoff", backoff, "error", handlerErr)
	return nil
}

// markFailed writes the terminal failed status.
func (w *Worker) markFailed(ctx context.Context, job *ent.QueueJob, handlerErr error) error {
	err := w.client.QueueJob.UpdateOneID(job.ID).
		SetStatus(queuejob.StatusFailed).
		SetLastError(handlerErr.Error()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark job failed: %w", err)
	}
	return nil
}

// retryBackoff returns the delay before the next attempt: 10s, 40s, 90s,
// ... capped at 5 minutes.
func retryBackoff(attempts int) time.Duration {
	d := time.Duration(attempts*attempts) * 10 * time.Second
	if d > 5*time.Minute {
		d = 5 * time.Minute
	}
	return d
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
func (w *Worker) setStatus(status WorkerStatus, job *ent.QueueJob) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	if job != nil {
		w.currentJobID = job.ID
		w.currentQueue = job.Queue
	} else {
		w.currentJobID = ""
		w.currentQueue = ""
	}
	w.lastActivity = time.Now()
}
