package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/queuejob"
	"github.com/conductorhq/conductor/pkg/config"
)

func TestRetryBackoffCurve(t *testing.T) {
	tests := []struct {
		attempts int
		want     time.Duration
	}{
		{1, 10 * time.Second},
		{2, 40 * time.Second},
		{3, 90 * time.Second},
		{4, 160 * time.Second},
		{10, 5 * time.Minute}, // capped
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, retryBackoff(tt.attempts), "attempts=%d", tt.attempts)
	}
}

func TestPollIntervalStaysWithinJitterBounds(t *testing.T) {
	w := NewWorker("w-0", "pod", nil, &config.QueueConfig{
		PollInterval:       time.Second,
		PollIntervalJitter: 200 * time.Millisecond,
	}, nil, nil)

	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 800*time.Millisecond)
		assert.LessOrEqual(t, d, 1200*time.Millisecond)
	}

	// Zero jitter returns the base interval exactly.
	w.config.PollIntervalJitter = 0
	assert.Equal(t, time.Second, w.pollInterval())
}

func TestWorkerStopIsIdempotent(t *testing.T) {
	w := NewWorker("w-0", "pod", nil, unitTestQueueConfig(), nil, nil)
	w.Start(context.Background())

	w.Stop()
	assert.NotPanics(t, func() { w.Stop() })
}

func TestWorkerHealthTracksCurrentJob(t *testing.T) {
	w := NewWorker("w-0", "pod", nil, unitTestQueueConfig(), nil, nil)

	h := w.Health()
	assert.Equal(t, "w-0", h.ID)
	assert.Equal(t, string(WorkerStatusIdle), h.Status)
	assert.Empty(t, h.CurrentJobID)

	w.setStatus(WorkerStatusWorking, &ent.QueueJob{ID: "job-1", Queue: QueueRuns})
	h = w.Health()
	assert.Equal(t, string(WorkerStatusWorking), h.Status)
	assert.Equal(t, "job-1", h.CurrentJobID)
	assert.Equal(t, QueueRuns, h.CurrentQueue)

	w.setStatus(WorkerStatusIdle, nil)
	h = w.Health()
	assert.Empty(t, h.CurrentJobID)
	assert.Empty(t, h.CurrentQueue)
}

// unitTestQueueConfig returns a queue config for tests that never touch
// the database.
func unitTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerConcurrency:  1,
		PollInterval:       20 * time.Millisecond,
		PollIntervalJitter: 0,
		DrainTimeout:       5 * time.Second,
		JobTimeout:         time.Minute,
		HeartbeatInterval:  time.Minute,
		OrphanScanInterval: time.Hour,
		OrphanThreshold:    5 * time.Minute,
	}
}

func TestWorkerCompletesJobAndClearsError(t *testing.T) {
	client, q := newTestQueue(t)
	ctx := context.Background()

	id, err := q.Enqueue(ctx, QueueRuns, RunJob{Type: JobTypeRun, RunID: "run-1"})
	require.NoError(t, err)

	// Simulate a previous failed attempt leaving an error behind.
	err = client.QueueJob.UpdateOneID(id).SetLastError("previous failure").Exec(ctx)
	require.NoError(t, err)

	handled := 0
	handlers := map[string]Handler{
		QueueRuns: func(ctx context.Context, job *ent.QueueJob) error {
			handled++
			return nil
		},
	}
	w := NewWorker("w-0", "pod", client, unitTestQueueConfig(), handlers, []string{QueueRuns})

	require.NoError(t, w.pollAndProcess(ctx))
	assert.Equal(t, 1, handled)

	job, err := client.QueueJob.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, queuejob.StatusCompleted, job.Status)
	assert.Equal(t, 1, job.Attempts)
	assert.Nil(t, job.LastError, "success should clear the stale error")
	require.NotNil(t, job.ClaimedBy)
	assert.Equal(t, "w-0", *job.ClaimedBy)

	assert.Equal(t, 1, w.Health().JobsProcessed)
}

func TestWorkerRetriesWithBackoffThenFailsPermanently(t *testing.T) {
	client, q := newTestQueue(t)
	ctx := context.Background()

	id, err := q.Enqueue(ctx, QueueRuns, RunJob{Type: JobTypeRun, RunID: "run-1"}, WithMaxAttempts(2))
	require.NoError(t, err)

	boom := errors.New("handler exploded")
	handlers := map[string]Handler{
		QueueRuns: func(ctx context.Context, job *ent.QueueJob) error { return boom },
	}
	w := NewWorker("w-0", "pod", client, unitTestQueueConfig(), handlers, []string{QueueRuns})

	// First attempt: re-enqueued with backoff.
	require.NoError(t, w.pollAndProcess(ctx))

	job, err := client.QueueJob.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, queuejob.StatusPending, job.Status)
	assert.Equal(t, 1, job.Attempts)
	require.NotNil(t, job.LastError)
	assert.Contains(t, *job.LastError, "handler exploded")
	assert.True(t, job.RunAt.After(time.Now()), "retry should be delayed")
	assert.Nil(t, job.ClaimedBy, "retry releases the claim")

	// The backoff hides the job from the next poll.
	_, err = w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)

	// Pull the retry forward and exhaust the budget.
	err = client.QueueJob.UpdateOneID(id).SetRunAt(time.Now().Add(-time.Second)).Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, w.pollAndProcess(ctx))

	job, err = client.QueueJob.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, queuejob.StatusFailed, job.Status)
	assert.Equal(t, 2, job.Attempts)
}

func TestWorkerFailsJobWithoutHandler(t *testing.T) {
	client, q := newTestQueue(t)
	ctx := context.Background()

	id, err := q.Enqueue(ctx, QueueMessages, DeliveryJob{Type: JobTypeDelivery, MessageID: "msg-1"})
	require.NoError(t, err)

	// Worker polls the messages queue but only handles runs.
	handlers := map[string]Handler{
		QueueRuns: func(ctx context.Context, job *ent.QueueJob) error { return nil },
	}
	w := NewWorker("w-0", "pod", client, unitTestQueueConfig(), handlers, []string{QueueRuns, QueueMessages})

	require.NoError(t, w.pollAndProcess(ctx))

	job, err := client.QueueJob.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, queuejob.StatusFailed, job.Status, "no retry budget for a queue nothing handles")
	require.NotNil(t, job.LastError)
	assert.Contains(t, *job.LastError, "no handler registered")
}

func TestWorkerOrdersJobsByRunAt(t *testing.T) {
	client, q := newTestQueue(t)
	ctx := context.Background()

	late, err := q.Enqueue(ctx, QueueRuns, RunJob{Type: JobTypeRun, RunID: "late"},
		WithRunAt(time.Now().Add(-time.Minute)))
	require.NoError(t, err)
	early, err := q.Enqueue(ctx, QueueRuns, RunJob{Type: JobTypeRun, RunID: "early"},
		WithRunAt(time.Now().Add(-time.Hour)))
	require.NoError(t, err)

	w := NewWorker("w-0", "pod", client, unitTestQueueConfig(), nil, []string{QueueRuns})

	first, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, early, first.ID, "oldest run_at should be claimed first")

	second, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, late, second.ID)
}
