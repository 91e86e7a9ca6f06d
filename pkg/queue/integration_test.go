package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/queuejob"
	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/pkg/config"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/conductorhq/conductor/pkg/services"
	testdb "github.com/conductorhq/conductor/test/database"
)

// createPendingRun creates a coordinator run in pending status.
func createPendingRun(ctx context.Context, t *testing.T, client *ent.Client) *ent.Run {
	t.Helper()
	r, err := services.NewRunService(client).CreateCoordinator(ctx, models.CreateRunRequest{
		TenantID:  "acme",
		AgentID:   "conductor",
		UserID:    "user-1",
		ChannelID: "chan-1",
		InputText: "do the thing",
	})
	require.NoError(t, err)
	return r
}

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerConcurrency:  2,
		PollInterval:       50 * time.Millisecond,
		PollIntervalJitter: 0,
		DrainTimeout:       10 * time.Second,
		JobTimeout:         30 * time.Second,
		HeartbeatInterval:  30 * time.Second,
		OrphanScanInterval: time.Hour, // scans run manually in tests
		OrphanThreshold:    2 * time.Minute,
	}
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

// TestForUpdateSkipLockedClaiming tests that a worker claims a pending job
// atomically and that nothing is left for a second claim.
func TestForUpdateSkipLockedClaiming(t *testing.T) {
	client, q := newTestQueue(t)
	ctx := context.Background()

	id, err := q.Enqueue(ctx, QueueRuns, RunJob{Type: JobTypeRun, RunID: "run-1"})
	require.NoError(t, err)

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil, []string{QueueRuns})

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed, "worker should claim the pending job")
	assert.Equal(t, id, claimed.ID)
	assert.Equal(t, queuejob.StatusRunning, claimed.Status)
	assert.Equal(t, 1, claimed.Attempts, "attempts increment at claim time")
	require.NotNil(t, claimed.ClaimedBy)
	assert.Equal(t, "test-worker-0", *claimed.ClaimedBy)

	// Second claim should find nothing.
	claimed2, err := w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
	assert.Nil(t, claimed2)
}

// TestConcurrentClaimsDistinctJobs tests that concurrent workers never
// claim the same job.
func TestConcurrentClaimsDistinctJobs(t *testing.T) {
	client, q := newTestQueue(t)
	ctx := context.Background()

	jobIDs := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		id, err := q.Enqueue(ctx, QueueRuns, RunJob{Type: JobTypeRun, RunID: fmt.Sprintf("run-%d", i)})
		require.NoError(t, err)
		jobIDs[id] = struct{}{}
	}

	cfg := intTestQueueConfig()
	var mu sync.Mutex
	claimed := make([]string, 0, 5)
	errCh := make(chan error, 5)
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			w := NewWorker(fmt.Sprintf("worker-%d", workerID), "test-pod", client, cfg, nil, []string{QueueRuns})
			job, err := w.claimNextJob(ctx)
			if err != nil {
				errCh <- fmt.Errorf("worker-%d claim failed: %w", workerID, err)
				return
			}
			mu.Lock()
			claimed = append(claimed, job.ID)
			mu.Unlock()
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	require.Len(t, claimed, 5, "all 5 jobs should be claimed")

	seen := make(map[string]struct{})
	for _, id := range claimed {
		_, dup := seen[id]
		assert.False(t, dup, "job %s claimed by multiple workers", id)
		seen[id] = struct{}{}
		_, ok := jobIDs[id]
		assert.True(t, ok, "claimed job %s was not in original set", id)
	}
}

// TestPoolEndToEnd tests the full worker pool lifecycle with counting
// handlers on two queues.
func TestPoolEndToEnd(t *testing.T) {
	client, q := newTestQueue(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := q.Enqueue(ctx, QueueRuns, RunJob{Type: JobTypeRun, RunID: fmt.Sprintf("run-%d", i)})
		require.NoError(t, err)
	}
	require.NoError(t, q.EnqueueDeliveryAck(ctx, "msg-1", "delivered", ""))

	var runJobs, ackJobs atomic.Int64
	pool := NewWorkerPool("test-pod", client, intTestQueueConfig(), q)
	pool.Register(QueueRuns, func(ctx context.Context, job *ent.QueueJob) error {
		runJobs.Add(1)
		return nil
	})
	pool.Register(QueueDeliveryAcks, func(ctx context.Context, job *ent.QueueJob) error {
		ackJobs.Add(1)
		return nil
	})

	require.NoError(t, pool.Start(ctx))

	awaitCondition(t, 10*time.Second, 50*time.Millisecond,
		"waiting for all jobs to be processed",
		func() bool { return runJobs.Load() >= 3 && ackJobs.Load() >= 1 })

	pool.Stop()

	completed, err := client.QueueJob.Query().
		Where(queuejob.StatusEQ(queuejob.StatusCompleted)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, completed, "all jobs should be completed")

	health := pool.Health()
	assert.Equal(t, 2, health.TotalWorkers)
	assert.True(t, health.DBReachable)
}

func TestPoolStartRequiresHandlers(t *testing.T) {
	client, q := newTestQueue(t)

	pool := NewWorkerPool("test-pod", client, intTestQueueConfig(), q)
	err := pool.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no queue handlers registered")
}

func TestPoolStartTwiceIsNoOp(t *testing.T) {
	client, q := newTestQueue(t)
	ctx := context.Background()

	pool := NewWorkerPool("test-pod", client, intTestQueueConfig(), q)
	pool.Register(QueueRuns, func(ctx context.Context, job *ent.QueueJob) error { return nil })

	require.NoError(t, pool.Start(ctx))
	require.NoError(t, pool.Start(ctx))
	assert.Len(t, pool.workers, intTestQueueConfig().WorkerConcurrency,
		"duplicate Start must not spawn extra workers")

	pool.Stop()
	assert.NotPanics(t, func() { pool.Stop() })
}

// TestPoolHealthReportsQueueDepths tests pending-job depth reporting.
func TestPoolHealthReportsQueueDepths(t *testing.T) {
	client, q := newTestQueue(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := q.Enqueue(ctx, QueueRuns, RunJob{Type: JobTypeRun, RunID: fmt.Sprintf("run-%d", i)})
		require.NoError(t, err)
	}
	require.NoError(t, q.EnqueueMemoryWrite(ctx, "ctx-1", "user-1", MemoryWriteModeClose, 0))

	pool := NewWorkerPool("test-pod", client, intTestQueueConfig(), q)

	health := pool.Health()
	assert.Equal(t, 3, health.QueueDepths[QueueRuns])
	assert.Equal(t, 1, health.QueueDepths[QueueMemoryWrites])
	assert.False(t, health.IsHealthy, "pool without workers is not healthy")
	assert.Equal(t, "test-pod", health.PodID)
}

// TestOrphanScanRecoversStaleRun tests that a running run with a stale
// heartbeat goes back to pending with a fresh run job.
func TestOrphanScanRecoversStaleRun(t *testing.T) {
	client, q := newTestQueue(t)
	ctx := context.Background()

	r := createPendingRun(ctx, t, client)

	// Simulate a crashed pod: running, claimed, heartbeat long gone.
	staleBeat := time.Now().Add(-10 * time.Minute)
	err := client.Run.UpdateOneID(r.ID).
		SetStatus(run.StatusRunning).
		SetClaimedBy("crashed-pod-worker-0").
		SetLastHeartbeatAt(staleBeat).
		Exec(ctx)
	require.NoError(t, err)

	pool := NewWorkerPool("test-pod", client, intTestQueueConfig(), q)
	require.NoError(t, pool.scanForOrphans(ctx))

	updated, err := client.Run.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusPending, updated.Status)
	assert.Nil(t, updated.ClaimedBy)

	// A fresh run job exists for the recovered run.
	jobs, err := client.QueueJob.Query().
		Where(queuejob.QueueEQ(QueueRuns), queuejob.StatusEQ(queuejob.StatusPending)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	var payload RunJob
	require.NoError(t, json.Unmarshal(jobs[0].Payload, &payload))
	assert.Equal(t, r.ID, payload.RunID)

	pool.orphans.mu.Lock()
	assert.Equal(t, 1, pool.orphans.orphansRecovered)
	pool.orphans.mu.Unlock()
}

// TestOrphanScanSparesHealthyRuns tests that a fresh heartbeat protects a
// running run from the scan.
func TestOrphanScanSparesHealthyRuns(t *testing.T) {
	client, q := newTestQueue(t)
	ctx := context.Background()

	r := createPendingRun(ctx, t, client)

	runs := services.NewRunService(client)
	_, err := runs.ClaimRun(ctx, r.ID, "live-pod-worker-0")
	require.NoError(t, err)

	pool := NewWorkerPool("test-pod", client, intTestQueueConfig(), q)
	require.NoError(t, pool.scanForOrphans(ctx))

	updated, err := client.Run.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusRunning, updated.Status, "live run must not be reset")
}

// TestOrphanScanWakesOverdueWaitingRun tests the safety net for lost wake
// jobs.
func TestOrphanScanWakesOverdueWaitingRun(t *testing.T) {
	client, q := newTestQueue(t)
	ctx := context.Background()

	r := createPendingRun(ctx, t, client)

	runs := services.NewRunService(client)
	_, err := runs.ClaimRun(ctx, r.ID, "test-pod-worker-0")
	require.NoError(t, err)

	wakeAt := time.Now().Add(-time.Minute)
	require.NoError(t, runs.MarkWaiting(ctx, r.ID, &wakeAt, "timer"))

	pool := NewWorkerPool("test-pod", client, intTestQueueConfig(), q)
	require.NoError(t, pool.scanForOrphans(ctx))

	updated, err := client.Run.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusPending, updated.Status)
	assert.Nil(t, updated.WakeAt)

	count, err := client.QueueJob.Query().Where(queuejob.QueueEQ(QueueRuns)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "woken run should have a fresh run job")
}

// TestOrphanScanFailsStaleJobs tests that running jobs with no worker
// activity past the job timeout are failed.
func TestOrphanScanFailsStaleJobs(t *testing.T) {
	client, q := newTestQueue(t)
	ctx := context.Background()

	cfg := intTestQueueConfig()
	staleCutoff := time.Now().Add(-(cfg.JobTimeout + cfg.OrphanThreshold + time.Minute))

	staleJob, err := client.QueueJob.Create().
		SetID("stale-job").
		SetQueue(QueueRuns).
		SetPayload(json.RawMessage(`{}`)).
		SetStatus(queuejob.StatusRunning).
		SetUpdatedAt(staleCutoff).
		Save(ctx)
	require.NoError(t, err)

	freshJob, err := client.QueueJob.Create().
		SetID("fresh-job").
		SetQueue(QueueRuns).
		SetPayload(json.RawMessage(`{}`)).
		SetStatus(queuejob.StatusRunning).
		Save(ctx)
	require.NoError(t, err)

	pool := NewWorkerPool("test-pod", client, cfg, q)
	require.NoError(t, pool.scanForOrphans(ctx))

	updated, err := client.QueueJob.Get(ctx, staleJob.ID)
	require.NoError(t, err)
	assert.Equal(t, queuejob.StatusFailed, updated.Status)
	require.NotNil(t, updated.LastError)
	assert.Contains(t, *updated.LastError, "orphaned")

	untouched, err := client.QueueJob.Get(ctx, freshJob.ID)
	require.NoError(t, err)
	assert.Equal(t, queuejob.StatusRunning, untouched.Status)
}

// TestCleanupStartupOrphans tests the one-time recovery of work a pod
// held before its restart.
func TestCleanupStartupOrphans(t *testing.T) {
	client, q := newTestQueue(t)
	ctx := context.Background()

	podID := "restart-pod"

	// A run this pod was executing before the crash.
	r := createPendingRun(ctx, t, client)
	err := client.Run.UpdateOneID(r.ID).
		SetStatus(run.StatusRunning).
		SetClaimedBy(podID + "-worker-1").
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	// A run owned by another pod must be untouched.
	other := createPendingRun(ctx, t, client)
	err = client.Run.UpdateOneID(other.ID).
		SetStatus(run.StatusRunning).
		SetClaimedBy("other-pod-worker-0").
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	// One job with retry budget left, one exhausted.
	retryable, err := client.QueueJob.Create().
		SetID("retryable-job").
		SetQueue(QueueMemoryWrites).
		SetPayload(json.RawMessage(`{}`)).
		SetStatus(queuejob.StatusRunning).
		SetClaimedBy(podID + "-worker-0").
		SetAttempts(1).
		Save(ctx)
	require.NoError(t, err)

	exhausted, err := client.QueueJob.Create().
		SetID("exhausted-job").
		SetQueue(QueueMemoryWrites).
		SetPayload(json.RawMessage(`{}`)).
		SetStatus(queuejob.StatusRunning).
		SetClaimedBy(podID + "-worker-2").
		SetAttempts(3).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, CleanupStartupOrphans(ctx, client, q, podID))

	// The crashed pod's run is pending again with a fresh job.
	recovered, err := client.Run.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusPending, recovered.Status)

	runJobs, err := client.QueueJob.Query().
		Where(queuejob.QueueEQ(QueueRuns), queuejob.StatusEQ(queuejob.StatusPending)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, runJobs)

	otherRun, err := client.Run.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusRunning, otherRun.Status, "other pod's run should be untouched")

	// Jobs: budget left goes back to pending, exhausted fails.
	j1, err := client.QueueJob.Get(ctx, retryable.ID)
	require.NoError(t, err)
	assert.Equal(t, queuejob.StatusPending, j1.Status)
	assert.Nil(t, j1.ClaimedBy)

	j2, err := client.QueueJob.Get(ctx, exhausted.ID)
	require.NoError(t, err)
	assert.Equal(t, queuejob.StatusFailed, j2.Status)
}

// TestMultiReplicaClaimArbitration tests SKIP LOCKED across independent
// connection pools sharing one schema.
func TestMultiReplicaClaimArbitration(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	clientA := shared.NewClient(t)
	clientB := shared.NewClient(t)
	ctx := context.Background()

	q := New(clientA.Client)
	for i := 0; i < 4; i++ {
		_, err := q.Enqueue(ctx, QueueRuns, RunJob{Type: JobTypeRun, RunID: fmt.Sprintf("run-%d", i)})
		require.NoError(t, err)
	}

	cfg := intTestQueueConfig()
	workerA := NewWorker("pod-a-worker-0", "pod-a", clientA.Client, cfg, nil, []string{QueueRuns})
	workerB := NewWorker("pod-b-worker-0", "pod-b", clientB.Client, cfg, nil, []string{QueueRuns})

	claimed := make(map[string]int)
	for i := 0; i < 2; i++ {
		jobA, err := workerA.claimNextJob(ctx)
		require.NoError(t, err)
		claimed[jobA.ID]++

		jobB, err := workerB.claimNextJob(ctx)
		require.NoError(t, err)
		claimed[jobB.ID]++
	}

	assert.Len(t, claimed, 4, "each job claimed exactly once across replicas")
	for id, n := range claimed {
		assert.Equal(t, 1, n, "job %s claimed %d times", id, n)
	}
}
