package queue

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/queuejob"
	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/conductorhq/conductor/pkg/services"
)

// wakeJob builds a claimed wake-queue job row for handler tests.
func wakeJob(ctx context.Context, t *testing.T, client *ent.Client, payload RunJob) *ent.QueueJob {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	job, err := client.QueueJob.Create().
		SetID("wake-" + payload.RunID + "-" + payload.Reason).
		SetQueue(QueueWake).
		SetPayload(raw).
		SetStatus(queuejob.StatusRunning).
		Save(ctx)
	require.NoError(t, err)
	return job
}

func TestWakeHandlerWakesWaitingRun(t *testing.T) {
	client, q := newTestQueue(t)
	ctx := context.Background()

	r := createPendingRun(ctx, t, client)
	runs := services.NewRunService(client)
	_, err := runs.ClaimRun(ctx, r.ID, "pod-worker-0")
	require.NoError(t, err)
	require.NoError(t, runs.MarkWaiting(ctx, r.ID, nil, "user_message"))

	handler := NewWakeHandler(client, q)
	job := wakeJob(ctx, t, client, RunJob{Type: JobTypeRun, RunID: r.ID, TenantID: "acme", AgentID: "conductor", Reason: "user_message"})

	require.NoError(t, handler(ctx, job))

	updated, err := client.Run.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusPending, updated.Status)
	assert.Nil(t, updated.WakeReason)

	// The wake must chain into a fresh run job.
	runJobs, err := client.QueueJob.Query().
		Where(queuejob.QueueEQ(QueueRuns), queuejob.StatusEQ(queuejob.StatusPending)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, runJobs, 1)

	var payload RunJob
	require.NoError(t, json.Unmarshal(runJobs[0].Payload, &payload))
	assert.Equal(t, r.ID, payload.RunID)
}

func TestWakeHandlerReenqueuesPendingRun(t *testing.T) {
	client, q := newTestQueue(t)
	ctx := context.Background()

	// A pending run with no run job: the original enqueue was lost.
	r := createPendingRun(ctx, t, client)

	handler := NewWakeHandler(client, q)
	job := wakeJob(ctx, t, client, RunJob{Type: JobTypeRun, RunID: r.ID, TenantID: "acme", AgentID: "conductor", Reason: "user_message"})

	require.NoError(t, handler(ctx, job))

	count, err := client.QueueJob.Query().
		Where(queuejob.QueueEQ(QueueRuns), queuejob.StatusEQ(queuejob.StatusPending)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "wake on a jobless pending run should restore the run job")
}

func TestWakeHandlerNoOpOnTerminalRun(t *testing.T) {
	client, q := newTestQueue(t)
	ctx := context.Background()

	r := createPendingRun(ctx, t, client)
	runs := services.NewRunService(client)
	_, err := runs.ClaimRun(ctx, r.ID, "pod-worker-0")
	require.NoError(t, err)
	require.NoError(t, runs.CompleteRun(ctx, r.ID, "done"))

	handler := NewWakeHandler(client, q)
	job := wakeJob(ctx, t, client, RunJob{Type: JobTypeRun, RunID: r.ID, Reason: "timer"})

	require.NoError(t, handler(ctx, job))

	count, err := client.QueueJob.Query().Where(queuejob.QueueEQ(QueueRuns)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "terminal runs must not be re-enqueued")
}

func TestWakeHandlerIgnoresUnknownRun(t *testing.T) {
	client, q := newTestQueue(t)
	ctx := context.Background()

	handler := NewWakeHandler(client, q)
	job := wakeJob(ctx, t, client, RunJob{Type: JobTypeRun, RunID: "no-such-run", Reason: "timer"})

	assert.NoError(t, handler(ctx, job), "wake for a deleted run is not a job failure")
}

func TestWakeHandlerRejectsMalformedPayload(t *testing.T) {
	client, q := newTestQueue(t)
	ctx := context.Background()

	handler := NewWakeHandler(client, q)

	job, err := client.QueueJob.Create().
		SetID("bad-wake").
		SetQueue(QueueWake).
		SetPayload(json.RawMessage(`{"runId": ""}`)).
		SetStatus(queuejob.StatusRunning).
		Save(ctx)
	require.NoError(t, err)

	assert.Error(t, handler(ctx, job))
}

// scriptedMemoryWriter records Write calls for handler tests.
type scriptedMemoryWriter struct {
	mu    sync.Mutex
	calls []MemoryWriteJob
	err   error
}

func (s *scriptedMemoryWriter) Write(ctx context.Context, contextID, userID, mode string, segmentMessages int) (*models.MemoryWriteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, MemoryWriteJob{ContextID: contextID, UserID: userID, Mode: mode, SegmentMessages: segmentMessages})
	if s.err != nil {
		return nil, s.err
	}
	return &models.MemoryWriteResult{}, nil
}

func TestMemoryWriteHandlerDecodesPayload(t *testing.T) {
	writer := &scriptedMemoryWriter{}
	handler := NewMemoryWriteHandler(writer)

	raw, err := json.Marshal(MemoryWriteJob{
		Type:            JobTypeMemoryWrite,
		ContextID:       "ctx-1",
		UserID:          "user-1",
		Mode:            MemoryWriteModePeriodic,
		SegmentMessages: 12,
	})
	require.NoError(t, err)

	job := &ent.QueueJob{ID: "mw-1", Queue: QueueMemoryWrites, Payload: raw}
	require.NoError(t, handler(context.Background(), job))

	require.Len(t, writer.calls, 1)
	assert.Equal(t, "ctx-1", writer.calls[0].ContextID)
	assert.Equal(t, "user-1", writer.calls[0].UserID)
	assert.Equal(t, MemoryWriteModePeriodic, writer.calls[0].Mode)
	assert.Equal(t, 12, writer.calls[0].SegmentMessages)
}

func TestMemoryWriteHandlerRejectsIncompletePayload(t *testing.T) {
	writer := &scriptedMemoryWriter{}
	handler := NewMemoryWriteHandler(writer)

	job := &ent.QueueJob{ID: "mw-bad", Queue: QueueMemoryWrites, Payload: json.RawMessage(`{"contextId": "ctx-1"}`)}
	assert.Error(t, handler(context.Background(), job))
	assert.Empty(t, writer.calls)
}

// blockingExecutor holds ExecuteRun open until released.
type blockingExecutor struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingExecutor) ExecuteRun(ctx context.Context, runID string) error {
	close(b.started)
	select {
	case <-b.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TestRunHandlerKeepsHeartbeatFresh(t *testing.T) {
	client, _ := newTestQueue(t)
	ctx := context.Background()

	r := createPendingRun(ctx, t, client)
	runs := services.NewRunService(client)
	claimed, err := runs.ClaimRun(ctx, r.ID, "pod-worker-0")
	require.NoError(t, err)
	require.NotNil(t, claimed.LastHeartbeatAt)
	initialBeat := *claimed.LastHeartbeatAt

	cfg := intTestQueueConfig()
	cfg.HeartbeatInterval = 50 * time.Millisecond

	exec := &blockingExecutor{started: make(chan struct{}), release: make(chan struct{})}
	handler := NewRunHandler(client, cfg, exec)

	raw, err := json.Marshal(RunJob{Type: JobTypeRun, RunID: r.ID, TenantID: "acme", AgentID: "conductor"})
	require.NoError(t, err)
	job := &ent.QueueJob{ID: "run-job-1", Queue: QueueRuns, Payload: raw}

	errCh := make(chan error, 1)
	go func() { errCh <- handler(ctx, job) }()

	<-exec.started

	// Wait for at least one heartbeat tick to land.
	awaitCondition(t, 5*time.Second, 20*time.Millisecond,
		"waiting for heartbeat to advance",
		func() bool {
			cur, err := client.Run.Get(ctx, r.ID)
			require.NoError(t, err)
			return cur.LastHeartbeatAt != nil && cur.LastHeartbeatAt.After(initialBeat)
		})

	close(exec.release)
	require.NoError(t, <-errCh)
}

func TestRunHandlerRejectsMalformedPayload(t *testing.T) {
	client, _ := newTestQueue(t)

	handler := NewRunHandler(client, intTestQueueConfig(), &blockingExecutor{started: make(chan struct{}), release: make(chan struct{})})

	job := &ent.QueueJob{ID: "bad-run", Queue: QueueRuns, Payload: json.RawMessage(`{"runId": ""}`)}
	assert.Error(t, handler(context.Background(), job))
}
