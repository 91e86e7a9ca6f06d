package queue

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/queuejob"
	testdb "github.com/conductorhq/conductor/test/database"
)

// newTestQueue creates a queue over a fresh test schema.
func newTestQueue(t *testing.T) (*ent.Client, *Queue) {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	return dbClient.Client, New(dbClient.Client)
}

func TestEnqueueInsertsPendingJob(t *testing.T) {
	client, q := newTestQueue(t)
	ctx := context.Background()

	id, err := q.Enqueue(ctx, QueueRuns, RunJob{Type: JobTypeRun, RunID: "run-1", TenantID: "acme", AgentID: "conductor"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	job, err := client.QueueJob.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, QueueRuns, job.Queue)
	assert.Equal(t, queuejob.StatusPending, job.Status)
	assert.Equal(t, 0, job.Attempts)
	assert.Equal(t, 3, job.MaxAttempts)
	assert.Nil(t, job.ClaimedBy)

	var payload RunJob
	require.NoError(t, json.Unmarshal(job.Payload, &payload))
	assert.Equal(t, "run-1", payload.RunID)
	assert.Equal(t, "acme", payload.TenantID)
}

func TestEnqueueOptionsApply(t *testing.T) {
	client, q := newTestQueue(t)
	ctx := context.Background()

	runAt := time.Now().Add(time.Hour)
	id, err := q.Enqueue(ctx, QueueWake, RunJob{Type: JobTypeRun, RunID: "run-1"},
		WithRunAt(runAt), WithDedupeKey("wake:run-1:timer"), WithMaxAttempts(7))
	require.NoError(t, err)

	job, err := client.QueueJob.Get(ctx, id)
	require.NoError(t, err)
	assert.WithinDuration(t, runAt, job.RunAt, time.Second)
	require.NotNil(t, job.DedupeKey)
	assert.Equal(t, "wake:run-1:timer", *job.DedupeKey)
	assert.Equal(t, 7, job.MaxAttempts)
}

func TestDedupeKeySuppressesLiveDuplicates(t *testing.T) {
	client, q := newTestQueue(t)
	ctx := context.Background()

	first, err := q.Enqueue(ctx, QueueWake, RunJob{Type: JobTypeRun, RunID: "run-1"},
		WithDedupeKey("wake:run-1:user_message"))
	require.NoError(t, err)
	require.NotEmpty(t, first)

	// A second enqueue with the same key is silently dropped.
	dup, err := q.Enqueue(ctx, QueueWake, RunJob{Type: JobTypeRun, RunID: "run-1"},
		WithDedupeKey("wake:run-1:user_message"))
	require.NoError(t, err)
	assert.Empty(t, dup)

	count, err := client.QueueJob.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Once the holder goes terminal, the key is free again.
	err = client.QueueJob.UpdateOneID(first).SetStatus(queuejob.StatusCompleted).Exec(ctx)
	require.NoError(t, err)

	again, err := q.Enqueue(ctx, QueueWake, RunJob{Type: JobTypeRun, RunID: "run-1"},
		WithDedupeKey("wake:run-1:user_message"))
	require.NoError(t, err)
	assert.NotEmpty(t, again)
}

func TestEnqueueWakeKeysOnRunAndReason(t *testing.T) {
	client, q := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, q.EnqueueWake(ctx, "run-1", "acme", "conductor", "user_message", 0))
	require.NoError(t, q.EnqueueWake(ctx, "run-1", "acme", "conductor", "user_message", 0))
	require.NoError(t, q.EnqueueWake(ctx, "run-1", "acme", "conductor", "timer", time.Minute))

	count, err := client.QueueJob.Query().Where(queuejob.QueueEQ(QueueWake)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count, "same (run, reason) should collapse, distinct reasons should not")

	// The delayed wake carries its delay both in run_at and in the payload.
	timerJob, err := client.QueueJob.Query().
		Where(queuejob.DedupeKeyEQ("wake:run-1:timer")).
		Only(ctx)
	require.NoError(t, err)
	assert.True(t, timerJob.RunAt.After(time.Now().Add(30*time.Second)))

	var payload RunJob
	require.NoError(t, json.Unmarshal(timerJob.Payload, &payload))
	assert.Equal(t, 60, payload.DelaySeconds)
	assert.Equal(t, "timer", payload.Reason)
}

func TestEnqueueMemoryWriteDedupe(t *testing.T) {
	client, q := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, q.EnqueueMemoryWrite(ctx, "ctx-1", "user-1", MemoryWriteModeClose, 0))
	require.NoError(t, q.EnqueueMemoryWrite(ctx, "ctx-1", "user-1", MemoryWriteModeClose, 0))
	require.NoError(t, q.EnqueueMemoryWrite(ctx, "ctx-1", "user-1", MemoryWriteModePeriodic, 10))

	count, err := client.QueueJob.Query().Where(queuejob.QueueEQ(QueueMemoryWrites)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestEnqueueDeliveryDedupesOnMessage(t *testing.T) {
	client, q := newTestQueue(t)
	ctx := context.Background()

	payload := map[string]any{"content": "hello", "discordUserId": "123"}
	require.NoError(t, q.EnqueueDelivery(ctx, "discord", "msg-1", payload))
	require.NoError(t, q.EnqueueDelivery(ctx, "discord", "msg-1", payload))

	count, err := client.QueueJob.Query().Where(queuejob.QueueEQ(QueueMessages)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	job, err := client.QueueJob.Query().Where(queuejob.QueueEQ(QueueMessages)).Only(ctx)
	require.NoError(t, err)

	var dj DeliveryJob
	require.NoError(t, json.Unmarshal(job.Payload, &dj))
	assert.Equal(t, "discord", dj.Provider)
	assert.Equal(t, "msg-1", dj.MessageID)

	var inner map[string]any
	require.NoError(t, json.Unmarshal(dj.Payload, &inner))
	assert.Equal(t, "hello", inner["content"])
}

func TestDeleteOldJobsSparesLiveOnes(t *testing.T) {
	client, q := newTestQueue(t)
	ctx := context.Background()

	oldUpdate := time.Now().Add(-48 * time.Hour)

	mk := func(status queuejob.Status, updatedAt time.Time) string {
		job, err := client.QueueJob.Create().
			SetID("job-" + string(status) + updatedAt.Format("150405.000000")).
			SetQueue(QueueRuns).
			SetPayload(json.RawMessage(`{}`)).
			SetStatus(status).
			SetUpdatedAt(updatedAt).
			Save(ctx)
		require.NoError(t, err)
		return job.ID
	}

	oldCompleted := mk(queuejob.StatusCompleted, oldUpdate)
	oldFailed := mk(queuejob.StatusFailed, oldUpdate.Add(time.Second))
	oldPending := mk(queuejob.StatusPending, oldUpdate.Add(2*time.Second))
	freshCompleted := mk(queuejob.StatusCompleted, time.Now())

	deleted, err := q.DeleteOldJobs(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	_, err = client.QueueJob.Get(ctx, oldCompleted)
	assert.True(t, ent.IsNotFound(err))
	_, err = client.QueueJob.Get(ctx, oldFailed)
	assert.True(t, ent.IsNotFound(err))

	// Pending jobs are live regardless of age; fresh terminal jobs are
	// inside the retention window.
	_, err = client.QueueJob.Get(ctx, oldPending)
	assert.NoError(t, err)
	_, err = client.QueueJob.Get(ctx, freshCompleted)
	assert.NoError(t, err)
}
