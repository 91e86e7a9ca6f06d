package scheduler

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/queuejob"
	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/pkg/config"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/conductorhq/conductor/pkg/queue"
	testdb "github.com/conductorhq/conductor/test/database"
)

// newDispatcher builds a dispatcher whose loop never ticks on its own;
// tests drive scans directly.
func newDispatcher(t *testing.T) (*Dispatcher, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t).Client
	cfg := &config.SchedulerConfig{
		TriggerScanInterval: time.Hour,
		TriggerBatchSize:    50,
	}
	return NewDispatcher(cfg, client, queue.New(client)), client
}

// parkRun creates a coordinator and parks it waiting with the given
// deadline, the state a run sleeps or awaits subagents in.
func parkRun(t *testing.T, d *Dispatcher, wakeAt *time.Time, reason string) *ent.Run {
	t.Helper()
	ctx := context.Background()

	r, err := d.runs.CreateCoordinator(ctx, models.CreateRunRequest{
		TenantID:  "acme",
		AgentID:   "conductor",
		UserID:    "user-1",
		ChannelID: "ch-1",
		InputText: "wait for the report",
	})
	require.NoError(t, err)
	_, err = d.runs.ClaimRun(ctx, r.ID, "sched-test-pod")
	require.NoError(t, err)
	require.NoError(t, d.runs.MarkWaiting(ctx, r.ID, wakeAt, reason))
	return r
}

func queuedJobs(t *testing.T, client *ent.Client, queueName string) []*ent.QueueJob {
	t.Helper()
	jobs, err := client.QueueJob.Query().
		Where(queuejob.QueueEQ(queueName)).
		Order(ent.Asc(queuejob.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return jobs
}

func TestScanFiresDueRunWake(t *testing.T) {
	d, client := newDispatcher(t)
	ctx := context.Background()

	r := parkRun(t, d, nil, "waiting_for_subagents")
	tr, err := d.triggers.CreateRunWake(ctx, "conductor", r.ID, time.Now().Add(-time.Minute), "subagent_timeout")
	require.NoError(t, err)

	d.scan(ctx)

	wakes := queuedJobs(t, client, queue.QueueWake)
	require.Len(t, wakes, 1)
	var job queue.RunJob
	require.NoError(t, json.Unmarshal(wakes[0].Payload, &job))
	assert.Equal(t, r.ID, job.RunID)
	assert.Equal(t, "subagent_timeout", job.Reason)

	// One-shot wakes retire on first fire.
	got, err := client.Trigger.Get(ctx, tr.ID)
	require.NoError(t, err)
	assert.False(t, got.Enabled)
	assert.NotNil(t, got.LastFiredAt)

	// A later scan finds nothing due and enqueues nothing new.
	d.scan(ctx)
	assert.Len(t, queuedJobs(t, client, queue.QueueWake), 1)
}

func TestScanLeavesFutureTriggersAlone(t *testing.T) {
	d, client := newDispatcher(t)
	ctx := context.Background()

	r := parkRun(t, d, nil, "waiting_for_subagents")
	tr, err := d.triggers.CreateRunWake(ctx, "conductor", r.ID, time.Now().Add(time.Hour), "subagent_timeout")
	require.NoError(t, err)

	d.scan(ctx)

	assert.Empty(t, queuedJobs(t, client, queue.QueueWake))
	got, err := client.Trigger.Get(ctx, tr.ID)
	require.NoError(t, err)
	assert.True(t, got.Enabled)
}

func TestScanRetiresTriggerForMissingRun(t *testing.T) {
	d, client := newDispatcher(t)
	ctx := context.Background()

	tr, err := d.triggers.CreateRunWake(ctx, "conductor", "ghost-run", time.Now().Add(-time.Minute), "follow_up")
	require.NoError(t, err)

	d.scan(ctx)

	assert.Empty(t, queuedJobs(t, client, queue.QueueWake))
	got, err := client.Trigger.Get(ctx, tr.ID)
	require.NoError(t, err)
	assert.False(t, got.Enabled)
	assert.Nil(t, got.LastFiredAt)
}

func TestScanRetiresTriggerForTerminalRun(t *testing.T) {
	d, client := newDispatcher(t)
	ctx := context.Background()

	r, err := d.runs.CreateCoordinator(ctx, models.CreateRunRequest{
		TenantID:  "acme",
		AgentID:   "conductor",
		UserID:    "user-1",
		ChannelID: "ch-1",
		InputText: "already done",
	})
	require.NoError(t, err)
	_, err = d.runs.ClaimRun(ctx, r.ID, "sched-test-pod")
	require.NoError(t, err)

	tr, err := d.triggers.CreateRunWake(ctx, "conductor", r.ID, time.Now().Add(-time.Minute), "follow_up")
	require.NoError(t, err)
	require.NoError(t, d.runs.CompleteRun(ctx, r.ID, "finished before the wake"))

	d.scan(ctx)

	assert.Empty(t, queuedJobs(t, client, queue.QueueWake))
	got, err := client.Trigger.Get(ctx, tr.ID)
	require.NoError(t, err)
	assert.False(t, got.Enabled)
}

func TestScanAdvancesAgentLevelCron(t *testing.T) {
	d, client := newDispatcher(t)
	ctx := context.Background()

	tr, err := d.triggers.CreateCron(ctx, "conductor", "* * * * *")
	require.NoError(t, err)
	require.NoError(t, client.Trigger.UpdateOneID(tr.ID).
		SetNextFireAt(time.Now().Add(-time.Minute)).
		Exec(ctx))

	d.scan(ctx)

	// No run target, so nothing is enqueued; the schedule still advances
	// so the scan does not pick it up again immediately.
	assert.Empty(t, queuedJobs(t, client, queue.QueueWake))
	got, err := client.Trigger.Get(ctx, tr.ID)
	require.NoError(t, err)
	assert.True(t, got.Enabled)
	assert.True(t, got.NextFireAt.After(time.Now()))
	assert.NotNil(t, got.LastFiredAt)
}

func TestScanWakesRunPastDeadline(t *testing.T) {
	d, client := newDispatcher(t)
	ctx := context.Background()

	wakeAt := time.Now().Add(-time.Minute)
	r := parkRun(t, d, &wakeAt, "sleep_until")

	d.scan(ctx)

	status, err := d.runs.RefreshStatus(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusPending, status)

	jobs := queuedJobs(t, client, queue.QueueRuns)
	require.Len(t, jobs, 1)
	var job queue.RunJob
	require.NoError(t, json.Unmarshal(jobs[0].Payload, &job))
	assert.Equal(t, r.ID, job.RunID)

	// The run is no longer waiting, so a second scan is a no-op.
	d.scan(ctx)
	assert.Len(t, queuedJobs(t, client, queue.QueueRuns), 1)
}

func TestStartStopLifecycle(t *testing.T) {
	d, _ := newDispatcher(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d.Start(ctx)
	d.Start(ctx) // second start is a no-op
	d.Stop()
}
