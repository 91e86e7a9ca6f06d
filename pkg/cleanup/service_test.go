package cleanup

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/message"
	"github.com/conductorhq/conductor/ent/queuejob"
	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/ent/runstep"
	"github.com/conductorhq/conductor/ent/trigger"
	"github.com/conductorhq/conductor/pkg/config"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/conductorhq/conductor/pkg/queue"
	testdb "github.com/conductorhq/conductor/test/database"
)

func setupService(t *testing.T) (*ent.Client, *Service) {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	cfg := &config.RetentionConfig{
		RunRetentionDays: 90,
		JobTTL:           24 * time.Hour,
		CleanupInterval:  time.Hour,
	}
	return dbClient.Client, NewService(cfg, dbClient.Client, queue.New(dbClient.Client))
}

// createRun inserts a coordinator run with the given status and age.
func createRun(ctx context.Context, t *testing.T, client *ent.Client, status run.Status, createdAt time.Time) *ent.Run {
	t.Helper()
	id := uuid.New().String()
	r, err := client.Run.Create().
		SetID(id).
		SetTenantID("acme").
		SetAgentID("conductor").
		SetUserID("user-1").
		SetChannelID("chan-1").
		SetRootRunID(id).
		SetKind(run.KindCoordinator).
		SetInputText("hello").
		SetInput(models.RunInput{AllowSubagents: true}).
		SetStatus(status).
		SetCreatedAt(createdAt).
		Save(ctx)
	require.NoError(t, err)
	return r
}

func TestService_DeletesOldTerminalRunsWithSteps(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	old := createRun(ctx, t, client, run.StatusCompleted, time.Now().AddDate(0, 0, -120))
	_, err := client.RunStep.Create().
		SetID(uuid.New().String()).
		SetRunID(old.ID).
		SetSeq(1).
		SetType(runstep.TypeMessage).
		SetResult(map[string]interface{}{"event": "run_completed"}).
		SetIdempotencyKey(old.ID + ":1").
		Save(ctx)
	require.NoError(t, err)

	// A subagent under the old coordinator goes with it via cascade.
	child, err := client.Run.Create().
		SetID(uuid.New().String()).
		SetTenantID("acme").
		SetAgentID("conductor").
		SetUserID("user-1").
		SetChannelID("chan-1").
		SetRootRunID(old.ID).
		SetParentRunID(old.ID).
		SetKind(run.KindSubagent).
		SetInputText("subtask").
		SetInput(models.RunInput{AgentLevel: 1}).
		SetStatus(run.StatusCompleted).
		SetCreatedAt(time.Now().AddDate(0, 0, -120)).
		Save(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	_, err = client.Run.Get(ctx, old.ID)
	assert.True(t, ent.IsNotFound(err), "old terminal coordinator should be deleted")
	_, err = client.Run.Get(ctx, child.ID)
	assert.True(t, ent.IsNotFound(err), "descendants should cascade")

	steps, err := client.RunStep.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, steps, "steps should cascade")
}

func TestService_PreservesRecentAndActiveRuns(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	recent := createRun(ctx, t, client, run.StatusCompleted, time.Now().AddDate(0, 0, -5))
	oldButActive := createRun(ctx, t, client, run.StatusWaiting, time.Now().AddDate(0, 0, -120))

	svc.runAll(ctx)

	_, err := client.Run.Get(ctx, recent.ID)
	assert.NoError(t, err, "recent terminal run is inside the retention window")
	_, err = client.Run.Get(ctx, oldButActive.ID)
	assert.NoError(t, err, "non-terminal runs are never deleted, however old")
}

func TestService_DeletesOldMessages(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	mkMessage := func(createdAt time.Time) string {
		m, err := client.Message.Create().
			SetID(uuid.New().String()).
			SetUserID("user-1").
			SetChannelID("chan-1").
			SetContent("hi").
			SetDirection(message.DirectionInbound).
			SetCreatedAt(createdAt).
			Save(ctx)
		require.NoError(t, err)
		return m.ID
	}

	oldMsg := mkMessage(time.Now().AddDate(0, 0, -120))
	recentMsg := mkMessage(time.Now())

	svc.runAll(ctx)

	_, err := client.Message.Get(ctx, oldMsg)
	assert.True(t, ent.IsNotFound(err))
	_, err = client.Message.Get(ctx, recentMsg)
	assert.NoError(t, err)
}

func TestService_DeletesExpiredJobs(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	expired, err := client.QueueJob.Create().
		SetID("expired").
		SetQueue(queue.QueueRuns).
		SetPayload(json.RawMessage(`{}`)).
		SetStatus(queuejob.StatusCompleted).
		SetUpdatedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	pending, err := client.QueueJob.Create().
		SetID("pending").
		SetQueue(queue.QueueRuns).
		SetPayload(json.RawMessage(`{}`)).
		SetUpdatedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	_, err = client.QueueJob.Get(ctx, expired.ID)
	assert.True(t, ent.IsNotFound(err))
	_, err = client.QueueJob.Get(ctx, pending.ID)
	assert.NoError(t, err, "pending jobs outlive the TTL until they run")
}

func TestService_DeletesRetiredTriggers(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	mkTrigger := func(enabled bool, updatedAt time.Time) string {
		tr, err := client.Trigger.Create().
			SetID(uuid.New().String()).
			SetAgentID("conductor").
			SetType(trigger.TypeRunWake).
			SetSpec(models.TriggerSpec{RunID: "run-1"}).
			SetNextFireAt(time.Now()).
			SetEnabled(enabled).
			SetUpdatedAt(updatedAt).
			Save(ctx)
		require.NoError(t, err)
		return tr.ID
	}

	retired := mkTrigger(false, time.Now().Add(-48*time.Hour))
	active := mkTrigger(true, time.Now().Add(-48*time.Hour))
	freshRetired := mkTrigger(false, time.Now())

	svc.runAll(ctx)

	_, err := client.Trigger.Get(ctx, retired)
	assert.True(t, ent.IsNotFound(err))
	_, err = client.Trigger.Get(ctx, active)
	assert.NoError(t, err, "enabled triggers are live state, not debris")
	_, err = client.Trigger.Get(ctx, freshRetired)
	assert.NoError(t, err, "recently retired triggers are kept for debugging")
}

func TestService_StartStop(t *testing.T) {
	_, svc := setupService(t)

	svc.Start(context.Background())
	assert.NotPanics(t, func() { svc.Stop() })
}
