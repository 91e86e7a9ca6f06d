package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent/trigger"
	"github.com/conductorhq/conductor/pkg/models"
)

func TestCreateCronComputesNextTick(t *testing.T) {
	triggers := NewTriggerService(newTestClient(t))
	ctx := context.Background()

	created, err := triggers.CreateCron(ctx, "conductor", "*/5 * * * *")
	require.NoError(t, err)
	assert.Equal(t, trigger.TypeCron, created.Type)
	assert.Equal(t, "*/5 * * * *", created.Spec.Cron)
	assert.Empty(t, created.Spec.RunID)
	assert.True(t, created.Enabled)
	assert.True(t, created.NextFireAt.After(time.Now()), "next tick lies in the future")
	assert.Nil(t, created.LastFiredAt)

	var ve *ValidationError
	_, err = triggers.CreateCron(ctx, "", "*/5 * * * *")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "agent_id", ve.Field)

	_, err = triggers.CreateCron(ctx, "conductor", "every five minutes")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "cron", ve.Field)
}

func TestCreateRunWakeOneShot(t *testing.T) {
	triggers := NewTriggerService(newTestClient(t))
	ctx := context.Background()
	at := time.Now().Add(30 * time.Minute).UTC()

	created, err := triggers.CreateRunWake(ctx, "conductor", "run-1", at, models.WakeReasonSleep)
	require.NoError(t, err)
	assert.Equal(t, trigger.TypeRunWake, created.Type)
	assert.Equal(t, "run-1", created.Spec.RunID)
	assert.Equal(t, models.WakeReasonSleep, created.Spec.Reason)
	assert.WithinDuration(t, at, created.NextFireAt, time.Second)
	assert.True(t, created.Enabled)

	var ve *ValidationError
	_, err = triggers.CreateRunWake(ctx, "conductor", "", at, models.WakeReasonSleep)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "run_id", ve.Field)
}

func TestDueTriggersOrderAndHorizon(t *testing.T) {
	triggers := NewTriggerService(newTestClient(t))
	ctx := context.Background()
	now := time.Now()

	later, err := triggers.CreateRunWake(ctx, "conductor", "run-late", now.Add(-1*time.Minute), models.WakeReasonSleep)
	require.NoError(t, err)
	earlier, err := triggers.CreateRunWake(ctx, "conductor", "run-early", now.Add(-10*time.Minute), models.WakeReasonSleep)
	require.NoError(t, err)
	_, err = triggers.CreateRunWake(ctx, "conductor", "run-future", now.Add(time.Hour), models.WakeReasonSleep)
	require.NoError(t, err)

	due, err := triggers.DueTriggers(ctx, now, 10)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, earlier.ID, due[0].ID, "oldest deadline fires first")
	assert.Equal(t, later.ID, due[1].ID)

	limited, err := triggers.DueTriggers(ctx, now, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, earlier.ID, limited[0].ID)
}

func TestMarkFiredRetiresRunWakes(t *testing.T) {
	triggers := NewTriggerService(newTestClient(t))
	ctx := context.Background()

	tr, err := triggers.CreateRunWake(ctx, "conductor", "run-1", time.Now().Add(-time.Minute), models.WakeReasonSleep)
	require.NoError(t, err)

	fired, err := triggers.MarkFired(ctx, tr)
	require.NoError(t, err)
	assert.True(t, fired)

	listed, err := triggers.ListByAgent(ctx, "conductor")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.False(t, listed[0].Enabled, "one-shot wakes retire after firing")
	assert.NotNil(t, listed[0].LastFiredAt)

	// A replica holding the stale snapshot loses the conditional update.
	fired, err = triggers.MarkFired(ctx, tr)
	require.NoError(t, err)
	assert.False(t, fired)
}

func TestMarkFiredAdvancesCron(t *testing.T) {
	client := newTestClient(t)
	triggers := NewTriggerService(client)
	ctx := context.Background()

	tr, err := triggers.CreateCron(ctx, "conductor", "* * * * *")
	require.NoError(t, err)

	// Make the trigger due, as the dispatcher would find it.
	past := time.Now().Add(-time.Minute)
	require.NoError(t, client.Trigger.UpdateOneID(tr.ID).SetNextFireAt(past).Exec(ctx))
	tr, err = client.Trigger.Get(ctx, tr.ID)
	require.NoError(t, err)

	fired, err := triggers.MarkFired(ctx, tr)
	require.NoError(t, err)
	assert.True(t, fired)

	advanced, err := client.Trigger.Get(ctx, tr.ID)
	require.NoError(t, err)
	assert.True(t, advanced.Enabled, "cron triggers keep recurring")
	assert.True(t, advanced.NextFireAt.After(time.Now()))
	require.NotNil(t, advanced.LastFiredAt)
}

func TestMarkFiredRetiresUnparseableCron(t *testing.T) {
	client := newTestClient(t)
	triggers := NewTriggerService(client)
	ctx := context.Background()

	tr, err := triggers.CreateCron(ctx, "conductor", "* * * * *")
	require.NoError(t, err)

	// Simulate a spec edit that broke the expression after creation.
	require.NoError(t, client.Trigger.UpdateOneID(tr.ID).
		SetSpec(models.TriggerSpec{Cron: "no longer a cron"}).
		Exec(ctx))
	tr, err = client.Trigger.Get(ctx, tr.ID)
	require.NoError(t, err)

	fired, err := triggers.MarkFired(ctx, tr)
	require.NoError(t, err)
	assert.True(t, fired)

	got, err := client.Trigger.Get(ctx, tr.ID)
	require.NoError(t, err)
	assert.False(t, got.Enabled, "a broken cron retires instead of spinning")
}

func TestDisableForRunRetiresRunScopedTriggers(t *testing.T) {
	triggers := NewTriggerService(newTestClient(t))
	ctx := context.Background()

	_, err := triggers.CreateRunWake(ctx, "conductor", "run-done", time.Now().Add(time.Hour), models.WakeReasonSleep)
	require.NoError(t, err)
	_, err = triggers.CreateCronForRun(ctx, "conductor", "run-done", "*/10 * * * *")
	require.NoError(t, err)
	agentCron, err := triggers.CreateCron(ctx, "conductor", "0 9 * * *")
	require.NoError(t, err)

	count, err := triggers.DisableForRun(ctx, "run-done")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	listed, err := triggers.ListByAgent(ctx, "conductor")
	require.NoError(t, err)
	for _, tr := range listed {
		if tr.ID == agentCron.ID {
			assert.True(t, tr.Enabled, "agent-level schedules outlive any one run")
		} else {
			assert.False(t, tr.Enabled)
		}
	}

	// Disabling again finds nothing enabled.
	count, err = triggers.DisableForRun(ctx, "run-done")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDeleteDisabledBeforeKeepsLiveTriggers(t *testing.T) {
	client := newTestClient(t)
	triggers := NewTriggerService(client)
	ctx := context.Background()

	stale, err := triggers.CreateRunWake(ctx, "conductor", "run-old", time.Now().Add(-2*time.Hour), models.WakeReasonSleep)
	require.NoError(t, err)
	_, err = triggers.MarkFired(ctx, stale)
	require.NoError(t, err)
	require.NoError(t, client.Trigger.UpdateOneID(stale.ID).
		SetUpdatedAt(time.Now().Add(-48*time.Hour)).
		Exec(ctx))

	keeper, err := triggers.CreateCron(ctx, "conductor", "0 9 * * *")
	require.NoError(t, err)

	deleted, err := triggers.DeleteDisabledBefore(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	listed, err := triggers.ListByAgent(ctx, "conductor")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, keeper.ID, listed[0].ID)
}
