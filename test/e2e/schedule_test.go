package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/ent/trigger"
	"github.com/conductorhq/conductor/pkg/models"
)

// parkedCoordinator creates a coordinator and moves it straight to
// waiting, as if a previous claim had parked it.
func parkedCoordinator(t *testing.T, app *TestApp, userID, input string, wakeAt *time.Time) string {
	t.Helper()
	ctx := context.Background()

	ch, err := app.Channels.GetOrCreate(ctx, userID, "web", "")
	require.NoError(t, err)

	r, err := app.Runs.CreateCoordinator(ctx, models.CreateRunRequest{
		TenantID:  "acme",
		AgentID:   "conductor",
		UserID:    userID,
		ChannelID: ch.ID,
		InputText: input,
	})
	require.NoError(t, err)

	update := app.Ent.Run.UpdateOneID(r.ID).
		SetStatus(run.StatusWaiting).
		SetWakeReason("sleep")
	if wakeAt != nil {
		update.SetWakeAt(*wakeAt)
	}
	require.NoError(t, update.Exec(ctx))
	return r.ID
}

// TestSchedulerWakesOverdueRun parks a run whose wake deadline has
// passed and has no queued wake job, the crash-recovery case. The
// scheduler scan alone must bring it back.
func TestSchedulerWakesOverdueRun(t *testing.T) {
	llmc := NewScriptedLLMClient()
	llmc.AddSequential(answerScript("Nightly digest sent.")...)

	app := NewTestApp(t, WithLLMClient(llmc))

	past := time.Now().Add(-time.Minute)
	runID := parkedCoordinator(t, app, "user-1", "Resume the nightly digest", &past)

	r := app.WaitForRunStatus(t, runID, run.StatusCompleted)
	assert.Equal(t, "Nightly digest sent.", r.OutputText)
	assert.Nil(t, r.WakeAt, "waking clears the deadline")
	assert.Nil(t, r.WakeReason)
}

// TestRunWakeTriggerFires registers a one-shot wake trigger for a
// parked run and lets the dispatcher fire it: trigger scan, wake job,
// run job, completion, trigger retired.
func TestRunWakeTriggerFires(t *testing.T) {
	llmc := NewScriptedLLMClient()
	llmc.AddSequential(answerScript("Back from the scheduled pause.")...)

	app := NewTestApp(t, WithLLMClient(llmc))
	ctx := context.Background()

	// parked with no deadline: only the trigger can wake it
	runID := parkedCoordinator(t, app, "user-2", "Wait for the morning window", nil)

	trig, err := app.Triggers.CreateRunWake(ctx, "conductor", runID, time.Now().Add(-time.Second), "cron")
	require.NoError(t, err)
	assert.Equal(t, trigger.TypeRunWake, trig.Type)

	r := app.WaitForRunStatus(t, runID, run.StatusCompleted)
	assert.Equal(t, "Back from the scheduled pause.", r.OutputText)

	require.Eventually(t, func() bool {
		got, err := app.Ent.Trigger.Get(ctx, trig.ID)
		return err == nil && !got.Enabled
	}, waitTimeout, pollInterval, "a fired wake trigger must be retired")
}

// TestTriggerAPIManagesCronSchedules covers create, validation, and
// listing of agent-level cron triggers.
func TestTriggerAPIManagesCronSchedules(t *testing.T) {
	app := NewTestApp(t)

	created := app.CreateTrigger(t, "conductor", "*/5 * * * *")
	assert.NotEmpty(t, created["id"])
	assert.Equal(t, "conductor", created["agentId"])
	assert.Equal(t, "cron", created["type"])
	assert.Equal(t, "*/5 * * * *", created["cron"])
	assert.Equal(t, true, created["enabled"])

	next, err := time.Parse(time.RFC3339, field(t, created, "nextFireAt"))
	require.NoError(t, err)
	assert.True(t, next.After(time.Now()), "nextFireAt must be in the future")

	listed := app.ListTriggers(t, "conductor")
	require.Len(t, listed, 1)
	assert.Equal(t, created["id"], listed[0]["id"])

	bad := app.doJSON(t, "POST", "/api/v1/triggers", map[string]any{
		"agentId": "conductor",
		"cron":    "not a cron",
	}, 400)
	assert.NotEmpty(t, bad["error"])
}
