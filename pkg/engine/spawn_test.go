package engine

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/ent/trigger"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/conductorhq/conductor/pkg/queue"
	"github.com/conductorhq/conductor/pkg/services"
)

func TestRetrySubagentRespawnsTerminalChild(t *testing.T) {
	f := newEngineFixture(t, nil)
	ctx := context.Background()
	parent := f.newCoordinator(t, "Pull the latest revenue numbers")
	child := f.newSubagent(t, parent, "Fetch the revenue figures", []string{"memory.search"})

	_, err := f.runs.ClaimRun(ctx, child.ID, "test-pod")
	require.NoError(t, err)
	require.NoError(t, f.runs.FailRun(ctx, child.ID, "source unavailable"))

	f.llm.push(coordinatorNotes()...)
	f.llm.push(say(fmt.Sprintf(
		`{"type":"retry_subagent","runId":%q,"feedback":"The numbers were stale; use the latest report."}`,
		child.ID)))

	require.NoError(t, f.engine.ExecuteRun(ctx, parent.ID))

	gotParent := f.reload(t, parent.ID)
	assert.Equal(t, run.StatusWaiting, gotParent.Status)
	require.NotNil(t, gotParent.WakeReason)
	assert.Equal(t, models.WakeReasonSubagentWatchdog, *gotParent.WakeReason)

	children, err := f.runs.ListChildren(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, children, 2)

	var retry *ent.Run
	for _, c := range children {
		if c.ID != child.ID {
			retry = c
		}
	}
	require.NotNil(t, retry)
	assert.Equal(t, child.InputText, retry.InputText)
	assert.Equal(t, child.AllowedTools, retry.AllowedTools)
	assert.Equal(t, 1, retry.Input.AgentLevel)
	assert.Equal(t, child.ID, retry.Input.RetryOf)
	assert.Equal(t, run.StatusPending, retry.Status)

	roles := make(map[string]string, len(retry.Input.Context))
	for _, c := range retry.Input.Context {
		roles[c.Role] = c.Content
	}
	assert.Equal(t, child.ID, roles["retry_of"])
	assert.Equal(t, "The numbers were stale; use the latest report.", roles["retry_feedback"])
	assert.Contains(t, roles["tool_hint"], "memory.search")

	spawn := findEvent(f.runSteps(t, parent.ID), models.EventSpawnSubagents)
	require.NotNil(t, spawn)
	assert.Equal(t, child.ID, spawn.Result["retryOf"])

	assert.True(t, hasJobFor(f.runJobs(t, queue.QueueRuns), retry.ID), "retry run job enqueued")
	assert.True(t, hasJobFor(f.runJobs(t, queue.QueueWake), parent.ID), "parent watchdog wake enqueued")
	assert.Equal(t, 4, f.llm.callCount())
}

func TestRetrySubagentRequiresTerminalChild(t *testing.T) {
	f := newEngineFixture(t, nil)
	ctx := context.Background()
	parent := f.newCoordinator(t, "Check on the in-flight lookup")
	child := f.newSubagent(t, parent, "Look up the shipment status", nil)

	f.llm.push(coordinatorNotes()...)
	f.llm.push(
		say(fmt.Sprintf(`{"type":"retry_subagent","runId":%q,"feedback":"try again"}`, child.ID)),
		say(`{"type":"finish"}`),
	)

	require.NoError(t, f.engine.ExecuteRun(ctx, parent.ID))

	gotParent := f.reload(t, parent.ID)
	assert.Equal(t, run.StatusCompleted, gotParent.Status)

	blocked := findEvent(f.runSteps(t, parent.ID), models.EventActionBlocked)
	require.NotNil(t, blocked)
	assert.Equal(t, "subagent_still_active", blocked.Result["reason"])

	children, err := f.runs.ListChildren(ctx, parent.ID)
	require.NoError(t, err)
	assert.Len(t, children, 1, "no retry spawned for an active child")

	// Bare finish with no output skips the validator.
	assert.Equal(t, 5, f.llm.callCount())
}

func TestSubsubagentSpawnBlocked(t *testing.T) {
	f := newEngineFixture(t, nil)
	ctx := context.Background()
	parent := f.newCoordinator(t, "Coordinate the log investigation")
	children, err := f.runs.CreateSubagents(ctx, parent, []services.CreateChildParams{{
		InputText: "Scan the error logs for the failure window",
		Input:     models.RunInput{AgentLevel: 2},
	}})
	require.NoError(t, err)
	worker := children[0]

	f.llm.push(subagentNotes()...)
	f.llm.push(
		say(`{"type":"spawn_subagent","subagent":{"task":"dig deeper into the stack traces"}}`),
		say(`{"type":"finish","output":"Found three panics in the failure window, all in the retry path of the uploader."}`),
		say(`{"decision":"send"}`),
	)

	require.NoError(t, f.engine.ExecuteRun(ctx, worker.ID))

	got := f.reload(t, worker.ID)
	assert.Equal(t, run.StatusCompleted, got.Status)

	steps := f.runSteps(t, worker.ID)
	blocked := findEvent(steps, models.EventActionBlocked)
	require.NotNil(t, blocked)
	assert.Equal(t, "role_violation", blocked.Result["reason"])
	assert.Contains(t, blocked.Result["detail"], "cannot spawn further agents")

	grandchildren, err := f.runs.ListChildren(ctx, worker.ID)
	require.NoError(t, err)
	assert.Empty(t, grandchildren)

	assert.Equal(t, 6, f.llm.callCount())
}

func TestSleepCronCreatesTrigger(t *testing.T) {
	f := newEngineFixture(t, nil)
	ctx := context.Background()
	parent := f.newCoordinator(t, "Watch the nightly export until it lands")
	f.newSubagent(t, parent, "Poll the export job", nil)

	f.llm.push(coordinatorNotes()...)
	f.llm.push(say(`{"type":"sleep","cron":"*/15 * * * *","reason":"wait for the worker"}`))

	require.NoError(t, f.engine.ExecuteRun(ctx, parent.ID))

	got := f.reload(t, parent.ID)
	assert.Equal(t, run.StatusWaiting, got.Status)
	require.NotNil(t, got.WakeReason)
	assert.Equal(t, models.WakeReasonCron, *got.WakeReason)
	require.NotNil(t, got.WakeAt)
	assert.True(t, got.WakeAt.After(time.Now()))

	triggers, err := f.client.Trigger.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, triggers, 1)
	tr := triggers[0]
	assert.Equal(t, trigger.TypeCron, tr.Type)
	assert.Equal(t, parent.ID, tr.Spec.RunID)
	assert.Equal(t, "*/15 * * * *", tr.Spec.Cron)
	assert.True(t, tr.Enabled)
	assert.WithinDuration(t, *got.WakeAt, tr.NextFireAt, time.Second)

	slept := findEvent(f.runSteps(t, parent.ID), models.EventSleep)
	require.NotNil(t, slept)
	assert.Equal(t, "*/15 * * * *", slept.Result["cron"])
	assert.Equal(t, "wait for the worker", slept.Result["reason"])

	// Cron wakes come from the trigger scan, not a delayed wake job.
	assert.Empty(t, f.runJobs(t, queue.QueueWake))
	assert.Empty(t, f.runJobs(t, queue.QueueRuns))
	assert.Equal(t, 4, f.llm.callCount())
}
