package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/ent/runstep"
	"github.com/conductorhq/conductor/pkg/models"
	testdb "github.com/conductorhq/conductor/test/database"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	return testdb.NewTestClient(t).Client
}

func coordinatorRequest(userID, channelID, input string) models.CreateRunRequest {
	return models.CreateRunRequest{
		TenantID:  "acme",
		AgentID:   "conductor",
		UserID:    userID,
		ChannelID: channelID,
		InputText: input,
	}
}

func seedCoordinator(t *testing.T, runs *RunService, userID, channelID, input string) *ent.Run {
	t.Helper()
	r, err := runs.CreateCoordinator(context.Background(), coordinatorRequest(userID, channelID, input))
	require.NoError(t, err)
	return r
}

// claimAs moves a pending run to running for the given worker, failing the
// test when the claim does not land.
func claimAs(t *testing.T, runs *RunService, runID, worker string) *ent.Run {
	t.Helper()
	r, err := runs.ClaimRun(context.Background(), runID, worker)
	require.NoError(t, err)
	require.NotNil(t, r, "claim must land on a pending run")
	return r
}

func TestCreateCoordinatorValidatesRequiredFields(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()

	cases := []struct {
		field  string
		mutate func(*models.CreateRunRequest)
	}{
		{"tenant_id", func(r *models.CreateRunRequest) { r.TenantID = "" }},
		{"agent_id", func(r *models.CreateRunRequest) { r.AgentID = "" }},
		{"user_id", func(r *models.CreateRunRequest) { r.UserID = "" }},
		{"channel_id", func(r *models.CreateRunRequest) { r.ChannelID = "" }},
		{"input_text", func(r *models.CreateRunRequest) { r.InputText = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			req := coordinatorRequest("user-1", "ch-1", "do something")
			tc.mutate(&req)

			_, err := runs.CreateCoordinator(ctx, req)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
			assert.Equal(t, "required", ve.Message)
		})
	}
}

func TestCreateCoordinatorInitialShape(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()

	req := coordinatorRequest("user-1", "ch-1", "summarize the standup")
	req.ContextID = "ctx-1"
	req.Profile = "research"
	req.Context = []models.ContextEntry{{Role: "user", Content: "earlier message"}}

	r, err := runs.CreateCoordinator(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, run.StatusPending, r.Status)
	assert.Equal(t, run.KindCoordinator, r.Kind)
	assert.Equal(t, r.ID, r.RootRunID, "a coordinator roots its own tree")
	assert.Nil(t, r.ParentRunID)
	require.NotNil(t, r.ContextID)
	assert.Equal(t, "ctx-1", *r.ContextID)
	require.NotNil(t, r.Profile)
	assert.Equal(t, "research", *r.Profile)

	assert.Equal(t, 0, r.Input.AgentLevel)
	assert.True(t, r.Input.AllowSubagents)
	assert.Empty(t, r.Input.State.Queue)
	assert.Empty(t, r.Input.State.Inbox)
	require.Len(t, r.Input.Context, 1)
	assert.Equal(t, "earlier message", r.Input.Context[0].Content)

	// Optional fields stay unset when the request omits them.
	plain := seedCoordinator(t, runs, "user-2", "ch-2", "plain request")
	assert.Nil(t, plain.ContextID)
	assert.Nil(t, plain.Profile)
	assert.Nil(t, plain.ClaimedBy)
	assert.Nil(t, plain.WakeAt)
}

func TestCreateSubagentsInheritParentIdentity(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()

	req := coordinatorRequest("user-1", "ch-1", "coordinate the report")
	req.ContextID = "ctx-7"
	parent, err := runs.CreateCoordinator(ctx, req)
	require.NoError(t, err)

	children, err := runs.CreateSubagents(ctx, parent, []CreateChildParams{
		{
			Profile:      "auto_tool",
			InputText:    "fetch the metrics",
			AllowedTools: []string{"recon.fetch"},
			Input:        models.RunInput{State: models.RunState{}, AgentLevel: 1},
		},
		{
			InputText: "draft the summary",
			Input:     models.RunInput{State: models.RunState{}, AgentLevel: 1, AllowSubagents: true},
		},
	})
	require.NoError(t, err)
	require.Len(t, children, 2)

	for _, child := range children {
		assert.Equal(t, parent.TenantID, child.TenantID)
		assert.Equal(t, parent.AgentID, child.AgentID)
		assert.Equal(t, parent.UserID, child.UserID)
		assert.Equal(t, parent.ChannelID, child.ChannelID)
		assert.Equal(t, parent.RootRunID, child.RootRunID)
		require.NotNil(t, child.ParentRunID)
		assert.Equal(t, parent.ID, *child.ParentRunID)
		require.NotNil(t, child.ContextID)
		assert.Equal(t, "ctx-7", *child.ContextID)
		assert.Equal(t, run.KindSubagent, child.Kind)
		assert.Equal(t, run.StatusPending, child.Status)
		assert.Equal(t, 1, child.Input.AgentLevel)
	}

	require.NotNil(t, children[0].Profile)
	assert.Equal(t, "auto_tool", *children[0].Profile)
	assert.Equal(t, []string{"recon.fetch"}, children[0].AllowedTools)

	assert.Nil(t, children[1].Profile)
	assert.Empty(t, children[1].AllowedTools, "no tool restriction unless the spawn names one")
}

func TestCreateSubagentsValidation(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()
	parent := seedCoordinator(t, runs, "user-1", "ch-1", "parent work")

	_, err := runs.CreateSubagents(ctx, parent, nil)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "subagents", ve.Field)

	_, err = runs.CreateSubagents(ctx, parent, []CreateChildParams{
		{InputText: "fine", Input: models.RunInput{AgentLevel: 1}},
		{InputText: "", Input: models.RunInput{AgentLevel: 1}},
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "subagents[1].task", ve.Field)

	// Nothing from the rejected batch may have landed.
	count, err := runs.ActiveChildren(ctx, parent.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestClaimRunTransitions(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()
	r := seedCoordinator(t, runs, "user-1", "ch-1", "claim me")

	claimed := claimAs(t, runs, r.ID, "pod-1-worker-0")
	assert.Equal(t, run.StatusRunning, claimed.Status)
	require.NotNil(t, claimed.ClaimedBy)
	assert.Equal(t, "pod-1-worker-0", *claimed.ClaimedBy)
	require.NotNil(t, claimed.LastHeartbeatAt)
	assert.WithinDuration(t, time.Now(), *claimed.LastHeartbeatAt, 5*time.Second)

	// A second claim loses: the run is no longer pending.
	again, err := runs.ClaimRun(ctx, r.ID, "pod-2-worker-0")
	require.NoError(t, err)
	assert.Nil(t, again)

	status, err := runs.RefreshStatus(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusRunning, status)

	_, err = runs.RefreshStatus(ctx, "no-such-run")
	assert.ErrorIs(t, err, ErrNotFound)

	// Terminal runs are never claimable.
	require.NoError(t, runs.CompleteRun(ctx, r.ID, "done"))
	gone, err := runs.ClaimRun(ctx, r.ID, "pod-3-worker-0")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestHeartbeatKeepsClaimFresh(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()
	r := seedCoordinator(t, runs, "user-1", "ch-1", "long task")

	claimed := claimAs(t, runs, r.ID, "pod-1-worker-0")
	first := *claimed.LastHeartbeatAt

	require.NoError(t, runs.Heartbeat(ctx, r.ID))

	got, err := runs.GetRun(ctx, r.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastHeartbeatAt)
	assert.False(t, got.LastHeartbeatAt.Before(first))

	// Heartbeats on non-running runs are no-ops, not errors.
	require.NoError(t, runs.CompleteRun(ctx, r.ID, "done"))
	assert.NoError(t, runs.Heartbeat(ctx, r.ID))
}

func TestCompleteRunRequiresRunning(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()
	r := seedCoordinator(t, runs, "user-1", "ch-1", "finish me")

	// Pending runs cannot complete; they were never claimed.
	assert.ErrorIs(t, runs.CompleteRun(ctx, r.ID, "early"), ErrInvalidState)

	claimAs(t, runs, r.ID, "pod-1-worker-0")
	require.NoError(t, runs.CompleteRun(ctx, r.ID, "the final answer"))

	got, err := runs.GetRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCompleted, got.Status)
	assert.Equal(t, "the final answer", got.OutputText)
	assert.Nil(t, got.ClaimedBy, "completion releases the claim")
	assert.Nil(t, got.WakeAt)
	assert.Nil(t, got.WakeReason)

	// Completing twice is an invalid transition.
	assert.ErrorIs(t, runs.CompleteRun(ctx, r.ID, "again"), ErrInvalidState)
}

func TestFailRunFromAnyNonTerminalState(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()

	// Pending runs may fail directly (e.g. the queue gave up on them).
	pending := seedCoordinator(t, runs, "user-1", "ch-1", "never started")
	require.NoError(t, runs.FailRun(ctx, pending.ID, "queue retries exhausted"))
	got, err := runs.GetRun(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, "queue retries exhausted", *got.ErrorMessage)

	running := seedCoordinator(t, runs, "user-1", "ch-1", "crashes midway")
	claimAs(t, runs, running.ID, "pod-1-worker-0")
	require.NoError(t, runs.FailRun(ctx, running.ID, "llm call failed: boom"))
	got, err = runs.GetRun(ctx, running.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, got.Status)
	assert.Nil(t, got.ClaimedBy)

	// Terminal runs stay terminal.
	assert.ErrorIs(t, runs.FailRun(ctx, running.ID, "again"), ErrInvalidState)
	assert.ErrorIs(t, runs.CompleteRun(ctx, running.ID, "too late"), ErrInvalidState)
}

func TestMarkWaitingAndWakeRun(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()
	r := seedCoordinator(t, runs, "user-1", "ch-1", "sleep then resume")

	// Only running runs can park.
	wakeAt := time.Now().Add(10 * time.Minute).UTC()
	assert.ErrorIs(t, runs.MarkWaiting(ctx, r.ID, &wakeAt, models.WakeReasonSleep), ErrInvalidState)

	claimAs(t, runs, r.ID, "pod-1-worker-0")
	require.NoError(t, runs.MarkWaiting(ctx, r.ID, &wakeAt, models.WakeReasonSleep))

	got, err := runs.GetRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusWaiting, got.Status)
	require.NotNil(t, got.WakeAt)
	assert.WithinDuration(t, wakeAt, *got.WakeAt, time.Second)
	require.NotNil(t, got.WakeReason)
	assert.Equal(t, models.WakeReasonSleep, *got.WakeReason)
	assert.Nil(t, got.ClaimedBy, "parking releases the claim")

	woke, err := runs.WakeRun(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, woke)

	got, err = runs.GetRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusPending, got.Status)
	assert.Nil(t, got.WakeAt)
	assert.Nil(t, got.WakeReason)

	// Waking an already-pending run reports false so callers skip the
	// duplicate enqueue.
	woke, err = runs.WakeRun(ctx, r.ID)
	require.NoError(t, err)
	assert.False(t, woke)
}

func TestMarkWaitingWithoutDeadline(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()
	r := seedCoordinator(t, runs, "user-1", "ch-1", "wait for parent")

	claimAs(t, runs, r.ID, "pod-1-worker-0")
	require.NoError(t, runs.MarkWaiting(ctx, r.ID, nil, models.WakeReasonWaitingForParent))

	got, err := runs.GetRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusWaiting, got.Status)
	assert.Nil(t, got.WakeAt, "event-driven waits carry no deadline")
	require.NotNil(t, got.WakeReason)
	assert.Equal(t, models.WakeReasonWaitingForParent, *got.WakeReason)
}

func TestAppendToInboxPreservesOrder(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()
	r := seedCoordinator(t, runs, "user-1", "ch-1", "receives messages")

	status, err := runs.AppendToInbox(ctx, r.ID, models.InboxEntry{
		FromRunID: "user",
		Message:   "first follow-up",
		At:        time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.Equal(t, run.StatusPending, status, "append reports the status seen under lock")

	_, err = runs.AppendToInbox(ctx, r.ID, models.InboxEntry{
		FromRunID: "user",
		Message:   "second follow-up",
		At:        time.Now().UTC(),
	})
	require.NoError(t, err)

	got, err := runs.GetRun(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, got.Input.State.Inbox, 2)
	assert.Equal(t, "first follow-up", got.Input.State.Inbox[0].Message)
	assert.Equal(t, "second follow-up", got.Input.State.Inbox[1].Message)

	_, err = runs.AppendToInbox(ctx, "no-such-run", models.InboxEntry{FromRunID: "user", Message: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClearWaitingForParentReopensChild(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()

	parent := seedCoordinator(t, runs, "user-1", "ch-1", "delegating")
	children, err := runs.CreateSubagents(ctx, parent, []CreateChildParams{
		{InputText: "ask the parent something", Input: models.RunInput{State: models.RunState{}, AgentLevel: 1}},
	})
	require.NoError(t, err)
	child := children[0]

	// The engine flags the state, then parks the run.
	claimAs(t, runs, child.ID, "pod-1-worker-0")
	input := child.Input
	input.State.WaitingForParent = true
	require.NoError(t, runs.UpdateInput(ctx, child.ID, input))
	require.NoError(t, runs.MarkWaiting(ctx, child.ID, nil, models.WakeReasonWaitingForParent))

	err = runs.ClearWaitingForParent(ctx, child.ID, models.InboxEntry{
		FromRunID: parent.ID,
		Message:   "use the staging dataset",
		At:        time.Now().UTC(),
	})
	require.NoError(t, err)

	got, err := runs.GetRun(ctx, child.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusPending, got.Status, "the reply reopens the parked child")
	assert.False(t, got.Input.State.WaitingForParent)
	assert.Nil(t, got.WakeReason)
	require.Len(t, got.Input.State.Inbox, 1)
	assert.Equal(t, parent.ID, got.Input.State.Inbox[0].FromRunID)
	assert.Equal(t, "use the staging dataset", got.Input.State.Inbox[0].Message)

	assert.ErrorIs(t, runs.ClearWaitingForParent(ctx, "no-such-run", models.InboxEntry{}), ErrNotFound)
}

func TestClearWaitingForParentLeavesRunningChildAlone(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()

	parent := seedCoordinator(t, runs, "user-1", "ch-1", "delegating")
	children, err := runs.CreateSubagents(ctx, parent, []CreateChildParams{
		{InputText: "still working", Input: models.RunInput{State: models.RunState{}, AgentLevel: 1}},
	})
	require.NoError(t, err)
	child := children[0]
	claimAs(t, runs, child.ID, "pod-1-worker-0")

	// A reply that races the child's own loop lands in the inbox without
	// disturbing the execution status.
	err = runs.ClearWaitingForParent(ctx, child.ID, models.InboxEntry{
		FromRunID: parent.ID,
		Message:   "answer while running",
		At:        time.Now().UTC(),
	})
	require.NoError(t, err)

	got, err := runs.GetRun(ctx, child.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusRunning, got.Status)
	require.Len(t, got.Input.State.Inbox, 1)
}

func TestCancelCascadeSkipsTerminalChildren(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()

	parent := seedCoordinator(t, runs, "user-1", "ch-1", "big job")
	claimAs(t, runs, parent.ID, "pod-1-worker-0")

	children, err := runs.CreateSubagents(ctx, parent, []CreateChildParams{
		{InputText: "child one", Input: models.RunInput{State: models.RunState{}, AgentLevel: 1}},
		{InputText: "child two", Input: models.RunInput{State: models.RunState{}, AgentLevel: 1}},
	})
	require.NoError(t, err)

	// One child already finished; cancellation must not rewrite history.
	claimAs(t, runs, children[1].ID, "pod-1-worker-1")
	require.NoError(t, runs.CompleteRun(ctx, children[1].ID, "done before cancel"))

	grandchildren, err := runs.CreateSubagents(ctx, children[0], []CreateChildParams{
		{InputText: "grandchild", Input: models.RunInput{State: models.RunState{}, AgentLevel: 2}},
	})
	require.NoError(t, err)

	count, err := runs.CancelCascade(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count, "parent, pending child, and grandchild cancel")

	for _, id := range []string{parent.ID, children[0].ID, grandchildren[0].ID} {
		got, err := runs.GetRun(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, run.StatusCancelled, got.Status)
		assert.Nil(t, got.ClaimedBy)
		assert.Nil(t, got.WakeAt)
	}

	done, err := runs.GetRun(ctx, children[1].ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusCompleted, done.Status)
	assert.Equal(t, "done before cancel", done.OutputText)

	// Cancelling an already-terminal tree is a no-op.
	count, err = runs.CancelCascade(ctx, parent.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestActiveChildrenCountsNonTerminal(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()

	parent := seedCoordinator(t, runs, "user-1", "ch-1", "fan out")
	children, err := runs.CreateSubagents(ctx, parent, []CreateChildParams{
		{InputText: "a", Input: models.RunInput{State: models.RunState{}, AgentLevel: 1}},
		{InputText: "b", Input: models.RunInput{State: models.RunState{}, AgentLevel: 1}},
		{InputText: "c", Input: models.RunInput{State: models.RunState{}, AgentLevel: 1}},
	})
	require.NoError(t, err)

	count, err := runs.ActiveChildren(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	claimAs(t, runs, children[0].ID, "pod-1-worker-0")
	require.NoError(t, runs.CompleteRun(ctx, children[0].ID, "done"))
	require.NoError(t, runs.FailRun(ctx, children[1].ID, "broke"))

	count, err = runs.ActiveChildren(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	all, err := runs.ListChildren(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].InputText, "children list oldest first")
}

func TestFindActiveCoordinatorPrefersNewest(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()

	found, err := runs.FindActiveCoordinator(ctx, "ch-idle")
	require.NoError(t, err)
	assert.Nil(t, found, "idle channels have no active coordinator")

	older := seedCoordinator(t, runs, "user-1", "ch-1", "first request")
	claimAs(t, runs, older.ID, "pod-1-worker-0")
	require.NoError(t, runs.CompleteRun(ctx, older.ID, "answered"))

	newer := seedCoordinator(t, runs, "user-1", "ch-1", "second request")

	// Subagents on the channel never count as the active coordinator.
	_, err = runs.CreateSubagents(ctx, newer, []CreateChildParams{
		{InputText: "helper", Input: models.RunInput{State: models.RunState{}, AgentLevel: 1}},
	})
	require.NoError(t, err)

	found, err = runs.FindActiveCoordinator(ctx, "ch-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, newer.ID, found.ID)

	// A waiting coordinator is still active: follow-ups route to it.
	claimAs(t, runs, newer.ID, "pod-1-worker-0")
	require.NoError(t, runs.MarkWaiting(ctx, newer.ID, nil, models.WakeReasonSubagentWatchdog))
	found, err = runs.FindActiveCoordinator(ctx, "ch-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, newer.ID, found.ID)
}

func TestFindDueWaitingOrdersByDeadline(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()
	now := time.Now()

	park := func(input string, wakeAt *time.Time) *ent.Run {
		r := seedCoordinator(t, runs, "user-1", "ch-1", input)
		claimAs(t, runs, r.ID, "pod-1-worker-0")
		require.NoError(t, runs.MarkWaiting(ctx, r.ID, wakeAt, models.WakeReasonSleep))
		return r
	}

	lateDeadline := now.Add(-1 * time.Minute)
	earlyDeadline := now.Add(-5 * time.Minute)
	futureDeadline := now.Add(1 * time.Hour)

	second := park("woke second", &lateDeadline)
	first := park("woke first", &earlyDeadline)
	park("not due yet", &futureDeadline)
	park("no deadline at all", nil)

	due, err := runs.FindDueWaiting(ctx, now, 10)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, first.ID, due[0].ID, "earliest deadline first")
	assert.Equal(t, second.ID, due[1].ID)

	limited, err := runs.FindDueWaiting(ctx, now, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, first.ID, limited[0].ID)
}

func TestOrphanDetectionAndReset(t *testing.T) {
	client := newTestClient(t)
	runs := NewRunService(client)
	ctx := context.Background()

	healthy := seedCoordinator(t, runs, "user-1", "ch-1", "alive and well")
	claimAs(t, runs, healthy.ID, "pod-1-worker-0")

	orphan := seedCoordinator(t, runs, "user-1", "ch-1", "worker died")
	claimAs(t, runs, orphan.ID, "dead-pod-worker-0")
	err := client.Run.UpdateOneID(orphan.ID).
		SetLastHeartbeatAt(time.Now().Add(-time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	stale, err := runs.FindStaleRunning(ctx, 30*time.Second)
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, orphan.ID, stale[0].ID)

	reset, err := runs.ResetToPending(ctx, orphan.ID)
	require.NoError(t, err)
	assert.True(t, reset)

	got, err := runs.GetRun(ctx, orphan.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusPending, got.Status)
	assert.Nil(t, got.ClaimedBy)
	assert.Nil(t, got.LastHeartbeatAt)

	// A second reset races with the re-claim and must not double-fire.
	reset, err = runs.ResetToPending(ctx, orphan.ID)
	require.NoError(t, err)
	assert.False(t, reset)
}

func TestListRunsFilters(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()

	r1 := seedCoordinator(t, runs, "user-1", "ch-1", "first")
	r2 := seedCoordinator(t, runs, "user-1", "ch-1", "second")
	r3 := seedCoordinator(t, runs, "user-2", "ch-2", "third")

	children, err := runs.CreateSubagents(ctx, r2, []CreateChildParams{
		{InputText: "child of second", Input: models.RunInput{State: models.RunState{}, AgentLevel: 1}},
	})
	require.NoError(t, err)
	child := children[0]

	claimAs(t, runs, r3.ID, "pod-1-worker-0")
	require.NoError(t, runs.CompleteRun(ctx, r3.ID, "done"))

	byChannel, total, err := runs.ListRuns(ctx, models.RunFilters{ChannelID: "ch-1"})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, byChannel, 3)

	byUser, total, err := runs.ListRuns(ctx, models.RunFilters{UserID: "user-2"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, byUser, 1)
	assert.Equal(t, r3.ID, byUser[0].ID)

	byStatus, _, err := runs.ListRuns(ctx, models.RunFilters{Status: "completed"})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, r3.ID, byStatus[0].ID)

	byKind, _, err := runs.ListRuns(ctx, models.RunFilters{Kind: "subagent"})
	require.NoError(t, err)
	require.Len(t, byKind, 1)
	assert.Equal(t, child.ID, byKind[0].ID)

	byRoot, total, err := runs.ListRuns(ctx, models.RunFilters{RootRunID: r2.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, byRoot, 2, "root filter returns the whole tree")

	// Pagination: newest first, total unaffected by the window.
	page, total, err := runs.ListRuns(ctx, models.RunFilters{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	require.Len(t, page, 2)
	assert.Equal(t, child.ID, page[0].ID)
	assert.Equal(t, r3.ID, page[1].ID)

	rest, _, err := runs.ListRuns(ctx, models.RunFilters{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, rest, 2)
	assert.Equal(t, r2.ID, rest[0].ID)
	assert.Equal(t, r1.ID, rest[1].ID)
}

func TestInputAndOutputUpdates(t *testing.T) {
	runs := NewRunService(newTestClient(t))
	ctx := context.Background()
	r := seedCoordinator(t, runs, "user-1", "ch-1", "stateful work")

	input := r.Input
	input.State.Queue = []string{"verify the export", "notify the user"}
	input.State.LastBlockReason = "missing_notes"
	require.NoError(t, runs.UpdateInput(ctx, r.ID, input))

	require.NoError(t, runs.SetOutputText(ctx, r.ID, "draft so far"))

	got, err := runs.GetRun(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"verify the export", "notify the user"}, got.Input.State.Queue)
	assert.Equal(t, "missing_notes", got.Input.State.LastBlockReason)
	assert.Equal(t, "draft so far", got.OutputText)
	assert.Equal(t, run.StatusPending, got.Status, "working output never finishes the run")

	assert.ErrorIs(t, runs.UpdateInput(ctx, "no-such-run", input), ErrNotFound)
	assert.ErrorIs(t, runs.SetOutputText(ctx, "no-such-run", "x"), ErrNotFound)
	_, err = runs.GetRun(ctx, "no-such-run")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteOldTerminalRunsCascades(t *testing.T) {
	client := newTestClient(t)
	runs := NewRunService(client)
	steps := NewStepService(client)
	ctx := context.Background()

	oldID := uuid.New().String()
	oldCompleted, err := client.Run.Create().
		SetID(oldID).
		SetTenantID("acme").
		SetAgentID("conductor").
		SetUserID("user-1").
		SetChannelID("ch-1").
		SetRootRunID(oldID).
		SetKind(run.KindCoordinator).
		SetInputText("ancient request").
		SetInput(models.RunInput{State: models.RunState{}, AllowSubagents: true}).
		SetStatus(run.StatusCompleted).
		SetCreatedAt(time.Now().Add(-72 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	children, err := runs.CreateSubagents(ctx, oldCompleted, []CreateChildParams{
		{InputText: "old child", Input: models.RunInput{State: models.RunState{}, AgentLevel: 1}},
	})
	require.NoError(t, err)
	child := children[0]
	require.NoError(t, runs.FailRun(ctx, child.ID, "never mattered"))

	_, err = steps.AppendStep(ctx, AppendStepParams{
		RunID: oldCompleted.ID,
		Type:  runstep.TypeNote,
		Args:  map[string]any{"category": "plan", "content": "long gone"},
	})
	require.NoError(t, err)

	pendingID := uuid.New().String()
	oldPending, err := client.Run.Create().
		SetID(pendingID).
		SetTenantID("acme").
		SetAgentID("conductor").
		SetUserID("user-1").
		SetChannelID("ch-1").
		SetRootRunID(pendingID).
		SetKind(run.KindCoordinator).
		SetInputText("ancient but alive").
		SetInput(models.RunInput{State: models.RunState{}, AllowSubagents: true}).
		SetStatus(run.StatusPending).
		SetCreatedAt(time.Now().Add(-72 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	recent := seedCoordinator(t, runs, "user-1", "ch-1", "fresh request")
	claimAs(t, runs, recent.ID, "pod-1-worker-0")
	require.NoError(t, runs.CompleteRun(ctx, recent.ID, "fresh answer"))

	deleted, err := runs.DeleteOldTerminalRuns(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, deleted, "only the old terminal coordinator is counted")

	_, err = runs.GetRun(ctx, oldCompleted.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = runs.GetRun(ctx, child.ID)
	assert.ErrorIs(t, err, ErrNotFound, "descendants cascade with the coordinator")

	remaining, err := steps.CountSteps(ctx, oldCompleted.ID)
	require.NoError(t, err)
	assert.Zero(t, remaining, "steps cascade with the run")

	// Non-terminal and recent runs survive the sweep.
	_, err = runs.GetRun(ctx, oldPending.ID)
	assert.NoError(t, err)
	_, err = runs.GetRun(ctx, recent.ID)
	assert.NoError(t, err)
}
