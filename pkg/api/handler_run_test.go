package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/ent/runstep"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/conductorhq/conductor/pkg/services"
)

func seedCoordinator(t *testing.T, f *apiFixture, userID, channelID, input string) *ent.Run {
	t.Helper()
	r, err := f.server.runs.CreateCoordinator(context.Background(), models.CreateRunRequest{
		TenantID:  "acme",
		AgentID:   "conductor",
		UserID:    userID,
		ChannelID: channelID,
		ContextID: "ctx-1",
		InputText: input,
	})
	require.NoError(t, err)
	return r
}

func TestGetRunResponseShape(t *testing.T) {
	f := newAPIFixture(t, testCipher(t))

	r := seedCoordinator(t, f, "user-1", "ch-1", "summarize the quarter")

	var resp map[string]any
	f.doJSON(t, http.MethodGet, "/api/v1/runs/"+r.ID, nil, http.StatusOK, &resp)

	assert.Equal(t, r.ID, resp["id"])
	assert.Equal(t, "acme", resp["tenantId"])
	assert.Equal(t, "conductor", resp["agentId"])
	assert.Equal(t, "user-1", resp["userId"])
	assert.Equal(t, "ch-1", resp["channelId"])
	assert.Equal(t, "ctx-1", resp["contextId"])
	assert.Equal(t, r.ID, resp["rootRunId"])
	assert.Equal(t, "coordinator", resp["kind"])
	assert.Equal(t, "pending", resp["status"])
	assert.Equal(t, "summarize the quarter", resp["inputText"])
	assert.NotEmpty(t, resp["createdAt"])
	assert.NotEmpty(t, resp["updatedAt"])

	// Unset optionals are omitted entirely.
	assert.NotContains(t, resp, "parentRunId")
	assert.NotContains(t, resp, "outputText")
	assert.NotContains(t, resp, "errorMessage")
	assert.NotContains(t, resp, "wakeAt")
}

func TestListRunsFiltersAndPaging(t *testing.T) {
	f := newAPIFixture(t, testCipher(t))
	ctx := context.Background()

	r1 := seedCoordinator(t, f, "user-1", "ch-1", "first")
	r2 := seedCoordinator(t, f, "user-1", "ch-1", "second")
	children, err := f.server.runs.CreateSubagents(ctx, r2, []services.CreateChildParams{
		{InputText: "dig into the logs"},
	})
	require.NoError(t, err)
	child := children[0]

	r3 := seedCoordinator(t, f, "user-2", "ch-2", "third")
	_, err = f.server.runs.ClaimRun(ctx, r3.ID, "api-test-pod")
	require.NoError(t, err)
	require.NoError(t, f.server.runs.CompleteRun(ctx, r3.ID, "done"))

	list := func(query string) *RunListResponse {
		var resp RunListResponse
		f.doJSON(t, http.MethodGet, "/api/v1/runs?"+query, nil, http.StatusOK, &resp)
		return &resp
	}

	byChannel := list("channel_id=ch-1")
	assert.Equal(t, 3, byChannel.Total)

	byUser := list("user_id=user-2")
	require.Equal(t, 1, byUser.Total)
	assert.Equal(t, r3.ID, byUser.Runs[0].ID)

	byStatus := list("status=completed")
	require.Equal(t, 1, byStatus.Total)
	assert.Equal(t, r3.ID, byStatus.Runs[0].ID)

	byKind := list("kind=subagent")
	require.Equal(t, 1, byKind.Total)
	assert.Equal(t, child.ID, byKind.Runs[0].ID)

	byRoot := list("root_run_id=" + r2.ID)
	assert.Equal(t, 2, byRoot.Total)

	// Paging is newest first; total always counts the full match.
	page := list("limit=2")
	assert.Equal(t, 4, page.Total)
	require.Len(t, page.Runs, 2)
	assert.Equal(t, r3.ID, page.Runs[0].ID)
	assert.Equal(t, child.ID, page.Runs[1].ID)

	rest := list("limit=2&offset=2")
	require.Len(t, rest.Runs, 2)
	assert.Equal(t, r2.ID, rest.Runs[0].ID)
	assert.Equal(t, r1.ID, rest.Runs[1].ID)
}

func TestListRunsQueryValidation(t *testing.T) {
	f := newAPIFixture(t, testCipher(t))

	tests := []struct {
		name     string
		query    string
		contains string
	}{
		{"unknown status", "status=bogus", "invalid status: bogus"},
		{"unknown kind", "kind=bogus", "invalid kind: bogus"},
		{"zero limit", "limit=0", "invalid limit: must be 1-100"},
		{"oversized limit", "limit=101", "invalid limit: must be 1-100"},
		{"non-numeric limit", "limit=ten", "invalid limit"},
		{"negative offset", "offset=-1", "invalid offset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.wantError(t, http.MethodGet, "/api/v1/runs?"+tt.query, nil,
				http.StatusBadRequest, tt.contains)
		})
	}
}

func TestListRunStepsWindows(t *testing.T) {
	f := newAPIFixture(t, testCipher(t))
	ctx := context.Background()

	r := seedCoordinator(t, f, "user-1", "ch-1", "inspect the cluster")
	for _, typ := range []runstep.Type{runstep.TypeNote, runstep.TypeToolCall, runstep.TypeToolResult} {
		_, err := f.server.steps.AppendStep(ctx, services.AppendStepParams{
			RunID: r.ID,
			Type:  typ,
		})
		require.NoError(t, err)
	}

	var all StepListResponse
	f.doJSON(t, http.MethodGet, "/api/v1/runs/"+r.ID+"/steps", nil, http.StatusOK, &all)
	assert.Equal(t, r.ID, all.RunID)
	require.Len(t, all.Steps, 3)
	for i, st := range all.Steps {
		assert.Equal(t, i+1, st.Seq)
	}

	// Incremental polling picks up where the client left off.
	var tail StepListResponse
	f.doJSON(t, http.MethodGet, "/api/v1/runs/"+r.ID+"/steps?after_seq=2", nil, http.StatusOK, &tail)
	require.Len(t, tail.Steps, 1)
	assert.Equal(t, 3, tail.Steps[0].Seq)
	assert.Equal(t, string(runstep.TypeToolResult), tail.Steps[0].Type)

	f.wantError(t, http.MethodGet, "/api/v1/runs/"+r.ID+"/steps?after_seq=x", nil,
		http.StatusBadRequest, "invalid after_seq")
	f.wantError(t, http.MethodGet, "/api/v1/runs/"+r.ID+"/steps?after_seq=-1", nil,
		http.StatusBadRequest, "invalid after_seq")
	f.wantError(t, http.MethodGet, "/api/v1/runs/ghost-run/steps", nil,
		http.StatusNotFound, "resource not found")
}

func TestCancelRunCascades(t *testing.T) {
	f := newAPIFixture(t, testCipher(t))
	ctx := context.Background()

	parent := seedCoordinator(t, f, "user-1", "ch-1", "long research task")
	children, err := f.server.runs.CreateSubagents(ctx, parent, []services.CreateChildParams{
		{InputText: "collect sources"},
	})
	require.NoError(t, err)
	child := children[0]
	_, err = f.server.runs.ClaimRun(ctx, child.ID, "api-test-pod")
	require.NoError(t, err)

	tr, err := f.server.triggers.CreateRunWake(ctx, "conductor", parent.ID, time.Now().Add(time.Hour), "subagent_timeout")
	require.NoError(t, err)

	var resp CancelResponse
	f.doJSON(t, http.MethodPost, "/api/v1/runs/"+parent.ID+"/cancel", nil, http.StatusOK, &resp)
	assert.Equal(t, parent.ID, resp.RunID)
	assert.Equal(t, 2, resp.Cancelled)
	assert.Equal(t, "Run cancellation requested", resp.Message)

	for _, id := range []string{parent.ID, child.ID} {
		got, err := f.server.runs.GetRun(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, run.StatusCancelled, got.Status)
	}

	// The pending wake must not fire for a cancelled tree.
	gotTrigger, err := f.ent.Trigger.Get(ctx, tr.ID)
	require.NoError(t, err)
	assert.False(t, gotTrigger.Enabled)

	// Cancelling again is a no-op, not an error.
	var again CancelResponse
	f.doJSON(t, http.MethodPost, "/api/v1/runs/"+parent.ID+"/cancel", nil, http.StatusOK, &again)
	assert.Equal(t, 0, again.Cancelled)

	f.wantError(t, http.MethodPost, "/api/v1/runs/ghost-run/cancel", nil,
		http.StatusNotFound, "resource not found")
}
