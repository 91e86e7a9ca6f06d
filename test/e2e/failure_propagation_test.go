package e2e

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/pkg/models"
)

// TestLLMFailureFailsRunAndTellsUser drives a provider outage through
// the stack: the run fails with the transport error recorded and the
// user gets the generic failure reply, not the raw error.
func TestLLMFailureFailsRunAndTellsUser(t *testing.T) {
	llmc := NewScriptedLLMClient()
	llmc.AddSequential(coordinatorPreamble()...)
	llmc.AddSequential(LLMScriptEntry{Error: errors.New("model overloaded")})

	app := NewTestApp(t, WithLLMClient(llmc))

	resp := app.PostMessage(t, "user-1", "Summarize the incident channel")
	runID := field(t, resp, "runId")
	channelID := field(t, resp, "channelId")

	r := app.WaitForRunStatus(t, runID, run.StatusFailed)
	require.NotNil(t, r.ErrorMessage)
	assert.Equal(t, "llm call failed: model overloaded", *r.ErrorMessage)
	assert.Empty(t, r.OutputText)

	got := app.GetRun(t, runID)
	assert.Equal(t, "failed", got["status"])
	assert.Equal(t, "llm call failed: model overloaded", got["errorMessage"])

	msgs := app.WaitForOutbound(t, channelID, 1)
	assert.Equal(t, "Something went wrong while I was working on your request. Please try again.", msgs[0].Content)

	assert.Equal(t, 4, llmc.CallCount())
}

// TestWorkerFailurePropagatesToParent fails a spawned worker and checks
// the coordinator wakes, sees the failure, and still answers the user.
func TestWorkerFailurePropagatesToParent(t *testing.T) {
	var hits atomic.Int64

	llmc := NewScriptedLLMClient()
	llmc.AddSequential(coordinatorPreamble()...)
	llmc.AddSequential(say(`{"type":"tool_call","name":"recon.fetch","args":{}}`))
	// the worker dies on its first completion
	llmc.AddSequential(LLMScriptEntry{Error: errors.New("model down")})
	// the coordinator resumes and reports the limitation
	llmc.AddSequential(
		say(`{"type":"finish","output":"I could not check the feeds: the recon worker failed."}`),
		say(`{"decision":"send"}`),
	)

	app := NewTestApp(t, WithLLMClient(llmc), WithTools(reconTool(&hits)))

	resp := app.PostMessage(t, "user-1", "Check the upstream feeds")
	parentID := field(t, resp, "runId")
	channelID := field(t, resp, "channelId")

	children := app.WaitForChildRuns(t, parentID, 1)
	child := children[0]

	gotChild := app.WaitForRunStatus(t, child.ID, run.StatusFailed)
	require.NotNil(t, gotChild.ErrorMessage)
	assert.Equal(t, "llm call failed: model down", *gotChild.ErrorMessage)

	gotParent := app.WaitForRunStatus(t, parentID, run.StatusCompleted)
	assert.Equal(t, "I could not check the feeds: the recon worker failed.", gotParent.OutputText)

	parentSteps := app.RunSteps(t, parentID)
	failed := findEvent(parentSteps, models.EventSubagentFailed)
	require.NotNil(t, failed, "the parent must see the worker failure")
	assert.Equal(t, child.ID, failed.Result["runId"])

	// only the coordinator talks to the user, and only once
	msgs := app.WaitForOutbound(t, channelID, 1)
	assert.Equal(t, "I could not check the feeds: the recon worker failed.", msgs[0].Content)
	assert.Len(t, app.Outbound(t, channelID), 1)

	assert.EqualValues(t, 0, hits.Load())
	assert.Equal(t, 7, llmc.CallCount())
}
