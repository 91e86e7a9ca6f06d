package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/ent/runstep"
	"github.com/conductorhq/conductor/pkg/models"
)

// TestDirectAnswerDeliversReply walks the happy path end to end: a user
// message becomes a coordinator run, the run finishes with an output,
// and the reply lands on the channel.
func TestDirectAnswerDeliversReply(t *testing.T) {
	llmc := NewScriptedLLMClient()
	llmc.AddSequential(answerScript("Ship small, ship often.")...)

	app := NewTestApp(t, WithLLMClient(llmc))

	resp := app.PostMessage(t, "user-1", "What is the team motto?")
	assert.Equal(t, "queued", resp["status"])
	runID := field(t, resp, "runId")
	channelID := field(t, resp, "channelId")
	assert.NotEmpty(t, resp["messageId"])

	r := app.WaitForRunStatus(t, runID, run.StatusCompleted)
	assert.Equal(t, "Ship small, ship often.", r.OutputText)
	assert.Nil(t, r.ErrorMessage)

	got := app.GetRun(t, runID)
	assert.Equal(t, "completed", got["status"])
	assert.Equal(t, "coordinator", got["kind"])
	assert.Equal(t, "Ship small, ship often.", got["outputText"])
	assert.Equal(t, "What is the team motto?", got["inputText"])

	steps := app.RunSteps(t, runID)
	finish := lastFinish(steps)
	require.NotNil(t, finish)
	assert.Equal(t, "Ship small, ship often.", finish.Result["output"])

	apiSteps := app.GetRunSteps(t, runID)
	assert.Equal(t, runID, apiSteps["runId"])
	assert.NotEmpty(t, apiSteps["steps"])

	msgs := app.WaitForOutbound(t, channelID, 1)
	assert.Equal(t, "Ship small, ship often.", msgs[0].Content)

	assert.Equal(t, 5, llmc.CallCount())
}

// TestFollowUpRoutedToActiveCoordinator verifies a second message on
// the same channel lands in the running coordinator's inbox instead of
// starting a second run.
func TestFollowUpRoutedToActiveCoordinator(t *testing.T) {
	release := make(chan struct{})
	blocked := make(chan struct{}, 1)

	llmc := NewScriptedLLMClient()
	pre := coordinatorPreamble()
	first := pre[0]
	first.WaitCh = release
	first.OnBlock = blocked
	llmc.AddSequential(first)
	llmc.AddSequential(pre[1:]...)
	llmc.AddSequential(
		say(`{"type":"finish","output":"Standup is at 9:30 and the room is unchanged."}`),
		say(`{"decision":"send"}`),
	)

	app := NewTestApp(t, WithLLMClient(llmc))

	resp := app.PostMessage(t, "user-1", "When is standup tomorrow?")
	assert.Equal(t, "queued", resp["status"])
	runID := field(t, resp, "runId")
	channelID := field(t, resp, "channelId")

	<-blocked

	followUp := app.PostMessage(t, "user-1", "Also, did the room change?")
	assert.Equal(t, "routed", followUp["status"])
	assert.Equal(t, runID, followUp["runId"])
	assert.Equal(t, channelID, followUp["channelId"])

	close(release)

	r := app.WaitForRunStatus(t, runID, run.StatusCompleted)
	require.Len(t, r.Input.State.Inbox, 1)
	assert.Equal(t, "user", r.Input.State.Inbox[0].FromRunID)
	assert.Equal(t, "Also, did the room change?", r.Input.State.Inbox[0].Message)

	coordinators, err := app.Ent.Run.Query().
		Where(run.ChannelIDEQ(channelID), run.KindEQ(run.KindCoordinator)).
		Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, coordinators, "the follow-up must not start a second run")

	msgs := app.WaitForOutbound(t, channelID, 1)
	assert.Equal(t, "Standup is at 9:30 and the room is unchanged.", msgs[0].Content)
}

// TestChannelScopedIngress sends the second message through the
// channel endpoint instead of the provider route. Same channel, new
// run, because the first coordinator already finished.
func TestChannelScopedIngress(t *testing.T) {
	llmc := NewScriptedLLMClient()
	llmc.AddSequential(answerScript("First answer.")...)
	llmc.AddSequential(answerScript("Second answer.")...)

	app := NewTestApp(t, WithLLMClient(llmc))

	first := app.PostMessage(t, "user-3", "First question")
	channelID := field(t, first, "channelId")
	firstRunID := field(t, first, "runId")
	app.WaitForRunStatus(t, firstRunID, run.StatusCompleted)

	second := app.PostChannelMessage(t, channelID, "Second question")
	assert.Equal(t, "queued", second["status"])
	assert.Equal(t, channelID, second["channelId"])
	secondRunID := field(t, second, "runId")
	assert.NotEqual(t, firstRunID, secondRunID)

	r := app.WaitForRunStatus(t, secondRunID, run.StatusCompleted)
	assert.Equal(t, "Second answer.", r.OutputText)

	msgs := app.WaitForOutbound(t, channelID, 2)
	assert.Equal(t, "First answer.", msgs[0].Content)
	assert.Equal(t, "Second answer.", msgs[1].Content)
}

// TestRunListAndStepVisibility checks the read side of the API against
// a finished run.
func TestRunListAndStepVisibility(t *testing.T) {
	llmc := NewScriptedLLMClient()
	llmc.AddSequential(answerScript("All quiet upstream.")...)

	app := NewTestApp(t, WithLLMClient(llmc))

	resp := app.PostMessage(t, "user-2", "Any news from the data team?")
	runID := field(t, resp, "runId")
	app.WaitForRunStatus(t, runID, run.StatusCompleted)

	list := app.doJSON(t, "GET", "/api/v1/runs?user_id=user-2", nil, 200)
	runs, ok := list["runs"].([]any)
	require.True(t, ok, "runs list missing: %v", list)
	require.Len(t, runs, 1)
	assert.EqualValues(t, 1, list["total"])

	entry, ok := runs[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, runID, entry["id"])
	assert.Equal(t, "completed", entry["status"])

	steps := app.RunSteps(t, runID)
	assert.Equal(t, 3, countType(steps, runstep.TypeNote))
	assert.Equal(t, 1, countType(steps, runstep.TypeFinish))
	verdict := findEvent(steps, models.EventValidationResult)
	require.NotNil(t, verdict, "the output review verdict must be recorded")
	assert.Equal(t, "send", verdict.Result["decision"])
}

func TestHealthEndpoints(t *testing.T) {
	app := NewTestApp(t)

	health := app.doJSON(t, "GET", "/health", nil, 200)
	assert.Equal(t, "healthy", health["status"])
	checks, ok := health["checks"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, checks, "database")
	assert.Contains(t, checks, "worker_pool")

	ready := app.doJSON(t, "GET", "/ready", nil, 200)
	assert.Equal(t, "ready", ready["status"])
}
