package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent/queuejob"
	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/ent/runstep"
	"github.com/conductorhq/conductor/pkg/queue"
)

// TestCancelStopsRunAtIterationBoundary cancels a run through the API
// while the engine is parked inside an LLM call. The cancel lands in
// the database immediately; the engine notices at the next iteration
// boundary and stops without finishing or replying.
func TestCancelStopsRunAtIterationBoundary(t *testing.T) {
	release := make(chan struct{})
	blocked := make(chan struct{}, 1)

	llmc := NewScriptedLLMClient()
	llmc.AddSequential(coordinatorPreamble()...)
	llmc.AddSequential(LLMScriptEntry{
		Text:    `{"type":"decision","content":"Keep drafting the summary."}`,
		WaitCh:  release,
		OnBlock: blocked,
	})

	app := NewTestApp(t, WithLLMClient(llmc))

	resp := app.PostMessage(t, "user-1", "Write a long status summary")
	runID := field(t, resp, "runId")
	channelID := field(t, resp, "channelId")

	<-blocked

	cancelResp := app.CancelRun(t, runID)
	assert.Equal(t, runID, cancelResp["runId"])
	assert.EqualValues(t, 1, cancelResp["cancelled"])
	assert.Equal(t, "Run cancellation requested", cancelResp["message"])

	got := app.GetRun(t, runID)
	assert.Equal(t, "cancelled", got["status"])

	close(release)

	// the engine drains the in-flight iteration, then exits quietly
	require.Eventually(t, func() bool {
		jobs := app.Jobs(t, queue.QueueRuns)
		return len(jobs) == 1 && jobs[0].Status == queuejob.StatusCompleted
	}, waitTimeout, pollInterval, "the run job never finished")

	r := app.WaitForRunStatus(t, runID, run.StatusCancelled)
	assert.Empty(t, r.OutputText)

	steps := app.RunSteps(t, runID)
	assert.Equal(t, 0, countType(steps, runstep.TypeFinish))
	assert.Equal(t, 1, countType(steps, runstep.TypeDecision))
	assert.Empty(t, app.Outbound(t, channelID), "a cancelled run must not reply")

	assert.Equal(t, 4, llmc.CallCount())
}

// TestCancelUnknownRunReturnsNotFound covers the 404 path.
func TestCancelUnknownRunReturnsNotFound(t *testing.T) {
	app := NewTestApp(t)

	body := app.doJSON(t, "POST", "/api/v1/runs/no-such-run/cancel", nil, 404)
	assert.Equal(t, "resource not found", body["error"])
}
