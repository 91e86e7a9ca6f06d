package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/pkg/models"
)

// TestRuntimeLimitForcesFinish shrinks the runtime budget below one
// iteration. The engine warns the model once and grants a final
// completion, then force-finishes on the next boundary with whatever
// output exists.
func TestRuntimeLimitForcesFinish(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.Engine.MaxRuntime = time.Nanosecond

	llmc := NewScriptedLLMClient()
	llmc.AddSequential(coordinatorPreamble()[0])

	app := NewTestApp(t, WithConfig(cfg), WithLLMClient(llmc))

	resp := app.PostMessage(t, "user-1", "Audit every channel for stale runs")
	runID := field(t, resp, "runId")
	channelID := field(t, resp, "channelId")

	r := app.WaitForRunStatus(t, runID, run.StatusCompleted)
	assert.Equal(t, "I had to stop early: the runtime limit was exceeded.", r.OutputText)

	steps := app.RunSteps(t, runID)

	warning := findEvent(steps, models.EventSystemNote)
	require.NotNil(t, warning, "the model must be warned before the forced finish")
	assert.Contains(t, warning.Result["content"], "Runtime limit reached")

	finish := lastFinish(steps)
	require.NotNil(t, finish)
	assert.Equal(t, models.FinishReasonRuntime, finish.Result["reason"])
	assert.Equal(t, true, finish.Result["forced"])

	msgs := app.WaitForOutbound(t, channelID, 1)
	assert.Equal(t, r.OutputText, msgs[0].Content)

	// one completion between the warning and the forced stop
	assert.Equal(t, 1, llmc.CallCount())
}
