package e2e

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/ent/runstep"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/conductorhq/conductor/pkg/queue"
	"github.com/conductorhq/conductor/pkg/tools"
)

func reconTool(hits *atomic.Int64) tools.Tool {
	return tools.Tool{
		Name:             "recon",
		ShortDescription: "Test probe over upstream feeds",
		Commands: []tools.Command{{
			Name:        "fetch",
			Description: "Fetch the current upstream item count",
			Handler: func(_ context.Context, _ tools.ToolContext, _ map[string]any) (tools.Result, error) {
				hits.Add(1)
				return tools.Result{Success: true, Result: map[string]any{"items": 3}}, nil
			},
		}},
	}
}

// TestCoordinatorDelegatesToolWork drives the full delegation cycle
// through the queue: a coordinator's tool call becomes a one-shot
// worker, the worker runs the tool and finishes, and the woken
// coordinator replies to the user.
func TestCoordinatorDelegatesToolWork(t *testing.T) {
	var hits atomic.Int64

	llmc := NewScriptedLLMClient()
	llmc.AddSequential(coordinatorPreamble()...)
	llmc.AddSequential(say(`{"type":"tool_call","name":"recon.fetch","args":{}}`))
	// the spawned worker's script
	llmc.AddSequential(workerPreamble()...)
	llmc.AddSequential(
		say(`{"type":"tool_call","name":"recon.fetch","args":{}}`),
		say(`{"type":"finish","output":"Recon found 3 new upstream items."}`),
		say(`{"decision":"send"}`),
	)
	// the coordinator resumes once the worker reports back
	llmc.AddSequential(
		say(`{"type":"finish","output":"Recon complete: 3 new items upstream."}`),
		say(`{"decision":"send"}`),
	)

	app := NewTestApp(t, WithLLMClient(llmc), WithTools(reconTool(&hits)))

	resp := app.PostMessage(t, "user-1", "Check the upstream feeds for anything new")
	parentID := field(t, resp, "runId")
	channelID := field(t, resp, "channelId")

	children := app.WaitForChildRuns(t, parentID, 1)
	child := children[0]
	assert.Equal(t, run.KindSubagent, child.Kind)
	require.NotNil(t, child.Profile)
	assert.Equal(t, "auto_tool", *child.Profile)
	assert.Equal(t, []string{"recon.fetch"}, child.AllowedTools)
	assert.Equal(t, 1, child.Input.AgentLevel)
	assert.False(t, child.Input.AllowSubagents)

	gotChild := app.WaitForRunStatus(t, child.ID, run.StatusCompleted)
	assert.Equal(t, "Recon found 3 new upstream items.", gotChild.OutputText)

	gotParent := app.WaitForRunStatus(t, parentID, run.StatusCompleted)
	assert.Equal(t, "Recon complete: 3 new items upstream.", gotParent.OutputText)

	childSteps := app.RunSteps(t, child.ID)
	assert.Equal(t, 1, countType(childSteps, runstep.TypeToolCall))
	assert.Equal(t, 1, countType(childSteps, runstep.TypeToolResult))
	assert.EqualValues(t, 1, hits.Load(), "only the worker runs the tool")

	parentSteps := app.RunSteps(t, parentID)
	assert.Equal(t, 0, countType(parentSteps, runstep.TypeToolCall))
	spawn := findEvent(parentSteps, models.EventAutoSpawnFromToolCall)
	require.NotNil(t, spawn)
	result := findEvent(parentSteps, models.EventSubagentResult)
	require.NotNil(t, result)
	assert.Equal(t, child.ID, result.Result["runId"])

	// the parent parked behind a watchdog wake while the worker ran
	wakeJobs := app.Jobs(t, queue.QueueWake)
	require.NotEmpty(t, wakeJobs)

	apiChild := app.GetRun(t, child.ID)
	assert.Equal(t, "subagent", apiChild["kind"])
	assert.Equal(t, parentID, apiChild["parentRunId"])
	assert.Equal(t, parentID, apiChild["rootRunId"])

	msgs := app.WaitForOutbound(t, channelID, 1)
	assert.Equal(t, "Recon complete: 3 new items upstream.", msgs[0].Content)
	require.Len(t, app.Outbound(t, channelID), 1, "the worker must not message the user directly")

	assert.Equal(t, 12, llmc.CallCount())
}
