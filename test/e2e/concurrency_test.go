package e2e

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conductorhq/conductor/ent/run"
)

// TestConcurrentRunsOnOneReplica runs four channels through a pool of
// four workers. Routed scripts keep each run's completions straight
// while the LLM calls interleave.
func TestConcurrentRunsOnOneReplica(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.Queue.WorkerConcurrency = 4

	llmc := NewScriptedLLMClient()
	for i := 0; i < 4; i++ {
		llmc.AddRouted(fmt.Sprintf("ledger %d", i), answerScript(fmt.Sprintf("Ledger %d balanced.", i))...)
	}

	app := NewTestApp(t, WithConfig(cfg), WithLLMClient(llmc))

	type submitted struct {
		runID     string
		channelID string
		want      string
	}
	subs := make([]submitted, 0, 4)
	for i := 0; i < 4; i++ {
		resp := app.PostMessage(t, fmt.Sprintf("user-%d", i), fmt.Sprintf("Reconcile ledger %d", i))
		subs = append(subs, submitted{
			runID:     field(t, resp, "runId"),
			channelID: field(t, resp, "channelId"),
			want:      fmt.Sprintf("Ledger %d balanced.", i),
		})
	}

	for _, s := range subs {
		r := app.WaitForRunStatus(t, s.runID, run.StatusCompleted)
		assert.Equal(t, s.want, r.OutputText)

		msgs := app.WaitForOutbound(t, s.channelID, 1)
		assert.Equal(t, s.want, msgs[0].Content)
		assert.Len(t, app.Outbound(t, s.channelID), 1, "replies must not cross channels")
	}

	assert.Equal(t, 20, llmc.CallCount())
}
