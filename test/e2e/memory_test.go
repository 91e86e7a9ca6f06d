package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/memoryitem"
	"github.com/conductorhq/conductor/ent/queuejob"
	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/pkg/queue"
)

// TestContextRotationDistillsMemories caps a context at two turns and
// sends three messages. Closing the first context must queue a
// distillation pass that runs on the user's own LLM key and lands the
// extracted fact in the memory store.
func TestContextRotationDistillsMemories(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.Memory.MaxTurnsPerContext = 2

	llmc := NewScriptedLLMClient()
	// the distillation call carries the conversation segment marker;
	// run payloads are JSON and never contain it
	llmc.AddRouted("## Conversation Segment",
		say(`[{"op":"add","module":"preferences","key":"favorite_color","value":"teal","level":1,"confidence":0.95}]`))
	llmc.AddSequential(answerScript("Noted: teal it is.")...)
	llmc.AddSequential(answerScript("Nothing else needed.")...)
	llmc.AddSequential(answerScript("Carrying on.")...)

	app := NewTestApp(t, WithConfig(cfg), WithLLMClient(llmc))
	ctx := context.Background()

	settings := app.PutSettings(t, "user-7", map[string]any{
		"memoryEnabled": true,
		"llmApiKey":     "sk-user-test-123",
		"llmKeyMeta":    map[string]any{"provider": "openai", "model": "gpt-test-mini"},
	})
	assert.Equal(t, true, settings["memoryEnabled"])
	assert.Equal(t, true, settings["hasApiKey"])

	fetched := app.GetSettings(t, "user-7")
	assert.Equal(t, true, fetched["hasApiKey"])
	assert.Equal(t, "openai", fetched["provider"])

	for i, content := range []string{
		"My favorite color is teal, remember that.",
		"Thanks. Anything else you need from me?",
		"Great, carry on.",
	} {
		resp := app.PostMessage(t, "user-7", content)
		require.Equal(t, "queued", resp["status"], "message %d", i)
		app.WaitForRunStatus(t, field(t, resp, "runId"), run.StatusCompleted)
	}

	// the third message closed the first context
	writes := app.Jobs(t, queue.QueueMemoryWrites)
	require.Len(t, writes, 1)

	var item *ent.MemoryItem
	require.Eventually(t, func() bool {
		got, err := app.Ent.MemoryItem.Query().
			Where(
				memoryitem.UserIDEQ("user-7"),
				memoryitem.KeyEQ("favorite_color"),
			).
			Only(ctx)
		if err != nil {
			return false
		}
		item = got
		return true
	}, waitTimeout, pollInterval, "the distilled fact never appeared")

	assert.Equal(t, "preferences", string(item.Module))
	assert.Equal(t, "teal", item.Value)
	assert.Equal(t, 1, item.Level)
	assert.InDelta(t, 0.95, item.Confidence, 0.001)
	assert.False(t, item.Archived)

	// the writer used the user's sealed key and preferred model
	var writerSeen bool
	for _, req := range llmc.Requests() {
		if req.APIKey == "sk-user-test-123" {
			writerSeen = true
			assert.Equal(t, "gpt-test-mini", req.Model)
			assert.True(t, req.JSONOnly)
		}
	}
	assert.True(t, writerSeen, "the distillation call must carry the user's key")

	assert.Equal(t, 16, llmc.CallCount())
}

// TestMemoryWriteSkippedWithoutUserKey closes a context for a user who
// enabled memory but never stored an LLM key. The write job must finish
// without calling the model or storing anything.
func TestMemoryWriteSkippedWithoutUserKey(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.Memory.MaxTurnsPerContext = 1

	llmc := NewScriptedLLMClient()
	llmc.AddSequential(answerScript("First reply.")...)
	llmc.AddSequential(answerScript("Second reply.")...)

	app := NewTestApp(t, WithConfig(cfg), WithLLMClient(llmc))

	settings := app.PutSettings(t, "user-8", map[string]any{"memoryEnabled": true})
	assert.Equal(t, false, settings["hasApiKey"])

	for _, content := range []string{"Remember I work nights.", "Second message."} {
		resp := app.PostMessage(t, "user-8", content)
		app.WaitForRunStatus(t, field(t, resp, "runId"), run.StatusCompleted)
	}

	require.Eventually(t, func() bool {
		jobs := app.Jobs(t, queue.QueueMemoryWrites)
		if len(jobs) == 0 {
			return false
		}
		for _, j := range jobs {
			if j.Status != queuejob.StatusCompleted {
				return false
			}
		}
		return true
	}, waitTimeout, pollInterval, "the write job never drained")

	count, err := app.Ent.MemoryItem.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)

	// both runs, no distillation calls
	assert.Equal(t, 10, llmc.CallCount())
}
