package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommandStrictJSON(t *testing.T) {
	cmd, err := ParseCommand(`{"type":"tool_call","name":"clock.now","args":{"tz":"UTC"}}`)
	require.NoError(t, err)

	assert.Equal(t, CmdToolCall, cmd.Type)
	assert.Equal(t, "clock.now", cmd.Name)
	assert.Equal(t, map[string]any{"tz": "UTC"}, cmd.Args)
	assert.True(t, cmd.IsAction())
	assert.True(t, cmd.IsKnown())
}

func TestParseCommandJSON5Looseness(t *testing.T) {
	// Trailing commas and single quotes show up constantly in model output.
	cmd, err := ParseCommand(`{type: 'finish', output: 'done',}`)
	require.NoError(t, err)

	assert.Equal(t, CmdFinish, cmd.Type)
	assert.Equal(t, "done", cmd.Output)
}

func TestParseCommandExtractsFencedBlock(t *testing.T) {
	raw := "Here is my next step:\n```json\n{\"type\": \"note\", \"category\": \"plan\", \"content\": \"1. Do it.\\n2. Check it.\"}\n```\nLet me know."
	cmd, err := ParseCommand(raw)
	require.NoError(t, err)

	assert.Equal(t, CmdNote, cmd.Type)
	assert.Equal(t, "plan", cmd.Category)
}

func TestParseCommandBalancedBracesInsideStrings(t *testing.T) {
	raw := `prefix {"type":"send_message","message":"use {braces} and \"quotes\" freely"} suffix`
	cmd, err := ParseCommand(raw)
	require.NoError(t, err)

	assert.Equal(t, CmdSendMessage, cmd.Type)
	assert.Equal(t, `use {braces} and "quotes" freely`, cmd.Message)
}

func TestParseCommandFieldAliases(t *testing.T) {
	cmd, err := ParseCommand(`{"action":"tool_call","tool":"memory.search","arguments":{"query":"golang"}}`)
	require.NoError(t, err)

	assert.Equal(t, CmdToolCall, cmd.Type)
	assert.Equal(t, "memory.search", cmd.Name)
	assert.Equal(t, map[string]any{"query": "golang"}, cmd.Args)
}

func TestParseCommandQueueOpActionDisambiguation(t *testing.T) {
	// "action" names the command type here, so the queue action has to be
	// picked up from its alias.
	cmd, err := ParseCommand(`{"action":"queue_op","queueAction":"push","items":["write tests","ship"]}`)
	require.NoError(t, err)

	assert.Equal(t, CmdQueueOp, cmd.Type)
	assert.Equal(t, "push", cmd.Action)
	assert.Equal(t, []string{"write tests", "ship"}, cmd.Items)

	_, err = ParseCommand(`{"type":"queue_op","action":"reverse"}`)
	assert.ErrorContains(t, err, "push, shift, clear, or set")
}

func TestParseCommandSpawnSubagentInlineSpec(t *testing.T) {
	// Models frequently inline the spec fields instead of nesting them
	// under "subagent".
	cmd, err := ParseCommand(`{"type":"spawn_subagent","task":"Find the population of Oslo","tools":["memory.search"],"context":"the user asked about Nordic capitals"}`)
	require.NoError(t, err)

	require.Len(t, cmd.Subagents, 1)
	spec := cmd.Subagents[0]
	assert.Equal(t, "Find the population of Oslo", spec.Task)
	assert.Equal(t, []string{"memory.search"}, spec.Tools)
	require.Len(t, spec.Context, 1)
	assert.Equal(t, "context", spec.Context[0].Role)
}

func TestParseCommandSpawnSubagentsList(t *testing.T) {
	cmd, err := ParseCommand(`{"type":"spawn_subagents","subagents":[
		{"task":"research A","agentLevel":2},
		{"task":"research B","context":[{"role":"user_request","content":"compare A and B"}]}
	]}`)
	require.NoError(t, err)

	require.Len(t, cmd.Subagents, 2)
	require.NotNil(t, cmd.Subagents[0].AgentLevel)
	assert.Equal(t, 2, *cmd.Subagents[0].AgentLevel)
	assert.Equal(t, "user_request", cmd.Subagents[1].Context[0].Role)

	_, err = ParseCommand(`{"type":"spawn_subagents","subagents":[]}`)
	assert.Error(t, err)

	_, err = ParseCommand(`{"type":"spawn_subagent","subagent":{"profile":"worker"}}`)
	assert.ErrorContains(t, err, "task")
}

func TestParseCommandSleepVariants(t *testing.T) {
	cmd, err := ParseCommand(`{"type":"sleep","delaySeconds":"90","reason":"waiting for data"}`)
	require.NoError(t, err)
	assert.True(t, cmd.HasDelay)
	assert.Equal(t, 90, cmd.DelaySeconds)
	assert.Equal(t, "waiting for data", cmd.Reason)

	cmd, err = ParseCommand(`{"type":"sleep","wake_at":"2026-03-01T08:00:00Z"}`)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01T08:00:00Z", cmd.WakeAt)
	assert.False(t, cmd.HasDelay)

	cmd, err = ParseCommand(`{"type":"sleep","cron":"0 8 * * *"}`)
	require.NoError(t, err)
	assert.Equal(t, "0 8 * * *", cmd.Cron)
}

func TestParseCommandSetRunLimits(t *testing.T) {
	cmd, err := ParseCommand(`{"type":"set_run_limits","maxIterations":20,"reason":"long research task"}`)
	require.NoError(t, err)
	assert.Equal(t, 20, cmd.MaxIterations)
	assert.False(t, cmd.IsAction(), "budget extensions are free, not actions")

	_, err = ParseCommand(`{"type":"set_run_limits","maxIterations":0}`)
	assert.Error(t, err)

	_, err = ParseCommand(`{"type":"set_run_limits"}`)
	assert.Error(t, err)
}

func TestParseCommandNoteValidation(t *testing.T) {
	_, err := ParseCommand(`{"type":"note","category":"musings","content":"hmm"}`)
	assert.ErrorContains(t, err, "category")

	_, err = ParseCommand(`{"type":"note","category":"plan"}`)
	assert.ErrorContains(t, err, "without content")

	cmd, err := ParseCommand(`{"type":"note","kind":"validation","note":"checked against the brief"}`)
	require.NoError(t, err)
	assert.Equal(t, "validation", cmd.Category)
	assert.Equal(t, "checked against the brief", cmd.Content)
	assert.False(t, cmd.IsAction())
}

func TestParseCommandRejectsGarbage(t *testing.T) {
	cases := map[string]string{
		"empty":        "",
		"prose":        "I think we should look at the weather first.",
		"no type":      `{"message":"hello"}`,
		"unknown type": `{"type":"launch_rockets"}`,
		"bare tool":    `{"type":"tool_call","args":{}}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCommand(raw)
			assert.Error(t, err)
		})
	}
}

func TestParseCommandTypeNormalization(t *testing.T) {
	cmd, err := ParseCommand(`{"type":"  FINISH  ","output":"done"}`)
	require.NoError(t, err)
	assert.Equal(t, CmdFinish, cmd.Type)
}
