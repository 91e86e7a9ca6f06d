package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/runstep"
	"github.com/conductorhq/conductor/pkg/config"
	"github.com/conductorhq/conductor/pkg/models"
)

func assistantStep(sig string, action, hadToolCall bool, outputHash string) *ent.RunStep {
	return &ent.RunStep{
		Type:   runstep.TypeAssistantMessage,
		Status: runstep.StatusCompleted,
		Result: map[string]any{
			"signature":   sig,
			"action":      action,
			"hadToolCall": hadToolCall,
			"outputHash":  outputHash,
		},
	}
}

func eventStep(event string, extra map[string]any) *ent.RunStep {
	result := map[string]any{"event": event}
	for k, v := range extra {
		result[k] = v
	}
	return &ent.RunStep{
		Type:   runstep.TypeMessage,
		Status: runstep.StatusCompleted,
		Result: result,
	}
}

func TestRebuildStateEmpty(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	st := rebuildState(nil, &cfg)

	assert.Zero(t, st.Iteration)
	assert.Zero(t, st.ActionCount)
	assert.Equal(t, cfg.MaxIterations, st.Limit)
	assert.False(t, st.LimitationRequired)
	assert.NotNil(t, st.ToolSigCount)
	assert.NotNil(t, st.SpawnSigs)
	assert.NotEmpty(t, st.Notes.missingForAction())
}

func TestRebuildStateReplaysIterations(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	args := map[string]any{"tz": "UTC"}

	steps := []*ent.RunStep{
		assistantStep("sig-note", false, false, "h0"),
		{
			Type:   runstep.TypeNote,
			Status: runstep.StatusCompleted,
			Result: map[string]any{"category": models.NoteRequirements, "content": "Success criteria: a result."},
		},
		assistantStep("sig-tool", true, true, "h0"),
		{Type: runstep.TypeToolCall, ToolName: "clock.now", Args: args},
		{Type: runstep.TypeToolResult, ToolName: "clock.now", Status: runstep.StatusCompleted, Result: map[string]any{"now": "t1"}},
		assistantStep("sig-msg", true, false, "h1"),
	}

	st := rebuildState(steps, &cfg)

	assert.Equal(t, 3, st.Iteration)
	assert.Equal(t, 2, st.ActionCount)
	assert.Len(t, st.Recent, 3)
	assert.Equal(t, "sig-msg", st.Recent[2].Signature)
	assert.Equal(t, 1, st.ToolSigCount[toolSignature("clock.now", args)])
	assert.Equal(t, "Success criteria: a result.", st.Notes.Requirements)
	assert.False(t, st.LimitationRequired)
}

func TestRebuildStateToolFailuresArmLimitation(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	require.Equal(t, 2, cfg.MaxToolRetries)

	failure := func(n int) *ent.RunStep {
		return &ent.RunStep{
			Type:     runstep.TypeToolResult,
			ToolName: "web.fetch",
			Status:   runstep.StatusFailed,
			Result:   map[string]any{"error": "connection refused", "attempt": n},
		}
	}

	st := rebuildState([]*ent.RunStep{failure(1), failure(2)}, &cfg)
	assert.False(t, st.LimitationRequired, "failures within the retry budget do not arm the limitation")

	st = rebuildState([]*ent.RunStep{failure(1), failure(2), failure(3)}, &cfg)
	assert.True(t, st.LimitationRequired)
	assert.Equal(t, 3, st.ToolFailures["web.fetch"])
}

func TestRebuildStateIdenticalToolResultArmsLimitation(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	args := map[string]any{"city": "Oslo"}
	result := map[string]any{"temp": "12C"}

	call := &ent.RunStep{Type: runstep.TypeToolCall, ToolName: "weather.lookup", Args: args}
	res := &ent.RunStep{Type: runstep.TypeToolResult, ToolName: "weather.lookup", Status: runstep.StatusCompleted, Result: result}

	st := rebuildState([]*ent.RunStep{call, res}, &cfg)
	assert.False(t, st.LimitationRequired)

	st = rebuildState([]*ent.RunStep{call, res, call, res}, &cfg)
	assert.True(t, st.LimitationRequired, "the same call returning the same result twice in a row means no new information")

	fresh := &ent.RunStep{Type: runstep.TypeToolResult, ToolName: "weather.lookup", Status: runstep.StatusCompleted, Result: map[string]any{"temp": "13C"}}
	st = rebuildState([]*ent.RunStep{call, res, call, fresh}, &cfg)
	assert.False(t, st.LimitationRequired)
}

func TestRebuildStateBudgetEvents(t *testing.T) {
	cfg := config.DefaultEngineConfig()

	st := rebuildState([]*ent.RunStep{
		eventStep(models.EventBudgetDecision, map[string]any{"action": "extend", "maxIterations": 20}),
	}, &cfg)
	assert.Equal(t, 20, st.Limit)

	st = rebuildState([]*ent.RunStep{
		eventStep(models.EventBudgetDecision, map[string]any{"action": "extend", "maxIterations": 100}),
	}, &cfg)
	assert.Equal(t, cfg.MaxIterationsHardCap, st.Limit)

	st = rebuildState([]*ent.RunStep{
		eventStep(models.EventBudgetDecision, map[string]any{"action": "extend", "maxIterations": 1}),
	}, &cfg)
	assert.Equal(t, cfg.MinIterations, st.Limit)

	// Refusals keep the limit and count strikes instead.
	st = rebuildState([]*ent.RunStep{
		eventStep(models.EventBudgetDecision, map[string]any{"action": "refuse"}),
		eventStep(models.EventActionBlocked, map[string]any{"reason": "budget_exceeded"}),
		eventStep(models.EventActionBlocked, map[string]any{"reason": "budget_exceeded"}),
		eventStep(models.EventActionBlocked, map[string]any{"reason": "rationale_missing"}),
		eventStep(models.EventSystemNote, map[string]any{"note": "respond with JSON"}),
	}, &cfg)
	assert.Equal(t, cfg.MaxIterations, st.Limit)
	assert.Equal(t, 2, st.BudgetStrikes)
	assert.Equal(t, 1, st.SystemNotes)
}

func TestRebuildStateSpawnEvents(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	spec := models.SpawnSpec{Task: "look up the Oslo population"}

	// Spawn events persist raw specs; the replayed signature must match
	// what spawnSignature computes for the live struct.
	data, err := json.Marshal(spec)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	st := rebuildState([]*ent.RunStep{
		eventStep(models.EventSpawnSubagents, map[string]any{"specs": []any{raw}}),
		eventStep(models.EventSpawnBlocked, map[string]any{"all": true}),
		eventStep(models.EventSpawnBlocked, map[string]any{"all": false}),
	}, &cfg)

	assert.True(t, st.SpawnSigs[spawnSignature(spec)])
	assert.Equal(t, 1, st.BlockedSpawnAttempts)
}

func TestRebuildStateValidationAndFinishEvents(t *testing.T) {
	cfg := config.DefaultEngineConfig()

	st := rebuildState([]*ent.RunStep{
		eventStep(models.EventValidationResult, map[string]any{
			"decision": "revise", "feedback": "name the larger city explicitly", "outputHash": "aaaa",
		}),
	}, &cfg)
	assert.Equal(t, 1, st.ValidationAttempts)
	assert.Equal(t, "name the larger city explicitly", st.ValidationFeedback)
	assert.Equal(t, "aaaa", st.lastValidatedHash)

	st = rebuildState([]*ent.RunStep{
		eventStep(models.EventValidationResult, map[string]any{"decision": "revise", "feedback": "too vague", "outputHash": "aaaa"}),
		eventStep(models.EventValidationResult, map[string]any{"decision": "pass", "outputHash": "bbbb"}),
	}, &cfg)
	assert.Equal(t, 2, st.ValidationAttempts)
	assert.Empty(t, st.ValidationFeedback, "a pass clears stale feedback")

	st = rebuildState([]*ent.RunStep{
		eventStep(models.EventValidationResult, map[string]any{"decision": "revise", "feedback": "too vague", "outputHash": "aaaa"}),
		eventStep(models.EventValidationRetryExhausted, nil),
	}, &cfg)
	assert.Empty(t, st.ValidationFeedback)

	st = rebuildState([]*ent.RunStep{
		eventStep(models.EventFinishBlocked, map[string]any{"missing": "note(plan)", "outputHash": "cccc"}),
		eventStep(models.EventFinishBlocked, map[string]any{"missing": "note(plan)", "outputHash": "dddd"}),
	}, &cfg)
	assert.Equal(t, 2, st.FinishBlocked)
	assert.Equal(t, "dddd", st.LastFinishOutput)
}

func TestNoRecentProgress(t *testing.T) {
	st := &iterState{}

	st.pushRecent(iterationRecord{Signature: "a", OutputHash: "h"})
	st.pushRecent(iterationRecord{Signature: "a", OutputHash: "h"})
	assert.False(t, st.noRecentProgress(), "window not yet full")

	st.pushRecent(iterationRecord{Signature: "b", OutputHash: "h"})
	assert.True(t, st.noRecentProgress())
	assert.False(t, st.repeatedCommand(), "mixed signatures stall without repeating")

	st.pushRecent(iterationRecord{Signature: "b", OutputHash: "h", HadToolCall: true})
	assert.False(t, st.noRecentProgress(), "a tool call counts as progress")

	st = &iterState{}
	for range 3 {
		st.pushRecent(iterationRecord{Signature: "same", OutputHash: "h"})
	}
	assert.True(t, st.noRecentProgress())
	assert.True(t, st.repeatedCommand())

	st.pushRecent(iterationRecord{Signature: "same", OutputHash: "h2"})
	assert.False(t, st.noRecentProgress(), "output change counts as progress")
}

func TestPushRecentKeepsWindow(t *testing.T) {
	st := &iterState{}
	for i := range 5 {
		st.pushRecent(iterationRecord{Signature: string(rune('a' + i))})
	}
	require.Len(t, st.Recent, repetitionWindow)
	assert.Equal(t, "c", st.Recent[0].Signature)
	assert.Equal(t, "e", st.Recent[2].Signature)
}

func TestSignatureStability(t *testing.T) {
	sig1 := toolSignature("weather.lookup", map[string]any{"city": "Oslo", "units": "metric"})
	sig2 := toolSignature("weather.lookup", map[string]any{"units": "metric", "city": "Oslo"})
	assert.Equal(t, sig1, sig2, "map key order must not change the signature")
	assert.NotEqual(t, sig1, toolSignature("weather.lookup", map[string]any{"city": "Bergen"}))
	assert.NotEqual(t, sig1, toolSignature("weather.forecast", map[string]any{"city": "Oslo", "units": "metric"}))

	cmdSig := commandSignature(&RunCommand{Type: CmdSendMessage, Message: "hello"})
	assert.Equal(t, cmdSig, commandSignature(&RunCommand{Type: CmdSendMessage, Message: "hello"}))
	assert.NotEqual(t, cmdSig, commandSignature(&RunCommand{Type: CmdSendMessage, Message: "hi"}))

	level := 2
	spec := models.SpawnSpec{Task: "research", Tools: []string{"memory.search"}, AgentLevel: &level}
	other := 2
	assert.Equal(t, spawnSignature(spec),
		spawnSignature(models.SpawnSpec{Task: "research", Tools: []string{"memory.search"}, AgentLevel: &other}),
		"equal specs hash equally regardless of pointer identity")
	assert.NotEqual(t, spawnSignature(spec), spawnSignature(models.SpawnSpec{Task: "research"}))
}

func TestHashHelpers(t *testing.T) {
	assert.Len(t, hashJSON(map[string]any{"a": 1}), 16)
	assert.Equal(t, hashJSON("x"), hashJSON("x"))
	assert.Len(t, hashString("anything"), 16)
	assert.NotEqual(t, hashString("a"), hashString("b"))
}
