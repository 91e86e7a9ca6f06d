package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent/runstep"
)

func TestAppendStepAssignsMonotonicSeq(t *testing.T) {
	client := newTestClient(t)
	runs := NewRunService(client)
	steps := NewStepService(client)
	ctx := context.Background()

	r := seedCoordinator(t, runs, "user-1", "ch-1", "step logging")

	first, err := steps.AppendStep(ctx, AppendStepParams{
		RunID: r.ID,
		Type:  runstep.TypeNote,
		Args:  map[string]any{"category": "requirements", "content": "user wants a summary"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Seq)
	assert.Equal(t, runstep.StatusCompleted, first.Status, "status defaults to completed")

	second, err := steps.AppendStep(ctx, AppendStepParams{
		RunID:    r.ID,
		Type:     runstep.TypeToolCall,
		ToolName: "recon.fetch",
		Args:     map[string]any{"limit": 3},
		Status:   runstep.StatusFailed,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, second.Seq)
	assert.Equal(t, "recon.fetch", second.ToolName)
	assert.Equal(t, runstep.StatusFailed, second.Status)

	var ve *ValidationError
	_, err = steps.AppendStep(ctx, AppendStepParams{Type: runstep.TypeNote})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "run_id", ve.Field)
	_, err = steps.AppendStep(ctx, AppendStepParams{RunID: r.ID})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "type", ve.Field)
}

func TestAppendStepReplaysIdempotently(t *testing.T) {
	client := newTestClient(t)
	runs := NewRunService(client)
	steps := NewStepService(client)
	ctx := context.Background()

	r := seedCoordinator(t, runs, "user-1", "ch-1", "replay safety")

	params := AppendStepParams{
		RunID:          r.ID,
		Type:           runstep.TypeToolResult,
		ToolName:       "recon.fetch",
		Result:         map[string]any{"items": 3},
		IdempotencyKey: r.ID + ":1:tool_result",
	}
	original, err := steps.AppendStep(ctx, params)
	require.NoError(t, err)

	// A crashed worker re-executes the iteration; the replayed insert
	// must return the original row instead of duplicating it.
	replayed, err := steps.AppendStep(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, original.ID, replayed.ID)
	assert.Equal(t, original.Seq, replayed.Seq)

	count, err := steps.CountSteps(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStepListingWindows(t *testing.T) {
	client := newTestClient(t)
	runs := NewRunService(client)
	steps := NewStepService(client)
	ctx := context.Background()

	r := seedCoordinator(t, runs, "user-1", "ch-1", "list slicing")

	types := []runstep.Type{
		runstep.TypeNote,
		runstep.TypeNote,
		runstep.TypeToolCall,
		runstep.TypeToolResult,
		runstep.TypeFinish,
	}
	for _, st := range types {
		_, err := steps.AppendStep(ctx, AppendStepParams{RunID: r.ID, Type: st})
		require.NoError(t, err)
	}

	all, err := steps.ListSteps(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i, step := range all {
		assert.Equal(t, i+1, step.Seq)
	}

	after, err := steps.ListStepsAfter(ctx, r.ID, 3)
	require.NoError(t, err)
	require.Len(t, after, 2)
	assert.Equal(t, 4, after[0].Seq)
	assert.Equal(t, 5, after[1].Seq)

	recent, err := steps.ListRecentSteps(ctx, r.ID, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, 4, recent[0].Seq, "recent window returns ascending seq")
	assert.Equal(t, 5, recent[1].Seq)

	notes, err := steps.ListStepsByType(ctx, r.ID, runstep.TypeNote)
	require.NoError(t, err)
	assert.Len(t, notes, 2)

	empty, err := steps.ListSteps(ctx, "no-such-run")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
