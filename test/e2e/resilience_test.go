package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/pkg/models"
)

// TestOrphanedRunRecovers plants a run that looks claimed by a pod that
// died mid-flight: running, stale heartbeat, no queued job. The orphan
// scan must reset it to pending, re-enqueue it, and let this pod finish
// the work.
func TestOrphanedRunRecovers(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.Queue.OrphanScanInterval = 200 * time.Millisecond
	cfg.Queue.HeartbeatInterval = 200 * time.Millisecond
	cfg.Queue.OrphanThreshold = 5 * time.Second

	llmc := NewScriptedLLMClient()
	llmc.AddSequential(answerScript("Backlog cleared.")...)

	app := NewTestApp(t, WithConfig(cfg), WithLLMClient(llmc))
	ctx := context.Background()

	ch, err := app.Channels.GetOrCreate(ctx, "user-9", "web", "")
	require.NoError(t, err)

	r, err := app.Runs.CreateCoordinator(ctx, models.CreateRunRequest{
		TenantID:  "acme",
		AgentID:   "conductor",
		UserID:    "user-9",
		ChannelID: ch.ID,
		InputText: "Clear the review backlog",
	})
	require.NoError(t, err)

	require.NoError(t, app.Ent.Run.UpdateOneID(r.ID).
		SetStatus(run.StatusRunning).
		SetClaimedBy("dead-pod").
		SetLastHeartbeatAt(time.Now().Add(-time.Hour)).
		Exec(ctx))

	got := app.WaitForRunStatus(t, r.ID, run.StatusCompleted)
	assert.Equal(t, "Backlog cleared.", got.OutputText)
	assert.Nil(t, got.ClaimedBy, "completion releases the claim")

	msgs := app.WaitForOutbound(t, ch.ID, 1)
	assert.Equal(t, "Backlog cleared.", msgs[0].Content)

	assert.Equal(t, 5, llmc.CallCount())
}
