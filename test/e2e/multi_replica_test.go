package e2e

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent/queuejob"
	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/pkg/queue"
	testdb "github.com/conductorhq/conductor/test/database"
)

// TestRunsDistributeAcrossReplicas starts two replicas on one schema
// and holds two runs open at once. Each replica runs a single worker,
// so claiming both proves the skip-locked claim spreads work and that
// replicas never double-claim.
func TestRunsDistributeAcrossReplicas(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)

	release := make(chan struct{})
	blocked := make(chan struct{}, 2)

	llmc := NewScriptedLLMClient()
	for _, item := range []struct{ key, answer string }{
		{"alpha report", "Alpha report ready."},
		{"beta report", "Beta report ready."},
	} {
		script := answerScript(item.answer)
		first := script[0]
		first.WaitCh = release
		first.OnBlock = blocked
		llmc.AddRouted(item.key, first)
		llmc.AddRouted(item.key, script[1:]...)
	}

	appA := NewTestApp(t, WithLLMClient(llmc), WithDBClient(shared.NewClient(t)), WithPodID("replica-a"))
	appB := NewTestApp(t, WithLLMClient(llmc), WithDBClient(shared.NewClient(t)), WithPodID("replica-b"))
	_ = appB // no traffic of its own; its worker competes for the shared queue

	respA := appA.PostMessage(t, "user-a", "Prepare the alpha report")
	respB := appA.PostMessage(t, "user-b", "Prepare the beta report")

	// one worker per replica: both runs in flight means one claim each
	<-blocked
	<-blocked
	close(release)

	runA := appA.WaitForRunStatus(t, field(t, respA, "runId"), run.StatusCompleted)
	runB := appA.WaitForRunStatus(t, field(t, respB, "runId"), run.StatusCompleted)
	assert.Equal(t, "Alpha report ready.", runA.OutputText)
	assert.Equal(t, "Beta report ready.", runB.OutputText)

	jobs := appA.Jobs(t, queue.QueueRuns)
	require.Len(t, jobs, 2)
	claims := map[string]int{}
	for _, j := range jobs {
		assert.Equal(t, queuejob.StatusCompleted, j.Status)
		require.NotNil(t, j.ClaimedBy)
		switch {
		case strings.HasPrefix(*j.ClaimedBy, "replica-a"):
			claims["replica-a"]++
		case strings.HasPrefix(*j.ClaimedBy, "replica-b"):
			claims["replica-b"]++
		default:
			t.Fatalf("job %s claimed by unexpected worker %q", j.ID, *j.ClaimedBy)
		}
	}
	assert.Equal(t, map[string]int{"replica-a": 1, "replica-b": 1}, claims)

	assert.Equal(t, 10, llmc.CallCount())
}
