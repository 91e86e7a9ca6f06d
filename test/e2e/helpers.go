package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/message"
	"github.com/conductorhq/conductor/ent/queuejob"
	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/ent/runstep"
)

const (
	waitTimeout  = 30 * time.Second
	pollInterval = 100 * time.Millisecond
)

// doJSON issues a request with an optional JSON body and decodes the
// JSON object response, requiring the expected status code.
func (app *TestApp) doJSON(t *testing.T, method, path string, body any, wantStatus int) map[string]any {
	t.Helper()

	raw := app.doRaw(t, method, path, body, wantStatus)
	out := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "%s %s: %s", method, path, raw)
	}
	return out
}

// doJSONList is doJSON for endpoints that respond with a JSON array.
func (app *TestApp) doJSONList(t *testing.T, method, path string, body any, wantStatus int) []map[string]any {
	t.Helper()

	raw := app.doRaw(t, method, path, body, wantStatus)
	var out []map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), "%s %s: %s", method, path, raw)
	return out
}

func (app *TestApp) doRaw(t *testing.T, method, path string, body any, wantStatus int) []byte {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, app.BaseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode, "%s %s: %s", method, path, raw)
	return raw
}

// field pulls a required string out of a decoded JSON object.
func field(t *testing.T, m map[string]any, key string) string {
	t.Helper()
	v, ok := m[key].(string)
	require.True(t, ok, "missing string field %q in %v", key, m)
	return v
}

// PostMessage submits a user message through the generic ingress.
func (app *TestApp) PostMessage(t *testing.T, userID, content string) map[string]any {
	t.Helper()
	return app.doJSON(t, http.MethodPost, "/api/v1/messages", map[string]any{
		"userId":   userID,
		"provider": "web",
		"content":  content,
	}, http.StatusAccepted)
}

// PostChannelMessage submits a message to an existing channel.
func (app *TestApp) PostChannelMessage(t *testing.T, channelID, content string) map[string]any {
	t.Helper()
	return app.doJSON(t, http.MethodPost, "/api/v1/channels/"+channelID+"/messages", map[string]any{
		"content": content,
	}, http.StatusAccepted)
}

func (app *TestApp) GetRun(t *testing.T, runID string) map[string]any {
	t.Helper()
	return app.doJSON(t, http.MethodGet, "/api/v1/runs/"+runID, nil, http.StatusOK)
}

func (app *TestApp) GetRunSteps(t *testing.T, runID string) map[string]any {
	t.Helper()
	return app.doJSON(t, http.MethodGet, "/api/v1/runs/"+runID+"/steps", nil, http.StatusOK)
}

func (app *TestApp) CancelRun(t *testing.T, runID string) map[string]any {
	t.Helper()
	return app.doJSON(t, http.MethodPost, "/api/v1/runs/"+runID+"/cancel", nil, http.StatusOK)
}

func (app *TestApp) PutSettings(t *testing.T, userID string, body map[string]any) map[string]any {
	t.Helper()
	return app.doJSON(t, http.MethodPut, "/api/v1/users/"+userID+"/settings", body, http.StatusOK)
}

func (app *TestApp) GetSettings(t *testing.T, userID string) map[string]any {
	t.Helper()
	return app.doJSON(t, http.MethodGet, "/api/v1/users/"+userID+"/settings", nil, http.StatusOK)
}

func (app *TestApp) CreateTrigger(t *testing.T, agentID, cron string) map[string]any {
	t.Helper()
	return app.doJSON(t, http.MethodPost, "/api/v1/triggers", map[string]any{
		"agentId": agentID,
		"cron":    cron,
	}, http.StatusCreated)
}

func (app *TestApp) ListTriggers(t *testing.T, agentID string) []map[string]any {
	t.Helper()
	return app.doJSONList(t, http.MethodGet, "/api/v1/triggers?agent_id="+agentID, nil, http.StatusOK)
}

// WaitForRunStatus polls the database until the run reaches the wanted
// status, then returns the row.
func (app *TestApp) WaitForRunStatus(t *testing.T, runID string, want run.Status) *ent.Run {
	t.Helper()
	var last *ent.Run
	require.Eventuallyf(t, func() bool {
		r, err := app.Ent.Run.Get(context.Background(), runID)
		if err != nil {
			return false
		}
		last = r
		return r.Status == want
	}, waitTimeout, pollInterval, "run %s never reached status %s", runID, want)
	return last
}

// WaitForChildRuns polls until the parent has at least n children.
func (app *TestApp) WaitForChildRuns(t *testing.T, parentID string, n int) []*ent.Run {
	t.Helper()
	var children []*ent.Run
	require.Eventuallyf(t, func() bool {
		got, err := app.Ent.Run.Query().
			Where(run.ParentRunIDEQ(parentID)).
			Order(ent.Asc(run.FieldCreatedAt)).
			All(context.Background())
		if err != nil || len(got) < n {
			return false
		}
		children = got
		return true
	}, waitTimeout, pollInterval, "run %s never spawned %d subagents", parentID, n)
	return children
}

// WaitForOutbound polls until the channel has at least n outbound
// messages, oldest first.
func (app *TestApp) WaitForOutbound(t *testing.T, channelID string, n int) []*ent.Message {
	t.Helper()
	var msgs []*ent.Message
	require.Eventuallyf(t, func() bool {
		got := app.Outbound(t, channelID)
		if len(got) < n {
			return false
		}
		msgs = got
		return true
	}, waitTimeout, pollInterval, "channel %s never received %d outbound messages", channelID, n)
	return msgs
}

// Outbound lists the channel's outbound messages without waiting.
func (app *TestApp) Outbound(t *testing.T, channelID string) []*ent.Message {
	t.Helper()
	got, err := app.Ent.Message.Query().
		Where(
			message.ChannelIDEQ(channelID),
			message.DirectionEQ(message.DirectionOutbound),
		).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return got
}

// RunSteps reads the persisted step log for a run.
func (app *TestApp) RunSteps(t *testing.T, runID string) []*ent.RunStep {
	t.Helper()
	steps, err := app.Steps.ListSteps(context.Background(), runID)
	require.NoError(t, err)
	return steps
}

// Jobs lists every job on a queue, oldest first.
func (app *TestApp) Jobs(t *testing.T, queueName string) []*ent.QueueJob {
	t.Helper()
	jobs, err := app.Ent.QueueJob.Query().
		Where(queuejob.QueueEQ(queueName)).
		Order(ent.Asc(queuejob.FieldCreatedAt)).
		All(context.Background())
	require.NoError(t, err)
	return jobs
}

func findEvent(steps []*ent.RunStep, event string) *ent.RunStep {
	for _, s := range steps {
		if s.Type == runstep.TypeMessage && s.Result != nil && s.Result["event"] == event {
			return s
		}
	}
	return nil
}

func countType(steps []*ent.RunStep, typ runstep.Type) int {
	n := 0
	for _, s := range steps {
		if s.Type == typ {
			n++
		}
	}
	return n
}

func lastFinish(steps []*ent.RunStep) *ent.RunStep {
	for i := len(steps) - 1; i >= 0; i-- {
		if steps[i].Type == runstep.TypeFinish {
			return steps[i]
		}
	}
	return nil
}

// coordinatorPreamble satisfies the rationale gates a coordinator must
// clear before it may act.
func coordinatorPreamble() []LLMScriptEntry {
	return []LLMScriptEntry{
		say(`{"type":"note","category":"requirements","content":"Success criteria: deliver one short answer naming the result. Output format: plain text."}`),
		say(`{"type":"note","category":"plan","content":"1. Work the request directly.\n2. Check the draft against the success criteria.\n3. finish with the answer."}`),
		say(`{"type":"note","category":"artifact","content":"Draft the reply in one pass."}`),
	}
}

// workerPreamble is the same gate sequence for a spawned worker.
func workerPreamble() []LLMScriptEntry {
	return []LLMScriptEntry{
		say(`{"type":"note","category":"requirements","content":"Success criteria: report the tool value as one line of plain text."}`),
		say(`{"type":"note","category":"plan","content":"1. Call the tool for the value.\n2. Report the result as one line."}`),
		say(`{"type":"note","category":"artifact","content":"Query the tool first."}`),
	}
}

// answerScript is the smallest complete coordinator run: notes, finish,
// and a passing review verdict.
func answerScript(output string) []LLMScriptEntry {
	finish, _ := json.Marshal(map[string]string{"type": "finish", "output": output})
	s := coordinatorPreamble()
	s = append(s, say(string(finish)))
	s = append(s, say(`{"decision":"send"}`))
	return s
}
