package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent/message"
	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/pkg/queue"
)

func postMessageBody(userID, content string) map[string]any {
	return map[string]any{
		"userId":   userID,
		"provider": "web",
		"content":  content,
	}
}

func TestPostMessageStartsCoordinator(t *testing.T) {
	f := newAPIFixture(t, testCipher(t))
	ctx := context.Background()

	var resp MessageAcceptedResponse
	f.doJSON(t, http.MethodPost, "/api/v1/messages",
		postMessageBody("user-1", "Plan my week"), http.StatusAccepted, &resp)

	assert.Equal(t, "queued", resp.Status)
	require.NotEmpty(t, resp.RunID)
	require.NotEmpty(t, resp.ChannelID)
	require.NotEmpty(t, resp.ContextID)
	require.NotEmpty(t, resp.MessageID)

	r, err := f.server.runs.GetRun(ctx, resp.RunID)
	require.NoError(t, err)
	assert.Equal(t, run.KindCoordinator, r.Kind)
	assert.Equal(t, run.StatusPending, r.Status)
	assert.Equal(t, "acme", r.TenantID)
	assert.Equal(t, "conductor", r.AgentID)
	assert.Equal(t, "user-1", r.UserID)
	assert.Equal(t, resp.ChannelID, r.ChannelID)
	require.NotNil(t, r.ContextID)
	assert.Equal(t, resp.ContextID, *r.ContextID)
	assert.Equal(t, "Plan my week", r.InputText)

	msg, err := f.ent.Message.Get(ctx, resp.MessageID)
	require.NoError(t, err)
	assert.Equal(t, message.DirectionInbound, msg.Direction)
	assert.Equal(t, "Plan my week", msg.Content)

	jobs := f.jobs(t, queue.QueueRuns)
	require.Len(t, jobs, 1)
	var job queue.RunJob
	require.NoError(t, json.Unmarshal(jobs[0].Payload, &job))
	assert.Equal(t, queue.JobTypeRun, job.Type)
	assert.Equal(t, resp.RunID, job.RunID)
	assert.Equal(t, "acme", job.TenantID)
	assert.Equal(t, "conductor", job.AgentID)
}

func TestPostMessageRoutesToActiveCoordinator(t *testing.T) {
	f := newAPIFixture(t, testCipher(t))
	ctx := context.Background()

	var first MessageAcceptedResponse
	f.doJSON(t, http.MethodPost, "/api/v1/messages",
		postMessageBody("user-1", "Plan my week"), http.StatusAccepted, &first)
	require.Equal(t, "queued", first.Status)

	var second MessageAcceptedResponse
	f.doJSON(t, http.MethodPost, "/api/v1/messages",
		postMessageBody("user-1", "Also book the dentist"), http.StatusAccepted, &second)

	assert.Equal(t, "routed", second.Status)
	assert.Equal(t, first.RunID, second.RunID)
	assert.Equal(t, first.ChannelID, second.ChannelID)

	r, err := f.server.runs.GetRun(ctx, first.RunID)
	require.NoError(t, err)
	require.Len(t, r.Input.State.Inbox, 1)
	assert.Equal(t, "user", r.Input.State.Inbox[0].FromRunID)
	assert.Equal(t, "Also book the dentist", r.Input.State.Inbox[0].Message)

	// The pending coordinator will see the inbox when it starts; no new
	// run job and no wake are needed.
	assert.Len(t, f.jobs(t, queue.QueueRuns), 1)
	assert.Empty(t, f.jobs(t, queue.QueueWake))
}

func TestPostMessageWakesWaitingCoordinator(t *testing.T) {
	f := newAPIFixture(t, testCipher(t))
	ctx := context.Background()

	var first MessageAcceptedResponse
	f.doJSON(t, http.MethodPost, "/api/v1/messages",
		postMessageBody("user-1", "Plan my week"), http.StatusAccepted, &first)

	_, err := f.server.runs.ClaimRun(ctx, first.RunID, "api-test-pod")
	require.NoError(t, err)
	require.NoError(t, f.server.runs.MarkWaiting(ctx, first.RunID, nil, "waiting_for_subagents"))

	var second MessageAcceptedResponse
	f.doJSON(t, http.MethodPost, "/api/v1/messages",
		postMessageBody("user-1", "Any progress?"), http.StatusAccepted, &second)
	assert.Equal(t, "routed", second.Status)
	assert.Equal(t, first.RunID, second.RunID)

	wakes := f.jobs(t, queue.QueueWake)
	require.Len(t, wakes, 1)
	var job queue.RunJob
	require.NoError(t, json.Unmarshal(wakes[0].Payload, &job))
	assert.Equal(t, first.RunID, job.RunID)
	assert.Equal(t, "user_message", job.Reason)
}

func TestPostMessageValidation(t *testing.T) {
	f := newAPIFixture(t, testCipher(t))

	tests := []struct {
		name     string
		body     map[string]any
		contains string
	}{
		{
			name:     "missing content",
			body:     map[string]any{"userId": "user-1", "provider": "web"},
			contains: "Content",
		},
		{
			name:     "missing provider",
			body:     map[string]any{"userId": "user-1", "content": "hi"},
			contains: "Provider",
		},
		{
			name:     "missing userId",
			body:     map[string]any{"provider": "web", "content": "hi"},
			contains: "UserID",
		},
		{
			name:     "unknown provider",
			body:     map[string]any{"userId": "user-1", "provider": "telegram", "content": "hi"},
			contains: "provider",
		},
		{
			name:     "discord without discord identity",
			body:     map[string]any{"userId": "user-1", "provider": "discord", "content": "hi"},
			contains: "discord_user_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.wantError(t, http.MethodPost, "/api/v1/messages", tt.body,
				http.StatusBadRequest, tt.contains)
		})
	}
}

func TestPostMessageRotatesFullContext(t *testing.T) {
	f := newAPIFixture(t, testCipher(t))
	f.server.cfg.Memory.MaxTurnsPerContext = 1

	var first MessageAcceptedResponse
	f.doJSON(t, http.MethodPost, "/api/v1/messages",
		postMessageBody("user-1", "Remember I like aisle seats"), http.StatusAccepted, &first)

	var second MessageAcceptedResponse
	f.doJSON(t, http.MethodPost, "/api/v1/messages",
		postMessageBody("user-1", "And window tables"), http.StatusAccepted, &second)

	// The second turn overflows the one-turn context, so it lands in a
	// fresh context and the closed one is queued for memory extraction.
	assert.NotEqual(t, first.ContextID, second.ContextID)

	writes := f.jobs(t, queue.QueueMemoryWrites)
	require.Len(t, writes, 1)
	var job queue.MemoryWriteJob
	require.NoError(t, json.Unmarshal(writes[0].Payload, &job))
	assert.Equal(t, first.ContextID, job.ContextID)
	assert.Equal(t, "user-1", job.UserID)
	assert.Equal(t, queue.MemoryWriteModeClose, job.Mode)
}

func TestPostChannelMessageUsesChannelOwner(t *testing.T) {
	f := newAPIFixture(t, testCipher(t))
	ctx := context.Background()

	ch, err := f.server.channels.GetOrCreate(ctx, "user-2", "web", "")
	require.NoError(t, err)

	var first MessageAcceptedResponse
	f.doJSON(t, http.MethodPost, "/api/v1/channels/"+ch.ID+"/messages",
		map[string]any{"content": "hello there"}, http.StatusAccepted, &first)
	assert.Equal(t, "queued", first.Status)
	assert.Equal(t, ch.ID, first.ChannelID)

	msg, err := f.ent.Message.Get(ctx, first.MessageID)
	require.NoError(t, err)
	assert.Equal(t, "user-2", msg.UserID)

	r, err := f.server.runs.GetRun(ctx, first.RunID)
	require.NoError(t, err)
	assert.Equal(t, "user-2", r.UserID)

	// Naming the owner explicitly is also accepted.
	var second MessageAcceptedResponse
	f.doJSON(t, http.MethodPost, "/api/v1/channels/"+ch.ID+"/messages",
		map[string]any{"userId": "user-2", "content": "still me"}, http.StatusAccepted, &second)
	assert.Equal(t, "routed", second.Status)
	assert.Equal(t, first.RunID, second.RunID)
}

func TestPostChannelMessageRejectsForeignUser(t *testing.T) {
	f := newAPIFixture(t, testCipher(t))

	ch, err := f.server.channels.GetOrCreate(context.Background(), "user-2", "web", "")
	require.NoError(t, err)

	f.wantError(t, http.MethodPost, "/api/v1/channels/"+ch.ID+"/messages",
		map[string]any{"userId": "intruder", "content": "let me in"},
		http.StatusBadRequest, "userId does not match channel owner")
}

func TestPostChannelMessageUnknownChannel(t *testing.T) {
	f := newAPIFixture(t, testCipher(t))

	f.wantError(t, http.MethodPost, "/api/v1/channels/ghost-channel/messages",
		map[string]any{"content": "anyone home?"},
		http.StatusNotFound, "resource not found")
}

func TestPostChannelMessageValidation(t *testing.T) {
	f := newAPIFixture(t, testCipher(t))

	ch, err := f.server.channels.GetOrCreate(context.Background(), "user-2", "web", "")
	require.NoError(t, err)

	f.wantError(t, http.MethodPost, "/api/v1/channels/"+ch.ID+"/messages",
		map[string]any{"userId": "user-2"},
		http.StatusBadRequest, "Content")
}
