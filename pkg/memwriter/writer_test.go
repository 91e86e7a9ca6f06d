package memwriter

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/pkg/crypto"
	"github.com/conductorhq/conductor/pkg/llm"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/conductorhq/conductor/pkg/services"
	testdb "github.com/conductorhq/conductor/test/database"
)

const writerTestKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

// fakeLLM replies with one fixed response and records every request.
type fakeLLM struct {
	mu       sync.Mutex
	response string
	err      error
	requests []llm.Request
}

var _ llm.Client = (*fakeLLM)(nil)

func (f *fakeLLM) Complete(_ context.Context, req llm.Request) (*llm.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Response{Content: f.response, Model: "writer-test"}, nil
}

func (f *fakeLLM) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

type writerFixture struct {
	client   *ent.Client
	settings *services.SettingsService
	memories *services.MemoryService
	messages *services.MessageService
	cipher   *crypto.Cipher
	llm      *fakeLLM
	writer   *Writer
}

func newWriterFixture(t *testing.T) *writerFixture {
	t.Helper()
	client := testdb.NewTestClient(t).Client

	cipher, err := crypto.NewFromHex(writerTestKeyHex)
	require.NoError(t, err)

	f := &writerFixture{
		client:   client,
		settings: services.NewSettingsService(client),
		memories: services.NewMemoryService(client),
		messages: services.NewMessageService(client),
		cipher:   cipher,
		llm:      &fakeLLM{},
	}
	f.writer = NewWriter(f.settings, f.memories, f.messages, f.llm, cipher, 25)
	return f
}

// enableUser stores settings with a sealed API key and provider metadata,
// the state in which distillation actually runs.
func (f *writerFixture) enableUser(t *testing.T, userID, plainKey string) {
	t.Helper()
	sealed, err := f.cipher.Seal(plainKey)
	require.NoError(t, err)
	enabled := true
	_, err = f.settings.Upsert(context.Background(), services.UpsertSettingsParams{
		UserID:          userID,
		MemoryEnabled:   &enabled,
		EncryptedAPIKey: &sealed,
		KeyMeta:         map[string]any{"provider": "openai", "model": "gpt-test-mini"},
	})
	require.NoError(t, err)
}

// seedSegment records one user/assistant exchange in the given context.
func (f *writerFixture) seedSegment(t *testing.T, userID, contextID string) {
	t.Helper()
	ctx := context.Background()
	_, err := f.messages.RecordInbound(ctx, userID, "ch-1", contextID, "my favorite color is teal, and drop the old launch project", nil)
	require.NoError(t, err)
	_, err = f.messages.RecordOutbound(ctx, userID, "ch-1", contextID, "Noted: teal it is, and I cleared the launch project.", nil, false)
	require.NoError(t, err)
}

func TestWriteSkipsUsersWithoutUsableKeys(t *testing.T) {
	f := newWriterFixture(t)
	ctx := context.Background()
	enabled := true
	disabled := false

	// No settings row at all.
	res, err := f.writer.Write(ctx, "ctx-1", "user-none", "close", 0)
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Equal(t, models.MemorySkipDisabled, res.SkipReason)

	// Memory explicitly turned off.
	_, err = f.settings.Upsert(ctx, services.UpsertSettingsParams{UserID: "user-off", MemoryEnabled: &disabled})
	require.NoError(t, err)
	res, err = f.writer.Write(ctx, "ctx-1", "user-off", "close", 0)
	require.NoError(t, err)
	assert.Equal(t, models.MemorySkipDisabled, res.SkipReason)

	// Enabled but never brought a key.
	_, err = f.settings.Upsert(ctx, services.UpsertSettingsParams{UserID: "user-keyless", MemoryEnabled: &enabled})
	require.NoError(t, err)
	res, err = f.writer.Write(ctx, "ctx-1", "user-keyless", "close", 0)
	require.NoError(t, err)
	assert.Equal(t, models.MemorySkipMissingAPIKey, res.SkipReason)

	// Key present but the metadata names no provider.
	sealed, err := f.cipher.Seal("user-plain-key")
	require.NoError(t, err)
	_, err = f.settings.Upsert(ctx, services.UpsertSettingsParams{
		UserID:          "user-no-provider",
		MemoryEnabled:   &enabled,
		EncryptedAPIKey: &sealed,
	})
	require.NoError(t, err)
	res, err = f.writer.Write(ctx, "ctx-1", "user-no-provider", "close", 0)
	require.NoError(t, err)
	assert.Equal(t, models.MemorySkipInvalidAPIKey, res.SkipReason)

	// Ciphertext that no longer decrypts (rotated server key).
	garbage := "bm90LWEtcmVhbC1jaXBoZXJ0ZXh0LWJsb2I="
	_, err = f.settings.Upsert(ctx, services.UpsertSettingsParams{
		UserID:          "user-stale-key",
		MemoryEnabled:   &enabled,
		EncryptedAPIKey: &garbage,
		KeyMeta:         map[string]any{"provider": "openai"},
	})
	require.NoError(t, err)
	res, err = f.writer.Write(ctx, "ctx-1", "user-stale-key", "close", 0)
	require.NoError(t, err)
	assert.Equal(t, models.MemorySkipInvalidAPIKey, res.SkipReason)

	assert.Zero(t, f.llm.callCount(), "skips never reach the model")
}

func TestWriteSkipsEmptySegments(t *testing.T) {
	f := newWriterFixture(t)
	f.enableUser(t, "user-1", "user-plain-key")

	res, err := f.writer.Write(context.Background(), "ctx-empty", "user-1", "close", 0)
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Equal(t, models.MemorySkipNoMessages, res.SkipReason)
	assert.Zero(t, f.llm.callCount())
}

func TestWriteValidatesIdentifiers(t *testing.T) {
	f := newWriterFixture(t)

	_, err := f.writer.Write(context.Background(), "", "user-1", "close", 0)
	var ve *services.ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = f.writer.Write(context.Background(), "ctx-1", "", "close", 0)
	assert.ErrorAs(t, err, &ve)
}

func TestWriteAppliesOperations(t *testing.T) {
	f := newWriterFixture(t)
	ctx := context.Background()
	f.enableUser(t, "user-1", "user-plain-key")
	f.seedSegment(t, "user-1", "ctx-1")

	// A pre-existing fact the model decides to retire.
	_, err := f.memories.Upsert(ctx, services.UpsertParams{
		UserID: "user-1",
		Module: models.MemoryModuleProjects,
		Key:    "launch_project",
		Value:  "shipping the launch project",
		Level:  3,
	})
	require.NoError(t, err)

	f.llm.response = `[
		{"op":"add","module":"preferences","key":"favorite_color","value":"teal","level":1,"confidence":0.95},
		{"op":"add","module":"environment","key":"api_credentials","value":"sk-abcdefghij0123456789abcdef","level":2},
		{"op":"delete","module":"projects","key":"launch_project"},
		{"op":"touch","module":"identity","key":"never_stored"}
	]`

	res, err := f.writer.Write(ctx, "ctx-1", "user-1", "close", 0)
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, 2, res.Applied, "the add and the delete land")
	assert.Equal(t, 2, res.SkippedOps, "the credential and the missing touch do not")
	assert.NotEmpty(t, res.RawResponse)

	active, err := f.memories.ListActive(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "favorite_color", active[0].Key)
	assert.Equal(t, "teal", active[0].Value)
	assert.Equal(t, 1, active[0].Level)
	assert.InDelta(t, 0.95, active[0].Confidence, 0.001)

	// The refused credential must not exist anywhere, archived included.
	leaked, err := f.memories.ContainsValue(ctx, "user-1", "sk-abcdefghij")
	require.NoError(t, err)
	assert.False(t, leaked)

	// The distillation call runs on the user's own key and model.
	require.Equal(t, 1, f.llm.callCount())
	req := f.llm.requests[0]
	assert.Equal(t, "user-plain-key", req.APIKey)
	assert.Equal(t, "gpt-test-mini", req.Model)
	assert.True(t, req.JSONOnly)
	assert.Equal(t, writerMaxTokens, req.MaxTokens)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, llm.RoleSystem, req.Messages[0].Role)
	assert.Contains(t, req.Messages[1].Content, "USER: my favorite color is teal")
	assert.Contains(t, req.Messages[1].Content, "ASSISTANT: Noted: teal it is")
	assert.Contains(t, req.Messages[1].Content, "[projects/launch_project] shipping the launch project",
		"current memories ride along in the prompt")
}

func TestWriteDefaultsLevelAndConfidence(t *testing.T) {
	f := newWriterFixture(t)
	ctx := context.Background()
	f.enableUser(t, "user-1", "user-plain-key")
	f.seedSegment(t, "user-1", "ctx-1")

	f.llm.response = `[{"op":"add","module":"recent_context","key":"current_topic","value":"planning a move to Oslo"}]`

	res, err := f.writer.Write(ctx, "ctx-1", "user-1", "close", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Applied)

	active, err := f.memories.ListActive(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, 5, active[0].Level, "omitted level defaults to the most ephemeral tier")
	assert.InDelta(t, 0.6, active[0].Confidence, 0.001)
	require.NotNil(t, active[0].ContextID)
	assert.Equal(t, "ctx-1", *active[0].ContextID, "memories remember which segment produced them")
}

func TestWriteToleratesUnparseableResponse(t *testing.T) {
	f := newWriterFixture(t)
	ctx := context.Background()
	f.enableUser(t, "user-1", "user-plain-key")
	f.seedSegment(t, "user-1", "ctx-1")

	f.llm.response = "Nothing in this conversation is worth remembering."

	res, err := f.writer.Write(ctx, "ctx-1", "user-1", "close", 0)
	require.NoError(t, err, "an unparseable answer is terminal, not retryable")
	assert.Zero(t, res.Applied)
	assert.Contains(t, res.RawResponse, "worth remembering")

	active, err := f.memories.ListActive(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestWriteSurfacesTransportErrors(t *testing.T) {
	f := newWriterFixture(t)
	ctx := context.Background()
	f.enableUser(t, "user-1", "user-plain-key")
	f.seedSegment(t, "user-1", "ctx-1")

	f.llm.err = errors.New("model overloaded")

	_, err := f.writer.Write(ctx, "ctx-1", "user-1", "close", 0)
	require.Error(t, err, "transport failures bubble up so the job retries")
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestWriteWindowsSegment(t *testing.T) {
	f := newWriterFixture(t)
	ctx := context.Background()
	f.enableUser(t, "user-1", "user-plain-key")

	for _, content := range []string{"oldest message", "middle message", "newest message"} {
		_, err := f.messages.RecordInbound(ctx, "user-1", "ch-1", "ctx-1", content, nil)
		require.NoError(t, err)
	}

	f.llm.response = `[]`

	_, err := f.writer.Write(ctx, "ctx-1", "user-1", "periodic", 2)
	require.NoError(t, err)

	require.Equal(t, 1, f.llm.callCount())
	prompt := f.llm.requests[0].Messages[1].Content
	assert.NotContains(t, prompt, "oldest message", "the window keeps only the newest messages")
	assert.Contains(t, prompt, "middle message")
	assert.Contains(t, prompt, "newest message")
	lines := strings.Count(prompt, "USER: ")
	assert.Equal(t, 2, lines)
}
