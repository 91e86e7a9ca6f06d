package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/message"
	"github.com/conductorhq/conductor/ent/queuejob"
	"github.com/conductorhq/conductor/pkg/queue"
	"github.com/conductorhq/conductor/pkg/services"
	testdb "github.com/conductorhq/conductor/test/database"
)

// fakeProvider records deliveries and fails on demand.
type fakeProvider struct {
	mu        sync.Mutex
	name      string
	err       error
	delivered []string
}

var _ Provider = (*fakeProvider)(nil)

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Deliver(_ context.Context, messageID string, _ json.RawMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.delivered = append(f.delivered, messageID)
	return nil
}

func TestDispatcherRoutesByProviderName(t *testing.T) {
	provider := &fakeProvider{name: "discord"}
	d := NewDispatcher(provider, nil)

	err := d.Deliver(context.Background(), "discord", "msg-1", json.RawMessage(`{}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"msg-1"}, provider.delivered)

	err = d.Deliver(context.Background(), "telegram", "msg-2", json.RawMessage(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown delivery provider "telegram"`)
}

func TestNewDiscordWithoutToken(t *testing.T) {
	d, err := NewDiscord("")
	require.NoError(t, err)
	assert.Nil(t, d, "no token means the provider is simply not configured")

	d, err = NewDiscord("test-bot-token")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "discord", d.Name())
}

func TestSplitMessagePrefersNewlineBoundaries(t *testing.T) {
	assert.Equal(t, []string{"short"}, splitMessage("short", 2000))

	content := "first paragraph\nsecond paragraph\nthird paragraph"
	chunks := splitMessage(content, 20)
	assert.Equal(t, []string{"first paragraph", "second paragraph", "third paragraph"}, chunks)

	// No newline in range forces a hard cut.
	solid := strings.Repeat("a", 45)
	chunks = splitMessage(solid, 20)
	assert.Equal(t, []string{strings.Repeat("a", 20), strings.Repeat("a", 20), strings.Repeat("a", 5)}, chunks)

	for _, chunk := range splitMessage(strings.Repeat("word ", 1000), 2000) {
		assert.LessOrEqual(t, len(chunk), 2000)
		assert.NotEmpty(t, chunk)
	}
}

func TestMessagesHandlerDeliversAndAcks(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	q := queue.New(client)
	ctx := context.Background()

	provider := &fakeProvider{name: "discord"}
	handler := NewMessagesHandler(NewDispatcher(provider), q)

	payload, err := json.Marshal(queue.DeliveryJob{
		Type:      queue.JobTypeDelivery,
		Provider:  "discord",
		MessageID: "msg-1",
		Payload:   json.RawMessage(`{"content":"hello","discordUserId":"snowflake-1"}`),
	})
	require.NoError(t, err)

	job := &ent.QueueJob{Payload: payload, Attempts: 1, MaxAttempts: 3}
	require.NoError(t, handler(ctx, job))
	assert.Equal(t, []string{"msg-1"}, provider.delivered)

	acks, err := client.QueueJob.Query().
		Where(queuejob.QueueEQ(queue.QueueDeliveryAcks)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, acks, 1)

	var ack queue.DeliveryAckJob
	require.NoError(t, json.Unmarshal(acks[0].Payload, &ack))
	assert.Equal(t, "msg-1", ack.MessageID)
	assert.Equal(t, StatusDelivered, ack.Status)
	assert.Empty(t, ack.Error)
}

func TestMessagesHandlerAcksFailureOnFinalAttempt(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	q := queue.New(client)
	ctx := context.Background()

	provider := &fakeProvider{name: "discord", err: errors.New("dm channel refused")}
	handler := NewMessagesHandler(NewDispatcher(provider), q)

	payload, err := json.Marshal(queue.DeliveryJob{
		Type:      queue.JobTypeDelivery,
		Provider:  "discord",
		MessageID: "msg-1",
		Payload:   json.RawMessage(`{}`),
	})
	require.NoError(t, err)

	// Early attempts fail without acking so the queue retries.
	err = handler(ctx, &ent.QueueJob{Payload: payload, Attempts: 1, MaxAttempts: 3})
	require.Error(t, err)
	count, err := client.QueueJob.Query().
		Where(queuejob.QueueEQ(queue.QueueDeliveryAcks)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	// The final attempt records the failure before the job dies.
	err = handler(ctx, &ent.QueueJob{Payload: payload, Attempts: 3, MaxAttempts: 3})
	require.Error(t, err)

	acks, err := client.QueueJob.Query().
		Where(queuejob.QueueEQ(queue.QueueDeliveryAcks)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, acks, 1)

	var ack queue.DeliveryAckJob
	require.NoError(t, json.Unmarshal(acks[0].Payload, &ack))
	assert.Equal(t, StatusFailed, ack.Status)
	assert.Contains(t, ack.Error, "dm channel refused")
}

func TestMessagesHandlerRejectsMalformedJobs(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	q := queue.New(client)
	handler := NewMessagesHandler(NewDispatcher(&fakeProvider{name: "discord"}), q)

	err := handler(context.Background(), &ent.QueueJob{Payload: []byte("not json"), Attempts: 1, MaxAttempts: 3})
	assert.Error(t, err)

	payload, err := json.Marshal(queue.DeliveryJob{Type: queue.JobTypeDelivery, Provider: "discord"})
	require.NoError(t, err)
	err = handler(context.Background(), &ent.QueueJob{Payload: payload, Attempts: 1, MaxAttempts: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing messageId")
}

func TestAcksHandlerAppliesOutcome(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	messages := services.NewMessageService(client)
	ctx := context.Background()

	handler := NewAcksHandler(client)

	pending, err := messages.RecordOutbound(ctx, "user-1", "ch-1", "", "provider bound", nil, true)
	require.NoError(t, err)

	payload, err := json.Marshal(queue.DeliveryAckJob{
		Type:      queue.JobTypeDeliveryAck,
		MessageID: pending.ID,
		Status:    StatusDelivered,
	})
	require.NoError(t, err)
	require.NoError(t, handler(ctx, &ent.QueueJob{Payload: payload}))

	got, err := messages.GetMessage(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, message.DeliveryStatusDelivered, got.DeliveryStatus)
	assert.NotNil(t, got.DeliveredAt)

	// Failure acks carry the provider error into the message metadata.
	failed, err := messages.RecordOutbound(ctx, "user-1", "ch-1", "", "never arrives", nil, true)
	require.NoError(t, err)
	payload, err = json.Marshal(queue.DeliveryAckJob{
		Type:      queue.JobTypeDeliveryAck,
		MessageID: failed.ID,
		Status:    StatusFailed,
		Error:     "dm channel refused",
	})
	require.NoError(t, err)
	require.NoError(t, handler(ctx, &ent.QueueJob{Payload: payload}))

	got, err = messages.GetMessage(ctx, failed.ID)
	require.NoError(t, err)
	assert.Equal(t, message.DeliveryStatusFailed, got.DeliveryStatus)
	assert.Equal(t, "dm channel refused", got.Metadata["delivery_error"])

	// Unknown message ids bubble up so the ack retries.
	payload, err = json.Marshal(queue.DeliveryAckJob{Type: queue.JobTypeDeliveryAck, MessageID: "ghost", Status: StatusDelivered})
	require.NoError(t, err)
	assert.Error(t, handler(ctx, &ent.QueueJob{Payload: payload}))
}
