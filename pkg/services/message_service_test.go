package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/ent/message"
)

func TestRecordInboundMarksDelivered(t *testing.T) {
	messages := NewMessageService(newTestClient(t))
	ctx := context.Background()

	msg, err := messages.RecordInbound(ctx, "user-1", "ch-1", "ctx-1", "hello there", map[string]any{"provider": "web"})
	require.NoError(t, err)
	assert.Equal(t, message.DirectionInbound, msg.Direction)
	assert.Equal(t, message.DeliveryStatusDelivered, msg.DeliveryStatus, "inbound messages are delivered by definition")
	assert.NotNil(t, msg.DeliveredAt)
	require.NotNil(t, msg.ContextID)
	assert.Equal(t, "ctx-1", *msg.ContextID)
	assert.Equal(t, "web", msg.Metadata["provider"])

	var ve *ValidationError
	_, err = messages.RecordInbound(ctx, "", "ch-1", "", "hi", nil)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "user_id", ve.Field)
	_, err = messages.RecordInbound(ctx, "user-1", "", "", "hi", nil)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "channel_id", ve.Field)
	_, err = messages.RecordInbound(ctx, "user-1", "ch-1", "", "", nil)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "content", ve.Field)
}

func TestRecordOutboundDeliveryStates(t *testing.T) {
	messages := NewMessageService(newTestClient(t))
	ctx := context.Background()

	// Web replies are visible the moment the row exists.
	web, err := messages.RecordOutbound(ctx, "user-1", "ch-1", "", "here is your answer", nil, false)
	require.NoError(t, err)
	assert.Equal(t, message.DirectionOutbound, web.Direction)
	assert.Equal(t, message.DeliveryStatusDelivered, web.DeliveryStatus)
	assert.NotNil(t, web.DeliveredAt)
	assert.Nil(t, web.ContextID)

	// Provider-delivered replies start pending until the ack lands.
	discord, err := messages.RecordOutbound(ctx, "user-1", "ch-2", "", "provider bound", nil, true)
	require.NoError(t, err)
	assert.Equal(t, message.DeliveryStatusPending, discord.DeliveryStatus)
	assert.Nil(t, discord.DeliveredAt)

	var ve *ValidationError
	_, err = messages.RecordOutbound(ctx, "user-1", "ch-1", "", "", nil, false)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "content", ve.Field)
}

func TestUpdateDeliveryStatus(t *testing.T) {
	messages := NewMessageService(newTestClient(t))
	ctx := context.Background()

	msg, err := messages.RecordOutbound(ctx, "user-1", "ch-1", "", "awaiting ack", nil, true)
	require.NoError(t, err)

	require.NoError(t, messages.UpdateDeliveryStatus(ctx, msg.ID, true, ""))
	got, err := messages.GetMessage(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, message.DeliveryStatusDelivered, got.DeliveryStatus)
	assert.NotNil(t, got.DeliveredAt)

	failed, err := messages.RecordOutbound(ctx, "user-1", "ch-1", "", "never arrives", nil, true)
	require.NoError(t, err)
	require.NoError(t, messages.UpdateDeliveryStatus(ctx, failed.ID, false, "provider timeout"))
	got, err = messages.GetMessage(ctx, failed.ID)
	require.NoError(t, err)
	assert.Equal(t, message.DeliveryStatusFailed, got.DeliveryStatus)
	assert.Equal(t, "provider timeout", got.Metadata["delivery_error"])

	assert.ErrorIs(t, messages.UpdateDeliveryStatus(ctx, "no-such-message", true, ""), ErrNotFound)
	_, err = messages.GetMessage(ctx, "no-such-message")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListMessagesChronologically(t *testing.T) {
	messages := NewMessageService(newTestClient(t))
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		_, err := messages.RecordInbound(ctx, "user-1", "ch-1", "ctx-1", fmt.Sprintf("message %d", i), nil)
		require.NoError(t, err)
	}
	_, err := messages.RecordInbound(ctx, "user-1", "ch-other", "ctx-other", "elsewhere", nil)
	require.NoError(t, err)

	byChannel, err := messages.ListRecentByChannel(ctx, "ch-1", 10)
	require.NoError(t, err)
	require.Len(t, byChannel, 3)
	assert.Equal(t, "message 1", byChannel[0].Content)
	assert.Equal(t, "message 3", byChannel[2].Content)

	// The window keeps the most recent entries, still oldest first.
	windowed, err := messages.ListRecentByChannel(ctx, "ch-1", 2)
	require.NoError(t, err)
	require.Len(t, windowed, 2)
	assert.Equal(t, "message 2", windowed[0].Content)
	assert.Equal(t, "message 3", windowed[1].Content)

	byContext, err := messages.ListByContext(ctx, "ctx-1", 10)
	require.NoError(t, err)
	require.Len(t, byContext, 3)
	assert.Equal(t, "message 1", byContext[0].Content)
}

func TestDeleteOldMessages(t *testing.T) {
	client := newTestClient(t)
	messages := NewMessageService(client)
	ctx := context.Background()

	_, err := client.Message.Create().
		SetID(uuid.New().String()).
		SetUserID("user-1").
		SetChannelID("ch-1").
		SetContent("from another era").
		SetDirection(message.DirectionInbound).
		SetDeliveryStatus(message.DeliveryStatusDelivered).
		SetCreatedAt(time.Now().Add(-90 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	keeper, err := messages.RecordInbound(ctx, "user-1", "ch-1", "", "still fresh", nil)
	require.NoError(t, err)

	deleted, err := messages.DeleteOldMessages(ctx, time.Now().Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	remaining, err := messages.ListRecentByChannel(ctx, "ch-1", 10)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, keeper.ID, remaining[0].ID)
}
