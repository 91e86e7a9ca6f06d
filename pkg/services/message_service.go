package services

import (
	"context"
	"fmt"
	"time"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/message"
	"github.com/google/uuid"
)

// MessageService manages per-channel conversation entries and their
// delivery status.
type MessageService struct {
	client *ent.Client
}

// NewMessageService creates a new MessageService
func NewMessageService(client *ent.Client) *MessageService {
	return &MessageService{client: client}
}

// RecordInbound stores a user message.
func (s *MessageService) RecordInbound(httpCtx context.Context, userID, channelID, contextID, content string, metadata map[string]any) (*ent.Message, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if channelID == "" {
		return nil, NewValidationError("channel_id", "required")
	}
	if content == "" {
		return nil, NewValidationError("content", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.Message.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetChannelID(channelID).
		SetContent(content).
		SetDirection(message.DirectionInbound).
		SetDeliveryStatus(message.DeliveryStatusDelivered).
		SetDeliveredAt(time.Now())

	if contextID != "" {
		builder.SetContextID(contextID)
	}
	if metadata != nil {
		builder.SetMetadata(metadata)
	}

	msg, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record inbound message: %w", err)
	}
	return msg, nil
}

// RecordOutbound stores an agent reply. pendingDelivery marks messages
// that still need a provider send (Discord); web messages are delivered
// the moment the row exists.
func (s *MessageService) RecordOutbound(httpCtx context.Context, userID, channelID, contextID, content string, metadata map[string]any, pendingDelivery bool) (*ent.Message, error) {
	if content == "" {
		return nil, NewValidationError("content", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.Message.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetChannelID(channelID).
		SetContent(content).
		SetDirection(message.DirectionOutbound)

	if pendingDelivery {
		builder.SetDeliveryStatus(message.DeliveryStatusPending)
	} else {
		builder.SetDeliveryStatus(message.DeliveryStatusDelivered).
			SetDeliveredAt(time.Now())
	}
	if contextID != "" {
		builder.SetContextID(contextID)
	}
	if metadata != nil {
		builder.SetMetadata(metadata)
	}

	msg, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record outbound message: %w", err)
	}
	return msg, nil
}

// GetMessage retrieves a message by ID
func (s *MessageService) GetMessage(ctx context.Context, messageID string) (*ent.Message, error) {
	msg, err := s.client.Message.Get(ctx, messageID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return msg, nil
}

// ListRecentByChannel returns the last n messages on a channel in
// chronological order.
func (s *MessageService) ListRecentByChannel(ctx context.Context, channelID string, n int) ([]*ent.Message, error) {
	if n <= 0 {
		n = 40
	}
	msgs, err := s.client.Message.Query().
		Where(message.ChannelIDEQ(channelID)).
		Order(ent.Desc(message.FieldCreatedAt)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list channel messages: %w", err)
	}
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

// ListByContext returns the last n messages of a context in
// chronological order. The memory writer reads closed segments this way.
func (s *MessageService) ListByContext(ctx context.Context, contextID string, n int) ([]*ent.Message, error) {
	if n <= 0 {
		n = 25
	}
	msgs, err := s.client.Message.Query().
		Where(message.ContextIDEQ(contextID)).
		Order(ent.Desc(message.FieldCreatedAt)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list context messages: %w", err)
	}
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

// UpdateDeliveryStatus applies a delivery ack to an outbound message.
func (s *MessageService) UpdateDeliveryStatus(httpCtx context.Context, messageID string, delivered bool, deliveryError string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	msg, err := s.client.Message.Get(ctx, messageID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get message: %w", err)
	}

	update := s.client.Message.UpdateOneID(messageID)
	if delivered {
		update.SetDeliveryStatus(message.DeliveryStatusDelivered).
			SetDeliveredAt(time.Now())
	} else {
		update.SetDeliveryStatus(message.DeliveryStatusFailed)
		if deliveryError != "" {
			metadata := msg.Metadata
			if metadata == nil {
				metadata = map[string]any{}
			}
			metadata["delivery_error"] = deliveryError
			update.SetMetadata(metadata)
		}
	}

	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update delivery status: %w", err)
	}
	return nil
}

// DeleteOldMessages hard-deletes messages older than the cutoff.
func (s *MessageService) DeleteOldMessages(httpCtx context.Context, cutoff time.Time) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Message.Delete().
		Where(message.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old messages: %w", err)
	}
	return count, nil
}
