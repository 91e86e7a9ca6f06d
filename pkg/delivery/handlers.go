package delivery

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/pkg/queue"
	"github.com/conductorhq/conductor/pkg/services"
)

// NewMessagesHandler returns the messages queue handler: resolve the
// provider, deliver, and enqueue the resulting ack. A provider error
// fails the job so it retries with backoff; on the final attempt the
// failure is recorded as an ack before the job dies.
func NewMessagesHandler(d *Dispatcher, q *queue.Queue) queue.Handler {
	return func(ctx context.Context, job *ent.QueueJob) error {
		var payload queue.DeliveryJob
		if err := json.Unmarshal(job.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode delivery job payload: %w", err)
		}
		if payload.MessageID == "" {
			return fmt.Errorf("delivery job missing messageId")
		}

		err := d.Deliver(ctx, payload.Provider, payload.MessageID, payload.Payload)
		if err != nil {
			// Attempts is incremented at claim time, so equality means
			// this attempt is the last one.
			if job.Attempts >= job.MaxAttempts {
				if ackErr := q.EnqueueDeliveryAck(ctx, payload.MessageID, StatusFailed, err.Error()); ackErr != nil {
					slog.Error("Failed to enqueue failure ack",
						"message_id", payload.MessageID, "error", ackErr)
				}
			}
			return err
		}

		return q.EnqueueDeliveryAck(ctx, payload.MessageID, StatusDelivered, "")
	}
}

// NewAcksHandler returns the delivery-acks queue handler, applying the
// delivery outcome to the stored message row.
func NewAcksHandler(client *ent.Client) queue.Handler {
	messages := services.NewMessageService(client)
	return func(ctx context.Context, job *ent.QueueJob) error {
		var payload queue.DeliveryAckJob
		if err := json.Unmarshal(job.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode delivery ack payload: %w", err)
		}
		if payload.MessageID == "" {
			return fmt.Errorf("delivery ack missing messageId")
		}

		return messages.UpdateDeliveryStatus(ctx, payload.MessageID,
			payload.Status == StatusDelivered, payload.Error)
	}
}
