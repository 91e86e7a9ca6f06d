package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/queuejob"
)

// Queue enqueues durable jobs. Safe for concurrent use.
type Queue struct {
	client *ent.Client
}

// New creates a Queue backed by the given ent client.
func New(client *ent.Client) *Queue {
	return &Queue{client: client}
}

// EnqueueOption customizes a single enqueue.
type EnqueueOption func(*enqueueOptions)

type enqueueOptions struct {
	runAt       time.Time
	dedupeKey   string
	maxAttempts int
}

// WithDelay makes the job visible to workers only after d has elapsed.
func WithDelay(d time.Duration) EnqueueOption {
	return func(o *enqueueOptions) { o.runAt = time.Now().Add(d) }
}

// WithRunAt makes the job visible to workers at or after t.
func WithRunAt(t time.Time) EnqueueOption {
	return func(o *enqueueOptions) { o.runAt = t }
}

// WithDedupeKey makes re-enqueues with an equal key no-ops while a
// pending or running job already holds it.
func WithDedupeKey(k string) EnqueueOption {
	return func(o *enqueueOptions) { o.dedupeKey = k }
}

// WithMaxAttempts overrides the default retry budget.
func WithMaxAttempts(n int) EnqueueOption {
	return func(o *enqueueOptions) { o.maxAttempts = n }
}

// Enqueue inserts a job onto the named queue and returns its ID. When a
// dedupe key is given and a live job already holds it, the insert is
// silently dropped and Enqueue returns "".
func (q *Queue) Enqueue(ctx context.Context, queueName string, payload any, opts ...EnqueueOption) (string, error) {
	var o enqueueOptions
	for _, opt := range opts {
		opt(&o)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s payload: %w", queueName, err)
	}

	create := q.client.QueueJob.Create().
		SetID(uuid.NewString()).
		SetQueue(queueName).
		SetPayload(raw)
	if !o.runAt.IsZero() {
		create = create.SetRunAt(o.runAt)
	}
	if o.dedupeKey != "" {
		create = create.SetDedupeKey(o.dedupeKey)
	}
	if o.maxAttempts > 0 {
		create = create.SetMaxAttempts(o.maxAttempts)
	}

	job, err := create.Save(ctx)
	if err != nil {
		if o.dedupeKey != "" && ent.IsConstraintError(err) {
			// A live job already holds this key.
			return "", nil
		}
		return "", fmt.Errorf("failed to enqueue %s job: %w", queueName, err)
	}
	return job.ID, nil
}

// EnqueueRun enqueues a run execution job. The engine's conditional claim
// makes duplicate run jobs harmless, so no dedupe key is required.
func (q *Queue) EnqueueRun(ctx context.Context, runID, tenantID, agentID string, opts ...EnqueueOption) error {
	_, err := q.Enqueue(ctx, QueueRuns, RunJob{
		Type:     JobTypeRun,
		RunID:    runID,
		TenantID: tenantID,
		AgentID:  agentID,
	}, opts...)
	return err
}

// EnqueueWake schedules a wake for a waiting run. Wakes are dedupe-keyed
// on (run, reason) so a watchdog re-arm does not stack jobs.
func (q *Queue) EnqueueWake(ctx context.Context, runID, tenantID, agentID, reason string, delay time.Duration) error {
	job := RunJob{
		Type:     JobTypeRun,
		RunID:    runID,
		TenantID: tenantID,
		AgentID:  agentID,
		Reason:   reason,
	}
	opts := []EnqueueOption{WithDedupeKey(fmt.Sprintf("wake:%s:%s", runID, reason))}
	if delay > 0 {
		job.DelaySeconds = int(delay / time.Second)
		opts = append(opts, WithDelay(delay))
	}
	_, err := q.Enqueue(ctx, QueueWake, job, opts...)
	return err
}

// EnqueueMemoryWrite schedules memory extraction for a conversation
// segment, dedupe-keyed on (context, mode).
func (q *Queue) EnqueueMemoryWrite(ctx context.Context, contextID, userID, mode string, segmentMessages int) error {
	_, err := q.Enqueue(ctx, QueueMemoryWrites, MemoryWriteJob{
		Type:            JobTypeMemoryWrite,
		ContextID:       contextID,
		UserID:          userID,
		Mode:            mode,
		SegmentMessages: segmentMessages,
	}, WithDedupeKey(fmt.Sprintf("memwrite:%s:%s", contextID, mode)))
	return err
}

// EnqueueDelivery schedules outbound delivery of a stored message.
func (q *Queue) EnqueueDelivery(ctx context.Context, provider, messageID string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal delivery payload: %w", err)
	}
	_, err = q.Enqueue(ctx, QueueMessages, DeliveryJob{
		Type:      JobTypeDelivery,
		Provider:  provider,
		MessageID: messageID,
		Payload:   raw,
	}, WithDedupeKey("delivery:"+messageID))
	return err
}

// EnqueueDeliveryAck records the outcome of a delivery attempt.
func (q *Queue) EnqueueDeliveryAck(ctx context.Context, messageID, status, errMsg string) error {
	_, err := q.Enqueue(ctx, QueueDeliveryAcks, DeliveryAckJob{
		Type:      JobTypeDeliveryAck,
		MessageID: messageID,
		Status:    status,
		Error:     errMsg,
	})
	return err
}

// DeleteOldJobs hard-deletes completed and failed jobs whose last update
// is older than the cutoff. Live jobs are never touched.
func (q *Queue) DeleteOldJobs(ctx context.Context, cutoff time.Time) (int, error) {
	count, err := q.client.QueueJob.Delete().
		Where(
			queuejob.StatusIn(queuejob.StatusCompleted, queuejob.StatusFailed),
			queuejob.UpdatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old queue jobs: %w", err)
	}
	return count, nil
}
