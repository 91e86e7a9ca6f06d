package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QueueJob holds the schema definition for the QueueJob entity.
// Durable FIFO job in one of the named queues, with delayed visibility
// via run_at. Workers claim rows with FOR UPDATE SKIP LOCKED.
type QueueJob struct {
	ent.Schema
}

// Fields of the QueueJob.
func (QueueJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("queue").
			Immutable().
			Comment("runs | messages | delivery-acks | memory-writes | wake"),
		field.String("dedupe_key").
			Optional().
			Nillable().
			Immutable().
			Comment("Re-enqueues with an equal key are no-ops while a live job holds it (partial unique index)"),
		field.JSON("payload", json.RawMessage{}).
			Immutable(),
		field.Enum("status").
			Values("pending", "running", "completed", "failed").
			Default("pending"),
		field.Time("run_at").
			Default(time.Now).
			Comment("Delayed visibility: job is claimable at or after this time"),
		field.Int("attempts").
			Default(0),
		field.Int("max_attempts").
			Default(3),
		field.Text("last_error").
			Optional().
			Nillable(),
		field.String("claimed_by").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the QueueJob.
func (QueueJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("queue", "status", "run_at"),
		index.Fields("status", "updated_at"),
	}
}
