package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/conductorhq/conductor/pkg/models"
)

// Trigger holds the schema definition for the Trigger entity.
// Deferred wake: cron triggers recur, run_wake triggers fire once.
// The dispatcher scans next_fire_at and enqueues wake jobs.
type Trigger struct {
	ent.Schema
}

// Fields of the Trigger.
func (Trigger) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("trigger_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.Enum("type").
			Values("cron", "run_wake").
			Immutable(),
		field.JSON("spec", models.TriggerSpec{}),
		field.Time("next_fire_at"),
		field.Bool("enabled").
			Default(true),
		field.Time("last_fired_at").
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

// Indexes of the Trigger.
func (Trigger) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("enabled", "next_fire_at"),
		index.Fields("agent_id"),
	}
}
