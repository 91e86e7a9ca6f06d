package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/conductorhq/conductor/pkg/models"
)

// Run holds the schema definition for the Run entity.
// One agent invocation: a coordinator created from an inbound user message,
// or a subagent spawned by a parent run.
type Run struct {
	ent.Schema
}

// Fields of the Run.
func (Run) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("channel_id").
			Immutable(),
		field.String("context_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("parent_run_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Set for subagents; coordinators have none"),
		field.String("root_run_id").
			Immutable().
			Comment("Equals id for coordinators; inherited by descendants"),
		field.Enum("kind").
			Values("coordinator", "subagent").
			Immutable(),
		field.String("profile").
			Optional().
			Nillable().
			Comment("Spawn profile (e.g. auto_tool, recovery)"),
		field.Text("input_text"),
		field.JSON("input", models.RunInput{}).
			Comment("State blob, spawn context, agent level; rewritten whole on update"),
		field.JSON("allowed_tools", []string{}).
			Optional().
			Comment("tool.command names; absent = unrestricted"),
		field.Text("output_text").
			Optional().
			Default(""),
		field.Enum("status").
			Values("pending", "running", "waiting", "completed", "failed", "cancelled").
			Default("pending"),
		field.Time("wake_at").
			Optional().
			Nillable(),
		field.String("wake_reason").
			Optional().
			Nillable(),
		field.String("claimed_by").
			Optional().
			Nillable().
			Comment("Worker id, for multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.String("error_message").
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

// Edges of the Run.
func (Run) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("steps", RunStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("children", Run.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)).
			From("parent").
			Field("parent_run_id").
			Unique().
			Immutable(),
	}
}

// Indexes of the Run.
func (Run) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("parent_run_id"),
		index.Fields("root_run_id"),
		index.Fields("channel_id", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
		index.Fields("status", "wake_at"),
	}
}
