package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunStep holds the schema definition for the RunStep entity.
// Append-only ordered log per run; seq is strictly monotonic within a run
// and the idempotency key makes inserts retry-safe.
type RunStep struct {
	ent.Schema
}

// Fields of the RunStep.
func (RunStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.Int("seq").
			Immutable().
			Comment("Monotonic order within the run"),
		field.Enum("type").
			Values(
				"tool_call",
				"tool_result",
				"message",
				"assistant_message",
				"note",
				"decision",
				"output_update",
				"finish",
				"validation_missing",
			).
			Immutable(),
		field.String("tool_name").
			Optional().
			Immutable(),
		field.JSON("args", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.JSON("result", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Enum("status").
			Values("completed", "failed").
			Default("completed").
			Immutable(),
		field.String("idempotency_key").
			Unique().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RunStep.
func (RunStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("steps").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RunStep.
func (RunStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "seq").
			Unique(),
		index.Fields("run_id", "created_at"),
		index.Fields("type"),
	}
}
