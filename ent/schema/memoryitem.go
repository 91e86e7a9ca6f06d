package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MemoryItem holds the schema definition for the MemoryItem entity.
// Durable user fact written exclusively by the memory writer.
// (user_id, module, key) is unique among non-archived items — enforced by
// a partial unique index created in the migration SQL.
type MemoryItem struct {
	ent.Schema
}

// Fields of the MemoryItem.
func (MemoryItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("memory_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Int("level").
			Min(0).
			Max(5).
			Comment("0..5; each level has item-count and value-length caps"),
		field.Enum("module").
			Values(
				"identity",
				"preferences",
				"constraints",
				"projects",
				"relationships",
				"environment",
				"recent_context",
			),
		field.String("key").
			MaxLen(64).
			Comment("snake_case identifier within the module"),
		field.Text("value"),
		field.Float("confidence").
			Default(0.6),
		field.Bool("pinned").
			Default(false).
			Comment("Pinned items are never archived by caps or dedupe"),
		field.Bool("archived").
			Default(false),
		field.String("context_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_seen_at").
			Default(time.Now),
	}
}

// Indexes of the MemoryItem.
func (MemoryItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "module", "key"),
		index.Fields("user_id", "archived", "level"),
		index.Fields("user_id", "archived", "last_seen_at"),
	}
}
