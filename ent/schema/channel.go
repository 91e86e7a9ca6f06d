package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Channel holds the schema definition for the Channel entity.
// One conversation surface per user per provider. The active context id
// and turn counter drive context rotation (maxTurnsPerContext).
type Channel struct {
	ent.Schema
}

// Fields of the Channel.
func (Channel) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("channel_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Enum("provider").
			Values("web", "discord").
			Immutable(),
		field.String("discord_user_id").
			Optional().
			Nillable().
			Comment("Delivery target for discord channels"),
		field.String("active_context_id").
			Optional().
			Nillable(),
		field.Int("context_turns").
			Default(0).
			Comment("Inbound turns in the active context"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Channel.
func (Channel) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
