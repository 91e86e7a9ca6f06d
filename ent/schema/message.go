package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity.
// Per-channel conversation entry, inbound from users and outbound from runs.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("channel_id").
			Immutable(),
		field.String("context_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Conversation segment this message belongs to"),
		field.Text("content"),
		field.Enum("direction").
			Values("inbound", "outbound").
			Immutable(),
		field.Enum("delivery_status").
			Values("pending", "delivered", "failed").
			Default("pending"),
		field.Time("delivered_at").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("source, runId, discordUserId, replyTo"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel_id", "created_at"),
		index.Fields("context_id"),
		index.Fields("delivery_status"),
	}
}
