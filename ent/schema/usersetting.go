package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// UserSetting holds the schema definition for the UserSetting entity.
// Per-user knobs consumed by the memory writer: memory opt-out and the
// encrypted LLM API key with its metadata.
type UserSetting struct {
	ent.Schema
}

// Fields of the UserSetting.
func (UserSetting) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("setting_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Unique().
			Immutable(),
		field.Bool("memory_enabled").
			Default(true),
		field.String("llm_api_key_encrypted").
			Optional().
			Nillable().
			Comment("base64(nonce || AES-256-GCM ciphertext)"),
		field.JSON("llm_key_meta", map[string]interface{}{}).
			Optional().
			Comment("provider, model"),
		field.String("timezone").
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
