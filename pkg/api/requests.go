package api

// PostMessageRequest is the body of POST /api/v1/channels/:id/messages.
// userId defaults to the channel owner when omitted.
type PostMessageRequest struct {
	UserID   string         `json:"userId,omitempty"`
	Content  string         `json:"content" binding:"required"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// IngestMessageRequest is the body of POST /api/v1/messages: provider
// ingress that resolves or creates the user's channel first. Gateways
// that only know the provider identity use this instead of the
// channel-scoped endpoint.
type IngestMessageRequest struct {
	UserID        string         `json:"userId" binding:"required"`
	Provider      string         `json:"provider" binding:"required"`
	DiscordUserID string         `json:"discordUserId,omitempty"`
	Content       string         `json:"content" binding:"required"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// PutSettingsRequest is the body of PUT /api/v1/users/:id/settings.
// Absent fields are left unchanged. llmApiKey arrives in plaintext and
// is sealed before storage; an explicit empty string clears the key.
type PutSettingsRequest struct {
	MemoryEnabled *bool          `json:"memoryEnabled,omitempty"`
	LLMAPIKey     *string        `json:"llmApiKey,omitempty"`
	LLMKeyMeta    map[string]any `json:"llmKeyMeta,omitempty"`
	Timezone      *string        `json:"timezone,omitempty"`
}

// CreateTriggerRequest is the body of POST /api/v1/triggers.
type CreateTriggerRequest struct {
	AgentID string `json:"agentId" binding:"required"`
	Cron    string `json:"cron" binding:"required"`
}
