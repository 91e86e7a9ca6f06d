package models

// CreateRunRequest contains fields for creating a coordinator run.
type CreateRunRequest struct {
	TenantID  string         `json:"tenant_id"`
	AgentID   string         `json:"agent_id"`
	UserID    string         `json:"user_id"`
	ChannelID string         `json:"channel_id"`
	ContextID string         `json:"context_id,omitempty"`
	Profile   string         `json:"profile,omitempty"`
	InputText string         `json:"input_text"`
	Context   []ContextEntry `json:"context,omitempty"`
}

// RunFilters contains filtering options for listing runs
type RunFilters struct {
	ChannelID string `json:"channel_id,omitempty"`
	UserID    string `json:"user_id,omitempty"`
	Status    string `json:"status,omitempty"`
	Kind      string `json:"kind,omitempty"`
	RootRunID string `json:"root_run_id,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}
