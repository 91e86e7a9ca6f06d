package api

import (
	"time"

	"github.com/conductorhq/conductor/ent"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageAcceptedResponse is returned by the message ingress endpoints.
// Status is "queued" when a new coordinator was started and "routed"
// when the message went to the inbox of an already active one.
type MessageAcceptedResponse struct {
	RunID     string `json:"runId"`
	Status    string `json:"status"`
	ChannelID string `json:"channelId"`
	ContextID string `json:"contextId"`
	MessageID string `json:"messageId"`
}

// RunResponse is the public view of a run.
type RunResponse struct {
	ID           string     `json:"id"`
	TenantID     string     `json:"tenantId"`
	AgentID      string     `json:"agentId"`
	UserID       string     `json:"userId"`
	ChannelID    string     `json:"channelId"`
	ContextID    string     `json:"contextId,omitempty"`
	ParentRunID  string     `json:"parentRunId,omitempty"`
	RootRunID    string     `json:"rootRunId"`
	Kind         string     `json:"kind"`
	Profile      string     `json:"profile,omitempty"`
	Status       string     `json:"status"`
	InputText    string     `json:"inputText"`
	OutputText   string     `json:"outputText,omitempty"`
	ErrorMessage string     `json:"errorMessage,omitempty"`
	WakeAt       *time.Time `json:"wakeAt,omitempty"`
	WakeReason   string     `json:"wakeReason,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func runResponse(r *ent.Run) *RunResponse {
	resp := &RunResponse{
		ID:         r.ID,
		TenantID:   r.TenantID,
		AgentID:    r.AgentID,
		UserID:     r.UserID,
		ChannelID:  r.ChannelID,
		RootRunID:  r.RootRunID,
		Kind:       string(r.Kind),
		Status:     string(r.Status),
		InputText:  r.InputText,
		OutputText: r.OutputText,
		WakeAt:     r.WakeAt,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	if r.ContextID != nil {
		resp.ContextID = *r.ContextID
	}
	if r.ParentRunID != nil {
		resp.ParentRunID = *r.ParentRunID
	}
	if r.Profile != nil {
		resp.Profile = *r.Profile
	}
	if r.ErrorMessage != nil {
		resp.ErrorMessage = *r.ErrorMessage
	}
	if r.WakeReason != nil {
		resp.WakeReason = *r.WakeReason
	}
	return resp
}

// RunListResponse is returned by GET /api/v1/runs.
type RunListResponse struct {
	Runs  []*RunResponse `json:"runs"`
	Total int            `json:"total"`
}

// StepResponse is one entry of a run's step log.
type StepResponse struct {
	ID        string         `json:"id"`
	Seq       int            `json:"seq"`
	Type      string         `json:"type"`
	ToolName  string         `json:"toolName,omitempty"`
	Args      map[string]any `json:"args,omitempty"`
	Result    map[string]any `json:"result,omitempty"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
}

func stepResponse(st *ent.RunStep) *StepResponse {
	return &StepResponse{
		ID:        st.ID,
		Seq:       st.Seq,
		Type:      string(st.Type),
		ToolName:  st.ToolName,
		Args:      st.Args,
		Result:    st.Result,
		Status:    string(st.Status),
		CreatedAt: st.CreatedAt,
	}
}

// StepListResponse is returned by GET /api/v1/runs/:id/steps.
type StepListResponse struct {
	RunID string          `json:"runId"`
	Steps []*StepResponse `json:"steps"`
}

// CancelResponse is returned by POST /api/v1/runs/:id/cancel.
type CancelResponse struct {
	RunID     string `json:"runId"`
	Cancelled int    `json:"cancelled"`
	Message   string `json:"message"`
}

// SettingsResponse is the public view of user settings. Key material is
// never returned, only whether a key is on file.
type SettingsResponse struct {
	UserID        string `json:"userId"`
	MemoryEnabled bool   `json:"memoryEnabled"`
	HasAPIKey     bool   `json:"hasApiKey"`
	Provider      string `json:"provider,omitempty"`
	Timezone      string `json:"timezone,omitempty"`
}

func settingsResponse(s *ent.UserSetting) *SettingsResponse {
	resp := &SettingsResponse{
		UserID:        s.UserID,
		MemoryEnabled: s.MemoryEnabled,
		HasAPIKey:     s.LlmAPIKeyEncrypted != nil && *s.LlmAPIKeyEncrypted != "",
	}
	if provider, ok := s.LlmKeyMeta["provider"].(string); ok {
		resp.Provider = provider
	}
	if s.Timezone != nil {
		resp.Timezone = *s.Timezone
	}
	return resp
}

// TriggerResponse is the public view of a trigger.
type TriggerResponse struct {
	ID          string     `json:"id"`
	AgentID     string     `json:"agentId"`
	Type        string     `json:"type"`
	Cron        string     `json:"cron,omitempty"`
	RunID       string     `json:"runId,omitempty"`
	Enabled     bool       `json:"enabled"`
	NextFireAt  time.Time  `json:"nextFireAt"`
	LastFiredAt *time.Time `json:"lastFiredAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func triggerResponse(t *ent.Trigger) *TriggerResponse {
	return &TriggerResponse{
		ID:          t.ID,
		AgentID:     t.AgentID,
		Type:        string(t.Type),
		Cron:        t.Spec.Cron,
		RunID:       t.Spec.RunID,
		Enabled:     t.Enabled,
		NextFireAt:  t.NextFireAt,
		LastFiredAt: t.LastFiredAt,
		CreatedAt:   t.CreatedAt,
	}
}

// HealthCheck is the status of one checked component.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}
