// Package events broadcasts run activity over Postgres NOTIFY so API
// consumers can follow runs without polling. Publication is best-effort:
// the run log in run_steps is the durable record, the NOTIFY stream is
// not.
package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
)

// RunEventsChannel is the NOTIFY channel carrying all run activity.
const RunEventsChannel = "run_events"

// StepEvent announces one appended run step.
type StepEvent struct {
	Kind     string `json:"kind"` // always "step"
	RunID    string `json:"runId"`
	TenantID string `json:"tenantId,omitempty"`
	Seq      int    `json:"seq"`
	StepType string `json:"stepType"`
	Name     string `json:"name,omitempty"` // event name for event steps, tool name for tool steps
}

// StatusEvent announces a run status transition.
type StatusEvent struct {
	Kind     string `json:"kind"` // always "status"
	RunID    string `json:"runId"`
	TenantID string `json:"tenantId,omitempty"`
	Status   string `json:"status"`
}

// Publisher broadcasts run events via pg_notify. A nil Publisher is
// valid and drops everything, so callers never need to guard.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher. The db parameter should be the
// *sql.DB from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishStep broadcasts a step-appended event. Failures are logged and
// swallowed.
func (p *Publisher) PublishStep(ctx context.Context, event StepEvent) {
	event.Kind = "step"
	p.notify(ctx, event, "run_id", event.RunID, "seq", event.Seq)
}

// PublishStatus broadcasts a run status transition. Failures are logged
// and swallowed.
func (p *Publisher) PublishStatus(ctx context.Context, event StatusEvent) {
	event.Kind = "status"
	p.notify(ctx, event, "run_id", event.RunID, "status", event.Status)
}

func (p *Publisher) notify(ctx context.Context, payload any, logAttrs ...any) {
	if p == nil || p.db == nil {
		return
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		slog.Warn("Failed to marshal run event", append(logAttrs, "error", err)...)
		return
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", RunEventsChannel, string(payloadJSON)); err != nil {
		slog.Warn("Failed to publish run event", append(logAttrs, "error", err)...)
	}
}
