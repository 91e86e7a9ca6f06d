package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/adhocore/gronx"
	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/trigger"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/google/uuid"
)

// TriggerService manages deferred wakes: recurring cron triggers and
// one-shot run wakes. The scheduler scans due triggers and enqueues wake
// jobs; MarkFired advances or retires the trigger.
type TriggerService struct {
	client *ent.Client
	gron   *gronx.Gronx
}

// NewTriggerService creates a new TriggerService
func NewTriggerService(client *ent.Client) *TriggerService {
	return &TriggerService{
		client: client,
		gron:   gronx.New(),
	}
}

// CreateCron registers a recurring trigger for an agent.
func (s *TriggerService) CreateCron(httpCtx context.Context, agentID, cronExpr string) (*ent.Trigger, error) {
	if agentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}
	if !s.gron.IsValid(cronExpr) {
		return nil, NewValidationError("cron", fmt.Sprintf("invalid cron expression %q", cronExpr))
	}

	next, err := gronx.NextTickAfter(cronExpr, time.Now(), false)
	if err != nil {
		return nil, NewValidationError("cron", fmt.Sprintf("cannot compute next tick: %v", err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	created, err := s.client.Trigger.Create().
		SetID(uuid.New().String()).
		SetAgentID(agentID).
		SetType(trigger.TypeCron).
		SetSpec(models.TriggerSpec{Cron: cronExpr}).
		SetNextFireAt(next).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cron trigger: %w", err)
	}
	return created, nil
}

// CreateCronForRun registers a recurring trigger that wakes a specific
// run on each tick. Backs sleep{cron}; retired with the run by
// DisableForRun.
func (s *TriggerService) CreateCronForRun(httpCtx context.Context, agentID, runID, cronExpr string) (*ent.Trigger, error) {
	if runID == "" {
		return nil, NewValidationError("run_id", "required")
	}
	if !s.gron.IsValid(cronExpr) {
		return nil, NewValidationError("cron", fmt.Sprintf("invalid cron expression %q", cronExpr))
	}

	next, err := gronx.NextTickAfter(cronExpr, time.Now(), false)
	if err != nil {
		return nil, NewValidationError("cron", fmt.Sprintf("cannot compute next tick: %v", err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	created, err := s.client.Trigger.Create().
		SetID(uuid.New().String()).
		SetAgentID(agentID).
		SetType(trigger.TypeCron).
		SetSpec(models.TriggerSpec{Cron: cronExpr, RunID: runID, Reason: models.WakeReasonCron}).
		SetNextFireAt(next).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create run cron trigger: %w", err)
	}
	return created, nil
}

// CreateRunWake registers a one-shot trigger that wakes a run at the
// given time. Used for sleeps with far deadlines and as the watchdog
// safety net behind delayed wake jobs.
func (s *TriggerService) CreateRunWake(httpCtx context.Context, agentID, runID string, at time.Time, reason string) (*ent.Trigger, error) {
	if runID == "" {
		return nil, NewValidationError("run_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	created, err := s.client.Trigger.Create().
		SetID(uuid.New().String()).
		SetAgentID(agentID).
		SetType(trigger.TypeRunWake).
		SetSpec(models.TriggerSpec{RunID: runID, Reason: reason}).
		SetNextFireAt(at).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create run wake trigger: %w", err)
	}
	return created, nil
}

// DueTriggers returns enabled triggers whose fire time has passed,
// oldest first.
func (s *TriggerService) DueTriggers(ctx context.Context, now time.Time, limit int) ([]*ent.Trigger, error) {
	if limit <= 0 {
		limit = 50
	}
	triggers, err := s.client.Trigger.Query().
		Where(
			trigger.Enabled(true),
			trigger.NextFireAtLTE(now),
		).
		Order(ent.Asc(trigger.FieldNextFireAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query due triggers: %w", err)
	}
	return triggers, nil
}

// MarkFired advances a fired trigger: cron triggers get their next tick,
// run wakes are retired. The conditional predicate on next_fire_at makes
// concurrent dispatcher replicas fire each trigger once — the loser's
// update matches zero rows. Returns false for the loser.
func (s *TriggerService) MarkFired(httpCtx context.Context, t *ent.Trigger) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Trigger.Update().
		Where(
			trigger.IDEQ(t.ID),
			trigger.Enabled(true),
			trigger.NextFireAtEQ(t.NextFireAt),
		).
		SetLastFiredAt(time.Now())

	switch t.Type {
	case trigger.TypeCron:
		next, err := gronx.NextTickAfter(t.Spec.Cron, time.Now(), false)
		if err != nil {
			// Unparseable after an edit; retire instead of spinning.
			update.SetEnabled(false)
		} else {
			update.SetNextFireAt(next)
		}
	case trigger.TypeRunWake:
		update.SetEnabled(false)
	}

	count, err := update.Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to mark trigger fired: %w", err)
	}
	return count > 0, nil
}

// DisableForRun retires pending triggers that target a run, both
// one-shot wakes and run-scoped crons. Called when the run reaches a
// terminal state; firing them would be a harmless no-op, this just keeps
// the scan small.
func (s *TriggerService) DisableForRun(httpCtx context.Context, runID string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Trigger.Update().
		Where(trigger.Enabled(true)).
		Where(func(sel *sql.Selector) {
			sel.Where(sqljson.ValueEQ(trigger.FieldSpec, runID, sqljson.Path("runId")))
		}).
		SetEnabled(false).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to disable run triggers: %w", err)
	}
	return count, nil
}

// ListByAgent returns an agent's triggers, newest first.
func (s *TriggerService) ListByAgent(ctx context.Context, agentID string) ([]*ent.Trigger, error) {
	triggers, err := s.client.Trigger.Query().
		Where(trigger.AgentIDEQ(agentID)).
		Order(ent.Desc(trigger.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list triggers: %w", err)
	}
	return triggers, nil
}

// DeleteDisabledBefore removes retired triggers older than the cutoff.
func (s *TriggerService) DeleteDisabledBefore(httpCtx context.Context, cutoff time.Time) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Trigger.Delete().
		Where(
			trigger.Enabled(false),
			trigger.UpdatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete retired triggers: %w", err)
	}
	return count, nil
}
