package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/ent/runstep"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/conductorhq/conductor/pkg/services"
)

// applySleep suspends the run until a deadline, a cron tick, or an
// external wake. Coordinators may only sleep with children in flight and
// a drained queue; subagents only while waiting on a parent reply.
func (e *Engine) applySleep(ctx context.Context, r *ent.Run, st *iterState, cmd *RunCommand) (applyOutcome, error) {
	role := models.DeriveRole(string(r.Kind), r.Input.AgentLevel)

	if role == models.RoleCoordinator {
		if len(r.Input.State.Queue) > 0 {
			if err := e.blockAction(ctx, r, st, "sleep_invalid",
				"the queue still has work; shift or clear it first"); err != nil {
				return outcomeContinue, err
			}
			return outcomeContinue, nil
		}
		active, err := e.runs.ActiveChildren(ctx, r.ID)
		if err != nil {
			return outcomeContinue, fmt.Errorf("count active children: %w", err)
		}
		if active == 0 {
			if err := e.blockAction(ctx, r, st, "sleep_invalid",
				"no active subagents to wait for; act or finish instead"); err != nil {
				return outcomeContinue, err
			}
			return outcomeContinue, nil
		}
	} else if !r.Input.State.WaitingForParent {
		if err := e.blockAction(ctx, r, st, "sleep_invalid",
			"sleep is only valid while waiting for a parent reply"); err != nil {
			return outcomeContinue, err
		}
		return outcomeContinue, nil
	}

	var wakeAt *time.Time
	wakeReason := models.WakeReasonSleep

	switch {
	case cmd.Cron != "":
		trig, err := e.triggers.CreateCronForRun(ctx, r.AgentID, r.ID, cmd.Cron)
		if err != nil {
			if services.IsValidationError(err) {
				if berr := e.blockAction(ctx, r, st, "invalid_sleep", err.Error()); berr != nil {
					return outcomeContinue, berr
				}
				return outcomeContinue, nil
			}
			return outcomeContinue, fmt.Errorf("create sleep cron: %w", err)
		}
		wakeAt = &trig.NextFireAt
		wakeReason = models.WakeReasonCron

	case cmd.WakeAt != "":
		t, err := time.Parse(time.RFC3339, cmd.WakeAt)
		if err != nil {
			if berr := e.blockAction(ctx, r, st, "invalid_sleep",
				"wakeAt must be an RFC 3339 timestamp"); berr != nil {
				return outcomeContinue, berr
			}
			return outcomeContinue, nil
		}
		wakeAt = &t

	case cmd.HasDelay:
		if cmd.DelaySeconds <= 0 {
			if berr := e.blockAction(ctx, r, st, "invalid_sleep",
				"delaySeconds must be positive"); berr != nil {
				return outcomeContinue, berr
			}
			return outcomeContinue, nil
		}
		t := time.Now().Add(time.Duration(cmd.DelaySeconds) * time.Second)
		wakeAt = &t

	default:
		if role == models.RoleCoordinator {
			// No deadline given; fall back to the watchdog cadence so a
			// lost child completion cannot park the run forever.
			t := time.Now().Add(e.cfg.WatchdogDelay)
			wakeAt = &t
		} else {
			wakeReason = models.WakeReasonWaitingForParent
		}
	}

	payload := map[string]any{}
	if cmd.Reason != "" {
		payload["reason"] = cmd.Reason
	}
	if wakeAt != nil {
		payload["wakeAt"] = wakeAt.UTC().Format(time.RFC3339)
	}
	if cmd.Cron != "" {
		payload["cron"] = cmd.Cron
	}
	e.eventStep(ctx, r, models.EventSleep, payload, runstep.StatusCompleted)

	if err := e.runs.MarkWaiting(ctx, r.ID, wakeAt, wakeReason); err != nil {
		return outcomeContinue, fmt.Errorf("mark sleeping: %w", err)
	}
	e.publishStatus(ctx, r, run.StatusWaiting)

	// Cron wakes arrive through the trigger scan; everything else gets a
	// delayed wake job, double-covered by the due-waiting scan on wake_at.
	if cmd.Cron == "" && wakeAt != nil {
		delay := time.Until(*wakeAt)
		if delay < 0 {
			delay = 0
		}
		if err := e.queue.EnqueueWake(ctx, r.ID, r.TenantID, r.AgentID, wakeReason, delay); err != nil {
			slog.Error("Failed to enqueue sleep wake", "run_id", r.ID, "error", err)
		}
	}

	slog.Info("Run sleeping",
		"run_id", r.ID, "wake_reason", wakeReason, "cron", cmd.Cron)

	e.actionApplied(ctx, r, st)
	return outcomeWaiting, nil
}
