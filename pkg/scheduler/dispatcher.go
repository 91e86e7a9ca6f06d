// Package scheduler dispatches deferred wakes. A background loop scans
// due triggers and enqueues wake jobs for their runs, and resumes
// waiting runs whose wake deadline passed even when the delayed wake job
// that should have done it was lost. Contract: fire at or after
// next_fire_at, at-least-once; the run claim makes duplicates harmless.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/pkg/config"
	"github.com/conductorhq/conductor/pkg/queue"
	"github.com/conductorhq/conductor/pkg/services"
)

// Dispatcher owns the periodic trigger and wake-deadline scans. Safe to
// run on every pod: MarkFired arbitrates concurrent replicas and WakeRun
// is conditional, so each fire resumes a run exactly once.
type Dispatcher struct {
	config   *config.SchedulerConfig
	triggers *services.TriggerService
	runs     *services.RunService
	queue    *queue.Queue

	cancel context.CancelFunc
	done   chan struct{}
}

// NewDispatcher creates a dispatcher over the given services.
func NewDispatcher(cfg *config.SchedulerConfig, client *ent.Client, q *queue.Queue) *Dispatcher {
	return &Dispatcher{
		config:   cfg,
		triggers: services.NewTriggerService(client),
		runs:     services.NewRunService(client),
		queue:    q,
	}
}

// Start launches the background scan loop.
func (d *Dispatcher) Start(ctx context.Context) {
	if d.cancel != nil {
		return
	}
	ctx, d.cancel = context.WithCancel(ctx)
	d.done = make(chan struct{})

	go d.run(ctx)

	slog.Info("Trigger dispatcher started",
		"scan_interval", d.config.TriggerScanInterval,
		"batch_size", d.config.TriggerBatchSize)
}

// Stop signals the loop to exit and waits for it to finish.
func (d *Dispatcher) Stop() {
	if d.cancel == nil {
		return
	}
	d.cancel()
	<-d.done
	slog.Info("Trigger dispatcher stopped")
}

func (d *Dispatcher) run(ctx context.Context) {
	defer close(d.done)

	d.scan(ctx)

	ticker := time.NewTicker(d.config.TriggerScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.scan(ctx)
		}
	}
}

func (d *Dispatcher) scan(ctx context.Context) {
	d.fireDueTriggers(ctx)
	d.wakeDueRuns(ctx)
}

// fireDueTriggers enqueues a wake for every due trigger, then advances
// or retires it. Enqueue happens first so a crash between the two steps
// loses nothing; the wake dedupe key absorbs the resulting duplicate.
func (d *Dispatcher) fireDueTriggers(ctx context.Context) {
	due, err := d.triggers.DueTriggers(ctx, time.Now(), d.config.TriggerBatchSize)
	if err != nil {
		slog.Error("Trigger scan failed", "error", err)
		return
	}

	for _, t := range due {
		if err := d.fireTrigger(ctx, t); err != nil {
			slog.Error("Trigger fire failed", "trigger_id", t.ID, "error", err)
		}
	}
}

func (d *Dispatcher) fireTrigger(ctx context.Context, t *ent.Trigger) error {
	if t.Spec.RunID == "" {
		// Agent-level cron with no run target; nothing consumes these
		// ticks yet, so advance quietly instead of spinning every scan.
		slog.Debug("Skipping agent-level trigger", "trigger_id", t.ID, "agent_id", t.AgentID)
		_, err := d.triggers.MarkFired(ctx, t)
		return err
	}

	r, err := d.runs.GetRun(ctx, t.Spec.RunID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			slog.Warn("Trigger targets missing run, retiring",
				"trigger_id", t.ID, "run_id", t.Spec.RunID)
			_, err := d.triggers.DisableForRun(ctx, t.Spec.RunID)
			return err
		}
		return err
	}

	if isTerminal(r.Status) {
		// Termination should have retired this trigger already; catch
		// the ones a crash left behind.
		_, err := d.triggers.DisableForRun(ctx, r.ID)
		return err
	}

	reason := t.Spec.Reason
	if reason == "" {
		reason = "trigger"
	}
	if err := d.queue.EnqueueWake(ctx, r.ID, r.TenantID, r.AgentID, reason, 0); err != nil {
		return err
	}

	fired, err := d.triggers.MarkFired(ctx, t)
	if err != nil {
		return err
	}
	if fired {
		slog.Info("Trigger fired",
			"trigger_id", t.ID,
			"type", t.Type,
			"run_id", r.ID,
			"reason", reason)
	}
	return nil
}

// wakeDueRuns is the safety net behind delayed wake jobs: any waiting
// run whose wake_at has passed is resumed directly.
func (d *Dispatcher) wakeDueRuns(ctx context.Context) {
	due, err := d.runs.FindDueWaiting(ctx, time.Now(), d.config.TriggerBatchSize)
	if err != nil {
		slog.Error("Wake deadline scan failed", "error", err)
		return
	}

	for _, r := range due {
		woke, err := d.runs.WakeRun(ctx, r.ID)
		if err != nil {
			slog.Error("Failed to wake due run", "run_id", r.ID, "error", err)
			continue
		}
		if !woke {
			continue
		}
		slog.Info("Woke run past its wake deadline", "run_id", r.ID, "wake_at", r.WakeAt)
		if err := d.queue.EnqueueRun(ctx, r.ID, r.TenantID, r.AgentID); err != nil {
			slog.Error("Failed to enqueue woken run", "run_id", r.ID, "error", err)
		}
	}
}

func isTerminal(s run.Status) bool {
	switch s {
	case run.StatusCompleted, run.StatusFailed, run.StatusCancelled:
		return true
	}
	return false
}
