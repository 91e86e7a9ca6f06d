package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/pkg/config"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/conductorhq/conductor/pkg/services"
)

// RunExecutor executes one run to a suspension point or terminal state.
// The executor owns the conditional pending → running claim, so duplicate
// run jobs are harmless.
type RunExecutor interface {
	ExecuteRun(ctx context.Context, runID string) error
}

// NewRunHandler returns the runs queue handler. It keeps the run heartbeat
// fresh while the executor works so the orphan scan can tell a live claim
// from a dead one.
func NewRunHandler(client *ent.Client, cfg *config.QueueConfig, exec RunExecutor) Handler {
	runs := services.NewRunService(client)
	return func(ctx context.Context, job *ent.QueueJob) error {
		var payload RunJob
		if err := json.Unmarshal(job.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode run job payload: %w", err)
		}
		if payload.RunID == "" {
			return fmt.Errorf("run job missing runId")
		}

		hbCtx, cancelHeartbeat := context.WithCancel(ctx)
		defer cancelHeartbeat()
		go runHeartbeat(hbCtx, runs, payload.RunID, cfg.HeartbeatInterval)

		return exec.ExecuteRun(ctx, payload.RunID)
	}
}

// runHeartbeat refreshes last_heartbeat_at while a run executes. The
// update is conditional on the run still being in running status, so a
// duplicate job heartbeating a run it never claimed is a no-op.
func runHeartbeat(ctx context.Context, runs *services.RunService, runID string, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := runs.Heartbeat(ctx, runID); err != nil {
				slog.Warn("Heartbeat update failed", "run_id", runID, "error", err)
			}
		}
	}
}

// MemoryWriteExecutor distils one conversation segment into durable
// user memories.
type MemoryWriteExecutor interface {
	Write(ctx context.Context, contextID, userID, mode string, segmentMessages int) (*models.MemoryWriteResult, error)
}

// NewMemoryWriteHandler returns the memory-writes queue handler. The
// writer reports skips (memory disabled, missing key, empty segment) as
// ordinary results; only transport and store errors surface as job
// errors and retry.
func NewMemoryWriteHandler(w MemoryWriteExecutor) Handler {
	return func(ctx context.Context, job *ent.QueueJob) error {
		var payload MemoryWriteJob
		if err := json.Unmarshal(job.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode memory write job payload: %w", err)
		}
		if payload.ContextID == "" || payload.UserID == "" {
			return fmt.Errorf("memory write job missing contextId or userId")
		}

		_, err := w.Write(ctx, payload.ContextID, payload.UserID, payload.Mode, payload.SegmentMessages)
		return err
	}
}

// NewWakeHandler returns the wake queue handler: a waiting run flips back
// to pending and a fresh runs job is enqueued. Wakes for runs already past
// waiting are logged no-ops.
func NewWakeHandler(client *ent.Client, q *Queue) Handler {
	runs := services.NewRunService(client)
	return func(ctx context.Context, job *ent.QueueJob) error {
		var payload RunJob
		if err := json.Unmarshal(job.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode wake job payload: %w", err)
		}
		if payload.RunID == "" {
			return fmt.Errorf("wake job missing runId")
		}

		woke, err := runs.WakeRun(ctx, payload.RunID)
		if err != nil {
			return err
		}
		if woke {
			slog.Info("Run woken", "run_id", payload.RunID, "reason", payload.Reason)
			return q.EnqueueRun(ctx, payload.RunID, payload.TenantID, payload.AgentID)
		}

		status, err := runs.RefreshStatus(ctx, payload.RunID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				slog.Warn("Wake for unknown run", "run_id", payload.RunID)
				return nil
			}
			return err
		}
		if status == run.StatusPending {
			// The run lost its claim or the original enqueue was dropped;
			// make sure a run job exists.
			return q.EnqueueRun(ctx, payload.RunID, payload.TenantID, payload.AgentID)
		}

		slog.Info("Wake no-op, run not waiting",
			"run_id", payload.RunID,
			"status", status,
			"reason", payload.Reason)
		return nil
	}
}
