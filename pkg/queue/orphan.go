package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/queuejob"
	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/pkg/services"
)

// orphanState tracks orphan scan metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanScan periodically recovers work abandoned by dead pods.
// All pods run this independently — every operation is idempotent.
func (p *WorkerPool) runOrphanScan(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.scanForOrphans(ctx); err != nil {
				slog.Error("Orphan scan failed", "error", err)
			}
		}
	}
}

// scanForOrphans runs one recovery pass: stale running runs go back to
// pending and are re-enqueued, overdue waiting runs are woken, and stale
// running jobs are failed.
func (p *WorkerPool) scanForOrphans(ctx context.Context) error {
	recovered := 0

	n, err := p.recoverStaleRuns(ctx)
	if err != nil {
		return err
	}
	recovered += n

	n, err = p.wakeOverdueRuns(ctx)
	if err != nil {
		return err
	}
	recovered += n

	n, err = p.failStaleJobs(ctx)
	if err != nil {
		return err
	}
	recovered += n

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverStaleRuns resets running runs with stale heartbeats back to
// pending and re-enqueues them. Runs are resumable: steps are idempotent,
// so a takeover replays cleanly.
func (p *WorkerPool) recoverStaleRuns(ctx context.Context) (int, error) {
	runs := services.NewRunService(p.client)

	stale, err := runs.FindStaleRunning(ctx, p.config.OrphanThreshold)
	if err != nil {
		return 0, fmt.Errorf("failed to query stale runs: %w", err)
	}
	if len(stale) == 0 {
		return 0, nil
	}

	slog.Warn("Detected orphaned runs", "count", len(stale))

	recovered := 0
	for _, r := range stale {
		reset, err := runs.ResetToPending(ctx, r.ID)
		if err != nil {
			slog.Error("Failed to reset orphaned run", "run_id", r.ID, "error", err)
			continue
		}
		if !reset {
			// Another scanner got there first, or the run finished.
			continue
		}
		if err := p.queue.EnqueueRun(ctx, r.ID, r.TenantID, r.AgentID); err != nil {
			slog.Error("Failed to re-enqueue orphaned run", "run_id", r.ID, "error", err)
			continue
		}
		slog.Warn("Orphaned run reset to pending",
			"run_id", r.ID,
			"old_claimed_by", stringOrUnknown(r.ClaimedBy))
		recovered++
	}
	return recovered, nil
}

// wakeOverdueRuns is the safety net for lost wake jobs: waiting runs whose
// wake_at has passed are flipped back to pending and re-enqueued.
func (p *WorkerPool) wakeOverdueRuns(ctx context.Context) (int, error) {
	runs := services.NewRunService(p.client)

	due, err := runs.FindDueWaiting(ctx, time.Now(), 50)
	if err != nil {
		return 0, fmt.Errorf("failed to query due waiting runs: %w", err)
	}

	woken := 0
	for _, r := range due {
		woke, err := runs.WakeRun(ctx, r.ID)
		if err != nil {
			slog.Error("Failed to wake overdue run", "run_id", r.ID, "error", err)
			continue
		}
		if !woke {
			continue
		}
		if err := p.queue.EnqueueRun(ctx, r.ID, r.TenantID, r.AgentID); err != nil {
			slog.Error("Failed to enqueue woken run", "run_id", r.ID, "error", err)
			continue
		}
		slog.Info("Overdue waiting run woken by scan", "run_id", r.ID)
		woken++
	}
	return woken, nil
}

// failStaleJobs marks running jobs with no worker activity as failed. The
// cutoff sits past the job timeout so legitimately long handlers are never
// reaped.
func (p *WorkerPool) failStaleJobs(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-(p.config.JobTimeout + p.config.OrphanThreshold))

	n, err := p.client.QueueJob.Update().
		Where(
			queuejob.StatusEQ(queuejob.StatusRunning),
			queuejob.UpdatedAtLT(cutoff),
		).
		SetStatus(queuejob.StatusFailed).
		SetLastError("orphaned: no worker activity past job timeout").
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fail stale jobs: %w", err)
	}
	if n > 0 {
		slog.Warn("Failed stale running jobs", "count", n)
	}
	return n, nil
}

// CleanupStartupOrphans recovers work claimed by this pod before a crash.
// Called once during startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, q *Queue, podID string) error {
	workerPrefix := podID + "-worker-"
	runs := services.NewRunService(client)

	// Runs this pod was executing go back to pending and are re-enqueued.
	orphanRuns, err := client.Run.Query().
		Where(
			run.StatusEQ(run.StatusRunning),
			run.ClaimedByHasPrefix(workerPrefix),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphan runs: %w", err)
	}

	for _, r := range orphanRuns {
		reset, err := runs.ResetToPending(ctx, r.ID)
		if err != nil {
			slog.Error("Failed to reset startup orphan run", "run_id", r.ID, "error", err)
			continue
		}
		if !reset {
			continue
		}
		if err := q.EnqueueRun(ctx, r.ID, r.TenantID, r.AgentID); err != nil {
			slog.Error("Failed to re-enqueue startup orphan run", "run_id", r.ID, "error", err)
			continue
		}
		slog.Info("Startup orphan run recovered", "run_id", r.ID)
	}

	// Jobs this pod was processing are retried if budget remains.
	orphanJobs, err := client.QueueJob.Query().
		Where(
			queuejob.StatusEQ(queuejob.StatusRunning),
			queuejob.ClaimedByHasPrefix(workerPrefix),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphan jobs: %w", err)
	}

	if len(orphanRuns) > 0 || len(orphanJobs) > 0 {
		slog.Warn("Found startup orphans from previous run",
			"pod_id", podID,
			"runs", len(orphanRuns),
			"jobs", len(orphanJobs))
	}

	for _, job := range orphanJobs {
		update := client.QueueJob.UpdateOneID(job.ID)
		if job.Attempts >= job.MaxAttempts {
			update = update.
				SetStatus(queuejob.StatusFailed).
				SetLastError(fmt.Sprintf("orphaned: pod %s restarted, attempts exhausted", podID))
		} else {
			update = update.
				SetStatus(queuejob.StatusPending).
				SetRunAt(time.Now()).
				SetLastError(fmt.Sprintf("orphaned: pod %s restarted", podID)).
				ClearClaimedBy()
		}
		if err := update.Exec(ctx); err != nil {
			slog.Error("Failed to recover startup orphan job", "job_id", job.ID, "error", err)
		}
	}

	return nil
}

func stringOrUnknown(s *string) string {
	if s == nil {
		return "unknown"
	}
	return *s
}
