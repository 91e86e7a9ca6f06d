// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/pkg/config"
	"github.com/conductorhq/conductor/pkg/queue"
	"github.com/conductorhq/conductor/pkg/services"
)

// Service periodically enforces retention policies:
//   - Hard-deletes terminal coordinator trees past the retention window
//     (steps and descendants go with them via cascade)
//   - Removes old messages
//   - Removes completed and failed queue jobs past their TTL
//   - Removes retired triggers
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config   *config.RetentionConfig
	runs     *services.RunService
	messages *services.MessageService
	triggers *services.TriggerService
	queue    *queue.Queue

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client, q *queue.Queue) *Service {
	return &Service{
		config:   cfg,
		runs:     services.NewRunService(client),
		messages: services.NewMessageService(client),
		triggers: services.NewTriggerService(client),
		queue:    q,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"run_retention_days", s.config.RunRetentionDays,
		"job_ttl", s.config.JobTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.deleteOldRuns(ctx)
	s.deleteOldMessages(ctx)
	s.deleteOldJobs(ctx)
	s.deleteRetiredTriggers(ctx)
}

func (s *Service) deleteOldRuns(_ context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.RunRetentionDays)
	count, err := s.runs.DeleteOldTerminalRuns(context.Background(), cutoff)
	if err != nil {
		slog.Error("Retention: run deletion failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted old terminal runs", "count", count)
	}
}

func (s *Service) deleteOldMessages(_ context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.RunRetentionDays)
	count, err := s.messages.DeleteOldMessages(context.Background(), cutoff)
	if err != nil {
		slog.Error("Retention: message deletion failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted old messages", "count", count)
	}
}

func (s *Service) deleteOldJobs(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.JobTTL)
	count, err := s.queue.DeleteOldJobs(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: queue job deletion failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted old queue jobs", "count", count)
	}
}

// Retired triggers share the job TTL: both are operational debris kept
// only long enough to debug a recent incident.
func (s *Service) deleteRetiredTriggers(_ context.Context) {
	cutoff := time.Now().Add(-s.config.JobTTL)
	count, err := s.triggers.DeleteDisabledBefore(context.Background(), cutoff)
	if err != nil {
		slog.Error("Retention: trigger deletion failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted retired triggers", "count", count)
	}
}
