package services

import (
	"context"
	"fmt"
	"time"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/runstep"
	"github.com/google/uuid"
)

// StepService manages the append-only per-run step log.
type StepService struct {
	client *ent.Client
}

// NewStepService creates a new StepService
func NewStepService(client *ent.Client) *StepService {
	return &StepService{client: client}
}

// AppendStepParams describes one step to append.
type AppendStepParams struct {
	RunID    string
	Type     runstep.Type
	ToolName string
	Args     map[string]any
	Result   map[string]any
	Status   runstep.Status

	// IdempotencyKey makes retried inserts return the original step.
	// Callers derive it from (runId, iteration, kind); empty means the
	// write is not retried and gets a random key.
	IdempotencyKey string
}

// AppendStep inserts the next step for a run with seq = max(seq) + 1.
// A retried insert with the same idempotency key returns the existing
// step instead of failing, which makes engine side effects replay-safe.
func (s *StepService) AppendStep(httpCtx context.Context, params AppendStepParams) (*ent.RunStep, error) {
	if params.RunID == "" {
		return nil, NewValidationError("run_id", "required")
	}
	if params.Type == "" {
		return nil, NewValidationError("type", "required")
	}

	status := params.Status
	if status == "" {
		status = runstep.StatusCompleted
	}
	key := params.IdempotencyKey
	if key == "" {
		key = uuid.New().String()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// The engine is the run's single writer, so a plain max+1 works; the
	// retry loop covers replays after a worker crash and the rare race
	// with an orphan-recovery takeover, both caught by unique indexes.
	for attempt := 0; attempt < 3; attempt++ {
		seq, err := s.nextSeq(ctx, params.RunID)
		if err != nil {
			return nil, err
		}

		builder := s.client.RunStep.Create().
			SetID(uuid.New().String()).
			SetRunID(params.RunID).
			SetSeq(seq).
			SetType(params.Type).
			SetStatus(status).
			SetIdempotencyKey(key)

		if params.ToolName != "" {
			builder.SetToolName(params.ToolName)
		}
		if params.Args != nil {
			builder.SetArgs(params.Args)
		}
		if params.Result != nil {
			builder.SetResult(params.Result)
		}

		step, err := builder.Save(ctx)
		if err == nil {
			return step, nil
		}
		if !ent.IsConstraintError(err) {
			return nil, fmt.Errorf("failed to append step: %w", err)
		}

		// Replay of an already-written step?
		existing, lookupErr := s.client.RunStep.Query().
			Where(runstep.IdempotencyKeyEQ(key)).
			Only(ctx)
		if lookupErr == nil {
			return existing, nil
		}
		if !ent.IsNotFound(lookupErr) {
			return nil, fmt.Errorf("failed to look up step by idempotency key: %w", lookupErr)
		}
		// seq collision; recompute and retry
	}

	return nil, fmt.Errorf("failed to append step after retries: %w", ErrConcurrentModification)
}

func (s *StepService) nextSeq(ctx context.Context, runID string) (int, error) {
	last, err := s.client.RunStep.Query().
		Where(runstep.RunIDEQ(runID)).
		Order(ent.Desc(runstep.FieldSeq)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 1, nil
		}
		return 0, fmt.Errorf("failed to read last step: %w", err)
	}
	return last.Seq + 1, nil
}

// ListSteps returns a run's steps in seq order.
func (s *StepService) ListSteps(ctx context.Context, runID string) ([]*ent.RunStep, error) {
	steps, err := s.client.RunStep.Query().
		Where(runstep.RunIDEQ(runID)).
		Order(ent.Asc(runstep.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list steps: %w", err)
	}
	return steps, nil
}

// ListStepsAfter returns a run's steps with seq greater than afterSeq,
// in seq order. Pass 0 for the full log; the API uses this for
// incremental polling.
func (s *StepService) ListStepsAfter(ctx context.Context, runID string, afterSeq int) ([]*ent.RunStep, error) {
	steps, err := s.client.RunStep.Query().
		Where(
			runstep.RunIDEQ(runID),
			runstep.SeqGT(afterSeq),
		).
		Order(ent.Asc(runstep.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list steps after seq: %w", err)
	}
	return steps, nil
}

// ListRecentSteps returns the last n steps of a run in seq order.
func (s *StepService) ListRecentSteps(ctx context.Context, runID string, n int) ([]*ent.RunStep, error) {
	if n <= 0 {
		n = 20
	}
	steps, err := s.client.RunStep.Query().
		Where(runstep.RunIDEQ(runID)).
		Order(ent.Desc(runstep.FieldSeq)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent steps: %w", err)
	}
	// reverse into ascending seq
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps, nil
}

// ListStepsByType returns a run's steps of one type in seq order.
func (s *StepService) ListStepsByType(ctx context.Context, runID string, stepType runstep.Type) ([]*ent.RunStep, error) {
	steps, err := s.client.RunStep.Query().
		Where(
			runstep.RunIDEQ(runID),
			runstep.TypeEQ(stepType),
		).
		Order(ent.Asc(runstep.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list steps by type: %w", err)
	}
	return steps, nil
}

// CountSteps returns the number of steps recorded for a run.
func (s *StepService) CountSteps(ctx context.Context, runID string) (int, error) {
	count, err := s.client.RunStep.Query().
		Where(runstep.RunIDEQ(runID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count steps: %w", err)
	}
	return count, nil
}
