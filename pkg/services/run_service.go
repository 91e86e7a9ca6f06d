package services

import (
	"context"
	"fmt"
	"time"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/google/uuid"
)

// RunService manages the run lifecycle: creation, claiming, the durable
// status machine, state blob updates, and cascade cancellation.
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService
func NewRunService(client *ent.Client) *RunService {
	return &RunService{client: client}
}

// CreateCoordinator creates a top-level run for an inbound user request.
// rootRunId equals the run's own id and the task queue starts empty.
func (s *RunService) CreateCoordinator(httpCtx context.Context, req models.CreateRunRequest) (*ent.Run, error) {
	if req.TenantID == "" {
		return nil, NewValidationError("tenant_id", "required")
	}
	if req.AgentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.ChannelID == "" {
		return nil, NewValidationError("channel_id", "required")
	}
	if req.InputText == "" {
		return nil, NewValidationError("input_text", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := uuid.New().String()
	builder := s.client.Run.Create().
		SetID(id).
		SetTenantID(req.TenantID).
		SetAgentID(req.AgentID).
		SetUserID(req.UserID).
		SetChannelID(req.ChannelID).
		SetRootRunID(id).
		SetKind(run.KindCoordinator).
		SetInputText(req.InputText).
		SetInput(models.RunInput{
			State:          models.RunState{},
			Context:        req.Context,
			AgentLevel:     0,
			AllowSubagents: true,
		}).
		SetStatus(run.StatusPending)

	if req.ContextID != "" {
		builder.SetContextID(req.ContextID)
	}
	if req.Profile != "" {
		builder.SetProfile(req.Profile)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create run: %w", err)
	}

	return created, nil
}

// CreateChildParams describes one subagent row to insert.
type CreateChildParams struct {
	Profile      string
	InputText    string
	AllowedTools []string
	Input        models.RunInput
}

// CreateSubagents inserts child runs for a parent in a single transaction.
// Children inherit tenant, agent, user, channel, and context from the
// parent; rootRunId is inherited so the whole tree shares one root.
func (s *RunService) CreateSubagents(httpCtx context.Context, parent *ent.Run, params []CreateChildParams) ([]*ent.Run, error) {
	if len(params) == 0 {
		return nil, NewValidationError("subagents", "at least one spawn spec required")
	}
	for i, p := range params {
		if p.InputText == "" {
			return nil, NewValidationError(fmt.Sprintf("subagents[%d].task", i), "required")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	children := make([]*ent.Run, 0, len(params))
	for _, p := range params {
		builder := tx.Run.Create().
			SetID(uuid.New().String()).
			SetTenantID(parent.TenantID).
			SetAgentID(parent.AgentID).
			SetUserID(parent.UserID).
			SetChannelID(parent.ChannelID).
			SetParentRunID(parent.ID).
			SetRootRunID(parent.RootRunID).
			SetKind(run.KindSubagent).
			SetInputText(p.InputText).
			SetInput(p.Input).
			SetStatus(run.StatusPending)

		if parent.ContextID != nil {
			builder.SetContextID(*parent.ContextID)
		}
		if p.Profile != "" {
			builder.SetProfile(p.Profile)
		}
		if len(p.AllowedTools) > 0 {
			builder.SetAllowedTools(p.AllowedTools)
		}

		child, err := builder.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create subagent: %w", err)
		}
		children = append(children, child)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit subagent batch: %w", err)
	}

	return children, nil
}

// GetRun retrieves a run by ID
func (s *RunService) GetRun(ctx context.Context, runID string) (*ent.Run, error) {
	r, err := s.client.Run.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return r, nil
}

// ClaimRun atomically moves a pending run to running for the given worker.
// Returns (nil, nil) when the run is not claimable — another worker owns
// it or it reached a terminal state.
func (s *RunService) ClaimRun(httpCtx context.Context, runID, claimedBy string) (*ent.Run, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Run.Update().
		Where(
			run.IDEQ(runID),
			run.StatusEQ(run.StatusPending),
		).
		SetStatus(run.StatusRunning).
		SetClaimedBy(claimedBy).
		SetLastHeartbeatAt(time.Now()).
		ClearWakeAt().
		ClearWakeReason().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim run: %w", err)
	}
	if count == 0 {
		return nil, nil
	}

	r, err := s.client.Run.Get(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch claimed run: %w", err)
	}
	return r, nil
}

// Heartbeat refreshes the claim heartbeat of a running run.
func (s *RunService) Heartbeat(ctx context.Context, runID string) error {
	_, err := s.client.Run.Update().
		Where(
			run.IDEQ(runID),
			run.StatusEQ(run.StatusRunning),
		).
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to heartbeat run: %w", err)
	}
	return nil
}

// RefreshStatus re-reads just the run's status. The engine calls this at
// iteration boundaries to observe external cancellation.
func (s *RunService) RefreshStatus(ctx context.Context, runID string) (run.Status, error) {
	r, err := s.client.Run.Query().
		Where(run.IDEQ(runID)).
		Select(run.FieldStatus).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read run status: %w", err)
	}
	return r.Status, nil
}

// CompleteRun finishes a running run with its final output.
func (s *RunService) CompleteRun(httpCtx context.Context, runID, outputText string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Run.Update().
		Where(
			run.IDEQ(runID),
			run.StatusEQ(run.StatusRunning),
		).
		SetStatus(run.StatusCompleted).
		SetOutputText(outputText).
		ClearWakeAt().
		ClearWakeReason().
		ClearClaimedBy().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	if count == 0 {
		return ErrInvalidState
	}
	return nil
}

// FailRun moves a non-terminal run to failed with an error message.
func (s *RunService) FailRun(httpCtx context.Context, runID, errorMessage string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Run.Update().
		Where(
			run.IDEQ(runID),
			run.StatusIn(run.StatusPending, run.StatusRunning, run.StatusWaiting),
		).
		SetStatus(run.StatusFailed).
		SetErrorMessage(errorMessage).
		ClearWakeAt().
		ClearWakeReason().
		ClearClaimedBy().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to fail run: %w", err)
	}
	if count == 0 {
		return ErrInvalidState
	}
	return nil
}

// MarkWaiting parks a running run until it is woken. wakeAt may be nil
// when the wake comes from an external event rather than a deadline.
func (s *RunService) MarkWaiting(httpCtx context.Context, runID string, wakeAt *time.Time, reason string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Run.Update().
		Where(
			run.IDEQ(runID),
			run.StatusEQ(run.StatusRunning),
		).
		SetStatus(run.StatusWaiting).
		SetWakeReason(reason).
		ClearClaimedBy()

	if wakeAt != nil {
		update.SetWakeAt(*wakeAt)
	} else {
		update.ClearWakeAt()
	}

	count, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark run waiting: %w", err)
	}
	if count == 0 {
		return ErrInvalidState
	}
	return nil
}

// WakeRun moves a waiting run back to pending so it can be re-claimed.
// Returns false when the run was not waiting (already woken or terminal).
func (s *RunService) WakeRun(httpCtx context.Context, runID string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Run.Update().
		Where(
			run.IDEQ(runID),
			run.StatusEQ(run.StatusWaiting),
		).
		SetStatus(run.StatusPending).
		ClearWakeAt().
		ClearWakeReason().
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to wake run: %w", err)
	}
	return count > 0, nil
}

// RequeuePending refreshes updated_at on a pending run. Used when a
// message is queued onto an already-pending coordinator.
func (s *RunService) RequeuePending(ctx context.Context, runID string) error {
	_, err := s.client.Run.Update().
		Where(run.IDEQ(runID), run.StatusEQ(run.StatusPending)).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue run: %w", err)
	}
	return nil
}

// UpdateInput rewrites the run's input blob (state included) atomically.
// Only the engine that claimed the run may call this for running runs.
func (s *RunService) UpdateInput(ctx context.Context, runID string, input models.RunInput) error {
	err := s.client.Run.UpdateOneID(runID).
		SetInput(input).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update run input: %w", err)
	}
	return nil
}

// SetOutputText updates the run's working output without finishing it.
func (s *RunService) SetOutputText(ctx context.Context, runID, outputText string) error {
	err := s.client.Run.UpdateOneID(runID).
		SetOutputText(outputText).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update run output: %w", err)
	}
	return nil
}

// AppendToInbox appends a parent/child message to the target run's
// state.inbox under a row lock, then reports the run's current status so
// the caller can decide whether a wake is needed.
func (s *RunService) AppendToInbox(httpCtx context.Context, runID string, entry models.InboxEntry) (run.Status, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	r, err := tx.Run.Query().
		Where(run.IDEQ(runID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to lock run: %w", err)
	}

	input := r.Input
	input.State.Inbox = append(input.State.Inbox, entry)

	if err := tx.Run.UpdateOneID(runID).SetInput(input).Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to append to inbox: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit inbox append: %w", err)
	}

	return r.Status, nil
}

// ClearWaitingForParent clears the waitingForParent flag and appends the
// parent's reply to the child's inbox in one locked update.
func (s *RunService) ClearWaitingForParent(httpCtx context.Context, childID string, entry models.InboxEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	r, err := tx.Run.Query().
		Where(run.IDEQ(childID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to lock run: %w", err)
	}

	input := r.Input
	input.State.Inbox = append(input.State.Inbox, entry)
	input.State.WaitingForParent = false

	if err := tx.Run.UpdateOneID(childID).SetInput(input).Exec(ctx); err != nil {
		return fmt.Errorf("failed to update child state: %w", err)
	}

	// Re-open the child if it was parked waiting for this reply.
	_, err = tx.Run.Update().
		Where(run.IDEQ(childID), run.StatusEQ(run.StatusWaiting)).
		SetStatus(run.StatusPending).
		ClearWakeAt().
		ClearWakeReason().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to reopen child run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reply: %w", err)
	}
	return nil
}

// CancelCascade cancels a run and all its non-terminal descendants in a
// single transaction. Returns how many runs changed status.
func (s *RunService) CancelCascade(httpCtx context.Context, runID string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Collect the whole subtree breadth-first. Depth is bounded at 2, but
	// the walk is written generally.
	all := []string{runID}
	frontier := []string{runID}
	for len(frontier) > 0 {
		children, err := tx.Run.Query().
			Where(run.ParentRunIDIn(frontier...)).
			Select(run.FieldID).
			Strings(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to collect descendants: %w", err)
		}
		all = append(all, children...)
		frontier = children
	}

	count, err := tx.Run.Update().
		Where(
			run.IDIn(all...),
			run.StatusIn(run.StatusPending, run.StatusRunning, run.StatusWaiting),
		).
		SetStatus(run.StatusCancelled).
		ClearWakeAt().
		ClearWakeReason().
		ClearClaimedBy().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel runs: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit cascade cancel: %w", err)
	}

	return count, nil
}

// ActiveChildren counts a parent's non-terminal children.
func (s *RunService) ActiveChildren(ctx context.Context, parentID string) (int, error) {
	count, err := s.client.Run.Query().
		Where(
			run.ParentRunIDEQ(parentID),
			run.StatusIn(run.StatusPending, run.StatusRunning, run.StatusWaiting),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active children: %w", err)
	}
	return count, nil
}

// ListChildren returns all children of a parent, oldest first.
func (s *RunService) ListChildren(ctx context.Context, parentID string) ([]*ent.Run, error) {
	children, err := s.client.Run.Query().
		Where(run.ParentRunIDEQ(parentID)).
		Order(ent.Asc(run.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}
	return children, nil
}

// FindActiveCoordinator returns the newest non-terminal coordinator on a
// channel, or nil when the channel is idle.
func (s *RunService) FindActiveCoordinator(ctx context.Context, channelID string) (*ent.Run, error) {
	r, err := s.client.Run.Query().
		Where(
			run.ChannelIDEQ(channelID),
			run.KindEQ(run.KindCoordinator),
			run.StatusIn(run.StatusPending, run.StatusRunning, run.StatusWaiting),
		).
		Order(ent.Desc(run.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find active coordinator: %w", err)
	}
	return r, nil
}

// FindStaleRunning returns running runs whose heartbeat is older than the
// threshold. These are orphans from crashed or partitioned workers.
func (s *RunService) FindStaleRunning(ctx context.Context, threshold time.Duration) ([]*ent.Run, error) {
	cutoff := time.Now().Add(-threshold)
	runs, err := s.client.Run.Query().
		Where(
			run.StatusEQ(run.StatusRunning),
			run.LastHeartbeatAtNotNil(),
			run.LastHeartbeatAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find stale runs: %w", err)
	}
	return runs, nil
}

// ResetToPending returns an orphaned running run to pending so another
// worker can resume it. Steps are idempotent, so re-execution is safe.
func (s *RunService) ResetToPending(httpCtx context.Context, runID string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Run.Update().
		Where(
			run.IDEQ(runID),
			run.StatusEQ(run.StatusRunning),
		).
		SetStatus(run.StatusPending).
		ClearClaimedBy().
		ClearLastHeartbeatAt().
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to reset orphaned run: %w", err)
	}
	return count > 0, nil
}

// FindDueWaiting returns waiting runs whose wake deadline has passed.
// This is the safety net behind the wake queue: if a delayed wake job is
// lost, the scheduler scan still resumes the run.
func (s *RunService) FindDueWaiting(ctx context.Context, now time.Time, limit int) ([]*ent.Run, error) {
	if limit <= 0 {
		limit = 50
	}
	runs, err := s.client.Run.Query().
		Where(
			run.StatusEQ(run.StatusWaiting),
			run.WakeAtNotNil(),
			run.WakeAtLTE(now),
		).
		Order(ent.Asc(run.FieldWakeAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find due waiting runs: %w", err)
	}
	return runs, nil
}

// ListRuns lists runs with filtering and pagination for the API.
func (s *RunService) ListRuns(ctx context.Context, filters models.RunFilters) ([]*ent.Run, int, error) {
	query := s.client.Run.Query()

	if filters.ChannelID != "" {
		query = query.Where(run.ChannelIDEQ(filters.ChannelID))
	}
	if filters.UserID != "" {
		query = query.Where(run.UserIDEQ(filters.UserID))
	}
	if filters.Status != "" {
		query = query.Where(run.StatusEQ(run.Status(filters.Status)))
	}
	if filters.Kind != "" {
		query = query.Where(run.KindEQ(run.Kind(filters.Kind)))
	}
	if filters.RootRunID != "" {
		query = query.Where(run.RootRunIDEQ(filters.RootRunID))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count runs: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	runs, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(run.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list runs: %w", err)
	}

	return runs, totalCount, nil
}

// DeleteOldTerminalRuns hard-deletes terminal coordinator trees older than
// the cutoff. Steps and descendants go with them via cascade.
func (s *RunService) DeleteOldTerminalRuns(httpCtx context.Context, cutoff time.Time) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Run.Delete().
		Where(
			run.KindEQ(run.KindCoordinator),
			run.StatusIn(run.StatusCompleted, run.StatusFailed, run.StatusCancelled),
			run.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old runs: %w", err)
	}
	return count, nil
}
