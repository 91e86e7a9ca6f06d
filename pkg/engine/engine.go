// Package engine executes runs: it interprets the JSON commands an LLM
// emits for a claimed run, applies them to the store and queue, and
// guards the loop against repetition, starvation, and role violations.
//
// The engine is stateless between claims. Everything needed to resume a
// run — iteration counts, note protocol state, loop detector history —
// is rebuilt from the run row and its append-only step log.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/channel"
	"github.com/conductorhq/conductor/ent/run"
	"github.com/conductorhq/conductor/ent/runstep"
	"github.com/conductorhq/conductor/pkg/config"
	"github.com/conductorhq/conductor/pkg/events"
	"github.com/conductorhq/conductor/pkg/llm"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/conductorhq/conductor/pkg/prompt"
	"github.com/conductorhq/conductor/pkg/queue"
	"github.com/conductorhq/conductor/pkg/services"
	"github.com/conductorhq/conductor/pkg/tools"
)

// failureMessage is the only text a user sees when a run fails for
// internal reasons.
const failureMessage = "Something went wrong while I was working on your request. Please try again."

// errParseExhausted ends a run whose LLM never produced a parseable
// command within the retry budget.
var errParseExhausted = errors.New("model did not produce a valid command")

// RunStore is the run-row surface the engine needs. *services.RunService
// satisfies it.
type RunStore interface {
	GetRun(ctx context.Context, runID string) (*ent.Run, error)
	ClaimRun(ctx context.Context, runID, claimedBy string) (*ent.Run, error)
	RefreshStatus(ctx context.Context, runID string) (run.Status, error)
	CompleteRun(ctx context.Context, runID, outputText string) error
	FailRun(ctx context.Context, runID, errorMessage string) error
	MarkWaiting(ctx context.Context, runID string, wakeAt *time.Time, reason string) error
	UpdateInput(ctx context.Context, runID string, input models.RunInput) error
	SetOutputText(ctx context.Context, runID, outputText string) error
	AppendToInbox(ctx context.Context, runID string, entry models.InboxEntry) (run.Status, error)
	ClearWaitingForParent(ctx context.Context, childID string, entry models.InboxEntry) error
	WakeRun(ctx context.Context, runID string) (bool, error)
	CancelCascade(ctx context.Context, runID string) (int, error)
	ActiveChildren(ctx context.Context, parentID string) (int, error)
	ListChildren(ctx context.Context, parentID string) ([]*ent.Run, error)
	CreateSubagents(ctx context.Context, parent *ent.Run, params []services.CreateChildParams) ([]*ent.Run, error)
}

// StepStore appends to and reads the run step log. *services.StepService
// satisfies it.
type StepStore interface {
	AppendStep(ctx context.Context, params services.AppendStepParams) (*ent.RunStep, error)
	ListSteps(ctx context.Context, runID string) ([]*ent.RunStep, error)
	ListRecentSteps(ctx context.Context, runID string, n int) ([]*ent.RunStep, error)
}

// MessageStore records outbound messages and reads conversation windows.
type MessageStore interface {
	RecordOutbound(ctx context.Context, userID, channelID, contextID, content string, metadata map[string]any, pendingDelivery bool) (*ent.Message, error)
	ListByContext(ctx context.Context, contextID string, n int) ([]*ent.Message, error)
}

// MemoryStore reads the user's memories for the LLM payload and backs
// the memory tools. Its method set covers tools.Store so the registry
// handlers can share the same service.
type MemoryStore interface {
	TopPerLevel(ctx context.Context, userID string, n int) (map[int][]*ent.MemoryItem, error)
	Search(ctx context.Context, userID, query string, limit int) ([]*ent.MemoryItem, error)
	ListActive(ctx context.Context, userID string) ([]*ent.MemoryItem, error)
}

// ChannelStore resolves the delivery provider for outbound messages.
type ChannelStore interface {
	GetChannel(ctx context.Context, channelID string) (*ent.Channel, error)
}

// TriggerStore manages deferred wakes for sleeping runs.
type TriggerStore interface {
	CreateCronForRun(ctx context.Context, agentID, runID, cronExpr string) (*ent.Trigger, error)
	DisableForRun(ctx context.Context, runID string) (int, error)
}

// JobQueue enqueues follow-up work. *queue.Queue satisfies it.
type JobQueue interface {
	EnqueueRun(ctx context.Context, runID, tenantID, agentID string, opts ...queue.EnqueueOption) error
	EnqueueWake(ctx context.Context, runID, tenantID, agentID, reason string, delay time.Duration) error
	EnqueueDelivery(ctx context.Context, provider, messageID string, payload any) error
}

// ToolExecutor runs tool commands and renders tool lists for prompts.
// *tools.Registry satisfies it.
type ToolExecutor interface {
	Execute(ctx context.Context, tc tools.ToolContext, name string, args map[string]any, profile string) (tools.Result, error)
	Describe(names []string) string
	DescribeAll() string
}

// Deps wires an Engine. Events may be nil (publishing is best-effort).
type Deps struct {
	Runs     RunStore
	Steps    StepStore
	Messages MessageStore
	Memories MemoryStore
	Channels ChannelStore
	Triggers TriggerStore
	Queue    JobQueue
	LLM      llm.Client
	Tools    ToolExecutor
	Events   *events.Publisher
	Config   *config.EngineConfig
	PodID    string
}

// Engine executes one run at a time to a terminal or waiting state.
type Engine struct {
	runs     RunStore
	steps    StepStore
	messages MessageStore
	memories MemoryStore
	channels ChannelStore
	triggers TriggerStore
	queue    JobQueue
	llm      llm.Client
	tools    ToolExecutor
	events   *events.Publisher
	cfg      *config.EngineConfig
	podID    string
}

// New creates an engine.
func New(deps Deps) *Engine {
	return &Engine{
		runs:     deps.Runs,
		steps:    deps.Steps,
		messages: deps.Messages,
		memories: deps.Memories,
		channels: deps.Channels,
		triggers: deps.Triggers,
		queue:    deps.Queue,
		llm:      deps.LLM,
		tools:    deps.Tools,
		events:   deps.Events,
		cfg:      deps.Config,
		podID:    deps.PodID,
	}
}

// applyOutcome tells the loop what a command did to the run.
type applyOutcome int

const (
	// outcomeContinue keeps iterating.
	outcomeContinue applyOutcome = iota
	// outcomeWaiting means the run suspended (spawn, sleep, request_parent).
	outcomeWaiting
	// outcomeDone means the run reached a terminal state.
	outcomeDone
)

// ExecuteRun claims a pending run and drives it to a terminal or waiting
// state. Duplicate jobs are harmless: the conditional claim admits one
// worker and everyone else returns.
func (e *Engine) ExecuteRun(ctx context.Context, runID string) error {
	r, err := e.runs.GetRun(ctx, runID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			slog.Warn("Run job for unknown run", "run_id", runID)
			return nil
		}
		return err
	}
	if r.Status != run.StatusPending {
		slog.Info("Run not claimable", "run_id", runID, "status", r.Status)
		return nil
	}

	claimed, err := e.runs.ClaimRun(ctx, runID, e.podID)
	if err != nil {
		return err
	}
	if claimed == nil {
		slog.Info("Run claimed by another worker", "run_id", runID)
		return nil
	}

	slog.Info("Run claimed",
		"run_id", runID,
		"kind", claimed.Kind,
		"agent_level", claimed.Input.AgentLevel,
		"claimed_by", e.podID)
	e.publishStatus(ctx, claimed, run.StatusRunning)

	steps, err := e.steps.ListSteps(ctx, runID)
	if err != nil {
		return e.failRun(ctx, claimed, fmt.Errorf("load step log: %w", err))
	}
	st := rebuildState(steps, e.cfg)

	if err := e.loop(ctx, claimed, st); err != nil {
		return e.failRun(ctx, claimed, err)
	}
	return nil
}

// loop is the iteration loop for one claim.
func (e *Engine) loop(ctx context.Context, r *ent.Run, st *iterState) error {
	start := time.Now()
	runtimeWarned := false

	for {
		status, err := e.runs.RefreshStatus(ctx, r.ID)
		if err != nil {
			return fmt.Errorf("refresh status: %w", err)
		}
		if status != run.StatusRunning {
			slog.Info("Run left running state, stopping", "run_id", r.ID, "status", status)
			return nil
		}

		if st.Iteration >= e.cfg.MaxIterationsHardCap {
			return e.forceFinish(ctx, r, st, models.FinishReasonMaxIterations,
				"the iteration hard cap was reached")
		}

		if time.Since(start) > e.cfg.MaxRuntime {
			if runtimeWarned {
				return e.forceFinish(ctx, r, st, models.FinishReasonRuntime,
					"the runtime limit was exceeded")
			}
			runtimeWarned = true
			e.systemNote(ctx, r, st,
				"Runtime limit reached. Finish now with your best available output.")
		}

		// Re-read the full row: children and parents mutate state.inbox,
		// cancel requests change status, and our own applies rewrote
		// output and state.
		r, err = e.runs.GetRun(ctx, r.ID)
		if err != nil {
			return fmt.Errorf("reload run: %w", err)
		}

		budgetExceeded := st.ActionCount > 0 && st.Iteration >= st.Limit

		cmd, raw, err := e.nextCommand(ctx, r, st, budgetExceeded)
		if err != nil {
			return err
		}

		if err := e.recordAssistant(ctx, r, st, cmd, raw); err != nil {
			return err
		}

		outcome, err := e.apply(ctx, r, st, cmd, budgetExceeded)
		if err != nil {
			return err
		}
		if outcome != outcomeContinue {
			return nil
		}

		if st.repeatedCommand() {
			e.systemNote(ctx, r, st,
				"You are repeating the same command without making progress.")
			return e.forceFinish(ctx, r, st, models.FinishReasonPointlessLoop,
				"the run repeated the same command without progress")
		}

		if recovered, err := e.maybeAutoRecover(ctx, r, st); err != nil {
			return err
		} else if recovered {
			return nil
		}
	}
}

// nextCommand calls the LLM and parses the response, retrying parse
// failures with a corrective system note in the next payload.
func (e *Engine) nextCommand(ctx context.Context, r *ent.Run, st *iterState, budgetExceeded bool) (*RunCommand, string, error) {
	system := e.systemPrompt(r)

	for attempt := 0; attempt <= e.cfg.MaxJSONRetries; attempt++ {
		payload, err := e.buildPayload(ctx, r, st, budgetExceeded)
		if err != nil {
			return nil, "", err
		}
		if e.cfg.DebugPrompts {
			slog.Debug("LLM payload", "run_id", r.ID, "iteration", st.Iteration, "payload", payload)
		}

		resp, err := e.llm.Complete(ctx, llm.Request{
			Messages: []llm.Message{
				{Role: llm.RoleSystem, Content: system},
				{Role: llm.RoleUser, Content: payload},
			},
			JSONOnly: true,
		})
		if err != nil {
			return nil, "", fmt.Errorf("llm call failed: %w", err)
		}

		cmd, perr := ParseCommand(resp.Content)
		if perr == nil {
			return cmd, resp.Content, nil
		}

		slog.Warn("Unparseable LLM response",
			"run_id", r.ID,
			"attempt", attempt,
			"error", perr)
		e.systemNote(ctx, r, st, fmt.Sprintf(
			"Your last response was not a valid command (%v). Reply with exactly one JSON command object.", perr))
	}

	return nil, "", errParseExhausted
}

// systemPrompt renders the role-specialised system prompt for a run.
func (e *Engine) systemPrompt(r *ent.Run) string {
	role := models.DeriveRole(string(r.Kind), r.Input.AgentLevel)

	profile := ""
	if r.Profile != nil {
		profile = *r.Profile
	}

	toolList := ""
	if role != models.RoleCoordinator {
		if len(r.AllowedTools) > 0 {
			toolList = e.tools.Describe(r.AllowedTools)
		} else {
			toolList = e.tools.DescribeAll()
		}
	}

	return prompt.System(prompt.SystemParams{
		Role:           role,
		Profile:        profile,
		ToolList:       toolList,
		AllowSubagents: role == models.RoleSubagent && r.Input.AllowSubagents,
	})
}

// recordAssistant appends the durable per-iteration step. Its count is
// the iteration counter, so a re-claimed run resumes where it stopped.
func (e *Engine) recordAssistant(ctx context.Context, r *ent.Run, st *iterState, cmd *RunCommand, raw string) error {
	rec := iterationRecord{
		Signature:   commandSignature(cmd),
		Action:      cmd.IsAction(),
		HadToolCall: cmd.Type == CmdToolCall,
		OutputHash:  hashString(r.OutputText),
	}

	_, err := e.appendStep(ctx, r.ID, r.TenantID, services.AppendStepParams{
		Type: runstep.TypeAssistantMessage,
		Result: map[string]any{
			"response":    truncateChars(raw, 4000),
			"command":     cmd.Type,
			"action":      rec.Action,
			"signature":   rec.Signature,
			"hadToolCall": rec.HadToolCall,
			"outputHash":  rec.OutputHash,
		},
		Status:         runstep.StatusCompleted,
		IdempotencyKey: fmt.Sprintf("%s:%d:assistant", r.ID, st.Iteration),
	})
	if err != nil {
		return fmt.Errorf("record assistant step: %w", err)
	}

	st.Iteration++
	if rec.Action {
		st.ActionCount++
	}
	st.pushRecent(rec)
	return nil
}

// appendStep writes one step and publishes it, best-effort.
func (e *Engine) appendStep(ctx context.Context, runID, tenantID string, params services.AppendStepParams) (*ent.RunStep, error) {
	params.RunID = runID
	step, err := e.steps.AppendStep(ctx, params)
	if err != nil {
		return nil, err
	}

	name := step.ToolName
	if name == "" {
		name = resultString(step.Result, "event")
	}
	e.events.PublishStep(ctx, events.StepEvent{
		RunID:    runID,
		TenantID: tenantID,
		Seq:      step.Seq,
		StepType: string(step.Type),
		Name:     name,
	})
	return step, nil
}

// eventStep records an engine event as a message step. Event steps are
// observability, not control flow: failures log and the run continues.
func (e *Engine) eventStep(ctx context.Context, r *ent.Run, event string, payload map[string]any, status runstep.Status) {
	result := map[string]any{"event": event}
	for k, v := range payload {
		result[k] = v
	}
	if _, err := e.appendStep(ctx, r.ID, r.TenantID, services.AppendStepParams{
		Type:   runstep.TypeMessage,
		Result: result,
		Status: status,
	}); err != nil {
		slog.Error("Failed to append event step",
			"run_id", r.ID, "event", event, "error", err)
	}
}

// systemNote appends an engine nudge the model sees in its transcript.
func (e *Engine) systemNote(ctx context.Context, r *ent.Run, st *iterState, content string) {
	st.SystemNotes++
	e.eventStep(ctx, r, models.EventSystemNote,
		map[string]any{"content": content}, runstep.StatusCompleted)
}

// blockAction records a rejected command: an action_blocked event step
// plus state.lastBlock so the next payload names the reason.
func (e *Engine) blockAction(ctx context.Context, r *ent.Run, st *iterState, reason, detail string) error {
	payload := map[string]any{"reason": reason}
	if detail != "" {
		payload["detail"] = detail
	}
	e.eventStep(ctx, r, models.EventActionBlocked, payload, runstep.StatusFailed)

	if reason == "budget_exceeded" {
		st.BudgetStrikes++
	}

	r.Input.State.LastBlockReason = reason
	r.Input.State.LastBlockDetail = detail
	if err := e.runs.UpdateInput(ctx, r.ID, r.Input); err != nil {
		return fmt.Errorf("persist block state: %w", err)
	}
	return nil
}

// clearBlock resets state.lastBlock after a command applied cleanly.
func (e *Engine) clearBlock(ctx context.Context, r *ent.Run) {
	if r.Input.State.LastBlockReason == "" && r.Input.State.LastBlockDetail == "" {
		return
	}
	r.Input.State.LastBlockReason = ""
	r.Input.State.LastBlockDetail = ""
	if err := e.runs.UpdateInput(ctx, r.ID, r.Input); err != nil {
		slog.Error("Failed to clear block state", "run_id", r.ID, "error", err)
	}
}

// saveState persists the run's input blob after a state mutation.
func (e *Engine) saveState(ctx context.Context, r *ent.Run) error {
	if err := e.runs.UpdateInput(ctx, r.ID, r.Input); err != nil {
		return fmt.Errorf("persist run state: %w", err)
	}
	return nil
}

// failRun marks the run failed, tells the user (non-subagents only), and
// notifies the parent. Returns nil when the failure was fully recorded
// so the job is not retried against a now-terminal run.
func (e *Engine) failRun(ctx context.Context, r *ent.Run, cause error) error {
	return e.failRunWithMessage(ctx, r, cause, failureMessage)
}

func (e *Engine) failRunWithMessage(ctx context.Context, r *ent.Run, cause error, userMessage string) error {
	slog.Error("Run failed", "run_id", r.ID, "error", cause)

	if err := e.runs.FailRun(ctx, r.ID, cause.Error()); err != nil {
		if errors.Is(err, services.ErrInvalidState) {
			// Already terminal; nothing left to record.
			return nil
		}
		return err
	}
	e.publishStatus(ctx, r, run.StatusFailed)
	e.retireTriggers(ctx, r)

	if _, err := e.appendStep(ctx, r.ID, r.TenantID, services.AppendStepParams{
		Type:   runstep.TypeMessage,
		Result: map[string]any{"error": cause.Error()},
		Status: runstep.StatusFailed,
	}); err != nil {
		slog.Error("Failed to append failure step", "run_id", r.ID, "error", err)
	}

	if r.ParentRunID == nil {
		e.sendRunMessage(ctx, r, userMessage)
	} else {
		e.notifyParent(ctx, r, models.EventSubagentFailed, map[string]any{
			"runId": r.ID,
			"error": cause.Error(),
		})
	}
	return nil
}

// notifyParent appends an event step to the parent's log and wakes it.
func (e *Engine) notifyParent(ctx context.Context, r *ent.Run, event string, payload map[string]any) {
	if r.ParentRunID == nil {
		return
	}
	parentID := *r.ParentRunID

	result := map[string]any{"event": event}
	for k, v := range payload {
		result[k] = v
	}
	if _, err := e.appendStep(ctx, parentID, r.TenantID, services.AppendStepParams{
		Type:   runstep.TypeMessage,
		Result: result,
		Status: runstep.StatusCompleted,
	}); err != nil {
		slog.Error("Failed to notify parent",
			"run_id", r.ID, "parent_run_id", parentID, "event", event, "error", err)
	}

	e.wakeParent(ctx, r)
}

// wakeParent re-opens a waiting parent and enqueues its run job. The
// enqueue happens even when the wake was a no-op: the job is harmless
// and covers a parent whose original job was lost.
func (e *Engine) wakeParent(ctx context.Context, r *ent.Run) {
	if r.ParentRunID == nil {
		return
	}
	parentID := *r.ParentRunID

	woke, err := e.runs.WakeRun(ctx, parentID)
	if err != nil {
		slog.Error("Failed to wake parent", "parent_run_id", parentID, "error", err)
		return
	}
	if woke {
		slog.Info("Parent woken", "run_id", r.ID, "parent_run_id", parentID)
	}
	if err := e.queue.EnqueueRun(ctx, parentID, r.TenantID, r.AgentID); err != nil {
		slog.Error("Failed to enqueue parent run job", "parent_run_id", parentID, "error", err)
	}
}

// sendRunMessage records an outbound user message for the run's channel.
// Web channels are delivered on read; Discord channels go through the
// delivery queue.
func (e *Engine) sendRunMessage(ctx context.Context, r *ent.Run, content string) {
	if content == "" {
		return
	}

	ch, err := e.channels.GetChannel(ctx, r.ChannelID)
	if err != nil {
		slog.Error("Failed to resolve channel for outbound message",
			"run_id", r.ID, "channel_id", r.ChannelID, "error", err)
		return
	}

	contextID := ""
	if r.ContextID != nil {
		contextID = *r.ContextID
	}
	pending := ch.Provider == channel.ProviderDiscord

	msg, err := e.messages.RecordOutbound(ctx, r.UserID, r.ChannelID, contextID, content,
		map[string]any{"runId": r.ID}, pending)
	if err != nil {
		slog.Error("Failed to record outbound message", "run_id", r.ID, "error", err)
		return
	}

	if pending {
		payload := map[string]any{
			"content":       content,
			"discordUserId": ch.DiscordUserID,
		}
		if err := e.queue.EnqueueDelivery(ctx, string(ch.Provider), msg.ID, payload); err != nil {
			slog.Error("Failed to enqueue delivery", "message_id", msg.ID, "error", err)
		}
	}
}

// publishStatus emits a best-effort status change notification.
func (e *Engine) publishStatus(ctx context.Context, r *ent.Run, status run.Status) {
	e.events.PublishStatus(ctx, events.StatusEvent{
		RunID:    r.ID,
		TenantID: r.TenantID,
		Status:   string(status),
	})
}

// retireTriggers disables pending wake triggers once a run is terminal.
func (e *Engine) retireTriggers(ctx context.Context, r *ent.Run) {
	if _, err := e.triggers.DisableForRun(ctx, r.ID); err != nil {
		slog.Warn("Failed to retire run triggers", "run_id", r.ID, "error", err)
	}
}
